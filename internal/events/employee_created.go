package events

import "time"

const EmployeeCreatedTopic = "payroll.employee.lifecycle.v1"

// EmployeeCreatedEvent is published when HR registers an employee. The
// provisioning consumer reacts by creating the CTC row and the per-type
// leave balances.
type EmployeeCreatedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID string    `json:"employee_id"`
	FullName   string    `json:"full_name"`
	OccurredAt time.Time `json:"occurred_at"`
}
