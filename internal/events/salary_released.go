package events

import "time"

const SalaryReleasedTopic = "payroll.salary.released.v1"

// SalaryReleasedEvent is emitted once per employee per pay period, after the
// releasing transaction commits.
type SalaryReleasedEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	SalaryRecordID string    `json:"salary_record_id"`
	EmployeeID     string    `json:"employee_id"`
	PayPeriodStart string    `json:"pay_period_start"`
	NetPay         int64     `json:"net_pay"`
	OccurredAt     time.Time `json:"occurred_at"`
}
