package leave

type CreateLeaveRequest struct {
	LeaveTypeID string `json:"leaveTypeId" binding:"required,uuid"`
	StartDate   string `json:"startDate" binding:"required"`
	StartHalf   string `json:"startHalf" binding:"required,oneof=Morning Afternoon"`
	EndDate     string `json:"endDate" binding:"required"`
	EndHalf     string `json:"endHalf" binding:"required,oneof=Morning Afternoon"`
	Reason      string `json:"reason" binding:"required,min=4,max=50"`
}

type DecideLeaveRequest struct {
	RequestID   string `json:"requestId" binding:"required,uuid"`
	Decision    string `json:"decision" binding:"required,oneof=Approved Rejected"`
	Description string `json:"description" binding:"omitempty,max=255"`
}

type CancelLeaveRequest struct {
	RequestID string `json:"requestId" binding:"required,uuid"`
}

type LeaveRequestResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employeeId"`
	EmployeeName string  `json:"employeeName,omitempty"`
	LeaveTypeID  string  `json:"leaveTypeId"`
	LeaveType    string  `json:"leaveType,omitempty"`
	StartDate    string  `json:"startDate"`
	StartHalf    string  `json:"startHalf"`
	EndDate      string  `json:"endDate"`
	EndHalf      string  `json:"endHalf"`
	Reason       string  `json:"reason"`
	Status       string  `json:"status"`
	NoOfDays     float64 `json:"noOfDays"`
	Description  string  `json:"description"`
}

type LeaveBalanceResponse struct {
	LeaveTypeID string  `json:"leaveTypeId"`
	LeaveType   string  `json:"leaveType"`
	Total       float64 `json:"total"`
	Used        float64 `json:"used"`
	Remaining   float64 `json:"remaining"`
}

func mapRequestToResponse(lr LeaveRequestWithNames) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:           lr.ID.String(),
		EmployeeID:   lr.EmployeeID.String(),
		EmployeeName: lr.EmployeeName,
		LeaveTypeID:  lr.LeaveTypeID.String(),
		LeaveType:    lr.LeaveTypeName,
		StartDate:    lr.StartDate.Format("2006-01-02"),
		StartHalf:    lr.StartHalf,
		EndDate:      lr.EndDate.Format("2006-01-02"),
		EndHalf:      lr.EndHalf,
		Reason:       lr.Reason,
		Status:       lr.Status,
		NoOfDays:     lr.NoOfDays,
		Description:  lr.Description,
	}
}

func mapRequestsToResponse(requests []LeaveRequestWithNames) []LeaveRequestResponse {
	out := make([]LeaveRequestResponse, 0, len(requests))
	for _, lr := range requests {
		out = append(out, mapRequestToResponse(lr))
	}
	return out
}

func mapBalancesToResponse(balances []LeaveBalanceWithType) []LeaveBalanceResponse {
	out := make([]LeaveBalanceResponse, 0, len(balances))
	for _, b := range balances {
		out = append(out, LeaveBalanceResponse{
			LeaveTypeID: b.LeaveTypeID.String(),
			LeaveType:   b.LeaveTypeName,
			Total:       b.Total,
			Used:        b.Used,
			Remaining:   b.Remaining,
		})
	}
	return out
}
