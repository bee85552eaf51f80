package query

type CreateQueryRequest struct {
	SalaryRecordID string `json:"salaryRecordId" binding:"required,uuid"`
	Description    string `json:"description" binding:"required,min=5,max=100"`
}

type RespondToQueryRequest struct {
	QueryID string `json:"queryId" binding:"required,uuid"`
	Status  string `json:"status" binding:"required,oneof='In Progress' Resolved"`
	Comment string `json:"comment" binding:"omitempty,max=255"`
}

type QueryResponse struct {
	ID             string `json:"id"`
	EmployeeID     string `json:"employeeId"`
	EmployeeName   string `json:"employeeName,omitempty"`
	SalaryRecordID string `json:"salaryRecordId"`
	PayPeriodStart string `json:"payPeriodStart,omitempty"`
	Description    string `json:"description"`
	Status         string `json:"status"`
	Comment        string `json:"comment"`
	CreatedAt      string `json:"createdAt"`
}

func mapToResponse(q QueryWithNames) QueryResponse {
	resp := QueryResponse{
		ID:             q.ID.String(),
		EmployeeID:     q.EmployeeID.String(),
		EmployeeName:   q.EmployeeName,
		SalaryRecordID: q.SalaryRecordID.String(),
		Description:    q.Description,
		Status:         q.Status,
		Comment:        q.Comment,
		CreatedAt:      q.CreatedAt.Format("2006-01-02"),
	}
	if !q.PayPeriodStart.IsZero() {
		resp.PayPeriodStart = q.PayPeriodStart.Format("2006-01-02")
	}
	return resp
}

func mapToListResponse(queries []QueryWithNames) []QueryResponse {
	out := make([]QueryResponse, 0, len(queries))
	for _, q := range queries {
		out = append(out, mapToResponse(q))
	}
	return out
}
