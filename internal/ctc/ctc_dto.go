package ctc

type UpdateCTCRequest struct {
	EmployeeID    string `json:"employeeId" binding:"required,uuid"`
	CostToCompany int64  `json:"costToCompany" binding:"required"`
}

type CTCResponse struct {
	EmployeeID    string `json:"employeeId"`
	CostToCompany int64  `json:"costToCompany"`
	UpdatedAt     string `json:"updatedAt"`
}

func mapToResponse(c CTC) CTCResponse {
	return CTCResponse{
		EmployeeID:    c.EmployeeID.String(),
		CostToCompany: c.CostToCompany,
		UpdatedAt:     c.UpdatedAt.Format("2006-01-02"),
	}
}
