package payroll

type ReleaseSalaryRequest struct {
	EmployeeID string `json:"employeeId" binding:"required,uuid"`
	Month      string `json:"month" binding:"required"`
}

type SalaryRecordResponse struct {
	ID             string `json:"id,omitempty"`
	EmployeeID     string `json:"employeeId"`
	FullName       string `json:"fullName,omitempty"`
	JoiningDate    string `json:"joiningDate,omitempty"`
	Designation    string `json:"designation,omitempty"`
	PayPeriodStart string `json:"payPeriodStart"`
	Gross          int64  `json:"gross"`
	Bonus          int64  `json:"bonus"`
	PF             int64  `json:"pf"`
	Penalty        int64  `json:"penalty"`
	Tax            int64  `json:"tax"`
	NetPay         int64  `json:"netPay"`
	AbsentDays     int    `json:"absentDays"`
}

type QuarterSummaryResponse struct {
	Quarter string `json:"quarter"`
	Year    int    `json:"year"`
	Gross   int64  `json:"gross"`
	Bonus   int64  `json:"bonus"`
	PF      int64  `json:"pf"`
	Penalty int64  `json:"penalty"`
	Tax     int64  `json:"tax"`
	NetPay  int64  `json:"netPay"`
	Records int    `json:"records"`
}

type QuarterTaxResponse struct {
	EmployeeID  string `json:"employeeId"`
	Quarter     string `json:"quarter"`
	Year        int    `json:"year"`
	Gross       int64  `json:"gross"`
	TaxDeducted int64  `json:"taxDeducted"`
	NetPay      int64  `json:"netPay"`
}

func mapToResponse(r SalaryRecordWithEmployee) SalaryRecordResponse {
	return SalaryRecordResponse{
		ID:             r.ID.String(),
		EmployeeID:     r.EmployeeID.String(),
		FullName:       r.FullName,
		JoiningDate:    r.JoiningDate.Format("2006-01-02"),
		Designation:    r.DesignationName,
		PayPeriodStart: r.PayPeriodStart.Format("2006-01-02"),
		Gross:          r.Gross,
		Bonus:          r.Bonus,
		PF:             r.PF,
		Penalty:        r.Penalty,
		Tax:            r.Tax,
		NetPay:         r.NetPay,
		AbsentDays:     r.AbsentDays,
	}
}

func mapToListResponse(records []SalaryRecordWithEmployee) []SalaryRecordResponse {
	out := make([]SalaryRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, mapToResponse(r))
	}
	return out
}
