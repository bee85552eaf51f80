package attendance

type MarkAttendanceRequest struct {
	// Date defaults to today when omitted.
	Date string `json:"date" binding:"omitempty"`
}

type RegularizeRequest struct {
	EmployeeID string `json:"employeeId" binding:"required,uuid"`
	Date       string `json:"date" binding:"omitempty"`
	Status     string `json:"status" binding:"omitempty,oneof=Present Absent"`
}

type AttendanceResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employeeId"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

type MonthSummaryResponse struct {
	EmployeeID   string `json:"employeeId"`
	Month        string `json:"month"`
	PresentCount int    `json:"presentCount"`
	AbsentCount  int    `json:"absentCount"`
	LeaveCount   int    `json:"leaveCount"`
	HalfDayCount int    `json:"halfDayCount"`
}

func mapToResponse(a AttendanceRecord) AttendanceResponse {
	return AttendanceResponse{
		ID:         a.ID.String(),
		EmployeeID: a.EmployeeID.String(),
		Date:       a.Date.Format("2006-01-02"),
		Status:     a.Status,
	}
}

func mapToListResponse(records []AttendanceRecord) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(records))
	for _, a := range records {
		out = append(out, mapToResponse(a))
	}
	return out
}
