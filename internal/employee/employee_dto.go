package employee

type CreateEmployeeRequest struct {
	FullName      string `json:"fullName" binding:"required,min=2,max=255"`
	Email         string `json:"email" binding:"required,email"`
	MobileNumber  string `json:"mobileNumber" binding:"required,min=10,max=15"`
	DateOfBirth   string `json:"dateOfBirth" binding:"required"`
	JoiningDate   string `json:"joiningDate" binding:"required"`
	DesignationID string `json:"designationId" binding:"required,uuid"`
	ManagerID     string `json:"managerId" binding:"omitempty,uuid"`
	RoleID        string `json:"roleId" binding:"required,uuid"`
	Password      string `json:"password" binding:"omitempty,min=6"`
}

// UpdateEmployeeRequest carries the HR-editable profile fields. IsActive
// arrives as the string "true"/"false" because the admin forms post it that
// way.
type UpdateEmployeeRequest struct {
	ID            string `json:"id" binding:"required,uuid"`
	MobileNumber  string `json:"mobileNumber" binding:"omitempty,min=10,max=15"`
	DesignationID string `json:"designationId" binding:"omitempty,uuid"`
	ManagerID     string `json:"managerId" binding:"omitempty,uuid"`
	IsActive      string `json:"isActive" binding:"omitempty"`
}

type UpdateRatingRequest struct {
	EmployeeID string `json:"employeeId" binding:"required,uuid"`
	Rating     int    `json:"rating" binding:"required"`
}

type EmployeeResponse struct {
	ID           string `json:"id"`
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobileNumber"`
	DateOfBirth  string `json:"dateOfBirth"`
	JoiningDate  string `json:"joiningDate"`
	Designation  string `json:"designation"`
	ManagerID    string `json:"managerId,omitempty"`
	ManagerName  string `json:"managerName,omitempty"`
	Role         string `json:"role"`
	IsActive     bool   `json:"isActive"`
	Rating       *int   `json:"rating"`
}

func mapToResponse(e EmployeeWithNames) EmployeeResponse {
	resp := EmployeeResponse{
		ID:           e.ID.String(),
		FullName:     e.FullName,
		Email:        e.Email,
		MobileNumber: e.MobileNumber,
		DateOfBirth:  e.DateOfBirth.Format("2006-01-02"),
		JoiningDate:  e.JoiningDate.Format("2006-01-02"),
		Designation:  e.DesignationName,
		ManagerName:  e.ManagerName,
		Role:         e.RoleName,
		IsActive:     e.IsActive,
		Rating:       e.Rating,
	}
	if e.ManagerID != nil {
		resp.ManagerID = e.ManagerID.String()
	}
	return resp
}

func mapToListResponse(employees []EmployeeWithNames) []EmployeeResponse {
	out := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		out = append(out, mapToResponse(e))
	}
	return out
}
