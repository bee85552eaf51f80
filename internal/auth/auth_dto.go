package auth

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Role        string `json:"role"`
	EmployeeID  string `json:"employeeId"`
	FullName    string `json:"fullName"`
	LogID       string `json:"logId"`
	AccessToken string `json:"accessToken"`
}

type UpdatePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

type UpdateRoleRequest struct {
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required"`
}

type UserRoleResponse struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

type SetLogoutRequest struct {
	LogID string `json:"logId" binding:"required,uuid"`
}

type LoginLogResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employeeId,omitempty"`
	FullName   string  `json:"fullName"`
	LoginTime  string  `json:"loginTime"`
	LogoutTime *string `json:"logoutTime"`
}
