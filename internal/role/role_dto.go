package role

type CreateRoleRequest struct {
	Name string `json:"name" binding:"required,min=2,max=50"`
}

type UpdateRoleRequest struct {
	ID   string `json:"id" binding:"required,uuid"`
	Name string `json:"name" binding:"required,min=2,max=50"`
}

type RoleResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func mapToResponse(r Role) RoleResponse {
	return RoleResponse{ID: r.ID.String(), Name: r.Name}
}

func mapToListResponse(roles []Role) []RoleResponse {
	out := make([]RoleResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, mapToResponse(r))
	}
	return out
}
