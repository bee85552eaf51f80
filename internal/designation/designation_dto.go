package designation

type CreateDesignationRequest struct {
	Name string `json:"name" binding:"required,min=2,max=100"`
}

type UpdateDesignationRequest struct {
	ID   string `json:"id" binding:"required,uuid"`
	Name string `json:"name" binding:"required,min=2,max=100"`
}

type DesignationResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func mapToResponse(d Designation) DesignationResponse {
	return DesignationResponse{ID: d.ID.String(), Name: d.Name}
}

func mapToListResponse(designations []Designation) []DesignationResponse {
	out := make([]DesignationResponse, 0, len(designations))
	for _, d := range designations {
		out = append(out, mapToResponse(d))
	}
	return out
}
