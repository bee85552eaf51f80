package leavetype

type CreateLeaveTypeRequest struct {
	Name           string  `json:"name" binding:"required,min=2,max=100"`
	NumberOfLeaves float64 `json:"numberOfLeaves" binding:"required"`
}

type UpdateLeaveTypeRequest struct {
	ID             string  `json:"id" binding:"required,uuid"`
	Name           string  `json:"name" binding:"required,min=2,max=100"`
	NumberOfLeaves float64 `json:"numberOfLeaves" binding:"required"`
}

type LeaveTypeResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	NumberOfLeaves float64 `json:"numberOfLeaves"`
}

func mapToResponse(lt LeaveType) LeaveTypeResponse {
	return LeaveTypeResponse{
		ID:             lt.ID.String(),
		Name:           lt.Name,
		NumberOfLeaves: lt.NumberOfLeaves,
	}
}

func mapToListResponse(types []LeaveType) []LeaveTypeResponse {
	out := make([]LeaveTypeResponse, 0, len(types))
	for _, lt := range types {
		out = append(out, mapToResponse(lt))
	}
	return out
}
