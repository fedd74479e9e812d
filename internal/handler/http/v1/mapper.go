package v1

import "github.com/ardnsyh/emergency_dispatch_system/internal/models"

// ModelToUserResponse преобразует доменную модель пользователя в DTO
func ModelToUserResponse(model *models.User) *UserResponse {
	return &UserResponse{
		ID:    model.ID,
		Name:  model.Name,
		Email: model.Email,
		Role:  string(model.Role),
	}
}

// ModelToIncidentResponse преобразует доменную модель инцидента в DTO
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:            model.ID,
		ResidentID:    model.ResidentID,
		InstitutionID: model.InstitutionID,
		Description:   model.Description,
		Latitude:      model.Latitude,
		Longitude:     model.Longitude,
		Picture:       model.Picture,
		Status:        string(model.Status),
		ReportedAt:    model.ReportedAt,
		HandledAt:     model.HandledAt,
		CompletedAt:   model.CompletedAt,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(models []*models.Incident) []*IncidentResponse {
	responses := make([]*IncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

// ModelToAssignmentResponse преобразует доменную модель назначения в DTO
func ModelToAssignmentResponse(model *models.IncidentVehicleAssignment) *AssignmentResponse {
	return &AssignmentResponse{
		ID:          model.ID,
		IncidentID:  model.IncidentID,
		VehicleID:   model.VehicleID,
		DriverID:    model.DriverID,
		Status:      string(model.Status),
		AssignedAt:  model.AssignedAt,
		ArrivedAt:   model.ArrivedAt,
		CompletedAt: model.CompletedAt,
	}
}

// ModelsToAssignmentResponses преобразует слайс назначений в слайс DTO
func ModelsToAssignmentResponses(models []*models.IncidentVehicleAssignment) []*AssignmentResponse {
	responses := make([]*AssignmentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToAssignmentResponse(model)
	}
	return responses
}

// ModelToIncidentDetailResponse преобразует детальную карточку инцидента в DTO
func ModelToIncidentDetailResponse(model *models.IncidentDetail) *IncidentDetailResponse {
	resp := &IncidentDetailResponse{
		IncidentResponse: *ModelToIncidentResponse(&model.Incident),
		Assignments:      ModelsToAssignmentResponses(model.Assignments),
	}
	if model.Resident != nil {
		resp.Resident = &ResidentResponse{
			ID:    model.Resident.ID,
			Name:  model.Resident.Name,
			NIK:   model.Resident.NIK,
			Phone: model.Resident.Phone,
		}
	}
	return resp
}

// ModelToVehicleResponse преобразует доменную модель машины в DTO
func ModelToVehicleResponse(model *models.Vehicle) *VehicleResponse {
	return &VehicleResponse{
		ID:            model.ID,
		InstitutionID: model.InstitutionID,
		DriverID:      model.DriverID,
		Name:          model.Name,
		Description:   model.Description,
		IsReady:       model.IsReady,
		Picture:       model.Picture,
	}
}

// ModelsToVehicleResponses преобразует слайс машин в слайс DTO
func ModelsToVehicleResponses(models []*models.Vehicle) []*VehicleResponse {
	responses := make([]*VehicleResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToVehicleResponse(model)
	}
	return responses
}
