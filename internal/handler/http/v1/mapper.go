package v1

import "github.com/shenikar/telecom_outage_system/internal/models"

// DTOToReportSubmission преобразует DTO в доменную модель.
// Вызывается после валидации, поэтому координаты уже заданы.
func DTOToReportSubmission(dto SubmitReportRequest) models.ReportSubmission {
	return models.ReportSubmission{
		OperatorName: dto.OperatorName,
		Title:        dto.Title,
		Description:  dto.Description,
		Latitude:     *dto.Latitude,
		Longitude:    *dto.Longitude,
	}
}

// ModelToOutageResponse преобразует сбой в DTO, переводя серьезность на публичную шкалу
func ModelToOutageResponse(model *models.Outage) *OutageResponse {
	services := model.AffectedServices
	if services == nil {
		services = []string{}
	}
	return &OutageResponse{
		ID:               model.ID,
		IncidentID:       model.IncidentKey,
		OperatorName:     model.OperatorName,
		RegionID:         model.RegionID,
		RegionName:       model.RegionName,
		Title:            model.Title,
		Description:      model.Description,
		Status:           string(model.Status),
		Severity:         model.Severity.Public(),
		SeverityScore:    model.SeverityScore,
		StartTime:        model.StartTime,
		EndTime:          model.EndTime,
		EstimatedFixTime: model.EstimatedFixTime,
		Location:         model.Location,
		Latitude:         model.Latitude,
		Longitude:        model.Longitude,
		AffectedServices: services,
		UpdatedAt:        model.UpdatedAt,
	}
}

func ModelsToOutageResponses(outages []*models.Outage) []*OutageResponse {
	responses := make([]*OutageResponse, len(outages))
	for i, model := range outages {
		responses[i] = ModelToOutageResponse(model)
	}
	return responses
}

func ModelsToHotspotResponses(hotspots []models.Hotspot) []HotspotResponse {
	responses := make([]HotspotResponse, len(hotspots))
	for i, h := range hotspots {
		responses[i] = HotspotResponse{
			OperatorName: h.OperatorName,
			RegionName:   h.RegionName,
			ReportCount:  h.ReportCount,
			Type:         string(h.Type),
			Source:       h.Source,
			Latitude:     h.Latitude,
			Longitude:    h.Longitude,
			DetectedAt:   h.DetectedAt,
		}
	}
	return responses
}

func ModelToReportResponse(model *models.UserReport) *ReportResponse {
	return &ReportResponse{
		ID:           model.ID,
		OperatorName: model.OperatorName,
		RegionName:   model.RegionName,
		Title:        model.Title,
		Description:  model.Description,
		Latitude:     model.Latitude,
		Longitude:    model.Longitude,
		Status:       string(model.Status),
		CreatedAt:    model.CreatedAt,
	}
}

func ModelsToReportResponses(reports []*models.UserReport) []*ReportResponse {
	responses := make([]*ReportResponse, len(reports))
	for i, model := range reports {
		responses[i] = ModelToReportResponse(model)
	}
	return responses
}

func ModelsToRegionResponses(regions []models.RegionSummary) []RegionResponse {
	responses := make([]RegionResponse, len(regions))
	for i, r := range regions {
		responses[i] = RegionResponse{
			ID:            r.ID,
			Name:          r.Name,
			Latitude:      r.Latitude,
			Longitude:     r.Longitude,
			ActiveOutages: r.ActiveOutages,
		}
	}
	return responses
}
