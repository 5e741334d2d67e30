package v1

import (
	"github.com/gtawatch/incident-watch/internal/models"
	"github.com/gtawatch/incident-watch/pkg/geo"
)

// Отступ рамки обзора и предел приближения для режима отображения карты.
const (
	boundsPaddingDeg = 0.005
	maxFitZoom       = 15
)

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model *models.Incident) *IncidentResponse {
	return &IncidentResponse{
		ID:            model.ID,
		Category:      string(model.Category),
		Description:   model.Description,
		Latitude:      model.Latitude,
		Longitude:     model.Longitude,
		LocationLabel: model.LocationLabel,
		MarkerColor:   model.Category.MarkerColor(),
		CreatedAt:     model.CreatedAt,
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

// ModelToDraftResponse преобразует черновик мастера в DTO для ответа
func ModelToDraftResponse(draft *models.ReportDraft) *ReportDraftResponse {
	return &ReportDraftResponse{
		ID:            draft.ID,
		Step:          string(draft.Step),
		Category:      string(draft.Category),
		Description:   draft.Description,
		Latitude:      draft.Latitude,
		Longitude:     draft.Longitude,
		LocationLabel: draft.LocationLabel,
		IncidentID:    draft.IncidentID,
	}
}

// ModelsToServiceResponses преобразует слайс экстренных служб в слайс DTO
func ModelsToServiceResponses(services []models.EmergencyService) []EmergencyServiceResponse {
	responses := make([]EmergencyServiceResponse, len(services))
	for i, svc := range services {
		responses[i] = EmergencyServiceResponse{
			Name:      svc.Name,
			Type:      string(svc.Type),
			Address:   svc.Address,
			Distance:  svc.Distance,
			Latitude:  svc.Latitude,
			Longitude: svc.Longitude,
		}
	}
	return responses
}

// ModelsToMarkersResponse строит данные режима отображения карты:
// цветной маркер на инцидент и рамка обзора с отступом по текущему набору точек.
func ModelsToMarkersResponse(incidents []*models.Incident) *MarkersResponse {
	markers := make([]MarkerResponse, len(incidents))
	points := make([][2]float64, len(incidents))
	for i, inc := range incidents {
		markers[i] = MarkerResponse{
			ID:        inc.ID,
			Category:  string(inc.Category),
			Latitude:  inc.Latitude,
			Longitude: inc.Longitude,
			Color:     inc.Category.MarkerColor(),
		}
		points[i] = [2]float64{inc.Latitude, inc.Longitude}
	}

	resp := &MarkersResponse{
		Markers: markers,
		MaxZoom: maxFitZoom,
	}
	if bounds, ok := geo.BoundsFor(points, boundsPaddingDeg); ok {
		resp.Bounds = &bounds
	}
	return resp
}

// ModelsToStatsResponse преобразует статистику по категориям в DTO
func ModelsToStatsResponse(stats []models.CategoryCount) *StatsResponse {
	resp := &StatsResponse{
		Categories: make([]CategoryCount, len(stats)),
	}
	for i, cc := range stats {
		resp.Categories[i] = CategoryCount{
			Category: string(cc.Category),
			Count:    cc.Count,
		}
		resp.Total += cc.Count
	}
	return resp
}
