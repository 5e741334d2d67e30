package v1

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gtawatch/incident-watch/internal/config"
	"github.com/gtawatch/incident-watch/internal/models"
	"github.com/gtawatch/incident-watch/internal/service"
	"github.com/gtawatch/incident-watch/internal/service/mocks"
	"github.com/gtawatch/incident-watch/internal/stream"
)

// testMocks собирает все мокированные сервисы обработчика.
type testMocks struct {
	incidents *mocks.MockIncidentService
	reports   *mocks.MockReportService
	guidance  *mocks.MockGuidanceService
	locations *mocks.MockLocationService
}

// newTestHandler создает новый экземпляр Handler с мокированными сервисами
func newTestHandler(t *testing.T) (*Handler, *testMocks, *gin.Engine) {
	ctrl := gomock.NewController(t)
	m := &testMocks{
		incidents: mocks.NewMockIncidentService(ctrl),
		reports:   mocks.NewMockReportService(ctrl),
		guidance:  mocks.NewMockGuidanceService(ctrl),
		locations: mocks.NewMockLocationService(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		NearbyRadius: 5000,
	}

	handler := NewHandler(m.incidents, m.reports, m.guidance, m.locations, stream.NewHub(), logger, cfg)

	// Настройка Gin роутера для тестов
	gin.SetMode(gin.TestMode)
	router := gin.New()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	return handler, m, router
}

// makeRequest - вспомогательная функция для выполнения HTTP-запросов
func makeRequest(router *gin.Engine, method, url string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, url, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateIncident_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	incidentID := uuid.New()
	reqBody := CreateIncidentRequest{
		Category:      "fire",
		Description:   "smoke from the second floor",
		Latitude:      43.6532,
		Longitude:     -79.3832,
		LocationLabel: "12 Elm St",
	}
	description := reqBody.Description
	expectedIncident := &models.Incident{
		ID:            incidentID,
		Category:      models.CategoryFire,
		Description:   &description,
		Latitude:      reqBody.Latitude,
		Longitude:     reqBody.Longitude,
		LocationLabel: reqBody.LocationLabel,
		CreatedAt:     time.Now(),
	}

	m.incidents.EXPECT().
		SubmitIncident(gomock.Any(), models.CategoryFire, gomock.Any(), reqBody.Latitude, reqBody.Longitude, reqBody.LocationLabel).
		Return(expectedIncident, nil).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, incidentID, resp.ID)
	assert.Equal(t, "fire", resp.Category)
	assert.Equal(t, "#EF4444", resp.MarkerColor)
}

func TestCreateIncident_InvalidJSON(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.incidents.EXPECT().SubmitIncident(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0) // Сервис не должен вызываться

	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBufferString(`{"category": "fire"`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid request body")
}

func TestCreateIncident_ValidationError(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := CreateIncidentRequest{ // Отсутствует Category
		Latitude:  43.6532,
		Longitude: -79.3832,
	}

	m.incidents.EXPECT().SubmitIncident(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Error:Field validation for 'Category' failed on the 'required' tag")
}

func TestCreateIncident_UnknownCategory(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := CreateIncidentRequest{
		Category:  "earthquake",
		Latitude:  43.6532,
		Longitude: -79.3832,
	}

	m.incidents.EXPECT().
		SubmitIncident(gomock.Any(), models.Category("earthquake"), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, service.ErrCategoryRequired).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Category is required")
}

func TestCreateIncident_ServiceError(t *testing.T) {
	_, m, router := newTestHandler(t)
	reqBody := CreateIncidentRequest{
		Category:  "theft",
		Latitude:  43.6532,
		Longitude: -79.3832,
	}

	m.incidents.EXPECT().
		SubmitIncident(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("db down")).
		Times(1)

	bodyBytes, _ := json.Marshal(reqBody)
	w := makeRequest(router, "POST", "/api/v1/incidents", bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestListIncidents_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	expectedIncidents := []*models.Incident{
		{ID: uuid.New(), Category: models.CategoryShooting, LocationLabel: "Queen & Spadina"},
		{ID: uuid.New(), Category: models.CategoryTheft, LocationLabel: "Union Station"},
	}

	m.incidents.EXPECT().ListIncidents(gomock.Any()).Return(expectedIncidents, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Len(t, resp, 2)
	assert.Equal(t, "shooting", resp[0].Category)
	assert.Equal(t, "#DC2626", resp[0].MarkerColor)
}

func TestListIncidents_ServiceError(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.incidents.EXPECT().ListIncidents(gomock.Any()).Return(nil, errors.New("timeout")).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestGetIncident_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	incidentID := uuid.New()
	expectedIncident := &models.Incident{
		ID:       incidentID,
		Category: models.CategoryMedical,
	}

	m.incidents.EXPECT().GetIncident(gomock.Any(), incidentID).Return(expectedIncident, nil).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/incidents/%s", incidentID.String()), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, incidentID, resp.ID)
}

func TestGetIncident_InvalidID(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.incidents.EXPECT().GetIncident(gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/incidents/invalid-uuid", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid incident ID")
}

func TestGetIncident_NotFound(t *testing.T) {
	_, m, router := newTestHandler(t)
	incidentID := uuid.New()

	m.incidents.EXPECT().GetIncident(gomock.Any(), incidentID).Return(nil, errors.New("not found")).Times(1)

	w := makeRequest(router, "GET", fmt.Sprintf("/api/v1/incidents/%s", incidentID.String()), nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "incident not found")
}

func TestGetStats_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	stats := []models.CategoryCount{
		{Category: models.CategoryFire, Count: 3},
		{Category: models.CategoryTheft, Count: 2},
	}

	m.incidents.EXPECT().CategoryStats(gomock.Any()).Return(stats, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/stats", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp StatsResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 5, resp.Total)
	assert.Len(t, resp.Categories, 2)
}

func TestGetMarkers_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	incidents := []*models.Incident{
		{ID: uuid.New(), Category: models.CategoryShooting, Latitude: 43.65, Longitude: -79.40},
		{ID: uuid.New(), Category: models.CategoryFire, Latitude: 43.70, Longitude: -79.38},
	}

	m.incidents.EXPECT().ListIncidents(gomock.Any()).Return(incidents, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/markers", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp MarkersResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp.Markers, 2)
	assert.Equal(t, "#DC2626", resp.Markers[0].Color)
	assert.Equal(t, 15, resp.MaxZoom)
	require.NotNil(t, resp.Bounds)
	assert.InDelta(t, 43.645, resp.Bounds.MinLat, 1e-9)
	assert.InDelta(t, 43.705, resp.Bounds.MaxLat, 1e-9)
}

func TestGetMarkers_EmptyHasNoBounds(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.incidents.EXPECT().ListIncidents(gomock.Any()).Return(nil, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/incidents/markers", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp MarkersResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Empty(t, resp.Markers)
	assert.Nil(t, resp.Bounds)
}

func TestStartReport_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	draftID := uuid.New()
	expectedDraft := &models.ReportDraft{
		ID:       draftID,
		Step:     models.StepDescription,
		Category: models.CategoryAssault,
	}

	m.reports.EXPECT().StartReport(gomock.Any(), models.CategoryAssault).Return(expectedDraft, nil).Times(1)

	w := makeRequest(router, "POST", "/api/v1/reports", bytes.NewBufferString(`{"category":"assault"}`))

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp ReportDraftResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, draftID, resp.ID)
	assert.Equal(t, "description", resp.Step)
}

func TestStartReport_MissingCategory(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.reports.EXPECT().StartReport(gomock.Any(), models.Category("")).Return(nil, service.ErrCategoryRequired).Times(1)

	w := makeRequest(router, "POST", "/api/v1/reports", bytes.NewBufferString(`{}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Category is required")
	assert.Contains(t, w.Body.String(), `"step":"category"`)
}

func TestSetReportDescription_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	draftID := uuid.New()
	description := "two men fighting near the entrance"
	expectedDraft := &models.ReportDraft{
		ID:          draftID,
		Step:        models.StepLocation,
		Category:    models.CategoryAssault,
		Description: &description,
	}

	m.reports.EXPECT().SetDescription(gomock.Any(), draftID, description).Return(expectedDraft, nil).Times(1)

	bodyBytes, _ := json.Marshal(SetDescriptionRequest{Description: description})
	w := makeRequest(router, "PUT", fmt.Sprintf("/api/v1/reports/%s/description", draftID.String()), bytes.NewBuffer(bodyBytes))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ReportDraftResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "location", resp.Step)
}

func TestSetReportDescription_DraftNotFound(t *testing.T) {
	_, m, router := newTestHandler(t)
	draftID := uuid.New()

	m.reports.EXPECT().SetDescription(gomock.Any(), draftID, gomock.Any()).Return(nil, service.ErrDraftNotFound).Times(1)

	w := makeRequest(router, "PUT", fmt.Sprintf("/api/v1/reports/%s/description", draftID.String()), bytes.NewBufferString(`{"description":"x"}`))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"step":"category"`)
}

func TestSetReportDescription_TooLong(t *testing.T) {
	_, m, router := newTestHandler(t)
	draftID := uuid.New()

	m.reports.EXPECT().SetDescription(gomock.Any(), draftID, gomock.Any()).Return(nil, service.ErrDescriptionTooLong).Times(1)

	longBody, _ := json.Marshal(SetDescriptionRequest{Description: string(bytes.Repeat([]byte("a"), 201))})
	w := makeRequest(router, "PUT", fmt.Sprintf("/api/v1/reports/%s/description", draftID.String()), bytes.NewBuffer(longBody))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "200 characters or less")
	assert.Contains(t, w.Body.String(), `"step":"description"`)
}

func TestSetReportLocation_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	draftID := uuid.New()
	lat, lon := 43.6532, -79.3832
	expectedDraft := &models.ReportDraft{
		ID:            draftID,
		Step:          models.StepConfirmation,
		Category:      models.CategoryFire,
		Latitude:      &lat,
		Longitude:     &lon,
		LocationLabel: "12 Elm St, Toronto",
	}

	m.reports.EXPECT().
		SetLocation(gomock.Any(), draftID, gomock.Any(), gomock.Any()).
		Return(expectedDraft, nil).
		Times(1)

	w := makeRequest(router, "PUT", fmt.Sprintf("/api/v1/reports/%s/location", draftID.String()), bytes.NewBufferString(`{"latitude":43.6532,"longitude":-79.3832}`))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp ReportDraftResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, "confirmation", resp.Step)
	assert.Equal(t, "12 Elm St, Toronto", resp.LocationLabel)
}

func TestSetReportLocation_NoCoordinates(t *testing.T) {
	_, m, router := newTestHandler(t)
	draftID := uuid.New()
	lat, lon := 43.6532, -79.3832
	expectedDraft := &models.ReportDraft{
		ID:            draftID,
		Step:          models.StepConfirmation,
		Category:      models.CategoryOther,
		Latitude:      &lat,
		Longitude:     &lon,
		LocationLabel: "Toronto, ON",
	}

	// Пустое тело: сервис получает nil-координаты и подставляет точку по умолчанию
	m.reports.EXPECT().
		SetLocation(gomock.Any(), draftID, gomock.Nil(), gomock.Nil()).
		Return(expectedDraft, nil).
		Times(1)

	w := makeRequest(router, "PUT", fmt.Sprintf("/api/v1/reports/%s/location", draftID.String()), bytes.NewBufferString(`{}`))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestConfirmReport_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	draftID := uuid.New()
	incidentID := uuid.New()
	incident := &models.Incident{ID: incidentID, Category: models.CategoryFire}

	m.reports.EXPECT().ConfirmReport(gomock.Any(), draftID).Return(incident, nil).Times(1)

	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/reports/%s/confirm", draftID.String()), nil)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp IncidentResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, incidentID, resp.ID)
}

func TestConfirmReport_LocationRequired(t *testing.T) {
	_, m, router := newTestHandler(t)
	draftID := uuid.New()

	m.reports.EXPECT().ConfirmReport(gomock.Any(), draftID).Return(nil, service.ErrLocationRequired).Times(1)

	w := makeRequest(router, "POST", fmt.Sprintf("/api/v1/reports/%s/confirm", draftID.String()), nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Location is required")
	assert.Contains(t, w.Body.String(), `"step":"location"`)
}

func TestRequestGuidance_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	aiText := "**Immediate Actions:**\n- Evacuate now."

	m.guidance.EXPECT().
		RequestGuidance(gomock.Any(), models.CategoryFire, gomock.Any(), 43.6532, -79.3832).
		Return(aiText).
		Times(1)

	w := makeRequest(router, "POST", "/api/v1/guidance", bytes.NewBufferString(`{"category":"fire","latitude":43.6532,"longitude":-79.3832}`))

	assert.Equal(t, http.StatusOK, w.Code)
	var resp GuidanceResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, aiText, resp.Guidance)
}

func TestRequestGuidance_UnknownCategory(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.guidance.EXPECT().RequestGuidance(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "POST", "/api/v1/guidance", bytes.NewBufferString(`{"category":"volcano","latitude":43.6532,"longitude":-79.3832}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Category is required")
}

func TestReverseGeocode_Success(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.locations.EXPECT().
		ResolveAddress(gomock.Any(), 43.65321234, -79.38328765).
		Return(43.65321, -79.38329, "290 Bremner Blvd, Toronto").
		Times(1)

	w := makeRequest(router, "GET", "/api/v1/geocode/reverse?lat=43.65321234&lon=-79.38328765", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp AddressResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	assert.Equal(t, 43.65321, resp.Latitude)
	assert.Equal(t, "290 Bremner Blvd, Toronto", resp.Address)
}

func TestReverseGeocode_MissingParams(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.locations.EXPECT().ResolveAddress(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	w := makeRequest(router, "GET", "/api/v1/geocode/reverse?lat=43.65", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "lat and lon query parameters are required")
}

func TestNearbyServices_Success(t *testing.T) {
	_, m, router := newTestHandler(t)
	services := []models.EmergencyService{
		{Name: "52 Division", Type: models.ServicePolice, Address: "255 Dundas St W", Distance: 400},
		{Name: "Toronto General Hospital", Type: models.ServiceHospital, Address: "200 Elizabeth St", Distance: 1200},
	}

	m.locations.EXPECT().NearbyServices(gomock.Any(), 43.6532, -79.3832, 2000).Return(services, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/services/nearby?lat=43.6532&lon=-79.3832&radius=2000", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp []EmergencyServiceResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err)
	require.Len(t, resp, 2)
	assert.Equal(t, "police", resp[0].Type)
	assert.Equal(t, "52 Division", resp[0].Name)
}

func TestNearbyServices_DefaultRadius(t *testing.T) {
	_, m, router := newTestHandler(t)

	// Радиус не указан: обработчик передает ноль, сервис подставит настройку
	m.locations.EXPECT().NearbyServices(gomock.Any(), 43.6532, -79.3832, 0).Return(nil, nil).Times(1)

	w := makeRequest(router, "GET", "/api/v1/services/nearby?lat=43.6532&lon=-79.3832", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNearbyServices_ServiceError(t *testing.T) {
	_, m, router := newTestHandler(t)

	m.locations.EXPECT().NearbyServices(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("geoapify unreachable")).Times(1)

	w := makeRequest(router, "GET", "/api/v1/services/nearby?lat=43.6532&lon=-79.3832", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestHealthCheck_Success(t *testing.T) {
	_, _, router := newTestHandler(t)

	w := makeRequest(router, "GET", "/api/v1/system/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
