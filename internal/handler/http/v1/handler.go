package v1

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/gtawatch/incident-watch/internal/config"
	"github.com/gtawatch/incident-watch/internal/models"
	"github.com/gtawatch/incident-watch/internal/service"
	"github.com/gtawatch/incident-watch/internal/stream"
)

type Handler struct {
	incidentService service.IncidentService
	reportService   service.ReportService
	guidanceService service.GuidanceService
	locationService service.LocationService
	hub             *stream.Hub
	logger          *logrus.Logger
	validate        *validator.Validate
	cfg             *config.Config
}

func NewHandler(
	incidentService service.IncidentService,
	reportService service.ReportService,
	guidanceService service.GuidanceService,
	locationService service.LocationService,
	hub *stream.Hub,
	logger *logrus.Logger,
	cfg *config.Config,
) *Handler {
	return &Handler{
		incidentService: incidentService,
		reportService:   reportService,
		guidanceService: guidanceService,
		locationService: locationService,
		hub:             hub,
		logger:          logger,
		validate:        validator.New(),
		cfg:             cfg,
	}
}

// respondWizardError переводит ошибки валидации мастера в мягкие ответы:
// клиенту сообщается шаг, на который нужно вернуться, без сырых ошибок.
func respondWizardError(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, service.ErrCategoryRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category is required", "step": string(models.StepCategory)})
	case errors.Is(err, service.ErrLocationRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Location is required", "step": string(models.StepLocation)})
	case errors.Is(err, service.ErrDescriptionTooLong):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Description must be 200 characters or less", "step": string(models.StepDescription)})
	case errors.Is(err, service.ErrDraftNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "report draft not found or expired", "step": string(models.StepCategory)})
	default:
		return false
	}
	return true
}

// @Summary Submit a new incident
// @Description Submit an anonymous incident report directly, bypassing the step-by-step wizard.
// @Tags Incidents
// @Accept json
// @Produce json
// @Param incident body CreateIncidentRequest true "Incident submission request"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [post]
func (h *Handler) createIncident(c *gin.Context) {
	var input CreateIncidentRequest
	log := h.logger.WithField("method", "createIncident")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var description *string
	if input.Description != "" {
		description = &input.Description
	}

	incident, err := h.incidentService.SubmitIncident(
		c.Request.Context(),
		models.Category(input.Category),
		description,
		input.Latitude,
		input.Longitude,
		input.LocationLabel,
	)
	if err != nil {
		if respondWizardError(c, err) {
			return
		}
		log.WithError(err).Error("Failed to submit incident in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(incident))
}

// @Summary List recent incidents
// @Description Get all incidents inside the visibility window, newest first.
// @Tags Incidents
// @Accept json
// @Produce json
// @Success 200 {array} IncidentResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")

	incidents, err := h.incidentService.ListIncidents(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Get incident by ID
// @Description Get a single incident by its ID.
// @Tags Incidents
// @Accept json
// @Produce json
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 404 {object} map[string]string "Incident not found"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "getIncident").WithField("id", id)

	incident, err := h.incidentService.GetIncident(c.Request.Context(), id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident from service")
		c.JSON(http.StatusNotFound, gin.H{"error": "incident not found"})
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Get incident statistics
// @Description Get per-category incident counts over the visibility window.
// @Tags Incidents
// @Accept json
// @Produce json
// @Success 200 {object} StatsResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/stats [get]
func (h *Handler) getStats(c *gin.Context) {
	log := h.logger.WithField("method", "getStats")

	stats, err := h.incidentService.CategoryStats(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get stats from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToStatsResponse(stats))
}

// @Summary Get map markers
// @Description Get colored markers for every visible incident plus a padded bounding box for fitting the viewport.
// @Tags Map
// @Accept json
// @Produce json
// @Success 200 {object} MarkersResponse
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/markers [get]
func (h *Handler) getMarkers(c *gin.Context) {
	log := h.logger.WithField("method", "getMarkers")

	incidents, err := h.incidentService.ListIncidents(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToMarkersResponse(incidents))
}

// @Summary Stream new incidents
// @Description Server-sent events stream: each newly inserted incident is delivered once per connected subscriber.
// @Tags Incidents
// @Produce text/event-stream
// @Success 200 {object} IncidentResponse
// @Router /incidents/stream [get]
func (h *Handler) streamIncidents(c *gin.Context) {
	ch := h.hub.Subscribe()
	// Подписка освобождается при уходе клиента, канал не утекает.
	defer h.hub.Unsubscribe(ch)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	c.Stream(func(w io.Writer) bool {
		select {
		case incident, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("incident", ModelToIncidentResponse(incident))
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// @Summary Start a report draft
// @Description First wizard step: select an incident category. Without a category no later step is reachable.
// @Tags Reports
// @Accept json
// @Produce json
// @Param report body StartReportRequest true "Category selection"
// @Success 201 {object} ReportDraftResponse
// @Failure 400 {object} map[string]string "Missing or unknown category"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports [post]
func (h *Handler) startReport(c *gin.Context) {
	var input StartReportRequest
	log := h.logger.WithField("method", "startReport")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category is required", "step": string(models.StepCategory)})
		return
	}

	draft, err := h.reportService.StartReport(c.Request.Context(), models.Category(input.Category))
	if err != nil {
		if respondWizardError(c, err) {
			return
		}
		log.WithError(err).Error("Failed to start report in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToDraftResponse(draft))
}

// @Summary Set report description
// @Description Second wizard step: optional description up to 200 characters. An empty body skips the step.
// @Tags Reports
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param description body SetDescriptionRequest true "Description"
// @Success 200 {object} ReportDraftResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Draft not found or expired"
// @Router /reports/{id}/description [put]
func (h *Handler) setReportDescription(c *gin.Context) {
	draftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid draft ID"})
		return
	}
	log := h.logger.WithField("method", "setReportDescription").WithField("draft_id", draftID)

	var input SetDescriptionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	draft, err := h.reportService.SetDescription(c.Request.Context(), draftID, input.Description)
	if err != nil {
		if respondWizardError(c, err) {
			return
		}
		log.WithError(err).Error("Failed to set description in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToDraftResponse(draft))
}

// @Summary Set report location
// @Description Third wizard step: set the incident point. Without coordinates the default point (Toronto center) is used. The point is rounded to 5 decimals and reverse-geocoded.
// @Tags Reports
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param location body SetLocationRequest true "Coordinates from the client device, optional"
// @Success 200 {object} ReportDraftResponse
// @Failure 400 {object} map[string]string "Validation error"
// @Failure 404 {object} map[string]string "Draft not found or expired"
// @Router /reports/{id}/location [put]
func (h *Handler) setReportLocation(c *gin.Context) {
	draftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid draft ID"})
		return
	}
	log := h.logger.WithField("method", "setReportLocation").WithField("draft_id", draftID)

	var input SetLocationRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	draft, err := h.reportService.SetLocation(c.Request.Context(), draftID, input.Latitude, input.Longitude)
	if err != nil {
		if respondWizardError(c, err) {
			return
		}
		log.WithError(err).Error("Failed to set location in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ModelToDraftResponse(draft))
}

// @Summary Confirm and submit a report
// @Description Final wizard step: performs the single insert. Re-confirming an already submitted draft returns the existing incident instead of creating a duplicate.
// @Tags Reports
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Success 201 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Missing category or location"
// @Failure 404 {object} map[string]string "Draft not found or expired"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports/{id}/confirm [post]
func (h *Handler) confirmReport(c *gin.Context) {
	draftID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid draft ID"})
		return
	}
	log := h.logger.WithField("method", "confirmReport").WithField("draft_id", draftID)

	incident, err := h.reportService.ConfirmReport(c.Request.Context(), draftID)
	if err != nil {
		if respondWizardError(c, err) {
			return
		}
		log.WithError(err).Error("Failed to confirm report in service")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusCreated, ModelToIncidentResponse(incident))
}

// @Summary Request safety guidance
// @Description Request AI-generated safety guidance for an incident. Falls back to a static per-category text when the AI service fails or is not configured.
// @Tags Guidance
// @Accept json
// @Produce json
// @Param guidance body GuidanceRequest true "Guidance request"
// @Success 200 {object} GuidanceResponse
// @Failure 400 {object} map[string]string "Missing or unknown category"
// @Router /guidance [post]
func (h *Handler) requestGuidance(c *gin.Context) {
	var input GuidanceRequest
	log := h.logger.WithField("method", "requestGuidance")

	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category is required"})
		return
	}

	category := models.Category(input.Category)
	if !category.Valid() {
		log.WithField("category", input.Category).Warn("Guidance requested for unknown category")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Category is required"})
		return
	}

	text := h.guidanceService.RequestGuidance(c.Request.Context(), category, input.Description, input.Latitude, input.Longitude)
	c.JSON(http.StatusOK, GuidanceResponse{Guidance: text})
}

// @Summary Reverse geocode a point
// @Description Convert coordinates into a human-readable address. Falls back to the 5-decimal coordinate string, never empty.
// @Tags Location
// @Accept json
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Success 200 {object} AddressResponse
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Router /geocode/reverse [get]
func (h *Handler) reverseGeocode(c *gin.Context) {
	lat, err1 := strconv.ParseFloat(c.Query("lat"), 64)
	lon, err2 := strconv.ParseFloat(c.Query("lon"), 64)
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lon query parameters are required"})
		return
	}

	lat, lon, address := h.locationService.ResolveAddress(c.Request.Context(), lat, lon)
	c.JSON(http.StatusOK, AddressResponse{
		Latitude:  lat,
		Longitude: lon,
		Address:   address,
	})
}

// @Summary Find nearby emergency services
// @Description Find hospitals, police and fire stations around a point, sorted by distance. A failing category lookup contributes zero results.
// @Tags Location
// @Accept json
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Param radius query int false "Radius in meters" default(5000)
// @Success 200 {array} EmergencyServiceResponse
// @Failure 400 {object} map[string]string "Invalid coordinates"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /services/nearby [get]
func (h *Handler) nearbyServices(c *gin.Context) {
	log := h.logger.WithField("method", "nearbyServices")

	lat, err1 := strconv.ParseFloat(c.Query("lat"), 64)
	lon, err2 := strconv.ParseFloat(c.Query("lon"), 64)
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lon query parameters are required"})
		return
	}
	radius, _ := strconv.Atoi(c.DefaultQuery("radius", "0"))

	services, err := h.locationService.NearbyServices(c.Request.Context(), lat, lon, radius)
	if err != nil {
		log.WithError(err).Error("Failed to find nearby services")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, ModelsToServiceResponses(services))
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
