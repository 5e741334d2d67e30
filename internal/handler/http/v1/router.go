package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты для инцидентов: отправка, списки, карта, живая лента
	incidents := api.Group("/incidents")
	{
		incidents.POST("", h.createIncident)
		incidents.GET("", h.listIncidents)
		incidents.GET("/stats", h.getStats)
		incidents.GET("/markers", h.getMarkers)
		incidents.GET("/stream", h.streamIncidents)
		incidents.GET("/:id", h.getIncident)
	}

	// Маршруты мастера подачи сообщения (4 шага)
	reports := api.Group("/reports")
	{
		reports.POST("", h.startReport)
		reports.PUT("/:id/description", h.setReportDescription)
		reports.PUT("/:id/location", h.setReportLocation)
		reports.POST("/:id/confirm", h.confirmReport)
	}

	// Инструкции по безопасности
	api.POST("/guidance", h.requestGuidance)

	// Геокодирование и экстренные службы
	api.GET("/geocode/reverse", h.reverseGeocode)
	api.GET("/services/nearby", h.nearbyServices)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
