package v1

import (
	"time"

	"github.com/google/uuid"

	"github.com/gtawatch/incident-watch/pkg/geo"
)

// CreateIncidentRequest DTO для прямой отправки инцидента
// @Description DTO для прямой отправки инцидента
type CreateIncidentRequest struct {
	Category      string  `json:"category" validate:"required"`
	Description   string  `json:"description,omitempty" validate:"max=200"`
	Latitude      float64 `json:"latitude" validate:"required,latitude"`
	Longitude     float64 `json:"longitude" validate:"required,longitude"`
	LocationLabel string  `json:"location_label,omitempty"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID            uuid.UUID `json:"id"`
	Category      string    `json:"category"`
	Description   *string   `json:"description"`
	Latitude      float64   `json:"latitude"`
	Longitude     float64   `json:"longitude"`
	LocationLabel string    `json:"location_label"`
	MarkerColor   string    `json:"marker_color"`
	CreatedAt     time.Time `json:"created_at"`
}

// StartReportRequest DTO для первого шага мастера: выбор категории
// @Description DTO для первого шага мастера: выбор категории
type StartReportRequest struct {
	Category string `json:"category" validate:"required"`
}

// SetDescriptionRequest DTO для второго шага мастера: описание
// @Description DTO для второго шага мастера: описание (может быть пустым)
type SetDescriptionRequest struct {
	Description string `json:"description" validate:"max=200"`
}

// SetLocationRequest DTO для третьего шага мастера: точка инцидента.
// Отсутствие координат означает, что геопозиция клиента недоступна.
// @Description DTO для третьего шага мастера: точка инцидента
type SetLocationRequest struct {
	Latitude  *float64 `json:"latitude" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude" validate:"omitempty,longitude"`
}

// ReportDraftResponse DTO для ответа с состоянием черновика
// @Description DTO для ответа с состоянием черновика
type ReportDraftResponse struct {
	ID            uuid.UUID  `json:"id"`
	Step          string     `json:"step"`
	Category      string     `json:"category"`
	Description   *string    `json:"description,omitempty"`
	Latitude      *float64   `json:"latitude,omitempty"`
	Longitude     *float64   `json:"longitude,omitempty"`
	LocationLabel string     `json:"location_label,omitempty"`
	IncidentID    *uuid.UUID `json:"incident_id,omitempty"`
}

// GuidanceRequest DTO для запроса инструкции по безопасности
// @Description DTO для запроса инструкции по безопасности
type GuidanceRequest struct {
	Category    string  `json:"category" validate:"required"`
	Description *string `json:"description,omitempty"`
	Latitude    float64 `json:"latitude" validate:"required,latitude"`
	Longitude   float64 `json:"longitude" validate:"required,longitude"`
}

// GuidanceResponse DTO для ответа с инструкцией
// @Description DTO для ответа с инструкцией
type GuidanceResponse struct {
	Guidance string `json:"guidance"`
}

// AddressResponse DTO для ответа обратного геокодирования
// @Description DTO для ответа обратного геокодирования
type AddressResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   string  `json:"address"`
}

// EmergencyServiceResponse DTO для ближайшей экстренной службы
// @Description DTO для ближайшей экстренной службы
type EmergencyServiceResponse struct {
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	Address   string  `json:"address"`
	Distance  float64 `json:"distance"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// MarkerResponse DTO для маркера инцидента на карте
// @Description DTO для маркера инцидента на карте
type MarkerResponse struct {
	ID        uuid.UUID `json:"id"`
	Category  string    `json:"category"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	Color     string    `json:"color"`
}

// MarkersResponse DTO для режима отображения карты: маркеры и рамка обзора
// @Description DTO для режима отображения карты
type MarkersResponse struct {
	Markers []MarkerResponse `json:"markers"`
	Bounds  *geo.Bounds      `json:"bounds,omitempty"`
	MaxZoom int              `json:"max_zoom"`
}

// StatsResponse DTO для ответа со статистикой за окно видимости
// @Description DTO для ответа со статистикой за окно видимости
type StatsResponse struct {
	Total      int             `json:"total"`
	Categories []CategoryCount `json:"categories"`
}

// CategoryCount - количество инцидентов в категории
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}
