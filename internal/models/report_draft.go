package models

import (
	"time"

	"github.com/google/uuid"
)

// ReportStep - шаг мастера подачи сообщения.
type ReportStep string

const (
	StepCategory     ReportStep = "category"
	StepDescription  ReportStep = "description"
	StepLocation     ReportStep = "location"
	StepConfirmation ReportStep = "confirmation"
	StepSubmitted    ReportStep = "submitted"
)

// ReportDraft - состояние мастера подачи сообщения между шагами.
// Хранится в сессионном хранилище с TTL, а не в параметрах навигации.
type ReportDraft struct {
	ID            uuid.UUID  `json:"id"`
	Step          ReportStep `json:"step"`
	Category      Category   `json:"category"`
	Description   *string    `json:"description,omitempty"`
	Latitude      *float64   `json:"latitude,omitempty"`
	Longitude     *float64   `json:"longitude,omitempty"`
	LocationLabel string     `json:"location_label,omitempty"`
	// IncidentID заполняется после успешной отправки: повторное
	// подтверждение черновика не создает дубликат записи.
	IncidentID *uuid.UUID `json:"incident_id,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}

// HasLocation сообщает, выбрана ли точка на шаге подтверждения локации.
func (d *ReportDraft) HasLocation() bool {
	return d.Latitude != nil && d.Longitude != nil
}
