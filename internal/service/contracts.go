package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/gtawatch/incident-watch/internal/models"
)

// Ошибки валидации мастера подачи сообщений. Обработчик HTTP переводит их
// в 400-е ответы с указанием вернуться на первый шаг.
var (
	ErrCategoryRequired   = errors.New("category is required")
	ErrLocationRequired   = errors.New("location is required")
	ErrDescriptionTooLong = errors.New("description exceeds 200 characters")
	ErrDraftNotFound      = errors.New("report draft not found or expired")
)

// IncidentRepository определяет контракт для работы с бд инцидентов
type IncidentRepository interface {
	Create(ctx context.Context, incident *models.Incident) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	ListIncidents(ctx context.Context, window time.Duration) ([]*models.Incident, error)
	CategoryStats(ctx context.Context, window time.Duration) ([]models.CategoryCount, error)
	GetRecentFromCache(ctx context.Context) ([]*models.Incident, error)
	SetRecentCache(ctx context.Context, incidents []*models.Incident) error
	InvalidateRecentCache(ctx context.Context) error
}

// DraftRepository определяет контракт для сессионного хранилища черновиков
type DraftRepository interface {
	Save(ctx context.Context, draft *models.ReportDraft) error
	Get(ctx context.Context, id uuid.UUID) (*models.ReportDraft, error)
}

// Geocoder определяет контракт для адаптера геокодирования
type Geocoder interface {
	ReverseGeocode(ctx context.Context, lat, lon float64) string
	FindNearbyServices(ctx context.Context, lat, lon float64, radiusMeters int) ([]models.EmergencyService, error)
}

// GuidanceClient определяет контракт для внешнего AI-сервиса инструкций
type GuidanceClient interface {
	Complete(ctx context.Context, category models.Category, description *string, lat, lon float64) (string, error)
	Configured() bool
}

// IncidentService определяет контракт для бизнес-логики работы с инцидентами
type IncidentService interface {
	SubmitIncident(ctx context.Context, category models.Category, description *string, lat, lon float64, locationLabel string) (*models.Incident, error)
	GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error)
	ListIncidents(ctx context.Context) ([]*models.Incident, error)
	CategoryStats(ctx context.Context) ([]models.CategoryCount, error)
}

// ReportService определяет контракт для мастера подачи сообщений
type ReportService interface {
	StartReport(ctx context.Context, category models.Category) (*models.ReportDraft, error)
	SetDescription(ctx context.Context, draftID uuid.UUID, description string) (*models.ReportDraft, error)
	SetLocation(ctx context.Context, draftID uuid.UUID, lat, lon *float64) (*models.ReportDraft, error)
	ConfirmReport(ctx context.Context, draftID uuid.UUID) (*models.Incident, error)
}

// GuidanceService определяет контракт для выдачи инструкций по безопасности
type GuidanceService interface {
	RequestGuidance(ctx context.Context, category models.Category, description *string, lat, lon float64) string
}

// LocationService определяет контракт для операций с координатами
type LocationService interface {
	ResolveAddress(ctx context.Context, lat, lon float64) (float64, float64, string)
	NearbyServices(ctx context.Context, lat, lon float64, radiusMeters int) ([]models.EmergencyService, error)
}
