package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/gtawatch/incident-watch/internal/config"
	"github.com/gtawatch/incident-watch/internal/models"
	"github.com/gtawatch/incident-watch/internal/stream"
	"github.com/gtawatch/incident-watch/internal/webhook"
	"github.com/gtawatch/incident-watch/pkg/geo"
)

// Максимальная длина описания инцидента.
const maxDescriptionLen = 200

type incidentService struct {
	repo             IncidentRepository
	logger           *logrus.Logger
	cfg              *config.Config
	streamPublisher  stream.Publisher
	webhookPublisher webhook.WebhookPublisher
}

func NewIncidentService(repo IncidentRepository, logger *logrus.Logger, cfg *config.Config, streamPublisher stream.Publisher, webhookPublisher webhook.WebhookPublisher) IncidentService {
	return &incidentService{
		repo:             repo,
		logger:           logger,
		cfg:              cfg,
		streamPublisher:  streamPublisher,
		webhookPublisher: webhookPublisher,
	}
}

// NormalizeDescription обрезает пробелы по краям описания.
// Пустой результат означает отсутствие описания.
func NormalizeDescription(description string) (*string, error) {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return nil, nil
	}
	if len([]rune(trimmed)) > maxDescriptionLen {
		return nil, ErrDescriptionTooLong
	}
	return &trimmed, nil
}

// SubmitIncident выполняет единственную попытку сохранения инцидента.
// Координаты округляются до 5 знаков, пустая метка локации заменяется
// строкой координат. Повторных попыток нет - при ошибке вызывающая
// сторона повторяет запрос сама.
func (s *incidentService) SubmitIncident(ctx context.Context, category models.Category, description *string, lat, lon float64, locationLabel string) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "incident",
		"method":   "SubmitIncident",
		"category": category,
	})
	log.Info("Attempting to submit a new incident")

	if !category.Valid() {
		log.Warn("Rejected incident with unknown category")
		return nil, ErrCategoryRequired
	}

	if description != nil {
		normalized, err := NormalizeDescription(*description)
		if err != nil {
			return nil, err
		}
		description = normalized
	}

	lat, lon = geo.RoundPoint(lat, lon)
	if locationLabel == "" {
		locationLabel = geo.FormatPoint(lat, lon)
	}

	incident := &models.Incident{
		Category:      category,
		Description:   description,
		Latitude:      lat,
		Longitude:     lon,
		LocationLabel: locationLabel,
	}

	if err := s.repo.Create(ctx, incident); err != nil {
		log.WithError(err).Error("Failed to create incident in repository")
		return nil, fmt.Errorf("service: could not create incident: %w", err)
	}

	if err := s.repo.InvalidateRecentCache(ctx); err != nil {
		log.WithError(err).Warn("Failed to invalidate incidents cache")
	}

	// Доставка события подписчикам и вебхукам не влияет на результат отправки.
	if err := s.streamPublisher.Publish(ctx, incident); err != nil {
		log.WithError(err).Warn("Failed to publish incident insert event")
	}
	event := webhook.WebhookEvent{
		Event:     "incident.created",
		Incident:  incident,
		Timestamp: time.Now().UTC(),
	}
	if err := s.webhookPublisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to enqueue webhook event")
	}

	log.WithField("incident_id", incident.ID).Info("Incident submitted successfully")
	return incident, nil
}

// GetIncident получает инцидент по ID
func (s *incidentService) GetIncident(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "GetIncident",
		"incident_id": id,
	})
	log.Info("Fetching incident by ID")

	incident, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to get incident in repository")
		return nil, fmt.Errorf("service: could not get incident: %w", err)
	}
	return incident, nil
}

// ListIncidents возвращает инциденты за окно видимости, новые первыми.
// Сначала проверяется кэш; промах или ошибка кэша ведут в бд.
func (s *incidentService) ListIncidents(ctx context.Context) ([]*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "ListIncidents",
	})

	cached, err := s.repo.GetRecentFromCache(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to read incidents cache")
	}
	if cached != nil {
		log.WithField("count", len(cached)).Debug("Incidents served from cache")
		return cached, nil
	}

	incidents, err := s.repo.ListIncidents(ctx, s.cfg.RetentionWindow)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not list incidents: %w", err)
	}

	if err := s.repo.SetRecentCache(ctx, incidents); err != nil {
		log.WithError(err).Warn("Failed to store incidents in cache")
	}

	log.WithField("count", len(incidents)).Info("Incidents listed successfully")
	return incidents, nil
}

// CategoryStats возвращает количество инцидентов по категориям за окно видимости
func (s *incidentService) CategoryStats(ctx context.Context) ([]models.CategoryCount, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "CategoryStats",
	})

	stats, err := s.repo.CategoryStats(ctx, s.cfg.RetentionWindow)
	if err != nil {
		log.WithError(err).Error("Failed to get category stats from repository")
		return nil, fmt.Errorf("service: could not get category stats: %w", err)
	}
	return stats, nil
}
