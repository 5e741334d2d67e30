package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/gtawatch/incident-watch/internal/config"
	"github.com/gtawatch/incident-watch/internal/models"
	"github.com/gtawatch/incident-watch/pkg/geo"
)

// reportService реализует мастер подачи сообщения из 4 линейных шагов:
// категория -> описание -> локация -> подтверждение. Состояние между
// шагами живет в сессионном хранилище черновиков, вход на каждый шаг
// заново проверяет, что категория выбрана.
type reportService struct {
	drafts    DraftRepository
	incidents IncidentService
	geocoder  Geocoder
	logger    *logrus.Logger
	cfg       *config.Config
}

func NewReportService(drafts DraftRepository, incidents IncidentService, geocoder Geocoder, logger *logrus.Logger, cfg *config.Config) ReportService {
	return &reportService{
		drafts:    drafts,
		incidents: incidents,
		geocoder:  geocoder,
		logger:    logger,
		cfg:       cfg,
	}
}

// StartReport начинает новый черновик. Без валидной категории из
// закрытого набора дальше первого шага пройти нельзя.
func (s *reportService) StartReport(ctx context.Context, category models.Category) (*models.ReportDraft, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "report",
		"method":   "StartReport",
		"category": category,
	})

	if !category.Valid() {
		log.Warn("Report started without a valid category")
		return nil, ErrCategoryRequired
	}

	draft := &models.ReportDraft{
		ID:        uuid.New(),
		Step:      models.StepDescription,
		Category:  category,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.drafts.Save(ctx, draft); err != nil {
		log.WithError(err).Error("Failed to save report draft")
		return nil, fmt.Errorf("service: could not start report: %w", err)
	}

	log.WithField("draft_id", draft.ID).Info("Report draft started")
	return draft, nil
}

// loadGuarded загружает черновик и повторяет проверку первого шага:
// черновик без категории отправляется обратно на выбор категории.
func (s *reportService) loadGuarded(ctx context.Context, draftID uuid.UUID) (*models.ReportDraft, error) {
	draft, err := s.drafts.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if !draft.Category.Valid() {
		return nil, ErrCategoryRequired
	}
	return draft, nil
}

// SetDescription сохраняет необязательное описание (0-200 символов).
// Пустая или пробельная строка означает пропуск шага: описания не будет.
func (s *reportService) SetDescription(ctx context.Context, draftID uuid.UUID, description string) (*models.ReportDraft, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "report",
		"method":   "SetDescription",
		"draft_id": draftID,
	})

	draft, err := s.loadGuarded(ctx, draftID)
	if err != nil {
		return nil, err
	}

	normalized, err := NormalizeDescription(description)
	if err != nil {
		return nil, err
	}
	draft.Description = normalized
	draft.Step = models.StepLocation

	if err := s.drafts.Save(ctx, draft); err != nil {
		log.WithError(err).Error("Failed to save report draft")
		return nil, fmt.Errorf("service: could not save description: %w", err)
	}
	return draft, nil
}

// SetLocation фиксирует точку инцидента. Отсутствие координат (клиент без
// геопозиции) дает точку по умолчанию - центр Торонто. Каждое изменение
// позиции округляется до 5 знаков и получает свежий адрес через обратное
// геокодирование; при отказе геокодера адресом становится строка координат,
// поле никогда не остается пустым.
func (s *reportService) SetLocation(ctx context.Context, draftID uuid.UUID, lat, lon *float64) (*models.ReportDraft, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "report",
		"method":   "SetLocation",
		"draft_id": draftID,
	})

	draft, err := s.loadGuarded(ctx, draftID)
	if err != nil {
		return nil, err
	}

	latitude := s.cfg.DefaultLatitude
	longitude := s.cfg.DefaultLongitude
	if lat != nil && lon != nil {
		latitude = *lat
		longitude = *lon
	}
	latitude, longitude = geo.RoundPoint(latitude, longitude)

	draft.Latitude = &latitude
	draft.Longitude = &longitude
	draft.LocationLabel = s.geocoder.ReverseGeocode(ctx, latitude, longitude)
	draft.Step = models.StepConfirmation

	if err := s.drafts.Save(ctx, draft); err != nil {
		log.WithError(err).Error("Failed to save report draft")
		return nil, fmt.Errorf("service: could not save location: %w", err)
	}

	log.WithField("location_label", draft.LocationLabel).Info("Report location confirmed")
	return draft, nil
}

// ConfirmReport выполняет финальную отправку. Черновик, уже создавший
// запись, возвращает ее повторно: id черновика играет роль ключа
// идемпотентности, повтор после неоднозначного сбоя не плодит дубликаты.
func (s *reportService) ConfirmReport(ctx context.Context, draftID uuid.UUID) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "report",
		"method":   "ConfirmReport",
		"draft_id": draftID,
	})

	draft, err := s.loadGuarded(ctx, draftID)
	if err != nil {
		return nil, err
	}

	if draft.IncidentID != nil {
		log.WithField("incident_id", *draft.IncidentID).Info("Report already submitted, returning existing incident")
		return s.incidents.GetIncident(ctx, *draft.IncidentID)
	}

	if !draft.HasLocation() {
		return nil, ErrLocationRequired
	}

	incident, err := s.incidents.SubmitIncident(ctx, draft.Category, draft.Description, *draft.Latitude, *draft.Longitude, draft.LocationLabel)
	if err != nil {
		log.WithError(err).Error("Failed to submit incident from report draft")
		return nil, err
	}

	draft.Step = models.StepSubmitted
	draft.IncidentID = &incident.ID
	if err := s.drafts.Save(ctx, draft); err != nil {
		// Запись уже создана; несохраненный черновик стоит лишь того,
		// что повторное подтверждение может создать дубликат.
		log.WithError(err).Warn("Failed to mark report draft as submitted")
	}

	log.WithField("incident_id", incident.ID).Info("Report confirmed and submitted")
	return incident, nil
}
