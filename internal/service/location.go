package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/gtawatch/incident-watch/internal/config"
	"github.com/gtawatch/incident-watch/internal/models"
	"github.com/gtawatch/incident-watch/pkg/geo"
)

// locationService - тонкая обертка над геокодером: применяет правило
// округления ко всем координатам, приходящим от пользователя.
type locationService struct {
	geocoder Geocoder
	logger   *logrus.Logger
	cfg      *config.Config
}

func NewLocationService(geocoder Geocoder, logger *logrus.Logger, cfg *config.Config) LocationService {
	return &locationService{
		geocoder: geocoder,
		logger:   logger,
		cfg:      cfg,
	}
}

// ResolveAddress округляет точку и возвращает ее вместе с адресом.
// Адрес всегда непустой: при отказе геокодера это строка координат.
func (s *locationService) ResolveAddress(ctx context.Context, lat, lon float64) (float64, float64, string) {
	lat, lon = geo.RoundPoint(lat, lon)
	return lat, lon, s.geocoder.ReverseGeocode(ctx, lat, lon)
}

// NearbyServices возвращает экстренные службы вокруг точки,
// отсортированные по расстоянию. Нулевой радиус заменяется настройкой.
func (s *locationService) NearbyServices(ctx context.Context, lat, lon float64, radiusMeters int) ([]models.EmergencyService, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "location",
		"method":  "NearbyServices",
	})

	if radiusMeters <= 0 {
		radiusMeters = s.cfg.NearbyRadius
	}
	lat, lon = geo.RoundPoint(lat, lon)

	services, err := s.geocoder.FindNearbyServices(ctx, lat, lon, radiusMeters)
	if err != nil {
		log.WithError(err).Error("Failed to find nearby emergency services")
		return nil, err
	}

	log.WithField("count", len(services)).Info("Nearby emergency services found")
	return services, nil
}
