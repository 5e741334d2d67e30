package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/gtawatch/incident-watch/internal/guidance"
	"github.com/gtawatch/incident-watch/internal/models"
)

// guidanceService выдает инструкции по безопасности: сначала внешний
// AI-сервис, при любом его отказе - статическая таблица по категории.
type guidanceService struct {
	client GuidanceClient
	logger *logrus.Logger
}

func NewGuidanceService(client GuidanceClient, logger *logrus.Logger) GuidanceService {
	return &guidanceService{
		client: client,
		logger: logger,
	}
}

// RequestGuidance возвращает текст инструкции для инцидента.
// Функция тотальна: ошибка транспорта, не-2xx статус, пустой ответ или
// отсутствие ключа приводят к статическому тексту категории, а не к ошибке.
func (s *guidanceService) RequestGuidance(ctx context.Context, category models.Category, description *string, lat, lon float64) string {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "guidance",
		"method":   "RequestGuidance",
		"category": category,
	})

	if !s.client.Configured() {
		log.Debug("Guidance client is not configured, using static fallback")
		return guidance.Fallback(category)
	}

	text, err := s.client.Complete(ctx, category, description, lat, lon)
	if err != nil {
		log.WithError(err).Warn("AI guidance request failed, using static fallback")
		return guidance.Fallback(category)
	}

	log.Info("AI guidance generated")
	return text
}
