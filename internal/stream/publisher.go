// Package stream доставляет вновь созданные инциденты подключенным
// клиентам без опроса: Redis pub/sub между экземплярами сервиса,
// внутрипроцессный hub - до SSE-подписчиков.
package stream

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/gtawatch/incident-watch/internal/models"
)

const insertChannel = "incidents:inserts"

// Publisher - интерфейс для публикации вставленных инцидентов
type Publisher interface {
	Publish(ctx context.Context, incident *models.Incident) error
}

// RedisPublisher - реализация Publisher, использующая Redis pub/sub
type RedisPublisher struct {
	redisClient *redis.Client
}

// NewRedisPublisher создает новый RedisPublisher
func NewRedisPublisher(client *redis.Client) *RedisPublisher {
	return &RedisPublisher{
		redisClient: client,
	}
}

// Publish публикует событие вставки в канал Redis
func (p *RedisPublisher) Publish(ctx context.Context, incident *models.Incident) error {
	payload, err := json.Marshal(incident)
	if err != nil {
		return fmt.Errorf("failed to marshal incident event: %w", err)
	}
	if err := p.redisClient.Publish(ctx, insertChannel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish incident event to Redis: %w", err)
	}
	return nil
}
