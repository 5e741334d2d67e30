package stream

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/gtawatch/incident-watch/internal/models"
)

// Listener - фоновый воркер, переливающий события из канала Redis в Hub
type Listener struct {
	redisClient *redis.Client
	hub         *Hub
	logger      *logrus.Logger
}

// NewListener создает новый Listener
func NewListener(redisClient *redis.Client, hub *Hub, logger *logrus.Logger) *Listener {
	return &Listener{
		redisClient: redisClient,
		hub:         hub,
		logger:      logger,
	}
}

// Start запускает горутину подписки на канал Redis.
// Останавливается при отмене контекста.
func (l *Listener) Start(ctx context.Context) {
	l.logger.Info("Starting incident stream listener...")
	pubsub := l.redisClient.Subscribe(ctx, insertChannel)

	go func() {
		defer pubsub.Close()
		ch := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				l.logger.Info("Stopping incident stream listener.")
				return
			case msg, ok := <-ch:
				if !ok {
					if !errors.Is(ctx.Err(), context.Canceled) {
						l.logger.Error("Incident stream subscription channel closed unexpectedly")
					}
					return
				}
				incident := &models.Incident{}
				if err := json.Unmarshal([]byte(msg.Payload), incident); err != nil {
					l.logger.WithError(err).Error("Failed to unmarshal incident event from Redis")
					continue
				}
				l.hub.Broadcast(incident)
			}
		}
	}()
}
