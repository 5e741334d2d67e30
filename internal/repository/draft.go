package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/gtawatch/incident-watch/internal/models"
	"github.com/gtawatch/incident-watch/internal/service"
)

// DraftRepository хранит черновики мастера подачи сообщений в Redis.
// Черновик живет draftTTL и исчезает сам, если мастер брошен на полпути.
type DraftRepository struct {
	redisClient *redis.Client
	draftTTL    time.Duration
}

func NewDraftRepository(redisClient *redis.Client, draftTTL time.Duration) service.DraftRepository {
	return &DraftRepository{
		redisClient: redisClient,
		draftTTL:    draftTTL,
	}
}

func draftKey(id uuid.UUID) string {
	return fmt.Sprintf("report_draft:%s", id.String())
}

// Save сохраняет черновик и продлевает его TTL
func (r *DraftRepository) Save(ctx context.Context, draft *models.ReportDraft) error {
	val, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to marshal report draft: %w", err)
	}
	if err := r.redisClient.Set(ctx, draftKey(draft.ID), val, r.draftTTL).Err(); err != nil {
		return fmt.Errorf("failed to save report draft: %w", err)
	}
	return nil
}

// Get возвращает черновик по id. Истекший или несуществующий черновик - ошибка.
func (r *DraftRepository) Get(ctx context.Context, id uuid.UUID) (*models.ReportDraft, error) {
	val, err := r.redisClient.Get(ctx, draftKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, service.ErrDraftNotFound
		}
		return nil, fmt.Errorf("failed to get report draft: %w", err)
	}

	draft := &models.ReportDraft{}
	if err := json.Unmarshal(val, draft); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report draft: %w", err)
	}
	return draft, nil
}
