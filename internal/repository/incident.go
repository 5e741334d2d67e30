package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/gtawatch/incident-watch/internal/models"
	"github.com/gtawatch/incident-watch/internal/service"
)

const (
	recentCacheKey = "incidents:recent"
	recentCacheTTL = 30 * time.Second
)

type IncidentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewIncidentRepository(db *pgxpool.Pool, redisClient *redis.Client) service.IncidentRepository {
	return &IncidentRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// Create вставляет одну запись об инциденте. id и created_at назначает бд.
// Повторных попыток нет: при ошибке вызывающая сторона решает сама.
func (r *IncidentRepository) Create(ctx context.Context, incident *models.Incident) error {
	query := `
		INSERT INTO incidents (category, description, latitude, longitude, location_label)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		incident.Category,
		incident.Description,
		incident.Latitude,
		incident.Longitude,
		incident.LocationLabel,
	).Scan(&incident.ID, &incident.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

// GetByID возвращает инцидент по его UUID
func (r *IncidentRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Incident, error) {
	incident := &models.Incident{}
	query := `
		SELECT id, category, description, latitude, longitude, location_label, created_at
		FROM incidents
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&incident.ID,
		&incident.Category,
		&incident.Description,
		&incident.Latitude,
		&incident.Longitude,
		&incident.LocationLabel,
		&incident.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

// ListIncidents возвращает инциденты внутри окна видимости,
// отсортированные по created_at по убыванию. Без пагинации.
func (r *IncidentRepository) ListIncidents(ctx context.Context, window time.Duration) ([]*models.Incident, error) {
	query := `
		SELECT id, category, description, latitude, longitude, location_label, created_at
		FROM incidents
		WHERE created_at >= NOW() - $1::interval
		ORDER BY created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, window)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident := &models.Incident{}
		err := rows.Scan(
			&incident.ID,
			&incident.Category,
			&incident.Description,
			&incident.Latitude,
			&incident.Longitude,
			&incident.LocationLabel,
			&incident.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}

// CategoryStats возвращает количество инцидентов по категориям за окно видимости
func (r *IncidentRepository) CategoryStats(ctx context.Context, window time.Duration) ([]models.CategoryCount, error) {
	query := `
		SELECT category, COUNT(*)
		FROM incidents
		WHERE created_at >= NOW() - $1::interval
		GROUP BY category
		ORDER BY COUNT(*) DESC;
	`
	rows, err := r.db.Query(ctx, query, window)
	if err != nil {
		return nil, fmt.Errorf("failed to get category stats: %w", err)
	}
	defer rows.Close()

	stats := make([]models.CategoryCount, 0)
	for rows.Next() {
		var cc models.CategoryCount
		if err := rows.Scan(&cc.Category, &cc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan category stats row: %w", err)
		}
		stats = append(stats, cc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error stats iteration: %w", err)
	}
	return stats, nil
}

// GetRecentFromCache пытается получить список инцидентов из Redis
func (r *IncidentRepository) GetRecentFromCache(ctx context.Context) ([]*models.Incident, error) {
	val, err := r.redisClient.Get(ctx, recentCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get incidents from cache: %w", err)
	}

	incidents := make([]*models.Incident, 0)
	if err := json.Unmarshal(val, &incidents); err != nil {
		return nil, fmt.Errorf("failed to unmarshal incidents from cache: %w", err)
	}
	return incidents, nil
}

// SetRecentCache сохраняет список инцидентов в Redis
func (r *IncidentRepository) SetRecentCache(ctx context.Context, incidents []*models.Incident) error {
	val, err := json.Marshal(incidents)
	if err != nil {
		return fmt.Errorf("failed to marshal incidents for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, recentCacheKey, val, recentCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set incidents in cache: %w", err)
	}
	return nil
}

// InvalidateRecentCache удаляет кэш списка инцидентов из Redis
func (r *IncidentRepository) InvalidateRecentCache(ctx context.Context) error {
	if err := r.redisClient.Del(ctx, recentCacheKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate incidents cache: %w", err)
	}
	return nil
}
