package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/gtawatch/incident-watch/internal/config"
	"github.com/gtawatch/incident-watch/internal/models"
	"github.com/gtawatch/incident-watch/internal/service/mocks"
	stream_mocks "github.com/gtawatch/incident-watch/internal/stream/mocks"
	"github.com/gtawatch/incident-watch/internal/webhook"
	webhook_mocks "github.com/gtawatch/incident-watch/internal/webhook/mocks"
)

// newTestIncidentService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestIncidentService(t *testing.T) (*incidentService, *mocks.MockIncidentRepository, *stream_mocks.MockPublisher, *webhook_mocks.MockWebhookPublisher) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockIncidentRepository(ctrl)
	streamMock := stream_mocks.NewMockPublisher(ctrl)
	webhookMock := webhook_mocks.NewMockWebhookPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		RetentionWindow: 24 * time.Hour,
	}

	service := NewIncidentService(repoMock, logger, cfg, streamMock, webhookMock)
	return service.(*incidentService), repoMock, streamMock, webhookMock
}

func TestSubmitIncident_Success(t *testing.T) {
	// Подготовка
	service, repoMock, streamMock, webhookMock := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	// Ожидания
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, inc *models.Incident) error {
			// Симулируем, что БД присвоила ID и время создания
			inc.ID = incidentID
			inc.CreatedAt = time.Now()
			return nil
		}).Times(1)

	repoMock.EXPECT().InvalidateRecentCache(ctx).Return(nil).Times(1)

	streamMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(ctx context.Context, inc *models.Incident) {
			assert.Equal(t, incidentID, inc.ID)
		}).Return(nil).Times(1)

	webhookMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Do(func(ctx context.Context, event webhook.WebhookEvent) {
			assert.Equal(t, "incident.created", event.Event)
			assert.Equal(t, incidentID, event.Incident.ID)
		}).Return(nil).Times(1)

	// Действие
	incident, err := service.SubmitIncident(ctx, models.CategoryFire, nil, 43.6532, -79.3832, "Yonge-Dundas Square")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, incidentID, incident.ID)
	assert.Equal(t, models.CategoryFire, incident.Category)
	assert.Equal(t, "Yonge-Dundas Square", incident.LocationLabel)
}

func TestSubmitIncident_RoundsCoordinates(t *testing.T) {
	// Подготовка
	service, repoMock, streamMock, webhookMock := newTestIncidentService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		Do(func(ctx context.Context, inc *models.Incident) {
			// Координаты округлены до 5 знаков до записи
			assert.Equal(t, 43.65321, inc.Latitude)
			assert.Equal(t, -79.38329, inc.Longitude)
		}).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateRecentCache(ctx).Return(nil).Times(1)
	streamMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)
	webhookMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	_, err := service.SubmitIncident(ctx, models.CategoryTheft, nil, 43.65321234, -79.38328765, "label")

	// Проверки
	require.NoError(t, err)
}

func TestSubmitIncident_EmptyLabelFallsBackToCoordinates(t *testing.T) {
	// Подготовка
	service, repoMock, streamMock, webhookMock := newTestIncidentService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		Do(func(ctx context.Context, inc *models.Incident) {
			assert.Equal(t, "43.65320, -79.38320", inc.LocationLabel)
		}).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateRecentCache(ctx).Return(nil).Times(1)
	streamMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)
	webhookMock.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	_, err := service.SubmitIncident(ctx, models.CategoryOther, nil, 43.6532, -79.3832, "")

	// Проверки
	require.NoError(t, err)
}

func TestSubmitIncident_UnknownCategory(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestIncidentService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0) // Репозиторий не должен вызываться

	// Действие
	incident, err := service.SubmitIncident(ctx, models.Category("earthquake"), nil, 43.6532, -79.3832, "")

	// Проверки
	require.Error(t, err)
	assert.Nil(t, incident)
	assert.ErrorIs(t, err, ErrCategoryRequired)
}

func TestSubmitIncident_DescriptionTooLong(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	description := strings.Repeat("a", 201)

	// Ожидания
	repoMock.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	incident, err := service.SubmitIncident(ctx, models.CategoryAssault, &description, 43.6532, -79.3832, "")

	// Проверки
	require.Error(t, err)
	assert.Nil(t, incident)
	assert.ErrorIs(t, err, ErrDescriptionTooLong)
}

func TestSubmitIncident_RepositoryError(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	dbError := fmt.Errorf("база недоступна")

	// Ожидания
	repoMock.EXPECT().Create(ctx, gomock.Any()).Return(dbError).Times(1)

	// Действие
	incident, err := service.SubmitIncident(ctx, models.CategoryShooting, nil, 43.6532, -79.3832, "")

	// Проверки
	require.Error(t, err)
	assert.Nil(t, incident)
	assert.ErrorContains(t, err, "could not create incident")
}

func TestSubmitIncident_PublishFailuresDoNotFailSubmission(t *testing.T) {
	// Подготовка
	service, repoMock, streamMock, webhookMock := newTestIncidentService(t)
	ctx := context.Background()

	// Ожидания: отказ кэша, стрима и вебхуков не влияет на результат
	repoMock.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)
	repoMock.EXPECT().InvalidateRecentCache(ctx).Return(fmt.Errorf("redis недоступен")).Times(1)
	streamMock.EXPECT().Publish(ctx, gomock.Any()).Return(fmt.Errorf("publish failed")).Times(1)
	webhookMock.EXPECT().Publish(ctx, gomock.Any()).Return(fmt.Errorf("queue failed")).Times(1)

	// Действие
	incident, err := service.SubmitIncident(ctx, models.CategoryMedical, nil, 43.6532, -79.3832, "label")

	// Проверки
	require.NoError(t, err)
	assert.NotNil(t, incident)
}

func TestListIncidents_Success_FromCache(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	cached := []*models.Incident{
		{ID: uuid.New(), Category: models.CategoryFire},
		{ID: uuid.New(), Category: models.CategoryTheft},
	}

	// Ожидания
	repoMock.EXPECT().GetRecentFromCache(ctx).Return(cached, nil).Times(1)
	repoMock.EXPECT().ListIncidents(gomock.Any(), gomock.Any()).Times(0) // БД не трогаем

	// Действие
	incidents, err := service.ListIncidents(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, cached, incidents)
}

func TestListIncidents_Success_FromDB(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	expected := []*models.Incident{
		{ID: uuid.New(), Category: models.CategoryAccident},
	}

	// Ожидания
	// 1. Промах кеша
	repoMock.EXPECT().GetRecentFromCache(ctx).Return(nil, nil).Times(1)

	// 2. Чтение из БД за окно видимости
	repoMock.EXPECT().ListIncidents(ctx, 24*time.Hour).Return(expected, nil).Times(1)

	// 3. Запись в кеш
	repoMock.EXPECT().SetRecentCache(ctx, expected).Return(nil).Times(1)

	// Действие
	incidents, err := service.ListIncidents(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, incidents)
}

func TestListIncidents_DBError(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	dbError := fmt.Errorf("timeout")

	// Ожидания
	repoMock.EXPECT().GetRecentFromCache(ctx).Return(nil, nil).Times(1)
	repoMock.EXPECT().ListIncidents(ctx, 24*time.Hour).Return(nil, dbError).Times(1)

	// Действие
	incidents, err := service.ListIncidents(ctx)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, incidents)
	assert.ErrorContains(t, err, "could not list incidents")
}

func TestGetIncident_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()
	expected := &models.Incident{ID: incidentID, Category: models.CategorySuspicious}

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(expected, nil).Times(1)

	// Действие
	incident, err := service.GetIncident(ctx, incidentID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, incident)
}

func TestGetIncident_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	incidentID := uuid.New()

	// Ожидания
	repoMock.EXPECT().GetByID(ctx, incidentID).Return(nil, fmt.Errorf("не найдено")).Times(1)

	// Действие
	incident, err := service.GetIncident(ctx, incidentID)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, incident)
	assert.ErrorContains(t, err, "could not get incident")
}

func TestCategoryStats_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _, _ := newTestIncidentService(t)
	ctx := context.Background()
	expected := []models.CategoryCount{
		{Category: models.CategoryFire, Count: 3},
		{Category: models.CategoryTheft, Count: 1},
	}

	// Ожидания
	repoMock.EXPECT().CategoryStats(ctx, 24*time.Hour).Return(expected, nil).Times(1)

	// Действие
	stats, err := service.CategoryStats(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, stats)
}

func TestNormalizeDescription(t *testing.T) {
	// Пробельная строка означает отсутствие описания
	desc, err := NormalizeDescription("   ")
	require.NoError(t, err)
	assert.Nil(t, desc)

	// Пробелы по краям обрезаются
	desc, err = NormalizeDescription("  two cars collided  ")
	require.NoError(t, err)
	require.NotNil(t, desc)
	assert.Equal(t, "two cars collided", *desc)

	// Ровно 200 символов проходит
	desc, err = NormalizeDescription(strings.Repeat("x", 200))
	require.NoError(t, err)
	require.NotNil(t, desc)

	// 201 символ отклоняется
	_, err = NormalizeDescription(strings.Repeat("x", 201))
	assert.ErrorIs(t, err, ErrDescriptionTooLong)
}
