package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/telecom_outage_system/internal/models"
	"github.com/shenikar/telecom_outage_system/internal/service/mocks"
	"github.com/shenikar/telecom_outage_system/pkg/e"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type outageMocks struct {
	repo      *mocks.MockOutageReader
	cache     *mocks.MockOutageCache
	refs      *mocks.MockReferenceRepository
	analytics *mocks.MockAnalyticsRepository
}

// newTestOutageService - вспомогательная функция для создания инстанса сервиса с моками.
func newTestOutageService(t *testing.T) (*outageService, outageMocks) {
	ctrl := gomock.NewController(t)
	m := outageMocks{
		repo:      mocks.NewMockOutageReader(ctrl),
		cache:     mocks.NewMockOutageCache(ctrl),
		refs:      mocks.NewMockReferenceRepository(ctrl),
		analytics: mocks.NewMockAnalyticsRepository(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	svc := NewOutageService(m.repo, m.cache, m.refs, m.analytics, clockwork.NewFakeClockAt(testNow), logger)
	return svc.(*outageService), m
}

func ptr[T any](v T) *T { return &v }

func TestGetOutage_Success_FromCache(t *testing.T) {
	// Подготовка
	service, m := newTestOutageService(t)
	ctx := context.Background()
	expected := &models.Outage{ID: 7, Title: models.BilingualText{SV: "Störning", EN: "disruption"}}

	// Ожидания
	m.cache.EXPECT().GetOutage(ctx, int64(7)).Return(expected, nil).Times(1)

	// Действие
	outage, err := service.GetOutage(ctx, 7)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, outage)
}

func TestGetOutage_Success_FromDB(t *testing.T) {
	// Подготовка
	service, m := newTestOutageService(t)
	ctx := context.Background()
	expected := &models.Outage{ID: 7}

	// Ожидания
	// 1. Промах кеша
	m.cache.EXPECT().GetOutage(ctx, int64(7)).Return(nil, nil).Times(1)
	// 2. Попадание в БД
	m.repo.EXPECT().GetByID(ctx, int64(7)).Return(expected, nil).Times(1)
	// 3. Запись в кеш
	m.cache.EXPECT().SetOutage(ctx, expected).Return(nil).Times(1)

	// Действие
	outage, err := service.GetOutage(ctx, 7)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, outage)
}

func TestGetOutage_NotFound(t *testing.T) {
	// Подготовка
	service, m := newTestOutageService(t)
	ctx := context.Background()

	// Ожидания
	m.cache.EXPECT().GetOutage(ctx, int64(404)).Return(nil, fmt.Errorf("redis: connection refused")).Times(1)
	m.repo.EXPECT().GetByID(ctx, int64(404)).Return(nil, fmt.Errorf("repository: get outage: %w", e.ErrNotFound)).Times(1)

	// Действие
	outage, err := service.GetOutage(ctx, 404)

	// Проверки
	require.Error(t, err)
	assert.Nil(t, outage)
	assert.ErrorIs(t, err, e.ErrNotFound)
	assert.ErrorContains(t, err, "could not get outage")
}

func TestListOutages_RadiusFilter(t *testing.T) {
	// Подготовка
	service, m := newTestOutageService(t)
	ctx := context.Background()
	stockholm := &models.Outage{ID: 1, Latitude: ptr(59.33), Longitude: ptr(18.07)}
	uppsala := &models.Outage{ID: 2, Latitude: ptr(59.86), Longitude: ptr(17.64)}
	malmo := &models.Outage{ID: 3, Latitude: ptr(55.60), Longitude: ptr(13.00)}
	unknown := &models.Outage{ID: 4}
	filter := models.OutageFilter{
		Status:    models.StatusActive,
		Latitude:  ptr(59.3293),
		Longitude: ptr(18.0686),
		RadiusKm:  100,
		Limit:     10,
	}

	// Ожидания
	m.repo.EXPECT().
		ListOutages(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, f models.OutageFilter) ([]*models.Outage, error) {
			// лимит применяется после фильтра по радиусу, БД получает только прямоугольник
			assert.Equal(t, 0, f.Limit)
			assert.Equal(t, models.StatusActive, f.Status)
			require.NotNil(t, f.Box)
			assert.InDelta(t, 58.43, f.Box.MinLat, 0.01)
			assert.InDelta(t, 60.23, f.Box.MaxLat, 0.01)
			assert.Less(t, f.Box.MinLon, 17.64)
			assert.Greater(t, f.Box.MaxLon, 18.07)
			return []*models.Outage{stockholm, uppsala, malmo, unknown}, nil
		}).
		Times(1)

	// Действие
	outages, err := service.ListOutages(ctx, filter)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, []*models.Outage{stockholm, uppsala}, outages)
}

func TestListOutages_DefaultLimit(t *testing.T) {
	// Подготовка
	service, m := newTestOutageService(t)
	ctx := context.Background()

	// Ожидания
	m.repo.EXPECT().ListOutages(ctx, models.OutageFilter{Operator: "tre", Limit: 100}).Return(nil, nil).Times(1)

	// Действие
	_, err := service.ListOutages(ctx, models.OutageFilter{Operator: "tre"})

	// Проверки
	require.NoError(t, err)
}

func TestHistory_ComputesSince(t *testing.T) {
	// Подготовка
	service, m := newTestOutageService(t)
	ctx := context.Background()

	// Ожидания
	m.repo.EXPECT().ListHistory(ctx, "telia", testNow.Add(-3*24*time.Hour)).Return([]*models.Outage{{ID: 1}}, nil).Times(1)
	m.repo.EXPECT().ListHistory(ctx, "", testNow.Add(-7*24*time.Hour)).Return(nil, nil).Times(1)

	// Действие
	outages, err := service.History(ctx, "telia", 3)
	_, errDefault := service.History(ctx, "", 0)

	// Проверки
	require.NoError(t, err)
	require.NoError(t, errDefault)
	assert.Len(t, outages, 1)
}

func TestReliability_DefaultWindow(t *testing.T) {
	// Подготовка
	service, m := newTestOutageService(t)
	ctx := context.Background()
	stats := []models.ReliabilityStat{{OperatorName: "telia", OutageCount: 3, TotalDowntimeHours: 4.5}}

	// Ожидания
	m.analytics.EXPECT().Reliability(ctx, testNow.Add(-30*24*time.Hour)).Return(stats, nil).Times(1)

	// Действие
	got, err := service.Reliability(ctx, 0)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, stats, got)
}
