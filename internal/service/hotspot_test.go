package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shenikar/telecom_outage_system/internal/config"
	"github.com/shenikar/telecom_outage_system/internal/crowd"
	"github.com/shenikar/telecom_outage_system/internal/models"
	"github.com/shenikar/telecom_outage_system/internal/observability"
	"github.com/shenikar/telecom_outage_system/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeSignalSource struct {
	signals []models.CrowdSignal
	err     error
}

func (f fakeSignalSource) Name() string { return "downdetector" }

func (f fakeSignalSource) FetchSignals(context.Context) ([]models.CrowdSignal, error) {
	return f.signals, f.err
}

type hotspotMocks struct {
	reports *mocks.MockReportRepository
	refs    *mocks.MockReferenceRepository
	cache   *mocks.MockHotspotCache
}

// newTestHotspotService - вспомогательная функция для создания инстанса сервиса с моками.
func newTestHotspotService(t *testing.T, source crowd.SignalSource) (*hotspotService, hotspotMocks) {
	ctrl := gomock.NewController(t)
	m := hotspotMocks{
		reports: mocks.NewMockReportRepository(ctrl),
		refs:    mocks.NewMockReferenceRepository(ctrl),
		cache:   mocks.NewMockHotspotCache(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		HotspotWindow:    30 * time.Minute,
		HotspotThreshold: 5,
		HotspotCacheTTL:  time.Minute,
		FetchTimeout:     time.Second,
	}

	svc := NewHotspotService(m.reports, m.refs, m.cache, source, observability.NewMetricsForTesting(), clockwork.NewFakeClockAt(testNow), logger, cfg)
	return svc.(*hotspotService), m
}

func pendingReports(n int, operatorID int64, operator string, regionID int64, age time.Duration) []models.UserReport {
	out := make([]models.UserReport, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, models.UserReport{
			ID:           int64(i + 1),
			OperatorID:   ptr(operatorID),
			OperatorName: ptr(operator),
			RegionID:     ptr(regionID),
			RegionName:   &models.BilingualText{SV: "Stockholms län", EN: "Stockholm County"},
			Status:       models.ReportPending,
			CreatedAt:    testNow.Add(-age),
		})
	}
	return out
}

func TestRefresh_ThresholdBoundary(t *testing.T) {
	// Подготовка
	service, m := newTestHotspotService(t, nil)
	ctx := context.Background()
	reports := append(pendingReports(5, 1, "telia", 1, 10*time.Minute), pendingReports(4, 2, "tre", 1, 10*time.Minute)...)

	// Ожидания
	m.reports.EXPECT().ListPendingSince(ctx, testNow.Add(-30*time.Minute)).Return(reports, nil).Times(1)
	m.cache.EXPECT().SetHotspots(ctx, gomock.Len(1), time.Minute).Return(nil).Times(1)

	// Действие
	hotspots, err := service.Refresh(ctx)

	// Проверки
	require.NoError(t, err)
	require.Len(t, hotspots, 1)
	assert.Equal(t, "telia", hotspots[0].OperatorName)
	assert.Equal(t, 5, hotspots[0].ReportCount)
	assert.Equal(t, models.HotspotUserCluster, hotspots[0].Type)
	assert.Equal(t, testNow, hotspots[0].DetectedAt)
	assert.Equal(t, 1.0, testutil.ToFloat64(service.metrics.HotspotsDetected.WithLabelValues("USER_CLUSTER")))
}

func TestRefresh_AppendsExternalSignals(t *testing.T) {
	// Подготовка
	source := fakeSignalSource{signals: []models.CrowdSignal{
		{Operator: "telia", RegionName: ptr("Stockholm"), Count: 120, SourceName: "downdetector", DetectedAt: testNow},
	}}
	service, m := newTestHotspotService(t, source)
	ctx := context.Background()

	// Ожидания
	m.reports.EXPECT().ListPendingSince(ctx, gomock.Any()).Return(pendingReports(6, 1, "telia", 1, time.Minute), nil).Times(1)
	m.refs.EXPECT().ListRegions(gomock.Any()).Return(seededRegions(), nil).Times(1)
	m.cache.EXPECT().SetHotspots(ctx, gomock.Len(2), time.Minute).Return(nil).Times(1)

	// Действие
	hotspots, err := service.Refresh(ctx)

	// Проверки
	require.NoError(t, err)
	require.Len(t, hotspots, 2)
	assert.Equal(t, models.HotspotUserCluster, hotspots[0].Type)
	assert.Equal(t, models.HotspotExternalSignal, hotspots[1].Type)
	require.NotNil(t, hotspots[1].Source)
	assert.Equal(t, "downdetector", *hotspots[1].Source)
	require.NotNil(t, hotspots[1].RegionID)
	assert.Equal(t, int64(1), *hotspots[1].RegionID)
}

func TestRefresh_ExternalFailureKeepsUserClusters(t *testing.T) {
	// Подготовка
	service, m := newTestHotspotService(t, fakeSignalSource{err: errors.New("503 Service Unavailable")})
	ctx := context.Background()

	// Ожидания
	m.reports.EXPECT().ListPendingSince(ctx, gomock.Any()).Return(pendingReports(5, 1, "telia", 1, time.Minute), nil).Times(1)
	m.refs.EXPECT().ListRegions(gomock.Any()).Return(seededRegions(), nil).Times(1)
	m.cache.EXPECT().SetHotspots(ctx, gomock.Len(1), time.Minute).Return(nil).Times(1)

	// Действие
	hotspots, err := service.Refresh(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Len(t, hotspots, 1)
}

func TestDetectHotspots_FromCache(t *testing.T) {
	// Подготовка
	service, m := newTestHotspotService(t, nil)
	ctx := context.Background()
	cached := []models.Hotspot{{OperatorName: "tre", ReportCount: 9, Type: models.HotspotUserCluster}}

	// Ожидания
	m.cache.EXPECT().GetHotspots(ctx).Return(cached, nil).Times(1)

	// Действие
	hotspots, err := service.DetectHotspots(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, cached, hotspots)
}

func TestDetectHotspots_CacheMissComputes(t *testing.T) {
	// Подготовка
	service, m := newTestHotspotService(t, nil)
	ctx := context.Background()

	// Ожидания
	m.cache.EXPECT().GetHotspots(ctx).Return(nil, nil).Times(1)
	m.reports.EXPECT().ListPendingSince(ctx, gomock.Any()).Return(nil, nil).Times(1)
	m.cache.EXPECT().SetHotspots(ctx, gomock.Any(), time.Minute).Return(nil).Times(1)

	// Действие
	hotspots, err := service.DetectHotspots(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, hotspots)
}

func TestRefresh_RepositoryError(t *testing.T) {
	// Подготовка
	service, m := newTestHotspotService(t, nil)
	ctx := context.Background()

	// Ожидания
	m.reports.EXPECT().ListPendingSince(ctx, gomock.Any()).Return(nil, errors.New("connection reset")).Times(1)

	// Действие
	hotspots, err := service.Refresh(ctx)

	// Проверки
	assert.Nil(t, hotspots)
	assert.ErrorContains(t, err, "could not load pending reports")
}
