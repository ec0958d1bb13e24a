package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shenikar/telecom_outage_system/internal/models"
	"github.com/shenikar/telecom_outage_system/internal/observability"
	"github.com/shenikar/telecom_outage_system/internal/service/mocks"
	"github.com/shenikar/telecom_outage_system/pkg/e"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// newTestReportService - вспомогательная функция для создания инстанса сервиса с моками.
func newTestReportService(t *testing.T) (*reportService, *mocks.MockReportRepository, *mocks.MockReferenceRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockReportRepository(ctrl)
	refsMock := mocks.NewMockReferenceRepository(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	svc := NewReportService(repoMock, refsMock, observability.NewMetricsForTesting(), clockwork.NewFakeClockAt(testNow), logger)
	return svc.(*reportService), repoMock, refsMock
}

func TestSubmitReport_ResolvesOperatorAndRegionFromText(t *testing.T) {
	// Подготовка
	service, repoMock, refsMock := newTestReportService(t)
	ctx := context.Background()
	submission := models.ReportSubmission{
		OperatorName: ptr(" Telia "),
		Title:        "Inget mobilnät i Malmö",
		Latitude:     59.33, // координаты Стокгольма, но текст важнее
		Longitude:    18.07,
	}

	// Ожидания
	refsMock.EXPECT().OperatorID(ctx, "telia").Return(int64(1), nil).Times(1)
	refsMock.EXPECT().ListRegions(ctx).Return(seededRegions(), nil).Times(1)
	repoMock.EXPECT().
		CreateReport(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.UserReport) error {
			r.ID = 42
			return nil
		}).
		Times(1)

	// Действие
	report, err := service.SubmitReport(ctx, submission)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(42), report.ID)
	assert.Equal(t, models.ReportPending, report.Status)
	assert.Equal(t, testNow, report.CreatedAt)
	require.NotNil(t, report.OperatorID)
	assert.Equal(t, int64(1), *report.OperatorID)
	require.NotNil(t, report.RegionName)
	assert.Equal(t, "Skåne län", report.RegionName.SV)
	require.NotNil(t, report.RegionID)
	assert.Equal(t, int64(3), *report.RegionID)
	assert.Equal(t, 1.0, testutil.ToFloat64(service.metrics.ReportsSubmitted))
}

func TestSubmitReport_UnknownOperatorNearestRegion(t *testing.T) {
	// Подготовка
	service, repoMock, refsMock := newTestReportService(t)
	ctx := context.Background()
	submission := models.ReportSubmission{
		OperatorName: ptr("Halebop"),
		Title:        "Ingen täckning",
		Latitude:     59.86,
		Longitude:    17.64,
	}

	// Ожидания
	refsMock.EXPECT().OperatorID(ctx, "halebop").Return(int64(0), fmt.Errorf("repository: %w", e.ErrNotFound)).Times(1)
	refsMock.EXPECT().ListRegions(ctx).Return(seededRegions(), nil).Times(1)
	repoMock.EXPECT().CreateReport(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	report, err := service.SubmitReport(ctx, submission)

	// Проверки
	require.NoError(t, err)
	assert.Nil(t, report.OperatorID)
	assert.Nil(t, report.OperatorName)
	require.NotNil(t, report.RegionName)
	assert.Equal(t, "Uppsala län", report.RegionName.SV)
}

func TestSubmitReport_OutsideSwedenHasNoRegion(t *testing.T) {
	// Подготовка
	service, repoMock, refsMock := newTestReportService(t)
	ctx := context.Background()

	// Ожидания
	refsMock.EXPECT().ListRegions(ctx).Return(seededRegions(), nil).Times(1)
	repoMock.EXPECT().CreateReport(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	report, err := service.SubmitReport(ctx, models.ReportSubmission{Title: "No signal", Latitude: 48.85, Longitude: 2.35})

	// Проверки
	require.NoError(t, err)
	assert.Nil(t, report.RegionID)
	assert.Nil(t, report.RegionName)
}

func TestModerateReport(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestReportService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().ModerateReport(ctx, int64(1), models.ReportVerified).Return(&models.UserReport{ID: 1, Status: models.ReportVerified}, nil).Times(1)
	repoMock.EXPECT().ModerateReport(ctx, int64(2), models.ReportRejected).Return(nil, fmt.Errorf("repository: %w", e.ErrConflict)).Times(1)

	// Действие
	verified, err := service.ModerateReport(ctx, 1, models.ReportVerified)
	_, conflictErr := service.ModerateReport(ctx, 2, models.ReportRejected)
	_, invalidErr := service.ModerateReport(ctx, 3, models.ReportPending)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.ReportVerified, verified.Status)
	assert.ErrorIs(t, conflictErr, e.ErrConflict)
	assert.ErrorIs(t, invalidErr, e.ErrInvalidInput)
}

func TestListReports_Pagination(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestReportService(t)
	ctx := context.Background()

	// Ожидания
	repoMock.EXPECT().ListReports(ctx, models.ReportPending, 1, 20).Return([]*models.UserReport{}, nil).Times(1)

	// Действие
	reports, err := service.ListReports(ctx, models.ReportPending, 0, 1000)

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, reports)
}
