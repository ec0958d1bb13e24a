package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/telecom_outage_system/internal/models"
	"github.com/shenikar/telecom_outage_system/internal/observability"
	"github.com/shenikar/telecom_outage_system/internal/region"
	"github.com/shenikar/telecom_outage_system/pkg/e"
	"github.com/sirupsen/logrus"
)

// nearestRegionKm - дальше этого расстояния точка считается вне ленов
const nearestRegionKm = 150.0

// ReportRepository определяет контракт хранения пользовательских сообщений
type ReportRepository interface {
	CreateReport(ctx context.Context, report *models.UserReport) error
	ListReports(ctx context.Context, status models.ReportStatus, page, pageSize int) ([]*models.UserReport, error)
	ListPendingSince(ctx context.Context, since time.Time) ([]models.UserReport, error)
	// ModerateReport переводит только pending сообщение: e.ErrNotFound или e.ErrConflict иначе
	ModerateReport(ctx context.Context, id int64, status models.ReportStatus) (*models.UserReport, error)
}

// ReportService определяет контракт приема и модерации сообщений пользователей
type ReportService interface {
	SubmitReport(ctx context.Context, submission models.ReportSubmission) (*models.UserReport, error)
	ListReports(ctx context.Context, status models.ReportStatus, page, pageSize int) ([]*models.UserReport, error)
	ModerateReport(ctx context.Context, id int64, status models.ReportStatus) (*models.UserReport, error)
}

type reportService struct {
	repo    ReportRepository
	refs    ReferenceRepository
	metrics *observability.Metrics
	clock   clockwork.Clock
	logger  *logrus.Logger
}

func NewReportService(repo ReportRepository, refs ReferenceRepository, metrics *observability.Metrics, clock clockwork.Clock, logger *logrus.Logger) ReportService {
	return &reportService{
		repo:    repo,
		refs:    refs,
		metrics: metrics,
		clock:   clock,
		logger:  logger,
	}
}

// SubmitReport сохраняет новое сообщение в статусе pending.
// Оператор ищется по имени, регион по тексту или по ближайшему центроиду.
func (s *reportService) SubmitReport(ctx context.Context, submission models.ReportSubmission) (*models.UserReport, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "report",
		"method":  "SubmitReport",
	})
	log.Info("Accepting user report")

	report := &models.UserReport{
		Title:       strings.TrimSpace(submission.Title),
		Description: submission.Description,
		Latitude:    submission.Latitude,
		Longitude:   submission.Longitude,
		Status:      models.ReportPending,
		CreatedAt:   s.clock.Now().UTC(),
	}

	if submission.OperatorName != nil && strings.TrimSpace(*submission.OperatorName) != "" {
		name := strings.ToLower(strings.TrimSpace(*submission.OperatorName))
		id, err := s.refs.OperatorID(ctx, name)
		switch {
		case err == nil:
			report.OperatorID = &id
			report.OperatorName = &name
		case errors.Is(err, e.ErrNotFound):
			log.WithField("operator", name).Info("Unknown operator in report, keeping it unassigned")
		default:
			log.WithError(err).Error("Failed to resolve operator")
			return nil, fmt.Errorf("service: could not resolve operator: %w", err)
		}
	}

	if reg := s.inferRegion(ctx, report); reg != nil {
		name := reg.Name
		report.RegionName = &name
		if reg.ID != 0 {
			id := reg.ID
			report.RegionID = &id
		}
	}

	if err := s.repo.CreateReport(ctx, report); err != nil {
		log.WithError(err).Error("Failed to create report in repository")
		return nil, fmt.Errorf("service: could not create report: %w", err)
	}
	s.metrics.ReportsSubmitted.Inc()

	log.WithField("report_id", report.ID).Info("User report accepted")
	return report, nil
}

func (s *reportService) inferRegion(ctx context.Context, report *models.UserReport) *models.Region {
	regions, err := s.refs.ListRegions(ctx)
	if err != nil || len(regions) == 0 {
		s.logger.WithError(err).Warn("Falling back to built-in region list")
		regions = region.Seed()
	}
	in := region.NewInferrer(regions)

	var desc string
	if report.Description != nil {
		desc = *report.Description
	}
	if reg := in.Infer(report.Title, desc); reg != nil {
		return reg
	}
	return in.Nearest(report.Latitude, report.Longitude, nearestRegionKm)
}

// ListReports возвращает сообщения с пагинацией
func (s *reportService) ListReports(ctx context.Context, status models.ReportStatus, page, pageSize int) ([]*models.UserReport, error) {
	if page < 1 {
		page = 1
	}

	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "ListReports",
		"page":      page,
		"page_size": pageSize,
	})

	reports, err := s.repo.ListReports(ctx, status, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list reports from repository")
		return nil, fmt.Errorf("service: could not list reports: %w", err)
	}
	return reports, nil
}

// ModerateReport подтверждает или отклоняет сообщение в статусе pending
func (s *reportService) ModerateReport(ctx context.Context, id int64, status models.ReportStatus) (*models.UserReport, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "ModerateReport",
		"report_id": id,
		"status":    status,
	})

	if status != models.ReportVerified && status != models.ReportRejected {
		return nil, fmt.Errorf("service: moderation status %q: %w", status, e.ErrInvalidInput)
	}

	report, err := s.repo.ModerateReport(ctx, id, status)
	if err != nil {
		log.WithError(err).Warn("Failed to moderate report")
		return nil, fmt.Errorf("service: could not moderate report: %w", err)
	}

	log.Info("Report moderated")
	return report, nil
}
