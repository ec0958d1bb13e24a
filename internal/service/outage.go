package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/telecom_outage_system/internal/models"
	"github.com/shenikar/telecom_outage_system/internal/region"
	"github.com/sirupsen/logrus"
)

// OutageReader определяет контракт чтения журнала аварий
type OutageReader interface {
	GetByID(ctx context.Context, id int64) (*models.Outage, error)
	ListOutages(ctx context.Context, filter models.OutageFilter) ([]*models.Outage, error)
	ListHistory(ctx context.Context, operator string, since time.Time) ([]*models.Outage, error)
}

// OutageCache - кэш карточек аварий. GetOutage возвращает nil, nil при промахе.
type OutageCache interface {
	GetOutage(ctx context.Context, id int64) (*models.Outage, error)
	SetOutage(ctx context.Context, outage *models.Outage) error
	InvalidateOutage(ctx context.Context, id int64) error
}

// ReferenceRepository определяет контракт справочников операторов и регионов
type ReferenceRepository interface {
	// OperatorID возвращает e.ErrNotFound для неизвестного оператора
	OperatorID(ctx context.Context, name string) (int64, error)
	ListOperators(ctx context.Context) ([]models.Operator, error)
	ListRegions(ctx context.Context) ([]models.Region, error)
	ListRegionSummaries(ctx context.Context) ([]models.RegionSummary, error)
}

// AnalyticsRepository определяет контракт агрегатов по авариям и источникам
type AnalyticsRepository interface {
	MTTR(ctx context.Context) ([]models.MTTRStat, error)
	Reliability(ctx context.Context, since time.Time) ([]models.ReliabilityStat, error)
	ScraperStatus(ctx context.Context) ([]models.ScraperStatus, error)
}

// OutageService определяет контракт чтения аварий, справочников и аналитики
type OutageService interface {
	GetOutage(ctx context.Context, id int64) (*models.Outage, error)
	ListOutages(ctx context.Context, filter models.OutageFilter) ([]*models.Outage, error)
	History(ctx context.Context, operator string, days int) ([]*models.Outage, error)
	ListRegions(ctx context.Context) ([]models.RegionSummary, error)
	ListOperators(ctx context.Context) ([]models.Operator, error)
	MTTR(ctx context.Context) ([]models.MTTRStat, error)
	Reliability(ctx context.Context, days int) ([]models.ReliabilityStat, error)
	ScraperStatus(ctx context.Context) ([]models.ScraperStatus, error)
}

type outageService struct {
	repo      OutageReader
	cache     OutageCache
	refs      ReferenceRepository
	analytics AnalyticsRepository
	clock     clockwork.Clock
	logger    *logrus.Logger
}

func NewOutageService(repo OutageReader, cache OutageCache, refs ReferenceRepository, analytics AnalyticsRepository, clock clockwork.Clock, logger *logrus.Logger) OutageService {
	return &outageService{
		repo:      repo,
		cache:     cache,
		refs:      refs,
		analytics: analytics,
		clock:     clock,
		logger:    logger,
	}
}

// GetOutage получает аварию по ID, сначала из кэша
func (s *outageService) GetOutage(ctx context.Context, id int64) (*models.Outage, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "outage",
		"method":    "GetOutage",
		"outage_id": id,
	})
	log.Debug("Fetching outage by ID")

	cached, err := s.cache.GetOutage(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read outage cache")
	}
	if cached != nil {
		log.Debug("Outage cache hit")
		return cached, nil
	}

	outage, err := s.repo.GetByID(ctx, id)
	if err != nil {
		log.WithError(err).Error("Failed to get outage from repository")
		return nil, fmt.Errorf("service: could not get outage: %w", err)
	}

	if err := s.cache.SetOutage(ctx, outage); err != nil {
		log.WithError(err).Warn("Failed to cache outage")
	}
	return outage, nil
}

// ListOutages возвращает аварии по фильтру; при заданной точке оставляет только аварии в радиусе
func (s *outageService) ListOutages(ctx context.Context, filter models.OutageFilter) ([]*models.Outage, error) {
	if filter.Limit < 1 || filter.Limit > 500 {
		filter.Limit = 100
	}
	geo := filter.Latitude != nil && filter.Longitude != nil && filter.RadiusKm > 0

	log := s.logger.WithFields(logrus.Fields{
		"service":  "outage",
		"method":   "ListOutages",
		"operator": filter.Operator,
		"status":   filter.Status,
		"geo":      geo,
	})
	log.Info("Listing outages")

	repoFilter := filter
	if geo {
		// БД отсекает аварии вне прямоугольника, точный радиус и лимит проверяются здесь
		box := region.BoundingBox(*filter.Latitude, *filter.Longitude, filter.RadiusKm)
		repoFilter.Box = &box
		repoFilter.Limit = 0
	}
	outages, err := s.repo.ListOutages(ctx, repoFilter)
	if err != nil {
		log.WithError(err).Error("Failed to list outages from repository")
		return nil, fmt.Errorf("service: could not list outages: %w", err)
	}

	if geo {
		within := make([]*models.Outage, 0, len(outages))
		for _, o := range outages {
			if o.Latitude == nil || o.Longitude == nil {
				continue
			}
			if region.Haversine(*filter.Latitude, *filter.Longitude, *o.Latitude, *o.Longitude) <= filter.RadiusKm {
				within = append(within, o)
				if len(within) == filter.Limit {
					break
				}
			}
		}
		outages = within
	}

	log.WithField("count", len(outages)).Info("Outages listed successfully")
	return outages, nil
}

// History возвращает решенные аварии за последние days дней
func (s *outageService) History(ctx context.Context, operator string, days int) ([]*models.Outage, error) {
	if days < 1 || days > 365 {
		days = 7
	}
	since := s.clock.Now().UTC().Add(-time.Duration(days) * 24 * time.Hour)

	outages, err := s.repo.ListHistory(ctx, operator, since)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "outage",
			"method":  "History",
			"days":    days,
		}).WithError(err).Error("Failed to list outage history")
		return nil, fmt.Errorf("service: could not list history: %w", err)
	}
	return outages, nil
}

func (s *outageService) ListRegions(ctx context.Context) ([]models.RegionSummary, error) {
	regions, err := s.refs.ListRegionSummaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list regions: %w", err)
	}
	return regions, nil
}

func (s *outageService) ListOperators(ctx context.Context) ([]models.Operator, error) {
	operators, err := s.refs.ListOperators(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not list operators: %w", err)
	}
	return operators, nil
}

// MTTR - среднее время восстановления по операторам
func (s *outageService) MTTR(ctx context.Context) ([]models.MTTRStat, error) {
	stats, err := s.analytics.MTTR(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not compute mttr: %w", err)
	}
	return stats, nil
}

// Reliability - число аварий и суммарный простой за последние days дней
func (s *outageService) Reliability(ctx context.Context, days int) ([]models.ReliabilityStat, error) {
	if days < 1 || days > 365 {
		days = 30
	}
	since := s.clock.Now().UTC().Add(-time.Duration(days) * 24 * time.Hour)
	stats, err := s.analytics.Reliability(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("service: could not compute reliability: %w", err)
	}
	return stats, nil
}

// ScraperStatus - время последнего сохраненного сигнала по каждому оператору
func (s *outageService) ScraperStatus(ctx context.Context) ([]models.ScraperStatus, error) {
	status, err := s.analytics.ScraperStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not get scraper status: %w", err)
	}
	return status, nil
}
