package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/telecom_outage_system/internal/models"
	"github.com/shenikar/telecom_outage_system/internal/observability"
	"github.com/sirupsen/logrus"
)

// RetentionRepository удаляет устаревшие данные одним пакетом
type RetentionRepository interface {
	// Purge удаляет решенные аварии с end_time < cutoff и сырые сигналы с captured_at < cutoff.
	// Возвращает идентификаторы удаленных аварий.
	Purge(ctx context.Context, cutoff time.Time) (outageIDs []int64, rawSignals int64, err error)
}

// RetentionService определяет контракт очистки журнала
type RetentionService interface {
	Purge(ctx context.Context, cutoff time.Time) (outages int64, rawSignals int64, err error)
	// PurgeExpired вычисляет границу от текущего времени и срока хранения
	PurgeExpired(ctx context.Context) (models.PurgeResult, error)
}

type retentionService struct {
	repo      RetentionRepository
	cache     OutageCache
	metrics   *observability.Metrics
	clock     clockwork.Clock
	retention time.Duration
	logger    *logrus.Logger
}

func NewRetentionService(repo RetentionRepository, cache OutageCache, metrics *observability.Metrics, clock clockwork.Clock, retention time.Duration, logger *logrus.Logger) RetentionService {
	return &retentionService{
		repo:      repo,
		cache:     cache,
		metrics:   metrics,
		clock:     clock,
		retention: retention,
		logger:    logger,
	}
}

func (s *retentionService) Purge(ctx context.Context, cutoff time.Time) (int64, int64, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "retention",
		"method":  "Purge",
		"cutoff":  cutoff.Format(time.RFC3339),
	})
	log.Info("Purging expired records")

	outageIDs, raws, err := s.repo.Purge(ctx, cutoff)
	if err != nil {
		log.WithError(err).Error("Failed to purge expired records")
		return 0, 0, fmt.Errorf("service: could not purge: %w", err)
	}
	outages := int64(len(outageIDs))

	// удаленные аварии не должны отдаваться из кэша до истечения TTL
	for _, id := range outageIDs {
		if err := s.cache.InvalidateOutage(ctx, id); err != nil {
			log.WithError(err).WithField("outage_id", id).Warn("Failed to invalidate purged outage in cache")
		}
	}

	s.metrics.OutagesPurged.Add(float64(outages))
	s.metrics.RawSignalsPurged.Add(float64(raws))
	log.WithFields(logrus.Fields{
		"outages_deleted":     outages,
		"raw_signals_deleted": raws,
	}).Info("Purge finished")
	return outages, raws, nil
}

func (s *retentionService) PurgeExpired(ctx context.Context) (models.PurgeResult, error) {
	// граница вычисляется один раз на весь пакет
	cutoff := s.clock.Now().UTC().Add(-s.retention)
	outages, raws, err := s.Purge(ctx, cutoff)
	if err != nil {
		return models.PurgeResult{}, err
	}
	return models.PurgeResult{
		Cutoff:            cutoff,
		OutagesDeleted:    outages,
		RawSignalsDeleted: raws,
	}, nil
}
