package service

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/telecom_outage_system/internal/config"
	"github.com/shenikar/telecom_outage_system/internal/crowd"
	"github.com/shenikar/telecom_outage_system/internal/models"
	"github.com/shenikar/telecom_outage_system/internal/observability"
	"github.com/shenikar/telecom_outage_system/internal/region"
	"github.com/sirupsen/logrus"
)

// HotspotCache хранит последний рассчитанный список. GetHotspots возвращает nil, nil при промахе.
type HotspotCache interface {
	GetHotspots(ctx context.Context) ([]models.Hotspot, error)
	SetHotspots(ctx context.Context, hotspots []models.Hotspot, ttl time.Duration) error
}

// HotspotService определяет контракт обнаружения очагов жалоб
type HotspotService interface {
	// DetectHotspots отдает кэшированный список или пересчитывает его
	DetectHotspots(ctx context.Context) ([]models.Hotspot, error)
	// Refresh всегда пересчитывает список и обновляет кэш
	Refresh(ctx context.Context) ([]models.Hotspot, error)
}

type hotspotService struct {
	reports ReportRepository
	refs    ReferenceRepository
	cache   HotspotCache
	source  crowd.SignalSource
	metrics *observability.Metrics
	clock   clockwork.Clock
	logger  *logrus.Logger
	cfg     *config.Config
}

// NewHotspotService создает сервис; source может быть nil, если внешний источник не настроен
func NewHotspotService(
	reports ReportRepository,
	refs ReferenceRepository,
	cache HotspotCache,
	source crowd.SignalSource,
	metrics *observability.Metrics,
	clock clockwork.Clock,
	logger *logrus.Logger,
	cfg *config.Config,
) HotspotService {
	return &hotspotService{
		reports: reports,
		refs:    refs,
		cache:   cache,
		source:  source,
		metrics: metrics,
		clock:   clock,
		logger:  logger,
		cfg:     cfg,
	}
}

func (s *hotspotService) DetectHotspots(ctx context.Context) ([]models.Hotspot, error) {
	cached, err := s.cache.GetHotspots(ctx)
	if err != nil {
		s.logger.WithFields(logrus.Fields{
			"service": "hotspot",
			"method":  "DetectHotspots",
		}).WithError(err).Warn("Failed to read hotspot cache")
	}
	if cached != nil {
		return cached, nil
	}
	return s.Refresh(ctx)
}

// Refresh группирует свежие pending сообщения и добавляет сигналы внешнего источника.
// Ошибка внешнего источника не прерывает расчет.
func (s *hotspotService) Refresh(ctx context.Context) ([]models.Hotspot, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "hotspot",
		"method":    "Refresh",
		"window":    s.cfg.HotspotWindow.String(),
		"threshold": s.cfg.HotspotThreshold,
	})

	now := s.clock.Now().UTC()
	pending, err := s.reports.ListPendingSince(ctx, now.Add(-s.cfg.HotspotWindow))
	if err != nil {
		log.WithError(err).Error("Failed to load pending reports")
		return nil, fmt.Errorf("service: could not load pending reports: %w", err)
	}

	hotspots := crowd.DetectUserClusters(pending, s.cfg.HotspotWindow, s.cfg.HotspotThreshold, now)
	s.metrics.HotspotsDetected.WithLabelValues(string(models.HotspotUserCluster)).Add(float64(len(hotspots)))

	if s.source != nil {
		external, err := s.externalSignals(ctx)
		if err != nil {
			log.WithError(err).Warn("External signal source failed, using user clusters only")
		} else {
			s.metrics.HotspotsDetected.WithLabelValues(string(models.HotspotExternalSignal)).Add(float64(len(external)))
			hotspots = append(hotspots, external...)
		}
	}

	if err := s.cache.SetHotspots(ctx, hotspots, s.cfg.HotspotCacheTTL); err != nil {
		log.WithError(err).Warn("Failed to cache hotspots")
	}

	log.WithFields(logrus.Fields{
		"pending":  len(pending),
		"hotspots": len(hotspots),
	}).Info("Hotspots refreshed")
	return hotspots, nil
}

func (s *hotspotService) externalSignals(ctx context.Context) ([]models.Hotspot, error) {
	if s.cfg.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.FetchTimeout)
		defer cancel()
	}

	regions, err := s.refs.ListRegions(ctx)
	if err != nil || len(regions) == 0 {
		regions = region.Seed()
	}
	return crowd.AggregateExternalSignals(ctx, s.source, region.NewInferrer(regions))
}
