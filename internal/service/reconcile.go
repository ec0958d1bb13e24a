package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/telecom_outage_system/internal/adapter"
	"github.com/shenikar/telecom_outage_system/internal/events"
	"github.com/shenikar/telecom_outage_system/internal/models"
	"github.com/shenikar/telecom_outage_system/internal/observability"
	"github.com/shenikar/telecom_outage_system/internal/region"
	"github.com/shenikar/telecom_outage_system/internal/severity"
	"github.com/shenikar/telecom_outage_system/pkg/e"
	"github.com/sirupsen/logrus"
)

// OutageStore определяет контракт журнала сырых сигналов и транзакционной записи аварий
type OutageStore interface {
	SaveRawSignal(ctx context.Context, raw *models.RawSignal) error
	// WithTx выполняет fn в одной транзакции; ошибка fn откатывает транзакцию
	WithTx(ctx context.Context, fn func(ctx context.Context, tx OutageTx) error) error
}

// OutageTx - операции над авариями внутри транзакции
type OutageTx interface {
	// LockIncidentKey сериализует запись по паре (оператор, ключ) до конца транзакции
	LockIncidentKey(ctx context.Context, operatorID int64, key string) error
	// FindByIncidentKey возвращает nil, nil если записи нет
	FindByIncidentKey(ctx context.Context, operatorID int64, key string) (*models.Outage, error)
	Create(ctx context.Context, outage *models.Outage) error
	Update(ctx context.Context, outage *models.Outage) error
}

// ReconcileService определяет контракт слияния канонических записей с журналом аварий
type ReconcileService interface {
	Reconcile(ctx context.Context, record models.CanonicalOutage, raw *models.RawSignal) (*models.Outage, error)
	IngestBatch(ctx context.Context, results []models.RawFetchResult) models.IngestReport
}

type reconcileService struct {
	store     OutageStore
	refs      ReferenceRepository
	cache     OutageCache
	registry  *adapter.Registry
	publisher events.Publisher
	metrics   *observability.Metrics
	clock     clockwork.Clock
	logger    *logrus.Logger
}

func NewReconcileService(
	store OutageStore,
	refs ReferenceRepository,
	cache OutageCache,
	registry *adapter.Registry,
	publisher events.Publisher,
	metrics *observability.Metrics,
	clock clockwork.Clock,
	logger *logrus.Logger,
) ReconcileService {
	return &reconcileService{
		store:     store,
		refs:      refs,
		cache:     cache,
		registry:  registry,
		publisher: publisher,
		metrics:   metrics,
		clock:     clock,
		logger:    logger,
	}
}

// Reconcile сохраняет сырой сигнал и сливает одну каноническую запись с журналом аварий.
// Если raw.ID уже заполнен, сигнал считается сохраненным.
func (s *reconcileService) Reconcile(ctx context.Context, record models.CanonicalOutage, raw *models.RawSignal) (*models.Outage, error) {
	in := s.loadInferrer(ctx)
	outage, _, err := s.reconcile(ctx, in, record, raw)
	return outage, err
}

// IngestBatch разбирает результаты опроса источников и сливает все полученные записи.
// Ошибки отдельных источников и записей учитываются в отчете и не прерывают пакет.
func (s *reconcileService) IngestBatch(ctx context.Context, results []models.RawFetchResult) models.IngestReport {
	log := s.logger.WithFields(logrus.Fields{
		"service": "reconcile",
		"method":  "IngestBatch",
		"results": len(results),
	})
	log.Info("Starting ingest batch")

	// справочник регионов читается один раз на пакет
	in := s.loadInferrer(ctx)

	var report models.IngestReport
	for _, res := range results {
		report.Merge(s.ingestResult(ctx, in, res))
	}

	log.WithFields(logrus.Fields{
		"records": report.Records,
		"created": report.Created,
		"updated": report.Updated,
		"skipped": report.Skipped,
		"failed":  report.Failed,
	}).Info("Ingest batch finished")
	return report
}

func (s *reconcileService) ingestResult(ctx context.Context, in *region.Inferrer, res models.RawFetchResult) models.IngestReport {
	report := models.IngestReport{Sources: 1}
	log := s.logger.WithFields(logrus.Fields{
		"service":    "reconcile",
		"method":     "ingestResult",
		"operator":   res.Operator,
		"source_url": res.SourceURL,
	})

	capturedAt := res.FetchedAt
	if capturedAt.IsZero() {
		capturedAt = s.clock.Now()
	}
	raw := &models.RawSignal{
		Operator:   res.Operator,
		SourceURL:  res.SourceURL,
		Payload:    res.Payload,
		CapturedAt: capturedAt.UTC(),
	}
	if err := s.saveRaw(ctx, raw); err != nil {
		log.WithError(err).Error("Failed to store raw signal")
		report.Failed++
		return report
	}
	report.RawSignals++
	log = log.WithField("raw_signal_id", raw.ID)

	ad, ok := s.registry.Get(res.Operator)
	if !ok {
		log.Warn("No adapter registered for operator, payload kept as raw signal only")
		report.Skipped++
		return report
	}

	records, err := normalizeSafely(ad, res.Payload)
	if err != nil {
		perr := &models.ParseError{Operator: res.Operator, RawSignalID: raw.ID, Err: err}
		log.WithError(perr).WithField("parsed", len(records)).Warn("Adapter could not parse payload")
		s.metrics.ParseErrors.WithLabelValues(res.Operator).Inc()
		if len(records) == 0 {
			report.Skipped++
			return report
		}
	}

	for _, rec := range records {
		report.Records++
		if rec.Operator == "" {
			rec.Operator = res.Operator
		}
		if rec.SourceURL == "" {
			rec.SourceURL = res.SourceURL
		}

		_, created, err := s.reconcile(ctx, in, rec, raw)
		var perr *models.ParseError
		switch {
		case errors.As(err, &perr):
			report.Skipped++
		case err != nil:
			report.Failed++
		case created:
			report.Created++
		default:
			report.Updated++
		}
	}
	return report
}

// normalizeSafely не дает панике адаптера выйти за границу источника
func normalizeSafely(ad adapter.Adapter, payload []byte) (records []models.CanonicalOutage, err error) {
	defer func() {
		if r := recover(); r != nil {
			records = nil
			err = fmt.Errorf("adapter %s panicked: %v", ad.Operator(), r)
		}
	}()
	return ad.Normalize(payload)
}

func (s *reconcileService) saveRaw(ctx context.Context, raw *models.RawSignal) error {
	if raw.ID != 0 {
		return nil
	}
	if raw.CapturedAt.IsZero() {
		raw.CapturedAt = s.clock.Now().UTC()
	}
	if err := s.store.SaveRawSignal(ctx, raw); err != nil {
		return fmt.Errorf("service: could not save raw signal: %w", err)
	}
	s.metrics.RawSignalsStored.Inc()
	return nil
}

func (s *reconcileService) reconcile(ctx context.Context, in *region.Inferrer, record models.CanonicalOutage, raw *models.RawSignal) (*models.Outage, bool, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "reconcile",
		"method":       "Reconcile",
		"operator":     record.Operator,
		"incident_key": record.IncidentKey,
	})

	if err := s.saveRaw(ctx, raw); err != nil {
		log.WithError(err).Error("Failed to store raw signal")
		s.metrics.RecordsReconciled.WithLabelValues("failed").Inc()
		return nil, false, &models.ReconciliationError{Operator: record.Operator, IncidentKey: record.IncidentKey, Err: err}
	}
	log = log.WithField("raw_signal_id", raw.ID)

	if err := record.Validate(); err != nil {
		log.WithError(err).Warn("Skipping malformed canonical record")
		s.metrics.RecordsReconciled.WithLabelValues("skipped").Inc()
		return nil, false, &models.ParseError{Operator: record.Operator, RawSignalID: raw.ID, Err: err}
	}

	fail := func(err error) (*models.Outage, bool, error) {
		log.WithError(err).Error("Failed to reconcile record")
		s.metrics.RecordsReconciled.WithLabelValues("failed").Inc()
		return nil, false, &models.ReconciliationError{
			Operator:    record.Operator,
			IncidentKey: record.IncidentKey,
			RawSignalID: raw.ID,
			Err:         err,
		}
	}

	operatorID, err := s.refs.OperatorID(ctx, record.Operator)
	if err != nil {
		return fail(fmt.Errorf("service: could not resolve operator: %w", err))
	}

	score := severity.Score(record.Severity, record.AffectedServices)
	reg := in.Infer(record.Title.SV, record.Location)
	now := s.clock.Now().UTC()

	var (
		result   *models.Outage
		previous models.OutageStatus
		created  bool
	)
	attempt := func() error {
		return s.store.WithTx(ctx, func(ctx context.Context, tx OutageTx) error {
			result, previous, created = nil, "", false

			if record.IncidentKey != "" {
				if err := tx.LockIncidentKey(ctx, operatorID, record.IncidentKey); err != nil {
					return err
				}
				existing, err := tx.FindByIncidentKey(ctx, operatorID, record.IncidentKey)
				if err != nil {
					return err
				}
				if existing != nil {
					previous = existing.Status
					applyRecord(existing, record, reg, raw.ID, score, now)
					if err := tx.Update(ctx, existing); err != nil {
						return err
					}
					result = existing
					return nil
				}
			}

			outage := newOutage(record, operatorID, reg, raw.ID, score, now)
			if err := tx.Create(ctx, outage); err != nil {
				return err
			}
			result, created = outage, true
			return nil
		})
	}

	err = attempt()
	if errors.Is(err, e.ErrUniqueViolation) {
		// параллельная вставка того же ключа успела раньше: повтор найдет ее строку
		log.WithError(err).Warn("Concurrent insert for incident key, retrying as update")
		err = attempt()
	}
	if err != nil {
		return fail(err)
	}
	result.OperatorName = record.Operator

	if created {
		s.metrics.RecordsReconciled.WithLabelValues("created").Inc()
		log.WithField("outage_id", result.ID).Info("Outage created")
		return result, true, nil
	}

	s.metrics.RecordsReconciled.WithLabelValues("updated").Inc()
	if previous != result.Status {
		s.observeTransition(ctx, result, previous, now)
	}
	if err := s.cache.InvalidateOutage(ctx, result.ID); err != nil {
		log.WithError(err).Warn("Failed to invalidate outage cache")
	}
	log.WithField("outage_id", result.ID).Debug("Outage updated")
	return result, false, nil
}

func newOutage(record models.CanonicalOutage, operatorID int64, reg *models.Region, rawID int64, score float64, now time.Time) *models.Outage {
	start := now
	if record.StartTime != nil {
		start = record.StartTime.UTC()
	}
	o := &models.Outage{
		OperatorID:       operatorID,
		Title:            record.Title,
		Description:      record.Description,
		Status:           record.Status,
		Severity:         record.Severity,
		SeverityScore:    score,
		StartTime:        &start,
		EndTime:          record.EndTime,
		EstimatedFixTime: record.EstimatedFixTime,
		Latitude:         record.Latitude,
		Longitude:        record.Longitude,
		AffectedServices: servicesOrEmpty(record.AffectedServices),
		RawSignalID:      &rawID,
		CreatedAt:        now,
	}
	if record.IncidentKey != "" {
		key := record.IncidentKey
		o.IncidentKey = &key
	}
	if record.Location != "" {
		loc := record.Location
		o.Location = &loc
	}
	if record.Status == models.StatusResolved && o.EndTime == nil {
		o.EndTime = &now
	}
	setRegion(o, reg)
	return o
}

// applyRecord переносит изменяемые поля записи в существующую аварию. start_time не трогается.
func applyRecord(o *models.Outage, record models.CanonicalOutage, reg *models.Region, rawID int64, score float64, now time.Time) {
	o.Status = record.Status
	o.Severity = record.Severity
	o.SeverityScore = score
	o.Title = record.Title
	o.Description = record.Description
	o.EstimatedFixTime = record.EstimatedFixTime
	o.AffectedServices = servicesOrEmpty(record.AffectedServices)
	if record.Location != "" {
		loc := record.Location
		o.Location = &loc
	}
	sourceCoords := record.Latitude != nil && record.Longitude != nil
	if sourceCoords {
		o.Latitude, o.Longitude = record.Latitude, record.Longitude
	}
	// авария переехала в другой регион: прежний центроид больше не подходит
	moved := reg != nil && o.RegionName != nil && o.RegionName.SV != reg.Name.SV

	switch {
	case record.EndTime != nil:
		o.EndTime = record.EndTime
	case record.Status == models.StatusResolved:
		if o.EndTime == nil {
			o.EndTime = &now
		}
	default:
		// повторно открытая авария
		o.EndTime = nil
	}

	// без совпадения в тексте сохраняется прежний регион
	setRegion(o, reg)
	if moved && !sourceCoords {
		lat, lon := reg.Latitude, reg.Longitude
		o.Latitude, o.Longitude = &lat, &lon
	}
	o.RawSignalID = &rawID
	o.UpdatedAt = &now
}

func setRegion(o *models.Outage, reg *models.Region) {
	if reg == nil {
		return
	}
	name := reg.Name
	o.RegionName = &name
	o.RegionID = nil
	if reg.ID != 0 {
		id := reg.ID
		o.RegionID = &id
	}
	if o.Latitude == nil || o.Longitude == nil {
		lat, lon := reg.Latitude, reg.Longitude
		o.Latitude, o.Longitude = &lat, &lon
	}
}

func servicesOrEmpty(services []string) []string {
	if services == nil {
		return []string{}
	}
	return services
}

func (s *reconcileService) observeTransition(ctx context.Context, o *models.Outage, from models.OutageStatus, at time.Time) {
	var key string
	if o.IncidentKey != nil {
		key = *o.IncidentKey
	}
	log := s.logger.WithFields(logrus.Fields{
		"service":      "reconcile",
		"outage_id":    o.ID,
		"operator":     o.OperatorName,
		"incident_key": key,
		"old_status":   from,
		"new_status":   o.Status,
	})
	log.Info("Outage status transition")
	s.metrics.StatusTransitions.WithLabelValues(string(from), string(o.Status)).Inc()

	event := models.StatusTransition{
		EventID:     uuid.NewString(),
		OutageID:    o.ID,
		Operator:    o.OperatorName,
		IncidentKey: key,
		From:        from,
		To:          o.Status,
		At:          at,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish status transition")
		s.metrics.EventPublishFails.Inc()
	}
}

// loadInferrer строит распознаватель по справочнику из хранилища.
// При ошибке используется встроенный список регионов без идентификаторов.
func (s *reconcileService) loadInferrer(ctx context.Context) *region.Inferrer {
	regions, err := s.refs.ListRegions(ctx)
	if err != nil || len(regions) == 0 {
		s.logger.WithError(err).Warn("Falling back to built-in region list")
		return region.NewInferrer(region.Seed())
	}
	return region.NewInferrer(regions)
}
