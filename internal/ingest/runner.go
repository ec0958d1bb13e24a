package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/telecom_outage_system/internal/models"
	"github.com/shenikar/telecom_outage_system/internal/observability"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Ingester сливает сырые ответы с журналом аварий
type Ingester interface {
	IngestBatch(ctx context.Context, results []models.RawFetchResult) models.IngestReport
}

// Runner выполняет один цикл опроса всех источников
type Runner struct {
	fetchers    []Fetcher
	ingester    Ingester
	concurrency int
	timeout     time.Duration
	metrics     *observability.Metrics
	clock       clockwork.Clock
	logger      *logrus.Logger
}

func NewRunner(
	fetchers []Fetcher,
	ingester Ingester,
	concurrency int,
	timeout time.Duration,
	metrics *observability.Metrics,
	clock clockwork.Clock,
	logger *logrus.Logger,
) *Runner {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Runner{
		fetchers:    fetchers,
		ingester:    ingester,
		concurrency: concurrency,
		timeout:     timeout,
		metrics:     metrics,
		clock:       clock,
		logger:      logger,
	}
}

// RunCycle опрашивает источники параллельно, каждый со своим таймаутом.
// Отказ источника учитывается в отчете и не мешает остальным.
func (r *Runner) RunCycle(ctx context.Context) models.IngestReport {
	start := r.clock.Now()
	log := r.logger.WithFields(logrus.Fields{
		"component": "ingest",
		"sources":   len(r.fetchers),
	})
	log.Info("Starting ingest cycle")

	results := make([]*models.RawFetchResult, len(r.fetchers))
	var g errgroup.Group
	g.SetLimit(r.concurrency)
	for i, f := range r.fetchers {
		i, f := i, f
		g.Go(func() error {
			res, err := r.fetchOne(ctx, f)
			if err != nil {
				log.WithError(err).WithField("operator", f.Operator()).Warn("Source fetch failed, skipping it this cycle")
				r.metrics.FetchErrors.WithLabelValues(f.Operator()).Inc()
				return nil
			}
			results[i] = &res
			return nil
		})
	}
	_ = g.Wait()

	fetched := make([]models.RawFetchResult, 0, len(results))
	for _, res := range results {
		if res != nil {
			fetched = append(fetched, *res)
		}
	}

	report := r.ingester.IngestBatch(ctx, fetched)
	report.Sources = len(r.fetchers)
	report.FetchFails = len(r.fetchers) - len(fetched)

	elapsed := r.clock.Since(start)
	r.metrics.IngestCycleDuration.Observe(elapsed.Seconds())
	log.WithFields(logrus.Fields{
		"fetch_failures": report.FetchFails,
		"created":        report.Created,
		"updated":        report.Updated,
		"skipped":        report.Skipped,
		"failed":         report.Failed,
		"duration":       elapsed.String(),
	}).Info("Ingest cycle finished")
	return report
}

func (r *Runner) fetchOne(ctx context.Context, f Fetcher) (res models.RawFetchResult, err error) {
	operator := f.Operator()
	defer func() {
		if p := recover(); p != nil {
			err = &models.FetchError{Operator: operator, Err: fmt.Errorf("panic: %v", p)}
		}
	}()

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	res, err = f.Fetch(ctx)
	if err != nil {
		return models.RawFetchResult{}, &models.FetchError{Operator: operator, SourceURL: res.SourceURL, Err: err}
	}
	if res.Operator == "" {
		res.Operator = operator
	}
	return res, nil
}
