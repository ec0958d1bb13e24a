package ingest

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shenikar/telecom_outage_system/internal/config"
	"github.com/shenikar/telecom_outage_system/internal/models"
	"github.com/shenikar/telecom_outage_system/internal/observability"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	operator string
	payload  string
	err      error
	panics   bool
	blocks   bool
}

func (f fakeFetcher) Operator() string { return f.operator }

func (f fakeFetcher) Fetch(ctx context.Context) (models.RawFetchResult, error) {
	switch {
	case f.panics:
		panic("nil pointer in scraper")
	case f.blocks:
		<-ctx.Done()
		return models.RawFetchResult{}, ctx.Err()
	case f.err != nil:
		return models.RawFetchResult{}, f.err
	}
	return models.RawFetchResult{Operator: f.operator, SourceURL: "https://" + f.operator + ".example", Payload: []byte(f.payload)}, nil
}

type recordingIngester struct {
	mu      sync.Mutex
	batches [][]models.RawFetchResult
}

func (r *recordingIngester) IngestBatch(_ context.Context, results []models.RawFetchResult) models.IngestReport {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.batches = append(r.batches, results)
	return models.IngestReport{Sources: len(results), RawSignals: len(results), Created: len(results)}
}

func newTestRunner(fetchers []Fetcher, ingester Ingester, timeout time.Duration) (*Runner, *observability.Metrics) {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	metrics := observability.NewMetricsForTesting()
	return NewRunner(fetchers, ingester, 2, timeout, metrics, clockwork.NewRealClock(), logger), metrics
}

func TestRunCycle_IsolatesFailingSources(t *testing.T) {
	// Подготовка
	ingester := &recordingIngester{}
	runner, metrics := newTestRunner([]Fetcher{
		fakeFetcher{operator: "telia", payload: "[]"},
		fakeFetcher{operator: "tre", err: errors.New("connection refused")},
		fakeFetcher{operator: "lycamobile", panics: true},
		fakeFetcher{operator: "slow", blocks: true},
	}, ingester, 50*time.Millisecond)

	// Действие
	report := runner.RunCycle(context.Background())

	// Проверки
	require.Len(t, ingester.batches, 1)
	require.Len(t, ingester.batches[0], 1)
	assert.Equal(t, "telia", ingester.batches[0][0].Operator)
	assert.Equal(t, 4, report.Sources)
	assert.Equal(t, 3, report.FetchFails)
	assert.Equal(t, 1, report.Created)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.FetchErrors.WithLabelValues("tre")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.FetchErrors.WithLabelValues("lycamobile")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.FetchErrors.WithLabelValues("slow")))
}

func TestRunCycle_KeepsSourceOrder(t *testing.T) {
	// Подготовка
	ingester := &recordingIngester{}
	runner, _ := newTestRunner([]Fetcher{
		fakeFetcher{operator: "a"},
		fakeFetcher{operator: "b"},
		fakeFetcher{operator: "c"},
	}, ingester, time.Second)

	// Действие
	runner.RunCycle(context.Background())

	// Проверки
	require.Len(t, ingester.batches, 1)
	got := make([]string, 0, 3)
	for _, r := range ingester.batches[0] {
		got = append(got, r.Operator)
	}
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestFetchOne_WrapsFetchError(t *testing.T) {
	// Подготовка
	runner, _ := newTestRunner(nil, &recordingIngester{}, time.Second)

	// Действие
	_, err := runner.fetchOne(context.Background(), fakeFetcher{operator: "tre", err: errors.New("timeout")})

	// Проверки
	var ferr *models.FetchError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, "tre", ferr.Operator)
}

func TestHTTPFetcher_Fetch(t *testing.T) {
	// Подготовка
	gotUA := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA <- r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(`[{"FaultId":"INCSE1"}]`))
	}))
	defer srv.Close()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	fetcher := NewHTTPFetcher(config.SourceConfig{Operator: "telia", URL: srv.URL}, time.Second, clockwork.NewFakeClockAt(now))

	// Действие
	res, err := fetcher.Fetch(context.Background())

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "telia", res.Operator)
	assert.Equal(t, srv.URL, res.SourceURL)
	assert.Equal(t, `[{"FaultId":"INCSE1"}]`, string(res.Payload))
	assert.Equal(t, now, res.FetchedAt)
	assert.Equal(t, defaultUserAgent, <-gotUA)
}

func TestHTTPFetcher_BadStatusAndTimeout(t *testing.T) {
	// Подготовка
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer failing.Close()
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	defer slow.Close()

	// Действие
	_, statusErr := NewHTTPFetcher(config.SourceConfig{Operator: "tre", URL: failing.URL}, time.Second, clockwork.NewRealClock()).Fetch(context.Background())
	_, timeoutErr := NewHTTPFetcher(config.SourceConfig{Operator: "tre", URL: slow.URL, Timeout: 50 * time.Millisecond}, time.Minute, clockwork.NewRealClock()).Fetch(context.Background())

	// Проверки
	assert.ErrorContains(t, statusErr, "unexpected status 503")
	assert.Error(t, timeoutErr)
}

func TestFetchersFromConfig(t *testing.T) {
	fetchers := FetchersFromConfig([]config.SourceConfig{
		{Operator: "telia", URL: "https://telia.example"},
		{Operator: "tre", URL: "https://tre.example"},
	}, time.Second, clockwork.NewRealClock())

	require.Len(t, fetchers, 2)
	assert.Equal(t, "tre", fetchers[1].Operator())
}
