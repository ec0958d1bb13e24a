// Package ingest опрашивает источники операторов и передает сырые ответы на слияние.
package ingest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/telecom_outage_system/internal/config"
	"github.com/shenikar/telecom_outage_system/internal/models"
)

const (
	maxPayloadBytes  = 8 << 20
	defaultUserAgent = "telecom-outage-system/1.0"
)

// Fetcher получает один сырой ответ источника
type Fetcher interface {
	Operator() string
	Fetch(ctx context.Context) (models.RawFetchResult, error)
}

// HTTPFetcher забирает страницу или JSON источника по HTTP GET
type HTTPFetcher struct {
	src    config.SourceConfig
	client *http.Client
	clock  clockwork.Clock
}

// NewHTTPFetcher создает HTTP-источник; таймаут из конфигурации источника важнее общего
func NewHTTPFetcher(src config.SourceConfig, defaultTimeout time.Duration, clock clockwork.Clock) *HTTPFetcher {
	timeout := src.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPFetcher{
		src:    src,
		client: &http.Client{Timeout: timeout},
		clock:  clock,
	}
}

func (f *HTTPFetcher) Operator() string { return f.src.Operator }

func (f *HTTPFetcher) Fetch(ctx context.Context) (models.RawFetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.src.URL, nil)
	if err != nil {
		return models.RawFetchResult{}, fmt.Errorf("build request: %w", err)
	}
	userAgent := f.src.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json, text/html;q=0.9")

	resp, err := f.client.Do(req)
	if err != nil {
		return models.RawFetchResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return models.RawFetchResult{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes))
	if err != nil {
		return models.RawFetchResult{}, fmt.Errorf("read body: %w", err)
	}

	return models.RawFetchResult{
		Operator:  f.src.Operator,
		SourceURL: f.src.URL,
		Payload:   payload,
		FetchedAt: f.clock.Now().UTC(),
	}, nil
}

// FetchersFromConfig строит HTTP-источники по списку из SOURCES_FILE
func FetchersFromConfig(sources []config.SourceConfig, defaultTimeout time.Duration, clock clockwork.Clock) []Fetcher {
	out := make([]Fetcher, 0, len(sources))
	for _, src := range sources {
		out = append(out, NewHTTPFetcher(src, defaultTimeout, clock))
	}
	return out
}
