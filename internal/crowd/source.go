package crowd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/telecom_outage_system/internal/models"
)

const maxFeedBytes = 4 << 20

// HTTPSignalSource читает JSON-массив сигналов с внешнего агрегатора
type HTTPSignalSource struct {
	name   string
	url    string
	client *http.Client
	clock  clockwork.Clock
}

func NewHTTPSignalSource(name, url string, timeout time.Duration, clock clockwork.Clock) *HTTPSignalSource {
	return &HTTPSignalSource{
		name:   name,
		url:    url,
		client: &http.Client{Timeout: timeout},
		clock:  clock,
	}
}

func (s *HTTPSignalSource) Name() string { return s.name }

func (s *HTTPSignalSource) FetchSignals(ctx context.Context) ([]models.CrowdSignal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s: %w", s.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("request %s: unexpected status %d", s.url, resp.StatusCode)
	}

	var signals []models.CrowdSignal
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxFeedBytes)).Decode(&signals); err != nil {
		return nil, fmt.Errorf("decode signals: %w", err)
	}

	now := s.clock.Now().UTC()
	for i := range signals {
		if signals[i].SourceName == "" {
			signals[i].SourceName = s.name
		}
		if signals[i].DetectedAt.IsZero() {
			signals[i].DetectedAt = now
		}
	}
	return signals, nil
}
