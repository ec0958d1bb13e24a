package crowd

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/shenikar/telecom_outage_system/internal/models"
	"github.com/shenikar/telecom_outage_system/internal/region"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func reportsFor(operator string, regionID int64, n int, age time.Duration) []models.UserReport {
	out := make([]models.UserReport, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, models.UserReport{
			OperatorName: ptr(operator),
			RegionID:     ptr(regionID),
			RegionName:   &models.BilingualText{SV: "Stockholms län", EN: "Stockholm County"},
			Status:       models.ReportPending,
			CreatedAt:    now.Add(-age),
		})
	}
	return out
}

func TestDetectUserClusters_Threshold(t *testing.T) {
	below := reportsFor("telia", 1, 4, time.Minute)
	assert.Empty(t, DetectUserClusters(below, DefaultWindow, DefaultThreshold, now))

	at := reportsFor("telia", 1, 5, time.Minute)
	hotspots := DetectUserClusters(at, DefaultWindow, DefaultThreshold, now)
	require.Len(t, hotspots, 1)
	assert.Equal(t, "telia", hotspots[0].OperatorName)
	assert.Equal(t, int64(1), *hotspots[0].RegionID)
	assert.Equal(t, 5, hotspots[0].ReportCount)
	assert.Equal(t, models.HotspotUserCluster, hotspots[0].Type)
	assert.Equal(t, "Stockholms län", hotspots[0].RegionName.SV)
	assert.Equal(t, now, hotspots[0].DetectedAt)
}

func TestDetectUserClusters_Window(t *testing.T) {
	// пятое сообщение старше окна на минуту
	reports := reportsFor("telia", 1, 4, 5*time.Minute)
	reports = append(reports, reportsFor("telia", 1, 1, 31*time.Minute)...)
	assert.Empty(t, DetectUserClusters(reports, 30*time.Minute, 5, now))

	// граница окна включена
	reports = reportsFor("telia", 1, 4, 5*time.Minute)
	reports = append(reports, reportsFor("telia", 1, 1, 30*time.Minute)...)
	assert.Len(t, DetectUserClusters(reports, 30*time.Minute, 5, now), 1)
}

func TestDetectUserClusters_OnlyPending(t *testing.T) {
	reports := reportsFor("tre", 2, 5, time.Minute)
	reports[0].Status = models.ReportVerified
	reports[1].Status = models.ReportRejected
	assert.Empty(t, DetectUserClusters(reports, DefaultWindow, DefaultThreshold, now))
}

func TestDetectUserClusters_UnknownOperatorAndRegion(t *testing.T) {
	reports := make([]models.UserReport, 0)
	for i := 0; i < 3; i++ {
		reports = append(reports, models.UserReport{Status: models.ReportPending, CreatedAt: now})
	}

	hotspots := DetectUserClusters(reports, DefaultWindow, 3, now)
	require.Len(t, hotspots, 1)
	assert.Equal(t, "Unknown", hotspots[0].OperatorName)
	assert.Nil(t, hotspots[0].RegionID)
	require.NotNil(t, hotspots[0].RegionName)
	assert.Equal(t, region.Unspecified(), *hotspots[0].RegionName)
}

func TestDetectUserClusters_Ordering(t *testing.T) {
	reports := reportsFor("tre", 3, 5, time.Minute)
	reports = append(reports, reportsFor("telia", 2, 5, time.Minute)...)
	reports = append(reports, reportsFor("telia", 1, 5, time.Minute)...)
	reports = append(reports, reportsFor("lycamobile", 1, 7, time.Minute)...)

	hotspots := DetectUserClusters(reports, DefaultWindow, DefaultThreshold, now)
	require.Len(t, hotspots, 4)
	assert.Equal(t, "lycamobile", hotspots[0].OperatorName)
	assert.Equal(t, "telia", hotspots[1].OperatorName)
	assert.Equal(t, int64(1), *hotspots[1].RegionID)
	assert.Equal(t, "telia", hotspots[2].OperatorName)
	assert.Equal(t, int64(2), *hotspots[2].RegionID)
	assert.Equal(t, "tre", hotspots[3].OperatorName)
}

type fakeSource struct {
	signals []models.CrowdSignal
	err     error
}

func (f *fakeSource) Name() string { return "MockDetector" }

func (f *fakeSource) FetchSignals(context.Context) ([]models.CrowdSignal, error) {
	return f.signals, f.err
}

func TestAggregateExternalSignals(t *testing.T) {
	regions := region.Seed()
	for i := range regions {
		regions[i].ID = int64(i + 1)
	}
	in := region.NewInferrer(regions)

	src := &fakeSource{signals: []models.CrowdSignal{
		{Operator: "telia", RegionName: ptr("Stockholms län"), Count: 120, DetectedAt: now},
		{Operator: "tre", RegionName: ptr("Atlantis"), Count: 12, SourceName: "Downdetector", DetectedAt: now},
		{Operator: "telenor", Count: 3, DetectedAt: now},
	}}

	hotspots, err := AggregateExternalSignals(context.Background(), src, in)
	require.NoError(t, err)
	require.Len(t, hotspots, 3)

	assert.Equal(t, models.HotspotExternalSignal, hotspots[0].Type)
	assert.Equal(t, "MockDetector", *hotspots[0].Source)
	assert.Equal(t, int64(1), *hotspots[0].RegionID)
	assert.Equal(t, "Stockholm County", hotspots[0].RegionName.EN)
	assert.Equal(t, 120, hotspots[0].ReportCount)

	assert.Equal(t, "Downdetector", *hotspots[1].Source)
	assert.Nil(t, hotspots[1].RegionID)
	assert.Equal(t, "Atlantis", hotspots[1].RegionName.SV)

	assert.Nil(t, hotspots[2].RegionName)
}

func TestAggregateExternalSignals_SourceError(t *testing.T) {
	src := &fakeSource{err: errors.New("connection refused")}

	hotspots, err := AggregateExternalSignals(context.Background(), src, region.NewInferrer(nil))
	assert.Error(t, err)
	assert.Nil(t, hotspots)
}

func TestHTTPSignalSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"operator": "telia", "region_name": "Skåne län", "count": 42}]`))
	}))
	defer srv.Close()

	clock := clockwork.NewFakeClockAt(now)
	src := NewHTTPSignalSource("feed", srv.URL, time.Second, clock)

	signals, err := src.FetchSignals(context.Background())
	require.NoError(t, err)
	require.Len(t, signals, 1)
	assert.Equal(t, "telia", signals[0].Operator)
	assert.Equal(t, 42, signals[0].Count)
	assert.Equal(t, "feed", signals[0].SourceName)
	assert.Equal(t, now, signals[0].DetectedAt)
}

func TestHTTPSignalSource_Failures(t *testing.T) {
	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer failing.Close()

	_, err := NewHTTPSignalSource("feed", failing.URL, time.Second, clockwork.NewFakeClock()).FetchSignals(context.Background())
	assert.Error(t, err)

	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
	}))
	defer slow.Close()

	_, err = NewHTTPSignalSource("feed", slow.URL, 50*time.Millisecond, clockwork.NewFakeClock()).FetchSignals(context.Background())
	assert.Error(t, err)
}
