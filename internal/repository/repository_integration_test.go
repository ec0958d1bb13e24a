//go:build integration

package repository

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/shenikar/telecom_outage_system/internal/adapter"
	"github.com/shenikar/telecom_outage_system/internal/events"
	"github.com/shenikar/telecom_outage_system/internal/models"
	"github.com/shenikar/telecom_outage_system/internal/observability"
	"github.com/shenikar/telecom_outage_system/internal/region"
	"github.com/shenikar/telecom_outage_system/internal/service"
	"github.com/shenikar/telecom_outage_system/pkg/e"
)

var (
	testPool  *pgxpool.Pool
	testRedis *redis.Client
)

func TestMain(m *testing.M) {
	ctx := context.Background()

	pg, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "postgres",
				"POSTGRES_DB":       "outages",
			},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort("5432/tcp"),
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			).WithDeadline(90 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		fmt.Println("cannot start postgres container:", err)
		os.Exit(1)
	}

	rc, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor:   wait.ForListeningPort("6379/tcp"),
		},
		Started: true,
	})
	if err != nil {
		fmt.Println("cannot start redis container:", err)
		_ = pg.Terminate(ctx)
		os.Exit(1)
	}

	terminate := func() {
		_ = rc.Terminate(ctx)
		_ = pg.Terminate(ctx)
	}

	host, _ := pg.Host(ctx)
	port, _ := pg.MappedPort(ctx, "5432/tcp")
	dsn := fmt.Sprintf("postgres://postgres:postgres@%s:%s/outages?sslmode=disable", host, port.Port())

	mig, err := migrate.New("file://../../migrations", strings.Replace(dsn, "postgres://", "pgx5://", 1))
	if err == nil {
		err = mig.Up()
	}
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		fmt.Println("migrate:", err)
		terminate()
		os.Exit(1)
	}

	testPool, err = pgxpool.New(ctx, dsn)
	if err != nil {
		fmt.Println("pgxpool.New:", err)
		terminate()
		os.Exit(1)
	}

	redisHost, _ := rc.Host(ctx)
	redisPort, _ := rc.MappedPort(ctx, "6379/tcp")
	testRedis = redis.NewClient(&redis.Options{Addr: fmt.Sprintf("%s:%s", redisHost, redisPort.Port())})

	if err := NewReferenceRepository(testPool).Seed(ctx, []string{"telia", "tre", "lycamobile"}, region.Seed()); err != nil {
		fmt.Println("seed:", err)
		testPool.Close()
		terminate()
		os.Exit(1)
	}

	code := m.Run()

	_ = testRedis.Close()
	testPool.Close()
	terminate()
	os.Exit(code)
}

func truncateData(t *testing.T) {
	t.Helper()
	_, err := testPool.Exec(context.Background(), `TRUNCATE TABLE user_reports, outages, raw_signals RESTART IDENTITY`)
	require.NoError(t, err)
}

func newReconcileService(t *testing.T, clock clockwork.Clock) service.ReconcileService {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return service.NewReconcileService(
		NewOutageRepository(testPool),
		NewReferenceRepository(testPool),
		NewCache(testRedis, time.Minute),
		adapter.DefaultRegistry(clock),
		events.NewLogPublisher(logger),
		observability.NewMetricsForTesting(),
		clock,
		logger,
	)
}

func TestSeed_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewReferenceRepository(testPool)

	require.NoError(t, repo.Seed(ctx, []string{"telia", "tre", "lycamobile"}, region.Seed()))

	regions, err := repo.ListRegions(ctx)
	require.NoError(t, err)
	assert.Len(t, regions, 21)
	assert.Equal(t, "Stockholms län", regions[0].Name.SV)
	assert.Contains(t, regions[0].Aliases, "Stockholm")

	operators, err := repo.ListOperators(ctx)
	require.NoError(t, err)
	assert.Len(t, operators, 3)

	_, err = repo.OperatorID(ctx, "Halebop")
	assert.ErrorIs(t, err, e.ErrNotFound)
}

func TestReconcile_UpsertAgainstPostgres(t *testing.T) {
	truncateData(t)
	ctx := context.Background()
	clock := clockwork.NewFakeClockAt(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC))
	svc := newReconcileService(t, clock)

	record := models.CanonicalOutage{
		Operator:         "telia",
		IncidentKey:      "INCSE0100",
		Title:            models.BilingualText{SV: "Störning i Göteborg", EN: "Outage in Gothenburg"},
		Status:           models.StatusActive,
		Severity:         models.SeverityCritical,
		AffectedServices: []string{models.ServiceMobile},
	}

	created, err := svc.Reconcile(ctx, record, &models.RawSignal{Operator: "telia", Payload: []byte("{}")})
	require.NoError(t, err)
	assert.Nil(t, created.UpdatedAt)
	assert.InDelta(t, 7.5, created.SeverityScore, 1e-9)

	clock.Advance(time.Hour)
	record.Status = models.StatusResolved
	updated, err := svc.Reconcile(ctx, record, &models.RawSignal{Operator: "telia", Payload: []byte("{}")})
	require.NoError(t, err)

	stored, err := NewOutageRepository(testPool).GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated.ID, stored.ID)
	assert.Equal(t, models.StatusResolved, stored.Status)
	assert.True(t, created.StartTime.Equal(*stored.StartTime))
	require.NotNil(t, stored.UpdatedAt)
	require.NotNil(t, stored.RegionName)
	assert.Equal(t, "Västra Götalands län", stored.RegionName.SV)
	assert.Equal(t, "telia", stored.OperatorName)
	assert.Equal(t, []string{"mobile"}, stored.AffectedServices)
}

func TestReconcile_ConcurrentSameKeyAgainstPostgres(t *testing.T) {
	truncateData(t)
	ctx := context.Background()
	svc := newReconcileService(t, clockwork.NewRealClock())

	record := models.CanonicalOutage{
		Operator:    "tre",
		IncidentKey: "tre_Malmö_2025-03-01T08:00:00",
		Title:       models.BilingualText{SV: "Driftstörning", EN: "Service disruption"},
		Status:      models.StatusActive,
		Severity:    models.SeverityMedium,
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Reconcile(ctx, record, &models.RawSignal{Operator: "tre", Payload: []byte("{}")})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	var count int
	require.NoError(t, testPool.QueryRow(ctx, `SELECT COUNT(*) FROM outages`).Scan(&count))
	assert.Equal(t, 1, count)
}

func TestPurge_RetentionBoundary(t *testing.T) {
	truncateData(t)
	ctx := context.Background()
	now := time.Now().UTC()
	cutoff := now.Add(-30 * 24 * time.Hour)

	insertResolved := func(key string, end time.Time) {
		_, err := testPool.Exec(ctx, `
			INSERT INTO outages (operator_id, incident_key, title, status, start_time, end_time)
			VALUES ((SELECT id FROM operators WHERE name = 'telia'), $1, '{"sv":"Störning","en":"disruption"}', 'resolved', $2, $2)
		`, key, end)
		require.NoError(t, err)
	}
	insertResolved("old", now.Add(-31*24*time.Hour))
	insertResolved("recent", now.Add(-29*24*time.Hour))

	outages := NewOutageRepository(testPool)
	require.NoError(t, outages.SaveRawSignal(ctx, &models.RawSignal{Operator: "telia", Payload: []byte("old"), CapturedAt: now.Add(-31 * 24 * time.Hour)}))
	require.NoError(t, outages.SaveRawSignal(ctx, &models.RawSignal{Operator: "telia", Payload: []byte("new"), CapturedAt: now}))

	var oldID int64
	require.NoError(t, testPool.QueryRow(ctx, `SELECT id FROM outages WHERE incident_key = 'old'`).Scan(&oldID))

	deletedOutages, deletedRaw, err := NewRetentionRepository(testPool).Purge(ctx, cutoff)
	require.NoError(t, err)
	assert.Equal(t, []int64{oldID}, deletedOutages)
	assert.Equal(t, int64(1), deletedRaw)

	var remaining string
	require.NoError(t, testPool.QueryRow(ctx, `SELECT incident_key FROM outages`).Scan(&remaining))
	assert.Equal(t, "recent", remaining)
}

func TestListOutages_BoundingBox(t *testing.T) {
	truncateData(t)
	ctx := context.Background()

	insertAt := func(key string, lat, lon *float64) {
		_, err := testPool.Exec(ctx, `
			INSERT INTO outages (operator_id, incident_key, title, status, start_time, latitude, longitude)
			VALUES ((SELECT id FROM operators WHERE name = 'telia'), $1, '{"sv":"Störning","en":"disruption"}', 'active', now(), $2, $3)
		`, key, lat, lon)
		require.NoError(t, err)
	}
	lat, lon := 59.33, 18.07
	insertAt("stockholm", &lat, &lon)
	malmoLat, malmoLon := 55.60, 13.00
	insertAt("malmo", &malmoLat, &malmoLon)
	insertAt("nowhere", nil, nil)

	repo := NewOutageRepository(testPool)
	box := region.BoundingBox(59.3293, 18.0686, 100)

	within, err := repo.ListOutages(ctx, models.OutageFilter{Box: &box})
	require.NoError(t, err)
	require.Len(t, within, 1)
	require.NotNil(t, within[0].IncidentKey)
	assert.Equal(t, "stockholm", *within[0].IncidentKey)

	all, err := repo.ListOutages(ctx, models.OutageFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestModerateReport_Transitions(t *testing.T) {
	truncateData(t)
	ctx := context.Background()
	repo := NewReportRepository(testPool)

	report := &models.UserReport{
		Title:     "Ingen täckning",
		Latitude:  59.33,
		Longitude: 18.07,
		Status:    models.ReportPending,
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, repo.CreateReport(ctx, report))

	verified, err := repo.ModerateReport(ctx, report.ID, models.ReportVerified)
	require.NoError(t, err)
	assert.Equal(t, models.ReportVerified, verified.Status)

	_, err = repo.ModerateReport(ctx, report.ID, models.ReportRejected)
	assert.ErrorIs(t, err, e.ErrConflict)

	_, err = repo.ModerateReport(ctx, 9999, models.ReportRejected)
	assert.ErrorIs(t, err, e.ErrNotFound)

	pending, err := repo.ListPendingSince(ctx, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestCache_OutageRoundTrip(t *testing.T) {
	ctx := context.Background()
	cache := NewCache(testRedis, time.Minute)

	miss, err := cache.GetOutage(ctx, 12345)
	require.NoError(t, err)
	assert.Nil(t, miss)

	outage := &models.Outage{ID: 12345, Title: models.BilingualText{SV: "Störning", EN: "disruption"}, Status: models.StatusActive}
	require.NoError(t, cache.SetOutage(ctx, outage))

	hit, err := cache.GetOutage(ctx, 12345)
	require.NoError(t, err)
	assert.Equal(t, outage.Title, hit.Title)

	require.NoError(t, cache.InvalidateOutage(ctx, 12345))
	miss, err = cache.GetOutage(ctx, 12345)
	require.NoError(t, err)
	assert.Nil(t, miss)
}
