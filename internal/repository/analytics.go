package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/telecom_outage_system/internal/models"
	"github.com/shenikar/telecom_outage_system/internal/service"
	"github.com/shenikar/telecom_outage_system/pkg/e"
)

type AnalyticsRepository struct {
	db *pgxpool.Pool
}

func NewAnalyticsRepository(db *pgxpool.Pool) service.AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// MTTR считает среднее время восстановления по решенным авариям
func (r *AnalyticsRepository) MTTR(ctx context.Context) ([]models.MTTRStat, error) {
	rows, err := r.db.Query(ctx, `
		SELECT op.name,
			COUNT(o.id),
			COALESCE(AVG(EXTRACT(EPOCH FROM (o.end_time - o.start_time))) / 3600, 0)::float8
		FROM outages o
		JOIN operators op ON op.id = o.operator_id
		WHERE o.status = 'resolved'
			AND o.start_time IS NOT NULL
			AND o.end_time >= o.start_time
		GROUP BY op.name
		ORDER BY op.name;
	`)
	if err != nil {
		return nil, e.WrapError(ctx, "repository: mttr", err)
	}
	defer rows.Close()

	stats := make([]models.MTTRStat, 0)
	for rows.Next() {
		var s models.MTTRStat
		if err := rows.Scan(&s.OperatorName, &s.ResolvedOutages, &s.AverageMTTRHours); err != nil {
			return nil, fmt.Errorf("repository: scan mttr row: %w", err)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, "repository: mttr rows", err)
	}
	return stats, nil
}

// Reliability считает число аварий и суммарный простой начиная с since.
// Для незакрытых аварий простой считается до текущего момента.
func (r *AnalyticsRepository) Reliability(ctx context.Context, since time.Time) ([]models.ReliabilityStat, error) {
	rows, err := r.db.Query(ctx, `
		SELECT op.name,
			COUNT(o.id),
			COALESCE(SUM(EXTRACT(EPOCH FROM (COALESCE(o.end_time, NOW()) - o.start_time))) / 3600, 0)::float8
		FROM operators op
		LEFT JOIN outages o ON o.operator_id = op.id
			AND o.start_time >= $1
			AND o.status <> 'scheduled'
		GROUP BY op.name
		ORDER BY op.name;
	`, since)
	if err != nil {
		return nil, e.WrapError(ctx, "repository: reliability", err)
	}
	defer rows.Close()

	stats := make([]models.ReliabilityStat, 0)
	for rows.Next() {
		var s models.ReliabilityStat
		if err := rows.Scan(&s.OperatorName, &s.OutageCount, &s.TotalDowntimeHours); err != nil {
			return nil, fmt.Errorf("repository: scan reliability row: %w", err)
		}
		stats = append(stats, s)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, "repository: reliability rows", err)
	}
	return stats, nil
}

// ScraperStatus возвращает время последнего сигнала каждого оператора
func (r *AnalyticsRepository) ScraperStatus(ctx context.Context) ([]models.ScraperStatus, error) {
	rows, err := r.db.Query(ctx, `
		SELECT operator, MAX(captured_at)
		FROM raw_signals
		GROUP BY operator
		ORDER BY operator;
	`)
	if err != nil {
		return nil, e.WrapError(ctx, "repository: scraper status", err)
	}
	defer rows.Close()

	status := make([]models.ScraperStatus, 0)
	for rows.Next() {
		var s models.ScraperStatus
		if err := rows.Scan(&s.Operator, &s.LastScrapedAt); err != nil {
			return nil, fmt.Errorf("repository: scan scraper status row: %w", err)
		}
		status = append(status, s)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, "repository: scraper status rows", err)
	}
	return status, nil
}
