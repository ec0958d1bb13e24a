package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/telecom_outage_system/internal/service"
	"github.com/shenikar/telecom_outage_system/pkg/e"
)

type RetentionRepository struct {
	db *pgxpool.Pool
}

func NewRetentionRepository(db *pgxpool.Pool) service.RetentionRepository {
	return &RetentionRepository{db: db}
}

// Purge удаляет решенные аварии и сырые сигналы старше cutoff в одной транзакции
// и возвращает идентификаторы удаленных аварий.
// Сигналы удаляются независимо от статуса связанных аварий.
func (r *RetentionRepository) Purge(ctx context.Context, cutoff time.Time) ([]int64, int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, 0, e.WrapError(ctx, "repository: begin purge", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	rows, err := tx.Query(ctx, `
		DELETE FROM outages
		WHERE status = 'resolved' AND end_time < $1
		RETURNING id;
	`, cutoff)
	if err != nil {
		return nil, 0, e.WrapError(ctx, "repository: purge outages", err)
	}
	outageIDs, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, 0, e.WrapError(ctx, "repository: purge outages", err)
	}

	rawTag, err := tx.Exec(ctx, `DELETE FROM raw_signals WHERE captured_at < $1;`, cutoff)
	if err != nil {
		return nil, 0, e.WrapError(ctx, "repository: purge raw signals", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, 0, e.WrapError(ctx, "repository: commit purge", err)
	}
	return outageIDs, rawTag.RowsAffected(), nil
}
