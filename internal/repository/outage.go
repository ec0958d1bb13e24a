package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/telecom_outage_system/internal/models"
	"github.com/shenikar/telecom_outage_system/internal/service"
	"github.com/shenikar/telecom_outage_system/pkg/e"
)

const outageColumns = `
	o.id,
	o.incident_key,
	o.operator_id,
	op.name,
	o.region_id,
	r.name_sv,
	r.name_en,
	o.raw_signal_id,
	o.title,
	o.description,
	o.status,
	o.severity,
	o.severity_score,
	o.start_time,
	o.end_time,
	o.estimated_fix_time,
	o.location,
	o.latitude,
	o.longitude,
	o.affected_services,
	o.created_at,
	o.updated_at`

const outageFrom = `
	FROM outages o
	JOIN operators op ON op.id = o.operator_id
	LEFT JOIN regions r ON r.id = o.region_id`

// OutageRepository реализует журнал сырых сигналов, транзакционную запись и чтение аварий
type OutageRepository struct {
	db *pgxpool.Pool
}

var (
	_ service.OutageStore  = (*OutageRepository)(nil)
	_ service.OutageReader = (*OutageRepository)(nil)
)

func NewOutageRepository(db *pgxpool.Pool) *OutageRepository {
	return &OutageRepository{db: db}
}

// SaveRawSignal добавляет сырой ответ источника в журнал
func (r *OutageRepository) SaveRawSignal(ctx context.Context, raw *models.RawSignal) error {
	query := `
		INSERT INTO raw_signals (operator, source_url, payload, captured_at)
		VALUES ($1, $2, $3, $4) RETURNING id;
	`
	payload := raw.Payload
	if payload == nil {
		payload = []byte{}
	}
	err := r.db.QueryRow(ctx, query, raw.Operator, raw.SourceURL, payload, raw.CapturedAt).Scan(&raw.ID)
	if err != nil {
		return e.WrapError(ctx, "repository: save raw signal", err)
	}
	return nil
}

// WithTx выполняет fn в транзакции. Транзакция фиксируется, только если fn вернула nil.
func (r *OutageRepository) WithTx(ctx context.Context, fn func(ctx context.Context, tx service.OutageTx) error) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return e.WrapError(ctx, "repository: begin tx", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(ctx, &outageTx{tx: tx}); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return e.WrapError(ctx, "repository: commit tx", err)
	}
	return nil
}

type outageTx struct {
	tx pgx.Tx
}

// LockIncidentKey берет advisory lock на ключ до конца транзакции
func (t *outageTx) LockIncidentKey(ctx context.Context, operatorID int64, key string) error {
	lockKey := fmt.Sprintf("%d:%s", operatorID, key)
	if _, err := t.tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0));`, lockKey); err != nil {
		return e.WrapError(ctx, "repository: lock incident key", err)
	}
	return nil
}

// FindByIncidentKey блокирует найденную строку до конца транзакции
func (t *outageTx) FindByIncidentKey(ctx context.Context, operatorID int64, key string) (*models.Outage, error) {
	query := `SELECT` + outageColumns + outageFrom + `
		WHERE o.operator_id = $1 AND o.incident_key = $2
		FOR UPDATE OF o;
	`
	outage, err := scanOutage(t.tx.QueryRow(ctx, query, operatorID, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, e.WrapError(ctx, "repository: find outage by incident key", err)
	}
	return outage, nil
}

// Create вставляет новую аварию; повтор ключа дает e.ErrUniqueViolation
func (t *outageTx) Create(ctx context.Context, o *models.Outage) error {
	title, description, err := encodeTexts(o)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO outages (
			operator_id, incident_key, region_id, raw_signal_id, title, description,
			status, severity, severity_score, start_time, end_time, estimated_fix_time,
			location, latitude, longitude, affected_services, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id;
	`
	err = t.tx.QueryRow(ctx, query,
		o.OperatorID,
		o.IncidentKey,
		o.RegionID,
		o.RawSignalID,
		title,
		description,
		o.Status,
		o.Severity,
		o.SeverityScore,
		o.StartTime,
		o.EndTime,
		o.EstimatedFixTime,
		o.Location,
		o.Latitude,
		o.Longitude,
		o.AffectedServices,
		o.CreatedAt,
	).Scan(&o.ID)
	if err != nil {
		return e.WrapError(ctx, "repository: create outage", err)
	}
	return nil
}

// Update перезаписывает изменяемые поля; start_time и created_at не входят в запрос
func (t *outageTx) Update(ctx context.Context, o *models.Outage) error {
	title, description, err := encodeTexts(o)
	if err != nil {
		return err
	}
	query := `
		UPDATE outages SET
			region_id = $1,
			raw_signal_id = $2,
			title = $3,
			description = $4,
			status = $5,
			severity = $6,
			severity_score = $7,
			end_time = $8,
			estimated_fix_time = $9,
			location = $10,
			latitude = $11,
			longitude = $12,
			affected_services = $13,
			updated_at = $14
		WHERE id = $15;
	`
	cmdTag, err := t.tx.Exec(ctx, query,
		o.RegionID,
		o.RawSignalID,
		title,
		description,
		o.Status,
		o.Severity,
		o.SeverityScore,
		o.EndTime,
		o.EstimatedFixTime,
		o.Location,
		o.Latitude,
		o.Longitude,
		o.AffectedServices,
		o.UpdatedAt,
		o.ID,
	)
	if err != nil {
		return e.WrapError(ctx, "repository: update outage", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("repository: outage with id %d not found for update: %w", o.ID, e.ErrNotFound)
	}
	return nil
}

// GetByID возвращает аварию по ID
func (r *OutageRepository) GetByID(ctx context.Context, id int64) (*models.Outage, error) {
	query := `SELECT` + outageColumns + outageFrom + `
		WHERE o.id = $1;
	`
	outage, err := scanOutage(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, e.WrapError(ctx, fmt.Sprintf("repository: get outage %d", id), err)
	}
	return outage, nil
}

// ListOutages возвращает аварии по оператору и статусу, свежие первыми. Limit 0 - без ограничения.
// При заданном Box остаются только аварии с координатами внутри прямоугольника.
func (r *OutageRepository) ListOutages(ctx context.Context, filter models.OutageFilter) ([]*models.Outage, error) {
	query := `SELECT` + outageColumns + outageFrom + `
		WHERE ($1::text = '' OR op.name = $1)
			AND ($2::text = '' OR o.status = $2)
			AND ($4::float8 IS NULL OR (
				o.latitude BETWEEN $4 AND $5
				AND o.longitude BETWEEN $6 AND $7
			))
		ORDER BY COALESCE(o.updated_at, o.created_at) DESC, o.id DESC
		LIMIT NULLIF($3::int, 0);
	`
	var minLat, maxLat, minLon, maxLon *float64
	if b := filter.Box; b != nil {
		minLat, maxLat, minLon, maxLon = &b.MinLat, &b.MaxLat, &b.MinLon, &b.MaxLon
	}
	rows, err := r.db.Query(ctx, query, filter.Operator, string(filter.Status), filter.Limit,
		minLat, maxLat, minLon, maxLon)
	if err != nil {
		return nil, e.WrapError(ctx, "repository: list outages", err)
	}
	return collectOutages(ctx, rows)
}

// ListHistory возвращает аварии, решенные не раньше since
func (r *OutageRepository) ListHistory(ctx context.Context, operator string, since time.Time) ([]*models.Outage, error) {
	query := `SELECT` + outageColumns + outageFrom + `
		WHERE o.status = 'resolved'
			AND o.end_time >= $2
			AND ($1::text = '' OR op.name = $1)
		ORDER BY o.end_time DESC;
	`
	rows, err := r.db.Query(ctx, query, operator, since)
	if err != nil {
		return nil, e.WrapError(ctx, "repository: list history", err)
	}
	return collectOutages(ctx, rows)
}

func collectOutages(ctx context.Context, rows pgx.Rows) ([]*models.Outage, error) {
	defer rows.Close()

	outages := make([]*models.Outage, 0)
	for rows.Next() {
		outage, err := scanOutage(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: scan outage row: %w", err)
		}
		outages = append(outages, outage)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, "repository: outage rows", err)
	}
	return outages, nil
}

func scanOutage(row pgx.Row) (*models.Outage, error) {
	o := &models.Outage{}
	var (
		regionSV, regionEN *string
		title, description []byte
	)
	err := row.Scan(
		&o.ID,
		&o.IncidentKey,
		&o.OperatorID,
		&o.OperatorName,
		&o.RegionID,
		&regionSV,
		&regionEN,
		&o.RawSignalID,
		&title,
		&description,
		&o.Status,
		&o.Severity,
		&o.SeverityScore,
		&o.StartTime,
		&o.EndTime,
		&o.EstimatedFixTime,
		&o.Location,
		&o.Latitude,
		&o.Longitude,
		&o.AffectedServices,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(title, &o.Title); err != nil {
		return nil, fmt.Errorf("decode title of outage %d: %w", o.ID, err)
	}
	if description != nil {
		o.Description = &models.BilingualText{}
		if err := json.Unmarshal(description, o.Description); err != nil {
			return nil, fmt.Errorf("decode description of outage %d: %w", o.ID, err)
		}
	}
	o.RegionName = bilingualName(regionSV, regionEN)
	return o, nil
}

func encodeTexts(o *models.Outage) (title, description []byte, err error) {
	title, err = json.Marshal(o.Title)
	if err != nil {
		return nil, nil, fmt.Errorf("repository: encode title: %w", err)
	}
	if o.Description != nil {
		description, err = json.Marshal(o.Description)
		if err != nil {
			return nil, nil, fmt.Errorf("repository: encode description: %w", err)
		}
	}
	return title, description, nil
}

func bilingualName(sv, en *string) *models.BilingualText {
	if sv == nil {
		return nil
	}
	name := &models.BilingualText{SV: *sv}
	if en != nil {
		name.EN = *en
	}
	return name
}
