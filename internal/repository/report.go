package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/telecom_outage_system/internal/models"
	"github.com/shenikar/telecom_outage_system/internal/service"
	"github.com/shenikar/telecom_outage_system/pkg/e"
)

const reportColumns = `
	ur.id,
	ur.operator_id,
	op.name,
	ur.region_id,
	r.name_sv,
	r.name_en,
	ur.title,
	ur.description,
	ur.latitude,
	ur.longitude,
	ur.status,
	ur.created_at`

const reportFrom = `
	FROM user_reports ur
	LEFT JOIN operators op ON op.id = ur.operator_id
	LEFT JOIN regions r ON r.id = ur.region_id`

type ReportRepository struct {
	db *pgxpool.Pool
}

func NewReportRepository(db *pgxpool.Pool) service.ReportRepository {
	return &ReportRepository{db: db}
}

// CreateReport сохраняет сообщение пользователя
func (r *ReportRepository) CreateReport(ctx context.Context, report *models.UserReport) error {
	query := `
		INSERT INTO user_reports (operator_id, region_id, title, description, latitude, longitude, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		report.OperatorID,
		report.RegionID,
		report.Title,
		report.Description,
		report.Latitude,
		report.Longitude,
		report.Status,
		report.CreatedAt,
	).Scan(&report.ID)
	if err != nil {
		return e.WrapError(ctx, "repository: create report", err)
	}
	return nil
}

// ListReports возвращает сообщения с пагинацией; пустой статус - все сообщения
func (r *ReportRepository) ListReports(ctx context.Context, status models.ReportStatus, page, pageSize int) ([]*models.UserReport, error) {
	// рассчитываем смещение
	offset := (page - 1) * pageSize

	query := `SELECT` + reportColumns + reportFrom + `
		WHERE ($1::text = '' OR ur.status = $1)
		ORDER BY ur.created_at DESC, ur.id DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, string(status), pageSize, offset)
	if err != nil {
		return nil, e.WrapError(ctx, "repository: list reports", err)
	}
	defer rows.Close()

	reports := make([]*models.UserReport, 0)
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: scan report row: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, "repository: report rows", err)
	}
	return reports, nil
}

// ListPendingSince возвращает pending сообщения, созданные не раньше since
func (r *ReportRepository) ListPendingSince(ctx context.Context, since time.Time) ([]models.UserReport, error) {
	query := `SELECT` + reportColumns + reportFrom + `
		WHERE ur.status = 'pending' AND ur.created_at >= $1
		ORDER BY ur.created_at;
	`
	rows, err := r.db.Query(ctx, query, since)
	if err != nil {
		return nil, e.WrapError(ctx, "repository: list pending reports", err)
	}
	defer rows.Close()

	reports := make([]models.UserReport, 0)
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: scan report row: %w", err)
		}
		reports = append(reports, *report)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, "repository: pending report rows", err)
	}
	return reports, nil
}

// ModerateReport переводит pending сообщение в новый статус
func (r *ReportRepository) ModerateReport(ctx context.Context, id int64, status models.ReportStatus) (*models.UserReport, error) {
	cmdTag, err := r.db.Exec(ctx, `UPDATE user_reports SET status = $2 WHERE id = $1 AND status = 'pending';`, id, status)
	if err != nil {
		return nil, e.WrapError(ctx, "repository: moderate report", err)
	}

	// Проверка, было ли обновление: сообщения нет или оно уже промодерировано
	if cmdTag.RowsAffected() == 0 {
		var current models.ReportStatus
		err := r.db.QueryRow(ctx, `SELECT status FROM user_reports WHERE id = $1;`, id).Scan(&current)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("repository: report %d: %w", id, e.ErrNotFound)
		}
		if err != nil {
			return nil, e.WrapError(ctx, "repository: moderate report", err)
		}
		return nil, fmt.Errorf("repository: report %d is already %s: %w", id, current, e.ErrConflict)
	}

	query := `SELECT` + reportColumns + reportFrom + `
		WHERE ur.id = $1;
	`
	report, err := scanReport(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, e.WrapError(ctx, "repository: get report", err)
	}
	return report, nil
}

func scanReport(row pgx.Row) (*models.UserReport, error) {
	report := &models.UserReport{}
	var regionSV, regionEN *string
	err := row.Scan(
		&report.ID,
		&report.OperatorID,
		&report.OperatorName,
		&report.RegionID,
		&regionSV,
		&regionEN,
		&report.Title,
		&report.Description,
		&report.Latitude,
		&report.Longitude,
		&report.Status,
		&report.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	report.RegionName = bilingualName(regionSV, regionEN)
	return report, nil
}
