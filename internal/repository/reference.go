package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/telecom_outage_system/internal/models"
	"github.com/shenikar/telecom_outage_system/internal/service"
	"github.com/shenikar/telecom_outage_system/pkg/e"
)

type ReferenceRepository struct {
	db *pgxpool.Pool
}

var _ service.ReferenceRepository = (*ReferenceRepository)(nil)

func NewReferenceRepository(db *pgxpool.Pool) *ReferenceRepository {
	return &ReferenceRepository{db: db}
}

// Seed заполняет справочники операторов и регионов. Существующие записи не изменяются.
func (r *ReferenceRepository) Seed(ctx context.Context, operators []string, regions []models.Region) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return e.WrapError(ctx, "repository: begin seed", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	for _, name := range operators {
		_, err := tx.Exec(ctx, `INSERT INTO operators (name) VALUES ($1) ON CONFLICT (name) DO NOTHING;`, strings.ToLower(name))
		if err != nil {
			return e.WrapError(ctx, "repository: seed operator "+name, err)
		}
	}

	query := `
		INSERT INTO regions (name_sv, name_en, latitude, longitude, aliases)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (name_sv) DO NOTHING;
	`
	for _, reg := range regions {
		aliases := reg.Aliases
		if aliases == nil {
			aliases = []string{}
		}
		if _, err := tx.Exec(ctx, query, reg.Name.SV, reg.Name.EN, reg.Latitude, reg.Longitude, aliases); err != nil {
			return e.WrapError(ctx, "repository: seed region "+reg.Name.SV, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return e.WrapError(ctx, "repository: commit seed", err)
	}
	return nil
}

// OperatorID возвращает идентификатор оператора по имени без учета регистра
func (r *ReferenceRepository) OperatorID(ctx context.Context, name string) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `SELECT id FROM operators WHERE name = lower($1);`, name).Scan(&id)
	if err != nil {
		return 0, e.WrapError(ctx, fmt.Sprintf("repository: operator %q", name), err)
	}
	return id, nil
}

func (r *ReferenceRepository) ListOperators(ctx context.Context) ([]models.Operator, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM operators ORDER BY name;`)
	if err != nil {
		return nil, e.WrapError(ctx, "repository: list operators", err)
	}
	defer rows.Close()

	operators := make([]models.Operator, 0)
	for rows.Next() {
		var op models.Operator
		if err := rows.Scan(&op.ID, &op.Name); err != nil {
			return nil, fmt.Errorf("repository: scan operator row: %w", err)
		}
		operators = append(operators, op)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, "repository: operator rows", err)
	}
	return operators, nil
}

// ListRegions возвращает справочник в порядке заполнения
func (r *ReferenceRepository) ListRegions(ctx context.Context) ([]models.Region, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name_sv, name_en, latitude, longitude, aliases
		FROM regions
		ORDER BY id;
	`)
	if err != nil {
		return nil, e.WrapError(ctx, "repository: list regions", err)
	}
	defer rows.Close()

	regions := make([]models.Region, 0)
	for rows.Next() {
		var reg models.Region
		if err := rows.Scan(&reg.ID, &reg.Name.SV, &reg.Name.EN, &reg.Latitude, &reg.Longitude, &reg.Aliases); err != nil {
			return nil, fmt.Errorf("repository: scan region row: %w", err)
		}
		regions = append(regions, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, "repository: region rows", err)
	}
	return regions, nil
}

// ListRegionSummaries возвращает регионы с числом текущих аварий
func (r *ReferenceRepository) ListRegionSummaries(ctx context.Context) ([]models.RegionSummary, error) {
	rows, err := r.db.Query(ctx, `
		SELECT r.id, r.name_sv, r.name_en, r.latitude, r.longitude, r.aliases,
			COUNT(o.id) FILTER (WHERE o.status NOT IN ('resolved', 'scheduled'))
		FROM regions r
		LEFT JOIN outages o ON o.region_id = r.id
		GROUP BY r.id
		ORDER BY r.id;
	`)
	if err != nil {
		return nil, e.WrapError(ctx, "repository: list region summaries", err)
	}
	defer rows.Close()

	summaries := make([]models.RegionSummary, 0)
	for rows.Next() {
		var s models.RegionSummary
		if err := rows.Scan(&s.ID, &s.Name.SV, &s.Name.EN, &s.Latitude, &s.Longitude, &s.Aliases, &s.ActiveOutages); err != nil {
			return nil, fmt.Errorf("repository: scan region summary row: %w", err)
		}
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, e.WrapError(ctx, "repository: region summary rows", err)
	}
	return summaries, nil
}
