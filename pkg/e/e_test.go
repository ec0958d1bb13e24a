package e

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapError(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"unique violation", &pgconn.PgError{Code: "23505"}, ErrUniqueViolation},
		{"foreign key", &pgconn.PgError{Code: "23503"}, ErrInvalidInput},
		{"check constraint", &pgconn.PgError{Code: "23514"}, ErrInvalidInput},
		{"other pg error", &pgconn.PgError{Code: "40001"}, ErrInternal},
		{"no rows", pgx.ErrNoRows, ErrNotFound},
		{"wrapped no rows", fmt.Errorf("scan: %w", pgx.ErrNoRows), ErrNotFound},
		{"deadline", context.DeadlineExceeded, ErrDeadline},
		{"canceled", context.Canceled, ErrCanceled},
		{"unknown", errors.New("boom"), ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WrapError(ctx, "repo.op", tt.err)
			assert.ErrorIs(t, got, tt.want)
			assert.Contains(t, got.Error(), "repo.op")
		})
	}

	assert.NoError(t, WrapError(ctx, "repo.op", nil))
}
