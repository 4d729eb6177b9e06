//go:build unit

package infra_test

import (
	"context"
	"errors"
	"testing"

	"stokship/internal/infra"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestWrapRepoErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind []infra.RepositoryErrorKind
		want infra.RepositoryErrorKind
	}{
		{name: "no rows", err: pgx.ErrNoRows, want: infra.KindNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505"}, want: infra.KindDuplicateKey},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, want: infra.KindForeignKeyViolated},
		{name: "check violation", err: &pgconn.PgError{Code: "23514"}, want: infra.KindCheckViolated},
		{name: "deadlock", err: &pgconn.PgError{Code: "40P01"}, want: infra.KindTransient},
		{name: "serialization failure", err: &pgconn.PgError{Code: "40001"}, want: infra.KindTransient},
		{name: "syntax error", err: &pgconn.PgError{Code: "42601"}, want: infra.KindDBFailure},
		{name: "plain error", err: errors.New("boom"), want: infra.KindDBFailure},
		{name: "explicit kind wins", err: errors.New("boom"), kind: []infra.RepositoryErrorKind{infra.KindNotFound}, want: infra.KindNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := infra.WrapRepoErr("op", tt.err, tt.kind...)
			assert.True(t, infra.IsKind(err, tt.want), "got %v", err)
			assert.Contains(t, err.Error(), "op")
		})
	}

	assert.NoError(t, infra.WrapRepoErr("op", nil))
}

func TestIsTransient(t *testing.T) {
	assert.True(t, infra.IsTransient(&pgconn.PgError{Code: "40P01"}))
	assert.False(t, infra.IsTransient(&pgconn.PgError{Code: "23505"}))
	assert.False(t, infra.IsTransient(context.Canceled))
	assert.False(t, infra.IsTransient(errors.New("boom")))
}

func TestNotFound(t *testing.T) {
	err := infra.NotFound("deal not found")
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
	assert.Equal(t, "NOT_FOUND: deal not found", err.Error())
}
