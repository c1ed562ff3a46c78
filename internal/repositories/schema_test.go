package repositories

import (
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func undefinedTableErr() error {
	return &pgconn.PgError{Code: sqlstateUndefinedTable, Message: `relation "LINEUP" does not exist`}
}

func undefinedColumnErr() error {
	return &pgconn.PgError{Code: sqlstateUndefinedColumn, Message: `column "NAME" does not exist`}
}

func TestIsSchemaMismatch(t *testing.T) {
	assert.True(t, isSchemaMismatch(undefinedTableErr()))
	assert.True(t, isSchemaMismatch(undefinedColumnErr()))
	assert.False(t, isSchemaMismatch(errors.New("connection refused")))
	assert.False(t, isSchemaMismatch(&pgconn.PgError{Code: "23505"}))
	assert.False(t, isSchemaMismatch(nil))
}

func TestRunWithFallback_FallsBackOnMissingRelation(t *testing.T) {
	var tables []string
	err := runWithFallback(accountSchemas, func(s tableSchema) error {
		tables = append(tables, s.Table)
		if s.Table == "LINEUP" {
			return undefinedTableErr()
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"LINEUP", "lineup"}, tables)
}

func TestRunWithFallback_FallsBackOnMissingColumn(t *testing.T) {
	var attempts int
	err := runWithFallback(accountSchemas, func(s tableSchema) error {
		attempts++
		if attempts == 1 {
			return undefinedColumnErr()
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
}

func TestRunWithFallback_PrimarySuccessSkipsFallback(t *testing.T) {
	var attempts int
	err := runWithFallback(accountSchemas, func(s tableSchema) error {
		attempts++
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, attempts)
}

func TestRunWithFallback_OtherErrorsAreNotRetried(t *testing.T) {
	boom := errors.New("permission denied")
	var attempts int
	err := runWithFallback(accountSchemas, func(s tableSchema) error {
		attempts++
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, attempts)
}

func TestRunWithFallback_MismatchOnLastCandidateSurfaces(t *testing.T) {
	var attempts int
	err := runWithFallback(accountSchemas, func(s tableSchema) error {
		attempts++
		return undefinedTableErr()
	})
	require.Error(t, err)
	assert.True(t, isSchemaMismatch(err))
	assert.Equal(t, 2, attempts)
}

func TestTableSchema_ColumnResolution(t *testing.T) {
	upper := accountSchemas[0]
	lower := accountSchemas[1]

	assert.Equal(t, "NAME", upper.Col("name"))
	assert.Equal(t, "POSITION", upper.Col("position"))
	assert.Equal(t, "name", lower.Col("name"))

	// Shared lowercase columns pass through on both variants.
	assert.Equal(t, "scheduled_at", upper.Col("scheduled_at"))
	assert.Equal(t, "id", upper.Col("id"))
}

func TestSelectList_QuotesEveryColumn(t *testing.T) {
	got := selectList(accountSchemas[0], "id", "name", "scheduled_at")
	assert.Equal(t, `"id", "NAME", "scheduled_at"`, got)
}
