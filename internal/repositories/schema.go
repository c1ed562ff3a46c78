package repositories

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// The remote schema's identifier casing is inconsistent across
// deployments: the account/approval table exists as "LINEUP" with
// uppercase columns on some instances and as lineup with lowercase
// columns on others, with no migration step available. Every operation
// therefore probes the primary casing and falls back once to the
// alternate when the store reports a missing relation or column. The
// probe is deliberately per-call, never cached, so schema drift during
// a session is absorbed by the next operation.

// SQLSTATEs for a missing relation / column.
const (
	sqlstateUndefinedTable  = "42P01"
	sqlstateUndefinedColumn = "42703"
)

func isSchemaMismatch(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == sqlstateUndefinedTable ||
			pgErr.Code == sqlstateUndefinedColumn
	}
	return false
}

// tableSchema is one casing variant of a record family: the physical
// table name plus the mapping from logical field names to physical
// column names.
type tableSchema struct {
	Table string
	cols  map[string]string
}

// Col resolves a logical field to this variant's physical column.
// Unknown fields fall through unchanged so shared lowercase columns
// (id, scheduled_at, ...) need no per-variant entry.
func (s tableSchema) Col(logical string) string {
	if c, ok := s.cols[logical]; ok {
		return c
	}
	return logical
}

// quoteIdent quotes a fixed identifier so case-sensitive names address
// the exact relation or column ("LINEUP" and lineup are distinct).
func quoteIdent(ident string) string {
	return `"` + ident + `"`
}

// selectList builds a quoted SELECT list for the given logical fields.
func selectList(s tableSchema, logical ...string) string {
	quoted := make([]string, len(logical))
	for i, l := range logical {
		quoted[i] = quoteIdent(s.Col(l))
	}
	return strings.Join(quoted, ", ")
}

// accountSchemas are the casing candidates for the account/approval
// record family, probed in order. scheduled_at and approved_at are
// lowercase on every known deployment.
var accountSchemas = []tableSchema{
	{
		Table: "LINEUP",
		cols: map[string]string{
			"name":       "NAME",
			"position":   "POSITION",
			"email":      "EMAIL",
			"profile":    "PROFILE",
			"phone":      "PHONE",
			"department": "DEPARTMENT",
			"status":     "STATUS",
			"created_at": "CREATED_AT",
		},
	},
	{Table: "lineup", cols: map[string]string{}},
}

// submissionSchema is the lineup submission table. Only one casing has
// ever been observed, so there is no fallback candidate.
var submissionSchema = tableSchema{Table: "lineupinfo", cols: map[string]string{}}

// announcementSchema likewise has a single canonical name.
var announcementSchema = tableSchema{Table: "announcements", cols: map[string]string{}}

// runWithFallback executes op against each schema candidate in order.
// A schema-mismatch error moves on to the next candidate; any other
// error, or a mismatch on the final candidate, is surfaced as-is.
func runWithFallback(schemas []tableSchema, op func(s tableSchema) error) error {
	var err error
	for i, s := range schemas {
		err = op(s)
		if err == nil {
			return nil
		}
		if i == len(schemas)-1 || !isSchemaMismatch(err) {
			return err
		}
	}
	return err
}
