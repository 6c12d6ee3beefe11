// Package postgres implements the repository interfaces as named SQL read
// models. Each list query is the relational restatement of one read model:
// relationship joins become EXISTS/NOT EXISTS predicates and related-row
// counts become correlated subqueries, so the "what" of each read model lives
// in one place per method.
package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// likePattern converts free-text search input into a safe ILIKE pattern:
// substring match, case-insensitive, with the pattern metacharacters
// (backslash, percent, underscore) escaped so user input can never widen or
// break the match.
func likePattern(search string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(search) + "%"
}

// isUniqueViolation reports whether err is a Postgres unique violation on the
// named constraint or index.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "23505" && pgErr.ConstraintName == constraint
}
