package database

import (
	"strconv"
	"strings"

	"foodiefinds/internal/config"
)

// Dialect describes the bind-parameter style of a backend.
type Dialect int

const (
	// Question binds with "?" (SQLite).
	Question Dialect = iota
	// Dollar binds with "$1", "$2", ... (PostgreSQL).
	Dollar
)

// DialectFor returns the dialect matching a configured driver.
func DialectFor(driver string) Dialect {
	if driver == config.DriverPostgres {
		return Dollar
	}
	return Question
}

// Rebind rewrites "?" placeholders for the dialect. Statements must not
// contain literal question marks.
func (d Dialect) Rebind(query string) string {
	if d != Dollar || !strings.Contains(query, "?") {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r != '?' {
			b.WriteRune(r)
			continue
		}
		n++
		b.WriteByte('$')
		b.WriteString(strconv.Itoa(n))
	}
	return b.String()
}
