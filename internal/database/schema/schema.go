package schema

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// CatalogTables are the tables the query endpoints read from. The service
// never creates them; they are owned by whoever provisions the database.
var CatalogTables = []string{"restaurants", "dishes"}

// TableStatus is the outcome of probing one table.
type TableStatus struct {
	Name   string
	Ready  bool
	Rows   int64
	Reason string
}

// Report lists the status of every probed table.
type Report struct {
	Tables []TableStatus
}

// Missing returns the names of the tables that could not be read.
func (r Report) Missing() []string {
	var out []string
	for _, t := range r.Tables {
		if !t.Ready {
			out = append(out, t.Name)
		}
	}
	return out
}

// Ready reports whether every probed table could be read.
func (r Report) Ready() bool {
	return len(r.Missing()) == 0
}

// Inspect counts the rows of each table. A table that cannot be counted is
// reported with the driver error as reason; Inspect itself never fails so
// that callers decide whether a missing table is fatal.
func Inspect(ctx context.Context, db *sql.DB, log *zap.Logger, tables ...string) Report {
	start := time.Now()
	log = log.With(zap.String("component", "database"))
	log.Info("schema_check", zap.String("status", "starting"), zap.Strings("tables", tables))

	report := Report{Tables: make([]TableStatus, 0, len(tables))}
	for _, name := range tables {
		stepStart := time.Now()
		status := TableStatus{Name: name}

		q := fmt.Sprintf(`SELECT COUNT(*) FROM "%s"`, name)
		if err := db.QueryRowContext(ctx, q).Scan(&status.Rows); err != nil {
			status.Reason = err.Error()
			log.Warn("schema_table_unavailable",
				zap.String("table", name),
				zap.String("error_message", status.Reason),
				zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
			)
		} else {
			status.Ready = true
			log.Info("schema_table_ready",
				zap.String("table", name),
				zap.Int64("rows", status.Rows),
				zap.Int64("step_duration_ms", time.Since(stepStart).Milliseconds()),
			)
		}
		report.Tables = append(report.Tables, status)
	}

	log.Info("schema_check",
		zap.String("status", "done"),
		zap.Bool("ready", report.Ready()),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
	)
	return report
}
