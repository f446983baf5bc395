package sqldb

import (
	"context"
	"database/sql"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"foodiefinds/internal/database"
	"foodiefinds/internal/model"
)

var (
	queryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "catalog_query_duration_seconds",
			Help:    "Duration of catalog SELECT statements in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"query"},
	)

	queryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_query_errors_total",
			Help: "Total number of catalog SELECT statements that failed.",
		},
		[]string{"query"},
	)
)

// selectRows runs one statement and maps every row, whatever its columns,
// into a model.Row.
func selectRows(ctx context.Context, db *sql.DB, d database.Dialect, name, q string, args ...any) ([]model.Row, error) {
	start := time.Now()
	rows, err := scanAll(ctx, db, d.Rebind(q), args...)
	queryDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	if err != nil {
		queryErrors.WithLabelValues(name).Inc()
		return nil, err
	}
	return rows, nil
}

func scanAll(ctx context.Context, db *sql.DB, q string, args ...any) ([]model.Row, error) {
	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	items := make([]model.Row, 0)
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		items = append(items, model.NewRow(cols, values))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
