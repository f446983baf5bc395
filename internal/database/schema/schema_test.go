package schema

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInspect(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	core, logs := observer.New(zapcore.InfoLevel)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM "restaurants"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM "dishes"`).
		WillReturnError(errors.New("no such table: dishes"))

	report := Inspect(context.Background(), db, zap.New(core), CatalogTables...)

	require.Len(t, report.Tables, 2)
	assert.True(t, report.Tables[0].Ready)
	assert.Equal(t, int64(12), report.Tables[0].Rows)
	assert.False(t, report.Tables[1].Ready)
	assert.Equal(t, "no such table: dishes", report.Tables[1].Reason)
	assert.Equal(t, []string{"dishes"}, report.Missing())
	assert.False(t, report.Ready())

	assert.Equal(t, 1, logs.FilterMessage("schema_table_unavailable").Len())
	assert.Equal(t, 1, logs.FilterMessage("schema_table_ready").Len())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReport_Ready(t *testing.T) {
	r := Report{Tables: []TableStatus{{Name: "restaurants", Ready: true}, {Name: "dishes", Ready: true}}}
	assert.True(t, r.Ready())
	assert.Empty(t, r.Missing())
}
