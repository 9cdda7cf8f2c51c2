package sql

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/ddlgen/dialect"
)

func TestStatsDriver(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	var slow []string
	drv := NewStatsDriver(OpenDB(dialect.SQLite, db),
		WithSlowThreshold(0),
		WithSlowHook(func(_ context.Context, query string, _ []any, _ time.Duration) {
			slow = append(slow, query)
		}),
	)
	assert.Equal(t, time.Duration(0), drv.SlowThreshold())

	mock.ExpectExec("create table a").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("create table b").WillReturnError(errors.New("exists"))
	mock.ExpectQuery("SELECT").WillReturnRows(sqlmock.NewRows([]string{"n"}).AddRow(1))

	ctx := context.Background()
	require.NoError(t, drv.Exec(ctx, "create table a (id integer);", []any{}, nil))
	require.Error(t, drv.Exec(ctx, "create table b (id integer);", []any{}, nil))
	rows := &Rows{}
	require.NoError(t, drv.Query(ctx, "SELECT 1", []any{}, rows))
	require.NoError(t, rows.Close())
	require.NoError(t, mock.ExpectationsWereMet())

	s := drv.ExecStats().Stats()
	assert.Equal(t, int64(2), s.TotalExecs)
	assert.Equal(t, int64(1), s.TotalQueries)
	assert.Equal(t, int64(1), s.Errors)
	assert.Equal(t, int64(3), s.SlowStatements)
	assert.Len(t, slow, 3)
	assert.Contains(t, s.String(), "execs=2")

	drv.ExecStats().Reset()
	assert.Equal(t, StatsSnapshot{}, drv.ExecStats().Stats())
	assert.Equal(t, time.Duration(0), StatsSnapshot{}.AvgDuration())
}

func TestStatsDriver_Tx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	drv := NewStatsDriver(OpenDB(dialect.SQLServer, db))
	drv.SetSlowThreshold(time.Hour)
	assert.Equal(t, time.Hour, drv.SlowThreshold())

	mock.ExpectBegin()
	mock.ExpectExec("drop table t").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	tx, err := drv.Tx(context.Background())
	require.NoError(t, err)
	require.NoError(t, tx.Exec(context.Background(), "drop table t", []any{}, nil))
	require.NoError(t, tx.Commit())
	require.NoError(t, mock.ExpectationsWereMet())

	s := drv.ExecStats().Stats()
	assert.Equal(t, int64(1), s.TotalExecs)
	assert.Equal(t, int64(0), s.SlowStatements)
}

func TestDebugDriver(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	drv := NewDebugDriver(OpenDB(dialect.SQLite, db), logger)

	mock.ExpectBegin()
	mock.ExpectExec("create table t").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	tx, err := drv.Tx(context.Background())
	require.NoError(t, err)
	require.NoError(t, tx.Exec(context.Background(), "create table t (id integer);", []any{}, nil))
	require.NoError(t, tx.Rollback())
	require.NoError(t, mock.ExpectationsWereMet())

	out := buf.String()
	assert.Contains(t, out, "begin transaction")
	assert.Contains(t, out, `query="create table t (id integer);"`)
	assert.Contains(t, out, "rollback transaction")
}

func TestWithSlowLog(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	drv := NewStatsDriver(OpenDB(dialect.SQLite, db), WithSlowThreshold(0), WithSlowLog(logger))

	mock.ExpectExec("drop table t").WillReturnResult(sqlmock.NewResult(0, 0))
	require.NoError(t, drv.Exec(context.Background(), "drop table t", []any{}, nil))
	assert.Contains(t, buf.String(), "slow statement detected")
}
