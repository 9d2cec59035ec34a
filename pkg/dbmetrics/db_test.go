package dbmetrics

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelReservationService/pkg/metrics"
)

func TestOperation(t *testing.T) {
	assert.Equal(t, "select", operation("  SELECT id FROM rooms"))
	assert.Equal(t, "insert", operation("INSERT INTO reservations"))
	assert.Equal(t, "unknown", operation("   "))
}

func TestGetExecutor(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	assert.False(t, IsInTransaction(ctx))
	assert.Equal(t, DBExecutor(db), GetExecutor(ctx, db))

	mock.ExpectBegin()
	wrapped := Wrap(db, nil)
	tx, err := wrapped.BeginTx(ctx, nil)
	require.NoError(t, err)

	txCtx := WithTx(ctx, tx)
	assert.True(t, IsInTransaction(txCtx))
	assert.Equal(t, DBExecutor(tx), GetExecutor(txCtx, db))

	mock.ExpectRollback()
	require.NoError(t, tx.Rollback())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDB_ObservesQueries(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	collector := metrics.NewWithRegisterer("test", prometheus.NewRegistry())
	wrapped := Wrap(db, collector)

	mock.ExpectExec("UPDATE rooms").WillReturnResult(sqlmock.NewResult(0, 1))
	_, err = wrapped.ExecContext(context.Background(), "UPDATE rooms SET is_active = false")
	require.NoError(t, err)

	mock.ExpectExec("DELETE FROM rooms").WillReturnError(assert.AnError)
	_, err = wrapped.ExecContext(context.Background(), "DELETE FROM rooms")
	require.Error(t, err)

	assert.Equal(t, 1, testutil.CollectAndCount(collector.DBQueryErrors))
	assert.Equal(t, float64(1), testutil.ToFloat64(collector.DBQueryErrors.WithLabelValues("delete")))
	require.NoError(t, mock.ExpectationsWereMet())
}
