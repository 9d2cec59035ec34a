package reservation

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-HotelReservationService/internal/domain"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(db), mock
}

var (
	checkIn  = time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	checkOut = time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC)
)

func reservationRow(status string) *sqlmock.Rows {
	now := time.Now().UTC()
	return sqlmock.NewRows(columns).AddRow(
		"res-1", "H2025-0001", "room-1", "user-1",
		"John Doe", "john@example.com", "+100000", nil, nil,
		checkIn, checkOut, 2, 200.0, status, now, now,
	)
}

func newReservation() *domain.Reservation {
	return &domain.Reservation{
		Code:       "H2025-0001",
		RoomID:     "room-1",
		GuestName:  "John Doe",
		GuestEmail: "john@example.com",
		GuestPhone: "+100000",
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     2,
		Total:      200,
		Status:     domain.StatusPending,
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reservations")).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	res, err := repo.Create(context.Background(), newReservation())
	require.NoError(t, err)
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, now, res.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_ConstraintErrors(t *testing.T) {
	tests := []struct {
		name    string
		pqErr   *pq.Error
		wantErr error
	}{
		{
			name:    "exclusion violation",
			pqErr:   &pq.Error{Code: pqExclusionViolation, Constraint: "reservations_no_overlap"},
			wantErr: ErrOverlap,
		},
		{
			name:    "duplicate code",
			pqErr:   &pq.Error{Code: pqUniqueViolation, Constraint: codeUniqueConstraint},
			wantErr: ErrDuplicateCode,
		},
		{
			name:    "other unique violation",
			pqErr:   &pq.Error{Code: pqUniqueViolation, Constraint: "reservations_pkey"},
			wantErr: ErrExecQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newMock(t)
			mock.ExpectQuery("INSERT INTO reservations").WillReturnError(tt.pqErr)

			_, err := repo.Create(context.Background(), newReservation())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM reservations WHERE id = $1")).
		WithArgs("res-1").
		WillReturnRows(reservationRow("CONFIRMED"))

	res, err := repo.GetByID(context.Background(), "res-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, res.Status)
	require.NotNil(t, res.UserID)
	assert.Equal(t, "user-1", *res.UserID)
	assert.Nil(t, res.DocumentType)
	assert.Equal(t, 2, res.Nights())

	mock.ExpectQuery("FROM reservations").WillReturnError(sql.ErrNoRows)
	_, err = repo.GetByIDForUpdate(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestRepository_List(t *testing.T) {
	repo, mock := newMock(t)
	status := domain.StatusPending
	roomID := "room-1"

	mock.ExpectQuery(regexp.QuoteMeta("FROM reservations WHERE status = $1 AND room_id = $2 ORDER BY created_at DESC LIMIT 10 OFFSET 10")).
		WithArgs("PENDING", roomID).
		WillReturnRows(reservationRow("PENDING"))

	list, err := repo.List(context.Background(), domain.ReservationFilter{Status: &status, RoomID: &roomID, Page: 2, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM reservations WHERE status = $1 AND room_id = $2")).
		WithArgs("PENDING", roomID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(11))

	total, err := repo.Count(context.Background(), domain.ReservationFilter{Status: &status, RoomID: &roomID})
	require.NoError(t, err)
	assert.Equal(t, 11, total)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_HasBlockingOverlap(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		"SELECT COUNT(*) FROM reservations WHERE room_id = $1 AND status IN ($2,$3,$4,$5) AND check_in < $6 AND check_out > $7",
	)).
		WithArgs("room-1", "PENDING", "PAID", "CONFIRMED", "CHECKED_IN", checkOut, checkIn).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	busy, err := repo.HasBlockingOverlap(context.Background(), "room-1", checkIn, checkOut)
	require.NoError(t, err)
	assert.True(t, busy)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CountActiveFuture(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE room_id = $1 AND status IN ($2,$3,$4,$5) AND check_out > $6")).
		WithArgs("room-1", "PENDING", "PAID", "CONFIRMED", "CHECKED_IN", now).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	count, err := repo.CountActiveFuture(context.Background(), "room-1", now)
	require.NoError(t, err)
	assert.Zero(t, count)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := newMock(t)
	now := time.Now().UTC()

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE reservations SET status = $1, updated_at = NOW() WHERE id = $2 RETURNING updated_at")).
		WithArgs("CANCELED", "res-1").
		WillReturnRows(sqlmock.NewRows([]string{"updated_at"}).AddRow(now))

	updatedAt, err := repo.UpdateStatus(context.Background(), "res-1", domain.StatusCanceled)
	require.NoError(t, err)
	assert.Equal(t, now, updatedAt)

	mock.ExpectQuery("UPDATE reservations").WillReturnError(sql.ErrNoRows)
	_, err = repo.UpdateStatus(context.Background(), "missing", domain.StatusCanceled)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestRepository_NextCodeSequence(t *testing.T) {
	repo, mock := newMock(t)
	from, to := domain.CodeYearBounds(2025)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reservation_code_counters")).
		WithArgs(2025, from, to).
		WillReturnRows(sqlmock.NewRows([]string{"last_value"}).AddRow(int64(7)))

	seq, err := repo.NextCodeSequence(context.Background(), 2025)
	require.NoError(t, err)
	assert.Equal(t, int64(7), seq)
	require.NoError(t, mock.ExpectationsWereMet())
}
