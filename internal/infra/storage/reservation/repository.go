package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-HotelReservationService/internal/domain"
	"github.com/m04kA/SMC-HotelReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelReservationService/pkg/psqlbuilder"
)

// Коды ошибок PostgreSQL
const (
	pqUniqueViolation    = "23505"
	pqExclusionViolation = "23P01"
)

// Имя уникального индекса на код бронирования (см. migrations)
const codeUniqueConstraint = "reservations_code_key"

var columns = []string{
	"id",
	"code",
	"room_id",
	"user_id",
	"guest_name",
	"guest_email",
	"guest_phone",
	"document_type",
	"document_number",
	"check_in",
	"check_out",
	"guests",
	"total",
	"status",
	"created_at",
	"updated_at",
}

// nextCodeSequenceQuery атомарно выдаёт следующий номер за год.
// Строка счетчика создаётся при первом обращении и засевается количеством
// уже существующих бронирований этого года.
const nextCodeSequenceQuery = `
INSERT INTO reservation_code_counters (year, last_value)
VALUES ($1, (SELECT COUNT(*) FROM reservations WHERE created_at >= $2 AND created_at < $3) + 1)
ON CONFLICT (year) DO UPDATE SET last_value = reservation_code_counters.last_value + 1
RETURNING last_value`

// Repository репозиторий для работы с бронированиями номеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бронирование.
// Если в контексте передана транзакция, используется она.
//
// Пересечение с блокирующим бронированием того же номера отклоняется
// ограничением исключения в БД (ErrOverlap), повтор кода - ErrDuplicateCode.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if res.ID == "" {
		res.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"id",
			"code",
			"room_id",
			"user_id",
			"guest_name",
			"guest_email",
			"guest_phone",
			"document_type",
			"document_number",
			"check_in",
			"check_out",
			"guests",
			"total",
			"status",
		).
		Values(
			res.ID,
			res.Code,
			res.RoomID,
			res.UserID,
			res.GuestName,
			res.GuestEmail,
			res.GuestPhone,
			res.DocumentType,
			res.DocumentNumber,
			res.CheckIn,
			res.CheckOut,
			res.Guests,
			res.Total,
			res.Status,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		if mapped := mapConstraintError(err); mapped != nil {
			return nil, fmt.Errorf("%w: Create: %v", mapped, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return res, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate получает бронирование с блокировкой строки
func (r *Repository) GetByIDForUpdate(ctx context.Context, id string) (*domain.Reservation, error) {
	return r.getByID(ctx, id, true)
}

func (r *Repository) getByID(ctx context.Context, id string, forUpdate bool) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("reservations").
		Where(squirrel.Eq{"id": id})

	if forUpdate {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// List возвращает страницу бронирований по фильтру, новые первыми
func (r *Repository) List(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	filter.Normalize()

	selectBuilder := applyFilter(psqlbuilder.Select(columns...).From("reservations"), filter).
		OrderBy("created_at DESC").
		Limit(uint64(filter.PageSize)).
		Offset(uint64(filter.Offset()))

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations := make([]*domain.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

// Count возвращает общее количество бронирований по фильтру (без пагинации)
func (r *Repository) Count(ctx context.Context, filter domain.ReservationFilter) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := applyFilter(psqlbuilder.Select("COUNT(*)").From("reservations"), filter).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var total int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}

	return total, nil
}

// HasBlockingOverlap проверяет, есть ли у номера блокирующее бронирование,
// пересекающееся с [start, end)
func (r *Repository) HasBlockingOverlap(ctx context.Context, roomID string, start, end time.Time) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("reservations").
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.Eq{"status": domain.BlockingStatusStrings()}).
		Where(squirrel.Lt{"check_in": end}).
		Where(squirrel.Gt{"check_out": start}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: HasBlockingOverlap - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: HasBlockingOverlap - scan count: %v", ErrScanRow, err)
	}

	return count > 0, nil
}

// CountActiveFuture считает блокирующие бронирования номера с выездом после now
func (r *Repository) CountActiveFuture(ctx context.Context, roomID string, now time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("reservations").
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.Eq{"status": domain.BlockingStatusStrings()}).
		Where(squirrel.Gt{"check_out": now}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountActiveFuture - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountActiveFuture - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// UpdateStatus обновляет статус бронирования.
// Допустимость перехода проверяется вызывающей стороной.
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) (time.Time, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt time.Time
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, ErrReservationNotFound
	}
	if err != nil {
		if mapped := mapConstraintError(err); mapped != nil {
			return time.Time{}, fmt.Errorf("%w: UpdateStatus: %v", mapped, err)
		}
		return time.Time{}, fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	return updatedAt, nil
}

// NextCodeSequence возвращает следующий порядковый номер кода за год.
// Должен вызываться в той же транзакции, что и вставка бронирования:
// откат транзакции откатывает и счетчик.
func (r *Repository) NextCodeSequence(ctx context.Context, year int) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	from, to := domain.CodeYearBounds(year)

	var seq int64
	if err := executor.QueryRowContext(ctx, nextCodeSequenceQuery, year, from, to).Scan(&seq); err != nil {
		return 0, fmt.Errorf("%w: NextCodeSequence - upsert counter: %v", ErrExecQuery, err)
	}

	return seq, nil
}

func applyFilter(b squirrel.SelectBuilder, filter domain.ReservationFilter) squirrel.SelectBuilder {
	if filter.Status != nil {
		b = b.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.RoomID != nil {
		b = b.Where(squirrel.Eq{"room_id": *filter.RoomID})
	}
	if filter.UserID != nil {
		b = b.Where(squirrel.Eq{"user_id": *filter.UserID})
	}
	return b
}

// mapConstraintError переводит нарушения ограничений PostgreSQL в ошибки репозитория
func mapConstraintError(err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return nil
	}

	switch pqErr.Code {
	case pqExclusionViolation:
		return ErrOverlap
	case pqUniqueViolation:
		if pqErr.Constraint == codeUniqueConstraint {
			return ErrDuplicateCode
		}
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanReservation(row scanner) (*domain.Reservation, error) {
	var res domain.Reservation
	err := row.Scan(
		&res.ID,
		&res.Code,
		&res.RoomID,
		&res.UserID,
		&res.GuestName,
		&res.GuestEmail,
		&res.GuestPhone,
		&res.DocumentType,
		&res.DocumentNumber,
		&res.CheckIn,
		&res.CheckOut,
		&res.Guests,
		&res.Total,
		&res.Status,
		&res.CreatedAt,
		&res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &res, nil
}
