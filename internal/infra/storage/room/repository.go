package room

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-HotelReservationService/internal/domain"
	"github.com/m04kA/SMC-HotelReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-HotelReservationService/pkg/psqlbuilder"
)

var columns = []string{
	"id",
	"name",
	"capacity",
	"price_per_night",
	"is_active",
	"description",
	"image_url",
	"created_at",
	"updated_at",
}

// Repository репозиторий каталога номеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория номеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает номер. ID генерируется, если не задан.
func (r *Repository) Create(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if room.ID == "" {
		room.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("rooms").
		Columns(
			"id",
			"name",
			"capacity",
			"price_per_night",
			"is_active",
			"description",
			"image_url",
		).
		Values(
			room.ID,
			room.Name,
			room.Capacity,
			room.PricePerNight,
			room.IsActive,
			room.Description,
			room.ImageURL,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&room.CreatedAt, &room.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return room, nil
}

// GetByID получает номер по ID (удалённые номера не возвращаются)
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Room, error) {
	return r.getByID(ctx, id, false)
}

// GetByIDForUpdate получает номер с блокировкой строки (SELECT ... FOR UPDATE).
// Вызывать только внутри транзакции: блокировка сериализует бронирования одного номера.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id string) (*domain.Room, error) {
	return r.getByID(ctx, id, true)
}

func (r *Repository) getByID(ctx context.Context, id string, forUpdate bool) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("rooms").
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"deleted_at": nil})

	if forUpdate {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	room, err := scanRoom(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan room: %v", ErrScanRow, err)
	}

	return room, nil
}

// List возвращает номера каталога
// Фильтрует по подстроке названия (ILIKE) и признаку активности
func (r *Repository) List(ctx context.Context, filter domain.RoomFilter) ([]*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From("rooms").
		Where(squirrel.Eq{"deleted_at": nil})

	if filter.OnlyActive {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_active": true})
	}
	if q := strings.TrimSpace(filter.Query); q != "" {
		selectBuilder = selectBuilder.Where(squirrel.ILike{"name": "%" + escapeLike(q) + "%"})
	}

	query, args, err := selectBuilder.OrderBy("name ASC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanRooms(rows)
}

// ListAvailable возвращает активные номера без блокирующих бронирований,
// пересекающихся с полуоткрытым интервалом [start, end)
func (r *Repository) ListAvailable(ctx context.Context, start, end time.Time) ([]*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// Подзапрос строится с '?' и подставляется во внешний запрос,
	// внешний builder перенумерует все плейсхолдеры в $N
	busyQuery, busyArgs, err := squirrel.Select("room_id").
		From("reservations").
		Where(squirrel.Eq{"status": domain.BlockingStatusStrings()}).
		Where(squirrel.Lt{"check_in": end}).
		Where(squirrel.Gt{"check_out": start}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAvailable - build subquery: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Select(columns...).
		From("rooms").
		Where(squirrel.Eq{"deleted_at": nil}).
		Where(squirrel.Eq{"is_active": true}).
		Where("id NOT IN ("+busyQuery+")", busyArgs...).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAvailable - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAvailable - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanRooms(rows)
}

// Update сохраняет все изменяемые поля номера
func (r *Repository) Update(ctx context.Context, room *domain.Room) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("rooms").
		Set("name", room.Name).
		Set("capacity", room.Capacity).
		Set("price_per_night", room.PricePerNight).
		Set("is_active", room.IsActive).
		Set("description", room.Description).
		Set("image_url", room.ImageURL).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": room.ID}).
		Where(squirrel.Eq{"deleted_at": nil}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&room.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return room, nil
}

// SoftDelete помечает номер удалённым и деактивирует его.
// История бронирований номера сохраняется.
func (r *Repository) SoftDelete(ctx context.Context, id string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("rooms").
		Set("is_active", false).
		Set("deleted_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"deleted_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SoftDelete - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SoftDelete - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SoftDelete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRoomNotFound
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRoom(row scanner) (*domain.Room, error) {
	var room domain.Room
	err := row.Scan(
		&room.ID,
		&room.Name,
		&room.Capacity,
		&room.PricePerNight,
		&room.IsActive,
		&room.Description,
		&room.ImageURL,
		&room.CreatedAt,
		&room.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &room, nil
}

// scanRooms сканирует результаты запроса в слайс номеров
func scanRooms(rows *sql.Rows) ([]*domain.Room, error) {
	rooms := make([]*domain.Room, 0)

	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRooms - scan row: %v", ErrScanRow, err)
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRooms - rows error: %v", ErrScanRow, err)
	}

	return rooms, nil
}

// likeEscaper экранирует спецсимволы LIKE обратной косой чертой (ESCAPE по умолчанию в postgres)
var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// escapeLike превращает строку поиска в литерал для шаблона ILIKE
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
