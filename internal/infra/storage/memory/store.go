package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-HotelReservationService/internal/domain"
	"github.com/m04kA/SMC-HotelReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-HotelReservationService/internal/infra/storage/room"
)

type txKey struct{}

// Store хранилище в памяти для локального запуска и тестов.
// Транзакции выполняются строго по очереди и откатываются при ошибке.
// Ошибки совпадают с ошибками postgres-репозиториев.
type Store struct {
	txMu sync.Mutex
	mu   sync.RWMutex

	rooms        map[string]*roomRecord
	reservations map[string]*domain.Reservation
	counters     map[int]int64

	now func() time.Time
}

type roomRecord struct {
	room    domain.Room
	deleted bool
}

// NewStore создает пустое хранилище
func NewStore() *Store {
	return &Store{
		rooms:        make(map[string]*roomRecord),
		reservations: make(map[string]*domain.Reservation),
		counters:     make(map[int]int64),
		now:          time.Now,
	}
}

// WithClock подменяет источник времени для created_at/updated_at
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

// Rooms репозиторий номеров
func (s *Store) Rooms() *RoomRepository {
	return &RoomRepository{s: s}
}

// Reservations репозиторий бронирований
func (s *Store) Reservations() *ReservationRepository {
	return &ReservationRepository{s: s}
}

// Do выполняет fn в транзакции
func (s *Store) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	snapshot := s.snapshot()
	if err := fn(context.WithValue(ctx, txKey{}, struct{}{})); err != nil {
		s.restore(snapshot)
		return err
	}
	return nil
}

// DoReadOnly выполняет fn без блокировки писателей
func (s *Store) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// autocommit запись вне транзакции ждет окончания текущей транзакции,
// иначе её откат затер бы эту запись снимком
func (s *Store) autocommit(ctx context.Context) func() {
	if ctx.Value(txKey{}) != nil {
		return func() {}
	}
	s.txMu.Lock()
	return s.txMu.Unlock
}

type state struct {
	rooms        map[string]*roomRecord
	reservations map[string]*domain.Reservation
	counters     map[int]int64
}

func (s *Store) snapshot() state {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := state{
		rooms:        make(map[string]*roomRecord, len(s.rooms)),
		reservations: make(map[string]*domain.Reservation, len(s.reservations)),
		counters:     make(map[int]int64, len(s.counters)),
	}
	for k, v := range s.rooms {
		cp := *v
		st.rooms[k] = &cp
	}
	for k, v := range s.reservations {
		cp := *v
		st.reservations[k] = &cp
	}
	for k, v := range s.counters {
		st.counters[k] = v
	}
	return st
}

func (s *Store) restore(st state) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rooms = st.rooms
	s.reservations = st.reservations
	s.counters = st.counters
}

// RoomRepository номера в памяти
type RoomRepository struct {
	s *Store
}

func (r *RoomRepository) Create(ctx context.Context, rm *domain.Room) (*domain.Room, error) {
	defer r.s.autocommit(ctx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if rm.ID == "" {
		rm.ID = uuid.NewString()
	}
	now := r.s.now().UTC()
	rm.CreatedAt, rm.UpdatedAt = now, now
	r.s.rooms[rm.ID] = &roomRecord{room: *rm}

	return rm, nil
}

func (r *RoomRepository) GetByID(_ context.Context, id string) (*domain.Room, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rec, ok := r.s.rooms[id]
	if !ok || rec.deleted {
		return nil, room.ErrRoomNotFound
	}
	cp := rec.room
	return &cp, nil
}

// GetByIDForUpdate блокировка строки не нужна: транзакции уже сериализованы
func (r *RoomRepository) GetByIDForUpdate(ctx context.Context, id string) (*domain.Room, error) {
	return r.GetByID(ctx, id)
}

func (r *RoomRepository) List(_ context.Context, filter domain.RoomFilter) ([]*domain.Room, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	q := strings.ToLower(strings.TrimSpace(filter.Query))
	out := make([]*domain.Room, 0)
	for _, rec := range r.s.rooms {
		if rec.deleted || (filter.OnlyActive && !rec.room.IsActive) {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(rec.room.Name), q) {
			continue
		}
		cp := rec.room
		out = append(out, &cp)
	}
	sortRooms(out)
	return out, nil
}

func (r *RoomRepository) ListAvailable(_ context.Context, start, end time.Time) ([]*domain.Room, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*domain.Room, 0)
	for id, rec := range r.s.rooms {
		if rec.deleted || !rec.room.IsActive || r.s.hasOverlapLocked(id, start, end, "") {
			continue
		}
		cp := rec.room
		out = append(out, &cp)
	}
	sortRooms(out)
	return out, nil
}

func (r *RoomRepository) Update(ctx context.Context, rm *domain.Room) (*domain.Room, error) {
	defer r.s.autocommit(ctx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.rooms[rm.ID]
	if !ok || rec.deleted {
		return nil, room.ErrRoomNotFound
	}
	rm.CreatedAt = rec.room.CreatedAt
	rm.UpdatedAt = r.s.now().UTC()
	rec.room = *rm
	return rm, nil
}

func (r *RoomRepository) SoftDelete(ctx context.Context, id string) error {
	defer r.s.autocommit(ctx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rec, ok := r.s.rooms[id]
	if !ok || rec.deleted {
		return room.ErrRoomNotFound
	}
	rec.deleted = true
	rec.room.IsActive = false
	rec.room.UpdatedAt = r.s.now().UTC()
	return nil
}

// ReservationRepository бронирования в памяти
type ReservationRepository struct {
	s *Store
}

// Create повторяет ограничения БД: уникальный код и отсутствие пересечений
func (r *ReservationRepository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	defer r.s.autocommit(ctx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if res.ID == "" {
		res.ID = uuid.NewString()
	}
	for _, existing := range r.s.reservations {
		if existing.Code == res.Code {
			return nil, reservation.ErrDuplicateCode
		}
	}
	if res.Status.IsBlocking() && r.s.hasOverlapLocked(res.RoomID, res.CheckIn, res.CheckOut, "") {
		return nil, reservation.ErrOverlap
	}

	now := r.s.now().UTC()
	res.CreatedAt, res.UpdatedAt = now, now
	cp := *res
	r.s.reservations[res.ID] = &cp

	return res, nil
}

func (r *ReservationRepository) GetByID(_ context.Context, id string) (*domain.Reservation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	res, ok := r.s.reservations[id]
	if !ok {
		return nil, reservation.ErrReservationNotFound
	}
	cp := *res
	return &cp, nil
}

func (r *ReservationRepository) GetByIDForUpdate(ctx context.Context, id string) (*domain.Reservation, error) {
	return r.GetByID(ctx, id)
}

func (r *ReservationRepository) List(_ context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	filter.Normalize()
	all := r.filtered(filter)

	from := filter.Offset()
	if from > len(all) {
		from = len(all)
	}
	to := from + filter.PageSize
	if to > len(all) {
		to = len(all)
	}
	return all[from:to], nil
}

func (r *ReservationRepository) Count(_ context.Context, filter domain.ReservationFilter) (int, error) {
	return len(r.filtered(filter)), nil
}

func (r *ReservationRepository) HasBlockingOverlap(_ context.Context, roomID string, start, end time.Time) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.hasOverlapLocked(roomID, start, end, ""), nil
}

func (r *ReservationRepository) CountActiveFuture(_ context.Context, roomID string, now time.Time) (int, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	count := 0
	for _, res := range r.s.reservations {
		if res.RoomID == roomID && res.IsBlocking() && res.CheckOut.After(now) {
			count++
		}
	}
	return count, nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) (time.Time, error) {
	defer r.s.autocommit(ctx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	res, ok := r.s.reservations[id]
	if !ok {
		return time.Time{}, reservation.ErrReservationNotFound
	}
	if status.IsBlocking() && !res.IsBlocking() && r.s.hasOverlapLocked(res.RoomID, res.CheckIn, res.CheckOut, res.ID) {
		return time.Time{}, reservation.ErrOverlap
	}
	res.Status = status
	res.UpdatedAt = r.s.now().UTC()
	return res.UpdatedAt, nil
}

func (r *ReservationRepository) NextCodeSequence(ctx context.Context, year int) (int64, error) {
	defer r.s.autocommit(ctx)()
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.counters[year]; !ok {
		from, to := domain.CodeYearBounds(year)
		var existing int64
		for _, res := range r.s.reservations {
			if !res.CreatedAt.Before(from) && res.CreatedAt.Before(to) {
				existing++
			}
		}
		r.s.counters[year] = existing
	}
	r.s.counters[year]++
	return r.s.counters[year], nil
}

func (r *ReservationRepository) filtered(filter domain.ReservationFilter) []*domain.Reservation {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]*domain.Reservation, 0)
	for _, res := range r.s.reservations {
		if filter.Status != nil && res.Status != *filter.Status {
			continue
		}
		if filter.RoomID != nil && res.RoomID != *filter.RoomID {
			continue
		}
		if filter.UserID != nil && !res.IsOwnedBy(*filter.UserID) {
			continue
		}
		cp := *res
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].Code > out[j].Code
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (s *Store) hasOverlapLocked(roomID string, start, end time.Time, exceptID string) bool {
	for _, res := range s.reservations {
		if res.ID == exceptID || res.RoomID != roomID || !res.IsBlocking() {
			continue
		}
		if domain.Overlaps(res.CheckIn, res.CheckOut, start, end) {
			return true
		}
	}
	return false
}

func sortRooms(rooms []*domain.Room) {
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].Name < rooms[j].Name })
}
