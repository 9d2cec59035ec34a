package domain

import (
	"errors"
	"math"
	"time"
)

// ErrInvalidPage is returned for a page below 1 or a negative page size
var ErrInvalidPage = errors.New("invalid pagination parameters")

// Reservation represents a room reservation.
// Guest fields are a snapshot owned by the reservation: a logged-in user
// may book on behalf of another person.
type Reservation struct {
	ID     string
	Code   string
	RoomID string
	UserID *string // nil when created without an authenticated user

	GuestName      string
	GuestEmail     string
	GuestPhone     string
	DocumentType   *string
	DocumentNumber *string

	CheckIn  time.Time
	CheckOut time.Time
	Guests   int
	Total    float64
	Status   ReservationStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// GuestInfo guest contact data supplied with a booking request
type GuestInfo struct {
	Name           string
	Email          string
	Phone          string
	DocumentType   *string
	DocumentNumber *string
}

// IsBlocking returns true if the reservation holds the room
func (r *Reservation) IsBlocking() bool {
	return r.Status.IsBlocking()
}

// IsOwnedBy returns true if the reservation was created by the given user
func (r *Reservation) IsOwnedBy(userID string) bool {
	return r.UserID != nil && *r.UserID == userID
}

// Nights returns the number of nights covered by the reservation
func (r *Reservation) Nights() int {
	return Nights(r.CheckIn, r.CheckOut)
}

// ReservationFilter фильтр списка бронирований для персонала
type ReservationFilter struct {
	Status   *ReservationStatus
	RoomID   *string
	UserID   *string
	Page     int // начиная с 1
	PageSize int
}

// Offset смещение для постраничной выборки
func (f *ReservationFilter) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.PageSize
}

// Validate отклоняет страницу меньше 1 и отрицательный размер страницы
func (f *ReservationFilter) Validate() error {
	if f.Page < 1 || f.PageSize < 0 {
		return ErrInvalidPage
	}
	return nil
}

// Normalize подставляет размер страницы по умолчанию и ограничивает максимум
func (f *ReservationFilter) Normalize() {
	if f.PageSize < 1 {
		f.PageSize = DefaultPageSize
	}
	if f.PageSize > MaxPageSize {
		f.PageSize = MaxPageSize
	}
}

// ValidRange returns true if start is strictly before end
func ValidRange(start, end time.Time) bool {
	return !start.IsZero() && !end.IsZero() && start.Before(end)
}

// Overlaps reports whether the half-open ranges [aStart, aEnd) and
// [bStart, bEnd) intersect. Touching boundaries do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// Nights returns ceil((end - start) / 24h)
func Nights(start, end time.Time) int {
	if !end.After(start) {
		return 0
	}
	return int(math.Ceil(end.Sub(start).Hours() / 24))
}

// ReservationTotal returns nights * pricePerNight rounded to cents
func ReservationTotal(pricePerNight float64, nights int) float64 {
	return math.Round(pricePerNight*float64(nights)*100) / 100
}
