package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-HotelReservationService/internal/domain"
)

// Request модель запроса на бронирование номера
type Request struct {
	Principal *domain.Principal // nil - бронирование без авторизованного пользователя
	RoomID    string
	CheckIn   time.Time
	CheckOut  time.Time
	Guest     domain.GuestInfo
	Guests    int // Количество гостей
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID       string
	Code     string // H<год>-<номер>
	RoomID   string
	RoomName string
	UserID   *string

	GuestName      string
	GuestEmail     string
	GuestPhone     string
	DocumentType   *string
	DocumentNumber *string

	CheckIn  time.Time
	CheckOut time.Time
	Nights   int
	Guests   int
	Total    float64
	Status   string

	CreatedAt time.Time
	UpdatedAt time.Time
}
