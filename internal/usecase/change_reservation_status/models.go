package change_reservation_status

import (
	"time"

	"github.com/m04kA/SMC-HotelReservationService/internal/domain"
)

// Request запрос на смену статуса персоналом
type Request struct {
	Principal     domain.Principal
	ReservationID string
	Status        string // Целевой статус, например "CONFIRMED"
}

// Response результат смены статуса
type Response struct {
	ID             string
	Code           string
	RoomID         string
	PreviousStatus string
	Status         string
	UpdatedAt      time.Time
}
