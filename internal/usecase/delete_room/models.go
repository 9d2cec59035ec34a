package delete_room

import "github.com/m04kA/SMC-HotelReservationService/internal/domain"

// Request запрос на удаление номера
type Request struct {
	Principal domain.Principal
	RoomID    string
}
