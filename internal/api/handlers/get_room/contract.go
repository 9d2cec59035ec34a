package get_room

import (
	"context"

	"github.com/m04kA/SMC-HotelReservationService/internal/service/rooms/models"
)

type RoomService interface {
	GetByID(ctx context.Context, id string) (*models.RoomResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
