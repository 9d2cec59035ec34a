package create_room

import (
	"context"

	"github.com/m04kA/SMC-HotelReservationService/internal/domain"
	"github.com/m04kA/SMC-HotelReservationService/internal/service/rooms/models"
)

type RoomService interface {
	Create(ctx context.Context, principal domain.Principal, req *models.CreateRoomRequest) (*models.RoomResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
