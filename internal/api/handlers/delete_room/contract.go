package delete_room

import (
	"context"

	deleteRoom "github.com/m04kA/SMC-HotelReservationService/internal/usecase/delete_room"
)

type DeleteRoomUseCase interface {
	Execute(ctx context.Context, req *deleteRoom.Request) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
