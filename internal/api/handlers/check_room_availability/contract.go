package check_room_availability

import (
	"context"

	searchAvailability "github.com/m04kA/SMC-HotelReservationService/internal/usecase/search_availability"
)

type RoomAvailabilityUseCase interface {
	IsAvailable(ctx context.Context, req *searchAvailability.CheckRequest) (*searchAvailability.CheckResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
