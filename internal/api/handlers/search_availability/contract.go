package search_availability

import (
	"context"

	searchAvailability "github.com/m04kA/SMC-HotelReservationService/internal/usecase/search_availability"
)

type SearchAvailabilityUseCase interface {
	FindAvailableRooms(ctx context.Context, req *searchAvailability.SearchRequest) (*searchAvailability.SearchResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
