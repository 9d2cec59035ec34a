package cancel_reservation

import (
	"context"

	"github.com/m04kA/SMC-HotelReservationService/internal/domain"
	changeStatus "github.com/m04kA/SMC-HotelReservationService/internal/usecase/change_reservation_status"
)

type ChangeStatusUseCase interface {
	Cancel(ctx context.Context, principal domain.Principal, reservationID string) (*changeStatus.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
