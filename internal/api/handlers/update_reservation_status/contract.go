package update_reservation_status

import (
	"context"

	changeStatus "github.com/m04kA/SMC-HotelReservationService/internal/usecase/change_reservation_status"
)

type ChangeStatusUseCase interface {
	UpdateStatus(ctx context.Context, req *changeStatus.Request) (*changeStatus.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
