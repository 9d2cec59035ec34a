package change_reservation_status

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-HotelReservationService/internal/infra/storage/reservation"
)

// UseCase смена статуса бронирования по таблице переходов
type UseCase struct {
	reservationRepo ReservationRepository
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(reservationRepo ReservationRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// UpdateStatus переводит бронирование в произвольный допустимый статус
func (uc *UseCase) UpdateStatus(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateStatus: reservation=%s, target=%s, user=%s", req.ReservationID, req.Status, req.Principal.ID)

	if err := validateID(req.ReservationID); err != nil {
		return nil, err
	}

	target, err := parseTarget(req.Status)
	if err != nil {
		uc.logger.Warn("UpdateStatus: %v", err)
		return nil, err
	}

	return uc.transition(ctx, req.Principal, req.ReservationID, target)
}

// Cancel отменяет бронирование (владелец или персонал)
func (uc *UseCase) Cancel(ctx context.Context, principal domain.Principal, reservationID string) (*Response, error) {
	uc.logger.Info("Cancel: reservation=%s, user=%s", reservationID, principal.ID)

	if err := validateID(reservationID); err != nil {
		return nil, err
	}
	return uc.transition(ctx, principal, reservationID, domain.StatusCanceled)
}

// Pay отмечает бронирование оплаченным (оплата имитируется, владелец или персонал)
func (uc *UseCase) Pay(ctx context.Context, principal domain.Principal, reservationID string) (*Response, error) {
	uc.logger.Info("Pay: reservation=%s, user=%s", reservationID, principal.ID)

	if err := validateID(reservationID); err != nil {
		return nil, err
	}
	return uc.transition(ctx, principal, reservationID, domain.StatusPaid)
}

// transition читает бронирование с блокировкой строки, проверяет права и
// таблицу переходов, затем сохраняет новый статус.
// Переходы только освобождают номер или сохраняют блокировку,
// поэтому блокировка строки номера не требуется.
func (uc *UseCase) transition(ctx context.Context, principal domain.Principal, id string, target domain.ReservationStatus) (*Response, error) {
	var resp *Response

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		res, err := uc.reservationRepo.GetByIDForUpdate(txCtx, id)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("ChangeStatus: reservation id=%s not found", id)
				return ErrReservationNotFound
			}
			uc.logger.Error("ChangeStatus: failed to get reservation id=%s: %v", id, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		if err := checkAccess(principal, res, target); err != nil {
			uc.logger.Warn("ChangeStatus: %v", err)
			return err
		}

		if err := domain.Transition(res.Status, target); err != nil {
			uc.logger.Warn("ChangeStatus: reservation id=%s: %v", id, err)
			return fmt.Errorf("%w: %w", ErrInvalidTransition, err)
		}

		updatedAt, err := uc.reservationRepo.UpdateStatus(txCtx, id, target)
		if err != nil {
			uc.logger.Error("ChangeStatus: failed to update reservation id=%s: %v", id, err)
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}

		resp = &Response{
			ID:             res.ID,
			Code:           res.Code,
			RoomID:         res.RoomID,
			PreviousStatus: string(res.Status),
			Status:         string(target),
			UpdatedAt:      updatedAt,
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrReservationNotFound) || errors.Is(err, ErrForbidden) ||
			errors.Is(err, ErrInvalidTransition) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("ChangeStatus: transaction failed for reservation id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.logger.Info("ChangeStatus: reservation id=%s %s → %s", resp.ID, resp.PreviousStatus, resp.Status)
	return resp, nil
}
