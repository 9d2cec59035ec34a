package delete_room

import (
	"context"
	"errors"
	"fmt"

	roomRepo "github.com/m04kA/SMC-HotelReservationService/internal/infra/storage/room"
)

// UseCase удаление номера с проверкой действующих бронирований
type UseCase struct {
	roomRepo        RoomRepository
	reservationRepo ReservationRepository
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	reservationRepo ReservationRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:        roomRepo,
		reservationRepo: reservationRepo,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute удаляет номер, если у него нет блокирующих бронирований с выездом в будущем.
// Строка номера блокируется на время проверки, чтобы параллельное бронирование
// не появилось между подсчётом и удалением. Удаление мягкое: история сохраняется.
func (uc *UseCase) Execute(ctx context.Context, req *Request) error {
	uc.logger.Info("DeleteRoom: room=%s, user=%s", req.RoomID, req.Principal.ID)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("DeleteRoom: validation failed: %v", err)
		return err
	}

	now := uc.timeProvider.Now()

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := uc.roomRepo.GetByIDForUpdate(txCtx, req.RoomID); err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("DeleteRoom: room id=%s not found", req.RoomID)
				return ErrRoomNotFound
			}
			uc.logger.Error("DeleteRoom: failed to get room id=%s: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}

		active, err := uc.reservationRepo.CountActiveFuture(txCtx, req.RoomID, now)
		if err != nil {
			uc.logger.Error("DeleteRoom: failed to count reservations for room id=%s: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to count reservations: %v", ErrInternal, err)
		}
		if active > 0 {
			uc.logger.Warn("DeleteRoom: room id=%s has %d active reservations", req.RoomID, active)
			return fmt.Errorf("%w: %d reservations", ErrRoomHasActiveReservations, active)
		}

		if err := uc.roomRepo.SoftDelete(txCtx, req.RoomID); err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				return ErrRoomNotFound
			}
			uc.logger.Error("DeleteRoom: failed to delete room id=%s: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to delete room: %v", ErrInternal, err)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrRoomNotFound) || errors.Is(err, ErrRoomHasActiveReservations) || errors.Is(err, ErrInternal) {
			return err
		}
		uc.logger.Error("DeleteRoom: transaction failed for room id=%s: %v", req.RoomID, err)
		return fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.logger.Info("DeleteRoom: room id=%s deleted", req.RoomID)
	return nil
}
