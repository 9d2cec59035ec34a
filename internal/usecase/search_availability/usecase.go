package search_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelReservationService/internal/domain"
	roomRepo "github.com/m04kA/SMC-HotelReservationService/internal/infra/storage/room"
)

// UseCase проверка доступности номеров.
// Только чтение, блокировки не берутся.
type UseCase struct {
	roomRepo        RoomRepository
	reservationRepo ReservationRepository
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(roomRepo RoomRepository, reservationRepo ReservationRepository, logger Logger) *UseCase {
	return &UseCase{
		roomRepo:        roomRepo,
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// FindAvailableRooms возвращает активные номера без блокирующих бронирований на период
func (uc *UseCase) FindAvailableRooms(ctx context.Context, req *SearchRequest) (*SearchResponse, error) {
	uc.logger.Info("FindAvailableRooms: start=%s, end=%s",
		req.Start.Format(domain.DateFormat), req.End.Format(domain.DateFormat))

	if err := validateRange(req.Start, req.End); err != nil {
		uc.logger.Warn("FindAvailableRooms: validation failed: %v", err)
		return nil, err
	}

	rooms, err := uc.roomRepo.ListAvailable(ctx, req.Start, req.End)
	if err != nil {
		uc.logger.Error("FindAvailableRooms: repository error: %v", err)
		return nil, fmt.Errorf("%w: FindAvailableRooms - repository error: %v", ErrInternal, err)
	}

	uc.logger.Info("FindAvailableRooms: found %d rooms", len(rooms))

	return &SearchResponse{
		Start:  req.Start,
		End:    req.End,
		Nights: domain.Nights(req.Start, req.End),
		Rooms:  rooms,
	}, nil
}

// IsAvailable проверяет, свободен ли номер на период.
// Неактивный номер недоступен.
func (uc *UseCase) IsAvailable(ctx context.Context, req *CheckRequest) (*CheckResponse, error) {
	if err := validateRange(req.Start, req.End); err != nil {
		uc.logger.Warn("IsAvailable: validation failed for room=%s: %v", req.RoomID, err)
		return nil, err
	}

	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("IsAvailable: room id=%s not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("IsAvailable: failed to get room id=%s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: IsAvailable - get room: %v", ErrInternal, err)
	}

	resp := &CheckResponse{RoomID: room.ID, Start: req.Start, End: req.End}
	if !room.IsActive {
		return resp, nil
	}

	busy, err := uc.reservationRepo.HasBlockingOverlap(ctx, room.ID, req.Start, req.End)
	if err != nil {
		uc.logger.Error("IsAvailable: overlap check failed for room id=%s: %v", room.ID, err)
		return nil, fmt.Errorf("%w: IsAvailable - overlap check: %v", ErrInternal, err)
	}

	resp.Available = !busy
	return resp, nil
}
