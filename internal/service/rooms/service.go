package rooms

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/m04kA/SMC-HotelReservationService/internal/domain"
	roomRepo "github.com/m04kA/SMC-HotelReservationService/internal/infra/storage/room"
	"github.com/m04kA/SMC-HotelReservationService/internal/service/rooms/models"
)

// Service сервис каталога номеров
type Service struct {
	roomRepo  RoomRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса номеров
func NewService(roomRepo RoomRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		roomRepo:  roomRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// List возвращает каталог номеров.
// Неактивные номера видит только персонал (principal != nil и IsStaff).
func (s *Service) List(ctx context.Context, principal *domain.Principal, req *models.ListRoomsRequest) (*models.RoomListResponse, error) {
	filter := domain.RoomFilter{
		Query:      strings.TrimSpace(req.Query),
		OnlyActive: !(req.IncludeInactive && principal != nil && principal.Role.IsStaff()),
	}

	s.logger.Info("List: q=%q, onlyActive=%t", filter.Query, filter.OnlyActive)

	rooms, err := s.roomRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRoomList(rooms), nil
}

// GetByID получает номер по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.RoomResponse, error) {
	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("GetByID: room id=%s not found", id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetByID: repository error for room id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainRoom(room), nil
}

// Create создает номер (только администратор)
func (s *Service) Create(ctx context.Context, principal domain.Principal, req *models.CreateRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("Create: name=%q, capacity=%d, user=%s", req.Name, req.Capacity, principal.ID)

	if !principal.Can(domain.PermRoomCreate) {
		s.logger.Warn("Create: access denied for user=%s role=%s", principal.ID, principal.Role)
		return nil, ErrAccessDenied
	}

	room := &domain.Room{
		Name:          req.Name,
		Capacity:      req.Capacity,
		PricePerNight: roundCents(req.PricePerNight),
		IsActive:      true,
		Description:   req.Description,
		ImageURL:      req.ImageURL,
	}
	if req.IsActive != nil {
		room.IsActive = *req.IsActive
	}

	if err := validateRoom(room); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.roomRepo.Create(ctx, room)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: room id=%s created", created.ID)
	return models.FromDomainRoom(created), nil
}

// Update частично обновляет номер
// Администратор может менять любые поля, оператор - только признак активности
func (s *Service) Update(ctx context.Context, principal domain.Principal, id string, req *models.UpdateRoomRequest) (*models.RoomResponse, error) {
	s.logger.Info("Update: room=%s, user=%s", id, principal.ID)

	patch := req.ToDomainPatch()
	if patch.IsEmpty() {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	if err := checkPatchAccess(principal, &patch); err != nil {
		s.logger.Warn("Update: %v", err)
		return nil, err
	}

	if patch.PricePerNight != nil {
		price := roundCents(*patch.PricePerNight)
		patch.PricePerNight = &price
	}

	var updated *domain.Room
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		room, err := s.roomRepo.GetByIDForUpdate(txCtx, id)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("%w: Update - get room: %v", ErrInternal, err)
		}

		patch.Apply(room)
		if err := validateRoom(room); err != nil {
			return err
		}

		updated, err = s.roomRepo.Update(txCtx, room)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrRoomNotFound) || errors.Is(err, ErrInvalidInput) {
			s.logger.Warn("Update: room id=%s: %v", id, err)
			return nil, err
		}
		s.logger.Error("Update: room id=%s: %v", id, err)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: Update - transaction failed: %v", ErrInternal, err)
	}

	s.logger.Info("Update: room id=%s updated", id)
	return models.FromDomainRoom(updated), nil
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
