package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-HotelReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-HotelReservationService/internal/service/reservations/models"
)

// Service сервис чтения бронирований
type Service struct {
	reservationRepo ReservationRepository
	txManager       TransactionManager
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(reservationRepo ReservationRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
// Клиент видит только свои бронирования, персонал - любые
func (s *Service) GetByID(ctx context.Context, principal domain.Principal, id string) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%s for user=%s", id, principal.ID)

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%s not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !principal.Can(domain.PermReservationReadAll) &&
		!(principal.Can(domain.PermReservationReadOwn) && res.IsOwnedBy(principal.ID)) {
		s.logger.Warn("GetByID: access denied for user=%s to reservation id=%s", principal.ID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainReservation(res), nil
}

// ListMine возвращает бронирования текущего пользователя
func (s *Service) ListMine(ctx context.Context, principal domain.Principal, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("ListMine: fetching reservations for user=%s", principal.ID)

	if !principal.Can(domain.PermReservationReadOwn) {
		return nil, ErrAccessDenied
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListMine: invalid filter for user=%s: %v", principal.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	filter.UserID = &principal.ID

	return s.list(ctx, filter)
}

// List возвращает бронирования по фильтру (только персонал)
func (s *Service) List(ctx context.Context, principal domain.Principal, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("List: fetching reservations for user=%s role=%s", principal.ID, principal.Role)

	if !principal.Can(domain.PermReservationReadAll) {
		s.logger.Warn("List: access denied for user=%s", principal.ID)
		return nil, ErrAccessDenied
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return s.list(ctx, filter)
}

// list читает страницу и общее количество в одной транзакции только для чтения,
// чтобы total соответствовал выданной странице
func (s *Service) list(ctx context.Context, filter domain.ReservationFilter) (*models.ReservationListResponse, error) {
	var (
		items []*domain.Reservation
		total int
	)

	err := s.txManager.DoReadOnly(ctx, func(ctx context.Context) error {
		var err error
		items, err = s.reservationRepo.List(ctx, filter)
		if err != nil {
			s.logger.Error("List: repository error: %v", err)
			return fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
		}

		total, err = s.reservationRepo.Count(ctx, filter)
		if err != nil {
			s.logger.Error("List: count error: %v", err)
			return fmt.Errorf("%w: List - count error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("List: fetched %d of %d reservations", len(items), total)
	return models.FromDomainReservationList(items, total, filter), nil
}
