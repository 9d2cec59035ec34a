package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-HotelReservationService/internal/domain"
	reservationRepo "github.com/m04kA/SMC-HotelReservationService/internal/infra/storage/reservation"
	roomRepo "github.com/m04kA/SMC-HotelReservationService/internal/infra/storage/room"
)

// Исходы бронирования для метрик
const (
	outcomeCreated   = "created"
	outcomeConflict  = "conflict"
	outcomeInvalid   = "invalid"
	outcomeForbidden = "forbidden"
	outcomeError     = "error"
)

// UseCase use case бронирования номера
type UseCase struct {
	roomRepo        RoomRepository
	reservationRepo ReservationRepository
	codes           CodeGenerator
	txManager       TransactionManager
	metrics         MetricsRecorder
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	reservationRepo ReservationRepository,
	codes CodeGenerator,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	return &UseCase{
		roomRepo:        roomRepo,
		reservationRepo: reservationRepo,
		codes:           codes,
		txManager:       txManager,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// WithTimeProvider подменяет источник времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute создает бронирование в статусе PENDING.
//
// Проверка доступности, генерация кода и вставка выполняются в одной транзакции,
// которая сначала блокирует строку номера (SELECT ... FOR UPDATE). Конкурентные
// бронирования одного номера выполняются строго по очереди; ограничение
// исключения в БД отклоняет пересечение, даже если блокировка обойдена.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: room=%s, checkIn=%s, checkOut=%s, guests=%d",
		req.RoomID, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat), req.Guests)

	// 1. Валидация входных данных (без обращения к БД)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		uc.metrics.ObserveReservation(outcomeInvalid)
		return nil, err
	}

	// 2. Проверка прав
	var userID *string
	if req.Principal != nil {
		if !req.Principal.Can(domain.PermReservationCreate) {
			uc.logger.Warn("CreateReservation: user=%s role=%s is not allowed to book", req.Principal.ID, req.Principal.Role)
			uc.metrics.ObserveReservation(outcomeForbidden)
			return nil, ErrForbidden
		}
		id := req.Principal.ID
		userID = &id
	}

	year := uc.timeProvider.Now().UTC().Year()

	var (
		result *domain.Reservation
		room   *domain.Room
	)

	// 3. Проверка доступности и создание в одной транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error

		// 3.1. Блокируем строку номера: сериализует бронирования этого номера
		room, err = uc.roomRepo.GetByIDForUpdate(txCtx, req.RoomID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("CreateReservation: room id=%s not found", req.RoomID)
				return ErrRoomNotFound
			}
			uc.logger.Error("CreateReservation: failed to get room id=%s: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}

		if !room.IsActive {
			uc.logger.Warn("CreateReservation: room id=%s is inactive", req.RoomID)
			return ErrRoomNotFound
		}

		if err := validateCapacity(room, req.Guests); err != nil {
			uc.logger.Warn("CreateReservation: %v", err)
			return err
		}

		// 3.2. Проверяем пересечения с блокирующими бронированиями
		busy, err := uc.reservationRepo.HasBlockingOverlap(txCtx, room.ID, req.CheckIn, req.CheckOut)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to check availability for room id=%s: %v", room.ID, err)
			return fmt.Errorf("%w: failed to check availability: %v", ErrInternal, err)
		}
		if busy {
			uc.logger.Warn("CreateReservation: room id=%s is busy for %s - %s", room.ID,
				req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat))
			return ErrRoomUnavailable
		}

		// 3.3. Стоимость
		nights := domain.Nights(req.CheckIn, req.CheckOut)
		total := domain.ReservationTotal(room.PricePerNight, nights)

		// 3.4. Код бронирования из счетчика (в той же транзакции)
		code, err := uc.codes.Next(txCtx, year)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to generate code: %v", err)
			return fmt.Errorf("%w: failed to generate code: %v", ErrInternal, err)
		}

		// 3.5. Сохраняем бронирование
		created, err := uc.reservationRepo.Create(txCtx, &domain.Reservation{
			Code:           code,
			RoomID:         room.ID,
			UserID:         userID,
			GuestName:      req.Guest.Name,
			GuestEmail:     req.Guest.Email,
			GuestPhone:     req.Guest.Phone,
			DocumentType:   req.Guest.DocumentType,
			DocumentNumber: req.Guest.DocumentNumber,
			CheckIn:        req.CheckIn,
			CheckOut:       req.CheckOut,
			Guests:         req.Guests,
			Total:          total,
			Status:         domain.StatusPending,
		})
		if err != nil {
			if errors.Is(err, reservationRepo.ErrOverlap) {
				uc.logger.Warn("CreateReservation: overlap rejected by storage for room id=%s", room.ID)
				return ErrRoomUnavailable
			}
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		uc.metrics.ObserveReservation(outcomeFor(err))
		if errors.Is(err, ErrRoomNotFound) || errors.Is(err, ErrRoomUnavailable) ||
			errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("CreateReservation: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.metrics.ObserveReservation(outcomeCreated)
	uc.logger.Info("CreateReservation: successfully created reservation id=%s code=%s", result.ID, result.Code)

	return toResponse(result, room), nil
}

type noopMetrics struct{}

func (noopMetrics) ObserveReservation(string) {}

func outcomeFor(err error) string {
	switch {
	case errors.Is(err, ErrRoomUnavailable):
		return outcomeConflict
	case errors.Is(err, ErrRoomNotFound), errors.Is(err, ErrInvalidInput):
		return outcomeInvalid
	default:
		return outcomeError
	}
}

func toResponse(res *domain.Reservation, room *domain.Room) *Response {
	return &Response{
		ID:             res.ID,
		Code:           res.Code,
		RoomID:         res.RoomID,
		RoomName:       room.Name,
		UserID:         res.UserID,
		GuestName:      res.GuestName,
		GuestEmail:     res.GuestEmail,
		GuestPhone:     res.GuestPhone,
		DocumentType:   res.DocumentType,
		DocumentNumber: res.DocumentNumber,
		CheckIn:        res.CheckIn,
		CheckOut:       res.CheckOut,
		Nights:         res.Nights(),
		Guests:         res.Guests,
		Total:          res.Total,
		Status:         string(res.Status),
		CreatedAt:      res.CreatedAt,
		UpdatedAt:      res.UpdatedAt,
	}
}
