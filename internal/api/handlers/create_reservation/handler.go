package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelReservationService/internal/domain"
	createReservation "github.com/m04kA/SMC-HotelReservationService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD или RFC3339"
	msgInvalidInput       = "некорректные данные бронирования"
	msgForbidden          = "доступ запрещен"
	msgRoomNotFound       = "номер не найден"
	msgRoomUnavailable    = "номер недоступен на выбранные даты"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Бронирование возможно и без токена: тогда userId не заполняется
	var principal *domain.Principal
	if p, ok := middleware.GetPrincipal(r.Context()); ok {
		principal = &p
	}

	useCaseReq, err := req.ToUseCaseRequest(principal)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: room_id=%s, error=%v", req.RoomID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createReservation.ErrForbidden):
			h.logger.Warn("POST /bookings - Forbidden: room_id=%s", req.RoomID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, createReservation.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: room_id=%s", req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createReservation.ErrRoomUnavailable):
			h.logger.Warn("POST /bookings - Room unavailable: room_id=%s, check_in=%s, check_out=%s",
				req.RoomID, req.CheckIn, req.CheckOut)
			handlers.RespondConflict(w, msgRoomUnavailable)

		default:
			h.logger.Error("POST /bookings - Failed to create reservation: room_id=%s, error=%v", req.RoomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Reservation created successfully: id=%s, code=%s, room_id=%s",
		result.ID, result.Code, result.RoomID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
