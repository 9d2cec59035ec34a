package update_reservation_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelReservationService/internal/api/middleware"
	changeStatus "github.com/m04kA/SMC-HotelReservationService/internal/usecase/change_reservation_status"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStatus      = "некорректный статус бронирования"
	msgMissingUser        = "требуется авторизация"
	msgForbidden          = "доступ запрещен"
	msgNotFound           = "бронирование не найдено"
	msgInvalidTransition  = "недопустимый переход статуса"
)

type Handler struct {
	useCase ChangeStatusUseCase
	logger  Logger
}

func NewHandler(useCase ChangeStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID := mux.Vars(r)["bookingId"]

	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id}/status - Missing principal")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req UpdateStatusRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.UpdateStatus(r.Context(), req.ToUseCaseRequest(principal, reservationID))
	if err != nil {
		handleError(h.logger, w, "PATCH /bookings/{id}/status", reservationID, err)
		return
	}

	h.logger.Info("PATCH /bookings/{id}/status - Status changed successfully: id=%s, %s -> %s",
		reservationID, result.PreviousStatus, result.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

func handleError(logger Logger, w http.ResponseWriter, route, reservationID string, err error) {
	switch {
	case errors.Is(err, changeStatus.ErrInvalidInput):
		logger.Warn("%s - Invalid input: id=%s, error=%v", route, reservationID, err)
		handlers.RespondBadRequest(w, msgInvalidStatus)

	case errors.Is(err, changeStatus.ErrForbidden):
		logger.Warn("%s - Access denied: id=%s", route, reservationID)
		handlers.RespondForbidden(w, msgForbidden)

	case errors.Is(err, changeStatus.ErrReservationNotFound):
		logger.Warn("%s - Reservation not found: id=%s", route, reservationID)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, changeStatus.ErrInvalidTransition):
		logger.Warn("%s - Invalid transition: id=%s, error=%v", route, reservationID, err)
		handlers.RespondConflict(w, handlers.TransitionMessage(msgInvalidTransition, err))

	default:
		logger.Error("%s - Failed to change status: id=%s, error=%v", route, reservationID, err)
		handlers.RespondInternalError(w)
	}
}
