package pay_reservation

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelReservationService/internal/api/middleware"
	changeStatus "github.com/m04kA/SMC-HotelReservationService/internal/usecase/change_reservation_status"
)

const (
	msgInvalidReservationID = "некорректный ID бронирования"
	msgMissingUser          = "требуется авторизация"
	msgForbidden            = "доступ запрещен"
	msgNotFound             = "бронирование не найдено"
	msgInvalidTransition    = "недопустимый переход статуса"
)

// StatusResponse HTTP response model
type StatusResponse struct {
	ID             string `json:"id"`
	Code           string `json:"code"`
	PreviousStatus string `json:"previousStatus"`
	Status         string `json:"status"`
	UpdatedAt      string `json:"updatedAt"`
}

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

// Handle POST /api/v1/bookings/{bookingId}/pay
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID := mux.Vars(r)["bookingId"]

	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings/{id}/pay - Missing principal")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	result, err := h.useCase.Pay(r.Context(), principal, reservationID)
	if err != nil {
		switch {
		case errors.Is(err, changeStatus.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/pay - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidReservationID)

		case errors.Is(err, changeStatus.ErrForbidden):
			h.logger.Warn("POST /bookings/{id}/pay - Access denied: id=%s, user_id=%s", reservationID, principal.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, changeStatus.ErrReservationNotFound):
			h.logger.Warn("POST /bookings/{id}/pay - Reservation not found: id=%s", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, changeStatus.ErrInvalidTransition):
			h.logger.Warn("POST /bookings/{id}/pay - Invalid transition: id=%s, error=%v", reservationID, err)
			handlers.RespondConflict(w, handlers.TransitionMessage(msgInvalidTransition, err))

		default:
			h.logger.Error("POST /bookings/{id}/pay - Failed: id=%s, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/pay - Reservation paid successfully: id=%s, user_id=%s", reservationID, principal.ID)
	handlers.RespondJSON(w, http.StatusOK, &StatusResponse{
		ID:             result.ID,
		Code:           result.Code,
		PreviousStatus: result.PreviousStatus,
		Status:         result.Status,
		UpdatedAt:      result.UpdatedAt.Format(time.RFC3339),
	})
}
