package list_my_reservations

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelReservationService/internal/service/reservations"
)

const (
	msgInvalidFilter = "некорректные параметры фильтра"
	msgMissingUser   = "требуется авторизация"
	msgForbidden     = "доступ запрещен"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/mine
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/mine - Missing principal")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	req, err := parseListRequest(r)
	if err != nil {
		h.logger.Warn("GET /bookings/mine - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFilter)
		return
	}

	result, err := h.service.ListMine(r.Context(), principal, req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrAccessDenied):
			h.logger.Warn("GET /bookings/mine - Access denied: user_id=%s", principal.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /bookings/mine - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /bookings/mine - Failed to list reservations: user_id=%s, error=%v", principal.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /bookings/mine - Reservations retrieved successfully: user_id=%s, count=%d", principal.ID, len(result.Items))
	handlers.RespondJSON(w, http.StatusOK, result)
}
