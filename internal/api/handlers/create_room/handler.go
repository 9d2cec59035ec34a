package create_room

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-HotelReservationService/internal/service/rooms"
	"github.com/m04kA/SMC-HotelReservationService/internal/service/rooms/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные номера"
	msgMissingUser        = "требуется авторизация"
	msgForbidden          = "доступ запрещен"
)

type Handler struct {
	service RoomService
	logger  Logger
}

func NewHandler(service RoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/rooms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		h.logger.Warn("POST /rooms - Missing principal")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	var req models.CreateRoomRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /rooms - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	room, err := h.service.Create(r.Context(), principal, &req)
	if err != nil {
		switch {
		case errors.Is(err, rooms.ErrAccessDenied):
			h.logger.Warn("POST /rooms - Access denied: user_id=%s", principal.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, rooms.ErrInvalidInput):
			h.logger.Warn("POST /rooms - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /rooms - Failed to create room: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /rooms - Room created successfully: room_id=%s, user_id=%s", room.ID, principal.ID)
	handlers.RespondJSON(w, http.StatusCreated, room)
}
