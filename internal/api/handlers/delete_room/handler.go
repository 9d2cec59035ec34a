package delete_room

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelReservationService/internal/api/middleware"
	deleteRoom "github.com/m04kA/SMC-HotelReservationService/internal/usecase/delete_room"
)

const (
	msgInvalidRoomID     = "некорректный ID номера"
	msgMissingUser       = "требуется авторизация"
	msgForbidden         = "доступ запрещен"
	msgNotFound          = "номер не найден"
	msgActiveReservation = "у номера есть действующие или будущие бронирования"
)

type Handler struct {
	useCase DeleteRoomUseCase
	logger  Logger
}

func NewHandler(useCase DeleteRoomUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/rooms/{roomId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["roomId"]

	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		h.logger.Warn("DELETE /rooms/{id} - Missing principal")
		handlers.RespondUnauthorized(w, msgMissingUser)
		return
	}

	err := h.useCase.Execute(r.Context(), &deleteRoom.Request{Principal: principal, RoomID: roomID})
	if err != nil {
		switch {
		case errors.Is(err, deleteRoom.ErrInvalidInput):
			h.logger.Warn("DELETE /rooms/{id} - Invalid room ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRoomID)

		case errors.Is(err, deleteRoom.ErrForbidden):
			h.logger.Warn("DELETE /rooms/{id} - Access denied: room_id=%s, user_id=%s", roomID, principal.ID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, deleteRoom.ErrRoomNotFound):
			h.logger.Warn("DELETE /rooms/{id} - Room not found: room_id=%s", roomID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, deleteRoom.ErrRoomHasActiveReservations):
			h.logger.Warn("DELETE /rooms/{id} - Room has active reservations: room_id=%s", roomID)
			handlers.RespondConflict(w, msgActiveReservation)

		default:
			h.logger.Error("DELETE /rooms/{id} - Failed to delete room: room_id=%s, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /rooms/{id} - Room deleted successfully: room_id=%s, user_id=%s", roomID, principal.ID)
	handlers.RespondNoContent(w)
}
