package check_room_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-HotelReservationService/internal/api/handlers"
	searchAvailability "github.com/m04kA/SMC-HotelReservationService/internal/usecase/search_availability"
)

const (
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD или RFC3339"
	msgInvalidRange = "дата начала должна быть раньше даты окончания"
	msgRoomNotFound = "номер не найден"
)

type Handler struct {
	useCase RoomAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase RoomAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/{roomId}/availability?start=...&end=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["roomId"]

	start, end, err := handlers.ParseDateRange(r)
	if err != nil {
		h.logger.Warn("GET /rooms/{id}/availability - Invalid dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.IsAvailable(r.Context(), &searchAvailability.CheckRequest{RoomID: roomID, Start: start, End: end})
	if err != nil {
		switch {
		case errors.Is(err, searchAvailability.ErrInvalidRange):
			h.logger.Warn("GET /rooms/{id}/availability - Invalid range: room_id=%s", roomID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, searchAvailability.ErrRoomNotFound):
			h.logger.Warn("GET /rooms/{id}/availability - Room not found: room_id=%s", roomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		default:
			h.logger.Error("GET /rooms/{id}/availability - Failed to check: room_id=%s, error=%v", roomID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/{id}/availability - room_id=%s, available=%t", roomID, result.Available)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
