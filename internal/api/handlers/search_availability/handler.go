package search_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-HotelReservationService/internal/api/handlers"
	searchAvailability "github.com/m04kA/SMC-HotelReservationService/internal/usecase/search_availability"
)

const (
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD или RFC3339"
	msgInvalidRange = "дата начала должна быть раньше даты окончания"
)

type Handler struct {
	useCase SearchAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase SearchAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/availability/search?start=2025-01-10&end=2025-01-12
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	start, end, err := handlers.ParseDateRange(r)
	if err != nil {
		h.logger.Warn("GET /rooms/availability/search - Invalid dates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.FindAvailableRooms(r.Context(), &searchAvailability.SearchRequest{Start: start, End: end})
	if err != nil {
		switch {
		case errors.Is(err, searchAvailability.ErrInvalidRange):
			h.logger.Warn("GET /rooms/availability/search - Invalid range: start=%s, end=%s", start, end)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /rooms/availability/search - Failed to search: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /rooms/availability/search - Found %d rooms", len(result.Rooms))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
