package check_room_availability

import (
	"time"

	searchAvailability "github.com/m04kA/SMC-HotelReservationService/internal/usecase/search_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	RoomID    string `json:"roomId"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Available bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *searchAvailability.CheckResponse) *AvailabilityResponse {
	return &AvailabilityResponse{
		RoomID:    resp.RoomID,
		Start:     resp.Start.Format(time.RFC3339),
		End:       resp.End.Format(time.RFC3339),
		Available: resp.Available,
	}
}
