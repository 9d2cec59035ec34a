package search_availability

import (
	"time"

	roomModels "github.com/m04kA/SMC-HotelReservationService/internal/service/rooms/models"
	searchAvailability "github.com/m04kA/SMC-HotelReservationService/internal/usecase/search_availability"
)

// SearchResponse HTTP response model
type SearchResponse struct {
	Start  string                    `json:"start"`
	End    string                    `json:"end"`
	Nights int                       `json:"nights"`
	Rooms  []roomModels.RoomResponse `json:"rooms"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *searchAvailability.SearchResponse) *SearchResponse {
	return &SearchResponse{
		Start:  resp.Start.Format(time.RFC3339),
		End:    resp.End.Format(time.RFC3339),
		Nights: resp.Nights,
		Rooms:  roomModels.FromDomainRoomList(resp.Rooms).Rooms,
	}
}
