package search_availability

import (
	"time"

	"github.com/m04kA/SMC-HotelReservationService/internal/domain"
)

// SearchRequest поиск свободных номеров на период [Start, End)
type SearchRequest struct {
	Start time.Time
	End   time.Time
}

// SearchResponse свободные номера
type SearchResponse struct {
	Start  time.Time
	End    time.Time
	Nights int
	Rooms  []*domain.Room
}

// CheckRequest проверка доступности конкретного номера
type CheckRequest struct {
	RoomID string
	Start  time.Time
	End    time.Time
}

// CheckResponse результат проверки
type CheckResponse struct {
	RoomID    string
	Start     time.Time
	End       time.Time
	Available bool
}
