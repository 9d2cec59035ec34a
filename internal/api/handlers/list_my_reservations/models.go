package list_my_reservations

import (
	"net/http"

	"github.com/m04kA/SMC-HotelReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelReservationService/internal/service/reservations/models"
)

// parseListRequest читает фильтр из query: status, roomId, page, pageSize
func parseListRequest(r *http.Request) (*models.ListReservationsRequest, error) {
	page, err := handlers.QueryInt(r, "page", 1)
	if err != nil {
		return nil, err
	}
	pageSize, err := handlers.QueryInt(r, "pageSize", 0)
	if err != nil {
		return nil, err
	}

	return &models.ListReservationsRequest{
		Status:   handlers.QueryString(r, "status"),
		RoomID:   handlers.QueryString(r, "roomId"),
		Page:     page,
		PageSize: pageSize,
	}, nil
}
