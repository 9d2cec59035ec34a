package update_reservation_status

import (
	"time"

	"github.com/m04kA/SMC-HotelReservationService/internal/domain"
	changeStatus "github.com/m04kA/SMC-HotelReservationService/internal/usecase/change_reservation_status"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"` // PENDING, PAID, CONFIRMED, CHECKED_IN, CHECKED_OUT, CANCELED
}

// StatusResponse HTTP response model
type StatusResponse struct {
	ID             string `json:"id"`
	Code           string `json:"code"`
	RoomID         string `json:"roomId"`
	PreviousStatus string `json:"previousStatus"`
	Status         string `json:"status"`
	UpdatedAt      string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateStatusRequest) ToUseCaseRequest(principal domain.Principal, reservationID string) *changeStatus.Request {
	return &changeStatus.Request{
		Principal:     principal,
		ReservationID: reservationID,
		Status:        r.Status,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *changeStatus.Response) *StatusResponse {
	return &StatusResponse{
		ID:             resp.ID,
		Code:           resp.Code,
		RoomID:         resp.RoomID,
		PreviousStatus: resp.PreviousStatus,
		Status:         resp.Status,
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}
