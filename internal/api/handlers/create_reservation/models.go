package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-HotelReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelReservationService/internal/domain"
	createReservation "github.com/m04kA/SMC-HotelReservationService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	RoomID         string  `json:"roomId" validate:"required"`
	CheckIn        string  `json:"checkIn" validate:"required"`  // "2025-01-10" или RFC3339
	CheckOut       string  `json:"checkOut" validate:"required"` // "2025-01-12" или RFC3339
	Guests         int     `json:"guests" validate:"required,min=1"`
	GuestName      string  `json:"guestName" validate:"required"`
	GuestEmail     string  `json:"guestEmail" validate:"required"`
	GuestPhone     string  `json:"guestPhone" validate:"required"`
	DocumentType   *string `json:"documentType,omitempty"`
	DocumentNumber *string `json:"documentNumber,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID             string  `json:"id"`
	Code           string  `json:"code"`
	RoomID         string  `json:"roomId"`
	RoomName       string  `json:"roomName"`
	UserID         *string `json:"userId,omitempty"`
	GuestName      string  `json:"guestName"`
	GuestEmail     string  `json:"guestEmail"`
	GuestPhone     string  `json:"guestPhone"`
	DocumentType   *string `json:"documentType,omitempty"`
	DocumentNumber *string `json:"documentNumber,omitempty"`
	CheckIn        string  `json:"checkIn"`
	CheckOut       string  `json:"checkOut"`
	Nights         int     `json:"nights"`
	Guests         int     `json:"guests"`
	Total          float64 `json:"total"`
	Status         string  `json:"status"`
	CreatedAt      string  `json:"createdAt"`
	UpdatedAt      string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(principal *domain.Principal) (*createReservation.Request, error) {
	checkIn, err := handlers.ParseDate(r.CheckIn)
	if err != nil {
		return nil, err
	}

	checkOut, err := handlers.ParseDate(r.CheckOut)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		Principal: principal,
		RoomID:    r.RoomID,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		Guests:    r.Guests,
		Guest: domain.GuestInfo{
			Name:           r.GuestName,
			Email:          r.GuestEmail,
			Phone:          r.GuestPhone,
			DocumentType:   r.DocumentType,
			DocumentNumber: r.DocumentNumber,
		},
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:             resp.ID,
		Code:           resp.Code,
		RoomID:         resp.RoomID,
		RoomName:       resp.RoomName,
		UserID:         resp.UserID,
		GuestName:      resp.GuestName,
		GuestEmail:     resp.GuestEmail,
		GuestPhone:     resp.GuestPhone,
		DocumentType:   resp.DocumentType,
		DocumentNumber: resp.DocumentNumber,
		CheckIn:        resp.CheckIn.Format(time.RFC3339),
		CheckOut:       resp.CheckOut.Format(time.RFC3339),
		Nights:         resp.Nights,
		Guests:         resp.Guests,
		Total:          resp.Total,
		Status:         resp.Status,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}
