package models

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-HotelReservationService/internal/domain"
)

// Request модели

// ListReservationsRequest фильтр списка бронирований
type ListReservationsRequest struct {
	Status   *string `json:"status,omitempty"`
	RoomID   *string `json:"roomId,omitempty"`
	UserID   *string `json:"userId,omitempty"` // Игнорируется для "моих" бронирований
	Page     int     `json:"page"`
	PageSize int     `json:"pageSize"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListReservationsRequest) ToDomainFilter() (domain.ReservationFilter, error) {
	filter := domain.ReservationFilter{
		RoomID:   r.RoomID,
		UserID:   r.UserID,
		Page:     r.Page,
		PageSize: r.PageSize,
	}

	if r.Status != nil {
		status, err := domain.ParseReservationStatus(strings.ToUpper(*r.Status))
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	if err := filter.Validate(); err != nil {
		return filter, err
	}
	filter.Normalize()
	return filter, nil
}

// Response модели

// ReservationResponse ответ с данными бронирования
type ReservationResponse struct {
	ID     string  `json:"id"`
	Code   string  `json:"code"`
	RoomID string  `json:"roomId"`
	UserID *string `json:"userId,omitempty"`

	GuestName      string  `json:"guestName"`
	GuestEmail     string  `json:"guestEmail"`
	GuestPhone     string  `json:"guestPhone"`
	DocumentType   *string `json:"documentType,omitempty"`
	DocumentNumber *string `json:"documentNumber,omitempty"`

	CheckIn  time.Time `json:"checkIn"`
	CheckOut time.Time `json:"checkOut"`
	Nights   int       `json:"nights"`
	Guests   int       `json:"guests"`
	Total    float64   `json:"total"`
	Status   string    `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse страница бронирований
type ReservationListResponse struct {
	Items    []ReservationResponse `json:"items"`
	Total    int                   `json:"total"`
	Page     int                   `json:"page"`
	PageSize int                   `json:"pageSize"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	return &ReservationResponse{
		ID:             r.ID,
		Code:           r.Code,
		RoomID:         r.RoomID,
		UserID:         r.UserID,
		GuestName:      r.GuestName,
		GuestEmail:     r.GuestEmail,
		GuestPhone:     r.GuestPhone,
		DocumentType:   r.DocumentType,
		DocumentNumber: r.DocumentNumber,
		CheckIn:        r.CheckIn,
		CheckOut:       r.CheckOut,
		Nights:         r.Nights(),
		Guests:         r.Guests,
		Total:          r.Total,
		Status:         string(r.Status),
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует страницу domain моделей в DTO
func FromDomainReservationList(items []*domain.Reservation, total int, filter domain.ReservationFilter) *ReservationListResponse {
	resp := &ReservationListResponse{
		Items:    make([]ReservationResponse, 0, len(items)),
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}

	for _, item := range items {
		if dto := FromDomainReservation(item); dto != nil {
			resp.Items = append(resp.Items, *dto)
		}
	}

	return resp
}
