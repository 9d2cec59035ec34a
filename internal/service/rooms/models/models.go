package models

import (
	"time"

	"github.com/m04kA/SMC-HotelReservationService/internal/domain"
)

// Request модели

// ListRoomsRequest фильтр каталога
type ListRoomsRequest struct {
	Query           string `json:"q,omitempty"`
	IncludeInactive bool   `json:"includeInactive,omitempty"` // Только для персонала
}

// CreateRoomRequest создание номера
type CreateRoomRequest struct {
	Name          string  `json:"name" validate:"required,min=2"`
	Capacity      int     `json:"capacity" validate:"required,min=1"`
	PricePerNight float64 `json:"pricePerNight" validate:"min=0"`
	IsActive      *bool   `json:"isActive,omitempty"` // По умолчанию true
	Description   *string `json:"description,omitempty"`
	ImageURL      *string `json:"imageUrl,omitempty" validate:"omitempty,url"`
}

// UpdateRoomRequest частичное обновление номера
type UpdateRoomRequest struct {
	Name          *string  `json:"name,omitempty" validate:"omitempty,min=2"`
	Capacity      *int     `json:"capacity,omitempty" validate:"omitempty,min=1"`
	PricePerNight *float64 `json:"pricePerNight,omitempty" validate:"omitempty,min=0"`
	IsActive      *bool    `json:"isActive,omitempty"`
	Description   *string  `json:"description,omitempty"`
	ImageURL      *string  `json:"imageUrl,omitempty" validate:"omitempty,url"`
}

// ToDomainPatch конвертирует request в domain патч
func (r *UpdateRoomRequest) ToDomainPatch() domain.RoomPatch {
	return domain.RoomPatch{
		Name:          r.Name,
		Capacity:      r.Capacity,
		PricePerNight: r.PricePerNight,
		IsActive:      r.IsActive,
		Description:   r.Description,
		ImageURL:      r.ImageURL,
	}
}

// Response модели

// RoomResponse ответ с данными номера
type RoomResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Capacity      int       `json:"capacity"`
	PricePerNight float64   `json:"pricePerNight"`
	IsActive      bool      `json:"isActive"`
	Description   *string   `json:"description,omitempty"`
	ImageURL      *string   `json:"imageUrl,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// RoomListResponse ответ со списком номеров
type RoomListResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

// FromDomainRoom конвертирует domain модель в DTO
func FromDomainRoom(r *domain.Room) *RoomResponse {
	if r == nil {
		return nil
	}

	return &RoomResponse{
		ID:            r.ID,
		Name:          r.Name,
		Capacity:      r.Capacity,
		PricePerNight: r.PricePerNight,
		IsActive:      r.IsActive,
		Description:   r.Description,
		ImageURL:      r.ImageURL,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// FromDomainRoomList конвертирует список domain моделей в DTO
func FromDomainRoomList(rooms []*domain.Room) *RoomListResponse {
	resp := &RoomListResponse{
		Rooms: make([]RoomResponse, 0, len(rooms)),
	}

	for _, room := range rooms {
		if dto := FromDomainRoom(room); dto != nil {
			resp.Rooms = append(resp.Rooms, *dto)
		}
	}

	return resp
}
