package domain

import "time"

// Room represents a hotel room in the catalog
type Room struct {
	ID            string
	Name          string
	Capacity      int
	PricePerNight float64
	IsActive      bool
	Description   *string
	ImageURL      *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CanHost returns true if the room fits the given number of guests
func (r *Room) CanHost(guests int) bool {
	return guests >= MinGuestsCount && guests <= r.Capacity
}

// RoomFilter фильтр каталога номеров
type RoomFilter struct {
	Query      string // Подстрока названия (без учета регистра), пустая - без фильтра
	OnlyActive bool
}

// RoomPatch частичное обновление номера: nil поле не меняется
type RoomPatch struct {
	Name          *string
	Capacity      *int
	PricePerNight *float64
	IsActive      *bool
	Description   *string
	ImageURL      *string
}

// IsEmpty returns true if the patch changes nothing
func (p *RoomPatch) IsEmpty() bool {
	return p.Name == nil && p.Capacity == nil && p.PricePerNight == nil &&
		p.IsActive == nil && p.Description == nil && p.ImageURL == nil
}

// OnlyTogglesActive returns true if the patch touches isActive and nothing else
func (p *RoomPatch) OnlyTogglesActive() bool {
	return p.IsActive != nil && p.Name == nil && p.Capacity == nil &&
		p.PricePerNight == nil && p.Description == nil && p.ImageURL == nil
}

// Apply применяет изменения к номеру
func (p *RoomPatch) Apply(r *Room) {
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.Capacity != nil {
		r.Capacity = *p.Capacity
	}
	if p.PricePerNight != nil {
		r.PricePerNight = *p.PricePerNight
	}
	if p.IsActive != nil {
		r.IsActive = *p.IsActive
	}
	if p.Description != nil {
		r.Description = p.Description
	}
	if p.ImageURL != nil {
		r.ImageURL = p.ImageURL
	}
}
