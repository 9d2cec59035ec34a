package create_reservation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-HotelReservationService/internal/domain"
)

var validate = validator.New()

// validateRequest проверяет данные запроса до обращения к БД
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.RoomID) == "" {
		return fmt.Errorf("%w: roomId is required", ErrInvalidInput)
	}

	if !domain.ValidRange(req.CheckIn, req.CheckOut) {
		return fmt.Errorf("%w: checkIn must be before checkOut", ErrInvalidInput)
	}

	if req.Guests < domain.MinGuestsCount {
		return fmt.Errorf("%w: guests must be at least %d", ErrInvalidInput, domain.MinGuestsCount)
	}

	return validateGuest(req.Guest)
}

// validateGuest проверяет контактные данные гостя
func validateGuest(g domain.GuestInfo) error {
	if len([]rune(strings.TrimSpace(g.Name))) < domain.MinGuestNameLength {
		return fmt.Errorf("%w: guest name must be at least %d characters", ErrInvalidInput, domain.MinGuestNameLength)
	}

	if err := validate.Var(strings.TrimSpace(g.Email), "required,email"); err != nil {
		return fmt.Errorf("%w: invalid guest email", ErrInvalidInput)
	}

	if len(strings.TrimSpace(g.Phone)) < domain.MinGuestPhoneLength {
		return fmt.Errorf("%w: guest phone must be at least %d characters", ErrInvalidInput, domain.MinGuestPhoneLength)
	}

	return nil
}

// validateCapacity проверяет, что гости помещаются в номер
func validateCapacity(room *domain.Room, guests int) error {
	if !room.CanHost(guests) {
		return fmt.Errorf("%w: room %s fits at most %d guests", ErrInvalidInput, room.ID, room.Capacity)
	}
	return nil
}
