package rooms

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HotelReservationService/internal/domain"
)

// validateRoom проверяет инварианты номера после создания или изменения
func validateRoom(r *domain.Room) error {
	if len([]rune(strings.TrimSpace(r.Name))) < domain.MinRoomNameLength {
		return fmt.Errorf("%w: name must be at least %d characters", ErrInvalidInput, domain.MinRoomNameLength)
	}
	if r.Capacity < domain.MinRoomCapacity {
		return fmt.Errorf("%w: capacity must be at least %d", ErrInvalidInput, domain.MinRoomCapacity)
	}
	if r.PricePerNight < 0 {
		return fmt.Errorf("%w: pricePerNight must not be negative", ErrInvalidInput)
	}
	return nil
}

// checkPatchAccess администратор меняет любые поля, оператор - только isActive
func checkPatchAccess(p domain.Principal, patch *domain.RoomPatch) error {
	if p.Can(domain.PermRoomUpdate) {
		return nil
	}
	if p.Can(domain.PermRoomToggleActive) && patch.OnlyTogglesActive() {
		return nil
	}
	return fmt.Errorf("%w: role %s cannot apply this change", ErrAccessDenied, p.Role)
}
