package change_reservation_status

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HotelReservationService/internal/domain"
)

func validateID(id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: reservation id is required", ErrInvalidInput)
	}
	return nil
}

// parseTarget разбирает целевой статус (регистр не важен)
func parseTarget(s string) (domain.ReservationStatus, error) {
	status, err := domain.ParseReservationStatus(strings.ToUpper(strings.TrimSpace(s)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return status, nil
}

// checkAccess проверяет права на переход.
// Персонал с правом управления может любой допустимый переход,
// клиент - только отмену или оплату собственного бронирования.
func checkAccess(p domain.Principal, res *domain.Reservation, target domain.ReservationStatus) error {
	if p.Can(domain.PermReservationManage) {
		return nil
	}

	var own domain.Permission
	switch target {
	case domain.StatusCanceled:
		own = domain.PermReservationCancelOwn
	case domain.StatusPaid:
		own = domain.PermReservationPayOwn
	default:
		return fmt.Errorf("%w: role %s cannot set status %s", ErrForbidden, p.Role, target)
	}

	if !p.Can(own) || !res.IsOwnedBy(p.ID) {
		return fmt.Errorf("%w: user %s cannot change reservation %s", ErrForbidden, p.ID, res.ID)
	}
	return nil
}
