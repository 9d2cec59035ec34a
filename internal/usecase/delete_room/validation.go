package delete_room

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-HotelReservationService/internal/domain"
)

func validateRequest(req *Request) error {
	if strings.TrimSpace(req.RoomID) == "" {
		return fmt.Errorf("%w: roomId is required", ErrInvalidInput)
	}
	if !req.Principal.Can(domain.PermRoomDelete) {
		return fmt.Errorf("%w: role %s cannot delete rooms", ErrForbidden, req.Principal.Role)
	}
	return nil
}
