package search_availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-HotelReservationService/internal/domain"
)

func validateRange(start, end time.Time) error {
	if !domain.ValidRange(start, end) {
		return fmt.Errorf("%w: start=%s end=%s", ErrInvalidRange, start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return nil
}
