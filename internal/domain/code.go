package domain

import (
	"fmt"
	"time"
)

// FormatReservationCode returns H<year>-<seq>, seq zero-padded to four digits
func FormatReservationCode(year int, seq int64) string {
	return fmt.Sprintf("%s%d-%0*d", ReservationCodePrefix, year, ReservationCodeDigits, seq)
}

// CodeYearBounds returns [Jan 1 00:00 UTC of year, Jan 1 00:00 UTC of year+1)
func CodeYearBounds(year int) (time.Time, time.Time) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(1, 0, 0)
}
