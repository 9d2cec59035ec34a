package domain

// Business validation constants
const (
	MinRoomCapacity     = 1
	MinRoomNameLength   = 2
	MinGuestNameLength  = 2
	MinGuestPhoneLength = 6
	MinGuestsCount      = 1
)

// Listing defaults
const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// Reservation code constants
const (
	ReservationCodePrefix = "H"
	ReservationCodeDigits = 4
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
