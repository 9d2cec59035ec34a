package domain

import (
	"errors"
	"fmt"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending    ReservationStatus = "PENDING"
	StatusPaid       ReservationStatus = "PAID"
	StatusConfirmed  ReservationStatus = "CONFIRMED"
	StatusCheckedIn  ReservationStatus = "CHECKED_IN"
	StatusCheckedOut ReservationStatus = "CHECKED_OUT"
	StatusCanceled   ReservationStatus = "CANCELED"
)

var (
	// ErrInvalidTransition matches every *InvalidTransitionError
	ErrInvalidTransition = errors.New("invalid reservation status transition")

	// ErrUnknownStatus возвращается при разборе неизвестного статуса
	ErrUnknownStatus = errors.New("unknown reservation status")
)

// reservationTransitions is the only status table in the service.
// CHECKED_OUT and CANCELED are terminal.
var reservationTransitions = map[ReservationStatus][]ReservationStatus{
	StatusPending:    {StatusPaid, StatusConfirmed, StatusCanceled},
	StatusPaid:       {StatusConfirmed, StatusCheckedIn, StatusCanceled},
	StatusConfirmed:  {StatusCheckedIn, StatusCanceled},
	StatusCheckedIn:  {StatusCheckedOut},
	StatusCheckedOut: {},
	StatusCanceled:   {},
}

// BlockingStatuses statuses that hold the room for their date range
var BlockingStatuses = []ReservationStatus{
	StatusPending,
	StatusPaid,
	StatusConfirmed,
	StatusCheckedIn,
}

// AllStatuses every known status in lifecycle order
var AllStatuses = []ReservationStatus{
	StatusPending,
	StatusPaid,
	StatusConfirmed,
	StatusCheckedIn,
	StatusCheckedOut,
	StatusCanceled,
}

// InvalidTransitionError identifies the rejected from → to pair
type InvalidTransitionError struct {
	From ReservationStatus
	To   ReservationStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid reservation status transition %s → %s", e.From, e.To)
}

// Is makes errors.Is(err, ErrInvalidTransition) work
func (e *InvalidTransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}

// IsValid returns true if the status is a recognized reservation status
func (s ReservationStatus) IsValid() bool {
	_, ok := reservationTransitions[s]
	return ok
}

// IsBlocking returns true if the status holds the room
func (s ReservationStatus) IsBlocking() bool {
	for _, b := range BlockingStatuses {
		if s == b {
			return true
		}
	}
	return false
}

// CanTransitionTo returns true if the table allows s → target
func (s ReservationStatus) CanTransitionTo(target ReservationStatus) bool {
	for _, allowed := range reservationTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

func (s ReservationStatus) String() string {
	return string(s)
}

// Transition validates from → to against the table
func Transition(from, to ReservationStatus) error {
	if !from.CanTransitionTo(to) {
		return &InvalidTransitionError{From: from, To: to}
	}
	return nil
}

// ParseReservationStatus converts a string to a ReservationStatus
func ParseReservationStatus(s string) (ReservationStatus, error) {
	status := ReservationStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}
	return status, nil
}

// BlockingStatusStrings blocking statuses as strings for SQL filters
func BlockingStatusStrings() []string {
	out := make([]string, len(BlockingStatuses))
	for i, s := range BlockingStatuses {
		out[i] = string(s)
	}
	return out
}
