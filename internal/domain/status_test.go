package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransition_Matrix(t *testing.T) {
	allowed := map[ReservationStatus][]ReservationStatus{
		StatusPending:    {StatusPaid, StatusConfirmed, StatusCanceled},
		StatusPaid:       {StatusConfirmed, StatusCheckedIn, StatusCanceled},
		StatusConfirmed:  {StatusCheckedIn, StatusCanceled},
		StatusCheckedIn:  {StatusCheckedOut},
		StatusCheckedOut: {},
		StatusCanceled:   {},
	}

	for _, from := range AllStatuses {
		for _, to := range AllStatuses {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}

			err := Transition(from, to)
			if want {
				assert.NoError(t, err, "%s → %s must be allowed", from, to)
				continue
			}

			require.Error(t, err, "%s → %s must be rejected", from, to)
			assert.ErrorIs(t, err, ErrInvalidTransition)

			var te *InvalidTransitionError
			require.True(t, errors.As(err, &te))
			assert.Equal(t, from, te.From)
			assert.Equal(t, to, te.To)
			assert.Contains(t, err.Error(), string(from)+" → "+string(to))
		}
	}
}

func TestTransition_UnknownStatus(t *testing.T) {
	assert.ErrorIs(t, Transition("ARCHIVED", StatusCanceled), ErrInvalidTransition)
	assert.ErrorIs(t, Transition(StatusPending, "ARCHIVED"), ErrInvalidTransition)
}

func TestPendingToCheckedInRequiresConfirmation(t *testing.T) {
	assert.ErrorIs(t, Transition(StatusPending, StatusCheckedIn), ErrInvalidTransition)

	require.NoError(t, Transition(StatusPending, StatusConfirmed))
	require.NoError(t, Transition(StatusConfirmed, StatusCheckedIn))
}

func TestReservationStatus_Properties(t *testing.T) {
	assert.True(t, StatusPending.IsBlocking())
	assert.True(t, StatusPaid.IsBlocking())
	assert.True(t, StatusConfirmed.IsBlocking())
	assert.True(t, StatusCheckedIn.IsBlocking())
	assert.False(t, StatusCheckedOut.IsBlocking())
	assert.False(t, StatusCanceled.IsBlocking())

	assert.True(t, StatusConfirmed.CanTransitionTo(StatusCheckedIn))
	assert.False(t, StatusCheckedOut.CanTransitionTo(StatusCanceled))
}

func TestParseReservationStatus(t *testing.T) {
	for _, s := range AllStatuses {
		got, err := ParseReservationStatus(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := ParseReservationStatus("pending")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestBlockingStatusStrings(t *testing.T) {
	assert.Equal(t, []string{"PENDING", "PAID", "CONFIRMED", "CHECKED_IN"}, BlockingStatusStrings())
}
