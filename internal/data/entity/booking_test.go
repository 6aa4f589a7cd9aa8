package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingStatusCanTransitionTo(t *testing.T) {
	cases := []struct {
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{BookingStatusPending, BookingStatusConfirmed, true},
		{BookingStatusPending, BookingStatusCancelled, true},
		{BookingStatusPending, BookingStatusInProgress, false},
		{BookingStatusPending, BookingStatusCompleted, false},
		{BookingStatusConfirmed, BookingStatusInProgress, true},
		{BookingStatusConfirmed, BookingStatusCompleted, true},
		{BookingStatusConfirmed, BookingStatusCancelled, true},
		{BookingStatusConfirmed, BookingStatusPending, false},
		{BookingStatusInProgress, BookingStatusCompleted, true},
		{BookingStatusInProgress, BookingStatusCancelled, true},
		{BookingStatusCompleted, BookingStatusCancelled, false},
		{BookingStatusCompleted, BookingStatusPending, false},
		{BookingStatusCancelled, BookingStatusConfirmed, false},
		{BookingStatusCancelled, BookingStatusPending, false},
	}

	for _, c := range cases {
		assert.Equal(t, c.allowed, c.from.CanTransitionTo(c.to),
			"%s -> %s", c.from, c.to)
	}
}

func TestBookingStatusTerminal(t *testing.T) {
	assert.True(t, BookingStatusCompleted.Terminal())
	assert.True(t, BookingStatusCancelled.Terminal())
	assert.False(t, BookingStatusPending.Terminal())
	assert.False(t, BookingStatusConfirmed.Terminal())
	assert.False(t, BookingStatusInProgress.Terminal())
}

func TestBookingStatusValid(t *testing.T) {
	assert.True(t, BookingStatusInProgress.Valid())
	assert.False(t, BookingStatus("expired").Valid())
	assert.False(t, BookingStatus("").Valid())
}

func TestBookingTransitionStampsTimestamps(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	b := &Booking{Status: BookingStatusPending}

	require.True(t, b.Transition(BookingStatusConfirmed, now))
	require.NotNil(t, b.ConfirmedAt)
	assert.Equal(t, now, *b.ConfirmedAt)
	assert.Nil(t, b.CompletedAt)
	assert.Nil(t, b.CancelledAt)

	later := now.Add(2 * time.Hour)
	require.True(t, b.Transition(BookingStatusInProgress, later))
	require.NotNil(t, b.StartedAt)
	assert.Equal(t, later, *b.StartedAt)

	done := later.Add(3 * time.Hour)
	require.True(t, b.Transition(BookingStatusCompleted, done))
	require.NotNil(t, b.CompletedAt)
	assert.Equal(t, done, *b.CompletedAt)

	// Terminal: nothing moves out of completed.
	assert.False(t, b.Transition(BookingStatusCancelled, done.Add(time.Hour)))
	assert.Equal(t, BookingStatusCompleted, b.Status)
	assert.Nil(t, b.CancelledAt)
}

func TestBookingTransitionDoesNotOverwriteTimestamp(t *testing.T) {
	first := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	b := &Booking{Status: BookingStatusPending, ConfirmedAt: &first}

	// Already-set timestamp survives the transition.
	require.True(t, b.Transition(BookingStatusConfirmed, first.Add(time.Hour)))
	assert.Equal(t, first, *b.ConfirmedAt)
}

func TestBookingTransitionCancelFromAnyNonTerminal(t *testing.T) {
	now := time.Now()

	for _, from := range []BookingStatus{BookingStatusPending, BookingStatusConfirmed, BookingStatusInProgress} {
		b := &Booking{Status: from}
		require.True(t, b.Transition(BookingStatusCancelled, now), "from %s", from)
		assert.Equal(t, BookingStatusCancelled, b.Status)
		require.NotNil(t, b.CancelledAt)
	}
}
