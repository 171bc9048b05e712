package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBooking_CountsTowardCapacity(t *testing.T) {
	now := time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)
	future := now.Add(30 * time.Minute)
	past := now.Add(-time.Minute)

	tests := []struct {
		name    string
		booking Booking
		want    bool
	}{
		{"confirmed always counts", Booking{Status: StatusConfirmed}, true},
		{"draft with live hold counts", Booking{Status: StatusDraft, HoldExpiresAt: &future}, true},
		{"draft with expired hold does not count", Booking{Status: StatusDraft, HoldExpiresAt: &past}, false},
		{"draft with hold expiring right now does not count", Booking{Status: StatusDraft, HoldExpiresAt: &now}, false},
		{"draft without hold does not count", Booking{Status: StatusDraft}, false},
		{"cancelled never counts", Booking{Status: StatusCancelled, HoldExpiresAt: &future}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.booking.CountsTowardCapacity(now))
		})
	}
}

func TestBooking_Transitions(t *testing.T) {
	draft := Booking{Status: StatusDraft}
	confirmed := Booking{Status: StatusConfirmed}
	cancelled := Booking{Status: StatusCancelled}

	assert.True(t, draft.CanBeConfirmed())
	assert.False(t, confirmed.CanBeConfirmed())
	assert.False(t, cancelled.CanBeConfirmed())

	assert.True(t, draft.CanBeCancelled())
	assert.True(t, confirmed.CanBeCancelled())
	assert.False(t, cancelled.CanBeCancelled())

	assert.False(t, draft.IsCancelled())
	assert.True(t, cancelled.IsCancelled())
}
