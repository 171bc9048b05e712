package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func hour(h int) time.Time {
	return time.Date(2024, 6, 3, h, 0, 0, 0, time.UTC)
}

func TestWindow_IsValid(t *testing.T) {
	assert.True(t, NewWindow(hour(10), hour(11)).IsValid())
	assert.False(t, NewWindow(hour(10), hour(10)).IsValid())
	assert.False(t, NewWindow(hour(11), hour(10)).IsValid())
}

func TestWindow_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Window
		want bool
	}{
		{"identical", NewWindow(hour(10), hour(11)), NewWindow(hour(10), hour(11)), true},
		{"partial", NewWindow(hour(10), hour(12)), NewWindow(hour(11), hour(13)), true},
		{"contained", NewWindow(hour(9), hour(13)), NewWindow(hour(10), hour(11)), true},
		{"boundary touch is not overlap", NewWindow(hour(10), hour(11)), NewWindow(hour(11), hour(12)), false},
		{"disjoint", NewWindow(hour(9), hour(10)), NewWindow(hour(11), hour(12)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestWindow_Contains(t *testing.T) {
	outer := NewWindow(hour(9), hour(13))

	assert.True(t, outer.Contains(NewWindow(hour(10), hour(11))))
	assert.True(t, outer.Contains(outer))
	assert.False(t, outer.Contains(NewWindow(hour(8), hour(10))))
	assert.False(t, outer.Contains(NewWindow(hour(12), hour(14))))
}

func TestWindow_Duration(t *testing.T) {
	assert.Equal(t, 2*time.Hour, NewWindow(hour(10), hour(12)).Duration())
}
