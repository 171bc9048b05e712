package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loungecreations-byte/Booking-system-pro-sub001/internal/domain"
)

type fakeAssignmentRepo struct {
	assignments []*domain.Assignment
	err         error

	gotResourceID int64
	gotWindow     domain.Window
}

func (r *fakeAssignmentRepo) GetOverlapping(_ context.Context, resourceID int64, window domain.Window, _ time.Time) ([]*domain.Assignment, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.gotResourceID = resourceID
	r.gotWindow = window
	return r.assignments, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func at(hour int) time.Time {
	return time.Date(2024, 6, 3, hour, 0, 0, 0, time.UTC)
}

func assignment(id int64, startHour, endHour, participants int) *domain.Assignment {
	return &domain.Assignment{
		ID:               id,
		BookingID:        100 + id,
		ResourceID:       1,
		Start:            at(startHour),
		End:              at(endHour),
		ParticipantCount: participants,
		Role:             domain.RolePrimary,
		Status:           domain.AssignmentActive,
	}
}

func TestOverlapping_PassesWindowToRepository(t *testing.T) {
	repo := &fakeAssignmentRepo{assignments: []*domain.Assignment{
		assignment(1, 10, 11, 2),
		assignment(2, 10, 12, 1),
	}}
	svc := NewService(repo, nopLogger{})

	window := domain.NewWindow(at(10), at(12))
	got, err := svc.Overlapping(context.Background(), 1, window)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), repo.gotResourceID)
	assert.Equal(t, window, repo.gotWindow)
	// Порядок репозитория сохраняется: start ASC, id ASC
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)
}

func TestOverlapping_InvalidWindow(t *testing.T) {
	svc := NewService(&fakeAssignmentRepo{}, nopLogger{})

	tests := []struct {
		name   string
		window domain.Window
	}{
		{"inverted", domain.NewWindow(at(12), at(10))},
		{"empty", domain.NewWindow(at(10), at(10))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Overlapping(context.Background(), 1, tt.window)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, ErrInvalidWindow)
		})
	}
}

func TestOverlapping_RepositoryFailure(t *testing.T) {
	repo := &fakeAssignmentRepo{err: errors.New("connection reset")}
	svc := NewService(repo, nopLogger{})

	got, err := svc.Overlapping(context.Background(), 1, domain.NewWindow(at(10), at(12)))

	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestCapacityUsed_SumsParticipants(t *testing.T) {
	repo := &fakeAssignmentRepo{assignments: []*domain.Assignment{
		assignment(1, 10, 11, 2),
		assignment(2, 10, 12, 3),
		assignment(3, 11, 12, 1),
	}}
	svc := NewService(repo, nopLogger{})

	used, err := svc.CapacityUsed(context.Background(), 1, domain.NewWindow(at(10), at(12)))

	require.NoError(t, err)
	assert.Equal(t, 6, used)
}

func TestCapacityUsed_EmptyWindow(t *testing.T) {
	svc := NewService(&fakeAssignmentRepo{}, nopLogger{})

	used, err := svc.CapacityUsed(context.Background(), 1, domain.NewWindow(at(10), at(12)))

	require.NoError(t, err)
	assert.Equal(t, 0, used)
}

func TestCapacityUsed_PropagatesInvalidWindow(t *testing.T) {
	svc := NewService(&fakeAssignmentRepo{}, nopLogger{})

	used, err := svc.CapacityUsed(context.Background(), 1, domain.NewWindow(at(12), at(10)))

	assert.Zero(t, used)
	assert.ErrorIs(t, err, ErrInvalidWindow)
}
