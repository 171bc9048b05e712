package assignments

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loungecreations-byte/Booking-system-pro-sub001/internal/domain"
	assignmentRepo "github.com/loungecreations-byte/Booking-system-pro-sub001/internal/infra/storage/assignment"
	"github.com/loungecreations-byte/Booking-system-pro-sub001/internal/service/assignments/models"
	"github.com/loungecreations-byte/Booking-system-pro-sub001/pkg/ptr"
)

type fakeAssignmentRepo struct {
	byID        map[int64]*domain.Assignment
	filtered    []*domain.Assignment
	filterErr   error
	gotFilter   domain.AssignmentsFilter
	filterCalls int
}

func (r *fakeAssignmentRepo) GetByID(_ context.Context, id int64) (*domain.Assignment, error) {
	a, ok := r.byID[id]
	if !ok {
		return nil, assignmentRepo.ErrAssignmentNotFound
	}
	return a, nil
}

func (r *fakeAssignmentRepo) GetWithFilter(_ context.Context, filter domain.AssignmentsFilter) ([]*domain.Assignment, error) {
	r.filterCalls++
	r.gotFilter = filter
	if r.filterErr != nil {
		return nil, r.filterErr
	}
	return r.filtered, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func sampleAssignment(id int64) *domain.Assignment {
	return &domain.Assignment{
		ID:               id,
		BookingID:        100 + id,
		ResourceID:       1,
		Start:            time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC),
		End:              time.Date(2024, 6, 3, 11, 0, 0, 0, time.UTC),
		ParticipantCount: 2,
		Role:             domain.RolePrimary,
		Status:           domain.AssignmentActive,
	}
}

func TestGetByID_Success(t *testing.T) {
	repo := &fakeAssignmentRepo{byID: map[int64]*domain.Assignment{42: sampleAssignment(42)}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "primary", resp.Role)
	assert.Equal(t, "active", resp.Status)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(&fakeAssignmentRepo{byID: map[int64]*domain.Assignment{}}, nopLogger{})

	resp, err := svc.GetByID(context.Background(), 42)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrAssignmentNotFound)
}

func TestList_PassesFilterThrough(t *testing.T) {
	repo := &fakeAssignmentRepo{filtered: []*domain.Assignment{sampleAssignment(1), sampleAssignment(2)}}
	svc := NewService(repo, nopLogger{})

	from := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC)
	resp, err := svc.List(context.Background(), &models.ListAssignmentsRequest{
		ResourceID:    ptr.Ptr(int64(1)),
		From:          &from,
		To:            &to,
		IncludeVoided: true,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Len(t, resp.Assignments, 2)
	require.NotNil(t, repo.gotFilter.ResourceID)
	assert.Equal(t, int64(1), *repo.gotFilter.ResourceID)
	assert.True(t, repo.gotFilter.IncludeVoided)
}

func TestList_InvalidDateRange(t *testing.T) {
	repo := &fakeAssignmentRepo{}
	svc := NewService(repo, nopLogger{})

	from := time.Date(2024, 6, 4, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC)
	resp, err := svc.List(context.Background(), &models.ListAssignmentsRequest{From: &from, To: &to})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, repo.filterCalls)
}

func TestList_RepositoryFailure(t *testing.T) {
	repo := &fakeAssignmentRepo{filterErr: errors.New("connection reset")}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.List(context.Background(), &models.ListAssignmentsRequest{})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInternal)
}
