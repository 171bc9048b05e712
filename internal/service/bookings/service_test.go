package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loungecreations-byte/Booking-system-pro-sub001/internal/domain"
	bookingRepo "github.com/loungecreations-byte/Booking-system-pro-sub001/internal/infra/storage/booking"
	"github.com/loungecreations-byte/Booking-system-pro-sub001/internal/integrations/customerservice"
	"github.com/loungecreations-byte/Booking-system-pro-sub001/internal/service/bookings/models"
)

var testNow = time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
	nextID   int64

	createErr  error
	confirmErr error
	cancelErr  error
	extendErr  error

	cancelledReason string
	extendedTo      time.Time
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[int64]*domain.Booking), nextID: 1}
}

func (r *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	created := *b
	created.ID = r.nextID
	created.CreatedAt = testNow
	created.UpdatedAt = testNow
	r.nextID++
	r.bookings[created.ID] = &created
	return &created, nil
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) Confirm(_ context.Context, id int64) error {
	if r.confirmErr != nil {
		return r.confirmErr
	}
	b, ok := r.bookings[id]
	if !ok || b.Status != domain.StatusDraft {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = domain.StatusConfirmed
	b.HoldExpiresAt = nil
	return nil
}

func (r *fakeBookingRepo) Cancel(_ context.Context, id int64, reason string, cancelledAt time.Time) error {
	if r.cancelErr != nil {
		return r.cancelErr
	}
	b, ok := r.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	b.Status = domain.StatusCancelled
	b.CancellationReason = &reason
	b.CancelledAt = &cancelledAt
	r.cancelledReason = reason
	return nil
}

func (r *fakeBookingRepo) ExtendHold(_ context.Context, id int64, holdExpiresAt time.Time) error {
	if r.extendErr != nil {
		return r.extendErr
	}
	b, ok := r.bookings[id]
	if !ok || b.Status != domain.StatusDraft {
		return bookingRepo.ErrBookingNotFound
	}
	b.HoldExpiresAt = &holdExpiresAt
	r.extendedTo = holdExpiresAt
	return nil
}

type fakeAssignmentRepo struct {
	voidedBookingIDs []int64
	err              error
}

func (r *fakeAssignmentRepo) VoidByBookingID(_ context.Context, bookingID int64, _ time.Time) error {
	if r.err != nil {
		return r.err
	}
	r.voidedBookingIDs = append(r.voidedBookingIDs, bookingID)
	return nil
}

type fakeCustomerClient struct {
	customer *customerservice.Customer
	err      error
}

func (c *fakeCustomerClient) GetCustomerWithGracefulDegradation(_ context.Context, _ int64) (*customerservice.Customer, error) {
	return c.customer, c.err
}

type fakeTxManager struct {
	err error
}

func (m *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.err != nil {
		return m.err
	}
	return fn(ctx)
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}

func (m *fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.Do(ctx, fn)
}

type fixedTimeProvider struct{ now time.Time }

func (p fixedTimeProvider) Now() time.Time { return p.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type testEnv struct {
	bookingRepo    *fakeBookingRepo
	assignmentRepo *fakeAssignmentRepo
	customerClient *fakeCustomerClient
	service        *Service
}

func newTestEnv() *testEnv {
	env := &testEnv{
		bookingRepo:    newFakeBookingRepo(),
		assignmentRepo: &fakeAssignmentRepo{},
		customerClient: &fakeCustomerClient{customer: &customerservice.Customer{ID: 7, Status: "active"}},
	}
	env.service = NewService(
		env.bookingRepo,
		env.assignmentRepo,
		env.customerClient,
		&fakeTxManager{},
		fixedTimeProvider{now: testNow},
		nopLogger{},
		30,
	)
	return env
}

func (env *testEnv) seedBooking(b *domain.Booking) *domain.Booking {
	created, _ := env.bookingRepo.Create(context.Background(), b)
	return created
}

func draftBooking(customerID int64) *domain.Booking {
	hold := testNow.Add(30 * time.Minute)
	return &domain.Booking{
		CustomerID:    customerID,
		Status:        domain.StatusDraft,
		Start:         testNow.Add(24 * time.Hour),
		End:           testNow.Add(25 * time.Hour),
		HoldExpiresAt: &hold,
	}
}

func TestCreateDraft_Success(t *testing.T) {
	env := newTestEnv()

	resp, err := env.service.CreateDraft(context.Background(), &models.CreateDraftRequest{
		CustomerID: 7,
		Start:      testNow.Add(24 * time.Hour),
		End:        testNow.Add(25 * time.Hour),
	})

	require.NoError(t, err)
	assert.Equal(t, "draft", resp.Status)
	require.NotNil(t, resp.HoldExpiresAt)
	assert.Equal(t, testNow.Add(30*time.Minute), *resp.HoldExpiresAt)
}

func TestCreateDraft_InvalidWindow(t *testing.T) {
	env := newTestEnv()

	resp, err := env.service.CreateDraft(context.Background(), &models.CreateDraftRequest{
		CustomerID: 7,
		Start:      testNow.Add(25 * time.Hour),
		End:        testNow.Add(24 * time.Hour),
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCreateDraft_CustomerNotFound(t *testing.T) {
	env := newTestEnv()
	env.customerClient.customer = nil
	env.customerClient.err = customerservice.ErrCustomerNotFound

	resp, err := env.service.CreateDraft(context.Background(), &models.CreateDraftRequest{
		CustomerID: 7,
		Start:      testNow.Add(24 * time.Hour),
		End:        testNow.Add(25 * time.Hour),
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestCreateDraft_BlockedCustomer(t *testing.T) {
	env := newTestEnv()
	env.customerClient.customer = &customerservice.Customer{ID: 7, Status: "blocked"}

	resp, err := env.service.CreateDraft(context.Background(), &models.CreateDraftRequest{
		CustomerID: 7,
		Start:      testNow.Add(24 * time.Hour),
		End:        testNow.Add(25 * time.Hour),
	})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrCustomerBlocked)
}

func TestCreateDraft_ProceedsWhenCustomerServiceDegraded(t *testing.T) {
	env := newTestEnv()
	env.customerClient.customer = nil
	env.customerClient.err = customerservice.ErrServiceDegraded

	resp, err := env.service.CreateDraft(context.Background(), &models.CreateDraftRequest{
		CustomerID: 7,
		Start:      testNow.Add(24 * time.Hour),
		End:        testNow.Add(25 * time.Hour),
	})

	require.NoError(t, err)
	assert.Equal(t, "draft", resp.Status)
}

func TestConfirm_Success(t *testing.T) {
	env := newTestEnv()
	created := env.seedBooking(draftBooking(7))

	resp, err := env.service.Confirm(context.Background(), created.ID, 7)

	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Nil(t, resp.HoldExpiresAt)
}

func TestConfirm_ExpiredHold(t *testing.T) {
	env := newTestEnv()
	b := draftBooking(7)
	expired := testNow.Add(-time.Minute)
	b.HoldExpiresAt = &expired
	created := env.seedBooking(b)

	resp, err := env.service.Confirm(context.Background(), created.ID, 7)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrHoldExpired)
}

func TestConfirm_NotDraft(t *testing.T) {
	env := newTestEnv()
	b := draftBooking(7)
	b.Status = domain.StatusConfirmed
	b.HoldExpiresAt = nil
	created := env.seedBooking(b)

	resp, err := env.service.Confirm(context.Background(), created.ID, 7)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrNotDraft)
}

func TestConfirm_WrongOwner(t *testing.T) {
	env := newTestEnv()
	created := env.seedBooking(draftBooking(7))

	resp, err := env.service.Confirm(context.Background(), created.ID, 8)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestConfirm_NotFound(t *testing.T) {
	env := newTestEnv()

	resp, err := env.service.Confirm(context.Background(), 999, 7)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel_VoidsAssignmentsAtomically(t *testing.T) {
	env := newTestEnv()
	created := env.seedBooking(draftBooking(7))

	err := env.service.Cancel(context.Background(), created.ID, &models.CancelBookingRequest{
		CustomerID:         7,
		CancellationReason: "changed plans",
	})

	require.NoError(t, err)
	assert.Equal(t, []int64{created.ID}, env.assignmentRepo.voidedBookingIDs)
	assert.Equal(t, "changed plans", env.bookingRepo.cancelledReason)

	stored := env.bookingRepo.bookings[created.ID]
	assert.Equal(t, domain.StatusCancelled, stored.Status)
	require.NotNil(t, stored.CancelledAt)
	assert.Equal(t, testNow, *stored.CancelledAt)
}

func TestCancel_RepeatedCancelIsNoOp(t *testing.T) {
	env := newTestEnv()
	b := draftBooking(7)
	b.Status = domain.StatusCancelled
	created := env.seedBooking(b)

	err := env.service.Cancel(context.Background(), created.ID, &models.CancelBookingRequest{CustomerID: 7})

	require.NoError(t, err)
	assert.Empty(t, env.assignmentRepo.voidedBookingIDs)
}

func TestCancel_TransactionFailure(t *testing.T) {
	env := newTestEnv()
	created := env.seedBooking(draftBooking(7))
	env.assignmentRepo.err = errors.New("connection reset")

	err := env.service.Cancel(context.Background(), created.ID, &models.CancelBookingRequest{CustomerID: 7})

	assert.ErrorIs(t, err, ErrInternal)
}

func TestGetByID_OwnerOnly(t *testing.T) {
	env := newTestEnv()
	created := env.seedBooking(draftBooking(7))

	resp, err := env.service.GetByID(context.Background(), created.ID, 7)
	require.NoError(t, err)
	assert.Equal(t, created.ID, resp.ID)

	resp, err = env.service.GetByID(context.Background(), created.ID, 8)
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExtendHold_Success(t *testing.T) {
	env := newTestEnv()
	created := env.seedBooking(draftBooking(7))

	resp, err := env.service.ExtendHold(context.Background(), created.ID, 7)

	require.NoError(t, err)
	require.NotNil(t, resp.HoldExpiresAt)
	assert.Equal(t, testNow.Add(30*time.Minute), *resp.HoldExpiresAt)
	assert.Equal(t, testNow.Add(30*time.Minute), env.bookingRepo.extendedTo)
}

func TestExtendHold_NotDraft(t *testing.T) {
	env := newTestEnv()
	b := draftBooking(7)
	b.Status = domain.StatusConfirmed
	created := env.seedBooking(b)

	resp, err := env.service.ExtendHold(context.Background(), created.ID, 7)

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrNotDraft)
}
