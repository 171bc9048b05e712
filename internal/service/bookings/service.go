package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/loungecreations-byte/Booking-system-pro-sub001/internal/domain"
	bookingRepo "github.com/loungecreations-byte/Booking-system-pro-sub001/internal/infra/storage/booking"
	customerClient "github.com/loungecreations-byte/Booking-system-pro-sub001/internal/integrations/customerservice"
	"github.com/loungecreations-byte/Booking-system-pro-sub001/internal/service/bookings/models"
)

// Service сервис для работы с жизненным циклом бронирований
//
// Черновик удерживает вместимость до hold_expires_at; подтверждение
// снимает hold и делает удержание бессрочным; отмена аннулирует
// бронирование вместе со всеми его назначениями в одной транзакции
type Service struct {
	bookingRepo      BookingRepository
	assignmentRepo   AssignmentRepository
	customerClient   CustomerServiceClient
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
	draftHoldMinutes int
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	assignmentRepo AssignmentRepository,
	customerClient CustomerServiceClient,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
	draftHoldMinutes int,
) *Service {
	if draftHoldMinutes <= 0 {
		draftHoldMinutes = domain.DefaultDraftHoldMinutes
	}
	return &Service{
		bookingRepo:      bookingRepo,
		assignmentRepo:   assignmentRepo,
		customerClient:   customerClient,
		txManager:        txManager,
		timeProvider:     timeProvider,
		logger:           logger,
		draftHoldMinutes: draftHoldMinutes,
	}
}

// CreateDraft создает черновик бронирования с hold на вместимость
// Проверяет клиента через CustomerService с graceful degradation:
// при недоступности сервиса черновик создаётся без проверки
func (s *Service) CreateDraft(ctx context.Context, req *models.CreateDraftRequest) (*models.BookingResponse, error) {
	s.logger.Info("CreateDraft: creating draft for customer=%d, start=%s, end=%s",
		req.CustomerID, req.Start.Format(time.RFC3339), req.End.Format(time.RFC3339))

	if err := req.Validate(); err != nil {
		s.logger.Warn("CreateDraft: invalid request for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// Проверяем клиента через CustomerService
	customer, err := s.customerClient.GetCustomerWithGracefulDegradation(ctx, req.CustomerID)
	if err != nil {
		if errors.Is(err, customerClient.ErrCustomerNotFound) {
			s.logger.Warn("CreateDraft: customer=%d not found", req.CustomerID)
			return nil, ErrCustomerNotFound
		}
		if errors.Is(err, customerClient.ErrServiceDegraded) {
			// CustomerService недоступен - создаём черновик без проверки
			s.logger.Warn("CreateDraft: proceeding without customer check for customer=%d", req.CustomerID)
		} else {
			s.logger.Error("CreateDraft: customer check failed for customer=%d: %v", req.CustomerID, err)
			return nil, fmt.Errorf("%w: CreateDraft - customer check failed: %v", ErrInternal, err)
		}
	}
	if customer != nil && customer.IsBlocked() {
		s.logger.Warn("CreateDraft: customer=%d is blocked", req.CustomerID)
		return nil, ErrCustomerBlocked
	}

	now := s.timeProvider.Now()
	holdExpiresAt := now.Add(time.Duration(s.draftHoldMinutes) * time.Minute)

	booking := &domain.Booking{
		CustomerID:    req.CustomerID,
		Status:        domain.StatusDraft,
		Start:         req.Start,
		End:           req.End,
		HoldExpiresAt: &holdExpiresAt,
	}

	created, err := s.bookingRepo.Create(ctx, booking)
	if err != nil {
		s.logger.Error("CreateDraft: repository error for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: CreateDraft - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateDraft: successfully created draft id=%d, hold expires at %s",
		created.ID, holdExpiresAt.Format(time.RFC3339))
	return models.FromDomainBooking(created), nil
}

// Confirm подтверждает черновик бронирования
// Требует непросроченный hold: истёкший черновик уже не удерживает
// вместимость, и его подтверждение могло бы привести к овербукингу
func (s *Service) Confirm(ctx context.Context, bookingID int64, customerID int64) (*models.BookingResponse, error) {
	s.logger.Info("Confirm: confirming booking id=%d by customer=%d", bookingID, customerID)

	booking, err := s.getOwnedBooking(ctx, bookingID, customerID, "Confirm")
	if err != nil {
		return nil, err
	}

	if !booking.CanBeConfirmed() {
		s.logger.Warn("Confirm: booking id=%d is not a draft, status=%s", bookingID, booking.Status)
		return nil, ErrNotDraft
	}

	now := s.timeProvider.Now()
	if !booking.CountsTowardCapacity(now) {
		s.logger.Warn("Confirm: booking id=%d hold expired at %v", bookingID, booking.HoldExpiresAt)
		return nil, ErrHoldExpired
	}

	if err := s.bookingRepo.Confirm(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			// Статус успел измениться между чтением и обновлением
			s.logger.Warn("Confirm: booking id=%d no longer a draft", bookingID)
			return nil, ErrNotDraft
		}
		s.logger.Error("Confirm: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
	}

	confirmed, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		s.logger.Error("Confirm: failed to re-fetch booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Confirm - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Confirm: successfully confirmed booking id=%d", bookingID)
	return models.FromDomainBooking(confirmed), nil
}

// Cancel отменяет бронирование и аннулирует все его назначения
// Обе записи меняются в одной транзакции, чтобы вместимость
// освобождалась атомарно
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by customer=%d", bookingID, req.CustomerID)

	booking, err := s.getOwnedBooking(ctx, bookingID, req.CustomerID, "Cancel")
	if err != nil {
		return err
	}

	// Повторная отмена - no-op
	if booking.IsCancelled() {
		s.logger.Info("Cancel: booking id=%d already cancelled", bookingID)
		return nil
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	now := s.timeProvider.Now()

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.bookingRepo.Cancel(txCtx, bookingID, req.CancellationReason, now); err != nil {
			return fmt.Errorf("cancel booking: %w", err)
		}
		if err := s.assignmentRepo.VoidByBookingID(txCtx, bookingID, now); err != nil {
			return fmt.Errorf("void assignments: %w", err)
		}
		return nil
	})

	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: transaction failed for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - transaction failed: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d with its assignments", bookingID)
	return nil
}

// GetByID получает бронирование по ID
// Клиент может видеть только своё бронирование
func (s *Service) GetByID(ctx context.Context, bookingID int64, customerID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for customer=%d", bookingID, customerID)

	booking, err := s.getOwnedBooking(ctx, bookingID, customerID, "GetByID")
	if err != nil {
		return nil, err
	}

	return models.FromDomainBooking(booking), nil
}

// ExtendHold продлевает hold черновика (повторный заход клиента в checkout)
func (s *Service) ExtendHold(ctx context.Context, bookingID int64, customerID int64) (*models.BookingResponse, error) {
	s.logger.Info("ExtendHold: extending hold for booking id=%d by customer=%d", bookingID, customerID)

	booking, err := s.getOwnedBooking(ctx, bookingID, customerID, "ExtendHold")
	if err != nil {
		return nil, err
	}

	if !booking.CanBeConfirmed() {
		s.logger.Warn("ExtendHold: booking id=%d is not a draft, status=%s", bookingID, booking.Status)
		return nil, ErrNotDraft
	}

	holdExpiresAt := s.timeProvider.Now().Add(time.Duration(s.draftHoldMinutes) * time.Minute)
	if err := s.bookingRepo.ExtendHold(ctx, bookingID, holdExpiresAt); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("ExtendHold: booking id=%d no longer a draft", bookingID)
			return nil, ErrNotDraft
		}
		s.logger.Error("ExtendHold: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: ExtendHold - repository error: %v", ErrInternal, err)
	}

	booking.HoldExpiresAt = &holdExpiresAt

	s.logger.Info("ExtendHold: hold for booking id=%d extended to %s",
		bookingID, holdExpiresAt.Format(time.RFC3339))
	return models.FromDomainBooking(booking), nil
}

// Вспомогательные методы

// getOwnedBooking получает бронирование и проверяет владельца
func (s *Service) getOwnedBooking(ctx context.Context, bookingID int64, customerID int64, op string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, bookingID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if booking.CustomerID != customerID {
		s.logger.Warn("%s: access denied for customer=%d to booking id=%d", op, customerID, bookingID)
		return nil, ErrAccessDenied
	}

	return booking, nil
}
