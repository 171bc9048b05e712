package allocate_assignment

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/loungecreations-byte/Booking-system-pro-sub001/internal/availability"
	"github.com/loungecreations-byte/Booking-system-pro-sub001/internal/domain"
	bookingRepo "github.com/loungecreations-byte/Booking-system-pro-sub001/internal/infra/storage/booking"
	resourceRepo "github.com/loungecreations-byte/Booking-system-pro-sub001/internal/infra/storage/resource"
	"github.com/loungecreations-byte/Booking-system-pro-sub001/pkg/keylock"
	"github.com/loungecreations-byte/Booking-system-pro-sub001/pkg/txmanager"
)

// UseCase use case атомарной аллокации назначения
//
// Инвариант: для каждого ресурса в каждый момент времени сумма participantCount
// по активным пересекающимся назначениям не превышает вместимость ресурса.
// Проверка и запись - check-then-act, поэтому шаги 4-5 выполняются под
// per-resource блокировкой и в SERIALIZABLE транзакции
type UseCase struct {
	resourceRepo   ResourceRepository
	bookingRepo    BookingRepository
	assignmentRepo AssignmentRepository
	ledger         CommitmentLedger
	txManager      TransactionManager
	locker         ResourceLocker
	lockWait       time.Duration
	metrics        SchedulerMetrics
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
// lockWait ограничивает ожидание per-resource блокировки: на популярных
// ресурсах вызов не должен висеть неограниченно
func NewUseCase(
	resourceRepo ResourceRepository,
	bookingRepo BookingRepository,
	assignmentRepo AssignmentRepository,
	ledger CommitmentLedger,
	txManager TransactionManager,
	locker ResourceLocker,
	lockWait time.Duration,
	schedulerMetrics SchedulerMetrics,
	logger Logger,
) *UseCase {
	if lockWait <= 0 {
		lockWait = domain.DefaultLockWaitSeconds * time.Second
	}
	if schedulerMetrics == nil {
		schedulerMetrics = NoopMetrics{}
	}
	return &UseCase{
		resourceRepo:   resourceRepo,
		bookingRepo:    bookingRepo,
		assignmentRepo: assignmentRepo,
		ledger:         ledger,
		txManager:      txManager,
		locker:         locker,
		lockWait:       lockWait,
		metrics:        schedulerMetrics,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет аллокацию назначения
//
// Шаги:
//  1. валидация входных данных (InvalidWindow и пр.)
//  2. загрузка ресурса и бронирования
//  3. проверка открытости окна по правилам доступности
//  4. предварительная проверка вместимости
//  5. повторная проверка и запись под per-resource блокировкой
//     в SERIALIZABLE транзакции; проигрыш конкуренту -> ConcurrentConflict
//
// ConcurrentConflict - единственная повторяемая ошибка; usecase сам повторов
// не делает
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("AllocateAssignment: resource=%d, booking=%d, window=[%s, %s), participants=%d",
		req.ResourceID, req.BookingID,
		req.Start.Format(time.RFC3339), req.End.Format(time.RFC3339), req.ParticipantCount)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("AllocateAssignment: validation failed: %v", err)
		return nil, err
	}

	if req.Role == "" {
		req.Role = domain.RolePrimary
	}

	now := uc.timeProvider.Now()
	window := req.Window()

	// 2. Загружаем ресурс
	resource, err := uc.resourceRepo.GetByID(ctx, req.ResourceID)
	if err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			uc.logger.Warn("AllocateAssignment: resource id=%d not found", req.ResourceID)
			return nil, ErrResourceNotFound
		}
		uc.logger.Error("AllocateAssignment: failed to get resource id=%d: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
	}

	// Нулевая вместимость и битые правила - ошибка конфигурации, не бронируем
	if err := resource.Validate(); err != nil {
		uc.logger.Warn("AllocateAssignment: resource id=%d misconfigured: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: %v", ErrResourceMisconfigured, err)
	}

	loc, err := resource.Location()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResourceMisconfigured, err)
	}

	// 3. Загружаем бронирование и проверяем, что оно может получать назначения
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("AllocateAssignment: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("AllocateAssignment: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if !booking.CountsTowardCapacity(now) {
		uc.logger.Warn("AllocateAssignment: booking id=%d is not active (status=%s)", req.BookingID, booking.Status)
		return nil, ErrBookingNotActive
	}

	// 4. Проверяем открытость окна по правилам доступности
	open, err := availability.IsWindowOpen(resource.RuleSet, loc, window)
	if err != nil {
		uc.logger.Warn("AllocateAssignment: rule set of resource id=%d is invalid: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: %v", ErrResourceMisconfigured, err)
	}
	if !open {
		uc.logger.Warn("AllocateAssignment: resource id=%d closed for window [%s, %s)",
			req.ResourceID, req.Start.Format(time.RFC3339), req.End.Format(time.RFC3339))
		return nil, ErrResourceClosed
	}

	// 5. Предварительная проверка вместимости (быстрый отказ без блокировки)
	if !resource.IsUnbounded() {
		used, err := uc.ledger.CapacityUsed(ctx, req.ResourceID, window)
		if err != nil {
			uc.logger.Error("AllocateAssignment: failed to compute capacity used: %v", err)
			return nil, fmt.Errorf("%w: failed to compute capacity used: %v", ErrInternal, err)
		}
		if used+req.ParticipantCount > *resource.Capacity {
			uc.logger.Warn("AllocateAssignment: capacity exceeded for resource id=%d: %d+%d > %d",
				req.ResourceID, used, req.ParticipantCount, *resource.Capacity)
			return nil, fmt.Errorf("%w: %d of %d spots taken, %d requested",
				ErrCapacityExceeded, used, *resource.Capacity, req.ParticipantCount)
		}
	}

	// 6. Сериализуем аллокации этого ресурса: per-resource блокировка
	// с ограниченным ожиданием, затем SERIALIZABLE транзакция
	lockCtx, cancel := context.WithTimeout(ctx, uc.lockWait)
	defer cancel()

	lockStart := time.Now()
	release, err := uc.locker.Acquire(lockCtx, resourceLockKey(req.ResourceID))
	uc.metrics.ObserveLockWait(req.ResourceID, time.Since(lockStart).Seconds())
	if err != nil {
		if errors.Is(err, keylock.ErrLockWaitAborted) {
			uc.logger.Warn("AllocateAssignment: lock wait aborted for resource id=%d", req.ResourceID)
			uc.metrics.IncAllocationConflict(req.ResourceID)
			return nil, fmt.Errorf("%w: lock wait aborted", ErrConcurrentConflict)
		}
		return nil, fmt.Errorf("%w: failed to acquire resource lock: %v", ErrInternal, err)
	}
	defer release()

	var result *domain.Assignment

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 6.1. Повторная проверка вместимости по актуальному состоянию.
		// Предварительная проверка уже прошла, поэтому превышение здесь
		// означает, что конкурентная аллокация успела первой
		if !resource.IsUnbounded() {
			used, err := uc.ledger.CapacityUsed(txCtx, req.ResourceID, window)
			if err != nil {
				return fmt.Errorf("%w: failed to re-check capacity: %v", ErrInternal, err)
			}
			if used+req.ParticipantCount > *resource.Capacity {
				return fmt.Errorf("%w: capacity filled by concurrent allocation (%d+%d > %d)",
					ErrConcurrentConflict, used, req.ParticipantCount, *resource.Capacity)
			}
		}

		// 6.2. Записываем назначение
		assignment := &domain.Assignment{
			BookingID:        req.BookingID,
			ResourceID:       req.ResourceID,
			Start:            req.Start,
			End:              req.End,
			ParticipantCount: req.ParticipantCount,
			Role:             req.Role,
			Status:           domain.AssignmentActive,
		}

		created, err := uc.assignmentRepo.Create(txCtx, assignment)
		if err != nil {
			return fmt.Errorf("%w: failed to create assignment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Отказ сериализации означает проигрыш конкурентной транзакции
		if errors.Is(err, txmanager.ErrSerializationFailure) {
			uc.logger.Warn("AllocateAssignment: serialization failure for resource id=%d", req.ResourceID)
			uc.metrics.IncAllocationConflict(req.ResourceID)
			return nil, fmt.Errorf("%w: %v", ErrConcurrentConflict, err)
		}
		if errors.Is(err, ErrConcurrentConflict) {
			uc.metrics.IncAllocationConflict(req.ResourceID)
		}
		return nil, err
	}

	uc.logger.Info("AllocateAssignment: successfully created assignment id=%d", result.ID)

	return fromDomain(result), nil
}

// resourceLockKey ключ per-resource блокировки
func resourceLockKey(resourceID int64) string {
	return "resource:" + strconv.FormatInt(resourceID, 10)
}
