package allocate_assignment

import (
	"context"
	"time"

	"github.com/loungecreations-byte/Booking-system-pro-sub001/internal/domain"
)

// ResourceRepository интерфейс репозитория ресурсов
type ResourceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Resource, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

// AssignmentRepository интерфейс репозитория назначений
type AssignmentRepository interface {
	Create(ctx context.Context, assignment *domain.Assignment) (*domain.Assignment, error)
}

// CommitmentLedger read-модель занятой вместимости ресурса
// Внутри транзакции читает через executor из контекста
type CommitmentLedger interface {
	CapacityUsed(ctx context.Context, resourceID int64, window domain.Window) (int, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// ResourceLocker сериализует аллокации одного ресурса внутри процесса
// Реализуется pkg/keylock.Table
type ResourceLocker interface {
	Acquire(ctx context.Context, key string) (func(), error)
}

// SchedulerMetrics записывает метрики планировщика
// Реализуется pkg/metrics.Metrics; при выключенных метриках - NoopMetrics
type SchedulerMetrics interface {
	ObserveLockWait(resourceID int64, seconds float64)
	IncAllocationConflict(resourceID int64)
}

// NoopMetrics заглушка метрик планировщика
type NoopMetrics struct{}

func (NoopMetrics) ObserveLockWait(resourceID int64, seconds float64) {}
func (NoopMetrics) IncAllocationConflict(resourceID int64)            {}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
