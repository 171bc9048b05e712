package assignments

import (
	"context"

	"github.com/loungecreations-byte/Booking-system-pro-sub001/internal/domain"
)

// AssignmentRepository интерфейс репозитория назначений
type AssignmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Assignment, error)
	GetWithFilter(ctx context.Context, filter domain.AssignmentsFilter) ([]*domain.Assignment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
