package allocate_assignment

import (
	"context"

	allocateAssignment "github.com/loungecreations-byte/Booking-system-pro-sub001/internal/usecase/allocate_assignment"
)

type AllocateAssignmentUseCase interface {
	Execute(ctx context.Context, req *allocateAssignment.Request) (*allocateAssignment.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
