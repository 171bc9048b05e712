package cancel_assignment

import (
	"context"
	"errors"
	"fmt"

	assignmentRepo "github.com/loungecreations-byte/Booking-system-pro-sub001/internal/infra/storage/assignment"
)

// UseCase use case отмены назначения
//
// Отмена идемпотентна: повторная отмена и отмена несуществующего назначения
// возвращают успех с признаком AlreadyCancelled, состояние не меняется.
// Освобождённая вместимость видна следующей аллокации сразу: леджер исключает
// void-назначения на уровне запроса.
//
// Per-resource блокировка здесь не нужна - отмена выполняется одним
// линеаризуемым UPDATE
type UseCase struct {
	assignmentRepo AssignmentRepository
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(assignmentRepo AssignmentRepository, logger Logger) *UseCase {
	return &UseCase{
		assignmentRepo: assignmentRepo,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет отмену назначения
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelAssignment: assignment=%d", req.AssignmentID)

	if req.AssignmentID <= 0 {
		return nil, fmt.Errorf("%w: assignmentID must be positive", ErrInvalidInput)
	}

	err := uc.assignmentRepo.Void(ctx, req.AssignmentID, uc.timeProvider.Now())
	if err != nil {
		// Уже отменено или не существует - успех без изменения состояния
		if errors.Is(err, assignmentRepo.ErrAlreadyVoided) ||
			errors.Is(err, assignmentRepo.ErrAssignmentNotFound) {
			uc.logger.Info("CancelAssignment: assignment id=%d already cancelled or missing", req.AssignmentID)
			return &Response{
				AssignmentID:     req.AssignmentID,
				AlreadyCancelled: true,
			}, nil
		}

		uc.logger.Error("CancelAssignment: failed to void assignment id=%d: %v", req.AssignmentID, err)
		return nil, fmt.Errorf("%w: failed to void assignment: %v", ErrInternal, err)
	}

	uc.logger.Info("CancelAssignment: successfully cancelled assignment id=%d", req.AssignmentID)

	return &Response{
		AssignmentID:     req.AssignmentID,
		AlreadyCancelled: false,
	}, nil
}
