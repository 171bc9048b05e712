// Package ledger реализует read-модель обязательств ресурса: какие назначения
// пересекают окно и сколько вместимости они занимают.
//
// Леджер ничего не пишет и не кэширует - каждый вызов читает актуальное
// состояние через репозиторий. Внутри транзакции он читает через неё же
// (executor из контекста), поэтому виден и собственный незакоммиченный insert
package ledger

import (
	"context"
	"fmt"

	"github.com/loungecreations-byte/Booking-system-pro-sub001/internal/domain"
)

// Service read-модель обязательств ресурсов
type Service struct {
	assignmentRepo AssignmentRepository
	timeProvider   TimeProvider
	logger         Logger
}

// NewService создает новый экземпляр леджера
func NewService(assignmentRepo AssignmentRepository, logger Logger) *Service {
	return &Service{
		assignmentRepo: assignmentRepo,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Overlapping возвращает активные назначения ресурса, пересекающие окно,
// у которых бронирование учитывается при подсчёте вместимости.
// Порядок детерминированный: start ASC, id ASC
func (s *Service) Overlapping(ctx context.Context, resourceID int64, window domain.Window) ([]*domain.Assignment, error) {
	if !window.IsValid() {
		return nil, fmt.Errorf("%w: start=%s end=%s", ErrInvalidWindow,
			window.Start.Format("2006-01-02T15:04"), window.End.Format("2006-01-02T15:04"))
	}

	assignments, err := s.assignmentRepo.GetOverlapping(ctx, resourceID, window, s.timeProvider.Now())
	if err != nil {
		s.logger.Error("Overlapping: repository error for resource=%d: %v", resourceID, err)
		return nil, fmt.Errorf("%w: Overlapping - repository error: %v", ErrInternal, err)
	}

	return assignments, nil
}

// CapacityUsed возвращает суммарное количество участников по назначениям,
// пересекающим окно
func (s *Service) CapacityUsed(ctx context.Context, resourceID int64, window domain.Window) (int, error) {
	assignments, err := s.Overlapping(ctx, resourceID, window)
	if err != nil {
		return 0, err
	}

	used := 0
	for _, a := range assignments {
		used += a.ParticipantCount
	}

	return used, nil
}
