package assignments

import (
	"context"
	"errors"
	"fmt"

	assignmentRepo "github.com/loungecreations-byte/Booking-system-pro-sub001/internal/infra/storage/assignment"
	"github.com/loungecreations-byte/Booking-system-pro-sub001/internal/service/assignments/models"
)

// Service сервис запросов к назначениям
// Используется календарными и административными представлениями;
// порядок выдачи детерминированный (start ASC, id ASC)
type Service struct {
	assignmentRepo AssignmentRepository
	logger         Logger
}

// NewService создает новый экземпляр сервиса назначений
func NewService(assignmentRepo AssignmentRepository, logger Logger) *Service {
	return &Service{
		assignmentRepo: assignmentRepo,
		logger:         logger,
	}
}

// GetByID получает назначение по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AssignmentResponse, error) {
	s.logger.Info("GetByID: fetching assignment id=%d", id)

	assignment, err := s.assignmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, assignmentRepo.ErrAssignmentNotFound) {
			s.logger.Warn("GetByID: assignment id=%d not found", id)
			return nil, ErrAssignmentNotFound
		}
		s.logger.Error("GetByID: repository error for assignment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAssignment(assignment), nil
}

// List получает назначения с фильтрацией по ресурсу, бронированию и периоду
func (s *Service) List(ctx context.Context, req *models.ListAssignmentsRequest) (*models.AssignmentListResponse, error) {
	logMsg := "List: fetching assignments"
	if req.ResourceID != nil {
		logMsg += fmt.Sprintf(", resource=%d", *req.ResourceID)
	}
	if req.BookingID != nil {
		logMsg += fmt.Sprintf(", booking=%d", *req.BookingID)
	}
	if req.From != nil && req.To != nil {
		logMsg += fmt.Sprintf(", period=%s to %s",
			req.From.Format("2006-01-02"), req.To.Format("2006-01-02"))
	}
	if req.IncludeVoided {
		logMsg += ", includeVoided=true"
	}
	s.logger.Info(logMsg)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	assignments, err := s.assignmentRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d assignments", len(assignments))
	return models.FromDomainAssignmentList(assignments), nil
}
