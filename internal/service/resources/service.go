package resources

import (
	"context"
	"errors"
	"fmt"

	"github.com/loungecreations-byte/Booking-system-pro-sub001/internal/domain"
	resourceRepo "github.com/loungecreations-byte/Booking-system-pro-sub001/internal/infra/storage/resource"
	"github.com/loungecreations-byte/Booking-system-pro-sub001/internal/service/resources/models"
)

// Service сервис для администрирования ресурсов и их правил доступности
type Service struct {
	resourceRepo ResourceRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса ресурсов
func NewService(resourceRepo ResourceRepository, logger Logger) *Service {
	return &Service{
		resourceRepo: resourceRepo,
		logger:       logger,
	}
}

// Create создает новый ресурс с набором правил доступности
// Правила валидируются целиком до записи: некорректный набор
// не должен попасть в хранилище
func (s *Service) Create(ctx context.Context, req *models.CreateResourceRequest) (*models.ResourceResponse, error) {
	s.logger.Info("Create: creating resource name=%s, timezone=%s", req.Name, req.Timezone)

	if err := req.Validate(); err != nil {
		s.logger.Warn("Create: invalid request: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	resource := &domain.Resource{
		Name:     req.Name,
		Capacity: req.Capacity,
		Timezone: req.Timezone,
		RuleSet:  req.RuleSet,
	}

	if err := resource.Validate(); err != nil {
		if errors.Is(err, domain.ErrInvalidRuleSet) {
			s.logger.Warn("Create: invalid rule set for resource name=%s: %v", req.Name, err)
			return nil, fmt.Errorf("%w: %v", ErrInvalidRuleSet, err)
		}
		s.logger.Warn("Create: invalid resource name=%s: %v", req.Name, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.resourceRepo.Create(ctx, resource)
	if err != nil {
		s.logger.Error("Create: repository error for resource name=%s: %v", req.Name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created resource id=%d", created.ID)
	return models.FromDomainResource(created), nil
}

// GetByID получает ресурс по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ResourceResponse, error) {
	s.logger.Info("GetByID: fetching resource id=%d", id)

	resource, err := s.resourceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			s.logger.Warn("GetByID: resource id=%d not found", id)
			return nil, ErrResourceNotFound
		}
		s.logger.Error("GetByID: repository error for resource id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainResource(resource), nil
}

// UpdateRules заменяет набор правил ресурса целиком
// Замена атомарна: следующие запросы доступности видят либо старый
// набор, либо новый, но не их смесь
func (s *Service) UpdateRules(ctx context.Context, id int64, req *models.UpdateRulesRequest) (*models.ResourceResponse, error) {
	s.logger.Info("UpdateRules: updating rule set for resource id=%d", id)

	if err := req.RuleSet.Validate(); err != nil {
		s.logger.Warn("UpdateRules: invalid rule set for resource id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidRuleSet, err)
	}

	if err := s.resourceRepo.UpdateRuleSet(ctx, id, req.RuleSet); err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			s.logger.Warn("UpdateRules: resource id=%d not found", id)
			return nil, ErrResourceNotFound
		}
		s.logger.Error("UpdateRules: repository error for resource id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateRules - repository error: %v", ErrInternal, err)
	}

	updated, err := s.resourceRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("UpdateRules: failed to re-fetch resource id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateRules - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateRules: successfully updated rule set for resource id=%d", id)
	return models.FromDomainResource(updated), nil
}
