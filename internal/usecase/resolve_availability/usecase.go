package resolve_availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/loungecreations-byte/Booking-system-pro-sub001/internal/availability"
	"github.com/loungecreations-byte/Booking-system-pro-sub001/internal/domain"
	resourceRepo "github.com/loungecreations-byte/Booking-system-pro-sub001/internal/infra/storage/resource"
)

// maxRangeDays максимальная длина запрашиваемого диапазона
// Защита от запросов, разворачивающих правила на годы вперёд
const maxRangeDays = 366

// UseCase use case вычисления открытых интервалов ресурса
// Резолвер чистый и ничего не кэширует: правила перечитываются из хранилища
// на каждый запрос, поэтому правка правил видна немедленно
type UseCase struct {
	resourceRepo ResourceRepository
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(resourceRepo ResourceRepository, logger Logger) *UseCase {
	return &UseCase{
		resourceRepo: resourceRepo,
		logger:       logger,
	}
}

// Execute вычисляет открытые интервалы ресурса в диапазоне [From, To)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ResolveAvailability: resource=%d, range=[%s, %s)",
		req.ResourceID, req.From.Format(time.RFC3339), req.To.Format(time.RFC3339))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ResolveAvailability: validation failed: %v", err)
		return nil, err
	}

	resource, err := uc.resourceRepo.GetByID(ctx, req.ResourceID)
	if err != nil {
		if errors.Is(err, resourceRepo.ErrResourceNotFound) {
			uc.logger.Warn("ResolveAvailability: resource id=%d not found", req.ResourceID)
			return nil, ErrResourceNotFound
		}
		uc.logger.Error("ResolveAvailability: failed to get resource id=%d: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: failed to get resource: %v", ErrInternal, err)
	}

	loc, err := resource.Location()
	if err != nil {
		uc.logger.Warn("ResolveAvailability: resource id=%d misconfigured: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: %v", ErrResourceMisconfigured, err)
	}

	windows, err := availability.Resolve(resource.RuleSet, loc, domain.Window{Start: req.From, End: req.To})
	if err != nil {
		uc.logger.Warn("ResolveAvailability: rule set of resource id=%d is invalid: %v", req.ResourceID, err)
		return nil, fmt.Errorf("%w: %v", ErrResourceMisconfigured, err)
	}

	uc.logger.Info("ResolveAvailability: resource id=%d has %d open intervals in range", req.ResourceID, len(windows))

	return &Response{
		ResourceID: resource.ID,
		Timezone:   resource.Timezone,
		Intervals:  fromWindows(windows),
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ResourceID <= 0 {
		return fmt.Errorf("%w: resourceID must be positive", ErrInvalidInput)
	}

	if req.From.IsZero() || req.To.IsZero() {
		return fmt.Errorf("%w: from and to are required", ErrInvalidRange)
	}

	if !req.From.Before(req.To) {
		return fmt.Errorf("%w: from must be before to", ErrInvalidRange)
	}

	if req.To.Sub(req.From) > maxRangeDays*24*time.Hour {
		return fmt.Errorf("%w: range longer than %d days", ErrInvalidRange, maxRangeDays)
	}

	return nil
}
