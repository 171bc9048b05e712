package update_resource_rules

import (
	"context"

	"github.com/loungecreations-byte/Booking-system-pro-sub001/internal/service/resources/models"
)

type ResourceService interface {
	UpdateRules(ctx context.Context, id int64, req *models.UpdateRulesRequest) (*models.ResourceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
