package models

import (
	"errors"
	"time"

	"github.com/loungecreations-byte/Booking-system-pro-sub001/internal/domain"
)

var (
	// ErrInvalidName возвращается при пустом имени ресурса
	ErrInvalidName = errors.New("resource name must not be empty")
)

// Request модели

// CreateResourceRequest запрос на создание ресурса
type CreateResourceRequest struct {
	Name     string         `json:"name"`
	Capacity *int           `json:"capacity,omitempty"` // nil - без ограничения
	Timezone string         `json:"timezone"`
	RuleSet  domain.RuleSet `json:"ruleSet"`
}

// Validate проверяет корректность запроса
func (r *CreateResourceRequest) Validate() error {
	if r.Name == "" {
		return ErrInvalidName
	}
	return nil
}

// UpdateRulesRequest запрос на замену набора правил ресурса
type UpdateRulesRequest struct {
	RuleSet domain.RuleSet `json:"ruleSet"`
}

// Response модели

// ResourceResponse ответ с данными ресурса
type ResourceResponse struct {
	ID       int64          `json:"id"`
	Name     string         `json:"name"`
	Capacity *int           `json:"capacity,omitempty"`
	Timezone string         `json:"timezone"`
	RuleSet  domain.RuleSet `json:"ruleSet"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Методы конвертации

// FromDomainResource конвертирует domain модель в DTO
func FromDomainResource(r *domain.Resource) *ResourceResponse {
	if r == nil {
		return nil
	}

	return &ResourceResponse{
		ID:        r.ID,
		Name:      r.Name,
		Capacity:  r.Capacity,
		Timezone:  r.Timezone,
		RuleSet:   r.RuleSet,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
