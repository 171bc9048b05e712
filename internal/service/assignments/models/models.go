package models

import (
	"time"

	"github.com/loungecreations-byte/Booking-system-pro-sub001/internal/domain"
)

// ListAssignmentsRequest фильтр запроса списка назначений
// Все поля опциональны и комбинируются через AND
type ListAssignmentsRequest struct {
	ResourceID    *int64
	BookingID     *int64
	From          *time.Time
	To            *time.Time
	IncludeVoided bool
}

// ToDomainFilter конвертирует request в доменный фильтр
func (r *ListAssignmentsRequest) ToDomainFilter() (domain.AssignmentsFilter, error) {
	if r.From != nil && r.To != nil && !r.From.Before(*r.To) {
		return domain.AssignmentsFilter{}, ErrInvalidDateRange
	}

	return domain.AssignmentsFilter{
		ResourceID:    r.ResourceID,
		BookingID:     r.BookingID,
		From:          r.From,
		To:            r.To,
		IncludeVoided: r.IncludeVoided,
	}, nil
}

// AssignmentResponse модель назначения для вызывающих
type AssignmentResponse struct {
	ID               int64
	BookingID        int64
	ResourceID       int64
	Start            time.Time
	End              time.Time
	ParticipantCount int
	Role             string
	Status           string
	VoidedAt         *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// AssignmentListResponse список назначений
type AssignmentListResponse struct {
	Assignments []AssignmentResponse
	Total       int
}

// FromDomainAssignment конвертирует доменное назначение в модель ответа
func FromDomainAssignment(a *domain.Assignment) *AssignmentResponse {
	return &AssignmentResponse{
		ID:               a.ID,
		BookingID:        a.BookingID,
		ResourceID:       a.ResourceID,
		Start:            a.Start,
		End:              a.End,
		ParticipantCount: a.ParticipantCount,
		Role:             string(a.Role),
		Status:           string(a.Status),
		VoidedAt:         a.VoidedAt,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

// FromDomainAssignmentList конвертирует список доменных назначений
func FromDomainAssignmentList(assignments []*domain.Assignment) *AssignmentListResponse {
	result := make([]AssignmentResponse, len(assignments))
	for i, a := range assignments {
		result[i] = *FromDomainAssignment(a)
	}
	return &AssignmentListResponse{
		Assignments: result,
		Total:       len(result),
	}
}
