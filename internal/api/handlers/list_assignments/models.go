package list_assignments

import (
	"net/url"
	"strconv"
	"time"

	"github.com/loungecreations-byte/Booking-system-pro-sub001/internal/service/assignments/models"
)

// AssignmentResponse HTTP модель назначения
type AssignmentResponse struct {
	ID               int64      `json:"id"`
	BookingID        int64      `json:"bookingId"`
	ResourceID       int64      `json:"resourceId"`
	Start            time.Time  `json:"start"`
	End              time.Time  `json:"end"`
	ParticipantCount int        `json:"participantCount"`
	Role             string     `json:"role"`
	Status           string     `json:"status"`
	VoidedAt         *time.Time `json:"voidedAt,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// AssignmentListResponse HTTP модель списка назначений
type AssignmentListResponse struct {
	Assignments []AssignmentResponse `json:"assignments"`
	Total       int                  `json:"total"`
}

// ToServiceRequest формирует запрос сервиса из query параметров
// Все фильтры опциональны: resourceId, bookingId, from, to (YYYY-MM-DD),
// includeVoided
func ToServiceRequest(query url.Values) (*models.ListAssignmentsRequest, error) {
	req := &models.ListAssignmentsRequest{}

	if v := query.Get("resourceId"); v != "" {
		resourceID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		req.ResourceID = &resourceID
	}

	if v := query.Get("bookingId"); v != "" {
		bookingID, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, err
		}
		req.BookingID = &bookingID
	}

	if v := query.Get("from"); v != "" {
		from, err := time.Parse("2006-01-02", v)
		if err != nil {
			return nil, err
		}
		req.From = &from
	}

	if v := query.Get("to"); v != "" {
		to, err := time.Parse("2006-01-02", v)
		if err != nil {
			return nil, err
		}
		// Верхняя граница включительна по дням
		toEnd := to.AddDate(0, 0, 1)
		req.To = &toEnd
	}

	if v := query.Get("includeVoided"); v != "" {
		includeVoided, err := strconv.ParseBool(v)
		if err != nil {
			return nil, err
		}
		req.IncludeVoided = includeVoided
	}

	return req, nil
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.AssignmentListResponse) *AssignmentListResponse {
	assignments := make([]AssignmentResponse, len(resp.Assignments))
	for i, a := range resp.Assignments {
		assignments[i] = AssignmentResponse{
			ID:               a.ID,
			BookingID:        a.BookingID,
			ResourceID:       a.ResourceID,
			Start:            a.Start,
			End:              a.End,
			ParticipantCount: a.ParticipantCount,
			Role:             a.Role,
			Status:           a.Status,
			VoidedAt:         a.VoidedAt,
			CreatedAt:        a.CreatedAt,
			UpdatedAt:        a.UpdatedAt,
		}
	}

	return &AssignmentListResponse{
		Assignments: assignments,
		Total:       resp.Total,
	}
}
