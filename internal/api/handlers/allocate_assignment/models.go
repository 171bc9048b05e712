package allocate_assignment

import (
	"time"

	"github.com/loungecreations-byte/Booking-system-pro-sub001/internal/domain"
	allocateAssignment "github.com/loungecreations-byte/Booking-system-pro-sub001/internal/usecase/allocate_assignment"
)

// AllocateAssignmentRequest HTTP request model
type AllocateAssignmentRequest struct {
	BookingID        int64     `json:"bookingId"`
	ResourceID       int64     `json:"resourceId"`
	Start            time.Time `json:"start"`
	End              time.Time `json:"end"`
	ParticipantCount int       `json:"participantCount"`
	Role             *string   `json:"role,omitempty"` // primary | secondary, по умолчанию primary
}

// ToUseCaseRequest конвертирует HTTP request в модель usecase
func (r *AllocateAssignmentRequest) ToUseCaseRequest() *allocateAssignment.Request {
	role := domain.AssignmentRole("")
	if r.Role != nil {
		role = domain.AssignmentRole(*r.Role)
	}

	return &allocateAssignment.Request{
		ResourceID:       r.ResourceID,
		BookingID:        r.BookingID,
		Start:            r.Start,
		End:              r.End,
		ParticipantCount: r.ParticipantCount,
		Role:             role,
	}
}

// AssignmentResponse HTTP response model
type AssignmentResponse struct {
	ID               int64     `json:"id"`
	BookingID        int64     `json:"bookingId"`
	ResourceID       int64     `json:"resourceId"`
	Start            time.Time `json:"start"`
	End              time.Time `json:"end"`
	ParticipantCount int       `json:"participantCount"`
	Role             string    `json:"role"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
}

// FromUseCaseResponse конвертирует ответ usecase в HTTP response
func FromUseCaseResponse(resp *allocateAssignment.Response) *AssignmentResponse {
	return &AssignmentResponse{
		ID:               resp.ID,
		BookingID:        resp.BookingID,
		ResourceID:       resp.ResourceID,
		Start:            resp.Start,
		End:              resp.End,
		ParticipantCount: resp.ParticipantCount,
		Role:             resp.Role,
		Status:           resp.Status,
		CreatedAt:        resp.CreatedAt,
	}
}
