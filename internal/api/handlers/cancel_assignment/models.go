package cancel_assignment

import (
	cancelAssignment "github.com/loungecreations-byte/Booking-system-pro-sub001/internal/usecase/cancel_assignment"
)

// CancelAssignmentResponse HTTP response model
// AlreadyCancelled=true означает, что состояние не менялось:
// назначение уже было аннулировано ранее
type CancelAssignmentResponse struct {
	AssignmentID     int64 `json:"assignmentId"`
	AlreadyCancelled bool  `json:"alreadyCancelled"`
}

// FromUseCaseResponse конвертирует ответ usecase в HTTP response
func FromUseCaseResponse(resp *cancelAssignment.Response) *CancelAssignmentResponse {
	return &CancelAssignmentResponse{
		AssignmentID:     resp.AssignmentID,
		AlreadyCancelled: resp.AlreadyCancelled,
	}
}
