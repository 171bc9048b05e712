package allocate_assignment

import (
	"fmt"

	"github.com/loungecreations-byte/Booking-system-pro-sub001/internal/domain"
)

// validateRequest валидирует входные данные запроса
// Нарушения терминальны: повтор без изменения входных данных не поможет
func validateRequest(req *Request) error {
	if req.ResourceID <= 0 {
		return fmt.Errorf("%w: resourceID must be positive", ErrInvalidInput)
	}

	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}

	if req.ParticipantCount < domain.MinParticipantCount {
		return fmt.Errorf("%w: got %d", ErrInvalidParticipantCount, req.ParticipantCount)
	}

	// Нулевые и инвертированные окна отклоняются до обращения к резолверу
	if req.Start.IsZero() || req.End.IsZero() || !req.Window().IsValid() {
		return fmt.Errorf("%w: end must be after start", ErrInvalidWindow)
	}

	if req.Role != "" && !isValidRole(req.Role) {
		return fmt.Errorf("%w: %q", ErrInvalidRole, req.Role)
	}

	return nil
}

func isValidRole(role domain.AssignmentRole) bool {
	for _, valid := range domain.ValidRoles {
		if role == valid {
			return true
		}
	}
	return false
}
