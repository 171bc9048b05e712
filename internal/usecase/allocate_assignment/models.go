package allocate_assignment

import (
	"time"

	"github.com/loungecreations-byte/Booking-system-pro-sub001/internal/domain"
)

// Request входные данные аллокации
type Request struct {
	ResourceID       int64
	BookingID        int64
	Start            time.Time
	End              time.Time
	ParticipantCount int
	Role             domain.AssignmentRole // пустая роль трактуется как primary
}

// Window возвращает запрошенное окно
func (r *Request) Window() domain.Window {
	return domain.Window{Start: r.Start, End: r.End}
}

// Response созданное назначение
type Response struct {
	ID               int64
	BookingID        int64
	ResourceID       int64
	Start            time.Time
	End              time.Time
	ParticipantCount int
	Role             string
	Status           string
	CreatedAt        time.Time
}

// fromDomain конвертирует доменное назначение в ответ usecase
func fromDomain(a *domain.Assignment) *Response {
	return &Response{
		ID:               a.ID,
		BookingID:        a.BookingID,
		ResourceID:       a.ResourceID,
		Start:            a.Start,
		End:              a.End,
		ParticipantCount: a.ParticipantCount,
		Role:             string(a.Role),
		Status:           string(a.Status),
		CreatedAt:        a.CreatedAt,
	}
}
