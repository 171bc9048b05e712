package models

import (
	"errors"
	"time"

	"github.com/loungecreations-byte/Booking-system-pro-sub001/internal/domain"
)

var (
	// ErrInvalidWindow возвращается при инвертированном или пустом окне
	ErrInvalidWindow = errors.New("invalid booking window")
)

// Request модели

// CreateDraftRequest запрос на создание черновика бронирования
type CreateDraftRequest struct {
	CustomerID int64     `json:"customerId"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
}

// Validate проверяет корректность запроса
func (r *CreateDraftRequest) Validate() error {
	if r.CustomerID <= 0 {
		return errors.New("customerId must be positive")
	}
	if !r.End.After(r.Start) {
		return ErrInvalidWindow
	}
	return nil
}

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	CustomerID         int64  `json:"customerId"`
	CancellationReason string `json:"cancellationReason"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID         int64     `json:"id"`
	CustomerID int64     `json:"customerId"`
	Status     string    `json:"status"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`

	// HoldExpiresAt присутствует только у черновиков
	HoldExpiresAt *time.Time `json:"holdExpiresAt,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		CustomerID:         b.CustomerID,
		Status:             string(b.Status),
		Start:              b.Start,
		End:                b.End,
		HoldExpiresAt:      b.HoldExpiresAt,
		CancellationReason: b.CancellationReason,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}
