package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	// StatusDraft бронирование на стадии корзины/checkout, удерживает
	// вместимость до истечения hold (см. CountsTowardCapacity)
	StatusDraft BookingStatus = "draft"

	// StatusConfirmed бронирование, подтверждённое успешной оплатой
	StatusConfirmed BookingStatus = "confirmed"

	// StatusCancelled бронирование, отменённое явно или по отказу checkout
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a customer-facing reservation.
// A booking owns one or more assignments (bindings to concrete resources).
type Booking struct {
	ID         int64
	CustomerID int64
	Status     BookingStatus
	Start      time.Time
	End        time.Time

	// HoldExpiresAt is set for draft bookings: until this instant the draft
	// reserves capacity, afterwards it stops counting without any sweeper.
	HoldExpiresAt *time.Time

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CountsTowardCapacity reports whether the booking's assignments reserve
// capacity at the given instant. Confirmed bookings always count; draft
// bookings count only while their hold is unexpired; cancelled never count.
func (b *Booking) CountsTowardCapacity(now time.Time) bool {
	switch b.Status {
	case StatusConfirmed:
		return true
	case StatusDraft:
		return b.HoldExpiresAt != nil && now.Before(*b.HoldExpiresAt)
	default:
		return false
	}
}

// CanBeConfirmed returns true if the booking can transition to confirmed
func (b *Booking) CanBeConfirmed() bool {
	return b.Status == StatusDraft
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusDraft || b.Status == StatusConfirmed
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}
