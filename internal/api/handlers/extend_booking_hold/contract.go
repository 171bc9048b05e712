package extend_booking_hold

import (
	"context"

	"github.com/loungecreations-byte/Booking-system-pro-sub001/internal/service/bookings/models"
)

type BookingService interface {
	ExtendHold(ctx context.Context, bookingID int64, customerID int64) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
