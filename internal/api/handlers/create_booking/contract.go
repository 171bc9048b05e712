package create_booking

import (
	"context"

	"github.com/loungecreations-byte/Booking-system-pro-sub001/internal/service/bookings/models"
)

type BookingService interface {
	CreateDraft(ctx context.Context, req *models.CreateDraftRequest) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
