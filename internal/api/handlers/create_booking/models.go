package create_booking

import (
	"time"

	"github.com/loungecreations-byte/Booking-system-pro-sub001/internal/service/bookings/models"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CreateBookingRequest) ToServiceRequest(customerID int64) *models.CreateDraftRequest {
	return &models.CreateDraftRequest{
		CustomerID: customerID,
		Start:      r.Start,
		End:        r.End,
	}
}
