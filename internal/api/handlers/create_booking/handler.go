package create_booking

import (
	"errors"
	"net/http"

	"github.com/loungecreations-byte/Booking-system-pro-sub001/internal/api/handlers"
	"github.com/loungecreations-byte/Booking-system-pro-sub001/internal/api/middleware"
	"github.com/loungecreations-byte/Booking-system-pro-sub001/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные входные данные"
	msgMissingCustomerID  = "отсутствует ID клиента"
	msgCustomerNotFound   = "клиент не найден"
	msgCustomerBlocked    = "клиенту запрещено бронирование"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем customerID из контекста (через middleware Auth)
	customerID, ok := middleware.GetCustomerID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing customer ID")
		handlers.RespondUnauthorized(w, msgMissingCustomerID)
		return
	}

	// Декодируем body
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	booking, err := h.service.CreateDraft(r.Context(), req.ToServiceRequest(customerID))
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: customer_id=%d, error=%v", customerID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, bookings.ErrCustomerNotFound):
			h.logger.Warn("POST /bookings - Customer not found: customer_id=%d", customerID)
			handlers.RespondNotFound(w, msgCustomerNotFound)

		case errors.Is(err, bookings.ErrCustomerBlocked):
			h.logger.Warn("POST /bookings - Customer blocked: customer_id=%d", customerID)
			handlers.RespondForbidden(w, msgCustomerBlocked)

		default:
			h.logger.Error("POST /bookings - Failed to create draft: customer_id=%d, error=%v", customerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Draft created successfully: booking_id=%d, customer_id=%d",
		booking.ID, customerID)
	handlers.RespondJSON(w, http.StatusCreated, booking)
}
