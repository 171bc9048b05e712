package allocate_assignment

import (
	"errors"
	"net/http"

	"github.com/loungecreations-byte/Booking-system-pro-sub001/internal/api/handlers"
	allocateAssignment "github.com/loungecreations-byte/Booking-system-pro-sub001/internal/usecase/allocate_assignment"
)

const (
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgInvalidInput          = "некорректные входные данные"
	msgInvalidWindow         = "некорректное временное окно"
	msgInvalidParticipants   = "количество участников должно быть не меньше 1"
	msgInvalidRole           = "некорректная роль назначения"
	msgResourceNotFound      = "ресурс не найден"
	msgBookingNotFound       = "бронирование не найдено"
	msgBookingNotActive      = "бронирование неактивно"
	msgResourceMisconfigured = "некорректная конфигурация ресурса"
	msgResourceClosed        = "ресурс закрыт в запрошенном окне"
	msgCapacityExceeded      = "вместимость ресурса исчерпана"
	msgConcurrentConflict    = "конкурентный конфликт аллокации, повторите запрос"
)

type Handler struct {
	useCase AllocateAssignmentUseCase
	logger  Logger
}

func NewHandler(useCase AllocateAssignmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/assignments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Декодируем body
	var req AllocateAssignmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /assignments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, allocateAssignment.ErrInvalidWindow):
			h.logger.Warn("POST /assignments - Invalid window: resource_id=%d, booking_id=%d",
				req.ResourceID, req.BookingID)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		case errors.Is(err, allocateAssignment.ErrInvalidParticipantCount):
			h.logger.Warn("POST /assignments - Invalid participant count: %d", req.ParticipantCount)
			handlers.RespondBadRequest(w, msgInvalidParticipants)

		case errors.Is(err, allocateAssignment.ErrInvalidRole):
			h.logger.Warn("POST /assignments - Invalid role: booking_id=%d", req.BookingID)
			handlers.RespondBadRequest(w, msgInvalidRole)

		case errors.Is(err, allocateAssignment.ErrInvalidInput):
			h.logger.Warn("POST /assignments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, allocateAssignment.ErrResourceNotFound):
			h.logger.Warn("POST /assignments - Resource not found: resource_id=%d", req.ResourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, allocateAssignment.ErrBookingNotFound):
			h.logger.Warn("POST /assignments - Booking not found: booking_id=%d", req.BookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, allocateAssignment.ErrResourceMisconfigured):
			h.logger.Warn("POST /assignments - Resource misconfigured: resource_id=%d, error=%v",
				req.ResourceID, err)
			handlers.RespondBadRequest(w, msgResourceMisconfigured)

		case errors.Is(err, allocateAssignment.ErrBookingNotActive):
			h.logger.Warn("POST /assignments - Booking not active: booking_id=%d", req.BookingID)
			handlers.RespondConflict(w, msgBookingNotActive, false)

		case errors.Is(err, allocateAssignment.ErrResourceClosed):
			h.logger.Warn("POST /assignments - Resource closed: resource_id=%d, start=%s, end=%s",
				req.ResourceID, req.Start, req.End)
			handlers.RespondConflict(w, msgResourceClosed, false)

		case errors.Is(err, allocateAssignment.ErrCapacityExceeded):
			h.logger.Warn("POST /assignments - Capacity exceeded: resource_id=%d, participants=%d",
				req.ResourceID, req.ParticipantCount)
			handlers.RespondConflict(w, msgCapacityExceeded, false)

		case errors.Is(err, allocateAssignment.ErrConcurrentConflict):
			h.logger.Warn("POST /assignments - Concurrent conflict: resource_id=%d, booking_id=%d",
				req.ResourceID, req.BookingID)
			handlers.RespondConflict(w, msgConcurrentConflict, true)

		default:
			h.logger.Error("POST /assignments - Failed to allocate: resource_id=%d, booking_id=%d, error=%v",
				req.ResourceID, req.BookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /assignments - Assignment allocated successfully: assignment_id=%d, resource_id=%d, booking_id=%d",
		result.ID, result.ResourceID, result.BookingID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
