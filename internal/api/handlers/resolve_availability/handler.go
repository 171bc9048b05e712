package resolve_availability

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/loungecreations-byte/Booking-system-pro-sub001/internal/api/handlers"
	resolveAvailability "github.com/loungecreations-byte/Booking-system-pro-sub001/internal/usecase/resolve_availability"
)

const (
	msgInvalidResourceID     = "некорректный ID ресурса"
	msgMissingDates          = "параметры from и to обязательны"
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange          = "некорректный диапазон дат"
	msgResourceNotFound      = "ресурс не найден"
	msgResourceMisconfigured = "некорректная конфигурация ресурса"
)

type Handler struct {
	useCase ResolveAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase ResolveAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/resources/{resourceId}/availability
// Query params: from (required, YYYY-MM-DD), to (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем resourceId из URL
	vars := mux.Vars(r)
	resourceIDStr := vars["resourceId"]

	resourceID, err := strconv.ParseInt(resourceIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /resources/{id}/availability - Invalid resource ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidResourceID)
		return
	}

	// Извлекаем from и to из query параметров
	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")
	if fromStr == "" || toStr == "" {
		h.logger.Warn("GET /resources/{id}/availability - Missing dates: resource_id=%d", resourceID)
		handlers.RespondBadRequest(w, msgMissingDates)
		return
	}

	useCaseReq, err := ToUseCaseRequest(resourceID, fromStr, toStr)
	if err != nil {
		h.logger.Warn("GET /resources/{id}/availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, resolveAvailability.ErrInvalidRange),
			errors.Is(err, resolveAvailability.ErrInvalidInput):
			h.logger.Warn("GET /resources/{id}/availability - Invalid range: resource_id=%d, error=%v",
				resourceID, err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, resolveAvailability.ErrResourceNotFound):
			h.logger.Warn("GET /resources/{id}/availability - Resource not found: resource_id=%d", resourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, resolveAvailability.ErrResourceMisconfigured):
			h.logger.Warn("GET /resources/{id}/availability - Resource misconfigured: resource_id=%d, error=%v",
				resourceID, err)
			handlers.RespondBadRequest(w, msgResourceMisconfigured)

		default:
			h.logger.Error("GET /resources/{id}/availability - Failed to resolve availability: resource_id=%d, error=%v",
				resourceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /resources/{id}/availability - Availability resolved: resource_id=%d, intervals_count=%d",
		resourceID, len(result.Intervals))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
