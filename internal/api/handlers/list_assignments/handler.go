package list_assignments

import (
	"errors"
	"net/http"

	"github.com/loungecreations-byte/Booking-system-pro-sub001/internal/api/handlers"
	"github.com/loungecreations-byte/Booking-system-pro-sub001/internal/service/assignments"
)

const (
	msgInvalidQueryParams = "некорректные параметры фильтрации"
)

type Handler struct {
	service AssignmentService
	logger  Logger
}

func NewHandler(service AssignmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/assignments
// Query params: resourceId, bookingId, from, to (YYYY-MM-DD), includeVoided
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceReq, err := ToServiceRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /assignments - Invalid query params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQueryParams)
		return
	}

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, assignments.ErrInvalidInput) {
			h.logger.Warn("GET /assignments - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQueryParams)
			return
		}
		h.logger.Error("GET /assignments - Failed to list assignments: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /assignments - Assignments listed successfully: count=%d", result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
