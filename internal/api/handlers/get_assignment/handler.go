package get_assignment

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/loungecreations-byte/Booking-system-pro-sub001/internal/api/handlers"
	"github.com/loungecreations-byte/Booking-system-pro-sub001/internal/service/assignments"
	"github.com/loungecreations-byte/Booking-system-pro-sub001/internal/service/assignments/models"
)

const (
	msgInvalidAssignmentID = "некорректный ID назначения"
	msgNotFound            = "назначение не найдено"
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

// AssignmentResponse HTTP модель назначения
type AssignmentResponse struct {
	ID               int64      `json:"id"`
	BookingID        int64      `json:"bookingId"`
	ResourceID       int64      `json:"resourceId"`
	Start            time.Time  `json:"start"`
	End              time.Time  `json:"end"`
	ParticipantCount int        `json:"participantCount"`
	Role             string     `json:"role"`
	Status           string     `json:"status"`
	VoidedAt         *time.Time `json:"voidedAt,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

func fromServiceResponse(resp *models.AssignmentResponse) *AssignmentResponse {
	return &AssignmentResponse{
		ID:               resp.ID,
		BookingID:        resp.BookingID,
		ResourceID:       resp.ResourceID,
		Start:            resp.Start,
		End:              resp.End,
		ParticipantCount: resp.ParticipantCount,
		Role:             resp.Role,
		Status:           resp.Status,
		VoidedAt:         resp.VoidedAt,
		CreatedAt:        resp.CreatedAt,
		UpdatedAt:        resp.UpdatedAt,
	}
}

// Handle GET /api/v1/assignments/{assignmentId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем assignmentId из URL
	vars := mux.Vars(r)
	assignmentIDStr := vars["assignmentId"]

	assignmentID, err := strconv.ParseInt(assignmentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /assignments/{id} - Invalid assignment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAssignmentID)
		return
	}

	result, err := h.service.GetByID(r.Context(), assignmentID)
	if err != nil {
		if errors.Is(err, assignments.ErrAssignmentNotFound) {
			h.logger.Warn("GET /assignments/{id} - Assignment not found: assignment_id=%d", assignmentID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /assignments/{id} - Failed to get assignment: assignment_id=%d, error=%v",
			assignmentID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /assignments/{id} - Assignment retrieved successfully: assignment_id=%d", assignmentID)
	handlers.RespondJSON(w, http.StatusOK, fromServiceResponse(result))
}
