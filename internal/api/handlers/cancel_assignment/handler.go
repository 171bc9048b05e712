package cancel_assignment

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/loungecreations-byte/Booking-system-pro-sub001/internal/api/handlers"
	cancelAssignment "github.com/loungecreations-byte/Booking-system-pro-sub001/internal/usecase/cancel_assignment"
)

const (
	msgInvalidAssignmentID = "некорректный ID назначения"
)

type Handler struct {
	useCase CancelAssignmentUseCase
	logger  Logger
}

func NewHandler(useCase CancelAssignmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/assignments/{assignmentId}/cancel
// Отмена идемпотентна: повторный запрос возвращает 200
// с alreadyCancelled=true
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем assignmentId из URL
	vars := mux.Vars(r)
	assignmentIDStr := vars["assignmentId"]

	assignmentID, err := strconv.ParseInt(assignmentIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /assignments/{id}/cancel - Invalid assignment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAssignmentID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &cancelAssignment.Request{AssignmentID: assignmentID})
	if err != nil {
		h.logger.Error("PATCH /assignments/{id}/cancel - Failed to cancel assignment: assignment_id=%d, error=%v",
			assignmentID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PATCH /assignments/{id}/cancel - Assignment cancelled: assignment_id=%d, already_cancelled=%t",
		assignmentID, result.AlreadyCancelled)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
