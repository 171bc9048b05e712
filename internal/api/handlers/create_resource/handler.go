package create_resource

import (
	"errors"
	"net/http"

	"github.com/loungecreations-byte/Booking-system-pro-sub001/internal/api/handlers"
	"github.com/loungecreations-byte/Booking-system-pro-sub001/internal/service/resources"
	"github.com/loungecreations-byte/Booking-system-pro-sub001/internal/service/resources/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные входные данные"
	msgInvalidRuleSet     = "некорректный набор правил"
)

type Handler struct {
	service ResourceService
	logger  Logger
}

func NewHandler(service ResourceService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/resources
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Декодируем body
	var req models.CreateResourceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /resources - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	resource, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, resources.ErrInvalidRuleSet):
			h.logger.Warn("POST /resources - Invalid rule set: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRuleSet)

		case errors.Is(err, resources.ErrInvalidInput):
			h.logger.Warn("POST /resources - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /resources - Failed to create resource: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /resources - Resource created successfully: resource_id=%d", resource.ID)
	handlers.RespondJSON(w, http.StatusCreated, resource)
}
