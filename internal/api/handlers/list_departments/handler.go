package list_departments

import (
	"net/http"

	"github.com/m04kA/SMC-ResourcePlanner/internal/api/handlers"
)

type Handler struct {
	service DepartmentService
	logger  Logger
}

func NewHandler(service DepartmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/departments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /departments - Failed to list departments: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /departments - Departments retrieved successfully: count=%d", len(result.Departments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
