package list_personnel

import (
	"net/http"

	"github.com/m04kA/SMC-ResourcePlanner/internal/api/handlers"
)

type Handler struct {
	service PersonnelService
	logger  Logger
}

func NewHandler(service PersonnelService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/personnel
// Query params: departmentId (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var departmentID *string
	if v := r.URL.Query().Get("departmentId"); v != "" {
		departmentID = &v
	}

	result, err := h.service.List(r.Context(), departmentID)
	if err != nil {
		h.logger.Error("GET /personnel - Failed to list personnel: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /personnel - Personnel retrieved successfully: count=%d", len(result.Personnel))
	handlers.RespondJSON(w, http.StatusOK, result)
}
