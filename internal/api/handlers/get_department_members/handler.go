package get_department_members

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ResourcePlanner/internal/api/handlers"
	"github.com/m04kA/SMC-ResourcePlanner/internal/service/departments"
)

const msgNotFound = "отдел не найден"

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

// Handle GET /api/v1/departments/{departmentId}/members
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	departmentID := mux.Vars(r)["departmentId"]

	result, err := h.service.Members(r.Context(), departmentID)
	if err != nil {
		switch {
		case errors.Is(err, departments.ErrDepartmentNotFound):
			h.logger.Warn("GET /departments/{id}/members - Department not found: department_id=%s", departmentID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /departments/{id}/members - Failed: department_id=%s, error=%v", departmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /departments/{id}/members - Members retrieved: department_id=%s, count=%d",
		departmentID, len(result.Members))
	handlers.RespondJSON(w, http.StatusOK, result)
}
