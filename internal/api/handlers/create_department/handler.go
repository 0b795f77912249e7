package create_department

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ResourcePlanner/internal/api/handlers"
	"github.com/m04kA/SMC-ResourcePlanner/internal/service/departments"
	"github.com/m04kA/SMC-ResourcePlanner/internal/service/departments/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные отдела: название обязательно, цвет в формате #RRGGBB"
	msgNameTaken          = "отдел с таким названием уже существует"
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

// Handle POST /api/v1/departments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateDepartmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /departments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	department, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, departments.ErrInvalidInput):
			h.logger.Warn("POST /departments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, departments.ErrNameTaken):
			h.logger.Warn("POST /departments - Name taken: %q", req.Name)
			handlers.RespondConflict(w, msgNameTaken)

		default:
			h.logger.Error("POST /departments - Failed to create department: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /departments - Department created: department_id=%s", department.ID)
	handlers.RespondJSON(w, http.StatusCreated, department)
}
