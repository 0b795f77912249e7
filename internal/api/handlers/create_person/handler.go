package create_person

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ResourcePlanner/internal/api/handlers"
	"github.com/m04kA/SMC-ResourcePlanner/internal/service/personnel"
	"github.com/m04kA/SMC-ResourcePlanner/internal/service/personnel/models"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidInput        = "некорректные данные сотрудника"
	msgInvalidAvailability = "некорректное окно доступности: начало должно быть раньше конца, формат HH:MM"
	msgDepartmentNotFound  = "отдел не найден"
	msgEmailTaken          = "email уже используется"
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

// Handle POST /api/v1/personnel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreatePersonRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /personnel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	person, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, personnel.ErrInvalidAvailability):
			h.logger.Warn("POST /personnel - Invalid availability: %v", err)
			handlers.RespondBadRequest(w, msgInvalidAvailability)

		case errors.Is(err, personnel.ErrInvalidInput):
			h.logger.Warn("POST /personnel - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, personnel.ErrDepartmentNotFound):
			h.logger.Warn("POST /personnel - Department not found")
			handlers.RespondNotFound(w, msgDepartmentNotFound)

		case errors.Is(err, personnel.ErrEmailTaken):
			h.logger.Warn("POST /personnel - Email taken: %s", req.Email)
			handlers.RespondConflict(w, msgEmailTaken)

		default:
			h.logger.Error("POST /personnel - Failed to create person: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /personnel - Person created: person_id=%s", person.ID)
	handlers.RespondJSON(w, http.StatusCreated, person)
}
