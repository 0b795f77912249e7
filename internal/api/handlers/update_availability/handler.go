package update_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ResourcePlanner/internal/api/handlers"
	"github.com/m04kA/SMC-ResourcePlanner/internal/service/personnel"
	"github.com/m04kA/SMC-ResourcePlanner/internal/service/personnel/models"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidAvailability = "некорректное окно доступности: начало должно быть раньше конца, формат HH:MM"
	msgNotFound            = "сотрудник не найден"
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

// Handle PUT /api/v1/personnel/{personId}/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	personID := mux.Vars(r)["personId"]

	var req models.UpdateAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /personnel/{id}/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	person, err := h.service.UpdateAvailability(r.Context(), personID, &req)
	if err != nil {
		switch {
		case errors.Is(err, personnel.ErrInvalidAvailability), errors.Is(err, personnel.ErrInvalidInput):
			h.logger.Warn("PUT /personnel/{id}/availability - Invalid window %s-%s: %v", req.Start, req.End, err)
			handlers.RespondBadRequest(w, msgInvalidAvailability)

		case errors.Is(err, personnel.ErrPersonNotFound):
			h.logger.Warn("PUT /personnel/{id}/availability - Person not found: person_id=%s", personID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /personnel/{id}/availability - Failed to update: person_id=%s, error=%v", personID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /personnel/{id}/availability - Availability updated: person_id=%s", personID)
	handlers.RespondJSON(w, http.StatusOK, person)
}
