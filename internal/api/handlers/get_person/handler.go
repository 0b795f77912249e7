package get_person

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ResourcePlanner/internal/api/handlers"
	"github.com/m04kA/SMC-ResourcePlanner/internal/service/personnel"
)

const msgNotFound = "сотрудник не найден"

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

// Handle GET /api/v1/personnel/{personId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	personID := mux.Vars(r)["personId"]

	person, err := h.service.GetByID(r.Context(), personID)
	if err != nil {
		switch {
		case errors.Is(err, personnel.ErrPersonNotFound):
			h.logger.Warn("GET /personnel/{id} - Person not found: person_id=%s", personID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /personnel/{id} - Failed to get person: person_id=%s, error=%v", personID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, person)
}
