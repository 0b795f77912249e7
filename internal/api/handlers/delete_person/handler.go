package delete_person

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

// Handle DELETE /api/v1/personnel/{personId}
// Бронирования сотрудника удаляются каскадно.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	personID := mux.Vars(r)["personId"]

	if err := h.service.Delete(r.Context(), personID); err != nil {
		switch {
		case errors.Is(err, personnel.ErrPersonNotFound):
			h.logger.Warn("DELETE /personnel/{id} - Person not found: person_id=%s", personID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /personnel/{id} - Failed to delete: person_id=%s, error=%v", personID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /personnel/{id} - Person deleted: person_id=%s", personID)
	handlers.RespondNoContent(w)
}
