package get_end_time_options

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ResourcePlanner/internal/api/handlers"
	getEndTimeOptions "github.com/m04kA/SMC-ResourcePlanner/internal/usecase/get_end_time_options"
	"github.com/m04kA/SMC-ResourcePlanner/pkg/types"
)

const (
	msgInvalidStart        = "некорректное время начала, ожидается HH:MM"
	msgNotFound            = "сотрудник не найден"
	msgInvalidAvailability = "у сотрудника некорректное окно доступности"
)

type Handler struct {
	useCase GetEndTimeOptionsUseCase
	logger  Logger
}

func NewHandler(useCase GetEndTimeOptionsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/personnel/{personId}/end-times
// Query params: start (HH:MM, без него возвращаются варианты начала)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	personID := mux.Vars(r)["personId"]

	result, err := h.useCase.Execute(r.Context(), &getEndTimeOptions.Request{
		ResourceID: personID,
		StartTime:  types.TimeString(r.URL.Query().Get("start")),
	})
	if err != nil {
		switch {
		case errors.Is(err, getEndTimeOptions.ErrInvalidInput):
			h.logger.Warn("GET /personnel/{id}/end-times - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStart)

		case errors.Is(err, getEndTimeOptions.ErrResourceNotFound):
			h.logger.Warn("GET /personnel/{id}/end-times - Person not found: person_id=%s", personID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, getEndTimeOptions.ErrInvalidAvailability):
			h.logger.Warn("GET /personnel/{id}/end-times - Broken availability: person_id=%s", personID)
			handlers.RespondConflict(w, msgInvalidAvailability)

		default:
			h.logger.Error("GET /personnel/{id}/end-times - Failed: person_id=%s, error=%v", personID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
