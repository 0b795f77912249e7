package get_timeline

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ResourcePlanner/internal/api/handlers"
	getTimeline "github.com/m04kA/SMC-ResourcePlanner/internal/usecase/get_timeline"
)

const (
	msgInvalidParams      = "некорректные параметры запроса: start YYYY-MM-DD, days и zoom числа"
	msgDepartmentNotFound = "отдел не найден"
)

type Handler struct {
	useCase GetTimelineUseCase
	logger  Logger
}

func NewHandler(useCase GetTimelineUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/timeline
// Query params: start, days, zoom, departmentId, resourceIds (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := ToUseCaseRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /timeline - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getTimeline.ErrInvalidInput):
			h.logger.Warn("GET /timeline - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, getTimeline.ErrDepartmentNotFound):
			h.logger.Warn("GET /timeline - Department not found: department_id=%s", req.DepartmentID)
			handlers.RespondNotFound(w, msgDepartmentNotFound)

		default:
			h.logger.Error("GET /timeline - Failed to build timeline: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /timeline - Timeline built: rows=%d, invalid=%d", len(result.Rows), result.Invalid)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
