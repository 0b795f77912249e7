package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ResourcePlanner/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-ResourcePlanner/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDate         = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput        = "некорректные данные бронирования"
	msgInvalidTimeRange    = "время окончания должно быть позже времени начала"
	msgResourceNotFound    = "сотрудник не найден"
	msgDepartmentNotFound  = "отдел не найден"
	msgOutsideAvailability = "время бронирования выходит за окно доступности сотрудника"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidTimeRange):
			h.logger.Warn("POST /bookings - Invalid time range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrResourceNotFound):
			h.logger.Warn("POST /bookings - Resource not found: resource_id=%s", req.ResourceID)
			handlers.RespondNotFound(w, msgResourceNotFound)

		case errors.Is(err, createBooking.ErrDepartmentNotFound):
			h.logger.Warn("POST /bookings - Department not found: department_id=%s", req.DepartmentID)
			handlers.RespondNotFound(w, msgDepartmentNotFound)

		case errors.Is(err, createBooking.ErrOutsideAvailability):
			h.logger.Warn("POST /bookings - Outside availability: resource_id=%s, %s-%s",
				req.ResourceID, req.StartTime, req.EndTime)
			handlers.RespondConflict(w, msgOutsideAvailability)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)
	if result.NoMembers {
		h.logger.Warn("POST /bookings - Department has no members: department_id=%s", req.DepartmentID)
		handlers.RespondJSON(w, http.StatusOK, response)
		return
	}

	h.logger.Info("POST /bookings - Bookings created: type=%s, count=%d", result.Type, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusCreated, response)
}
