package list_bookings

import (
	"fmt"
	"net/url"
	"time"

	"github.com/m04kA/SMC-ResourcePlanner/internal/domain"
	"github.com/m04kA/SMC-ResourcePlanner/internal/service/bookings/models"
)

// ToServiceRequest конвертирует query параметры в запрос сервиса
func ToServiceRequest(query url.Values) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{}

	if v := query.Get("resourceId"); v != "" {
		req.ResourceID = &v
	}
	if v := query.Get("from"); v != "" {
		from, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, fmt.Errorf("from: %w", err)
		}
		req.StartDate = &from
	}
	if v := query.Get("to"); v != "" {
		to, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, fmt.Errorf("to: %w", err)
		}
		req.EndDate = &to
	}

	return req, nil
}
