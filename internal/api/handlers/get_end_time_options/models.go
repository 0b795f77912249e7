package get_end_time_options

import (
	getEndTimeOptions "github.com/m04kA/SMC-ResourcePlanner/internal/usecase/get_end_time_options"
	"github.com/m04kA/SMC-ResourcePlanner/pkg/types"
)

// TimeOptionsResponse HTTP response model
type TimeOptionsResponse struct {
	ResourceID        string   `json:"resourceId"`
	AvailabilityStart string   `json:"availabilityStart"`
	AvailabilityEnd   string   `json:"availabilityEnd"`
	StartTime         string   `json:"startTime,omitempty"`
	StartOptions      []string `json:"startOptions,omitempty"`
	EndOptions        []string `json:"endOptions"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP ответ
func FromUseCaseResponse(resp *getEndTimeOptions.Response) *TimeOptionsResponse {
	return &TimeOptionsResponse{
		ResourceID:        resp.ResourceID,
		AvailabilityStart: resp.Availability.Start.String(),
		AvailabilityEnd:   resp.Availability.End.String(),
		StartTime:         resp.StartTime.String(),
		StartOptions:      toStrings(resp.StartOptions),
		EndOptions:        toStrings(resp.EndOptions),
	}
}

func toStrings(slots []types.TimeString) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.String())
	}
	return out
}
