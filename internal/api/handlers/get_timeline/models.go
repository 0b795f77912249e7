package get_timeline

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-ResourcePlanner/internal/domain"
	personnelModels "github.com/m04kA/SMC-ResourcePlanner/internal/service/personnel/models"
	getTimeline "github.com/m04kA/SMC-ResourcePlanner/internal/usecase/get_timeline"
	"github.com/m04kA/SMC-ResourcePlanner/pkg/types"
)

const msgInvalidAvailability = "Invalid availability window"

// TimelineResponse HTTP response model
type TimelineResponse struct {
	Start           string        `json:"start"`
	Days            []string      `json:"days"`
	Zoom            float64       `json:"zoom"`
	CellHeight      float64       `json:"cellHeight"`
	Rows            []RowResponse `json:"rows"`
	InvalidBookings int           `json:"invalidBookings"`
}

// RowResponse строка доски
type RowResponse struct {
	Resource personnelModels.PersonResponse `json:"resource"`
	Error    string                         `json:"error,omitempty"`
	Days     []DayResponse                  `json:"days"`
}

// DayResponse ячейка сотрудник/день
type DayResponse struct {
	Date     string          `json:"date"`
	Bookings []EntryResponse `json:"bookings"`
}

// EntryResponse бронирование в ячейке; для битых данных заполнены только bookingId и error
type EntryResponse struct {
	BookingID   string          `json:"bookingId"`
	Error       string          `json:"error,omitempty"`
	ProjectName string          `json:"projectName,omitempty"`
	ClientName  string          `json:"clientName,omitempty"`
	Color       string          `json:"color,omitempty"`
	StartTime   string          `json:"startTime,omitempty"`
	EndTime     string          `json:"endTime,omitempty"`
	Layout      *LayoutResponse `json:"layout,omitempty"`
}

// LayoutResponse геометрия: top/height в пикселях, left/width в процентах
type LayoutResponse struct {
	Top         float64 `json:"top"`
	Height      float64 `json:"height"`
	Left        float64 `json:"left"`
	Width       float64 `json:"width"`
	ColumnIndex int     `json:"columnIndex"`
	ColumnCount int     `json:"columnCount"`
}

// ToUseCaseRequest конвертирует query параметры в модель use case
func ToUseCaseRequest(query url.Values) (*getTimeline.Request, error) {
	req := &getTimeline.Request{
		DepartmentID: strings.TrimSpace(query.Get("departmentId")),
	}

	if v := query.Get("start"); v != "" {
		start, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			return nil, fmt.Errorf("start: %w", err)
		}
		req.Start = start
	}
	if v := query.Get("days"); v != "" {
		days, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("days: %w", err)
		}
		req.Days = days
	}
	if v := query.Get("zoom"); v != "" {
		zoom, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("zoom: %w", err)
		}
		req.Zoom = zoom
	}
	if v := query.Get("resourceIds"); v != "" {
		for _, id := range strings.Split(v, ",") {
			if id = strings.TrimSpace(id); id != "" {
				req.ResourceIDs = append(req.ResourceIDs, id)
			}
		}
	}

	return req, nil
}

// FromUseCaseResponse конвертирует результат раскладки в HTTP ответ
func FromUseCaseResponse(resp *getTimeline.Response) *TimelineResponse {
	out := &TimelineResponse{
		Start:           resp.Start.Format(domain.DateFormat),
		Days:            make([]string, 0, len(resp.Days)),
		Zoom:            resp.Zoom,
		CellHeight:      resp.CellHeight,
		Rows:            make([]RowResponse, 0, len(resp.Rows)),
		InvalidBookings: resp.Invalid,
	}
	for _, d := range resp.Days {
		out.Days = append(out.Days, d.Format(domain.DateFormat))
	}

	for _, row := range resp.Rows {
		r := RowResponse{
			Resource: *personnelModels.FromDomainPerson(&row.Resource),
			Days:     make([]DayResponse, 0, len(row.Days)),
		}
		if row.Err != nil {
			r.Error = msgInvalidAvailability
		}
		for _, cell := range row.Days {
			day := DayResponse{
				Date:     cell.Day.Format(domain.DateFormat),
				Bookings: make([]EntryResponse, 0, len(cell.Entries)),
			}
			for _, entry := range cell.Entries {
				day.Bookings = append(day.Bookings, fromEntry(entry))
			}
			r.Days = append(r.Days, day)
		}
		out.Rows = append(out.Rows, r)
	}
	return out
}

func fromEntry(entry domain.LayoutEntry) EntryResponse {
	if !entry.IsValid() {
		return EntryResponse{BookingID: entry.Booking.ID, Error: domain.InvalidBookingMessage}
	}
	res := entry.Result
	return EntryResponse{
		BookingID:   entry.Booking.ID,
		ProjectName: entry.Booking.ProjectName,
		ClientName:  entry.Booking.ClientName,
		Color:       entry.Booking.Color,
		StartTime:   types.FormatTimeString(entry.Booking.StartTime.String()),
		EndTime:     types.FormatTimeString(entry.Booking.EndTime.String()),
		Layout: &LayoutResponse{
			Top:         res.Top,
			Height:      res.Height,
			Left:        res.Left,
			Width:       res.Width,
			ColumnIndex: res.ColumnIndex,
			ColumnCount: res.ColumnCount,
		},
	}
}
