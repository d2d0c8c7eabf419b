package types

import (
	"fmt"
	"time"
)

// ISODate is the wire format for calendar dates ("YYYY-MM-DD").
const ISODate = "2006-01-02"

// DateRange is an inclusive span of calendar dates.
type DateRange struct {
	StartDate string `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" validate:"required,datetime=2006-01-02"`
}

// Validate checks that both dates parse and that the range is not inverted.
func (r DateRange) Validate() error {
	start, err := time.Parse(ISODate, r.StartDate)
	if err != nil {
		return NewAppError(ErrCodeValidationInvalidDate, fmt.Sprintf("invalid start date %q", r.StartDate), err)
	}
	end, err := time.Parse(ISODate, r.EndDate)
	if err != nil {
		return NewAppError(ErrCodeValidationInvalidDate, fmt.Sprintf("invalid end date %q", r.EndDate), err)
	}
	if end.Before(start) {
		return NewAppError(ErrCodeValidationDateRange, "end date precedes start date", nil)
	}
	return nil
}

// Days returns the number of calendar days the range spans, inclusive.
// Returns 0 if either date fails to parse.
func (r DateRange) Days() int {
	start, err := time.Parse(ISODate, r.StartDate)
	if err != nil {
		return 0
	}
	end, err := time.Parse(ISODate, r.EndDate)
	if err != nil {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}

// WeatherDay is one calendar day's conditions at one location. Historical
// entries are synthetic multi-year averages, not observations.
type WeatherDay struct {
	Date               string          `json:"date"`
	TempMax            int             `json:"tempMax"`
	TempMin            int             `json:"tempMin"`
	PrecipProbability  int             `json:"precipProbability"`
	WeatherCode        int             `json:"weatherCode"`
	WeatherDescription string          `json:"weatherDescription"`
	DataSource         DataSource      `json:"dataSource"`
	FireWeatherIndex   *int            `json:"fireWeatherIndex"`
	FireDangerLevel    FireDangerLevel `json:"fireDangerLevel"`
}

// WeatherAlert is a human-readable advisory derived from a forecast window.
type WeatherAlert struct {
	Type     AlertType     `json:"type"`
	Severity AlertSeverity `json:"severity"`
	Message  string        `json:"message"`
}

// PackingItem is one entry of a generated checklist. Checked is caller-owned
// UI state; generation never sets it.
type PackingItem struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Category PackingCategory `json:"category"`
	Reason   string          `json:"reason,omitempty"`
	Checked  bool            `json:"checked"`
}
