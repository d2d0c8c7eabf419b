package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/blaketime/woodsmoke/internal/core"
	"github.com/blaketime/woodsmoke/internal/packing"
	"github.com/blaketime/woodsmoke/internal/types"
	"github.com/blaketime/woodsmoke/internal/weather"
)

// TripPlanResponse bundles everything a client needs to render a trip page:
// the day-by-day weather, the alerts derived from it, and the packing list.
type TripPlanResponse struct {
	ParkID     string               `json:"park_id"`
	Campground string               `json:"campground,omitempty"`
	DataSource types.DataSource     `json:"data_source"`
	Weather    []types.WeatherDay   `json:"weather"`
	Alerts     []types.WeatherAlert `json:"alerts"`
	Packing    []types.PackingItem  `json:"packing"`
}

// TripPlan runs the full pipeline for one park: fetch weather for the
// requested window, derive alerts, and build the packing list for the
// selected campground.
func (h *ParksHandler) TripPlan(w http.ResponseWriter, r *http.Request) {
	park, err := h.repo.Get(chi.URLParam(r, "parkID"))
	if err != nil {
		core.Error(w, r, err)
		return
	}

	dateRange, err := parseDateRange(r)
	if err != nil {
		core.Error(w, r, err)
		return
	}

	campgroundIndex, err := parseCampgroundIndex(r, len(park.Campgrounds))
	if err != nil {
		core.Error(w, r, err)
		return
	}

	forecast, err := h.weather.Fetch(r.Context(), park.Lat, park.Lng, dateRange)
	if err != nil {
		core.Error(w, r, err)
		return
	}

	resp := TripPlanResponse{
		ParkID:     park.ID,
		DataSource: dataSourceOf(forecast),
		Weather:    forecast,
		Alerts:     weather.GenerateAlerts(forecast),
		Packing:    packing.Generate(park, forecast, campgroundIndex),
	}
	if campgroundIndex >= 0 && campgroundIndex < len(park.Campgrounds) {
		resp.Campground = park.Campgrounds[campgroundIndex].Name
	}

	core.JSON(w, r, http.StatusOK, core.APIResponse{Data: resp})
}

// parseDateRange reads the optional start_date/end_date pair. Both must be
// given together; a missing pair means the caller wants the default window.
func parseDateRange(r *http.Request) (*types.DateRange, error) {
	start := r.URL.Query().Get("start_date")
	end := r.URL.Query().Get("end_date")
	if start == "" && end == "" {
		return nil, nil
	}
	if start == "" || end == "" {
		return nil, types.NewAppError(types.ErrCodeValidationDateRange,
			"start_date and end_date must be provided together", nil)
	}
	dr := &types.DateRange{StartDate: start, EndDate: end}
	if err := dr.Validate(); err != nil {
		return nil, err
	}
	return dr, nil
}

// parseCampgroundIndex reads the optional campground query parameter and
// bounds-checks it against the park's campground list.
func parseCampgroundIndex(r *http.Request, count int) (int, error) {
	raw := r.URL.Query().Get("campground")
	if raw == "" {
		return 0, nil
	}
	idx, err := strconv.Atoi(raw)
	if err != nil || idx < 0 || idx >= count {
		return 0, types.NewAppError(types.ErrCodeValidationInvalidCampground,
			"campground must be an index into the park's campground list", nil).
			WithDetails(map[string]any{"campground": raw, "count": count})
	}
	return idx, nil
}

func dataSourceOf(forecast []types.WeatherDay) types.DataSource {
	if len(forecast) == 0 {
		return types.SourceForecast
	}
	return forecast[0].DataSource
}
