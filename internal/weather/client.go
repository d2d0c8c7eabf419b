// Package weather fetches daily weather data for a park location and
// normalizes it into the common WeatherDay shape. Two upstream sources are
// used: the Open-Meteo forecast API for near-term windows and the Open-Meteo
// archive API for multi-year historical averages.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"

	"github.com/blaketime/woodsmoke/internal/external"
	"github.com/blaketime/woodsmoke/internal/fire"
	"github.com/blaketime/woodsmoke/internal/types"
	"github.com/blaketime/woodsmoke/internal/wmo"
)

// Daily variable lists requested from the upstream APIs. The archive API
// names the weather code variable differently from the forecast API.
const (
	forecastDailyVars = "temperature_2m_max,temperature_2m_min,precipitation_probability_max,precipitation_sum,weathercode,relative_humidity_2m_min,wind_speed_10m_max"
	archiveDailyVars  = "temperature_2m_max,temperature_2m_min,precipitation_sum,weather_code,relative_humidity_2m_min,wind_speed_10m_max"
)

// Client is the HTTP adapter for both Open-Meteo data sources. All requests
// go through the shared BaseClient for retries and circuit breaking.
type Client struct {
	base        *external.BaseClient
	forecastURL string
	archiveURL  string
}

// NewClient creates a weather data client. forecastURL and archiveURL are the
// API base endpoints without query strings; tests point them at local fakes.
func NewClient(base *external.BaseClient, forecastURL, archiveURL string) *Client {
	return &Client{
		base:        base,
		forecastURL: forecastURL,
		archiveURL:  archiveURL,
	}
}

// forecastResponse mirrors the forecast API's time-aligned daily arrays.
type forecastResponse struct {
	Daily struct {
		Time          []string   `json:"time"`
		TempMax       []float64  `json:"temperature_2m_max"`
		TempMin       []float64  `json:"temperature_2m_min"`
		PrecipProbMax []*int     `json:"precipitation_probability_max"`
		PrecipSum     []*float64 `json:"precipitation_sum"`
		WeatherCode   []int      `json:"weathercode"`
		HumidityMin   []*float64 `json:"relative_humidity_2m_min"`
		WindMax       []*float64 `json:"wind_speed_10m_max"`
	} `json:"daily"`
}

// archiveResponse mirrors the archive API's daily arrays.
type archiveResponse struct {
	Daily struct {
		Time        []string   `json:"time"`
		TempMax     []*float64 `json:"temperature_2m_max"`
		TempMin     []*float64 `json:"temperature_2m_min"`
		PrecipSum   []*float64 `json:"precipitation_sum"`
		WeatherCode []*int     `json:"weather_code"`
		HumidityMin []*float64 `json:"relative_humidity_2m_min"`
		WindMax     []*float64 `json:"wind_speed_10m_max"`
	} `json:"daily"`
}

// ArchiveDay is one raw daily observation from a single historical year.
// HumidityMin and WindMax stay nullable so aggregation can average only the
// years that reported them.
type ArchiveDay struct {
	Date        string
	TempMax     float64
	TempMin     float64
	PrecipSum   float64
	WeatherCode int
	HumidityMin *float64
	WindMax     *float64
}

// FetchForecast retrieves the daily forecast for the location. With a nil
// range it requests the default 7-day window; otherwise the exact date span.
// Each day is mapped through the weather code table and the fire-weather
// estimator and tagged as forecast data.
func (c *Client) FetchForecast(ctx context.Context, lat, lng float64, r *types.DateRange) ([]types.WeatherDay, error) {
	params := url.Values{}
	params.Set("latitude", formatCoord(lat))
	params.Set("longitude", formatCoord(lng))
	params.Set("daily", forecastDailyVars)
	params.Set("timezone", "auto")
	if r == nil {
		params.Set("forecast_days", "7")
	} else {
		params.Set("start_date", r.StartDate)
		params.Set("end_date", r.EndDate)
	}

	var resp forecastResponse
	if err := c.getJSON(ctx, c.forecastURL, params, types.ErrCodeUpstreamForecast, &resp); err != nil {
		return nil, err
	}

	daily := resp.Daily
	days := make([]types.WeatherDay, 0, len(daily.Time))
	for i, date := range daily.Time {
		if i >= len(daily.TempMax) || i >= len(daily.TempMin) || i >= len(daily.WeatherCode) {
			return nil, types.NewAppError(types.ErrCodeUpstreamForecast, "forecast API returned misaligned daily arrays", nil)
		}
		code := daily.WeatherCode[i]
		fwi := fire.EstimateIndex(
			daily.TempMax[i],
			at(daily.HumidityMin, i),
			at(daily.WindMax, i),
			at(daily.PrecipSum, i),
		)
		days = append(days, types.WeatherDay{
			Date:               date,
			TempMax:            roundTemp(daily.TempMax[i]),
			TempMin:            roundTemp(daily.TempMin[i]),
			PrecipProbability:  intOrZero(at(daily.PrecipProbMax, i)),
			WeatherCode:        code,
			WeatherDescription: wmo.Lookup(code).Description,
			DataSource:         types.SourceForecast,
			FireWeatherIndex:   &fwi,
			FireDangerLevel:    fire.DangerLevel(&fwi),
		})
	}
	return days, nil
}

// FetchArchiveYear retrieves one historical year's daily observations for the
// given date span. Rows missing a temperature or weather code are dropped;
// the aggregation layer tolerates sparse years.
func (c *Client) FetchArchiveYear(ctx context.Context, lat, lng float64, startDate, endDate string) ([]ArchiveDay, error) {
	params := url.Values{}
	params.Set("latitude", formatCoord(lat))
	params.Set("longitude", formatCoord(lng))
	params.Set("start_date", startDate)
	params.Set("end_date", endDate)
	params.Set("daily", archiveDailyVars)
	params.Set("timezone", "auto")

	var resp archiveResponse
	if err := c.getJSON(ctx, c.archiveURL, params, types.ErrCodeUpstreamArchive, &resp); err != nil {
		return nil, err
	}

	daily := resp.Daily
	days := make([]ArchiveDay, 0, len(daily.Time))
	for i, date := range daily.Time {
		tMax := at(daily.TempMax, i)
		tMin := at(daily.TempMin, i)
		code := at(daily.WeatherCode, i)
		if tMax == nil || tMin == nil || code == nil {
			continue
		}
		days = append(days, ArchiveDay{
			Date:        date,
			TempMax:     *tMax,
			TempMin:     *tMin,
			PrecipSum:   floatOrZero(at(daily.PrecipSum, i)),
			WeatherCode: *code,
			HumidityMin: at(daily.HumidityMin, i),
			WindMax:     at(daily.WindMax, i),
		})
	}
	return days, nil
}

// getJSON performs a GET against base+params and decodes the JSON body.
// Non-2xx statuses and decode failures map to an AppError with the given
// upstream code.
func (c *Client) getJSON(ctx context.Context, base string, params url.Values, code types.ErrorCode, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"?"+params.Encode(), nil)
	if err != nil {
		return types.NewAppError(types.ErrCodeInternalUnexpected, "building upstream request", err)
	}

	resp, err := c.base.Do(req)
	if err != nil {
		var appErr *types.AppError
		if errors.As(err, &appErr) {
			// Re-tag the generic upstream code with the source-specific one.
			return types.NewAppError(code, appErr.Message, appErr)
		}
		return types.NewAppError(code, "upstream request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.NewAppError(code, fmt.Sprintf("weather API error: %d", resp.StatusCode), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return types.NewAppError(code, "decoding weather API response", err)
	}
	return nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// roundTemp rounds a temperature to the nearest whole degree.
func roundTemp(v float64) int {
	return int(math.Round(v))
}

// at returns the i-th element of a nullable array, or nil when the upstream
// omitted the variable or returned a shorter array.
func at[T any](arr []*T, i int) *T {
	if i >= len(arr) {
		return nil
	}
	return arr[i]
}

func intOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
