package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blaketime/woodsmoke/internal/external"
	"github.com/blaketime/woodsmoke/internal/types"
)

// fixedNow anchors every branch decision in the suite.
var fixedNow = time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)

func newTestClient(forecastURL, archiveURL string) *Client {
	base := external.NewBaseClient(
		&http.Client{Timeout: 5 * time.Second},
		"test",
		external.RetryPolicy{MaxRetries: 0},
		"test/1.0",
		external.WithSleepFunc(func(time.Duration) {}),
	)
	return NewClient(base, forecastURL, archiveURL)
}

func newTestService(t *testing.T, forecastURL, archiveURL string, opts ...ServiceOption) *Service {
	t.Helper()
	all := append([]ServiceOption{
		WithClock(clockwork.NewFakeClockAt(fixedNow)),
	}, opts...)
	return NewService(newTestClient(forecastURL, archiveURL), nil, all...)
}

func forecastJSON(dates []string, tempMax, tempMin []float64, codes []int) string {
	body := map[string]any{
		"daily": map[string]any{
			"time":               dates,
			"temperature_2m_max": tempMax,
			"temperature_2m_min": tempMin,
			"weathercode":        codes,
		},
	}
	b, _ := json.Marshal(body)
	return string(b)
}

func archiveJSON(dates []string, tempMax, tempMin []float64, codes []int) string {
	body := map[string]any{
		"daily": map[string]any{
			"time":               dates,
			"temperature_2m_max": tempMax,
			"temperature_2m_min": tempMin,
			"weather_code":       codes,
		},
	}
	b, _ := json.Marshal(body)
	return string(b)
}

func TestFetchNilRangeUsesDefaultForecastWindow(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		fmt.Fprint(w, forecastJSON(
			[]string{"2026-07-01", "2026-07-02"},
			[]float64{21.4, 23.6},
			[]float64{10.2, 11.8},
			[]int{0, 3},
		))
	}))
	defer srv.Close()

	svc := newTestService(t, srv.URL, srv.URL)
	days, err := svc.Fetch(context.Background(), 51.1784, -115.5708, nil)
	require.NoError(t, err)
	require.Len(t, days, 2)

	assert.Equal(t, []string{"7"}, gotQuery["forecast_days"])
	assert.Equal(t, []string{"51.1784"}, gotQuery["latitude"])
	assert.Empty(t, gotQuery["start_date"])

	assert.Equal(t, "2026-07-01", days[0].Date)
	assert.Equal(t, 21, days[0].TempMax)
	assert.Equal(t, 10, days[0].TempMin)
	assert.Equal(t, "Clear sky", days[0].WeatherDescription)
	assert.Equal(t, types.SourceForecast, days[0].DataSource)
	assert.Equal(t, 24, days[1].TempMax)
	require.NotNil(t, days[0].FireWeatherIndex)
}

func TestFetchNearRangeTakesForecastBranch(t *testing.T) {
	var gotQuery map[string][]string
	forecast := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		fmt.Fprint(w, forecastJSON([]string{"2026-07-08"}, []float64{25}, []float64{12}, []int{1}))
	}))
	defer forecast.Close()
	archive := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("archive API must not be called for a near-term range")
	}))
	defer archive.Close()

	svc := newTestService(t, forecast.URL, archive.URL)
	r := &types.DateRange{StartDate: "2026-07-08", EndDate: "2026-07-10"}
	days, err := svc.Fetch(context.Background(), 45.5, -78.4, r)
	require.NoError(t, err)
	require.Len(t, days, 1)

	assert.Equal(t, []string{"2026-07-08"}, gotQuery["start_date"])
	assert.Equal(t, []string{"2026-07-10"}, gotQuery["end_date"])
	assert.Equal(t, types.SourceForecast, days[0].DataSource)
}

func TestFetchFarRangeTakesHistoricalBranch(t *testing.T) {
	var mu sync.Mutex
	var startDates []string

	archive := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := r.URL.Query().Get("start_date")
		mu.Lock()
		startDates = append(startDates, start)
		mu.Unlock()
		// Serve the same mild two days for whatever year is asked.
		year := start[:4]
		fmt.Fprint(w, archiveJSON(
			[]string{year + "-09-01", year + "-09-02"},
			[]float64{18, 19},
			[]float64{6, 7},
			[]int{2, 61},
		))
	}))
	defer archive.Close()
	forecast := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("forecast API must not be called for a far-future range")
	}))
	defer forecast.Close()

	svc := newTestService(t, forecast.URL, archive.URL)
	r := &types.DateRange{StartDate: "2026-09-01", EndDate: "2026-09-02"}
	days, err := svc.Fetch(context.Background(), 45.5, -78.4, r)
	require.NoError(t, err)
	require.Len(t, days, 2)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, startDates, DefaultHistoricalYears)
	assert.ElementsMatch(t, []string{
		"2025-09-01", "2024-09-01", "2023-09-01", "2022-09-01", "2021-09-01",
	}, startDates)

	assert.Equal(t, "2026-09-01", days[0].Date)
	assert.Equal(t, types.SourceHistorical, days[0].DataSource)
	assert.Equal(t, 18, days[0].TempMax)
}

func TestFetchHistoricalToleratesPartialYearFailures(t *testing.T) {
	archive := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := r.URL.Query().Get("start_date")
		// Two of the five years are missing upstream.
		if start[:4] == "2023" || start[:4] == "2021" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		year := start[:4]
		fmt.Fprint(w, archiveJSON([]string{year + "-09-01"}, []float64{20}, []float64{8}, []int{1}))
	}))
	defer archive.Close()

	svc := newTestService(t, archive.URL, archive.URL)
	r := &types.DateRange{StartDate: "2026-09-01", EndDate: "2026-09-01"}
	days, err := svc.Fetch(context.Background(), 45.5, -78.4, r)
	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.Equal(t, 20, days[0].TempMax)
}

func TestFetchHistoricalAllYearsFailing(t *testing.T) {
	archive := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer archive.Close()

	svc := newTestService(t, archive.URL, archive.URL)
	r := &types.DateRange{StartDate: "2026-09-01", EndDate: "2026-09-01"}
	_, err := svc.Fetch(context.Background(), 45.5, -78.4, r)
	require.Error(t, err)

	var appErr *types.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, types.ErrCodeUpstreamArchive, appErr.Code)
	assert.Equal(t, "Unable to load historical weather data. Please try again later.", appErr.Message)
}

func TestFetchHistoricalCancelledContext(t *testing.T) {
	archive := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, archiveJSON([]string{"2025-09-01"}, []float64{20}, []float64{8}, []int{1}))
	}))
	defer archive.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := newTestService(t, archive.URL, archive.URL)
	r := &types.DateRange{StartDate: "2026-09-01", EndDate: "2026-09-01"}
	_, err := svc.Fetch(ctx, 45.5, -78.4, r)
	require.Error(t, err)

	var appErr *types.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, types.ErrCodeUpstreamArchive, appErr.Code)
}

func TestFetchRejectsInvalidRange(t *testing.T) {
	svc := newTestService(t, "http://unused", "http://unused")

	tests := []struct {
		name     string
		r        types.DateRange
		wantCode types.ErrorCode
	}{
		{"garbage start date", types.DateRange{StartDate: "July 8", EndDate: "2026-07-10"}, types.ErrCodeValidationInvalidDate},
		{"garbage end date", types.DateRange{StartDate: "2026-07-08", EndDate: "soon"}, types.ErrCodeValidationInvalidDate},
		{"inverted range", types.DateRange{StartDate: "2026-07-10", EndDate: "2026-07-08"}, types.ErrCodeValidationDateRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Fetch(context.Background(), 45.5, -78.4, &tt.r)
			require.Error(t, err)
			var appErr *types.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, tt.wantCode, appErr.Code)
		})
	}
}

func TestWithinForecastHorizonBoundary(t *testing.T) {
	svc := newTestService(t, "http://unused", "http://unused")

	assert.True(t, svc.withinForecastHorizon(types.DateRange{
		StartDate: "2026-07-02", EndDate: "2026-07-05",
	}))
	// Ending exactly on the horizon still uses the forecast source.
	assert.True(t, svc.withinForecastHorizon(types.DateRange{
		StartDate: "2026-07-10", EndDate: "2026-07-17",
	}))
	assert.False(t, svc.withinForecastHorizon(types.DateRange{
		StartDate: "2026-07-10", EndDate: "2026-07-18",
	}))
}
