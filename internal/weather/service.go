package weather

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/blaketime/woodsmoke/internal/observability"
	"github.com/blaketime/woodsmoke/internal/types"
)

// Defaults for the branch policy and historical aggregation.
const (
	// DefaultForecastHorizonDays is how far out the forecast API covers.
	// Ranges ending beyond this fall back to historical averages.
	DefaultForecastHorizonDays = 16

	// DefaultHistoricalYears is how many recent complete years feed an
	// historical average.
	DefaultHistoricalYears = 5

	// DefaultFetchTimeout bounds each individual upstream fetch.
	DefaultFetchTimeout = 10 * time.Second
)

// Fetcher is the consumer-facing interface for retrieving normalized weather
// sequences. Handlers depend on this rather than the concrete Service so
// tests can inject fakes.
type Fetcher interface {
	// Fetch produces a chronologically ordered WeatherDay sequence covering
	// the requested window, or a default 7-day window when r is nil. The
	// historical branch may leave gaps for calendar dates with no data in
	// any surviving year.
	Fetch(ctx context.Context, lat, lng float64, r *types.DateRange) ([]types.WeatherDay, error)
}

// Service decides between the forecast and historical branches and runs the
// historical fan-out. One Service is shared by all requests; it holds no
// per-request state.
type Service struct {
	client       *Client
	clock        clockwork.Clock
	logger       *slog.Logger
	metrics      *observability.Metrics
	horizonDays  int
	years        int
	fetchTimeout time.Duration
}

// ServiceOption is a functional option for configuring a Service.
type ServiceOption func(*Service)

// WithClock overrides the time source used for the branch decision and the
// historical year selection. Tests freeze time with a fake clock.
func WithClock(c clockwork.Clock) ServiceOption {
	return func(s *Service) { s.clock = c }
}

// WithHorizonDays overrides the forecast horizon.
func WithHorizonDays(days int) ServiceOption {
	return func(s *Service) { s.horizonDays = days }
}

// WithHistoricalYears overrides how many years feed an historical average.
func WithHistoricalYears(years int) ServiceOption {
	return func(s *Service) { s.years = years }
}

// WithFetchTimeout overrides the per-fetch timeout.
func WithFetchTimeout(d time.Duration) ServiceOption {
	return func(s *Service) { s.fetchTimeout = d }
}

// WithMetrics attaches upstream fetch metrics.
func WithMetrics(m *observability.Metrics) ServiceOption {
	return func(s *Service) { s.metrics = m }
}

// NewService creates a weather service with production defaults.
func NewService(client *Client, logger *slog.Logger, opts ...ServiceOption) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Service{
		client:       client,
		clock:        clockwork.NewRealClock(),
		logger:       logger,
		horizonDays:  DefaultForecastHorizonDays,
		years:        DefaultHistoricalYears,
		fetchTimeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Fetch implements Fetcher.
func (s *Service) Fetch(ctx context.Context, lat, lng float64, r *types.DateRange) ([]types.WeatherDay, error) {
	if r == nil {
		return s.fetchForecast(ctx, lat, lng, nil)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if s.withinForecastHorizon(*r) {
		return s.fetchForecast(ctx, lat, lng, r)
	}
	return s.fetchHistorical(ctx, lat, lng, *r)
}

// withinForecastHorizon reports whether the range's end date is close enough
// to today for the live forecast source.
func (s *Service) withinForecastHorizon(r types.DateRange) bool {
	today := s.clock.Now().UTC().Truncate(24 * time.Hour)
	end, err := time.Parse(types.ISODate, r.EndDate)
	if err != nil {
		return true
	}
	diffDays := end.Sub(today).Hours() / 24
	return diffDays <= float64(s.horizonDays)
}

func (s *Service) fetchForecast(ctx context.Context, lat, lng float64, r *types.DateRange) ([]types.WeatherDay, error) {
	fctx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	days, err := s.client.FetchForecast(fctx, lat, lng, r)
	s.recordFetch("forecast", err)
	if err != nil {
		return nil, err
	}
	return days, nil
}

// fetchHistorical issues one archive fetch per recent year concurrently and
// joins all results before aggregating. Individual year failures are logged
// and dropped; only a total failure surfaces as an error.
func (s *Service) fetchHistorical(ctx context.Context, lat, lng float64, r types.DateRange) ([]types.WeatherDay, error) {
	currentYear := s.clock.Now().UTC().Year()

	results := make([][]ArchiveDay, s.years)
	var g errgroup.Group
	for i := 0; i < s.years; i++ {
		year := currentYear - 1 - i
		g.Go(func() error {
			yctx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
			defer cancel()

			start := replaceYear(r.StartDate, year)
			end := replaceYear(r.EndDate, year)
			days, err := s.client.FetchArchiveYear(yctx, lat, lng, start, end)
			s.recordFetch("archive", err)
			if err != nil {
				// Partial-failure tolerant: this year is simply excluded.
				s.logger.WarnContext(ctx, "archive year fetch failed",
					"year", year,
					"error", err,
				)
				return nil
			}
			results[i] = days
			return nil
		})
	}
	// Workers never return errors; Wait is a pure join.
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		// The caller abandoned the request; discard whatever arrived.
		return nil, types.NewAppError(types.ErrCodeUpstreamArchive, "historical fetch cancelled", err)
	}

	surviving := make([][]ArchiveDay, 0, s.years)
	for _, days := range results {
		if days != nil {
			surviving = append(surviving, days)
		}
	}
	if len(surviving) == 0 {
		return nil, types.NewAppError(
			types.ErrCodeUpstreamArchive,
			"Unable to load historical weather data. Please try again later.",
			nil,
		)
	}

	s.logger.InfoContext(ctx, "historical aggregation",
		"years_requested", s.years,
		"years_used", len(surviving),
		"range", fmt.Sprintf("%s/%s", r.StartDate, r.EndDate),
	)
	if s.metrics != nil {
		s.metrics.HistoricalYearsUsed.Observe(float64(len(surviving)))
	}

	return aggregateHistorical(surviving, r), nil
}

func (s *Service) recordFetch(source string, err error) {
	if s.metrics == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	s.metrics.UpstreamFetches.WithLabelValues(source, outcome).Inc()
}

// replaceYear swaps the year of an ISO date string, keeping the month-day
// span aligned across historical years. A Feb 29 start or end simply yields
// an invalid date in non-leap years, which that year's fetch rejects; the
// aggregation tolerates the missing year.
func replaceYear(dateStr string, year int) string {
	if len(dateStr) < 5 {
		return dateStr
	}
	return fmt.Sprintf("%d%s", year, dateStr[4:])
}
