// Package config defines the service configuration. Configuration is loaded
// once at process startup and is immutable thereafter; values come from the
// OS environment with an optional .env file for local development. Any
// missing required value or invalid format fails startup immediately.
package config

import "time"

// Config is the top-level configuration struct. Sub-components receive only
// the specific subsets they require.
type Config struct {
	Environment string `envconfig:"APP_ENV" default:"local" validate:"required,oneof=local dev staging prod"`
	Service     string `envconfig:"SERVICE_NAME" default:"woodsmoke-api"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info" validate:"oneof=debug info warn error"`

	Server  ServerConfig
	Weather WeatherConfig
}

// ServerConfig holds HTTP server tuning.
type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"8080"`
	RequestTimeout  time.Duration `envconfig:"REQUEST_TIMEOUT" default:"29s"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// WeatherConfig holds the upstream weather data source configuration.
type WeatherConfig struct {
	ForecastBaseURL string `envconfig:"WEATHER_FORECAST_URL" default:"https://api.open-meteo.com/v1/forecast" validate:"required,url"`
	ArchiveBaseURL  string `envconfig:"WEATHER_ARCHIVE_URL" default:"https://archive-api.open-meteo.com/v1/archive" validate:"required,url"`
	UserAgent       string `envconfig:"WEATHER_USER_AGENT" default:"woodsmoke/1.0"`

	// FetchTimeout bounds each individual upstream fetch, including the
	// per-year archive fetches of the historical branch.
	FetchTimeout time.Duration `envconfig:"WEATHER_FETCH_TIMEOUT" default:"10s"`
	MaxRetries   int           `envconfig:"WEATHER_MAX_RETRIES" default:"2" validate:"min=0,max=5"`

	// ForecastHorizonDays is how far out the forecast source covers; ranges
	// ending beyond it use historical averages instead.
	ForecastHorizonDays int `envconfig:"WEATHER_FORECAST_HORIZON_DAYS" default:"16" validate:"min=1,max=16"`

	// HistoricalYears is how many recent complete years feed an historical
	// average.
	HistoricalYears int `envconfig:"WEATHER_HISTORICAL_YEARS" default:"5" validate:"min=1,max=10"`
}
