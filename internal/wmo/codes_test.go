package wmo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		wantDesc string
		wantSev  Severity
	}{
		{"clear sky", 0, "Clear sky", SeverityClear},
		{"thunderstorm", 95, "Thunderstorm", SeveritySevere},
		{"heavy snow", 75, "Heavy snow", SeveritySevere},
		{"unknown code falls back to default", 42, "Unknown", SeverityMild},
		{"negative code falls back to default", -1, "Unknown", SeverityMild},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := Lookup(tt.code)
			assert.Equal(t, tt.wantDesc, entry.Description)
			assert.Equal(t, tt.wantSev, entry.Severity)
			assert.NotEmpty(t, entry.Icon)
		})
	}
}

func TestIsSnow(t *testing.T) {
	for _, code := range []int{71, 73, 75, 77, 85, 86} {
		assert.True(t, IsSnow(code), "code %d", code)
	}
	for _, code := range []int{0, 61, 95, 51} {
		assert.False(t, IsSnow(code), "code %d", code)
	}
}

func TestIsStorm(t *testing.T) {
	for _, code := range []int{95, 96, 99} {
		assert.True(t, IsStorm(code), "code %d", code)
	}
	for _, code := range []int{0, 65, 75} {
		assert.False(t, IsStorm(code), "code %d", code)
	}
}
