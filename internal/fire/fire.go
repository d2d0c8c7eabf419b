// Package fire implements a simplified fire-weather estimate from daily
// temperature, humidity, wind, and precipitation.
//
// This is not the official Canadian FWI (which requires sequential daily
// state tracking), but a reasonable proxy: hot + dry + windy + no rain =
// higher danger. Scores land on roughly the same 0-50+ scale as FWI and
// bucket into the same five danger levels.
package fire

import (
	"math"

	"github.com/blaketime/woodsmoke/internal/types"
)

// Danger level thresholds on the index scale.
const (
	thresholdModerate = 5
	thresholdHigh     = 12
	thresholdVeryHigh = 22
	thresholdExtreme  = 38
)

// EstimateIndex computes the fire weather index for one day. humidityMin,
// windMax, and precip may be nil when the upstream source has no data;
// missing humidity defaults to 50% RH and missing wind to 10 km/h.
func EstimateIndex(tempMax float64, humidityMin, windMax, precip *float64) int {
	// Cold/wet conditions = minimal fire risk.
	if tempMax < 5 {
		return 0
	}
	if precip != nil && *precip > 5 {
		return 1
	}

	// Temperature component: ramps up above 15°C, peaks around 35+.
	tempScore := clamp01((tempMax - 15) / 20)

	// Humidity component: lower humidity = higher risk. Below 25% is extreme.
	rh := 50.0
	if humidityMin != nil {
		rh = *humidityMin
	}
	humidityScore := clamp01((70 - rh) / 50)

	// Wind component: higher wind = higher risk. 30+ km/h is significant.
	wind := 10.0
	if windMax != nil {
		wind = *windMax
	}
	windScore := clamp01(wind / 40)

	// Precipitation dampening: recent rain reduces risk.
	dampening := 1.0
	if precip != nil && *precip > 0.5 {
		dampening = math.Max(0.1, 1-*precip/10)
	}

	// Weighted combination scaled to roughly match the FWI range (0-50+).
	raw := (tempScore*20 + humidityScore*15 + windScore*10) * dampening
	return int(math.Round(raw))
}

// DangerLevel buckets an index into the five danger levels. A nil index is
// treated as low.
func DangerLevel(index *int) types.FireDangerLevel {
	if index == nil {
		return types.FireDangerLow
	}
	switch {
	case *index < thresholdModerate:
		return types.FireDangerLow
	case *index < thresholdHigh:
		return types.FireDangerModerate
	case *index < thresholdVeryHigh:
		return types.FireDangerHigh
	case *index < thresholdExtreme:
		return types.FireDangerVeryHigh
	default:
		return types.FireDangerExtreme
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(v, 1))
}
