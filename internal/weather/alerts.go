package weather

import (
	"fmt"

	"github.com/blaketime/woodsmoke/internal/fire"
	"github.com/blaketime/woodsmoke/internal/types"
	"github.com/blaketime/woodsmoke/internal/wmo"
)

// Alert thresholds.
const (
	coldDangerTempC  = -5
	coldWarningTempC = 2
	rainProbPercent  = 50
	heatWarningTempC = 32
)

// GenerateAlerts scans a WeatherDay sequence and produces at most one
// advisory per hazard category. It is a pure function of the full sequence.
//
// When any day in the sequence is an historical average, every message uses
// historically-framed wording instead of forecast-framed wording; the whole
// alert set is phrased consistently.
func GenerateAlerts(forecast []types.WeatherDay) []types.WeatherAlert {
	var alerts []types.WeatherAlert
	if len(forecast) == 0 {
		return alerts
	}

	isHistorical := false
	for _, d := range forecast {
		if d.DataSource == types.SourceHistorical {
			isHistorical = true
			break
		}
	}
	dayCount := len(forecast)

	var coldDanger, coldWarning, rainyDays, snowDays, stormDays, hotDays []types.WeatherDay
	for _, d := range forecast {
		switch {
		case d.TempMin <= coldDangerTempC:
			coldDanger = append(coldDanger, d)
		case d.TempMin <= coldWarningTempC:
			coldWarning = append(coldWarning, d)
		}
		if d.PrecipProbability >= rainProbPercent {
			rainyDays = append(rainyDays, d)
		}
		if wmo.IsSnow(d.WeatherCode) {
			snowDays = append(snowDays, d)
		}
		if wmo.IsStorm(d.WeatherCode) {
			stormDays = append(stormDays, d)
		}
		if d.TempMax >= heatWarningTempC {
			hotDays = append(hotDays, d)
		}
	}

	// Cold: the danger tier suppresses the separate warning tier.
	if len(coldDanger) > 0 {
		lowest := coldDanger[0].TempMin
		for _, d := range coldDanger[1:] {
			if d.TempMin < lowest {
				lowest = d.TempMin
			}
		}
		msg := fmt.Sprintf("Extreme cold expected — overnight lows dropping to %d°C. Pack a four-season sleeping bag and insulated layers.", lowest)
		if isHistorical {
			msg = fmt.Sprintf("Historically extreme cold — overnight lows around %d°C. Pack a four-season sleeping bag and insulated layers.", lowest)
		}
		alerts = append(alerts, types.WeatherAlert{Type: types.AlertCold, Severity: types.SeverityDanger, Message: msg})
	} else if len(coldWarning) > 0 {
		lowest := coldWarning[0].TempMin
		for _, d := range coldWarning[1:] {
			if d.TempMin < lowest {
				lowest = d.TempMin
			}
		}
		msg := fmt.Sprintf("Overnight lows near %d°C — pack warm layers and a three-season sleeping bag.", lowest)
		if isHistorical {
			msg = fmt.Sprintf("Overnight lows historically around %d°C — pack warm layers and a three-season sleeping bag.", lowest)
		}
		alerts = append(alerts, types.WeatherAlert{Type: types.AlertCold, Severity: types.SeverityWarning, Message: msg})
	}

	if len(stormDays) > 0 {
		msg := "Thunderstorms in the forecast. Avoid exposed ridges and have a plan for shelter."
		if isHistorical {
			msg = "Thunderstorms are historically common during these dates. Avoid exposed ridges and have a plan for shelter."
		}
		alerts = append(alerts, types.WeatherAlert{Type: types.AlertStorm, Severity: types.SeverityDanger, Message: msg})
	}

	if len(snowDays) > 0 {
		msg := fmt.Sprintf("Snow expected on %d day%s. Roads may be affected — check conditions before heading out.", len(snowDays), plural(len(snowDays)))
		if isHistorical {
			msg = fmt.Sprintf("Snow historically common on %d day%s. Roads may be affected — check conditions before heading out.", len(snowDays), plural(len(snowDays)))
		}
		alerts = append(alerts, types.WeatherAlert{Type: types.AlertSnow, Severity: types.SeverityWarning, Message: msg})
	}

	if len(rainyDays) > 0 {
		msg := fmt.Sprintf("Rain likely on %d of %d days. Bring waterproof layers and a tarp for your campsite.", len(rainyDays), dayCount)
		if isHistorical {
			msg = fmt.Sprintf("Rain historically likely on %d of %d days. Bring waterproof layers and a tarp for your campsite.", len(rainyDays), dayCount)
		}
		alerts = append(alerts, types.WeatherAlert{Type: types.AlertRain, Severity: types.SeverityInfo, Message: msg})
	}

	if len(hotDays) > 0 {
		highest := hotDays[0].TempMax
		for _, d := range hotDays[1:] {
			if d.TempMax > highest {
				highest = d.TempMax
			}
		}
		msg := fmt.Sprintf("High of %d°C expected. Stay hydrated, seek shade midday, and store food carefully.", highest)
		if isHistorical {
			msg = fmt.Sprintf("Historically high temperatures around %d°C. Stay hydrated, seek shade midday, and store food carefully.", highest)
		}
		alerts = append(alerts, types.WeatherAlert{Type: types.AlertHeat, Severity: types.SeverityWarning, Message: msg})
	}

	switch PeakFireDanger(forecast) {
	case types.FireDangerExtreme:
		msg := "Extreme fire danger — campfire bans are highly likely. Bring a camp stove for cooking and avoid all open flames."
		if isHistorical {
			msg = "Historically extreme fire danger during these dates — campfire bans are highly likely. Bring a camp stove for cooking and avoid all open flames."
		}
		alerts = append(alerts, types.WeatherAlert{Type: types.AlertFire, Severity: types.SeverityDanger, Message: msg})
	case types.FireDangerHigh, types.FireDangerVeryHigh:
		msg := "Fire danger is elevated — campfire restrictions may be in effect. Check with park staff before lighting fires and never leave a fire unattended."
		if isHistorical {
			msg = "Historically elevated fire danger — campfire restrictions may apply. Check with park staff before lighting fires and never leave a fire unattended."
		}
		alerts = append(alerts, types.WeatherAlert{Type: types.AlertFire, Severity: types.SeverityWarning, Message: msg})
	}

	return alerts
}

// PeakFireDanger returns the danger level of the highest fire weather index
// across the sequence. Days without an index count as zero.
func PeakFireDanger(forecast []types.WeatherDay) types.FireDangerLevel {
	peak := 0
	for _, d := range forecast {
		if d.FireWeatherIndex != nil && *d.FireWeatherIndex > peak {
			peak = *d.FireWeatherIndex
		}
	}
	return fire.DangerLevel(&peak)
}

func plural(n int) string {
	if n > 1 {
		return "s"
	}
	return ""
}
