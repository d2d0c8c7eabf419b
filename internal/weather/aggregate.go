package weather

import (
	"math"
	"time"

	"github.com/blaketime/woodsmoke/internal/fire"
	"github.com/blaketime/woodsmoke/internal/types"
	"github.com/blaketime/woodsmoke/internal/wmo"
)

// aggregateHistorical collapses the surviving years' observations into one
// synthetic average day per calendar date of the requested range. Dates with
// no observations for their month-day in any year (Feb 29 in non-leap years)
// are skipped, so the output may have gaps.
func aggregateHistorical(years [][]ArchiveDay, r types.DateRange) []types.WeatherDay {
	byMonthDay := make(map[string][]ArchiveDay)
	for _, yearDays := range years {
		for _, day := range yearDays {
			md := monthDay(day.Date)
			byMonthDay[md] = append(byMonthDay[md], day)
		}
	}

	start, err := time.Parse(types.ISODate, r.StartDate)
	if err != nil {
		return nil
	}
	end, err := time.Parse(types.ISODate, r.EndDate)
	if err != nil {
		return nil
	}

	var result []types.WeatherDay
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dateStr := d.Format(types.ISODate)
		entries := byMonthDay[monthDay(dateStr)]
		if len(entries) == 0 {
			continue
		}

		n := float64(len(entries))

		var sumMax, sumMin, sumPrecip float64
		rainyYears := 0
		codesInOrder := make([]int, 0, len(entries))
		var sumHumidity float64
		humidityYears := 0
		var sumWind float64
		windYears := 0
		for _, e := range entries {
			sumMax += e.TempMax
			sumMin += e.TempMin
			sumPrecip += e.PrecipSum
			if e.PrecipSum > 0.5 {
				rainyYears++
			}
			codesInOrder = append(codesInOrder, e.WeatherCode)
			if e.HumidityMin != nil {
				sumHumidity += *e.HumidityMin
				humidityYears++
			}
			if e.WindMax != nil {
				sumWind += *e.WindMax
				windYears++
			}
		}

		avgMax := math.Round(sumMax / n)
		avgMin := math.Round(sumMin / n)
		precipProbability := int(math.Round(float64(rainyYears) / n * 100))
		weatherCode := mode(codesInOrder)
		avgPrecip := sumPrecip / n

		var avgHumidity *float64
		if humidityYears > 0 {
			h := sumHumidity / float64(humidityYears)
			avgHumidity = &h
		}
		var avgWind *float64
		if windYears > 0 {
			w := sumWind / float64(windYears)
			avgWind = &w
		}

		// The averaged inputs run back through the estimator so the stored
		// index is exactly reproducible from the stored day.
		fwi := fire.EstimateIndex(avgMax, avgHumidity, avgWind, &avgPrecip)

		result = append(result, types.WeatherDay{
			Date:               dateStr,
			TempMax:            int(avgMax),
			TempMin:            int(avgMin),
			PrecipProbability:  precipProbability,
			WeatherCode:        weatherCode,
			WeatherDescription: wmo.Lookup(weatherCode).Description,
			DataSource:         types.SourceHistorical,
			FireWeatherIndex:   &fwi,
			FireDangerLevel:    fire.DangerLevel(&fwi),
		})
	}

	return result
}

// monthDay extracts the "MM-DD" suffix of an ISO date.
func monthDay(dateStr string) string {
	if len(dateStr) < 10 {
		return dateStr
	}
	return dateStr[5:]
}

// mode returns the most frequent value. Ties resolve to the value whose
// first occurrence comes earliest, matching the upstream aggregation's
// behavior; the tie-break is arbitrary but kept for output parity.
func mode(vals []int) int {
	counts := make(map[int]int, len(vals))
	firstSeen := make([]int, 0, len(vals))
	for _, v := range vals {
		if counts[v] == 0 {
			firstSeen = append(firstSeen, v)
		}
		counts[v]++
	}

	best := vals[0]
	bestCount := 0
	for _, v := range firstSeen {
		if counts[v] > bestCount {
			best = v
			bestCount = counts[v]
		}
	}
	return best
}
