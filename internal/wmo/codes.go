// Package wmo maps WMO daily weather codes to display metadata.
// The table is pure data; the only operation is lookup-with-default.
package wmo

// Severity grades how disruptive a weather code is for camping.
type Severity string

const (
	SeverityClear    Severity = "clear"
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

// Entry describes one weather code.
type Entry struct {
	Description string
	Icon        string
	Severity    Severity
}

// defaultEntry is returned for codes not in the table. Unknown codes are
// never an error.
var defaultEntry = Entry{Description: "Unknown", Icon: "Cloud", Severity: SeverityMild}

var codes = map[int]Entry{
	0:  {Description: "Clear sky", Icon: "Sun", Severity: SeverityClear},
	1:  {Description: "Mainly clear", Icon: "Sun", Severity: SeverityClear},
	2:  {Description: "Partly cloudy", Icon: "CloudSun", Severity: SeverityClear},
	3:  {Description: "Overcast", Icon: "Cloud", Severity: SeverityMild},
	45: {Description: "Fog", Icon: "CloudFog", Severity: SeverityMild},
	48: {Description: "Depositing rime fog", Icon: "CloudFog", Severity: SeverityMild},
	51: {Description: "Light drizzle", Icon: "CloudDrizzle", Severity: SeverityMild},
	53: {Description: "Moderate drizzle", Icon: "CloudDrizzle", Severity: SeverityModerate},
	55: {Description: "Dense drizzle", Icon: "CloudDrizzle", Severity: SeverityModerate},
	56: {Description: "Light freezing drizzle", Icon: "CloudHail", Severity: SeverityModerate},
	57: {Description: "Dense freezing drizzle", Icon: "CloudHail", Severity: SeveritySevere},
	61: {Description: "Slight rain", Icon: "CloudRain", Severity: SeverityMild},
	63: {Description: "Moderate rain", Icon: "CloudRain", Severity: SeverityModerate},
	65: {Description: "Heavy rain", Icon: "CloudRainWind", Severity: SeveritySevere},
	66: {Description: "Light freezing rain", Icon: "CloudHail", Severity: SeverityModerate},
	67: {Description: "Heavy freezing rain", Icon: "CloudHail", Severity: SeveritySevere},
	71: {Description: "Slight snow", Icon: "CloudSnow", Severity: SeverityModerate},
	73: {Description: "Moderate snow", Icon: "CloudSnow", Severity: SeverityModerate},
	75: {Description: "Heavy snow", Icon: "Snowflake", Severity: SeveritySevere},
	77: {Description: "Snow grains", Icon: "Snowflake", Severity: SeverityModerate},
	80: {Description: "Slight rain showers", Icon: "CloudSunRain", Severity: SeverityMild},
	81: {Description: "Moderate rain showers", Icon: "CloudRain", Severity: SeverityModerate},
	82: {Description: "Violent rain showers", Icon: "CloudRainWind", Severity: SeveritySevere},
	85: {Description: "Slight snow showers", Icon: "CloudSnow", Severity: SeverityModerate},
	86: {Description: "Heavy snow showers", Icon: "Snowflake", Severity: SeveritySevere},
	95: {Description: "Thunderstorm", Icon: "CloudLightning", Severity: SeveritySevere},
	96: {Description: "Thunderstorm with slight hail", Icon: "CloudLightning", Severity: SeveritySevere},
	99: {Description: "Thunderstorm with heavy hail", Icon: "CloudLightning", Severity: SeveritySevere},
}

// Lookup returns the entry for a weather code, or the safe default for codes
// not in the table.
func Lookup(code int) Entry {
	if e, ok := codes[code]; ok {
		return e
	}
	return defaultEntry
}

// snowCodes and stormCodes are the code classes shared by the alert generator
// and the packing rules.
var (
	snowCodes  = map[int]struct{}{71: {}, 73: {}, 75: {}, 77: {}, 85: {}, 86: {}}
	stormCodes = map[int]struct{}{95: {}, 96: {}, 99: {}}
)

// IsSnow reports whether the code is any form of snowfall.
func IsSnow(code int) bool {
	_, ok := snowCodes[code]
	return ok
}

// IsStorm reports whether the code is a thunderstorm.
func IsStorm(code int) bool {
	_, ok := stormCodes[code]
	return ok
}
