package types

// DataSource tags the provenance of a WeatherDay: a live forecast or a
// multi-year historical average.
type DataSource string

const (
	SourceForecast   DataSource = "forecast"
	SourceHistorical DataSource = "historical"
)

// FireDangerLevel is the five-bucket classification derived from the
// fire weather index.
type FireDangerLevel string

const (
	FireDangerLow      FireDangerLevel = "low"
	FireDangerModerate FireDangerLevel = "moderate"
	FireDangerHigh     FireDangerLevel = "high"
	FireDangerVeryHigh FireDangerLevel = "very_high"
	FireDangerExtreme  FireDangerLevel = "extreme"
)

// fireDangerRank orders danger levels from least to most severe.
var fireDangerRank = map[FireDangerLevel]int{
	FireDangerLow:      0,
	FireDangerModerate: 1,
	FireDangerHigh:     2,
	FireDangerVeryHigh: 3,
	FireDangerExtreme:  4,
}

// Rank returns the severity ordinal of the level (low=0 .. extreme=4).
// Unknown levels rank as low.
func (l FireDangerLevel) Rank() int {
	return fireDangerRank[l]
}

// AtLeast reports whether the level is as severe or more severe than other.
func (l FireDangerLevel) AtLeast(other FireDangerLevel) bool {
	return l.Rank() >= other.Rank()
}

// AlertSeverity grades a WeatherAlert.
type AlertSeverity string

const (
	SeverityInfo    AlertSeverity = "info"
	SeverityWarning AlertSeverity = "warning"
	SeverityDanger  AlertSeverity = "danger"
)

// AlertType identifies the hazard category of a WeatherAlert. At most one
// alert per type exists for a forecast window.
type AlertType string

const (
	AlertCold  AlertType = "cold"
	AlertStorm AlertType = "storm"
	AlertSnow  AlertType = "snow"
	AlertRain  AlertType = "rain"
	AlertHeat  AlertType = "heat"
	AlertFire  AlertType = "fire"
)

// PackingCategory groups packing items for display.
type PackingCategory string

const (
	CategoryShelterSleep     PackingCategory = "shelter_sleep"
	CategoryClothing         PackingCategory = "clothing"
	CategoryCookingFood      PackingCategory = "cooking_food"
	CategorySafetyNavigation PackingCategory = "safety_navigation"
	CategoryExtras           PackingCategory = "extras"
)

// CategoryOrder is the fixed display order of packing categories.
var CategoryOrder = []PackingCategory{
	CategoryShelterSleep,
	CategoryClothing,
	CategoryCookingFood,
	CategorySafetyNavigation,
	CategoryExtras,
}

// Amenity is a facility available at a campground.
type Amenity string

const (
	AmenityFirePit              Amenity = "fire_pit"
	AmenityPotableWater         Amenity = "potable_water"
	AmenityFlushToilets         Amenity = "flush_toilets"
	AmenityVaultToilets         Amenity = "vault_toilets"
	AmenityShowers              Amenity = "showers"
	AmenitySwimming             Amenity = "swimming"
	AmenityTrails               Amenity = "trails"
	AmenityBoatLaunch           Amenity = "boat_launch"
	AmenityBearLocker           Amenity = "bear_locker"
	AmenityElectricity          Amenity = "electricity"
	AmenityWheelchairAccessible Amenity = "wheelchair_accessible"
	AmenityPlayground           Amenity = "playground"
	AmenityLaundry              Amenity = "laundry"
	AmenityDumpStation          Amenity = "dump_station"
)

// Activity is something visitors can do in a park.
type Activity string

const (
	ActivityHiking             Activity = "hiking"
	ActivityCanoeing           Activity = "canoeing"
	ActivityKayaking           Activity = "kayaking"
	ActivityFishing            Activity = "fishing"
	ActivitySwimming           Activity = "swimming"
	ActivityWildlifeViewing    Activity = "wildlife_viewing"
	ActivityCycling            Activity = "cycling"
	ActivityRockClimbing       Activity = "rock_climbing"
	ActivityCrossCountrySkiing Activity = "cross_country_skiing"
	ActivitySnowshoeing        Activity = "snowshoeing"
	ActivitySurfing            Activity = "surfing"
	ActivityScubaDiving        Activity = "scuba_diving"
	ActivityStargazing         Activity = "stargazing"
	ActivityPhotography        Activity = "photography"
)

// Terrain describes the dominant terrain of a campground.
type Terrain string

const (
	TerrainForest   Terrain = "forest"
	TerrainCoastal  Terrain = "coastal"
	TerrainAlpine   Terrain = "alpine"
	TerrainLakeside Terrain = "lakeside"
	TerrainPrairie  Terrain = "prairie"
	TerrainTundra   Terrain = "tundra"
)

// ParkType distinguishes the managing jurisdiction.
type ParkType string

const (
	ParkNational    ParkType = "national"
	ParkProvincial  ParkType = "provincial"
	ParkTerritorial ParkType = "territorial"
)
