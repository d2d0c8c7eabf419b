package packing

import (
	"fmt"

	"github.com/blaketime/woodsmoke/internal/types"
	"github.com/blaketime/woodsmoke/internal/weather"
	"github.com/blaketime/woodsmoke/internal/wmo"
)

// Stats summarizes a weather window for the rule pipeline.
type Stats struct {
	ColdestMin int
	HottestMax int
	RainyDays  int
	SnowDays   int
	StormDays  int
	TotalDays  int
}

// AnalyzeWeather reduces a WeatherDay sequence to the aggregates the rules
// key on. An empty sequence yields neutral mid-season values so the base
// list still generates.
func AnalyzeWeather(forecast []types.WeatherDay) Stats {
	if len(forecast) == 0 {
		return Stats{ColdestMin: 15, HottestMax: 20}
	}

	stats := Stats{
		ColdestMin: forecast[0].TempMin,
		HottestMax: forecast[0].TempMax,
		TotalDays:  len(forecast),
	}
	for _, d := range forecast {
		if d.TempMin < stats.ColdestMin {
			stats.ColdestMin = d.TempMin
		}
		if d.TempMax > stats.HottestMax {
			stats.HottestMax = d.TempMax
		}
		if d.PrecipProbability >= 50 {
			stats.RainyDays++
		}
		if wmo.IsSnow(d.WeatherCode) {
			stats.SnowDays++
		}
		if wmo.IsStorm(d.WeatherCode) {
			stats.StormDays++
		}
	}
	return stats
}

// Context carries the inputs a rule may consult. Campground is nil when the
// park has no campgrounds; amenity and terrain rules then no-op.
type Context struct {
	Park       types.Park
	Campground *types.Campground
	Forecast   []types.WeatherDay
	Stats      Stats
}

// A rule mutates the accumulator for one concern. Rules run in the fixed
// order of the pipeline slice below; the fire-danger override relies on
// running after the amenity rule and before the trip-duration rule.
type rule func(b *Builder, ctx Context)

var pipeline = []rule{
	baseEssentials,
	weatherDriven,
	amenityDriven,
	activityDriven,
	fireDangerOverride,
	terrainDriven,
	tripDuration,
}

// Generate builds the packing list for a trip. campgroundIndex selects which
// of the park's campgrounds the amenity and terrain rules evaluate against;
// out-of-range indexes fall back to the first campground.
func Generate(park types.Park, forecast []types.WeatherDay, campgroundIndex int) []types.PackingItem {
	var cg *types.Campground
	if len(park.Campgrounds) > 0 {
		if campgroundIndex < 0 || campgroundIndex >= len(park.Campgrounds) {
			campgroundIndex = 0
		}
		cg = &park.Campgrounds[campgroundIndex]
	}

	ctx := Context{
		Park:       park,
		Campground: cg,
		Forecast:   forecast,
		Stats:      AnalyzeWeather(forecast),
	}

	b := NewBuilder()
	for _, apply := range pipeline {
		apply(b, ctx)
	}
	return b.Items()
}

func baseEssentials(b *Builder, _ Context) {
	// Shelter & sleep
	b.Add("Tent", types.CategoryShelterSleep, "")
	b.Add("Sleeping bag", types.CategoryShelterSleep, "")
	b.Add("Sleeping pad", types.CategoryShelterSleep, "")
	b.Add("Pillow", types.CategoryShelterSleep, "")

	// Cooking & food
	b.Add("Camp stove", types.CategoryCookingFood, "")
	b.Add("Fuel canister", types.CategoryCookingFood, "")
	b.Add("Pot", types.CategoryCookingFood, "")
	b.Add("Utensils", types.CategoryCookingFood, "")
	b.Add("Plates & bowls", types.CategoryCookingFood, "")
	b.Add("Cooler", types.CategoryCookingFood, "")
	b.Add("Dish soap", types.CategoryCookingFood, "")
	b.Add("Trash bags", types.CategoryCookingFood, "")

	// Safety & navigation
	b.Add("First aid kit", types.CategorySafetyNavigation, "")
	b.Add("Headlamp + batteries", types.CategorySafetyNavigation, "")
	b.Add("Knife / multi-tool", types.CategorySafetyNavigation, "")
	b.Add("Matches / lighter", types.CategorySafetyNavigation, "")

	// Clothing
	b.Add("Base layers", types.CategoryClothing, "")
	b.Add("Hiking socks (x2)", types.CategoryClothing, "")
	b.Add("Sturdy shoes", types.CategoryClothing, "")

	// Extras
	b.Add("Toilet paper", types.CategoryExtras, "")
	b.Add("Towel", types.CategoryExtras, "")
	b.Add("Insect repellent", types.CategoryExtras, "")
}

func weatherDriven(b *Builder, ctx Context) {
	stats := ctx.Stats

	if stats.ColdestMin <= 5 {
		reason := fmt.Sprintf("Lows down to %d°C", stats.ColdestMin)
		b.Add("Warm hat", types.CategoryClothing, reason)
		b.Add("Gloves", types.CategoryClothing, reason)
		b.Add("Insulated jacket", types.CategoryClothing, reason)
		b.Add("Thermal base layers", types.CategoryClothing, reason)
	}

	if stats.ColdestMin <= -5 {
		reason := fmt.Sprintf("Extreme cold — lows to %d°C", stats.ColdestMin)
		b.Add("Four-season sleeping bag", types.CategoryShelterSleep, reason)
		b.Add("Insulated sleeping pad", types.CategoryShelterSleep, reason)
		b.Add("Balaclava", types.CategoryClothing, reason)
		b.Add("Hand warmers", types.CategoryClothing, reason)
	}

	if stats.RainyDays >= 1 {
		reason := fmt.Sprintf("Rain likely on %d of %d days", stats.RainyDays, stats.TotalDays)
		b.Add("Rain jacket", types.CategoryClothing, reason)
		b.Add("Rain pants", types.CategoryClothing, reason)
		b.Add("Pack rain cover", types.CategoryClothing, reason)
		b.Add("Tarp", types.CategoryShelterSleep, reason)
	}

	if stats.SnowDays >= 1 {
		suffix := ""
		if stats.SnowDays > 1 {
			suffix = "s"
		}
		reason := fmt.Sprintf("Snow expected on %d day%s", stats.SnowDays, suffix)
		b.Add("Waterproof boots", types.CategoryClothing, reason)
		b.Add("Gaiters", types.CategoryClothing, reason)
	}

	if stats.HottestMax >= 28 {
		reason := fmt.Sprintf("Highs up to %d°C", stats.HottestMax)
		b.Add("Sun hat", types.CategoryClothing, reason)
		b.Add("Sunscreen", types.CategoryClothing, reason)
		b.Add("Extra water bottles", types.CategoryCookingFood, reason)
		b.Add("Electrolyte packets", types.CategoryCookingFood, reason)
	}

	if stats.StormDays >= 1 {
		reason := "Thunderstorms in forecast"
		b.Add("Extra tent stakes", types.CategoryShelterSleep, reason)
		b.Add("Emergency whistle", types.CategorySafetyNavigation, reason)
	}
}

func amenityDriven(b *Builder, ctx Context) {
	cg := ctx.Campground
	if cg == nil {
		return
	}

	if !cg.HasAmenity(types.AmenityPotableWater) {
		reason := "No potable water on site"
		b.Add("Water filter", types.CategoryCookingFood, reason)
		b.Add("Purification tablets", types.CategoryCookingFood, reason)
		b.Add("Extra water containers", types.CategoryCookingFood, reason)
	}

	if !cg.HasAmenity(types.AmenityFirePit) {
		b.Add("Extra stove fuel", types.CategoryCookingFood, "No fire pits — stove is your only heat source")
	}

	if !cg.HasAmenity(types.AmenityFlushToilets) && !cg.HasAmenity(types.AmenityVaultToilets) {
		reason := "No toilets on site"
		b.Add("Trowel", types.CategoryExtras, reason)
		b.Add("Waste bags", types.CategoryExtras, reason)
	}

	if !cg.HasAmenity(types.AmenityElectricity) {
		b.Add("Portable battery pack", types.CategoryExtras, "No electricity on site")
	}

	if cg.HasAmenity(types.AmenityFirePit) {
		b.Add("Fire starter", types.CategoryCookingFood, "Fire pits available")
		b.Add("Firewood gloves", types.CategoryCookingFood, "Fire pits available")
	}

	if cg.BearCountry {
		b.Add("Bear spray", types.CategorySafetyNavigation, "Bear country")
		if cg.HasAmenity(types.AmenityBearLocker) {
			b.Add("Bear canister or hang kit", types.CategorySafetyNavigation, "Bear country — lockers available on site")
		} else {
			b.Add("Bear canister or hang kit", types.CategorySafetyNavigation, "Bear country — no lockers, bring your own storage")
		}
	}
}

func activityDriven(b *Builder, ctx Context) {
	park := ctx.Park

	if park.HasActivity(types.ActivityHiking) {
		b.Add("Hiking boots", types.CategoryClothing, "Hiking trails available")
		b.Add("Trekking poles", types.CategoryExtras, "Hiking trails available")
		b.Add("Trail map", types.CategorySafetyNavigation, "Hiking trails available")
	}

	canoeing := park.HasActivity(types.ActivityCanoeing)
	kayaking := park.HasActivity(types.ActivityKayaking)
	if canoeing || kayaking {
		label := "Kayaking"
		switch {
		case canoeing && kayaking:
			label = "Canoeing & kayaking"
		case canoeing:
			label = "Canoeing"
		}
		b.Add("Life jacket (PFD)", types.CategorySafetyNavigation, label)
		b.Add("Dry bags", types.CategoryExtras, label)
		b.Add("Waterproof phone pouch", types.CategoryExtras, label)
	}

	if park.HasActivity(types.ActivityFishing) {
		b.Add("Fishing rod & tackle", types.CategoryExtras, "Fishing available")
		b.Add("Fishing licence reminder", types.CategoryExtras, "Fishing available — check provincial regulations")
	}

	if park.HasActivity(types.ActivitySwimming) {
		b.Add("Swimsuit", types.CategoryClothing, "Swimming available")
		b.Add("Water shoes", types.CategoryClothing, "Swimming available")
		b.Add("Quick-dry towel", types.CategoryClothing, "Swimming available")
	}

	if park.HasActivity(types.ActivityRockClimbing) {
		b.Add("Climbing harness", types.CategoryExtras, "Rock climbing available")
		b.Add("Climbing helmet", types.CategoryExtras, "Rock climbing available")
		b.Add("Chalk bag", types.CategoryExtras, "Rock climbing available")
	}

	skiing := park.HasActivity(types.ActivityCrossCountrySkiing)
	snowshoeing := park.HasActivity(types.ActivitySnowshoeing)
	if skiing || snowshoeing {
		label := "Snowshoeing"
		switch {
		case skiing && snowshoeing:
			label = "Skiing & snowshoeing"
		case skiing:
			label = "Cross-country skiing"
		}
		b.Add("Skis or snowshoes", types.CategoryExtras, label)
		b.Add("Winter gaiters", types.CategoryExtras, label)
	}

	if park.HasActivity(types.ActivityStargazing) {
		b.Add("Red-light headlamp", types.CategoryExtras, "Stargazing")
		b.Add("Binoculars", types.CategoryExtras, "Stargazing")
	}

	if park.HasActivity(types.ActivityWildlifeViewing) {
		b.Add("Binoculars", types.CategoryExtras, "Wildlife viewing")
		b.Add("Camera", types.CategoryExtras, "Wildlife viewing")
	}

	if park.HasActivity(types.ActivitySurfing) {
		b.Add("Wetsuit", types.CategoryClothing, "Surfing available")
		b.Add("Surf wax", types.CategoryExtras, "Surfing available")
	}
}

// fireDangerOverride strips the open-flame items the amenity rule may have
// added when the window's peak fire danger is high or worse.
func fireDangerOverride(b *Builder, ctx Context) {
	peak := weather.PeakFireDanger(ctx.Forecast)

	if peak.AtLeast(types.FireDangerHigh) {
		b.Remove("Fire starter", types.CategoryCookingFood)
		b.Remove("Firewood gloves", types.CategoryCookingFood)
		b.Add("Camp stove + fuel canister", types.CategoryCookingFood, "Fire restrictions likely — bring a stove for cooking")
	}

	if peak == types.FireDangerExtreme {
		b.Add("Battery lantern", types.CategoryExtras, "Open flame restrictions — skip candles and lanterns with real flames")
	}
}

func terrainDriven(b *Builder, ctx Context) {
	if ctx.Campground == nil {
		return
	}

	switch ctx.Campground.Terrain {
	case types.TerrainCoastal:
		b.Add("Windproof layer", types.CategoryClothing, "Coastal terrain — expect wind")
		b.Add("Sand stakes", types.CategoryShelterSleep, "Coastal terrain — regular stakes may not hold")
	case types.TerrainAlpine:
		b.Add("Extra sun protection", types.CategoryClothing, "Alpine terrain — stronger UV")
		b.Add("Warm layers", types.CategoryClothing, "Alpine terrain — temperatures drop fast")
	case types.TerrainLakeside:
		b.Add("Extra insect repellent", types.CategoryExtras, "Lakeside terrain — more bugs near water")
	}
}

func tripDuration(b *Builder, ctx Context) {
	days := ctx.Stats.TotalDays
	if days < 5 {
		return
	}

	reason := fmt.Sprintf("%d-day trip", days)
	b.Add("Biodegradable soap", types.CategoryExtras, reason)
	b.Add("Camp towel", types.CategoryExtras, reason)
	b.Add("Repair kit", types.CategoryExtras, reason)
	b.Add("Extra fuel", types.CategoryCookingFood, reason)
	b.Add("Book or cards", types.CategoryExtras, reason)
}
