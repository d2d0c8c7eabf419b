package types

// Campground is a bookable sub-unit of a park with its own facilities.
// Packing rules are evaluated against the visitor-selected campground.
type Campground struct {
	Name        string    `json:"name"`
	Sites       int       `json:"sites"`
	Amenities   []Amenity `json:"amenities"`
	Terrain     Terrain   `json:"terrain"`
	BearCountry bool      `json:"bearCountry"`
}

// HasAmenity reports whether the campground offers the given amenity.
func (c Campground) HasAmenity(a Amenity) bool {
	for _, have := range c.Amenities {
		if have == a {
			return true
		}
	}
	return false
}

// Season holds the operating window of a park as month-day strings ("MM-DD").
type Season struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// Park is a static catalogue entry. The dataset is loaded once at startup and
// treated as read-only thereafter.
type Park struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Province    string       `json:"province"`
	Type        ParkType     `json:"type"`
	Lat         float64      `json:"lat"`
	Lng         float64      `json:"lng"`
	Description string       `json:"description"`
	Season      Season       `json:"season"`
	Campgrounds []Campground `json:"campgrounds"`
	Activities  []Activity   `json:"activities"`
}

// HasActivity reports whether the park offers the given activity.
func (p Park) HasActivity(a Activity) bool {
	for _, have := range p.Activities {
		if have == a {
			return true
		}
	}
	return false
}
