package domain

type GeoPoint struct {
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
	Name string  `json:"name"`
}

// Pod is a location-tagged discussion group. LastActivity is a display label,
// not a timestamp.
type Pod struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Members      int      `json:"members"`
	Location     GeoPoint `json:"location"`
	Category     string   `json:"category"`
	IsActive     bool     `json:"is_active"`
	LastActivity string   `json:"last_activity"`
	Avatar       string   `json:"avatar,omitempty"`
}
