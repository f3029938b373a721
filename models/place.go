package models

// Place is a nearby point of interest returned by the places proxy. Only
// coarse location data is exposed.
type Place struct {
	Name       string   `json:"name"`
	Categories []string `json:"categories"`
	Lat        float64  `json:"lat"`
	Lng        float64  `json:"lng"`
	DistanceM  float64  `json:"distance_m"`
}

// NearbyResult is the places-proxy response body.
type NearbyResult struct {
	Places []Place `json:"places"`
	Meta   MapMeta `json:"meta"`
}
