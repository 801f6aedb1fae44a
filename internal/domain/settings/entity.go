package settings

// Coordinate is a latitude/longitude pair in degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// GeoSettings is the singleton geofence configuration: a circular area
// within which clock events are permitted. Center stays nil until an admin
// configures it; with no center the fence is not enforced.
type GeoSettings struct {
	Center *Coordinate `json:"center"`
	Radius int         `json:"radius"` // meters
}

// Configured reports whether a fence center has been set.
func (g *GeoSettings) Configured() bool {
	return g.Center != nil
}
