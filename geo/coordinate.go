package geo

import "math"

// EarthRadiusMeters is the mean Earth radius used by Distance.
const EarthRadiusMeters = 6371000.0

const epsilon = 1e-6

// Coordinates represents a geographical point in degrees
type Coordinates struct {
	Lat float64 `json:"latitude" yaml:"latitude"`
	Lng float64 `json:"longitude" yaml:"longitude"`
}

// Equal reports whether both coordinates point at the same place.
func (c Coordinates) Equal(other Coordinates) bool {
	return math.Abs(c.Lat-other.Lat) < epsilon && math.Abs(c.Lng-other.Lng) < epsilon
}

// Distance returns the great-circle distance between two points in meters.
func Distance(from, to Coordinates) float64 {
	if from.Equal(to) {
		return 0
	}
	const rad = math.Pi / 180
	cos := math.Sin(from.Lat*rad)*math.Sin(to.Lat*rad) +
		math.Cos(from.Lat*rad)*math.Cos(to.Lat*rad)*math.Cos(math.Abs(from.Lng-to.Lng)*rad)
	// rounding can push the cosine slightly outside [-1, 1] for nearby points
	cos = math.Max(-1, math.Min(1, cos))
	return math.Acos(cos) * EarthRadiusMeters
}
