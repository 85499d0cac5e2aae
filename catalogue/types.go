package catalogue

import "github.com/theoremus-urban-solutions/transit-catalogue/geo"

// StopID is a handle to a stop stored in a Catalogue
type StopID int

// BusID is a handle to a bus line stored in a Catalogue
type BusID int

// Stop is a named point of the network
type Stop struct {
	ID          StopID
	Name        string
	Coordinates geo.Coordinates
}

// Bus is a named line running over an ordered list of stops.
// A non-roundtrip bus runs the list forward and then back to the first stop.
type Bus struct {
	ID          BusID
	Name        string
	Stops       []StopID
	IsRoundtrip bool
}

// Traversal returns the stops in the order a vehicle visits them over one full run.
func (b Bus) Traversal() []StopID {
	if b.IsRoundtrip || len(b.Stops) == 0 {
		out := make([]StopID, len(b.Stops))
		copy(out, b.Stops)
		return out
	}
	out := make([]StopID, 0, 2*len(b.Stops)-1)
	out = append(out, b.Stops...)
	for i := len(b.Stops) - 2; i >= 0; i-- {
		out = append(out, b.Stops[i])
	}
	return out
}

// LineInfo holds the aggregate statistics of a bus line
type LineInfo struct {
	StopCount       int
	UniqueStopCount int
	RouteLength     int     // meters, from road distances
	Curvature       float64 // RouteLength / great-circle length
}

type stopPair struct {
	from StopID
	to   StopID
}
