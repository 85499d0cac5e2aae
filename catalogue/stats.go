package catalogue

import (
	"fmt"

	"github.com/theoremus-urban-solutions/transit-catalogue/geo"
)

// LineInfo computes the statistics of one bus line over its full traversal
func (c *Catalogue) LineInfo(id BusID) (LineInfo, error) {
	bus, ok := c.Bus(id)
	if !ok {
		return LineInfo{}, fmt.Errorf("line info: %w: id %d", ErrBusNotFound, id)
	}
	route := bus.Traversal()
	if len(route) == 0 {
		return LineInfo{}, nil
	}

	unique := make(map[StopID]struct{}, len(bus.Stops))
	for _, sid := range route {
		unique[sid] = struct{}{}
	}

	routeLength := 0
	geoLength := 0.0
	for i := 1; i < len(route); i++ {
		prev, cur := route[i-1], route[i]
		routeLength += c.Distance(prev, cur)
		geoLength += geo.Distance(c.stops[prev].Coordinates, c.stops[cur].Coordinates)
	}

	info := LineInfo{
		StopCount:       len(route),
		UniqueStopCount: len(unique),
		RouteLength:     routeLength,
	}
	if geoLength > 0 {
		info.Curvature = float64(routeLength) / geoLength
	}
	return info, nil
}
