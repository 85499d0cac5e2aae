package catalogue

import (
	"fmt"
	"sort"

	"github.com/theoremus-urban-solutions/transit-catalogue/geo"
)

// Catalogue stores stops, buses and road distances in memory for fast lookups
type Catalogue struct {
	stops       []Stop
	buses       []Bus
	stopByName  map[string]StopID
	busByName   map[string]BusID
	distances   map[stopPair]int              // (from, to) -> meters
	stopToBuses map[StopID]map[BusID]struct{} // stop -> lines serving it
}

// New creates an empty catalogue
func New() *Catalogue {
	return &Catalogue{
		stopByName:  map[string]StopID{},
		busByName:   map[string]BusID{},
		distances:   map[stopPair]int{},
		stopToBuses: map[StopID]map[BusID]struct{}{},
	}
}

// AddStop inserts a new stop. Stop names are unique; a second stop with the same
// name is rejected.
func (c *Catalogue) AddStop(name string, coords geo.Coordinates) (StopID, error) {
	if name == "" {
		return 0, fmt.Errorf("add stop: %w", ErrEmptyName)
	}
	if _, ok := c.stopByName[name]; ok {
		return 0, fmt.Errorf("add stop %q: %w", name, ErrDuplicateStop)
	}
	id := StopID(len(c.stops))
	c.stops = append(c.stops, Stop{ID: id, Name: name, Coordinates: coords})
	c.stopByName[name] = id
	return id, nil
}

// FindStop looks a stop up by name
func (c *Catalogue) FindStop(name string) (Stop, bool) {
	id, ok := c.stopByName[name]
	if !ok {
		return Stop{}, false
	}
	return c.stops[id], true
}

// Stop returns the stop behind a handle
func (c *Catalogue) Stop(id StopID) (Stop, bool) {
	if !c.hasStop(id) {
		return Stop{}, false
	}
	return c.stops[id], true
}

// AddBus inserts a new bus line over already known stops and indexes the stops
// it serves.
func (c *Catalogue) AddBus(name string, stopNames []string, roundtrip bool) (BusID, error) {
	if name == "" {
		return 0, fmt.Errorf("add bus: %w", ErrEmptyName)
	}
	if _, ok := c.busByName[name]; ok {
		return 0, fmt.Errorf("add bus %q: %w", name, ErrDuplicateBus)
	}
	stops := make([]StopID, 0, len(stopNames))
	for _, sn := range stopNames {
		sid, ok := c.stopByName[sn]
		if !ok {
			return 0, fmt.Errorf("add bus %q: %w: %q", name, ErrStopNotFound, sn)
		}
		stops = append(stops, sid)
	}
	id := BusID(len(c.buses))
	c.buses = append(c.buses, Bus{ID: id, Name: name, Stops: stops, IsRoundtrip: roundtrip})
	c.busByName[name] = id
	for _, sid := range stops {
		served, ok := c.stopToBuses[sid]
		if !ok {
			served = map[BusID]struct{}{}
			c.stopToBuses[sid] = served
		}
		served[id] = struct{}{}
	}
	return id, nil
}

// FindBus looks a bus up by name
func (c *Catalogue) FindBus(name string) (Bus, bool) {
	id, ok := c.busByName[name]
	if !ok {
		return Bus{}, false
	}
	return c.buses[id], true
}

// Bus returns the bus behind a handle
func (c *Catalogue) Bus(id BusID) (Bus, bool) {
	if id < 0 || int(id) >= len(c.buses) {
		return Bus{}, false
	}
	return c.buses[id], true
}

// SetDistance stores the road distance for travelling from one stop to another.
// An existing entry for the same direction is overwritten.
func (c *Catalogue) SetDistance(from, to StopID, meters int) error {
	if !c.hasStop(from) {
		return fmt.Errorf("set distance: %w: id %d", ErrStopNotFound, from)
	}
	if !c.hasStop(to) {
		return fmt.Errorf("set distance: %w: id %d", ErrStopNotFound, to)
	}
	if meters < 0 {
		return fmt.Errorf("set distance %s -> %s: %w", c.stops[from].Name, c.stops[to].Name, ErrNegativeDist)
	}
	c.distances[stopPair{from, to}] = meters
	return nil
}

// Distance returns the road distance from one stop to another, falling back to
// the opposite direction and then to zero.
func (c *Catalogue) Distance(from, to StopID) int {
	if d, ok := c.distances[stopPair{from, to}]; ok {
		return d
	}
	if d, ok := c.distances[stopPair{to, from}]; ok {
		return d
	}
	return 0
}

// LinesServing returns the buses stopping at a stop, sorted by name
func (c *Catalogue) LinesServing(id StopID) ([]Bus, error) {
	if !c.hasStop(id) {
		return nil, fmt.Errorf("lines serving: %w: id %d", ErrStopNotFound, id)
	}
	served := c.stopToBuses[id]
	out := make([]Bus, 0, len(served))
	for bid := range served {
		out = append(out, c.buses[bid])
	}
	sortBuses(out)
	return out, nil
}

// AllLines returns every bus with at least one stop, sorted by name
func (c *Catalogue) AllLines() []Bus {
	out := make([]Bus, 0, len(c.buses))
	for _, b := range c.buses {
		if len(b.Stops) > 0 {
			out = append(out, b)
		}
	}
	sortBuses(out)
	return out
}

// AllStops returns every stop sorted by name
func (c *Catalogue) AllStops() []Stop {
	out := make([]Stop, len(c.stops))
	copy(out, c.stops)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (c *Catalogue) StopCount() int { return len(c.stops) }

func (c *Catalogue) BusCount() int { return len(c.buses) }

func (c *Catalogue) hasStop(id StopID) bool {
	return id >= 0 && int(id) < len(c.stops)
}

func sortBuses(buses []Bus) {
	sort.Slice(buses, func(i, j int) bool { return buses[i].Name < buses[j].Name })
}
