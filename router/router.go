package router

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/theoremus-urban-solutions/transit-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transit-catalogue/graph"
)

var ErrInvalidSettings = errors.New("invalid routing settings")

type stopVertices struct {
	arrival   graph.VertexID
	departure graph.VertexID
}

// TransitRouter answers minimum-time route queries over a catalogue
type TransitRouter struct {
	settings  Settings
	graph     *graph.DirectedWeightedGraph[float64]
	router    *graph.Router[float64]
	vertices  map[catalogue.StopID]stopVertices
	edgeItems []Item // indexed by graph.EdgeID
}

// New builds the routing graph for a fully loaded catalogue
func New(cat *catalogue.Catalogue, s Settings) (*TransitRouter, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	stops := cat.AllStops()
	tr := &TransitRouter{
		settings: s,
		graph:    graph.NewDirectedWeightedGraph[float64](2 * len(stops)),
		vertices: make(map[catalogue.StopID]stopVertices, len(stops)),
	}
	tr.addWaitEdges(stops)
	tr.addRideEdges(cat)
	tr.router = graph.NewRouter(tr.graph)

	slog.Info("transit router built",
		"stops", len(stops),
		"vertices", tr.graph.VertexCount(),
		"edges", tr.graph.EdgeCount(),
		"bus_wait_time", s.BusWaitTime,
		"bus_velocity", s.BusVelocity)
	return tr, nil
}

func (tr *TransitRouter) addWaitEdges(stops []catalogue.Stop) {
	wait := float64(tr.settings.BusWaitTime)
	for i, stop := range stops {
		v := stopVertices{arrival: graph.VertexID(2 * i), departure: graph.VertexID(2*i + 1)}
		tr.vertices[stop.ID] = v
		tr.addEdge(v.arrival, v.departure, WaitItem{Stop: stop, Time: wait})
	}
}

func (tr *TransitRouter) addRideEdges(cat *catalogue.Catalogue) {
	speed := tr.settings.metersPerMinute()
	for _, bus := range cat.AllLines() {
		stops := bus.Stops
		for from := 0; from < len(stops); from++ {
			forward, backward := 0, 0
			for to := from + 1; to < len(stops); to++ {
				forward += cat.Distance(stops[to-1], stops[to])
				backward += cat.Distance(stops[to], stops[to-1])
				span := to - from

				forwardTime := float64(forward) / speed
				tr.addEdge(tr.vertices[stops[from]].departure, tr.vertices[stops[to]].arrival,
					RideItem{Bus: bus, SpanCount: span, Time: forwardTime})

				if !bus.IsRoundtrip {
					backwardTime := float64(backward) / speed
					tr.addEdge(tr.vertices[stops[to]].departure, tr.vertices[stops[from]].arrival,
						RideItem{Bus: bus, SpanCount: span, Time: backwardTime})
				}
			}
		}
	}
}

func (tr *TransitRouter) addEdge(from, to graph.VertexID, item Item) {
	id := tr.graph.AddEdge(graph.Edge[float64]{From: from, To: to, Weight: item.Minutes()})
	if int(id) != len(tr.edgeItems) {
		panic(fmt.Sprintf("router: edge id %d out of sequence", id))
	}
	tr.edgeItems = append(tr.edgeItems, item)
}

// FindRoute returns the minimum-time route between two stops. The boolean is
// false when no route connects them.
func (tr *TransitRouter) FindRoute(from, to catalogue.StopID) (Route, bool, error) {
	fv, ok := tr.vertices[from]
	if !ok {
		return Route{}, false, fmt.Errorf("find route: %w: id %d", catalogue.ErrStopNotFound, from)
	}
	tv, ok := tr.vertices[to]
	if !ok {
		return Route{}, false, fmt.Errorf("find route: %w: id %d", catalogue.ErrStopNotFound, to)
	}

	info, found := tr.router.BuildRoute(fv.arrival, tv.arrival)
	if !found {
		return Route{}, false, nil
	}
	items := make([]Item, 0, len(info.Edges))
	for _, eid := range info.Edges {
		items = append(items, tr.edgeItems[eid])
	}
	return Route{Items: items, TotalTime: info.Weight}, true, nil
}

func (tr *TransitRouter) Settings() Settings { return tr.settings }

func (tr *TransitRouter) VertexCount() int { return tr.graph.VertexCount() }

func (tr *TransitRouter) EdgeCount() int { return tr.graph.EdgeCount() }
