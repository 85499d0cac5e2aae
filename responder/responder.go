// Package responder answers stat requests against a built network: line
// statistics, the lines serving a stop, and minimum-time routes.
package responder

import (
	"errors"
	"log/slog"

	"github.com/theoremus-urban-solutions/transit-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transit-catalogue/loader"
	"github.com/theoremus-urban-solutions/transit-catalogue/router"
)

// Responder turns stat requests into responses. It only reads the catalogue and
// router, so one Responder can serve concurrent callers.
type Responder struct {
	cat    *catalogue.Catalogue
	router *router.TransitRouter
}

func New(cat *catalogue.Catalogue, r *router.TransitRouter) *Responder {
	return &Responder{cat: cat, router: r}
}

// AnswerAll answers requests in order
func (rs *Responder) AnswerAll(reqs []loader.StatRequest) []Response {
	out := make([]Response, 0, len(reqs))
	for _, req := range reqs {
		out = append(out, rs.Answer(req))
	}
	return out
}

// Answer dispatches a single request by type
func (rs *Responder) Answer(req loader.StatRequest) Response {
	switch req.Type {
	case loader.TypeBus:
		return rs.Line(req.ID, req.Name)
	case loader.TypeStop:
		return rs.Stop(req.ID, req.Name)
	case loader.TypeRoute:
		return rs.Route(req.ID, req.From, req.To)
	default:
		slog.Warn("unsupported stat request", "id", req.ID, "type", req.Type)
		return ErrorResponse{ID: req.ID, ErrorMessage: MsgUnsupported}
	}
}

// Line answers a bus statistics query
func (rs *Responder) Line(id int, name string) Response {
	bus, ok := rs.cat.FindBus(name)
	if !ok {
		return notFound(id)
	}
	info, err := rs.cat.LineInfo(bus.ID)
	if err != nil {
		slog.Error("line info failed", "bus", name, "err", err)
		return notFound(id)
	}
	return LineResponse{
		ID:              id,
		Curvature:       info.Curvature,
		RouteLength:     info.RouteLength,
		StopCount:       info.StopCount,
		UniqueStopCount: info.UniqueStopCount,
	}
}

// Stop answers a stop query with the names of the buses serving it
func (rs *Responder) Stop(id int, name string) Response {
	stop, ok := rs.cat.FindStop(name)
	if !ok {
		return notFound(id)
	}
	lines, err := rs.cat.LinesServing(stop.ID)
	if err != nil {
		slog.Error("lines serving failed", "stop", name, "err", err)
		return notFound(id)
	}
	buses := make([]string, 0, len(lines))
	for _, b := range lines {
		buses = append(buses, b.Name)
	}
	return StopResponse{ID: id, Buses: buses}
}

// Route answers a route query between two stop names
func (rs *Responder) Route(id int, fromName, toName string) Response {
	from, ok := rs.cat.FindStop(fromName)
	if !ok {
		return notFound(id)
	}
	to, ok := rs.cat.FindStop(toName)
	if !ok {
		return notFound(id)
	}
	route, found, err := rs.router.FindRoute(from.ID, to.ID)
	if err != nil {
		if !errors.Is(err, catalogue.ErrStopNotFound) {
			slog.Error("find route failed", "from", fromName, "to", toName, "err", err)
		}
		return notFound(id)
	}
	if !found {
		return notFound(id)
	}

	items := make([]RouteItem, 0, len(route.Items))
	for _, it := range route.Items {
		switch v := it.(type) {
		case router.WaitItem:
			items = append(items, RouteItem{Type: ItemWait, StopName: v.Stop.Name, Time: v.Time})
		case router.RideItem:
			items = append(items, RouteItem{Type: ItemBus, Bus: v.Bus.Name, SpanCount: v.SpanCount, Time: v.Time})
		}
	}
	return RouteResponse{ID: id, TotalTime: route.TotalTime, Items: items}
}

func notFound(id int) ErrorResponse {
	return ErrorResponse{ID: id, ErrorMessage: MsgNotFound}
}
