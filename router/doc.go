/*
Package router builds a time-weighted graph from a finished catalogue and finds
minimum-time routes between stops.

# Graph Model

Every stop gets two vertices: an arrival vertex and a departure vertex. A wait
edge (arrival -> departure) costs the configured boarding wait. For each line and
each pair of stops i < j along its stop list a ride edge (departure(i) ->
arrival(j)) costs the travel time over the whole sub-span, so the search can pick
where to board and where to get off without knowing about transfers. Lines that
are not roundtrip also get the reverse ride edge for every pair.

Routes start and end at arrival vertices, so every route begins with a wait.

# Usage

	r, err := router.New(cat, router.Settings{BusWaitTime: 6, BusVelocity: 40})
	if err != nil {
	    log.Fatal(err)
	}

	route, ok, err := r.FindRoute(from.ID, to.ID)

# Thread safety

A TransitRouter is immutable after New and safe for concurrent queries.
*/
package router
