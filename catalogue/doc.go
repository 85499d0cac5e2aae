/*
Package catalogue provides the in-memory transit catalogue: stops, bus lines and
directed road distances between stops.

The catalogue is populated once by a loader and is read-only afterwards. Stops and
buses live in append-only arenas and are referenced everywhere else by their
integer handles (StopID, BusID), so no structure holds pointers into the arenas.

# Basic Usage

	cat := catalogue.New()

	a, _ := cat.AddStop("Tolstopaltsevo", geo.Coordinates{Lat: 55.611087, Lng: 37.20829})
	b, _ := cat.AddStop("Marushkino", geo.Coordinates{Lat: 55.595884, Lng: 37.209755})
	_ = cat.SetDistance(a, b, 3900)

	busID, err := cat.AddBus("750", []string{"Tolstopaltsevo", "Marushkino"}, false)
	if err != nil {
	    log.Fatal(err)
	}

	info, _ := cat.LineInfo(busID)

# Load Order

Buses and distances reference stops, so every stop must be added first. AddBus
fails with ErrStopNotFound when a stop name cannot be resolved.

# Distances

Distances are directed: SetDistance(a, b, d) describes travelling from a to b.
Distance(a, b) falls back to the (b, a) entry when no (a, b) entry exists, and to
zero when neither direction is known.

# Thread safety

Safe for concurrent reads once loading has finished. Mutating methods must not be
called concurrently with anything else.
*/
package catalogue
