// Package transitcatalogue ties the catalogue and the transit router together.
//
// A network document (JSON or YAML, see package loader) describes stops, road
// distances and bus lines. BuildNetwork loads it into a catalogue.Catalogue and
// builds a router.TransitRouter once; both are then read-only and safe to share
// between goroutines. Package responder answers stat requests against a
// Network, package formatter serializes the answers, and package server exposes
// them over HTTP.
//
// Example:
//
//	doc, err := loader.ReadFile("network.json")
//	if err != nil {
//	    // handle error
//	}
//	n, err := transitcatalogue.BuildNetwork(doc, config.Config.Routing)
//	if err != nil {
//	    // handle error
//	}
//	answers := responder.New(n.Catalogue, n.Router).AnswerAll(doc.StatRequests)
package transitcatalogue
