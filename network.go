package transitcatalogue

import (
	"fmt"

	"github.com/theoremus-urban-solutions/transit-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transit-catalogue/loader"
	"github.com/theoremus-urban-solutions/transit-catalogue/router"
)

// Network bundles a loaded catalogue with the router built from it. Both are
// read-only once BuildNetwork returns.
type Network struct {
	Catalogue *catalogue.Catalogue
	Router    *router.TransitRouter
}

// BuildNetwork loads a document into a fresh catalogue and builds the router.
// Routing settings from the document win over the defaults.
func BuildNetwork(doc *loader.Document, defaults router.Settings) (*Network, error) {
	cat := catalogue.New()
	if err := doc.Apply(cat); err != nil {
		return nil, fmt.Errorf("load catalogue: %w", err)
	}
	settings := defaults
	if doc.RoutingSettings != nil {
		settings = *doc.RoutingSettings
	}
	r, err := router.New(cat, settings)
	if err != nil {
		return nil, fmt.Errorf("build router: %w", err)
	}
	return &Network{Catalogue: cat, Router: r}, nil
}
