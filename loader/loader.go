package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/theoremus-urban-solutions/transit-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transit-catalogue/geo"
)

// Supported document formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var ErrUnknownFormat = errors.New("unknown document format")

var validate = validator.New()

// Decode reads a document in the given format ("json" or "yaml") and validates it
func Decode(r io.Reader, format string) (*Document, error) {
	var doc Document
	switch strings.ToLower(format) {
	case FormatJSON, "":
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode json document: %w", err)
		}
	case FormatYAML, "yml":
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode yaml document: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// ReadFile opens a document, picking the format from the file extension
func ReadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open document: %w", err)
	}
	defer f.Close()
	return Decode(f, FormatForPath(path))
}

// FormatForPath maps a file name to a document format; anything that is not
// YAML is read as JSON.
func FormatForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Validate checks the document structure
func (d *Document) Validate() error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("invalid document: %w", err)
	}
	return nil
}

// Apply loads the base requests into the catalogue: all stops, then all
// distances, then all buses.
func (d *Document) Apply(cat *catalogue.Catalogue) error {
	stops, buses := 0, 0
	for _, req := range d.BaseRequests {
		if req.Type != TypeStop {
			continue
		}
		coords := geo.Coordinates{Lat: req.Latitude, Lng: req.Longitude}
		if _, err := cat.AddStop(req.Name, coords); err != nil {
			return err
		}
		stops++
	}
	for _, req := range d.BaseRequests {
		if req.Type != TypeStop || len(req.RoadDistances) == 0 {
			continue
		}
		if err := applyDistances(cat, req); err != nil {
			return err
		}
	}
	for _, req := range d.BaseRequests {
		if req.Type != TypeBus {
			continue
		}
		if _, err := cat.AddBus(req.Name, req.Stops, req.IsRoundtrip); err != nil {
			return err
		}
		buses++
	}
	slog.Info("catalogue loaded", "stops", stops, "buses", buses)
	return nil
}

func applyDistances(cat *catalogue.Catalogue, req BaseRequest) error {
	from, ok := cat.FindStop(req.Name)
	if !ok {
		return fmt.Errorf("road distances of %q: %w", req.Name, catalogue.ErrStopNotFound)
	}
	names := make([]string, 0, len(req.RoadDistances))
	for name := range req.RoadDistances {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		to, ok := cat.FindStop(name)
		if !ok {
			return fmt.Errorf("road distance %q -> %q: %w", req.Name, name, catalogue.ErrStopNotFound)
		}
		if err := cat.SetDistance(from.ID, to.ID, req.RoadDistances[name]); err != nil {
			return err
		}
	}
	return nil
}
