package loader

import "github.com/theoremus-urban-solutions/transit-catalogue/router"

// Request types
const (
	TypeStop  = "Stop"
	TypeBus   = "Bus"
	TypeRoute = "Route"
	TypeMap   = "Map"
)

// Document is the root of a network description
type Document struct {
	BaseRequests    []BaseRequest    `json:"base_requests" yaml:"base_requests" validate:"dive"`
	RoutingSettings *router.Settings `json:"routing_settings,omitempty" yaml:"routing_settings,omitempty"`
	RenderSettings  map[string]any   `json:"render_settings,omitempty" yaml:"render_settings,omitempty"` // accepted, not used
	StatRequests    []StatRequest    `json:"stat_requests" yaml:"stat_requests" validate:"dive"`
}

// BaseRequest describes either a stop or a bus line
type BaseRequest struct {
	Type string `json:"type" yaml:"type" validate:"required,oneof=Stop Bus"`
	Name string `json:"name" yaml:"name" validate:"required"`

	// Stop fields
	Latitude      float64        `json:"latitude" yaml:"latitude" validate:"gte=-90,lte=90"`
	Longitude     float64        `json:"longitude" yaml:"longitude" validate:"gte=-180,lte=180"`
	RoadDistances map[string]int `json:"road_distances,omitempty" yaml:"road_distances,omitempty" validate:"dive,keys,required,endkeys,gte=0"`

	// Bus fields
	Stops       []string `json:"stops,omitempty" yaml:"stops,omitempty" validate:"dive,required"`
	IsRoundtrip bool     `json:"is_roundtrip" yaml:"is_roundtrip"`
}

// StatRequest is a query to answer once the network is built
type StatRequest struct {
	ID   int    `json:"id" yaml:"id"`
	Type string `json:"type" yaml:"type" validate:"required"`
	Name string `json:"name,omitempty" yaml:"name,omitempty" validate:"required_if=Type Bus,required_if=Type Stop"`
	From string `json:"from,omitempty" yaml:"from,omitempty" validate:"required_if=Type Route"`
	To   string `json:"to,omitempty" yaml:"to,omitempty" validate:"required_if=Type Route"`
}
