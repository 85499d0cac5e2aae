package responder

// Response is the answer to one stat request
type Response interface {
	RequestID() int
}

const (
	MsgNotFound    = "not found"
	MsgUnsupported = "unsupported request type"
)

// ErrorResponse reports a request that could not be answered
type ErrorResponse struct {
	ID           int    `json:"request_id"`
	ErrorMessage string `json:"error_message"`
}

// LineResponse carries the statistics of a bus line
type LineResponse struct {
	ID              int     `json:"request_id"`
	Curvature       float64 `json:"curvature"`
	RouteLength     int     `json:"route_length"`
	StopCount       int     `json:"stop_count"`
	UniqueStopCount int     `json:"unique_stop_count"`
}

// StopResponse lists the buses serving a stop
type StopResponse struct {
	ID    int      `json:"request_id"`
	Buses []string `json:"buses"`
}

// RouteResponse is a minimum-time itinerary
type RouteResponse struct {
	ID        int         `json:"request_id"`
	TotalTime float64     `json:"total_time"`
	Items     []RouteItem `json:"items"`
}

// RouteItem is one step of a RouteResponse. Type is "Wait" or "Bus".
type RouteItem struct {
	Type      string  `json:"type"`
	StopName  string  `json:"stop_name,omitempty"`
	Bus       string  `json:"bus,omitempty"`
	SpanCount int     `json:"span_count,omitempty"`
	Time      float64 `json:"time"`
}

// Item types
const (
	ItemWait = "Wait"
	ItemBus  = "Bus"
)

func (r ErrorResponse) RequestID() int { return r.ID }
func (r LineResponse) RequestID() int { return r.ID }
func (r StopResponse) RequestID() int { return r.ID }
func (r RouteResponse) RequestID() int { return r.ID }
