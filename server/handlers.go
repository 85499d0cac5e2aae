package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/theoremus-urban-solutions/transit-catalogue/formatter"
	"github.com/theoremus-urban-solutions/transit-catalogue/loader"
	"github.com/theoremus-urban-solutions/transit-catalogue/responder"
	"github.com/theoremus-urban-solutions/transit-catalogue/utils"
)

const maxStatBody = 4 << 20

type healthResponse struct {
	Status    string `json:"status"`
	Stops     int    `json:"stops"`
	Lines     int    `json:"lines"`
	Vertices  int    `json:"vertices"`
	Edges     int    `json:"edges"`
	Cached    int    `json:"cached_responses"`
	StartedAt string `json:"started_at"`
	Timestamp string `json:"timestamp"`
}

type lineSummary struct {
	Name            string   `json:"name"`
	IsRoundtrip     bool     `json:"is_roundtrip"`
	Stops           []string `json:"stops"`
	StopCount       int      `json:"stop_count"`
	UniqueStopCount int      `json:"unique_stop_count"`
	RouteLength     int      `json:"route_length"`
	Curvature       float64  `json:"curvature"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Stops:     s.cat.StopCount(),
		Lines:     len(s.cat.AllLines()),
		Vertices:  s.router.VertexCount(),
		Edges:     s.router.EdgeCount(),
		Cached:    s.cache.size(),
		StartedAt: utils.Iso8601FromTime(s.startedAt),
		Timestamp: utils.Iso8601Now(),
	})
}

func (s *Server) handleLines(w http.ResponseWriter, r *http.Request) {
	lines := s.cat.AllLines()
	out := make([]lineSummary, 0, len(lines))
	for _, bus := range lines {
		info, err := s.cat.LineInfo(bus.ID)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error_message": err.Error()})
			return
		}
		names := make([]string, 0, len(bus.Stops))
		for _, sid := range bus.Stops {
			if st, ok := s.cat.Stop(sid); ok {
				names = append(names, st.Name)
			}
		}
		out = append(out, lineSummary{
			Name:            bus.Name,
			IsRoundtrip:     bus.IsRoundtrip,
			Stops:           names,
			StopCount:       info.StopCount,
			UniqueStopCount: info.UniqueStopCount,
			RouteLength:     info.RouteLength,
			Curvature:       info.Curvature,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleLine(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	s.writeCached(w, r, memoKey("line", name), func() responder.Response {
		return s.responder.Line(0, name)
	})
}

func (s *Server) handleStop(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	s.writeCached(w, r, memoKey("stop", name), func() responder.Response {
		return s.responder.Stop(0, name)
	})
}

func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to := q.Get("from"), q.Get("to")
	if from == "" || to == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error_message": "from and to are required"})
		return
	}
	s.writeCached(w, r, memoKey("route", from, to), func() responder.Response {
		return s.responder.Route(0, from, to)
	})
}

// handleStat answers a batch of stat requests. The body is a document whose
// stat_requests are answered; base_requests are ignored.
func (s *Server) handleStat(w http.ResponseWriter, r *http.Request) {
	format := loader.FormatJSON
	if strings.Contains(r.Header.Get("Content-Type"), "yaml") {
		format = loader.FormatYAML
	}
	doc, err := loader.Decode(http.MaxBytesReader(w, r.Body, maxStatBody), format)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error_message": err.Error()})
		return
	}

	out := formatter.NormalizeFormat(r.URL.Query().Get("format"))
	w.Header().Set("Content-Type", formatter.ContentType(out))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(formatter.Build(s.responder.AnswerAll(doc.StatRequests), out))
}

// writeCached serializes a single answer, memoized per query and format.
// Not-found answers map to 404.
func (s *Server) writeCached(w http.ResponseWriter, r *http.Request, key string, answer func() responder.Response) {
	out := formatter.NormalizeFormat(r.URL.Query().Get("format"))
	key = memoKey(key, out)

	cached, ok := s.cache.get(key)
	if !ok {
		res := answer()
		cached = cachedResponse{status: http.StatusOK, body: formatter.BuildOne(res, out)}
		if e, isErr := res.(responder.ErrorResponse); isErr && e.ErrorMessage == responder.MsgNotFound {
			cached.status = http.StatusNotFound
		}
		s.cache.put(key, cached)
	}
	w.Header().Set("Content-Type", formatter.ContentType(out))
	w.WriteHeader(cached.status)
	_, _ = w.Write(cached.body)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
