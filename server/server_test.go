package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lib "github.com/theoremus-urban-solutions/transit-catalogue"
	"github.com/theoremus-urban-solutions/transit-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transit-catalogue/config"
	"github.com/theoremus-urban-solutions/transit-catalogue/geo"
	"github.com/theoremus-urban-solutions/transit-catalogue/loader"
	"github.com/theoremus-urban-solutions/transit-catalogue/router"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	_, ts := newCachedTestServer(t)
	return ts
}

func newCachedTestServer(t *testing.T) (*Server, *httptest.Server) {
	t.Helper()
	doc, err := loader.ReadFile("../testdata/network.json")
	require.NoError(t, err)
	n, err := lib.BuildNetwork(doc, router.Settings{BusWaitTime: 1, BusVelocity: 10})
	require.NoError(t, err)

	s := New(n.Catalogue, n.Router, config.ServerConfig{Port: 1, CacheSize: 16})
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return s, ts
}

func get(t *testing.T, url string) (*http.Response, []byte) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, body
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	resp, body := get(t, ts.URL+"/api/health")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(RequestIDHeader))

	var h healthResponse
	require.NoError(t, json.Unmarshal(body, &h))
	assert.Equal(t, "ok", h.Status)
	assert.Equal(t, 7, h.Stops)
	assert.Equal(t, 3, h.Lines)
	assert.Equal(t, 14, h.Vertices)
}

func TestHealth_CountsMatchLines(t *testing.T) {
	cat := catalogue.New()
	_, err := cat.AddStop("A", geo.Coordinates{Lat: 1, Lng: 1})
	require.NoError(t, err)
	_, err = cat.AddBus("1", []string{"A"}, true)
	require.NoError(t, err)
	_, err = cat.AddBus("empty", nil, true)
	require.NoError(t, err)
	r, err := router.New(cat, router.Settings{BusWaitTime: 1, BusVelocity: 10})
	require.NoError(t, err)

	s := New(cat, r, config.ServerConfig{Port: 1, CacheSize: 4})
	ts := httptest.NewServer(s.Handler())
	defer ts.Close()

	get(t, ts.URL+"/api/lines/1")
	_, body := get(t, ts.URL+"/api/health")
	var h healthResponse
	require.NoError(t, json.Unmarshal(body, &h))

	_, body = get(t, ts.URL+"/api/lines")
	var lines []lineSummary
	require.NoError(t, json.Unmarshal(body, &lines))

	assert.Equal(t, 2, cat.BusCount())
	assert.Equal(t, len(lines), h.Lines)
	assert.Equal(t, 1, h.Lines)
	assert.Equal(t, 1, h.Cached)
}

func TestRequestIDEchoed(t *testing.T) {
	ts := newTestServer(t)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/health", nil)
	require.NoError(t, err)
	req.Header.Set(RequestIDHeader, "abc-123")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "abc-123", resp.Header.Get(RequestIDHeader))
}

func TestLines(t *testing.T) {
	ts := newTestServer(t)

	resp, body := get(t, ts.URL+"/api/lines")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var lines []lineSummary
	require.NoError(t, json.Unmarshal(body, &lines))
	require.Len(t, lines, 3)
	assert.Equal(t, "297", lines[0].Name)
	assert.Equal(t, 5900, lines[0].RouteLength)
	assert.Equal(t, []string{"Biryulyovo Tovarnaya", "Universam", "Biryusinka"}, lines[1].Stops)
	assert.False(t, lines[1].IsRoundtrip)
}

func TestQueries(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantBody   string
	}{
		{"line", "/api/lines/297", http.StatusOK, `"route_length":5900`},
		{"line missing", "/api/lines/999", http.StatusNotFound, `"error_message":"not found"`},
		{"stop", "/api/stops/Universam", http.StatusOK, `"buses":["297","635","828"]`},
		{"stop with spaces", "/api/stops/Biryulyovo%20Passazhirskaya", http.StatusOK, `"buses":[]`},
		{"stop missing", "/api/stops/Nowhere", http.StatusNotFound, `not found`},
		{"route", "/api/route?from=Biryulyovo+Zapadnoye&to=Universam", http.StatusOK, `"type":"Wait"`},
		{"route unreachable", "/api/route?from=Prazhskaya&to=Universam", http.StatusNotFound, `not found`},
		{"route missing param", "/api/route?from=Universam", http.StatusBadRequest, `required`},
		{"stop xml", "/api/stops/Universam?format=xml", http.StatusOK, `<Buses><Bus>297</Bus>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := get(t, ts.URL+tt.path)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			assert.Contains(t, string(body), tt.wantBody)
		})
	}
}

func TestQueriesCached(t *testing.T) {
	s, ts := newCachedTestServer(t)

	path := ts.URL + "/api/route?from=Biryulyovo+Zapadnoye&to=Universam"
	_, first := get(t, path)
	_, second := get(t, path)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, s.cache.size())

	resp, _ := get(t, ts.URL+"/api/lines/999")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp, _ = get(t, ts.URL+"/api/lines/999")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	get(t, path+"&format=xml")
	assert.Equal(t, 3, s.cache.size())
}

func TestStat(t *testing.T) {
	ts := newTestServer(t)

	body := `{"stat_requests": [
		{"id": 1, "type": "Bus", "name": "297"},
		{"id": 2, "type": "Route", "from": "Biryulyovo Zapadnoye", "to": "Universam"},
		{"id": 3, "type": "Map"}
	]}`
	resp, err := http.Post(ts.URL+"/api/stat", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var got []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	require.Len(t, got, 3)
	assert.EqualValues(t, 5900, got[0]["route_length"])
	// network.json routing settings (wait 6, velocity 40) win over the defaults
	assert.InDelta(t, 9.6, got[1]["total_time"], 1e-9)
	assert.Equal(t, "unsupported request type", got[2]["error_message"])
}

func TestStat_XMLAndYAML(t *testing.T) {
	ts := newTestServer(t)

	body := "stat_requests:\n  - id: 5\n    type: Stop\n    name: Universam\n"
	resp, err := http.Post(ts.URL+"/api/stat?format=xml", "application/yaml", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "application/xml")
	assert.Contains(t, string(out), "<Stop><RequestId>5</RequestId>")
}

func TestStat_BadBody(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/api/stat", "application/json", strings.NewReader(`{"stat_requests": [{"id": 1}]}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStartShutdown(t *testing.T) {
	s := New(nil, nil, config.ServerConfig{Port: 0})
	assert.NoError(t, s.Shutdown(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.cfg.Port = 38181
	s.Start()
	assert.NoError(t, s.Shutdown(ctx))
}
