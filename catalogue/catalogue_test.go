package catalogue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/transit-catalogue/geo"
)

func mustAddStop(t *testing.T, c *Catalogue, name string, lat, lng float64) StopID {
	t.Helper()
	id, err := c.AddStop(name, geo.Coordinates{Lat: lat, Lng: lng})
	require.NoError(t, err)
	return id
}

func TestCatalogue_FindStop(t *testing.T) {
	c := New()
	id := mustAddStop(t, c, "Marushkino", 55.595884, 37.209755)

	tests := []struct {
		name   string
		stop   string
		wantOK bool
		wantID StopID
	}{
		{name: "existing stop", stop: "Marushkino", wantOK: true, wantID: id},
		{name: "unknown stop", stop: "Biryulyovo", wantOK: false},
		{name: "empty name", stop: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := c.FindStop(tt.stop)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantID, got.ID)
				assert.Equal(t, tt.stop, got.Name)
			}
		})
	}
}

func TestCatalogue_AddStopRejectsDuplicates(t *testing.T) {
	c := New()
	mustAddStop(t, c, "A", 0, 0)

	_, err := c.AddStop("A", geo.Coordinates{Lat: 1, Lng: 1})
	assert.ErrorIs(t, err, ErrDuplicateStop)

	_, err = c.AddStop("", geo.Coordinates{})
	assert.ErrorIs(t, err, ErrEmptyName)

	stop, _ := c.FindStop("A")
	assert.Equal(t, geo.Coordinates{Lat: 0, Lng: 0}, stop.Coordinates, "first stop must be kept")
	assert.Equal(t, 1, c.StopCount())
}

func TestCatalogue_AddBus(t *testing.T) {
	c := New()
	mustAddStop(t, c, "A", 0, 0)
	mustAddStop(t, c, "B", 0, 0.01)

	id, err := c.AddBus("1", []string{"A", "B"}, false)
	require.NoError(t, err)

	bus, ok := c.FindBus("1")
	require.True(t, ok)
	assert.Equal(t, id, bus.ID)
	assert.Len(t, bus.Stops, 2)
	assert.False(t, bus.IsRoundtrip)

	_, ok = c.FindBus("2")
	assert.False(t, ok)

	_, err = c.AddBus("1", []string{"A"}, true)
	assert.ErrorIs(t, err, ErrDuplicateBus)

	_, err = c.AddBus("3", []string{"A", "Nowhere"}, true)
	assert.ErrorIs(t, err, ErrStopNotFound)
	_, ok = c.FindBus("3")
	assert.False(t, ok, "failed bus must not be stored")
}

func TestCatalogue_Distance(t *testing.T) {
	c := New()
	a := mustAddStop(t, c, "A", 0, 0)
	b := mustAddStop(t, c, "B", 0, 0.01)
	cc := mustAddStop(t, c, "C", 0, 0.02)

	require.NoError(t, c.SetDistance(a, b, 500))

	assert.Equal(t, 500, c.Distance(a, b))
	assert.Equal(t, 500, c.Distance(b, a), "reverse lookup falls back to the forward entry")
	assert.Equal(t, 0, c.Distance(a, cc))
	assert.Equal(t, 0, c.Distance(cc, a))

	require.NoError(t, c.SetDistance(b, a, 700))
	assert.Equal(t, 500, c.Distance(a, b))
	assert.Equal(t, 700, c.Distance(b, a))

	require.NoError(t, c.SetDistance(a, b, 450))
	assert.Equal(t, 450, c.Distance(a, b), "entries are overwritten")
}

func TestCatalogue_SetDistanceErrors(t *testing.T) {
	c := New()
	a := mustAddStop(t, c, "A", 0, 0)

	assert.ErrorIs(t, c.SetDistance(a, StopID(7), 10), ErrStopNotFound)
	assert.ErrorIs(t, c.SetDistance(StopID(-1), a, 10), ErrStopNotFound)
	assert.ErrorIs(t, c.SetDistance(a, a, -5), ErrNegativeDist)
}

func TestCatalogue_LinesServing(t *testing.T) {
	c := New()
	a := mustAddStop(t, c, "A", 0, 0)
	b := mustAddStop(t, c, "B", 0, 0.01)
	lonely := mustAddStop(t, c, "Lonely", 1, 1)

	_, err := c.AddBus("750", []string{"A", "B"}, false)
	require.NoError(t, err)
	_, err = c.AddBus("256", []string{"B", "A", "B"}, true)
	require.NoError(t, err)

	lines, err := c.LinesServing(a)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "256", lines[0].Name)
	assert.Equal(t, "750", lines[1].Name)

	lines, err = c.LinesServing(b)
	require.NoError(t, err)
	assert.Len(t, lines, 2, "a bus visiting a stop twice is listed once")

	lines, err = c.LinesServing(lonely)
	require.NoError(t, err)
	assert.NotNil(t, lines)
	assert.Empty(t, lines)

	_, err = c.LinesServing(StopID(42))
	assert.ErrorIs(t, err, ErrStopNotFound)
}

func TestCatalogue_SortedListings(t *testing.T) {
	c := New()
	for _, name := range []string{"Zoo", "Airport", "Mall"} {
		mustAddStop(t, c, name, 0, 0)
	}
	_, err := c.AddBus("14", []string{"Zoo", "Mall"}, false)
	require.NoError(t, err)
	_, err = c.AddBus("114", []string{"Airport", "Zoo"}, false)
	require.NoError(t, err)
	_, err = c.AddBus("ghost", nil, true)
	require.NoError(t, err)

	var stopNames []string
	for _, s := range c.AllStops() {
		stopNames = append(stopNames, s.Name)
	}
	assert.Equal(t, []string{"Airport", "Mall", "Zoo"}, stopNames)

	var busNames []string
	for _, b := range c.AllLines() {
		busNames = append(busNames, b.Name)
	}
	assert.Equal(t, []string{"114", "14"}, busNames, "lines without stops are not listed")
	assert.Equal(t, 3, c.BusCount())
}

func TestBus_Traversal(t *testing.T) {
	tests := []struct {
		name string
		bus  Bus
		want []StopID
	}{
		{
			name: "roundtrip keeps the given order",
			bus:  Bus{Stops: []StopID{0, 1, 2, 0}, IsRoundtrip: true},
			want: []StopID{0, 1, 2, 0},
		},
		{
			name: "back and forth",
			bus:  Bus{Stops: []StopID{0, 1, 2}},
			want: []StopID{0, 1, 2, 1, 0},
		},
		{
			name: "single stop",
			bus:  Bus{Stops: []StopID{3}},
			want: []StopID{3},
		},
		{
			name: "empty",
			bus:  Bus{},
			want: []StopID{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.bus.Traversal())
		})
	}
}
