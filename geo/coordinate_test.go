package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name     string
		from, to Coordinates
		want     float64
		delta    float64
	}{
		{
			name:  "same point",
			from:  Coordinates{Lat: 55.611087, Lng: 37.20829},
			to:    Coordinates{Lat: 55.611087, Lng: 37.20829},
			want:  0,
			delta: 0,
		},
		{
			name:  "one degree of longitude on the equator",
			from:  Coordinates{Lat: 0, Lng: 0},
			to:    Coordinates{Lat: 0, Lng: 1},
			want:  EarthRadiusMeters * 3.141592653589793 / 180,
			delta: 1e-3,
		},
		{
			name:  "pole to pole",
			from:  Coordinates{Lat: 90, Lng: 0},
			to:    Coordinates{Lat: -90, Lng: 0},
			want:  EarthRadiusMeters * 3.141592653589793,
			delta: 1e-3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Distance(tt.from, tt.to), tt.delta)
		})
	}
}

func TestDistance_Symmetric(t *testing.T) {
	a := Coordinates{Lat: 55.595884, Lng: 37.209755}
	b := Coordinates{Lat: 55.632761, Lng: 37.333324}

	assert.InDelta(t, Distance(a, b), Distance(b, a), 1e-9)
	assert.Greater(t, Distance(a, b), 0.0)
}
