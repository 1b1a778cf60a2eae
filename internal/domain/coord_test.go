package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }

func TestNewCoord(t *testing.T) {
	tests := []struct {
		name    string
		lon     *float64
		lat     *float64
		wantLon *float64
		wantLat *float64
	}{
		{"both present", fptr(-87.5), fptr(33.2), fptr(-87.5), fptr(33.2)},
		{"longitude sentinel dropped", fptr(999.9999), fptr(33.2), nil, fptr(33.2)},
		{"latitude sentinel dropped", fptr(-87.5), fptr(99.9999), fptr(-87.5), nil},
		{"both sentinels dropped", fptr(999.9999), fptr(99.9999), nil, nil},
		{"longitude exactly 900 kept", fptr(900), fptr(45), fptr(900), fptr(45)},
		{"latitude exactly 90 kept", fptr(-87.5), fptr(90), fptr(-87.5), fptr(90)},
		{"missing longitude", nil, fptr(33.2), nil, fptr(33.2)},
		{"missing latitude", fptr(-87.5), nil, fptr(-87.5), nil},
		{"both missing", nil, nil, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewCoord(tt.lon, tt.lat)
			assert.Equal(t, tt.wantLon, got.Lon)
			assert.Equal(t, tt.wantLat, got.Lat)
		})
	}
}

func TestCoordComplete(t *testing.T) {
	assert.True(t, NewCoord(fptr(-87.5), fptr(33.2)).Complete())
	assert.False(t, NewCoord(nil, fptr(33.2)).Complete())
	assert.False(t, NewCoord(fptr(-87.5), fptr(99.99)).Complete())
	assert.False(t, NewCoord(nil, nil).Complete())
}

func TestNewCoordCopiesInputs(t *testing.T) {
	lon, lat := -87.5, 33.2
	c := NewCoord(&lon, &lat)

	lon, lat = 0, 0

	require.True(t, c.Complete())
	assert.Equal(t, -87.5, *c.Lon)
	assert.Equal(t, 33.2, *c.Lat)
}
