//go:build gmaps

package gmaps

import (
	"context"
	"os"
	"testing"

	"github.com/couchcryptid/geo-lookup/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests hit the real geocoding service and require GEOCODER_API_KEY.
// GEOCODER_BASE_URL overrides the endpoint.
// Run with: go test -tags=gmaps ./internal/adapter/gmaps/ -v -count=1

func smokeClient(t *testing.T) *Client {
	t.Helper()
	key := os.Getenv("GEOCODER_API_KEY")
	if key == "" {
		t.Fatal("GEOCODER_API_KEY must be set to run smoke tests")
	}
	baseURL := os.Getenv("GEOCODER_BASE_URL")
	if baseURL == "" {
		baseURL = config.DefaultGeocoderURL
	}
	c := testClient(baseURL)
	c.SetKey(key)
	return c
}

func TestSmoke_GeocodeLngLat(t *testing.T) {
	c := smokeClient(t)

	ll, err := c.GeocodeLngLat(context.Background(), "Avenue des Champs-Élysées", "Paris")
	require.NoError(t, err)
	require.NotNil(t, ll.Lng)
	require.NotNil(t, ll.Lat)

	assert.InDelta(t, 2.30, *ll.Lng, 0.1, "lng should be near Paris")
	assert.InDelta(t, 48.87, *ll.Lat, 0.1, "lat should be near Paris")
}

func TestSmoke_ReverseGeocodeAll(t *testing.T) {
	c := smokeClient(t)

	all, err := c.ReverseGeocodeAll(context.Background(), 2.3075859, 48.8698008)
	require.NoError(t, err)
	require.NotEmpty(t, all)

	last := all[len(all)-1]
	require.NotNil(t, last.Details.CountryCode)
	assert.Equal(t, "FR", *last.Details.CountryCode)
}
