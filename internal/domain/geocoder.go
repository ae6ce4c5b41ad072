package domain

import "context"

// Geocoder resolves addresses to placemarks and back.
type Geocoder interface {
	// GeocodeInfo returns the first placemark for an address. Multiple
	// fragments are joined with commas.
	GeocodeInfo(ctx context.Context, address ...string) (Placemark, error)

	// GeocodeLngLat returns the coordinates and accuracy of the first placemark.
	GeocodeLngLat(ctx context.Context, address ...string) (LngLat, error)

	// ReverseGeocode returns the most specific placemark for a coordinate pair.
	ReverseGeocode(ctx context.Context, lng, lat float64) (Placemark, error)

	// ReverseGeocodeAll returns every placemark for a coordinate pair, most
	// specific first.
	ReverseGeocodeAll(ctx context.Context, lng, lat float64) ([]Placemark, error)
}
