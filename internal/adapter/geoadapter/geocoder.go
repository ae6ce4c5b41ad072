// Package geoadapter exposes a domain.Geocoder through the geo-golang
// interface so code written against github.com/codingsince1985/geo-golang
// can use it unchanged.
package geoadapter

import (
	"context"

	geo "github.com/codingsince1985/geo-golang"
	"github.com/couchcryptid/geo-lookup/internal/domain"
)

// Geocoder implements geo.Geocoder. geo-golang has no context parameter, so
// every call runs under the base context given at construction.
type Geocoder struct {
	ctx      context.Context
	geocoder domain.Geocoder
}

var _ geo.Geocoder = (*Geocoder)(nil)

// New wraps g. A nil ctx means context.Background().
func New(ctx context.Context, g domain.Geocoder) *Geocoder {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Geocoder{ctx: ctx, geocoder: g}
}

// Geocode returns the location of the first match, or nil, nil when the
// provider found nothing usable.
func (g *Geocoder) Geocode(address string) (*geo.Location, error) {
	ll, err := g.geocoder.GeocodeLngLat(g.ctx, address)
	if err != nil {
		return nil, err
	}
	if ll.Lng == nil || ll.Lat == nil {
		return nil, nil
	}
	return &geo.Location{Lat: *ll.Lat, Lng: *ll.Lng}, nil
}

// ReverseGeocode returns the most specific address at lat, lng, or nil, nil
// when the provider returned no placemark.
func (g *Geocoder) ReverseGeocode(lat, lng float64) (*geo.Address, error) {
	p, err := g.geocoder.ReverseGeocode(g.ctx, lng, lat)
	if err != nil {
		return nil, err
	}
	if p.Address == nil && !p.Coordinates.IsSet() {
		return nil, nil
	}
	return ToAddress(p), nil
}

// ToAddress flattens a placemark into a geo.Address. Absent fields become
// empty strings.
func ToAddress(p domain.Placemark) *geo.Address {
	d := p.Details
	return &geo.Address{
		FormattedAddress: deref(p.Address),
		Street:           deref(d.Street),
		Suburb:           deref(d.DependentLocalityName),
		City:             deref(d.LocalityName),
		County:           deref(d.SubAdministrativeAreaName),
		State:            deref(d.AdministrativeAreaName),
		Postcode:         deref(d.PostalCode),
		Country:          deref(d.CountryName),
		CountryCode:      deref(d.CountryCode),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
