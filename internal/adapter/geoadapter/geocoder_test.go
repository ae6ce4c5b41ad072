package geoadapter

import (
	"context"
	"errors"
	"testing"

	geo "github.com/codingsince1985/geo-golang"
	"github.com/couchcryptid/geo-lookup/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGeocoder struct {
	lngLat    domain.LngLat
	placemark domain.Placemark
	err       error

	gotAddress []string
	gotLng     float64
	gotLat     float64
}

func (f *fakeGeocoder) GeocodeInfo(_ context.Context, address ...string) (domain.Placemark, error) {
	f.gotAddress = address
	return f.placemark, f.err
}

func (f *fakeGeocoder) GeocodeLngLat(_ context.Context, address ...string) (domain.LngLat, error) {
	f.gotAddress = address
	return f.lngLat, f.err
}

func (f *fakeGeocoder) ReverseGeocode(_ context.Context, lng, lat float64) (domain.Placemark, error) {
	f.gotLng, f.gotLat = lng, lat
	return f.placemark, f.err
}

func (f *fakeGeocoder) ReverseGeocodeAll(_ context.Context, lng, lat float64) ([]domain.Placemark, error) {
	f.gotLng, f.gotLat = lng, lat
	if f.err != nil {
		return nil, f.err
	}
	return []domain.Placemark{f.placemark}, nil
}

func ptr[T any](v T) *T { return &v }

func TestGeocode(t *testing.T) {
	fake := &fakeGeocoder{lngLat: domain.LngLat{Lng: ptr(2.3), Lat: ptr(48.8), Accuracy: ptr(6)}}
	g := New(context.Background(), fake)

	loc, err := g.Geocode("Champs-Élysées, Paris")
	require.NoError(t, err)
	assert.Equal(t, &geo.Location{Lat: 48.8, Lng: 2.3}, loc)
	assert.Equal(t, []string{"Champs-Élysées, Paris"}, fake.gotAddress)
}

func TestGeocode_NotFound(t *testing.T) {
	g := New(context.Background(), &fakeGeocoder{})

	loc, err := g.Geocode("nowhere")
	require.NoError(t, err)
	assert.Nil(t, loc)
}

func TestGeocode_Error(t *testing.T) {
	perr := domain.NewProviderError(620, "")
	g := New(context.Background(), &fakeGeocoder{err: perr})

	loc, err := g.Geocode("Paris")
	assert.Nil(t, loc)
	assert.ErrorIs(t, err, perr)
}

func TestReverseGeocode_SwapsArguments(t *testing.T) {
	fake := &fakeGeocoder{placemark: domain.Placemark{
		Address:     ptr("60 Avenue des Champs-Élysées, 75008 Paris, France"),
		Coordinates: domain.NewCoordinates(2.307601, 48.869763),
		Details: domain.Details{
			CountryName:               ptr("France"),
			CountryCode:               ptr("FR"),
			AdministrativeAreaName:    ptr("Ile-de-France"),
			SubAdministrativeAreaName: ptr("Paris"),
			LocalityName:              ptr("Paris"),
			DependentLocalityName:     ptr("8ème Arrondissement Paris"),
			PostalCode:                ptr("75008"),
			Street:                    ptr("60 Avenue des Champs-Élysées"),
		},
	}}
	g := New(context.Background(), fake)

	addr, err := g.ReverseGeocode(48.8698008, 2.3075859)
	require.NoError(t, err)

	assert.InDelta(t, 2.3075859, fake.gotLng, 0)
	assert.InDelta(t, 48.8698008, fake.gotLat, 0)
	assert.Equal(t, &geo.Address{
		FormattedAddress: "60 Avenue des Champs-Élysées, 75008 Paris, France",
		Street:           "60 Avenue des Champs-Élysées",
		Suburb:           "8ème Arrondissement Paris",
		City:             "Paris",
		County:           "Paris",
		State:            "Ile-de-France",
		Postcode:         "75008",
		Country:          "France",
		CountryCode:      "FR",
	}, addr)
}

func TestReverseGeocode_NotFound(t *testing.T) {
	g := New(context.Background(), &fakeGeocoder{})

	addr, err := g.ReverseGeocode(0, 0)
	require.NoError(t, err)
	assert.Nil(t, addr)
}

func TestReverseGeocode_Error(t *testing.T) {
	g := New(context.Background(), &fakeGeocoder{err: errors.New("connection refused")})

	addr, err := g.ReverseGeocode(48.8, 2.3)
	assert.Nil(t, addr)
	assert.EqualError(t, err, "connection refused")
}

func TestToAddress_Sparse(t *testing.T) {
	addr := ToAddress(domain.Placemark{Address: ptr("France"), Details: domain.Details{CountryCode: ptr("FR")}})
	assert.Equal(t, &geo.Address{FormattedAddress: "France", CountryCode: "FR"}, addr)
}
