package domain

// Placemark is one geocoded result entry.
type Placemark struct {
	Accuracy    *int        `json:"accuracy"`
	Address     *string     `json:"address"`
	Coordinates Coordinates `json:"coordinates"`
	Details     Details     `json:"details"`
}

// Coordinates is a WGS-84 point. Lng and Lat are either both set or both nil.
type Coordinates struct {
	Lng *float64 `json:"lng"`
	Lat *float64 `json:"lat"`
}

// NewCoordinates returns a populated coordinate pair.
func NewCoordinates(lng, lat float64) Coordinates {
	return Coordinates{Lng: &lng, Lat: &lat}
}

// IsSet reports whether the pair carries a usable point.
func (c Coordinates) IsSet() bool {
	return c.Lng != nil && c.Lat != nil
}

// Details is the address breakdown of a placemark.
type Details struct {
	CountryName               *string `json:"countryName"`
	CountryCode               *string `json:"countryCode"`
	AdministrativeAreaName    *string `json:"administrativeAreaName"`
	SubAdministrativeAreaName *string `json:"subAdministrativeAreaName"`
	LocalityName              *string `json:"localityName"`
	DependentLocalityName     *string `json:"dependentLocalityName"`
	PostalCode                *string `json:"postalCode"`
	Street                    *string `json:"street"`
}

// LngLat is the coordinate-only projection of a placemark.
type LngLat struct {
	Lng      *float64 `json:"lng"`
	Lat      *float64 `json:"lat"`
	Accuracy *int     `json:"accuracy"`
}

// LngLat projects the placemark onto its coordinates and accuracy.
func (p Placemark) LngLat() LngLat {
	return LngLat{
		Lng:      p.Coordinates.Lng,
		Lat:      p.Coordinates.Lat,
		Accuracy: p.Accuracy,
	}
}

// Viewport is a bounding-box hint: a center point and a span in both
// dimensions. The zero value means no bias.
type Viewport struct {
	CenterLng float64 `json:"centerLng"`
	CenterLat float64 `json:"centerLat"`
	SpanLng   float64 `json:"spanLng"`
	SpanLat   float64 `json:"spanLat"`
}

// IsSet reports whether any of the four values is non-zero.
func (v Viewport) IsSet() bool {
	return v.CenterLng != 0 || v.CenterLat != 0 || v.SpanLng != 0 || v.SpanLat != 0
}
