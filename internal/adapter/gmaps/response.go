package gmaps

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/couchcryptid/geo-lookup/internal/domain"
	"golang.org/x/net/html/charset"
)

// Provider response types. Tags carry no namespace so both the KML root
// namespace and the xAL namespace on AddressDetails match.

type document struct {
	XMLName  xml.Name
	Response response `xml:"Response"`
}

type response struct {
	StatusCode string      `xml:"Status>code"`
	Placemarks []placemark `xml:"Placemark"`
}

type placemark struct {
	Address        *string         `xml:"address"`
	AddressDetails *addressDetails `xml:"AddressDetails"`
	Point          *point          `xml:"Point"`
}

type addressDetails struct {
	Accuracy *string  `xml:"Accuracy,attr"`
	Country  *country `xml:"Country"`
}

type country struct {
	CountryName        *string             `xml:"CountryName"`
	CountryNameCode    *string             `xml:"CountryNameCode"`
	AdministrativeArea *administrativeArea `xml:"AdministrativeArea"`
}

type administrativeArea struct {
	AdministrativeAreaName *string                `xml:"AdministrativeAreaName"`
	SubAdministrativeArea  *subAdministrativeArea `xml:"SubAdministrativeArea"`
}

type subAdministrativeArea struct {
	SubAdministrativeAreaName *string   `xml:"SubAdministrativeAreaName"`
	Locality                  *locality `xml:"Locality"`
}

type locality struct {
	LocalityName      *string            `xml:"LocalityName"`
	DependentLocality *dependentLocality `xml:"DependentLocality"`
}

type dependentLocality struct {
	DependentLocalityName *string       `xml:"DependentLocalityName"`
	Thoroughfare          *thoroughfare `xml:"Thoroughfare"`
	PostalCode            *postalCode   `xml:"PostalCode"`
}

type thoroughfare struct {
	ThoroughfareName *string `xml:"ThoroughfareName"`
}

type postalCode struct {
	PostalCodeNumber *string `xml:"PostalCodeNumber"`
}

type point struct {
	Coordinates *string `xml:"coordinates"`
}

// parseDocument decodes a provider body. Anything that is not a well-formed
// XML document is ErrMalformedResponse.
func parseDocument(body []byte) (*document, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, fmt.Errorf("%w: empty body", domain.ErrMalformedResponse)
	}
	dec := xml.NewDecoder(bytes.NewReader(body))
	dec.CharsetReader = charset.NewReaderLabel

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrMalformedResponse, err)
	}
	if err := checkTrailing(dec); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrMalformedResponse, err)
	}
	return &doc, nil
}

// checkTrailing reads the rest of the document after the root element. Only
// whitespace, comments and processing instructions may follow it.
func checkTrailing(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			return fmt.Errorf("second root element <%s>", t.Name.Local)
		case xml.CharData:
			if len(bytes.TrimSpace(t)) > 0 {
				return errors.New("content after root element")
			}
		}
	}
}

func (r *response) first() domain.Placemark {
	if len(r.Placemarks) == 0 {
		return domain.Placemark{}
	}
	return r.Placemarks[0].toDomain()
}

func (r *response) all() []domain.Placemark {
	out := make([]domain.Placemark, 0, len(r.Placemarks))
	for i := range r.Placemarks {
		out = append(out, r.Placemarks[i].toDomain())
	}
	return out
}

func (p *placemark) toDomain() domain.Placemark {
	details := p.AddressDetails
	ctry := details.country()
	admin := ctry.administrativeArea()
	sub := admin.subAdministrativeArea()
	loc := sub.locality()
	dep := loc.dependentLocality()

	return domain.Placemark{
		Accuracy:    details.accuracy(),
		Address:     p.Address,
		Coordinates: p.Point.coordinates(),
		Details: domain.Details{
			CountryName:               ctry.name(),
			CountryCode:               ctry.code(),
			AdministrativeAreaName:    admin.name(),
			SubAdministrativeAreaName: sub.name(),
			LocalityName:              loc.name(),
			DependentLocalityName:     dep.name(),
			PostalCode:                dep.postalCode(),
			Street:                    dep.street(),
		},
	}
}

// Nil-safe accessors: a missing level yields nil for everything below it.

func (d *addressDetails) accuracy() *int {
	if d == nil || d.Accuracy == nil {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(*d.Accuracy))
	if err != nil {
		return nil
	}
	return &n
}

func (d *addressDetails) country() *country {
	if d == nil {
		return nil
	}
	return d.Country
}

func (c *country) name() *string {
	if c == nil {
		return nil
	}
	return c.CountryName
}

func (c *country) code() *string {
	if c == nil {
		return nil
	}
	return c.CountryNameCode
}

func (c *country) administrativeArea() *administrativeArea {
	if c == nil {
		return nil
	}
	return c.AdministrativeArea
}

func (a *administrativeArea) name() *string {
	if a == nil {
		return nil
	}
	return a.AdministrativeAreaName
}

func (a *administrativeArea) subAdministrativeArea() *subAdministrativeArea {
	if a == nil {
		return nil
	}
	return a.SubAdministrativeArea
}

func (s *subAdministrativeArea) name() *string {
	if s == nil {
		return nil
	}
	return s.SubAdministrativeAreaName
}

func (s *subAdministrativeArea) locality() *locality {
	if s == nil {
		return nil
	}
	return s.Locality
}

func (l *locality) name() *string {
	if l == nil {
		return nil
	}
	return l.LocalityName
}

func (l *locality) dependentLocality() *dependentLocality {
	if l == nil {
		return nil
	}
	return l.DependentLocality
}

func (d *dependentLocality) name() *string {
	if d == nil {
		return nil
	}
	return d.DependentLocalityName
}

func (d *dependentLocality) street() *string {
	if d == nil || d.Thoroughfare == nil {
		return nil
	}
	return d.Thoroughfare.ThoroughfareName
}

func (d *dependentLocality) postalCode() *string {
	if d == nil || d.PostalCode == nil {
		return nil
	}
	return d.PostalCode.PostalCodeNumber
}

// coordinates parses "lng,lat,alt". Fewer than three components, or an
// unparsable longitude or latitude, leaves both absent.
func (p *point) coordinates() domain.Coordinates {
	if p == nil || p.Coordinates == nil {
		return domain.Coordinates{}
	}
	parts := strings.Split(strings.TrimSpace(*p.Coordinates), ",")
	if len(parts) < 3 {
		return domain.Coordinates{}
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return domain.Coordinates{}
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return domain.Coordinates{}
	}
	return domain.NewCoordinates(lng, lat)
}
