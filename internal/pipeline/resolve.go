package pipeline

import (
	"context"
	"log/slog"

	"github.com/couchcryptid/geo-lookup/internal/domain"
)

// Resolver answers lookup requests with a geocoder. It implements Transformer.
type Resolver struct {
	geocoder domain.Geocoder
	logger   *slog.Logger
}

// NewResolver creates a Resolver backed by g.
func NewResolver(g domain.Geocoder, logger *slog.Logger) *Resolver {
	return &Resolver{geocoder: g, logger: logger}
}

// Transform decodes a request, resolves it and encodes the result. Geocoding
// failures are carried in the result; only undecodable requests return an
// error.
func (r *Resolver) Transform(ctx context.Context, raw domain.RawMessage) (domain.OutputMessage, error) {
	req, err := domain.ParseLookupRequest(raw)
	if err != nil {
		return domain.OutputMessage{}, err
	}
	return domain.SerializeLookupResult(r.Resolve(ctx, req))
}

// Resolve runs the single geocoder operation named by req.
func (r *Resolver) Resolve(ctx context.Context, req domain.LookupRequest) domain.LookupResult {
	result := domain.NewLookupResult(req)

	var err error
	switch req.Operation {
	case domain.OpInfo:
		var p domain.Placemark
		p, err = r.geocoder.GeocodeInfo(ctx, req.Address...)
		result.Placemark = &p
	case domain.OpLngLat:
		var ll domain.LngLat
		ll, err = r.geocoder.GeocodeLngLat(ctx, req.Address...)
		result.LngLat = &ll
	case domain.OpReverse:
		var p domain.Placemark
		p, err = r.geocoder.ReverseGeocode(ctx, req.Lng, req.Lat)
		result.Placemark = &p
	case domain.OpReverseAll:
		result.Placemarks, err = r.geocoder.ReverseGeocodeAll(ctx, req.Lng, req.Lat)
		if err == nil && result.Placemarks == nil {
			result.Placemarks = []domain.Placemark{}
		}
	case domain.OpAccuracy:
		result.Accuracy = domain.DescribeAccuracy(req.Level)
	}

	if err != nil {
		result.Placemark, result.LngLat, result.Placemarks = nil, nil, nil
		result.Error = domain.NewLookupError(err)
		r.logger.Debug("lookup failed", "id", req.ID, "operation", req.Operation, "kind", result.Error.Kind)
	}
	return result
}
