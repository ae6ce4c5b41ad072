package gmaps

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/geo-lookup/internal/config"
	"github.com/couchcryptid/geo-lookup/internal/domain"
	"github.com/couchcryptid/geo-lookup/internal/observability"
	"github.com/jonboulle/clockwork"
)

const (
	// Version is reported in the User-Agent header.
	Version = "1.1"

	// DefaultTimeout bounds a single request when no timeout is configured.
	DefaultTimeout = 60 * time.Second

	userAgentPrefix = "geo-lookup/" + Version
)

// Client implements domain.Geocoder using the Google Maps geocoding service.
//
// The setters mutate settings shared by every later call. A Client is not safe
// for concurrent mutation while a request is in flight; configure it before
// sharing it.
type Client struct {
	baseURL    string
	httpClient *http.Client
	metrics    *observability.Metrics
	logger     *slog.Logger
	clock      clockwork.Clock

	key       string
	country   string
	sensor    bool
	timeout   time.Duration
	userAgent string
	viewport  domain.Viewport
}

var _ domain.Geocoder = (*Client)(nil)

// NewClient creates a geocoding client for the given endpoint with default
// settings: no key, no country bias, sensor off, 60s timeout, no viewport.
func NewClient(baseURL string, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
		metrics:    metrics,
		logger:     logger,
		clock:      clockwork.NewRealClock(),
		timeout:    DefaultTimeout,
	}
}

// NewClientFromConfig creates a client and applies the geocoder settings from cfg.
func NewClientFromConfig(cfg *config.Config, metrics *observability.Metrics, logger *slog.Logger) *Client {
	c := NewClient(cfg.GeocoderBaseURL, metrics, logger)
	c.SetKey(cfg.GeocoderAPIKey)
	c.SetCountry(cfg.GeocoderCountry)
	c.SetSensor(cfg.GeocoderSensor)
	c.SetTimeout(cfg.GeocoderTimeout)
	c.SetUserAgent(cfg.GeocoderUserAgent)
	vp := cfg.GeocoderViewport
	c.SetViewport(vp.CenterLng, vp.CenterLat, vp.SpanLng, vp.SpanLat)
	return c
}

// SetKey sets the Maps API key. An empty key is not sent.
func (c *Client) SetKey(key string) { c.key = key }

// Key returns the Maps API key.
func (c *Client) Key() string { return c.key }

// SetCountry sets the ccTLD country bias (not an ISO 3166-1 code, though
// mostly identical). An empty value disables the bias.
func (c *Client) SetCountry(country string) { c.country = country }

// Country returns the ccTLD country bias.
func (c *Client) Country() string { return c.country }

// SetSensor declares whether requests come from a device with a location sensor.
func (c *Client) SetSensor(sensor bool) { c.sensor = sensor }

// Sensor returns the sensor flag.
func (c *Client) Sensor() bool { return c.sensor }

// SetTimeout bounds each request. A non-positive value disables the bound.
func (c *Client) SetTimeout(d time.Duration) { c.timeout = d }

// Timeout returns the per-request timeout.
func (c *Client) Timeout() time.Duration { return c.timeout }

// SetUserAgent sets an application identifier appended to the client's own.
func (c *Client) SetUserAgent(ua string) { c.userAgent = ua }

// UserAgent returns the full User-Agent header value.
func (c *Client) UserAgent() string {
	if c.userAgent == "" {
		return userAgentPrefix
	}
	return userAgentPrefix + " " + c.userAgent
}

// SetViewport biases results towards a bounding box given by its center and
// its span in both dimensions. All zeros disables the bias.
func (c *Client) SetViewport(centerLng, centerLat, spanLng, spanLat float64) {
	c.viewport = domain.Viewport{
		CenterLng: centerLng,
		CenterLat: centerLat,
		SpanLng:   spanLng,
		SpanLat:   spanLat,
	}
}

// Viewport returns the viewport bias.
func (c *Client) Viewport() domain.Viewport { return c.viewport }

// DescribeAccuracy returns the description of an accuracy level.
func (c *Client) DescribeAccuracy(level int) string {
	return domain.DescribeAccuracy(level)
}

// GeocodeInfo returns the first placemark for an address.
func (c *Client) GeocodeInfo(ctx context.Context, address ...string) (domain.Placemark, error) {
	q, err := addressQuery(address)
	if err != nil {
		return domain.Placemark{}, err
	}
	resp, err := c.doRequest(ctx, domain.OpInfo, q)
	if err != nil {
		return domain.Placemark{}, err
	}
	return resp.first(), nil
}

// GeocodeLngLat returns the longitude, latitude and accuracy of the first
// placemark for an address.
func (c *Client) GeocodeLngLat(ctx context.Context, address ...string) (domain.LngLat, error) {
	q, err := addressQuery(address)
	if err != nil {
		return domain.LngLat{}, err
	}
	resp, err := c.doRequest(ctx, domain.OpLngLat, q)
	if err != nil {
		return domain.LngLat{}, err
	}
	return resp.first().LngLat(), nil
}

// ReverseGeocode returns the most specific placemark for a coordinate pair.
// Coordinates are not range-checked; the provider decides.
func (c *Client) ReverseGeocode(ctx context.Context, lng, lat float64) (domain.Placemark, error) {
	resp, err := c.doRequest(ctx, domain.OpReverse, reverseQuery(lng, lat))
	if err != nil {
		return domain.Placemark{}, err
	}
	return resp.first(), nil
}

// ReverseGeocodeAll returns every placemark for a coordinate pair in provider
// order, most specific first.
func (c *Client) ReverseGeocodeAll(ctx context.Context, lng, lat float64) ([]domain.Placemark, error) {
	resp, err := c.doRequest(ctx, domain.OpReverseAll, reverseQuery(lng, lat))
	if err != nil {
		return nil, err
	}
	return resp.all(), nil
}

func (c *Client) doRequest(ctx context.Context, op domain.Operation, q string) (*response, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	fullURL := c.baseURL + "?" + c.buildQuery(q).Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent())

	start := c.clock.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.fail(op, fmt.Errorf("%s geocode request: %w", op, err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.fail(op, fmt.Errorf("%s geocode read body: %w", op, err))
	}
	duration := c.clock.Since(start)
	c.metrics.GeocodeAPIDuration.WithLabelValues(string(op)).Observe(duration.Seconds())

	doc, err := parseDocument(body)
	if err != nil {
		return nil, c.fail(op, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, c.fail(op, domain.NewProviderError(resp.StatusCode, ""))
	}

	n := len(doc.Response.Placemarks)
	c.logger.Debug("geocode request completed",
		"operation", op,
		"status", resp.StatusCode,
		"provider_status", doc.Response.StatusCode,
		"placemarks", n,
		"duration", duration,
	)
	c.metrics.PlacemarksReturned.Observe(float64(n))
	outcome := "success"
	if n == 0 {
		outcome = "empty"
	}
	c.metrics.GeocodeRequests.WithLabelValues(string(op), outcome).Inc()

	return &doc.Response, nil
}

func (c *Client) fail(op domain.Operation, err error) error {
	c.logger.Warn("geocode request failed", "operation", op, "error", err)
	c.metrics.GeocodeRequests.WithLabelValues(string(op), "error").Inc()
	return err
}

func addressQuery(parts []string) (string, error) {
	address := domain.NormalizeAddress(parts...)
	if address == "" {
		return "", fmt.Errorf("%w: no address provided", domain.ErrInvalidArgument)
	}
	return address, nil
}
