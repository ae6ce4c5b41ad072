package gmaps

import (
	"net/url"
	"strconv"
)

// buildQuery assembles the request parameters around the q value, which is
// either an address or a "lat,lng" pair.
func (c *Client) buildQuery(q string) url.Values {
	params := url.Values{}
	if c.key != "" {
		params.Set("key", c.key)
	}
	params.Set("sensor", strconv.FormatBool(c.sensor))
	params.Set("output", "xml")
	if c.country != "" {
		params.Set("gl", c.country)
	}
	if c.viewport.IsSet() {
		params.Set("ll", formatPair(c.viewport.CenterLat, c.viewport.CenterLng))
		params.Set("spn", formatPair(c.viewport.SpanLat, c.viewport.SpanLng))
	}
	params.Set("q", q)
	return params
}

// reverseQuery formats a coordinate pair the way the provider expects it:
// latitude first.
func reverseQuery(lng, lat float64) string {
	return formatPair(lat, lng)
}

func formatPair(a, b float64) string {
	return formatFloat(a) + "," + formatFloat(b)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
