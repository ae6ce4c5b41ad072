package httpadapter

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/couchcryptid/geo-lookup/internal/adapter/geoadapter"
	"github.com/couchcryptid/geo-lookup/internal/domain"
	"github.com/gin-gonic/gin"
)

type handlers struct {
	geocoder domain.Geocoder
}

func newHandlers(g domain.Geocoder) *handlers {
	return &handlers{geocoder: g}
}

// geocodeInfo handles GET /v1/geocode?address=...; repeated address
// parameters are joined as fragments.
func (h *handlers) geocodeInfo(c *gin.Context) {
	p, err := h.geocoder.GeocodeInfo(c.Request.Context(), c.QueryArray("address")...)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// geocodeLngLat handles GET /v1/geocode/lnglat?address=...
func (h *handlers) geocodeLngLat(c *gin.Context) {
	ll, err := h.geocoder.GeocodeLngLat(c.Request.Context(), c.QueryArray("address")...)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, ll)
}

// reverse handles GET /v1/reverse?lng=&lat=
func (h *handlers) reverse(c *gin.Context) {
	lng, lat, ok := coordinates(c)
	if !ok {
		return
	}
	p, err := h.geocoder.ReverseGeocode(c.Request.Context(), lng, lat)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// reverseAll handles GET /v1/reverse/all?lng=&lat=
func (h *handlers) reverseAll(c *gin.Context) {
	lng, lat, ok := coordinates(c)
	if !ok {
		return
	}
	all, err := h.geocoder.ReverseGeocodeAll(c.Request.Context(), lng, lat)
	if err != nil {
		writeError(c, err)
		return
	}
	if all == nil {
		all = []domain.Placemark{}
	}
	c.JSON(http.StatusOK, all)
}

// reverseAddress handles GET /v1/reverse/address?lng=&lat= and answers with a
// flat geo-golang address.
func (h *handlers) reverseAddress(c *gin.Context) {
	lng, lat, ok := coordinates(c)
	if !ok {
		return
	}
	addr, err := geoadapter.New(c.Request.Context(), h.geocoder).ReverseGeocode(lat, lng)
	if err != nil {
		writeError(c, err)
		return
	}
	if addr == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no address found near the specified coordinates"})
		return
	}
	c.JSON(http.StatusOK, addr)
}

// accuracy handles GET /v1/accuracy/:level
func (h *handlers) accuracy(c *gin.Context) {
	level, err := strconv.Atoi(c.Param("level"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid accuracy level"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"level": level, "description": domain.DescribeAccuracy(level)})
}

// coordinates reads the lng and lat query parameters, writing a 400 response
// when either is missing or not a number.
func coordinates(c *gin.Context) (lng, lat float64, ok bool) {
	lngStr, latStr := c.Query("lng"), c.Query("lat")
	if lngStr == "" || latStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing required query parameters 'lng' and 'lat'"})
		return 0, 0, false
	}
	lng, err := strconv.ParseFloat(lngStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid longitude format"})
		return 0, 0, false
	}
	lat, err = strconv.ParseFloat(latStr, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid latitude format"})
		return 0, 0, false
	}
	return lng, lat, true
}

func writeError(c *gin.Context, err error) {
	kind := domain.ErrorKind(err)
	body := gin.H{"error": err.Error(), "kind": kind}

	status := http.StatusBadGateway
	switch kind {
	case domain.KindInvalidArgument:
		status = http.StatusBadRequest
	case domain.KindTimeout:
		status = http.StatusGatewayTimeout
	case domain.KindProvider:
		var perr *domain.ProviderError
		if errors.As(err, &perr) {
			body["code"] = perr.Code
		}
	}
	c.JSON(status, body)
}
