package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/couchcryptid/geo-lookup/internal/domain"
	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// DefaultGeocoderURL is the legacy Google Maps geocoding endpoint.
const DefaultGeocoderURL = "http://maps.google.com/maps/geo"

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Geocoding provider configuration.
	GeocoderBaseURL   string
	GeocoderAPIKey    string
	GeocoderCountry   string
	GeocoderSensor    bool
	GeocoderTimeout   time.Duration
	GeocoderUserAgent string
	GeocoderViewport  domain.Viewport

	// Kafka lookup pipeline configuration.
	KafkaEnabled     bool
	KafkaBrokers     []string
	KafkaSourceTopic string
	KafkaSinkTopic   string
	KafkaGroupID     string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	geocoderTimeout, err := time.ParseDuration(sharedcfg.EnvOrDefault("GEOCODER_TIMEOUT", "60s"))
	if err != nil || geocoderTimeout <= 0 {
		return nil, errors.New("invalid GEOCODER_TIMEOUT")
	}

	sensor, err := parseBool("GEOCODER_SENSOR", false)
	if err != nil {
		return nil, err
	}

	viewport, err := ParseViewport(os.Getenv("GEOCODER_VIEWPORT"))
	if err != nil {
		return nil, fmt.Errorf("invalid GEOCODER_VIEWPORT: %w", err)
	}

	kafkaEnabled, err := parseBool("KAFKA_ENABLED", false)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		GeocoderBaseURL:   sharedcfg.EnvOrDefault("GEOCODER_BASE_URL", DefaultGeocoderURL),
		GeocoderAPIKey:    os.Getenv("GEOCODER_API_KEY"),
		GeocoderCountry:   os.Getenv("GEOCODER_COUNTRY"),
		GeocoderSensor:    sensor,
		GeocoderTimeout:   geocoderTimeout,
		GeocoderUserAgent: os.Getenv("GEOCODER_USER_AGENT"),
		GeocoderViewport:  viewport,

		KafkaEnabled:     kafkaEnabled,
		KafkaBrokers:     sharedcfg.ParseBrokers(sharedcfg.EnvOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaSourceTopic: sharedcfg.EnvOrDefault("KAFKA_SOURCE_TOPIC", "geocode-requests"),
		KafkaSinkTopic:   sharedcfg.EnvOrDefault("KAFKA_SINK_TOPIC", "geocode-results"),
		KafkaGroupID:     sharedcfg.EnvOrDefault("KAFKA_GROUP_ID", "geo-lookup"),
	}

	if cfg.GeocoderBaseURL == "" {
		return nil, errors.New("GEOCODER_BASE_URL is required")
	}
	if cfg.KafkaEnabled {
		if len(cfg.KafkaBrokers) == 0 {
			return nil, errors.New("KAFKA_BROKERS is required when KAFKA_ENABLED is true")
		}
		if cfg.KafkaSourceTopic == "" {
			return nil, errors.New("KAFKA_SOURCE_TOPIC is required when KAFKA_ENABLED is true")
		}
		if cfg.KafkaSinkTopic == "" {
			return nil, errors.New("KAFKA_SINK_TOPIC is required when KAFKA_ENABLED is true")
		}
	}

	return cfg, nil
}

// ParseViewport parses "centerLng,centerLat,spanLng,spanLat". An empty string
// is the unset viewport.
func ParseViewport(s string) (domain.Viewport, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return domain.Viewport{}, nil
	}
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return domain.Viewport{}, fmt.Errorf("expected 4 comma-separated values, got %d", len(parts))
	}
	var vals [4]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return domain.Viewport{}, fmt.Errorf("value %d: %w", i+1, err)
		}
		vals[i] = v
	}
	return domain.Viewport{
		CenterLng: vals[0],
		CenterLat: vals[1],
		SpanLng:   vals[2],
		SpanLat:   vals[3],
	}, nil
}

func parseBool(key string, def bool) (bool, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %q", key, s)
	}
	return v, nil
}
