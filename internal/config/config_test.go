package config

import (
	"testing"
	"time"

	"github.com/couchcryptid/geo-lookup/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testAPIKey = "ABQIAAAA-test-key"

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)

	assert.Equal(t, DefaultGeocoderURL, cfg.GeocoderBaseURL)
	assert.Empty(t, cfg.GeocoderAPIKey)
	assert.Empty(t, cfg.GeocoderCountry)
	assert.False(t, cfg.GeocoderSensor)
	assert.Equal(t, 60*time.Second, cfg.GeocoderTimeout)
	assert.Empty(t, cfg.GeocoderUserAgent)
	assert.False(t, cfg.GeocoderViewport.IsSet())

	assert.False(t, cfg.KafkaEnabled)
	assert.Equal(t, []string{"localhost:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "geocode-requests", cfg.KafkaSourceTopic)
	assert.Equal(t, "geocode-results", cfg.KafkaSinkTopic)
	assert.Equal(t, "geo-lookup", cfg.KafkaGroupID)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")
	t.Setenv("GEOCODER_BASE_URL", "http://localhost:8081/maps/geo")
	t.Setenv("GEOCODER_API_KEY", testAPIKey)
	t.Setenv("GEOCODER_COUNTRY", "fr")
	t.Setenv("GEOCODER_SENSOR", "true")
	t.Setenv("GEOCODER_TIMEOUT", "5s")
	t.Setenv("GEOCODER_USER_AGENT", "my-app/2.0")
	t.Setenv("GEOCODER_VIEWPORT", "2.35,48.85,0.1,0.05")
	t.Setenv("KAFKA_ENABLED", "true")
	t.Setenv("KAFKA_BROKERS", "broker1:9092,broker2:9092")
	t.Setenv("KAFKA_SOURCE_TOPIC", "custom-requests")
	t.Setenv("KAFKA_SINK_TOPIC", "custom-results")
	t.Setenv("KAFKA_GROUP_ID", "custom-group")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "http://localhost:8081/maps/geo", cfg.GeocoderBaseURL)
	assert.Equal(t, testAPIKey, cfg.GeocoderAPIKey)
	assert.Equal(t, "fr", cfg.GeocoderCountry)
	assert.True(t, cfg.GeocoderSensor)
	assert.Equal(t, 5*time.Second, cfg.GeocoderTimeout)
	assert.Equal(t, "my-app/2.0", cfg.GeocoderUserAgent)
	assert.Equal(t, domain.Viewport{CenterLng: 2.35, CenterLat: 48.85, SpanLng: 0.1, SpanLat: 0.05}, cfg.GeocoderViewport)
	assert.True(t, cfg.KafkaEnabled)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "custom-requests", cfg.KafkaSourceTopic)
	assert.Equal(t, "custom-results", cfg.KafkaSinkTopic)
	assert.Equal(t, "custom-group", cfg.KafkaGroupID)
}

func TestLoad_InvalidShutdownTimeout(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SHUTDOWN_TIMEOUT")
}

func TestLoad_InvalidGeocoderTimeout(t *testing.T) {
	t.Setenv("GEOCODER_TIMEOUT", "bad")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEOCODER_TIMEOUT")
}

func TestLoad_NonPositiveGeocoderTimeout(t *testing.T) {
	t.Setenv("GEOCODER_TIMEOUT", "0s")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEOCODER_TIMEOUT")
}

func TestLoad_InvalidSensor(t *testing.T) {
	t.Setenv("GEOCODER_SENSOR", "maybe")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEOCODER_SENSOR")
}

func TestLoad_InvalidViewport(t *testing.T) {
	t.Setenv("GEOCODER_VIEWPORT", "1,2,3")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEOCODER_VIEWPORT")
}

func TestLoad_InvalidKafkaEnabled(t *testing.T) {
	t.Setenv("KAFKA_ENABLED", "yes please")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "KAFKA_ENABLED")
}

func TestParseViewport(t *testing.T) {
	vp, err := ParseViewport(" 2.35, 48.85 ,0.1,0.05 ")
	require.NoError(t, err)
	assert.Equal(t, domain.Viewport{CenterLng: 2.35, CenterLat: 48.85, SpanLng: 0.1, SpanLat: 0.05}, vp)

	vp, err = ParseViewport("")
	require.NoError(t, err)
	assert.False(t, vp.IsSet())

	_, err = ParseViewport("a,b,c,d")
	assert.Error(t, err)
}
