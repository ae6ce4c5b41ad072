// Command geocode runs one lookup against the geocoding service and prints
// the result.
//
// Usage:
//
//	geocode [flags] info <address fragment>...
//	geocode [flags] lnglat <address fragment>...
//	geocode [flags] reverse <lng> <lat>
//	geocode [flags] reverse-all <lng> <lat>
//	geocode accuracy <level>
//
// Flag defaults come from the same environment variables as the service.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/couchcryptid/geo-lookup/internal/adapter/gmaps"
	"github.com/couchcryptid/geo-lookup/internal/config"
	"github.com/couchcryptid/geo-lookup/internal/domain"
	"github.com/couchcryptid/geo-lookup/internal/observability"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
)

var errUsage = errors.New("usage: geocode [flags] info|lnglat <address>... | reverse|reverse-all <lng> <lat> | accuracy <level>")

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, "config:", err)
		return 1
	}

	fs := flag.NewFlagSet("geocode", flag.ContinueOnError)
	fs.SetOutput(stderr)
	baseURL := fs.String("base-url", cfg.GeocoderBaseURL, "geocoding service endpoint")
	key := fs.String("key", cfg.GeocoderAPIKey, "Maps API key")
	country := fs.String("country", cfg.GeocoderCountry, "ccTLD country bias")
	sensor := fs.Bool("sensor", cfg.GeocoderSensor, "request comes from a location sensor")
	timeout := fs.Duration("timeout", cfg.GeocoderTimeout, "request timeout")
	userAgent := fs.String("user-agent", cfg.GeocoderUserAgent, "application identifier appended to the User-Agent")
	viewport := fs.String("viewport", "", "viewport bias as centerLng,centerLat,spanLng,spanLat")
	format := fs.String("format", "table", "output format: table or json")
	verbose := fs.Bool("v", false, "log requests to stderr")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	vp := cfg.GeocoderViewport
	if *viewport != "" {
		if vp, err = config.ParseViewport(*viewport); err != nil {
			fmt.Fprintln(stderr, "invalid -viewport:", err)
			return 2
		}
	}
	if *format != "table" && *format != "json" {
		fmt.Fprintf(stderr, "invalid -format %q\n", *format)
		return 2
	}

	level := slog.LevelError
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	client := gmaps.NewClient(*baseURL, observability.NewMetricsWith(prometheus.NewRegistry()), logger)
	client.SetKey(*key)
	client.SetCountry(*country)
	client.SetSensor(*sensor)
	client.SetTimeout(*timeout)
	client.SetUserAgent(*userAgent)
	client.SetViewport(vp.CenterLng, vp.CenterLat, vp.SpanLng, vp.SpanLat)

	out := printer{w: stdout, json: *format == "json"}
	if err := dispatch(ctx, client, fs.Args(), out); err != nil {
		fmt.Fprintln(stderr, "geocode:", err)
		if errors.Is(err, errUsage) || errors.Is(err, domain.ErrInvalidArgument) {
			return 2
		}
		return 1
	}
	return 0
}

func dispatch(ctx context.Context, client *gmaps.Client, args []string, out printer) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, rest := args[0], args[1:]

	switch cmd {
	case "info":
		p, err := client.GeocodeInfo(ctx, rest...)
		if err != nil {
			return err
		}
		return out.placemarks([]domain.Placemark{p}, p)
	case "lnglat":
		ll, err := client.GeocodeLngLat(ctx, rest...)
		if err != nil {
			return err
		}
		return out.lngLat(ll)
	case "reverse", "reverse-all":
		lng, lat, err := parseLngLat(rest)
		if err != nil {
			return err
		}
		if cmd == "reverse" {
			p, err := client.ReverseGeocode(ctx, lng, lat)
			if err != nil {
				return err
			}
			return out.placemarks([]domain.Placemark{p}, p)
		}
		all, err := client.ReverseGeocodeAll(ctx, lng, lat)
		if err != nil {
			return err
		}
		return out.placemarks(all, all)
	case "accuracy":
		if len(rest) != 1 {
			return errUsage
		}
		level, err := strconv.Atoi(rest[0])
		if err != nil {
			return fmt.Errorf("%w: accuracy level %q", domain.ErrInvalidArgument, rest[0])
		}
		return out.accuracy(level, client.DescribeAccuracy(level))
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
	}
}

func parseLngLat(args []string) (lng, lat float64, err error) {
	if len(args) != 2 {
		return 0, 0, errUsage
	}
	if lng, err = strconv.ParseFloat(args[0], 64); err != nil {
		return 0, 0, fmt.Errorf("%w: longitude %q", domain.ErrInvalidArgument, args[0])
	}
	if lat, err = strconv.ParseFloat(args[1], 64); err != nil {
		return 0, 0, fmt.Errorf("%w: latitude %q", domain.ErrInvalidArgument, args[1])
	}
	return lng, lat, nil
}
