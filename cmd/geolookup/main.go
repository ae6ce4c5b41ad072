package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/couchcryptid/geo-lookup/internal/adapter/gmaps"
	"github.com/couchcryptid/geo-lookup/internal/adapter/httpadapter"
	kafkaadapter "github.com/couchcryptid/geo-lookup/internal/adapter/kafka"
	"github.com/couchcryptid/geo-lookup/internal/config"
	"github.com/couchcryptid/geo-lookup/internal/observability"
	"github.com/couchcryptid/geo-lookup/internal/pipeline"
	sharedobs "github.com/couchcryptid/storm-data-shared/observability"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// A .env file is optional; real environment variables take precedence.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := sharedobs.NewLogger(cfg.LogLevel, cfg.LogFormat)
	metrics := observability.NewMetrics()

	client := gmaps.NewClientFromConfig(cfg, metrics, logger)
	logger.Info("geocoder configured",
		"base_url", cfg.GeocoderBaseURL,
		"timeout", cfg.GeocoderTimeout,
		"country", cfg.GeocoderCountry,
		"key_set", cfg.GeocoderAPIKey != "",
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		ready  sharedobs.ReadinessChecker = httpadapter.AlwaysReady{}
		reader *kafkaadapter.Reader
		writer *kafkaadapter.Writer
	)
	if cfg.KafkaEnabled {
		reader = kafkaadapter.NewReader(cfg, logger)
		writer = kafkaadapter.NewWriter(cfg, logger)
		p := pipeline.New(reader, pipeline.NewResolver(client, logger), writer, logger, metrics)
		ready = p

		go func() {
			if err := p.Run(ctx); err != nil {
				logger.Error("pipeline error", "error", err)
			}
		}()
		logger.Info("kafka lookup pipeline enabled",
			"brokers", cfg.KafkaBrokers,
			"source_topic", cfg.KafkaSourceTopic,
			"sink_topic", cfg.KafkaSinkTopic,
		)
	} else {
		logger.Info("kafka lookup pipeline disabled")
	}

	gin.SetMode(gin.ReleaseMode)
	srv := httpadapter.NewServer(cfg.HTTPAddr, client, ready, metrics, logger, cfg.GeocoderTimeout)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}
	if reader != nil {
		if err := reader.Close(); err != nil {
			logger.Error("kafka reader close error", "error", err)
		}
	}
	if writer != nil {
		if err := writer.Close(); err != nil {
			logger.Error("kafka writer close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
