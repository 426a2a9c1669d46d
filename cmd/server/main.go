package main

import (
	"context"
	"errors"
	"fleet-cargo-service/internal/adapters/events"
	"fleet-cargo-service/internal/adapters/manifest"
	"fleet-cargo-service/internal/adapters/repositories"
	"fleet-cargo-service/internal/api"
	"fleet-cargo-service/internal/config"
	"fleet-cargo-service/internal/domain"
	"fleet-cargo-service/internal/metrics"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// main is the application composition root.
// It wires the vehicle store and event sinks behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found (using environment variables)")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatalf("invalid FLEET_LOG_LEVEL %q: %v", cfg.LogLevel, err)
	}
	log.SetLevel(level)
	log.SetFormatter(&log.JSONFormatter{})

	conn, store, err := repositories.OpenStore(cfg.DBDriver, cfg.DBPath, cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	// Seed the store from the manifest on startup for local runs.
	if err := seedFromManifest(context.Background(), store, cfg.ManifestPath); err != nil {
		log.Fatal(err)
	}

	sink, closer, err := newEventSink(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer closer.Close()

	metrics.RegisterDefault()
	router := api.NewRouter(store, sink)

	log.WithFields(log.Fields{"addr": ":" + cfg.Port, "driver": cfg.DBDriver, "sink": cfg.EventSink}).Info("Server listening")
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func seedFromManifest(ctx context.Context, store repositories.Store, path string) error {
	f, err := manifest.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		log.WithField("manifest", path).Info("No manifest found, skipping seed")
		return nil
	}
	if err != nil {
		return fmt.Errorf("seed from manifest: %w", err)
	}

	records, err := f.Records()
	if err != nil {
		return fmt.Errorf("seed from manifest: %w", err)
	}
	if err := store.SaveVehicles(ctx, records); err != nil {
		return fmt.Errorf("seed from manifest: %w", err)
	}

	log.WithFields(log.Fields{"manifest": path, "vehicles": len(records)}).Info("Fleet seeded")
	return nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// newEventSink always logs and counts events; FLEET_EVENT_SINK adds a broker.
func newEventSink(cfg *config.Config) (domain.EventSink, io.Closer, error) {
	base := []domain.EventSink{events.NewLogSink(log.StandardLogger()), metrics.Sink{}}

	var pub events.Publisher
	switch cfg.EventSink {
	case config.SinkAMQP:
		p, err := events.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPQueue)
		if err != nil {
			return nil, nil, err
		}
		pub = p
	case config.SinkKafka:
		pub = events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
	default:
		return events.Multi(base...), nopCloser{}, nil
	}

	ps := events.NewPublishingSink(pub, 2*time.Second, log.StandardLogger())
	return events.Multi(append(base, ps)...), ps, nil
}
