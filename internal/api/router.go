package api

import (
	"fleet-cargo-service/internal/api/handlers"
	"fleet-cargo-service/internal/domain"
	"fleet-cargo-service/internal/metrics"
	"fleet-cargo-service/internal/ports"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(repo ports.VehicleRepository, sink domain.EventSink) http.Handler {
	mux := http.NewServeMux()

	fleetHandler := &handlers.FleetHandler{Repo: repo}
	checkHandler := &handlers.CheckHandler{Repo: repo, Sink: sink}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/fleet", fleetHandler.Get)
	mux.HandleFunc("/checks", checkHandler.Create)
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	return requestIDMiddleware(loggingMiddleware(mux))
}
