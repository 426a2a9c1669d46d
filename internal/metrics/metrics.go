package metrics

import (
	"fleet-cargo-service/internal/domain"
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the service
	Registry = prometheus.NewRegistry()
	// HTTPRequests counts requests by method, path, and status
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)
	// HTTPDuration records request durations in seconds
	HTTPDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"method", "path", "status"},
	)

	// CargoLoads counts load attempts by outcome; detail is the compartment or the reject reason
	CargoLoads = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "fleet_cargo_loads_total", Help: "Cargo load attempts by outcome."},
		[]string{"outcome", "detail"},
	)
	// RouteChecks counts fleet feasibility verdicts
	RouteChecks = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "fleet_route_checks_total", Help: "Fleet route feasibility checks by verdict."},
		[]string{"feasible"},
	)
	// RouteCheckFailures counts why checks were infeasible
	RouteCheckFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "fleet_route_check_failures_total", Help: "Infeasible route checks by cause."},
		[]string{"cause"},
	)
)

// RegisterDefault registers collectors to Registry.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(HTTPDuration)
		Registry.MustRegister(CargoLoads)
		Registry.MustRegister(RouteChecks)
		Registry.MustRegister(RouteCheckFailures)
		// Go/process collectors on our registry
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

var regOnce sync.Once

// Sink counts domain events.
type Sink struct{}

func (Sink) Emit(e domain.Event) {
	switch ev := e.(type) {
	case domain.CargoLoaded:
		CargoLoads.WithLabelValues("loaded", string(ev.Compartment)).Inc()
	case domain.CargoRejected:
		CargoLoads.WithLabelValues("rejected", string(ev.Reason)).Inc()
	case domain.CargoUnplaced:
		RouteCheckFailures.WithLabelValues("unplaced").Inc()
	case domain.RangeExceeded:
		RouteCheckFailures.WithLabelValues("range").Inc()
	case domain.RouteChecked:
		RouteChecks.WithLabelValues(strconv.FormatBool(ev.Feasible)).Inc()
	}
}
