// Package telemetry exports search statistics as OpenTelemetry metrics through
// a Prometheus registry.
package telemetry

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/attribute"
	prometheusotel "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"phrasesearch/internal/index"
)

// Telemetry records search statistics. A disabled Telemetry ignores every call.
type Telemetry struct {
	enabled bool
	logger  *slog.Logger

	registry       *prometheus.Registry
	metricsHandler http.Handler
	provider       *sdkmetric.MeterProvider

	searches       metric.Int64Counter
	matches        metric.Int64Counter
	candidates     metric.Int64Counter
	searchLatency  metric.Float64Histogram
	indexedPhrases prometheus.Gauge
}

// New builds telemetry backed by a private Prometheus registry.
func New(logger *slog.Logger, enabled bool) *Telemetry {
	t := &Telemetry{enabled: enabled, logger: logger}
	if !enabled {
		return t
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	exporter, err := prometheusotel.New(prometheusotel.WithRegisterer(registry))
	if err != nil {
		if logger != nil {
			logger.Error("failed to initialize prometheus exporter", "error", err)
		}
		t.enabled = false
		return t
	}

	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exporter))
	meter := provider.Meter("phrasesearch")

	searches, _ := meter.Int64Counter("phrase_searches", metric.WithDescription("Search calls executed"))
	matches, _ := meter.Int64Counter("phrase_matches", metric.WithDescription("Phrase matches reported to handlers"))
	candidates, _ := meter.Int64Counter("phrase_candidates", metric.WithDescription("Candidate phrases tested against words"))
	searchLatency, _ := meter.Float64Histogram("phrase_search_duration_ms", metric.WithDescription("Latency of search calls in milliseconds"), metric.WithUnit("ms"))

	indexedPhrases := prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "phrasesearch", Name: "index_phrases", Help: "Phrases indexed by the last search"})
	registry.MustRegister(indexedPhrases)

	t.registry = registry
	t.metricsHandler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	t.provider = provider
	t.searches = searches
	t.matches = matches
	t.candidates = candidates
	t.searchLatency = searchLatency
	t.indexedPhrases = indexedPhrases

	if logger != nil {
		logger.Info("telemetry initialized", "prometheus", true)
	}
	return t
}

// Enabled reports whether metrics are being recorded.
func (t *Telemetry) Enabled() bool {
	return t.enabled
}

// RecordSearch records the statistics of one search call.
func (t *Telemetry) RecordSearch(stats index.Stats) {
	if !t.enabled {
		return
	}

	ctx := context.Background()
	outcome := "matched"
	if stats.Matches == 0 {
		outcome = "none"
	}
	attrs := metric.WithAttributes(attribute.String("outcome", outcome))

	t.searches.Add(ctx, 1, attrs)
	t.matches.Add(ctx, int64(stats.Matches), attrs)
	t.candidates.Add(ctx, int64(stats.Candidates), attrs)
	t.searchLatency.Record(ctx, float64(stats.Duration.Microseconds())/1000, attrs)
	t.indexedPhrases.Set(float64(stats.Phrases))
}

// Registry returns the Prometheus registry, or nil when disabled.
func (t *Telemetry) Registry() *prometheus.Registry {
	return t.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (t *Telemetry) Handler() http.Handler {
	if !t.enabled || t.metricsHandler == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
	}
	return t.metricsHandler
}

// Shutdown flushes and stops the meter provider.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	if t.provider == nil {
		return nil
	}
	return t.provider.Shutdown(ctx)
}
