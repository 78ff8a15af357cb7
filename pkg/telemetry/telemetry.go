// Copyright 2025 Irohad Authors
//
// Structured logging and Prometheus metrics shared across the node's
// components. The core never starts an HTTP server to expose them —
// wiring a scrape endpoint is the embedding process's job, the same way
// the Torii gateway lives outside this module.

package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

// Telemetry bundles a logger and a metrics registry passed down into
// every component that needs to report state.
type Telemetry struct {
	Log      *logrus.Logger
	Registry *prometheus.Registry

	BlocksCommitted      prometheus.Counter
	KuraTailLength       prometheus.Gauge
	InstructionsExecuted *prometheus.CounterVec
	SignaturesVerified   *prometheus.CounterVec
}

// Option configures a Telemetry at construction.
type Option func(*logrus.Logger)

// WithLevel sets the minimum logged level.
func WithLevel(level logrus.Level) Option {
	return func(l *logrus.Logger) { l.SetLevel(level) }
}

// WithJSONFormat switches the logger to JSON output, the default for
// this corpus's long-running services.
func WithJSONFormat() Option {
	return func(l *logrus.Logger) { l.SetFormatter(&logrus.JSONFormatter{}) }
}

// WithTextFormat switches the logger to human-readable text output.
func WithTextFormat() Option {
	return func(l *logrus.Logger) { l.SetFormatter(&logrus.TextFormatter{}) }
}

// New builds a Telemetry with its own logger and a fresh Prometheus
// registry, applying opts to the logger.
func New(opts ...Option) *Telemetry {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	for _, opt := range opts {
		opt(log)
	}

	reg := prometheus.NewRegistry()
	t := &Telemetry{
		Log:      log,
		Registry: reg,
		BlocksCommitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "irohad_blocks_committed_total",
			Help: "Total number of blocks committed by Kura.",
		}),
		KuraTailLength: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "irohad_kura_tail_length",
			Help: "Number of blocks currently held in Kura's in-memory tail.",
		}),
		InstructionsExecuted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "irohad_instructions_executed_total",
			Help: "Instructions executed, partitioned by verb.",
		}, []string{"verb"}),
		SignaturesVerified: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "irohad_signatures_verified_total",
			Help: "Signature verification outcomes, partitioned by result.",
		}, []string{"result"}),
	}

	reg.MustRegister(t.BlocksCommitted, t.KuraTailLength, t.InstructionsExecuted, t.SignaturesVerified)
	return t
}
