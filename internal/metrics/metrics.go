package metrics

/*
Similar-Domain-Bruteforcer — look-alike domain generation and resolution
Copyright (C) 2025  Pepijn van der Stap <rxtls@vanderstap.info>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU Affero General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU Affero General Public License for more details.

You should have received a copy of the GNU Affero General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

var (
	registry           = prometheus.NewRegistry()
	defaultRegisterer  = promauto.With(registry)
	metricsInitialized sync.Once
	metricsEnabled     atomic.Bool
	metricsServer      *http.Server
)

// Metrics contains all the Prometheus metrics for a run.
type Metrics struct {
	// Input metrics
	WordlistEntries *prometheus.GaugeVec
	WordlistMissing *prometheus.CounterVec

	// Generation metrics
	CandidatesGenerated prometheus.Gauge
	CandidatesBound     prometheus.Gauge
	IDNAFailures        prometheus.Counter

	// Resolver metrics
	ResolverDuration   *prometheus.HistogramVec
	ResolverExitErrors *prometheus.CounterVec
	ResultRecords      *prometheus.CounterVec
	DomainsResolved    prometheus.Gauge

	// Disk I/O metrics
	DiskWriteBytes *prometheus.CounterVec
	DiskErrors     *prometheus.CounterVec

	// Pipeline metrics
	StageDuration *prometheus.HistogramVec
}

// Global instance of metrics
var globalMetrics *Metrics
var metricsOnce sync.Once

// GetMetrics returns the global metrics instance
func GetMetrics() *Metrics {
	metricsOnce.Do(func() {
		globalMetrics = newMetrics()
	})
	return globalMetrics
}

// EnableMetrics enables metrics collection
func EnableMetrics() {
	metricsEnabled.Store(true)
}

// IsMetricsEnabled returns whether metrics collection is enabled
func IsMetricsEnabled() bool {
	return metricsEnabled.Load()
}

// Gatherer exposes the private registry, e.g. for tests.
func Gatherer() prometheus.Gatherer {
	return registry
}

// newMetrics creates and registers all metrics
func newMetrics() *Metrics {
	// massdns runs range from sub-second to hours for large permutation sets.
	buckets := []float64{.01, .05, .1, .5, 1, 5, 10, 30, 60, 300, 900, 3600}

	m := &Metrics{
		WordlistEntries: defaultRegisterer.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "sdb_wordlist_entries",
				Help: "Number of entries loaded from a word list",
			},
			[]string{"list"},
		),
		WordlistMissing: defaultRegisterer.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sdb_wordlist_missing_total",
				Help: "Number of word list files that did not exist",
			},
			[]string{"list"},
		),

		CandidatesGenerated: defaultRegisterer.NewGauge(
			prometheus.GaugeOpts{
				Name: "sdb_candidates_generated",
				Help: "Number of distinct candidate domains generated",
			},
		),
		CandidatesBound: defaultRegisterer.NewGauge(
			prometheus.GaugeOpts{
				Name: "sdb_candidates_bound",
				Help: "Upper bound on candidates before collisions collapse",
			},
		),
		IDNAFailures: defaultRegisterer.NewCounter(
			prometheus.CounterOpts{
				Name: "sdb_idna_failures_total",
				Help: "Candidates that could not be converted to punycode",
			},
		),

		ResolverDuration: defaultRegisterer.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sdb_resolver_duration_seconds",
				Help:    "Wall time spent waiting for the resolver subprocess",
				Buckets: buckets,
			},
			[]string{"resolver"},
		),
		ResolverExitErrors: defaultRegisterer.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sdb_resolver_exit_errors_total",
				Help: "Resolver subprocess runs that did not exit cleanly",
			},
			[]string{"resolver", "error_type"},
		),
		ResultRecords: defaultRegisterer.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sdb_result_records_total",
				Help: "Resolver answer lines by record type",
			},
			[]string{"type"},
		),
		DomainsResolved: defaultRegisterer.NewGauge(
			prometheus.GaugeOpts{
				Name: "sdb_domains_resolved",
				Help: "Number of distinct domains with a DNS answer",
			},
		),

		DiskWriteBytes: defaultRegisterer.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sdb_disk_write_bytes_total",
				Help: "Total number of bytes written to disk",
			},
			[]string{"file"},
		),
		DiskErrors: defaultRegisterer.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sdb_disk_errors_total",
				Help: "Total number of disk errors",
			},
			[]string{"file", "operation"},
		),

		StageDuration: defaultRegisterer.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sdb_stage_duration_seconds",
				Help:    "Time spent in each pipeline stage",
				Buckets: buckets,
			},
			[]string{"stage"},
		),
	}

	return m
}

// StartMetricsServer starts an HTTP server to expose Prometheus metrics
func StartMetricsServer(addr string) error {
	if !IsMetricsEnabled() || addr == "" {
		return nil
	}

	// Only start once
	metricsInitialized.Do(func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

		metricsServer = &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}

		go func() {
			logrus.Infof("Starting metrics server on %s", addr)
			if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logrus.WithError(err).Error("Metrics server error")
			}
		}()
	})

	return nil
}

// ShutdownMetricsServer gracefully shuts down the metrics server
func ShutdownMetricsServer(ctx context.Context) error {
	if metricsServer != nil {
		logrus.Debug("Shutting down metrics server")
		return metricsServer.Shutdown(ctx)
	}
	return nil
}

// WriteTextfile dumps the registry in the text exposition format, for
// node_exporter's textfile collector. A one-shot run is usually over before
// anything could scrape it.
func WriteTextfile(path string) error {
	if !IsMetricsEnabled() || path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, registry)
}

// MeasureDuration is a helper to measure the duration of a function
func MeasureDuration(histogram *prometheus.HistogramVec, labels prometheus.Labels) func() {
	if !IsMetricsEnabled() {
		return func() {}
	}

	start := time.Now()
	return func() {
		duration := time.Since(start)
		histogram.With(labels).Observe(duration.Seconds())
	}
}

// RecordWordlist records the size of a loaded list, or that it was missing.
func (m *Metrics) RecordWordlist(list string, entries int, missing bool) {
	if !IsMetricsEnabled() {
		return
	}
	m.WordlistEntries.WithLabelValues(list).Set(float64(entries))
	if missing {
		m.WordlistMissing.WithLabelValues(list).Inc()
	}
}

// RecordCandidates records the generated set size against its upper bound.
func (m *Metrics) RecordCandidates(generated, bound int) {
	if !IsMetricsEnabled() {
		return
	}
	m.CandidatesGenerated.Set(float64(generated))
	m.CandidatesBound.Set(float64(bound))
}

// RecordIDNAFailures adds n failed punycode conversions.
func (m *Metrics) RecordIDNAFailures(n int) {
	if !IsMetricsEnabled() || n == 0 {
		return
	}
	m.IDNAFailures.Add(float64(n))
}

// RecordResolverExit counts a subprocess run that exited with an error.
func (m *Metrics) RecordResolverExit(resolver, errorType string) {
	if !IsMetricsEnabled() {
		return
	}
	m.ResolverExitErrors.WithLabelValues(resolver, errorType).Inc()
}

// RecordResults records per-type answer counts and the resolved set size.
func (m *Metrics) RecordResults(byType map[string]int, resolved int) {
	if !IsMetricsEnabled() {
		return
	}
	for t, n := range byType {
		m.ResultRecords.WithLabelValues(t).Add(float64(n))
	}
	m.DomainsResolved.Set(float64(resolved))
}

// RecordDiskWrite records bytes written to one of the run's files.
func (m *Metrics) RecordDiskWrite(file string, n int64) {
	if !IsMetricsEnabled() {
		return
	}
	m.DiskWriteBytes.WithLabelValues(file).Add(float64(n))
}

// RecordDiskError counts a failed disk operation.
func (m *Metrics) RecordDiskError(file, operation string) {
	if !IsMetricsEnabled() {
		return
	}
	m.DiskErrors.WithLabelValues(file, operation).Inc()
}
