// Package metrics provides Prometheus metrics for HTTP requests and database commands.
package metrics

import (
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/rs/zerolog"
)

const namespace = "collection_service"

// Metrics represents the service metrics.
type Metrics struct {
	Requests        *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	Commands        *prometheus.CounterVec
	CommandDuration *prometheus.HistogramVec
}

// New creates service metrics. They must be registered before they are exported.
func New() *Metrics {
	return &Metrics{
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests.",
			},
			[]string{"method", "route", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request latency.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		Commands: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "docdb",
				Name:      "commands_total",
				Help:      "Total number of database commands.",
			},
			[]string{"command", "result"},
		),
		CommandDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "docdb",
				Name:      "command_duration_seconds",
				Help:      "Database command latency.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"command"},
		),
	}
}

// ObserveRequest records a finished HTTP request. It is a no-op on nil Metrics.
func (m *Metrics) ObserveRequest(method, route string, status int, d time.Duration) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

// ObserveCommand records a finished database command. It is a no-op on nil Metrics.
// result is "ok" or "failed".
func (m *Metrics) ObserveCommand(command, result string, d time.Duration) {
	if m == nil {
		return
	}
	m.Commands.WithLabelValues(command, result).Inc()
	m.CommandDuration.WithLabelValues(command).Observe(d.Seconds())
}

// Describe implements prometheus.Collector.
func (m *Metrics) Describe(ch chan<- *prometheus.Desc) {
	m.Requests.Describe(ch)
	m.RequestDuration.Describe(ch)
	m.Commands.Describe(ch)
	m.CommandDuration.Describe(ch)
}

// Collect implements prometheus.Collector.
func (m *Metrics) Collect(ch chan<- prometheus.Metric) {
	m.Requests.Collect(ch)
	m.RequestDuration.Collect(ch)
	m.Commands.Collect(ch)
	m.CommandDuration.Collect(ch)
}

// CommandCounts returns the number of observed commands as a map:
// command name (e.g. "find", "insert") -> result ("ok" or "failed") -> count.
func (m *Metrics) CommandCounts() (map[string]map[string]int, error) {
	metrics := make(chan prometheus.Metric)
	go func() {
		m.Commands.Collect(metrics)
		close(metrics)
	}()

	res := map[string]map[string]int{}

	var err error
	for metric := range metrics {
		var content dto.Metric
		if writeErr := metric.Write(&content); writeErr != nil {
			err = writeErr
			continue
		}

		var command, result string
		for _, label := range content.GetLabel() {
			switch label.GetName() {
			case "command":
				command = label.GetValue()
			case "result":
				result = label.GetValue()
			default:
				err = fmt.Errorf("%s is not a valid label. Allowed: [command, result]", label.GetName())
			}
		}

		if _, ok := res[command]; !ok {
			res[command] = map[string]int{}
		}
		res[command][result] = int(content.GetCounter().GetValue())
	}

	if err != nil {
		return nil, err
	}
	return res, nil
}

// LogCommandTotals logs the observed command counts, one event per command.
// It is a no-op on nil Metrics.
func (m *Metrics) LogCommandTotals(logger zerolog.Logger) {
	if m == nil {
		return
	}
	counts, err := m.CommandCounts()
	if err != nil {
		logger.Warn().Err(err).Msg("failed to collect command totals")
		return
	}
	for command, results := range counts {
		logger.Info().
			Str("command", command).
			Int("ok", results["ok"]).
			Int("failed", results["failed"]).
			Msg("docdb command totals")
	}
}

// check interfaces
var (
	_ prometheus.Collector = (*Metrics)(nil)
)
