package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "furnidata"

// Recorder collects decode telemetry. A nil *Recorder discards everything.
type Recorder struct {
	registry     *prometheus.Registry
	decodes      *prometheus.CounterVec
	items        prometheus.Counter
	aliases      prometheus.Counter
	sourceErrors *prometheus.CounterVec
	duration     prometheus.Histogram
}

// New creates a recorder with its own registry, including Go runtime and
// process collectors.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		decodes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "decodes_total",
			Help:      "Payloads decoded, by detected format.",
		}, []string{"format"}),
		items: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "items_decoded_total",
			Help:      "Items produced by the decoders, before alias synthesis.",
		}),
		aliases: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "aliases_synthesized_total",
			Help:      "Items appended by alias synthesis.",
		}),
		sourceErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "source_errors_total",
			Help:      "Failures retrieving a payload, by source kind.",
		}, []string{"kind"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "decode_duration_seconds",
			Help:      "Time spent decoding one payload.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}),
	}

	r.registry.MustRegister(
		r.decodes,
		r.items,
		r.aliases,
		r.sourceErrors,
		r.duration,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return r
}

// ObserveDecode records one completed decode.
func (r *Recorder) ObserveDecode(format string, decoded, aliased int, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.decodes.WithLabelValues(format).Inc()
	r.items.Add(float64(decoded))
	r.aliases.Add(float64(aliased))
	r.duration.Observe(elapsed.Seconds())
}

// SourceError records a failed payload retrieval. kind is "http" or "storage".
func (r *Recorder) SourceError(kind string) {
	if r == nil {
		return
	}
	r.sourceErrors.WithLabelValues(kind).Inc()
}

// Registry exposes the underlying registry for gathering in tests and CLI output.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
