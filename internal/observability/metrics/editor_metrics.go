package metrics

import (
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Config scopes metric const labels to a service instance.
type Config struct {
	ServiceName string
	Environment string
}

// EditorMetrics captures invoice editor activity: store mutations,
// template renders and export attempts.
type EditorMetrics struct {
	mutationsTotal *prometheus.CounterVec
	rendersTotal   *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	exportsTotal   *prometheus.CounterVec
	decodeFailures prometheus.Counter
}

var (
	editorMetricsOnce sync.Once
	editorMetrics     *EditorMetrics
)

func Editor() *EditorMetrics {
	return EditorWithConfig(Config{})
}

func EditorWithConfig(cfg Config) *EditorMetrics {
	editorMetricsOnce.Do(func() {
		editorMetrics = newEditorMetrics(prometheus.DefaultRegisterer, cfg)
	})
	return editorMetrics
}

func ResetEditorMetricsForTest() {
	editorMetricsOnce = sync.Once{}
	editorMetrics = nil
}

func newEditorMetrics(registerer prometheus.Registerer, cfg Config) *EditorMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	serviceName := strings.TrimSpace(cfg.ServiceName)
	if serviceName == "" {
		serviceName = "facture"
	}
	environment := strings.TrimSpace(cfg.Environment)
	if environment == "" {
		environment = "unknown"
	}

	constLabels := prometheus.Labels{
		"service": serviceName,
		"env":     environment,
	}

	mutationsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "facture_store_mutations_total",
			Help:        "Total invoice store mutations by operation.",
			ConstLabels: constLabels,
		},
		[]string{"op"},
	)

	rendersTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "facture_template_renders_total",
			Help:        "Total template renders by variant and result.",
			ConstLabels: constLabels,
		},
		[]string{"template", "result"}, // result: ok | cached | error
	)

	renderDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:        "facture_template_render_duration_seconds",
			Help:        "Template render latency by variant.",
			Buckets:     []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			ConstLabels: constLabels,
		},
		[]string{"template"},
	)

	exportsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        "facture_exports_total",
			Help:        "Total export attempts by kind and result.",
			ConstLabels: constLabels,
		},
		[]string{"kind", "result"}, // kind: pdf | image | print
	)

	decodeFailures := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name:        "facture_share_decode_failures_total",
			Help:        "Total malformed share tokens rejected on import.",
			ConstLabels: constLabels,
		},
	)

	registerer.MustRegister(
		mutationsTotal,
		rendersTotal,
		renderDuration,
		exportsTotal,
		decodeFailures,
	)

	return &EditorMetrics{
		mutationsTotal: mutationsTotal,
		rendersTotal:   rendersTotal,
		renderDuration: renderDuration,
		exportsTotal:   exportsTotal,
		decodeFailures: decodeFailures,
	}
}

func (m *EditorMetrics) IncMutation(op string) {
	if m == nil {
		return
	}
	m.mutationsTotal.WithLabelValues(op).Inc()
}

func (m *EditorMetrics) IncRender(template, result string) {
	if m == nil {
		return
	}
	m.rendersTotal.WithLabelValues(template, result).Inc()
}

func (m *EditorMetrics) ObserveRenderDuration(template string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.renderDuration.WithLabelValues(template).Observe(elapsed.Seconds())
}

func (m *EditorMetrics) IncExport(kind, result string) {
	if m == nil {
		return
	}
	m.exportsTotal.WithLabelValues(kind, result).Inc()
}

func (m *EditorMetrics) IncDecodeFailure() {
	if m == nil {
		return
	}
	m.decodeFailures.Inc()
}
