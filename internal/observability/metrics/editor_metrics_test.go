package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRenderCounterTracksResultSeries(t *testing.T) {
	m := newEditorMetrics(prometheus.NewRegistry(), Config{
		ServiceName: "facture-test",
		Environment: "test",
	})

	m.IncRender("minimal", "ok")
	m.IncRender("minimal", "cached")
	m.IncRender("minimal", "cached")
	m.IncRender("minimal", "error")

	for result, want := range map[string]float64{"ok": 1, "cached": 2, "error": 1} {
		got := testutil.ToFloat64(m.rendersTotal.WithLabelValues("minimal", result))
		if got != want {
			t.Fatalf("renders{result=%q} = %v, want %v", result, got, want)
		}
	}
}

func TestEditorMetricsNilSafe(t *testing.T) {
	var m *EditorMetrics
	m.IncMutation("set_discount")
	m.IncRender("minimal", "ok")
	m.IncExport("pdf", "ok")
	m.IncDecodeFailure()
}
