package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/facture/internal/clock"
	"github.com/smallbiznis/facture/internal/config"
	"github.com/smallbiznis/facture/internal/events"
	"github.com/smallbiznis/facture/internal/export"
	"github.com/smallbiznis/facture/internal/invoice/render"
	"github.com/smallbiznis/facture/internal/observability/tracing"
	"github.com/smallbiznis/facture/internal/store"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestServer(t *testing.T, mutate func(*config.Config)) (*Server, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake node: %v", err)
	}
	st := store.New(store.Params{
		GenID: node,
		Clock: clock.Fixed{At: time.Date(2026, time.March, 14, 12, 0, 0, 0, time.UTC)},
		Bus:   events.NewBus(zap.NewNop()),
		Log:   zap.NewNop(),
	})
	engine := render.NewEngine(zap.NewNop())
	exportSvc := export.NewService(st, engine, nil, zap.NewNop())

	cfg := config.DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	srv := NewServer(cfg, st, engine, exportSvc, zap.NewNop())
	return srv, srv.Router()
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.RemoteAddr = "192.0.2.10:52000"
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp struct {
		Data map[string]any `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return resp.Data
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	return resp.Error.Code
}

func TestGetInvoice(t *testing.T) {
	_, r := newTestServer(t, nil)

	w := doJSON(t, r, http.MethodGet, "/api/v1/invoice", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	data := decodeData(t, w)
	number, _ := data["invoiceNumber"].(string)
	if !regexp.MustCompile(`^INV-2026-\d{4}$`).MatchString(number) {
		t.Fatalf("invoiceNumber = %q", number)
	}
	items, _ := data["items"].([]any)
	if len(items) != 1 {
		t.Fatalf("fresh document has %d items, want 1", len(items))
	}
}

func TestCompanyAndItemFlow(t *testing.T) {
	_, r := newTestServer(t, nil)

	w := doJSON(t, r, http.MethodPut, "/api/v1/invoice/company", map[string]any{
		"name": "Northwind Studio", "email": "billing@northwind.test",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("set company: %d %s", w.Code, w.Body.String())
	}

	w = doJSON(t, r, http.MethodPost, "/api/v1/invoice/items", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("add item: %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPatch, "/api/v1/invoice/items/1", map[string]any{
		"name": "Design sprint", "quantity": 2.0, "price": 500.0, "taxRate": 10.0,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update item: %d %s", w.Code, w.Body.String())
	}
	data := decodeData(t, w)
	if got := data["totalAmount"].(float64); got != 1100 {
		t.Fatalf("totalAmount = %v, want 1100", got)
	}
	company := data["company"].(map[string]any)
	if company["name"] != "Northwind Studio" {
		t.Fatalf("company name lost: %v", company["name"])
	}
}

func TestUpdateItemOutOfRange(t *testing.T) {
	_, r := newTestServer(t, nil)

	w := doJSON(t, r, http.MethodPatch, "/api/v1/invoice/items/99", map[string]any{"name": "x"})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}
	if code := errorCode(t, w); code != "item_index_out_of_range" {
		t.Fatalf("code = %q", code)
	}
}

func TestSetTemplateRejectsUnknown(t *testing.T) {
	_, r := newTestServer(t, nil)

	w := doJSON(t, r, http.MethodPut, "/api/v1/invoice/template", map[string]any{"template": "neon"})
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}
	if code := errorCode(t, w); code != "unknown_template" {
		t.Fatalf("code = %q", code)
	}

	w = doJSON(t, r, http.MethodPut, "/api/v1/invoice/template", map[string]any{"template": "modern"})
	if w.Code != http.StatusOK {
		t.Fatalf("known template rejected: %d", w.Code)
	}
}

func TestShareRoundTrip(t *testing.T) {
	_, r := newTestServer(t, nil)

	doJSON(t, r, http.MethodPut, "/api/v1/invoice/notes", map[string]any{"notes": "carried through"})

	w := doJSON(t, r, http.MethodGet, "/api/v1/share", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("share: %d", w.Code)
	}
	token := decodeData(t, w)["token"].(string)

	// Import into a fresh server.
	_, other := newTestServer(t, nil)
	w = doJSON(t, other, http.MethodPost, "/api/v1/load", map[string]any{"token": token})
	if w.Code != http.StatusOK {
		t.Fatalf("load: %d %s", w.Code, w.Body.String())
	}
	if got := decodeData(t, w)["notes"]; got != "carried through" {
		t.Fatalf("notes = %v", got)
	}
}

func TestLoadMalformedTokenLeavesStateUntouched(t *testing.T) {
	srv, r := newTestServer(t, nil)

	before, _ := srv.store.Snapshot()
	w := doJSON(t, r, http.MethodPost, "/api/v1/load", map[string]any{"token": "%%%not-base64%%%"})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if code := errorCode(t, w); code != "invalid_share_token" {
		t.Fatalf("code = %q", code)
	}
	after, _ := srv.store.Snapshot()
	if before.InvoiceNumber != after.InvoiceNumber {
		t.Fatalf("state changed on failed import")
	}
}

func TestApplyPreset(t *testing.T) {
	_, r := newTestServer(t, nil)

	w := doJSON(t, r, http.MethodPost, "/api/v1/customization/preset/emerald", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("preset: %d %s", w.Code, w.Body.String())
	}
	colors := decodeData(t, w)["colors"].(map[string]any)
	if colors["primary"] != "#10b981" {
		t.Fatalf("primary = %v, want emerald", colors["primary"])
	}

	w = doJSON(t, r, http.MethodPost, "/api/v1/customization/preset/ultraviolet", nil)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("unknown preset: %d, want 422", w.Code)
	}
}

func TestPreview(t *testing.T) {
	srv, r := newTestServer(t, nil)

	w := doJSON(t, r, http.MethodGet, "/api/v1/preview?template=minimal", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("preview: %d", w.Code)
	}
	if w.Header().Get("X-Document-Template") != "minimal" {
		t.Fatalf("template header = %q", w.Header().Get("X-Document-Template"))
	}
	inv, _ := srv.store.Snapshot()
	if !bytes.Contains(w.Body.Bytes(), []byte(inv.InvoiceNumber)) {
		t.Fatalf("preview missing invoice number")
	}

	// Legacy tags render through the customizable variant.
	w = doJSON(t, r, http.MethodGet, "/api/v1/preview?template=letterhead", nil)
	if w.Header().Get("X-Document-Template") != "custom" {
		t.Fatalf("legacy preview template = %q", w.Header().Get("X-Document-Template"))
	}
}

func TestExportPrint(t *testing.T) {
	_, r := newTestServer(t, nil)

	w := doJSON(t, r, http.MethodPost, "/api/v1/export/print", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("print export: %d %s", w.Code, w.Body.String())
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("window.print()")) {
		t.Fatalf("print shell missing auto-print script")
	}
}

func TestExportWithoutRasterizer(t *testing.T) {
	_, r := newTestServer(t, nil)

	w := doJSON(t, r, http.MethodPost, "/api/v1/export/pdf", nil)
	if w.Code != http.StatusNotImplemented {
		t.Fatalf("pdf without rasterizer: %d, want 501", w.Code)
	}
	if code := errorCode(t, w); code != "no_rasterizer" {
		t.Fatalf("code = %q", code)
	}
}

func TestExportRateLimit(t *testing.T) {
	_, r := newTestServer(t, func(cfg *config.Config) {
		cfg.ExportRateLimit = 2
		cfg.ExportRateWindow = time.Minute
	})

	for i := 0; i < 2; i++ {
		if w := doJSON(t, r, http.MethodPost, "/api/v1/export/print", nil); w.Code != http.StatusOK {
			t.Fatalf("request %d: %d", i+1, w.Code)
		}
	}
	w := doJSON(t, r, http.MethodPost, "/api/v1/export/print", nil)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("status = %d, want 429", w.Code)
	}
	if code := errorCode(t, w); code != "rate_limited" {
		t.Fatalf("code = %q", code)
	}
}

func TestValidateEndpoint(t *testing.T) {
	_, r := newTestServer(t, nil)

	w := doJSON(t, r, http.MethodPost, "/api/v1/invoice/validate", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("validate: %d", w.Code)
	}
	data := decodeData(t, w)
	if valid := data["isValid"].(bool); valid {
		t.Fatalf("fresh document should fail validation")
	}
}

func TestMetricsRecordCachedRenders(t *testing.T) {
	_, r := newTestServer(t, nil)

	// Same revision, same template: the second preview is a cache hit.
	for i := 0; i < 2; i++ {
		if w := doJSON(t, r, http.MethodGet, "/api/v1/preview", nil); w.Code != http.StatusOK {
			t.Fatalf("preview %d: %d", i, w.Code)
		}
	}

	w := doJSON(t, r, http.MethodGet, "/metrics", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("metrics: %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "facture_template_renders_total") {
		t.Fatalf("render counter missing from /metrics")
	}
	if !strings.Contains(body, `result="cached"`) {
		t.Fatalf("expected a cached render sample in /metrics")
	}
}

func TestRequestLogsCarryTraceContext(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	orig := zap.L()
	zap.ReplaceGlobals(zap.New(core))
	defer zap.ReplaceGlobals(orig)
	tracing.SetPropagator()

	_, r := newTestServer(t, nil)

	const traceID = "0123456789abcdef0123456789abcdef"
	req := httptest.NewRequest(http.MethodGet, "/api/v1/invoice", nil)
	req.RemoteAddr = "192.0.2.10:52000"
	req.Header.Set("traceparent", "00-"+traceID+"-0123456789abcdef-01")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("get invoice: %d", w.Code)
	}

	entries := logs.FilterMessage("http request").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 request log entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["trace_id"] != traceID {
		t.Fatalf("expected trace_id %q, got %v", traceID, fields["trace_id"])
	}
	if fields["path"] != "/api/v1/invoice" {
		t.Fatalf("expected request path in log, got %v", fields["path"])
	}
}
