package render

import (
	"time"

	invdomain "github.com/smallbiznis/facture/internal/invoice/domain"
	"github.com/smallbiznis/facture/internal/observability/metrics"
	"go.uber.org/zap"
)

// Engine holds the compiled template variants and memoizes rendered
// documents per store revision.
type Engine struct {
	renderers map[invdomain.Template]Renderer
	fallback  Renderer
	cache     *Cache
	log       *zap.Logger
}

// NewEngine compiles every variant up front. Template parse failures
// are programmer errors and panic at construction, the same as a bad
// regexp literal would.
func NewEngine(log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	fallback := newCustomizable()
	e := &Engine{
		renderers: map[invdomain.Template]Renderer{
			invdomain.TemplateMinimal:      newMinimal(),
			invdomain.TemplateProfessional: newProfessional(),
			invdomain.TemplateModern:       newModern(),
			invdomain.TemplateCustom:       fallback,
		},
		fallback: fallback,
		cache:    NewCache(DefaultCacheTTL),
		log:      log.Named("render"),
	}
	return e
}

// Render produces the document for the given template tag at the given
// store revision, serving from cache when the pair was rendered before.
// Unknown and legacy template tags fall back to the customizable
// variant.
func (e *Engine) Render(revision uint64, name invdomain.Template, in Input) (*Document, error) {
	r, ok := e.renderers[name]
	if !ok {
		r = e.fallback
	}
	if doc, hit := e.cache.Get(revision, r.Name()); hit {
		metrics.Editor().IncRender(string(r.Name()), "cached")
		return doc, nil
	}
	start := time.Now()
	doc, err := r.Render(in)
	if err != nil {
		metrics.Editor().IncRender(string(r.Name()), "error")
		e.log.Error("render failed",
			zap.String("template", string(r.Name())),
			zap.Uint64("revision", revision),
			zap.Error(err),
		)
		return nil, err
	}
	metrics.Editor().IncRender(string(r.Name()), "ok")
	metrics.Editor().ObserveRenderDuration(string(r.Name()), time.Since(start))
	e.cache.Set(revision, r.Name(), doc)
	e.cache.Purge(revision)
	return doc, nil
}
