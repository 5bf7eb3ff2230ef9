package export

import (
	"context"
	"fmt"
	"time"

	"github.com/smallbiznis/facture/internal/invoice/render"
	"github.com/smallbiznis/facture/internal/observability/logger"
	"github.com/smallbiznis/facture/internal/observability/metrics"
	"github.com/smallbiznis/facture/internal/observability/tracing"
	"github.com/smallbiznis/facture/internal/store"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// Service orchestrates exports: snapshot the editor state, render the
// active template, hand the document to the rasterizer, wrap the
// result. It reads the store and never writes it.
type Service struct {
	store  *store.Store
	engine *render.Engine
	raster Rasterizer
	log    *zap.Logger
}

// NewService wires the export pipeline. raster may be nil; PDF and PNG
// exports then fail with ErrNoRasterizer while print exports still work.
func NewService(st *store.Store, engine *render.Engine, raster Rasterizer, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{store: st, engine: engine, raster: raster, log: log.Named("export")}
}

// PDF renders the current invoice and returns it as a single-page A4 PDF.
func (s *Service) PDF(ctx context.Context) (*File, error) {
	ctx, span := tracing.Start(ctx, "export.pdf")
	defer span.End()

	doc, number, err := s.renderCurrent(ctx)
	if err != nil {
		return nil, s.fail(ctx, KindPDF, err)
	}
	png, err := s.rasterize(ctx, doc)
	if err != nil {
		return nil, s.fail(ctx, KindPDF, err)
	}
	data, err := wrapPDF(png)
	if err != nil {
		return nil, s.fail(ctx, KindPDF, err)
	}
	return s.done(ctx, KindPDF, &File{
		Name: exportFilename(number, "pdf"),
		MIME: "application/pdf",
		Data: data,
	})
}

// PNG renders the current invoice and returns the page raster.
func (s *Service) PNG(ctx context.Context) (*File, error) {
	ctx, span := tracing.Start(ctx, "export.png")
	defer span.End()

	doc, number, err := s.renderCurrent(ctx)
	if err != nil {
		return nil, s.fail(ctx, KindPNG, err)
	}
	png, err := s.rasterize(ctx, doc)
	if err != nil {
		return nil, s.fail(ctx, KindPNG, err)
	}
	return s.done(ctx, KindPNG, &File{
		Name: exportFilename(number, "png"),
		MIME: "image/png",
		Data: png,
	})
}

// Print returns a self-printing HTML document for the current invoice.
// No rasterizer is involved; the browser does the page composition.
func (s *Service) Print(ctx context.Context) (*File, error) {
	ctx, span := tracing.Start(ctx, "export.print")
	defer span.End()

	doc, number, err := s.renderCurrent(ctx)
	if err != nil {
		return nil, s.fail(ctx, KindPrint, err)
	}
	return s.done(ctx, KindPrint, &File{
		Name: exportFilename(number, "html"),
		MIME: "text/html; charset=utf-8",
		Data: []byte(printShell(doc)),
	})
}

func (s *Service) renderCurrent(ctx context.Context) (*render.Document, string, error) {
	invoice, customization, revision := s.store.SnapshotWithRevision()

	_, span := tracing.Start(ctx, "export.render",
		attribute.Int64("revision", int64(revision)),
	)
	defer span.End()

	doc, err := s.engine.Render(revision, invoice.Template, render.Input{
		Invoice:       invoice,
		Customization: customization,
	})
	if err != nil {
		return nil, "", fmt.Errorf("export: render %s: %w", invoice.Template, err)
	}
	return doc, invoice.InvoiceNumber, nil
}

func (s *Service) rasterize(ctx context.Context, doc *render.Document) ([]byte, error) {
	if s.raster == nil {
		return nil, ErrNoRasterizer
	}
	start := time.Now()
	png, err := s.raster.Rasterize(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("export: rasterize: %w", err)
	}
	s.log.Debug("rasterized document",
		zap.String("template", string(doc.Template)),
		zap.Int("bytes", len(png)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return png, nil
}

func (s *Service) done(ctx context.Context, kind string, f *File) (*File, error) {
	metrics.Editor().IncExport(kind, "ok")
	logger.FromContext(ctx).Named("export").Info("export complete",
		zap.String("kind", kind),
		zap.String("file", f.Name),
		zap.Int("bytes", len(f.Data)),
	)
	return f, nil
}

func (s *Service) fail(ctx context.Context, kind string, err error) error {
	metrics.Editor().IncExport(kind, "error")
	logger.FromContext(ctx).Named("export").Warn("export failed",
		zap.String("kind", kind),
		zap.Error(tracing.SafeError(err)),
	)
	return err
}
