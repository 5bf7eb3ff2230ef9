package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/smallbiznis/facture/internal/config"
	"github.com/smallbiznis/facture/internal/export"
	"github.com/smallbiznis/facture/internal/invoice/render"
	obscontext "github.com/smallbiznis/facture/internal/observability/context"
	"github.com/smallbiznis/facture/internal/observability/logger"
	"github.com/smallbiznis/facture/internal/observability/tracing"
	"github.com/smallbiznis/facture/internal/store"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Server exposes the editor operations over HTTP. All invoice state
// lives in the store; handlers translate requests into store mutations
// and stream back snapshots or rendered documents.
type Server struct {
	cfg           config.Config
	store         *store.Store
	engine        *render.Engine
	exportSvc     *export.Service
	exportLimiter *rateLimiter
	log           *zap.Logger
}

func NewServer(cfg config.Config, st *store.Store, engine *render.Engine, exportSvc *export.Service, log *zap.Logger) *Server {
	return &Server{
		cfg:           cfg,
		store:         st,
		engine:        engine,
		exportSvc:     exportSvc,
		exportLimiter: newRateLimiter(cfg.ExportRateLimit, cfg.ExportRateWindow),
		log:           log.Named("server"),
	}
}

// Router builds the gin engine with the full route table.
func (s *Server) Router() *gin.Engine {
	if s.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), traceContext(), requestID(), requestLogger())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	v1 := r.Group("/api/v1")
	{
		v1.GET("/invoice", s.GetInvoice)
		v1.PUT("/invoice/company", s.SetCompany)
		v1.PUT("/invoice/client", s.SetClient)
		v1.POST("/invoice/items", s.AddItem)
		v1.PATCH("/invoice/items/:index", s.UpdateItem)
		v1.DELETE("/invoice/items/:index", s.RemoveItem)
		v1.PUT("/invoice/discount", s.SetDiscount)
		v1.PUT("/invoice/dates", s.SetDates)
		v1.PUT("/invoice/notes", s.SetNotes)
		v1.PUT("/invoice/terms", s.SetTerms)
		v1.PUT("/invoice/currency", s.SetCurrency)
		v1.PUT("/invoice/status", s.SetStatus)
		v1.PUT("/invoice/template", s.SetTemplate)
		v1.POST("/invoice/reset", s.Reset)
		v1.POST("/invoice/validate", s.Validate)

		v1.GET("/customization", s.GetCustomization)
		v1.PATCH("/customization", s.PatchCustomization)
		v1.POST("/customization/preset/:name", s.ApplyPreset)

		v1.GET("/share", s.Share)
		v1.POST("/load", s.LoadShared)

		v1.GET("/templates", s.ListTemplates)
		v1.GET("/preview", s.Preview)

		exports := v1.Group("/export", s.exportRateLimited())
		exports.POST("/pdf", s.ExportPDF)
		exports.POST("/image", s.ExportImage)
		exports.POST("/print", s.ExportPrint)
	}
	return r
}

func traceContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := tracing.ExtractContext(c.Request.Context(), propagation.HeaderCarrier(c.Request.Header))
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := c.GetHeader("X-Request-Id"); id != "" {
			c.Set("request_id", id)
			c.Request = c.Request.WithContext(obscontext.WithRequestID(c.Request.Context(), id))
		}
		c.Next()
	}
}

// requestLogger logs every request through the context-aware logger so
// entries carry the trace identifiers extracted by traceContext.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.FromContext(c.Request.Context()).Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)),
			zap.String("request_id", obscontext.RequestIDFromGin(c)),
		)
	}
}

func (s *Server) exportRateLimited() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !s.exportLimiter.Allow(c.ClientIP()) {
			AbortWithError(c, ErrTooManyRequests)
			return
		}
		c.Next()
	}
}

var Module = fx.Module("server",
	fx.Provide(NewServer),
	fx.Invoke(Run),
)

// Run binds the HTTP listener to the fx lifecycle.
func Run(lc fx.Lifecycle, s *Server, cfg config.Config, log *zap.Logger) {
	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("http server stopped", zap.Error(err))
				}
			}()
			log.Info("listening", zap.String("addr", cfg.ListenAddr))
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}
