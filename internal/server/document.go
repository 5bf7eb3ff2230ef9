package server

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/facture/internal/export"
	invdomain "github.com/smallbiznis/facture/internal/invoice/domain"
	"github.com/smallbiznis/facture/internal/invoice/render"
)

func (s *Server) ListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": render.Variants()})
}

// Preview streams the rendered HTML document. An explicit ?template=
// overrides the invoice's active template for this render only.
func (s *Server) Preview(c *gin.Context) {
	invoice, customization, revision := s.store.SnapshotWithRevision()
	name := invoice.Template
	if q := strings.TrimSpace(c.Query("template")); q != "" {
		name = invdomain.Template(q)
	}

	doc, err := s.engine.Render(revision, name, render.Input{
		Invoice:       invoice,
		Customization: customization,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.Header("X-Document-Template", string(doc.Template))
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(doc.HTML))
}

func (s *Server) ExportPDF(c *gin.Context) {
	s.streamExport(c, s.exportSvc.PDF)
}

func (s *Server) ExportImage(c *gin.Context) {
	s.streamExport(c, s.exportSvc.PNG)
}

func (s *Server) ExportPrint(c *gin.Context) {
	s.streamExport(c, s.exportSvc.Print)
}

func (s *Server) streamExport(c *gin.Context, run func(ctx context.Context) (*export.File, error)) {
	file, err := run(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+file.Name+`"`)
	c.Data(http.StatusOK, file.MIME, file.Data)
}
