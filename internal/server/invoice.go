package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	invdomain "github.com/smallbiznis/facture/internal/invoice/domain"
	"github.com/smallbiznis/facture/internal/observability/logger"
	"go.uber.org/zap"
)

// snapshotResponse is what every mutation returns: the full document
// plus the revision it produced, so clients can reconcile ordering.
func (s *Server) snapshotResponse(c *gin.Context) {
	invoice, _, revision := s.store.SnapshotWithRevision()
	c.JSON(http.StatusOK, gin.H{
		"data":     invoice,
		"revision": revision,
	})
}

func (s *Server) GetInvoice(c *gin.Context) {
	s.snapshotResponse(c)
}

func (s *Server) SetCompany(c *gin.Context) {
	var req invdomain.CompanyDetails
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	s.store.SetCompany(req)
	if req.LogoURL != "" {
		s.log.Debug("company logo updated",
			zap.String("logo", logger.TruncateDataURI(req.LogoURL)),
		)
	}
	s.snapshotResponse(c)
}

func (s *Server) SetClient(c *gin.Context) {
	var req invdomain.ClientDetails
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	s.store.SetClient(req)
	s.snapshotResponse(c)
}

func (s *Server) AddItem(c *gin.Context) {
	item := s.store.AddItem()
	c.JSON(http.StatusOK, gin.H{
		"data":     item,
		"revision": s.store.Revision(),
	})
}

func (s *Server) UpdateItem(c *gin.Context) {
	index, ok := itemIndex(c)
	if !ok {
		return
	}
	var patch invdomain.ItemPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if err := s.store.UpdateItem(index, patch); err != nil {
		AbortWithError(c, err)
		return
	}
	s.snapshotResponse(c)
}

func (s *Server) RemoveItem(c *gin.Context) {
	index, ok := itemIndex(c)
	if !ok {
		return
	}
	if err := s.store.RemoveItem(index); err != nil {
		AbortWithError(c, err)
		return
	}
	s.snapshotResponse(c)
}

func (s *Server) SetDiscount(c *gin.Context) {
	var req struct {
		Amount float64 `json:"amount"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	s.store.SetDiscount(req.Amount)
	s.snapshotResponse(c)
}

func (s *Server) SetDates(c *gin.Context) {
	var req struct {
		InvoiceDate *string `json:"invoiceDate"`
		DueDate     *string `json:"dueDate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if req.InvoiceDate != nil {
		s.store.SetInvoiceDate(*req.InvoiceDate)
	}
	if req.DueDate != nil {
		s.store.SetDueDate(*req.DueDate)
	}
	s.snapshotResponse(c)
}

func (s *Server) SetNotes(c *gin.Context) {
	var req struct {
		Notes string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	s.store.SetNotes(req.Notes)
	s.snapshotResponse(c)
}

func (s *Server) SetTerms(c *gin.Context) {
	var req struct {
		Terms string `json:"terms"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	s.store.SetTerms(req.Terms)
	s.snapshotResponse(c)
}

func (s *Server) SetCurrency(c *gin.Context) {
	var req struct {
		Currency string `json:"currency"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	s.store.SetCurrency(strings.TrimSpace(req.Currency))
	s.snapshotResponse(c)
}

func (s *Server) SetStatus(c *gin.Context) {
	var req struct {
		Status invdomain.Status `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	s.store.SetStatus(req.Status)
	s.snapshotResponse(c)
}

func (s *Server) SetTemplate(c *gin.Context) {
	var req struct {
		Template invdomain.Template `json:"template"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if err := s.store.SetTemplate(req.Template); err != nil {
		AbortWithError(c, err)
		return
	}
	s.snapshotResponse(c)
}

func (s *Server) Reset(c *gin.Context) {
	s.store.Reset()
	s.snapshotResponse(c)
}

func (s *Server) Validate(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": s.store.Validate()})
}

func itemIndex(c *gin.Context) (int, bool) {
	raw := strings.TrimSpace(c.Param("index"))
	index, err := strconv.Atoi(raw)
	if err != nil {
		AbortWithError(c, newValidationError("index", "invalid_index", "item index must be an integer"))
		return 0, false
	}
	return index, true
}
