package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/facture/internal/observability/logger"
	"go.uber.org/zap"
)

func (s *Server) Share(c *gin.Context) {
	token, err := s.store.Serialize()
	if err != nil {
		AbortWithError(c, err)
		return
	}
	s.log.Info("share token issued",
		zap.String("token", logger.MaskShareToken(token)),
		zap.Int("length", len(token)),
	)
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"token": token}})
}

// LoadShared imports a share token. A malformed token is recoverable:
// the current document is left untouched and the decode stage is
// reported back.
func (s *Server) LoadShared(c *gin.Context) {
	var req struct {
		Token string `json:"token"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	if strings.TrimSpace(req.Token) == "" {
		AbortWithError(c, newValidationError("token", "required", "share token is required"))
		return
	}
	if err := s.store.Deserialize(req.Token); err != nil {
		s.log.Warn("share token import failed",
			zap.String("token", logger.MaskShareToken(req.Token)),
			zap.Error(err),
		)
		AbortWithError(c, err)
		return
	}
	s.snapshotResponse(c)
}
