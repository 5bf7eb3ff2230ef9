package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	custdomain "github.com/smallbiznis/facture/internal/customization/domain"
)

func (s *Server) GetCustomization(c *gin.Context) {
	_, customization := s.store.Snapshot()
	c.JSON(http.StatusOK, gin.H{"data": customization})
}

func (s *Server) PatchCustomization(c *gin.Context) {
	var patch custdomain.Patch
	if err := c.ShouldBindJSON(&patch); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	s.store.SetCustomization(patch)
	_, customization := s.store.Snapshot()
	c.JSON(http.StatusOK, gin.H{"data": customization})
}

func (s *Server) ApplyPreset(c *gin.Context) {
	name := strings.TrimSpace(c.Param("name"))
	if name == "" {
		AbortWithError(c, newValidationError("name", "required", "preset name is required"))
		return
	}
	if err := s.store.ApplyPreset(name); err != nil {
		AbortWithError(c, err)
		return
	}
	_, customization := s.store.Snapshot()
	c.JSON(http.StatusOK, gin.H{"data": customization})
}
