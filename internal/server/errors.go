package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	custdomain "github.com/smallbiznis/facture/internal/customization/domain"
	"github.com/smallbiznis/facture/internal/export"
	"github.com/smallbiznis/facture/internal/share"
	"github.com/smallbiznis/facture/internal/store"
)

var (
	ErrNotFound        = &apiError{Status: http.StatusNotFound, Code: "not_found", Message: "resource not found"}
	ErrTooManyRequests = &apiError{Status: http.StatusTooManyRequests, Code: "rate_limited", Message: "too many export requests"}
)

type apiError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e *apiError) Error() string { return e.Message }

func invalidRequestError() *apiError {
	return &apiError{
		Status:  http.StatusBadRequest,
		Code:    "invalid_request",
		Message: "malformed request body",
	}
}

func newValidationError(field, code, message string) *apiError {
	return &apiError{
		Status:  http.StatusUnprocessableEntity,
		Code:    code,
		Field:   field,
		Message: message,
	}
}

// AbortWithError maps domain errors onto the API taxonomy. Anything
// unmatched is an internal error; the message is not leaked.
func AbortWithError(c *gin.Context, err error) {
	var api *apiError
	if errors.As(err, &api) {
		c.AbortWithStatusJSON(api.Status, gin.H{"error": api})
		return
	}

	var decodeErr *share.DecodeError
	switch {
	case errors.As(err, &decodeErr):
		api = &apiError{
			Status:  http.StatusBadRequest,
			Code:    "invalid_share_token",
			Message: "share token could not be decoded: " + decodeErr.Stage,
		}
	case errors.Is(err, store.ErrItemIndexOutOfRange):
		api = &apiError{
			Status:  http.StatusUnprocessableEntity,
			Code:    "item_index_out_of_range",
			Message: "item index is out of range",
		}
	case errors.Is(err, custdomain.ErrUnknownPreset):
		api = &apiError{
			Status:  http.StatusUnprocessableEntity,
			Code:    "unknown_preset",
			Message: "unknown color preset",
		}
	case errors.Is(err, store.ErrUnknownTemplate):
		api = &apiError{
			Status:  http.StatusUnprocessableEntity,
			Code:    "unknown_template",
			Message: "unknown template name",
		}
	case errors.Is(err, export.ErrNoRasterizer):
		api = &apiError{
			Status:  http.StatusNotImplemented,
			Code:    "no_rasterizer",
			Message: "image exports are not available on this deployment",
		}
	default:
		api = &apiError{
			Status:  http.StatusInternalServerError,
			Code:    "internal",
			Message: "internal error",
		}
	}
	c.AbortWithStatusJSON(api.Status, gin.H{"error": api})
}
