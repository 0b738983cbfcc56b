// Package responses holds the HTTP response DTOs and the shared error
// rendering helpers.
package responses

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/HinduAI/Nara/internal/utils/platformerrors"
)

// ErrorResponse is the error body returned by every endpoint.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// HandleError renders a domain error with the status derived from its type.
func HandleError(c *gin.Context, err error) {
	var perr *platformerrors.PlatformError
	if errors.As(err, &perr) {
		c.AbortWithStatusJSON(perr.HTTPStatus(), ErrorResponse{
			Error: perr.Message,
			Code:  perr.Code,
		})
		return
	}
	c.AbortWithStatusJSON(platformerrors.HTTPStatus(err), ErrorResponse{Error: "internal error"})
}

// HandleNewError renders a fresh error of the given type.
func HandleNewError(c *gin.Context, errType platformerrors.ErrorType, message, code string) {
	err := platformerrors.NewError(c.Request.Context(), platformerrors.LayerHandler, errType, message, nil, code)
	HandleError(c, err)
}

// HandleErrorWithStatus renders err with an explicit status code.
func HandleErrorWithStatus(c *gin.Context, status int, err error, message string) {
	if message == "" && err != nil {
		message = err.Error()
	}
	c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}
