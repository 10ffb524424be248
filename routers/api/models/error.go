package models

import (
	"github.com/gin-gonic/gin"
)

// APIError is the body sent with every error response produced by the server
type APIError Response

func (e *APIError) Error() string {
	return e.Err
}

// NewAPIError creates an APIError with given status and error message
func NewAPIError(status int, err string) APIError {
	return APIError{
		Status: status,
		Err:    err,
	}
}

// SendAPIError sends an error with given status and error message to the user and
// stops the handler chain. The error is also recorded on the context as a public
// gin error so it is visible to middleware that already ran.
func SendAPIError(ctx *gin.Context, status int, err string) {
	apiErr := NewAPIError(status, err)
	_ = ctx.Error(&apiErr).SetType(gin.ErrorTypePublic)
	ctx.AbortWithStatusJSON(status, apiErr)
}
