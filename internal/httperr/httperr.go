package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/fleetops/ship-management-api/internal/services"
)

// Error codes
const (
	CodeInvalidInput  = "INVALID_INPUT"
	CodeNotFound      = "NOT_FOUND"
	CodeInternalError = "INTERNAL_ERROR"
)

// APIError is the standardized error response body.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request"
	}
	c.JSON(http.StatusBadRequest, &APIError{Code: CodeInvalidInput, Message: message})
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Resource not found"
	}
	c.JSON(http.StatusNotFound, &APIError{Code: CodeNotFound, Message: message})
}

// Internal sends an opaque 500 response
func Internal(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, &APIError{Code: CodeInternalError, Message: "An internal error occurred"})
}

// Respond translates a service error into the HTTP response once, for
// every endpoint: validation errors become 400 with their message,
// not-found errors become 404, and anything else is logged with the
// operation name and identifiers and surfaced as an opaque 500.
func Respond(c *gin.Context, operation string, err error, fields logrus.Fields) {
	switch {
	case services.IsValidation(err):
		BadRequest(c, err.Error())
	case services.IsNotFound(err):
		NotFound(c, err.Error())
	default:
		logrus.WithFields(fields).
			WithField("operation", operation).
			WithError(err).
			Error("request failed")
		Internal(c)
	}
}
