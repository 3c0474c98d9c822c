package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"calendar-assistant/pkg/log"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// BadRequest wraps cause into a 400 carrying message.
func BadRequest(message string, cause error) *HTTPError {
	return &HTTPError{Status: http.StatusBadRequest, Message: message, Err: cause}
}

// NotFound wraps cause into a 404 carrying message.
func NotFound(message string, cause error) *HTTPError {
	return &HTTPError{Status: http.StatusNotFound, Message: message, Err: cause}
}

// Error records err on the context and answers with the status and message
// of the first *HTTPError in its chain. Any other error is a 500.
func Error(c *gin.Context, err error) {
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		InternalError(c, err)
		return
	}

	_ = c.Error(err)
	abort(c, httpErr.Status, httpErr.Message)
}

// InternalError records err on the context and sends a 500 without its details.
func InternalError(c *gin.Context, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	abort(c, http.StatusInternalServerError, DefaultErrorMessage)
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	abort(c, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
}

// Forbidden sends 403 response.
func Forbidden(c *gin.Context) {
	abort(c, http.StatusForbidden, http.StatusText(http.StatusForbidden))
}

func abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, Resp{
		ErrorCode: status,
		Message:   message,
		TraceID:   traceID(c),
	})
}

func traceID(c *gin.Context) string {
	if c.Request == nil {
		return ""
	}
	return log.TraceIDFromContext(c.Request.Context())
}
