package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"calendar-assistant/pkg/log"
	"calendar-assistant/pkg/response"
	"calendar-assistant/pkg/telegram"
)

// RequestIDHeader carries the trace id in and out of the service.
const RequestIDHeader = "X-Request-ID"

// TraceID attaches a trace id to the request context, reusing X-Request-ID when
// sent, and logs the errors handlers recorded on the context.
func (m Middleware) TraceID() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(RequestIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		ctx := log.WithTraceID(c.Request.Context(), traceID)
		c.Request = c.Request.WithContext(ctx)
		c.Header(RequestIDHeader, traceID)
		c.Next()

		for _, e := range c.Errors {
			m.l.Errorf(ctx, "%s %s -> %d: %v", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), e.Err)
		}
	}
}

// TelegramWebhook rejects updates that do not carry the registered secret
// token or come from an address outside the whitelist.
func (m Middleware) TelegramWebhook() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if err := m.security.ValidateSecretToken(c.GetHeader(telegram.SecretTokenHeader)); err != nil {
			m.l.Warnf(ctx, "middleware.TelegramWebhook: %v", err)
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if err := m.security.ValidateIPAddress(c.Request); err != nil {
			m.l.Warnf(ctx, "middleware.TelegramWebhook: %v", err)
			response.Forbidden(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
