package server

import (
	"time"

	"plate-auction-web/internal/auction"
	"plate-auction-web/utils"

	"github.com/gin-gonic/gin"
)

const (
	// RequestIDHeader is the header used to propagate request IDs
	RequestIDHeader = "X-Request-ID"
	// RequestIDKey is the gin context key holding the request ID
	RequestIDKey = "request_id"
)

// RequestIDMiddleware reuses a well-formed incoming X-Request-ID or generates one,
// echoes it on the response and forwards it to the auction service
func RequestIDMiddleware(c *gin.Context) {
	id := c.GetHeader(RequestIDHeader)
	if !utils.ValidID(id) {
		if id != "" {
			utils.Debug("RequestIDMiddleware: discarding malformed request id", map[string]any{"request_id": id})
		}
		id = utils.GenerateID()
	}

	c.Set(RequestIDKey, id)
	c.Header(RequestIDHeader, id)
	c.Request = c.Request.WithContext(auction.WithRequestID(c.Request.Context(), id))

	c.Next()
}

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	utils.Info("HTTP Request", map[string]any{
		"request_id": c.GetString(RequestIDKey),
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"status":     c.Writer.Status(),
		"latency":    time.Since(start).String(),
	})
}
