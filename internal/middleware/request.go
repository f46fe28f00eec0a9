package middleware

import (
	"time" // Request latency

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/google/uuid"     // Request id generation
	"github.com/sirupsen/logrus" // Structured logging
)

const (
	RequestIDHeader = "X-Request-ID" // Header carrying the request id
	RequestIDKey    = "requestID"    // Context key of the request id
	LoggerKey       = "logger"       // Context key of the request scoped logger
)

// RequestIDMiddleware reuses the caller's X-Request-ID or assigns a new one
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader) // Caller supplied id, if any
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id) // Echo the id back
		c.Next()
	}
}

// LoggerMiddleware logs every request with its id, status and latency
func LoggerMiddleware(log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		entry := log.WithField("request_id", c.GetString(RequestIDKey))
		c.Set(LoggerKey, entry) // Handlers log through the request scoped entry
		c.Next()

		status := c.Writer.Status()
		fields := logrus.Fields{
			"method":  c.Request.Method,           // HTTP method
			"path":    c.Request.URL.Path,         // Request path
			"query":   c.Request.URL.RawQuery,     // Raw query string
			"status":  status,                     // Response status
			"latency": time.Since(start).String(), // Time spent handling
			"client":  c.ClientIP(),               // Caller address
		}
		switch {
		case status >= 500:
			entry.WithFields(fields).Error("Request failed")
		case status >= 400:
			entry.WithFields(fields).Warn("Request rejected")
		default:
			entry.WithFields(fields).Info("Request handled")
		}
	}
}

// Logger returns the request scoped logger, or fallback outside a request
func Logger(c *gin.Context, fallback logrus.FieldLogger) logrus.FieldLogger {
	if v, ok := c.Get(LoggerKey); ok {
		if l, ok := v.(logrus.FieldLogger); ok {
			return l
		}
	}
	return fallback
}
