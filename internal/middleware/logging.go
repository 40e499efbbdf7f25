package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// StructuredLogger logs the transport side of every request: client,
// user agent and sizes. Function outcomes are logged by the functions.
func StructuredLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		raw := c.Request.URL.RawQuery

		c.Next()

		fields := logrus.Fields{
			"request_id":     c.GetString(RequestIDKey),
			"method":         c.Request.Method,
			"path":           c.Request.URL.Path,
			"status_code":    c.Writer.Status(),
			"latency_ms":     float64(time.Since(start).Nanoseconds()) / 1000000,
			"client_ip":      c.ClientIP(),
			"user_agent":     c.Request.UserAgent(),
			"content_length": c.Request.ContentLength,
			"response_size":  c.Writer.Size(),
		}
		if raw != "" {
			fields["query"] = raw
		}

		for _, err := range c.Errors {
			logger.WithFields(fields).WithError(err.Err).Error("Request error")
		}

		logger.WithFields(fields).Debug("HTTP request")
	}
}

// Recovery turns a panic into a 500 and logs it
func Recovery(logger *logrus.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.WithFields(logrus.Fields{
			"request_id": c.GetString(RequestIDKey),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"panic":      recovered,
		}).Error("Panic recovered")

		c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Message: "Error interno del servidor"})
	})
}
