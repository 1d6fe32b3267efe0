package bootstrap

import (
	"net/http"
	"time"

	"github.com/Domenick1991/traveldesk/internal/logger"
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const slowRequestThreshold = time.Second

func recoveryMiddleware(log *logger.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.WithFields(logger.Fields{
			"panic":  recovered,
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		}).Error("Panic recovered")
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error", "kind": "store"})
	})
}

// loggingMiddleware replaces gin's request log with structured entries.
func loggingMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		log.LogRequest(c.Request.Method, path, c.ClientIP(), status, latency.Milliseconds())

		if status >= http.StatusInternalServerError && len(c.Errors) > 0 {
			log.WithFields(logger.Fields{
				"method": c.Request.Method,
				"path":   path,
			}).Error(c.Errors.String())
		}
		if latency > slowRequestThreshold {
			log.LogPerformance("http_request", latency.Milliseconds(), map[string]interface{}{
				"method": c.Request.Method,
				"path":   path,
				"query":  raw,
				"status": status,
			})
		}
	}
}

// rateLimitMiddleware applies one token bucket to every request. A non-positive
// perMinute disables it.
func rateLimitMiddleware(log *logger.Logger, perMinute, burst int) gin.HandlerFunc {
	if perMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if burst <= 0 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(perMinute)/60, burst)

	return func(c *gin.Context) {
		if !limiter.Allow() {
			log.WithFields(logger.Fields{
				"client_ip": c.ClientIP(),
				"path":      c.Request.URL.Path,
			}).Warn("rate limit exceeded")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded", "kind": "rate_limited"})
			return
		}
		c.Next()
	}
}
