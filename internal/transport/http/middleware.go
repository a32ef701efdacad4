package httpt

import (
	"time"

	"github.com/gin-gonic/gin"
)

const _requestIDHeader = "X-Request-ID"

func (h *Handler) requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(_requestIDHeader)
		if requestID == "" {
			requestID = h.log.GenerateRequestID()
		}
		ctx := h.log.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Header(_requestIDHeader, requestID)

		c.Next()
	}
}

func (h *Handler) loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		method := c.Request.Method

		// route templates keep the metric label set bounded
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		h.log.LogRequest(c.Request.Context(), method, c.Request.URL.Path, status, latency)
		h.metrics.Request(method, path, status, latency)

		if latency > _slowRequest {
			h.metrics.SlowRequest(method, path, status, latency)
		}
	}
}
