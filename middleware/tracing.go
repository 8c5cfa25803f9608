package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mileusna/useragent"
)

func RequestTracingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		// Tag the calling client so request logs can tell the web app
		// from mobile and scripts apart
		ua := useragent.Parse(c.Request.UserAgent())
		client := ua.Name
		if client == "" {
			client = "unknown"
		}
		if ua.Mobile {
			client += "-mobile"
		}
		c.Set("client", client)

		c.Next()
	}
}
