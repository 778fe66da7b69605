package utils

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger logs method, path, status and latency for each request
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		latency := time.Since(startTime)
		log.Printf("[HTTP] %s %s -> %d (%s)",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), latency)
	}
}
