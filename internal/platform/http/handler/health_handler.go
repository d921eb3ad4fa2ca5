// Package handler provides platform-level HTTP handlers.
package handler

import "github.com/gin-gonic/gin"

// Health answers the liveness probe.
func Health(c *gin.Context) {
	// Explicitly uncacheable
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case "HEAD":
		c.Status(200)
	case "OPTIONS":
		c.Status(204)
	default:
		c.JSON(200, gin.H{"status": "ok"})
	}
}
