// Package middleware provides platform-level gin middleware.
package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Timeout bounds each request with a deadline. The derived context
// reaches the database driver through gorm's WithContext, so a fired
// deadline interrupts the query and rolls back the open transaction.
func Timeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)
		c.Next()
		if ctx.Err() == context.DeadlineExceeded && !c.Writer.Written() {
			c.AbortWithStatusJSON(http.StatusGatewayTimeout, gin.H{
				"error":   "INTERNAL",
				"message": "request timed out",
			})
		}
	}
}
