package middleware

import (
	"log"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger writes one line per request with the resolved user, if any.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		user := "-"
		if id, ok := UserID(c); ok {
			user = strconv.FormatUint(uint64(id), 10)
		}
		log.Printf("%s %s %d %s user=%s ip=%s",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start), user, c.ClientIP())
	}
}
