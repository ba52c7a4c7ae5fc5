package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"zenzone-admin/internal/transport/http/response"
)

// MaxBodyBytes 限制请求体大小（音频上传最大 8MB，留些余量）
func MaxBodyBytes(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		c.Next()
		if c.Err() != nil && !c.Writer.Written() {
			response.Fail(c, http.StatusRequestEntityTooLarge, "request body too large")
			c.Abort()
		}
	}
}
