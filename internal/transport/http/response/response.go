package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK 成功响应：固定 success=true，资源键由调用方给
// （{ success, blogs } / { success, blog } / { success, message, user } ...）
func OK(c *gin.Context, kv gin.H) {
	out := gin.H{"success": true}
	for k, v := range kv {
		out[k] = v
	}
	c.JSON(http.StatusOK, out)
}

// Fail 失败响应 { success: false, error }
func Fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "error": msg})
}

// FailRaw auth / profile 这组接口沿用的老错误形状 { error, details? }
func FailRaw(c *gin.Context, status int, msg string, details any) {
	out := gin.H{"error": msg}
	if details != nil {
		out["details"] = details
	}
	c.JSON(status, out)
}
