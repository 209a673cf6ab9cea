package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody 是错误响应的结构体（成功响应直接返回资源本身）
type ErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// JSON 成功响应，直接输出资源载荷
func JSON(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// NotFound 资源不存在，按约定返回空响应体
func NotFound(c *gin.Context) {
	c.Status(http.StatusNotFound)
}

// Fail 失败响应
func Fail(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorBody{
		Code:    code,
		Message: message,
	})
}
