package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody 错误响应体
type ErrorBody struct {
	Detail    string `json:"detail"`               // 错误描述
	RequestID string `json:"request_id,omitempty"` // 请求 ID
}

// OK 200 响应
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Created 201 响应
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, data)
}

// NoContent 204 响应
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// Error 错误响应，status 为真实 HTTP 状态码
func Error(c *gin.Context, status int, detail string) {
	c.JSON(status, ErrorBody{
		Detail:    detail,
		RequestID: requestID(c),
	})
}

// TooManyRequests 429 响应
func TooManyRequests(c *gin.Context, detail string) {
	Error(c, http.StatusTooManyRequests, detail)
}

// Internal 500 响应
func Internal(c *gin.Context, detail string) {
	Error(c, http.StatusInternalServerError, detail)
}

func requestID(c *gin.Context) string {
	if c == nil {
		return ""
	}
	if value, ok := c.Get("request_id"); ok {
		if id, ok := value.(string); ok {
			return id
		}
	}
	return ""
}
