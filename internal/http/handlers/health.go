package handlers

import (
	"net/http"

	"github.com/parcel-next/internal/http/response"
	"github.com/parcel-next/internal/models"

	"github.com/gin-gonic/gin"
)

// Hello 根路由欢迎信息
func (h *Handler) Hello(c *gin.Context) {
	response.OK(c, gin.H{"message": "Parcel Management System API"})
}

// Health 健康检查：数据库不可达时返回 500
func (h *Handler) Health(c *gin.Context) {
	if err := models.Ping(); err != nil {
		RequestLog(c).Errorw("health_db_ping_failed", "error", err)
		response.Error(c, http.StatusInternalServerError, "database unavailable")
		return
	}
	response.OK(c, gin.H{"status": "ok"})
}
