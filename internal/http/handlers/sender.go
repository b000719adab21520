package handlers

import (
	"errors"
	"net/http"

	"github.com/parcel-next/internal/http/response"
	"github.com/parcel-next/internal/repository"
	"github.com/parcel-next/internal/service"

	"github.com/gin-gonic/gin"
)

// SenderCreateRequest 创建寄件人请求
type SenderCreateRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	IsActive *bool  `json:"is_active"`
}

// SenderUpdateRequest 更新寄件人请求，缺省字段不变更
type SenderUpdateRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	IsActive *bool   `json:"is_active"`
}

// GetSenders 寄件人列表
func (h *Handler) GetSenders(c *gin.Context) {
	skip, limit := skipLimit(c)
	isActive, ok := boolQuery(c, "is_active")
	if !ok {
		return
	}

	senders, err := h.SenderService.List(repository.SenderListFilter{
		Skip:     skip,
		Limit:    limit,
		IsActive: isActive,
		Search:   c.Query("search"),
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch senders", err)
		return
	}
	response.OK(c, senders)
}

// GetSender 寄件人详情
func (h *Handler) GetSender(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	sender, err := h.SenderService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Sender not found", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to fetch sender", err)
		return
	}
	response.OK(c, sender)
}

// CreateSender 创建寄件人
func (h *Handler) CreateSender(c *gin.Context) {
	var req SenderCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	sender, err := h.SenderService.Create(service.CreateSenderInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		IsActive: req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailRegistered):
			respondError(c, http.StatusBadRequest, "Email already registered", nil)
		default:
			respondError(c, http.StatusInternalServerError, "Failed to create sender", err)
		}
		return
	}
	response.Created(c, sender)
}

// UpdateSender 更新寄件人
func (h *Handler) UpdateSender(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req SenderUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	sender, err := h.SenderService.Update(id, service.UpdateSenderInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		IsActive: req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, http.StatusNotFound, "Sender not found", nil)
		case errors.Is(err, service.ErrEmailRegistered):
			respondError(c, http.StatusBadRequest, "Email already registered", nil)
		default:
			respondError(c, http.StatusInternalServerError, "Failed to update sender", err)
		}
		return
	}
	response.OK(c, sender)
}

// DeleteSender 删除寄件人
func (h *Handler) DeleteSender(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := h.SenderService.Delete(id); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, http.StatusNotFound, "Sender not found", nil)
		case errors.Is(err, service.ErrEntityReferenced):
			respondError(c, http.StatusConflict, "Sender has associated parcels", nil)
		default:
			respondError(c, http.StatusInternalServerError, "Failed to delete sender", err)
		}
		return
	}
	response.NoContent(c)
}
