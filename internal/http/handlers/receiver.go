package handlers

import (
	"errors"
	"net/http"

	"github.com/parcel-next/internal/http/response"
	"github.com/parcel-next/internal/repository"
	"github.com/parcel-next/internal/service"

	"github.com/gin-gonic/gin"
)

// ReceiverCreateRequest 创建收件人请求
type ReceiverCreateRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	IsActive *bool  `json:"is_active"`
}

// ReceiverUpdateRequest 更新收件人请求，缺省字段不变更
type ReceiverUpdateRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	IsActive *bool   `json:"is_active"`
}

// GetReceivers 收件人列表
func (h *Handler) GetReceivers(c *gin.Context) {
	skip, limit := skipLimit(c)
	isActive, ok := boolQuery(c, "is_active")
	if !ok {
		return
	}

	receivers, err := h.ReceiverService.List(repository.ReceiverListFilter{
		Skip:     skip,
		Limit:    limit,
		IsActive: isActive,
		Search:   c.Query("search"),
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch receivers", err)
		return
	}
	response.OK(c, receivers)
}

// GetReceiver 收件人详情
func (h *Handler) GetReceiver(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	receiver, err := h.ReceiverService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Receiver not found", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to fetch receiver", err)
		return
	}
	response.OK(c, receiver)
}

// CreateReceiver 创建收件人
func (h *Handler) CreateReceiver(c *gin.Context) {
	var req ReceiverCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	receiver, err := h.ReceiverService.Create(service.CreateReceiverInput{
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
			respondError(c, http.StatusInternalServerError, "Failed to create receiver", err)
		}
		return
	}
	response.Created(c, receiver)
}

// UpdateReceiver 更新收件人
func (h *Handler) UpdateReceiver(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req ReceiverUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	receiver, err := h.ReceiverService.Update(id, service.UpdateReceiverInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		IsActive: req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, http.StatusNotFound, "Receiver not found", nil)
		case errors.Is(err, service.ErrEmailRegistered):
			respondError(c, http.StatusBadRequest, "Email already registered", nil)
		default:
			respondError(c, http.StatusInternalServerError, "Failed to update receiver", err)
		}
		return
	}
	response.OK(c, receiver)
}

// ActivateReceiver 启用收件人
func (h *Handler) ActivateReceiver(c *gin.Context) {
	h.setReceiverActive(c, true)
}

// DeactivateReceiver 停用收件人
func (h *Handler) DeactivateReceiver(c *gin.Context) {
	h.setReceiverActive(c, false)
}

func (h *Handler) setReceiverActive(c *gin.Context, active bool) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	receiver, err := h.ReceiverService.SetActive(id, active)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Receiver not found", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to update receiver", err)
		return
	}
	response.OK(c, receiver)
}

// DeleteReceiver 删除收件人
func (h *Handler) DeleteReceiver(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := h.ReceiverService.Delete(id); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, http.StatusNotFound, "Receiver not found", nil)
		case errors.Is(err, service.ErrEntityReferenced):
			respondError(c, http.StatusConflict, "Receiver has associated parcels", nil)
		default:
			respondError(c, http.StatusInternalServerError, "Failed to delete receiver", err)
		}
		return
	}
	response.NoContent(c)
}
