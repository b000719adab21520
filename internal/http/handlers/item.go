package handlers

import (
	"errors"
	"net/http"

	"github.com/parcel-next/internal/http/response"
	"github.com/parcel-next/internal/models"
	"github.com/parcel-next/internal/repository"
	"github.com/parcel-next/internal/service"

	"github.com/gin-gonic/gin"
)

// ItemCreateRequest 创建货品请求
type ItemCreateRequest struct {
	Weight       float64      `json:"weight" binding:"required,gt=0"`
	ServicePrice models.Money `json:"service_price"`
	CustomerID   *uint        `json:"customer_id"`
}

// ItemUpdateRequest 更新货品请求，缺省字段不变更
type ItemUpdateRequest struct {
	Weight       *float64      `json:"weight" binding:"omitempty,gt=0"`
	ServicePrice *models.Money `json:"service_price"`
	CustomerID   *uint         `json:"customer_id"`
}

// GetItems 货品列表
func (h *Handler) GetItems(c *gin.Context) {
	skip, limit := skipLimit(c)

	var customerID *uint
	if id, ok := uintQuery(c, "customer_id"); !ok {
		return
	} else if id > 0 {
		customerID = &id
	}

	items, err := h.ItemService.List(repository.ItemListFilter{
		Skip:       skip,
		Limit:      limit,
		CustomerID: customerID,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch items", err)
		return
	}
	response.OK(c, items)
}

// GetItem 货品详情
func (h *Handler) GetItem(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	item, err := h.ItemService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Item not found", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to fetch item", err)
		return
	}
	response.OK(c, item)
}

// CreateItem 创建货品
func (h *Handler) CreateItem(c *gin.Context) {
	var req ItemCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	item, err := h.ItemService.Create(service.CreateItemInput{
		Weight:       req.Weight,
		ServicePrice: req.ServicePrice,
		CustomerID:   req.CustomerID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCustomerNotFound):
			respondError(c, http.StatusBadRequest, "Customer not found", nil)
		default:
			respondError(c, http.StatusInternalServerError, "Failed to create item", err)
		}
		return
	}
	response.Created(c, item)
}

// UpdateItem 更新货品
func (h *Handler) UpdateItem(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req ItemUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	item, err := h.ItemService.Update(id, service.UpdateItemInput{
		Weight:       req.Weight,
		ServicePrice: req.ServicePrice,
		CustomerID:   req.CustomerID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, http.StatusNotFound, "Item not found", nil)
		case errors.Is(err, service.ErrCustomerNotFound):
			respondError(c, http.StatusBadRequest, "Customer not found", nil)
		default:
			respondError(c, http.StatusInternalServerError, "Failed to update item", err)
		}
		return
	}
	response.OK(c, item)
}

// DeleteItem 删除货品
func (h *Handler) DeleteItem(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := h.ItemService.Delete(id); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, http.StatusNotFound, "Item not found", nil)
		default:
			respondError(c, http.StatusInternalServerError, "Failed to delete item", err)
		}
		return
	}
	response.NoContent(c)
}
