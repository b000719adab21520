package handlers

import (
	"errors"
	"net/http"

	"github.com/parcel-next/internal/http/response"
	"github.com/parcel-next/internal/repository"
	"github.com/parcel-next/internal/service"

	"github.com/gin-gonic/gin"
)

// DeliveryStaffCreateRequest 创建派送员请求
type DeliveryStaffCreateRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"required"`
	EmployeeID string `json:"employee_id" binding:"required"`
	IsActive   *bool  `json:"is_active"`
}

// DeliveryStaffUpdateRequest 更新派送员请求，缺省字段不变更
type DeliveryStaffUpdateRequest struct {
	Name       *string `json:"name"`
	Email      *string `json:"email" binding:"omitempty,email"`
	Phone      *string `json:"phone"`
	EmployeeID *string `json:"employee_id"`
	IsActive   *bool   `json:"is_active"`
}

// GetDeliveryStaffList 派送员列表
func (h *Handler) GetDeliveryStaffList(c *gin.Context) {
	skip, limit := skipLimit(c)
	isActive, ok := boolQuery(c, "is_active")
	if !ok {
		return
	}

	staff, err := h.DeliveryStaffService.List(repository.DeliveryStaffListFilter{
		Skip:     skip,
		Limit:    limit,
		IsActive: isActive,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch delivery staff", err)
		return
	}
	response.OK(c, staff)
}

// GetDeliveryStaff 派送员详情
func (h *Handler) GetDeliveryStaff(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	staff, err := h.DeliveryStaffService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Delivery staff not found", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to fetch delivery staff", err)
		return
	}
	response.OK(c, staff)
}

// GetDeliveryStaffByEmployeeID 根据工号查派送员
func (h *Handler) GetDeliveryStaffByEmployeeID(c *gin.Context) {
	staff, err := h.DeliveryStaffService.GetByEmployeeID(c.Param("employee_id"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Delivery staff not found", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to fetch delivery staff", err)
		return
	}
	response.OK(c, staff)
}

// CreateDeliveryStaff 创建派送员
func (h *Handler) CreateDeliveryStaff(c *gin.Context) {
	var req DeliveryStaffCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	staff, err := h.DeliveryStaffService.Create(service.CreateDeliveryStaffInput{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		EmployeeID: req.EmployeeID,
		IsActive:   req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmailRegistered):
			respondError(c, http.StatusBadRequest, "Email already registered", nil)
		case errors.Is(err, service.ErrEmployeeIDRegistered):
			respondError(c, http.StatusBadRequest, "Employee ID already registered", nil)
		default:
			respondError(c, http.StatusInternalServerError, "Failed to create delivery staff", err)
		}
		return
	}
	response.Created(c, staff)
}

// UpdateDeliveryStaff 更新派送员
func (h *Handler) UpdateDeliveryStaff(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req DeliveryStaffUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	staff, err := h.DeliveryStaffService.Update(id, service.UpdateDeliveryStaffInput{
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		EmployeeID: req.EmployeeID,
		IsActive:   req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, http.StatusNotFound, "Delivery staff not found", nil)
		case errors.Is(err, service.ErrEmailRegistered):
			respondError(c, http.StatusBadRequest, "Email already registered", nil)
		case errors.Is(err, service.ErrEmployeeIDRegistered):
			respondError(c, http.StatusBadRequest, "Employee ID already registered", nil)
		default:
			respondError(c, http.StatusInternalServerError, "Failed to update delivery staff", err)
		}
		return
	}
	response.OK(c, staff)
}

// DeleteDeliveryStaff 删除派送员
func (h *Handler) DeleteDeliveryStaff(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := h.DeliveryStaffService.Delete(id); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, http.StatusNotFound, "Delivery staff not found", nil)
		case errors.Is(err, service.ErrEntityReferenced):
			respondError(c, http.StatusConflict, "Delivery staff has associated parcels", nil)
		default:
			respondError(c, http.StatusInternalServerError, "Failed to delete delivery staff", err)
		}
		return
	}
	response.NoContent(c)
}
