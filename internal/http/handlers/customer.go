package handlers

import (
	"errors"
	"net/http"

	"github.com/parcel-next/internal/http/response"
	"github.com/parcel-next/internal/repository"
	"github.com/parcel-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CustomerCreateRequest 创建客户请求
type CustomerCreateRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	IsActive *bool  `json:"is_active"`
}

// CustomerUpdateRequest 更新客户请求，缺省字段不变更
type CustomerUpdateRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	IsActive *bool   `json:"is_active"`
}

// GetCustomers 客户列表
func (h *Handler) GetCustomers(c *gin.Context) {
	skip, limit := skipLimit(c)
	isActive, ok := boolQuery(c, "is_active")
	if !ok {
		return
	}

	customers, err := h.CustomerService.List(repository.CustomerListFilter{
		Skip:     skip,
		Limit:    limit,
		IsActive: isActive,
		Search:   c.Query("search"),
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch customers", err)
		return
	}
	response.OK(c, customers)
}

// GetCustomer 客户详情
func (h *Handler) GetCustomer(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	customer, err := h.CustomerService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Customer not found", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to fetch customer", err)
		return
	}
	response.OK(c, customer)
}

// GetCustomerByEmail 根据邮箱查客户
func (h *Handler) GetCustomerByEmail(c *gin.Context) {
	customer, err := h.CustomerService.GetByEmail(c.Param("email"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Customer not found", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to fetch customer", err)
		return
	}
	response.OK(c, customer)
}

// CreateCustomer 创建客户
func (h *Handler) CreateCustomer(c *gin.Context) {
	var req CustomerCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	customer, err := h.CustomerService.Create(service.CreateCustomerInput{
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
			respondError(c, http.StatusInternalServerError, "Failed to create customer", err)
		}
		return
	}
	response.Created(c, customer)
}

// UpdateCustomer 更新客户
func (h *Handler) UpdateCustomer(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req CustomerUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	customer, err := h.CustomerService.Update(id, service.UpdateCustomerInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		IsActive: req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, http.StatusNotFound, "Customer not found", nil)
		case errors.Is(err, service.ErrEmailRegistered):
			respondError(c, http.StatusBadRequest, "Email already registered", nil)
		default:
			respondError(c, http.StatusInternalServerError, "Failed to update customer", err)
		}
		return
	}
	response.OK(c, customer)
}

// ActivateCustomer 启用客户
func (h *Handler) ActivateCustomer(c *gin.Context) {
	h.setCustomerActive(c, true)
}

// DeactivateCustomer 停用客户
func (h *Handler) DeactivateCustomer(c *gin.Context) {
	h.setCustomerActive(c, false)
}

func (h *Handler) setCustomerActive(c *gin.Context, active bool) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	customer, err := h.CustomerService.SetActive(id, active)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Customer not found", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to update customer", err)
		return
	}
	response.OK(c, customer)
}

// DeleteCustomer 删除客户
func (h *Handler) DeleteCustomer(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := h.CustomerService.Delete(id); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, http.StatusNotFound, "Customer not found", nil)
		case errors.Is(err, service.ErrEntityReferenced):
			respondError(c, http.StatusConflict, "Customer has associated items", nil)
		default:
			respondError(c, http.StatusInternalServerError, "Failed to delete customer", err)
		}
		return
	}
	response.NoContent(c)
}
