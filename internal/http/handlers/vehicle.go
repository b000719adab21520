package handlers

import (
	"errors"
	"net/http"

	"github.com/parcel-next/internal/http/response"
	"github.com/parcel-next/internal/repository"
	"github.com/parcel-next/internal/service"

	"github.com/gin-gonic/gin"
)

// VehicleCreateRequest 创建车辆请求
type VehicleCreateRequest struct {
	LicensePlate string  `json:"license_plate" binding:"required"`
	Type         string  `json:"type" binding:"required"`
	Capacity     float64 `json:"capacity" binding:"required,gt=0"`
	IsActive     *bool   `json:"is_active"`
}

// VehicleUpdateRequest 更新车辆请求，缺省字段不变更
type VehicleUpdateRequest struct {
	LicensePlate *string  `json:"license_plate"`
	Type         *string  `json:"type"`
	Capacity     *float64 `json:"capacity" binding:"omitempty,gt=0"`
	IsActive     *bool    `json:"is_active"`
}

// GetVehicles 车辆列表
func (h *Handler) GetVehicles(c *gin.Context) {
	skip, limit := skipLimit(c)
	isActive, ok := boolQuery(c, "is_active")
	if !ok {
		return
	}

	vehicles, err := h.VehicleService.List(repository.VehicleListFilter{
		Skip:     skip,
		Limit:    limit,
		Type:     c.Query("type"),
		IsActive: isActive,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch vehicles", err)
		return
	}
	response.OK(c, vehicles)
}

// GetVehicle 车辆详情
func (h *Handler) GetVehicle(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	vehicle, err := h.VehicleService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Vehicle not found", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to fetch vehicle", err)
		return
	}
	response.OK(c, vehicle)
}

// GetVehicleByLicensePlate 根据车牌号查车辆
func (h *Handler) GetVehicleByLicensePlate(c *gin.Context) {
	vehicle, err := h.VehicleService.GetByLicensePlate(c.Param("license_plate"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Vehicle not found", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to fetch vehicle", err)
		return
	}
	response.OK(c, vehicle)
}

// CreateVehicle 创建车辆
func (h *Handler) CreateVehicle(c *gin.Context) {
	var req VehicleCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	vehicle, err := h.VehicleService.Create(service.CreateVehicleInput{
		LicensePlate: req.LicensePlate,
		Type:         req.Type,
		Capacity:     req.Capacity,
		IsActive:     req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLicensePlateRegistered):
			respondError(c, http.StatusBadRequest, "License plate already registered", nil)
		default:
			respondError(c, http.StatusInternalServerError, "Failed to create vehicle", err)
		}
		return
	}
	response.Created(c, vehicle)
}

// UpdateVehicle 更新车辆
func (h *Handler) UpdateVehicle(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req VehicleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	vehicle, err := h.VehicleService.Update(id, service.UpdateVehicleInput{
		LicensePlate: req.LicensePlate,
		Type:         req.Type,
		Capacity:     req.Capacity,
		IsActive:     req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, http.StatusNotFound, "Vehicle not found", nil)
		case errors.Is(err, service.ErrLicensePlateRegistered):
			respondError(c, http.StatusBadRequest, "License plate already registered", nil)
		default:
			respondError(c, http.StatusInternalServerError, "Failed to update vehicle", err)
		}
		return
	}
	response.OK(c, vehicle)
}

// DeleteVehicle 删除车辆
func (h *Handler) DeleteVehicle(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := h.VehicleService.Delete(id); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, http.StatusNotFound, "Vehicle not found", nil)
		case errors.Is(err, service.ErrEntityReferenced):
			respondError(c, http.StatusConflict, "Vehicle has associated parcels", nil)
		default:
			respondError(c, http.StatusInternalServerError, "Failed to delete vehicle", err)
		}
		return
	}
	response.NoContent(c)
}
