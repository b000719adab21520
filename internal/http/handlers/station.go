package handlers

import (
	"errors"
	"net/http"

	"github.com/parcel-next/internal/http/response"
	"github.com/parcel-next/internal/repository"
	"github.com/parcel-next/internal/service"

	"github.com/gin-gonic/gin"
)

// StationCreateRequest 创建站点请求
type StationCreateRequest struct {
	Name       string `json:"name" binding:"required"`
	Code       string `json:"code" binding:"required"`
	Address    string `json:"address" binding:"required"`
	City       string `json:"city" binding:"required"`
	State      string `json:"state" binding:"required"`
	PostalCode string `json:"postal_code" binding:"required"`
	Phone      string `json:"phone"`
	IsActive   *bool  `json:"is_active"`
}

// StationUpdateRequest 更新站点请求，缺省字段不变更
type StationUpdateRequest struct {
	Name       *string `json:"name"`
	Code       *string `json:"code"`
	Address    *string `json:"address"`
	City       *string `json:"city"`
	State      *string `json:"state"`
	PostalCode *string `json:"postal_code"`
	Phone      *string `json:"phone"`
	IsActive   *bool   `json:"is_active"`
}

// GetStations 站点列表
func (h *Handler) GetStations(c *gin.Context) {
	skip, limit := skipLimit(c)
	isActive, ok := boolQuery(c, "is_active")
	if !ok {
		return
	}

	stations, err := h.StationService.List(repository.StationListFilter{
		Skip:     skip,
		Limit:    limit,
		City:     c.Query("city"),
		State:    c.Query("state"),
		IsActive: isActive,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch stations", err)
		return
	}
	response.OK(c, stations)
}

// GetStation 站点详情
func (h *Handler) GetStation(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	station, err := h.StationService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Station not found", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to fetch station", err)
		return
	}
	response.OK(c, station)
}

// GetStationByCode 根据编码查站点
func (h *Handler) GetStationByCode(c *gin.Context) {
	station, err := h.StationService.GetByCode(c.Param("code"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Station not found", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to fetch station", err)
		return
	}
	response.OK(c, station)
}

// CreateStation 创建站点
func (h *Handler) CreateStation(c *gin.Context) {
	var req StationCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	station, err := h.StationService.Create(service.CreateStationInput{
		Name:       req.Name,
		Code:       req.Code,
		Address:    req.Address,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Phone:      req.Phone,
		IsActive:   req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrStationCodeRegistered):
			respondError(c, http.StatusBadRequest, "Station code already registered", nil)
		default:
			respondError(c, http.StatusInternalServerError, "Failed to create station", err)
		}
		return
	}
	response.Created(c, station)
}

// UpdateStation 更新站点
func (h *Handler) UpdateStation(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req StationUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	station, err := h.StationService.Update(id, service.UpdateStationInput{
		Name:       req.Name,
		Code:       req.Code,
		Address:    req.Address,
		City:       req.City,
		State:      req.State,
		PostalCode: req.PostalCode,
		Phone:      req.Phone,
		IsActive:   req.IsActive,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, http.StatusNotFound, "Station not found", nil)
		case errors.Is(err, service.ErrStationCodeRegistered):
			respondError(c, http.StatusBadRequest, "Station code already registered", nil)
		default:
			respondError(c, http.StatusInternalServerError, "Failed to update station", err)
		}
		return
	}
	response.OK(c, station)
}

// DeleteStation 删除站点
func (h *Handler) DeleteStation(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := h.StationService.Delete(id); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, http.StatusNotFound, "Station not found", nil)
		case errors.Is(err, service.ErrEntityReferenced):
			respondError(c, http.StatusConflict, "Station has associated parcels", nil)
		default:
			respondError(c, http.StatusInternalServerError, "Failed to delete station", err)
		}
		return
	}
	response.NoContent(c)
}
