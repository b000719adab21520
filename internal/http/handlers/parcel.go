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

// ParcelCreateRequest 创建包裹请求；运单号由服务端生成
type ParcelCreateRequest struct {
	Weight               float64      `json:"weight" binding:"required,gt=0"`
	Length               float64      `json:"length" binding:"required,gt=0"`
	Width                float64      `json:"width" binding:"required,gt=0"`
	Height               float64      `json:"height" binding:"required,gt=0"`
	ServicePrice         models.Money `json:"service_price"`
	Status               *string      `json:"status"`
	Description          string       `json:"description"`
	SpecialInstructions  string       `json:"special_instructions"`
	SenderID             uint         `json:"sender_id" binding:"required"`
	ReceiverID           uint         `json:"receiver_id" binding:"required"`
	OriginStationID      *uint        `json:"origin_station_id"`
	DestinationStationID *uint        `json:"destination_station_id"`
}

// ParcelUpdateRequest 更新包裹请求，缺省字段不变更；运单号不可变更
type ParcelUpdateRequest struct {
	Weight               *float64      `json:"weight" binding:"omitempty,gt=0"`
	Length               *float64      `json:"length" binding:"omitempty,gt=0"`
	Width                *float64      `json:"width" binding:"omitempty,gt=0"`
	Height               *float64      `json:"height" binding:"omitempty,gt=0"`
	ServicePrice         *models.Money `json:"service_price"`
	Status               *string       `json:"status"`
	Description          *string       `json:"description"`
	SpecialInstructions  *string       `json:"special_instructions"`
	OriginStationID      *uint         `json:"origin_station_id"`
	DestinationStationID *uint         `json:"destination_station_id"`
}

// GetParcels 包裹列表
func (h *Handler) GetParcels(c *gin.Context) {
	skip, limit := skipLimit(c)

	senderID, ok := uintQuery(c, "sender_id")
	if !ok {
		return
	}
	receiverID, ok := uintQuery(c, "receiver_id")
	if !ok {
		return
	}

	parcels, err := h.ParcelService.List(repository.ParcelListFilter{
		Skip:       skip,
		Limit:      limit,
		Status:     c.Query("status"),
		SenderID:   senderID,
		ReceiverID: receiverID,
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch parcels", err)
		return
	}
	response.OK(c, parcels)
}

// GetParcel 包裹详情
func (h *Handler) GetParcel(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	parcel, err := h.ParcelService.GetByID(id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Parcel not found", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to fetch parcel", err)
		return
	}
	response.OK(c, parcel)
}

// CreateParcel 创建包裹
func (h *Handler) CreateParcel(c *gin.Context) {
	var req ParcelCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	parcel, err := h.ParcelService.Create(service.CreateParcelInput{
		Weight:               req.Weight,
		Length:               req.Length,
		Width:                req.Width,
		Height:               req.Height,
		ServicePrice:         req.ServicePrice,
		Status:               req.Status,
		Description:          req.Description,
		SpecialInstructions:  req.SpecialInstructions,
		SenderID:             req.SenderID,
		ReceiverID:           req.ReceiverID,
		OriginStationID:      req.OriginStationID,
		DestinationStationID: req.DestinationStationID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			respondError(c, http.StatusBadRequest, "Invalid parcel status", nil)
		default:
			respondError(c, http.StatusInternalServerError, "Failed to create parcel", err)
		}
		return
	}
	response.Created(c, parcel)
}

// UpdateParcel 更新包裹
func (h *Handler) UpdateParcel(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	var req ParcelUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	parcel, err := h.ParcelService.Update(id, service.UpdateParcelInput{
		Weight:               req.Weight,
		Length:               req.Length,
		Width:                req.Width,
		Height:               req.Height,
		ServicePrice:         req.ServicePrice,
		Status:               req.Status,
		Description:          req.Description,
		SpecialInstructions:  req.SpecialInstructions,
		OriginStationID:      req.OriginStationID,
		DestinationStationID: req.DestinationStationID,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, http.StatusNotFound, "Parcel not found", nil)
		case errors.Is(err, service.ErrInvalidStatus):
			respondError(c, http.StatusBadRequest, "Invalid parcel status", nil)
		default:
			respondError(c, http.StatusInternalServerError, "Failed to update parcel", err)
		}
		return
	}
	response.OK(c, parcel)
}

// UpdateParcelStatus 更新包裹状态
func (h *Handler) UpdateParcelStatus(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	status := c.Query("status")
	if status == "" {
		respondError(c, http.StatusBadRequest, "Missing status", nil)
		return
	}

	parcel, err := h.ParcelService.UpdateStatus(id, status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, http.StatusNotFound, "Parcel not found", nil)
		case errors.Is(err, service.ErrInvalidStatus):
			respondError(c, http.StatusBadRequest, "Invalid parcel status", nil)
		default:
			respondError(c, http.StatusInternalServerError, "Failed to update parcel status", err)
		}
		return
	}
	response.OK(c, parcel)
}

// AssignVehicle 将包裹分配到车辆
func (h *Handler) AssignVehicle(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	vehicleID, ok := uintQuery(c, "vehicle_id")
	if !ok {
		return
	}
	if vehicleID == 0 {
		respondError(c, http.StatusBadRequest, "Missing vehicle_id", nil)
		return
	}

	parcel, err := h.ParcelService.AssignVehicle(id, vehicleID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, http.StatusNotFound, "Parcel not found", nil)
		case errors.Is(err, service.ErrVehicleNotFound):
			respondError(c, http.StatusBadRequest, "Vehicle not found", nil)
		default:
			respondError(c, http.StatusInternalServerError, "Failed to assign vehicle", err)
		}
		return
	}
	response.OK(c, parcel)
}

// AssignDeliveryStaff 将包裹分配给派送员
func (h *Handler) AssignDeliveryStaff(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	staffID, ok := uintQuery(c, "delivery_staff_id")
	if !ok {
		return
	}
	if staffID == 0 {
		respondError(c, http.StatusBadRequest, "Missing delivery_staff_id", nil)
		return
	}

	parcel, err := h.ParcelService.AssignDeliveryStaff(id, staffID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, http.StatusNotFound, "Parcel not found", nil)
		case errors.Is(err, service.ErrDeliveryStaffNotFound):
			respondError(c, http.StatusBadRequest, "Delivery staff not found", nil)
		default:
			respondError(c, http.StatusInternalServerError, "Failed to assign delivery staff", err)
		}
		return
	}
	response.OK(c, parcel)
}

// TrackParcel 公开运单轨迹查询
func (h *Handler) TrackParcel(c *gin.Context) {
	info, err := h.ParcelService.Track(c.Param("tracking_number"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Parcel not found", nil)
			return
		}
		respondError(c, http.StatusInternalServerError, "Failed to track parcel", err)
		return
	}
	response.OK(c, info)
}

// DeleteParcel 删除包裹
func (h *Handler) DeleteParcel(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}

	if err := h.ParcelService.Delete(id); err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			respondError(c, http.StatusNotFound, "Parcel not found", nil)
		default:
			respondError(c, http.StatusInternalServerError, "Failed to delete parcel", err)
		}
		return
	}
	response.NoContent(c)
}
