package service

import (
	"time"

	"github.com/parcel-next/internal/constants"
	"github.com/parcel-next/internal/models"
	"github.com/parcel-next/internal/repository"
)

// ParcelService 包裹业务服务
type ParcelService struct {
	repo        repository.ParcelRepository
	stationRepo repository.StationRepository
	vehicleRepo repository.VehicleRepository
	staffRepo   repository.DeliveryStaffRepository
	generator   *TrackingNumberGenerator
}

// NewParcelService 创建包裹服务
func NewParcelService(
	repo repository.ParcelRepository,
	stationRepo repository.StationRepository,
	vehicleRepo repository.VehicleRepository,
	staffRepo repository.DeliveryStaffRepository,
	generator *TrackingNumberGenerator,
) *ParcelService {
	return &ParcelService{
		repo:        repo,
		stationRepo: stationRepo,
		vehicleRepo: vehicleRepo,
		staffRepo:   staffRepo,
		generator:   generator,
	}
}

// CreateParcelInput 创建包裹输入；运单号由服务端生成，不接受外部指定
type CreateParcelInput struct {
	Weight               float64
	Length               float64
	Width                float64
	Height               float64
	ServicePrice         models.Money
	Status               *string // 可选初始状态，缺省 created
	Description          string
	SpecialInstructions  string
	SenderID             uint
	ReceiverID           uint
	OriginStationID      *uint
	DestinationStationID *uint
}

// UpdateParcelInput 更新包裹输入，nil 字段不变更；运单号不可变更
type UpdateParcelInput struct {
	Weight               *float64
	Length               *float64
	Width                *float64
	Height               *float64
	ServicePrice         *models.Money
	Status               *string
	Description          *string
	SpecialInstructions  *string
	OriginStationID      *uint
	DestinationStationID *uint
}

// TrackingInfo 面向公开查询的包裹轨迹投影，只暴露非敏感字段
type TrackingInfo struct {
	TrackingNumber         string    `json:"tracking_number"`
	Status                 string    `json:"status"`
	OriginStationName      *string   `json:"origin_station_name"`
	DestinationStationName *string   `json:"destination_station_name"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// List 包裹列表
func (s *ParcelService) List(filter repository.ParcelListFilter) ([]models.Parcel, error) {
	return s.repo.List(filter)
}

// GetByID 根据 ID 获取包裹
func (s *ParcelService) GetByID(id uint) (*models.Parcel, error) {
	parcel, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if parcel == nil {
		return nil, ErrNotFound
	}
	return parcel, nil
}

// GetByTrackingNumber 根据运单号获取包裹
func (s *ParcelService) GetByTrackingNumber(trackingNumber string) (*models.Parcel, error) {
	parcel, err := s.repo.GetByTrackingNumber(trackingNumber)
	if err != nil {
		return nil, err
	}
	if parcel == nil {
		return nil, ErrNotFound
	}
	return parcel, nil
}

// Create 创建包裹并生成唯一运单号，初始状态缺省为 created
func (s *ParcelService) Create(input CreateParcelInput) (*models.Parcel, error) {
	status := constants.ParcelStatusCreated
	if input.Status != nil && *input.Status != "" {
		if !constants.IsValidParcelStatus(*input.Status) {
			return nil, ErrInvalidStatus
		}
		status = *input.Status
	}

	trackingNumber, err := s.generator.Generate(func(candidate string) (bool, error) {
		count, err := s.repo.CountByTrackingNumber(candidate)
		if err != nil {
			return false, err
		}
		return count > 0, nil
	})
	if err != nil {
		return nil, err
	}

	parcel := models.Parcel{
		TrackingNumber:       trackingNumber,
		Weight:               input.Weight,
		Length:               input.Length,
		Width:                input.Width,
		Height:               input.Height,
		ServicePrice:         input.ServicePrice,
		Status:               status,
		Description:          input.Description,
		SpecialInstructions:  input.SpecialInstructions,
		SenderID:             input.SenderID,
		ReceiverID:           input.ReceiverID,
		OriginStationID:      input.OriginStationID,
		DestinationStationID: input.DestinationStationID,
	}
	if err := s.repo.Create(&parcel); err != nil {
		return nil, err
	}
	return &parcel, nil
}

// Update 部分更新包裹；带状态变更时校验状态合法性
func (s *ParcelService) Update(id uint, input UpdateParcelInput) (*models.Parcel, error) {
	parcel, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if parcel == nil {
		return nil, ErrNotFound
	}

	if input.Status != nil {
		if !constants.IsValidParcelStatus(*input.Status) {
			return nil, ErrInvalidStatus
		}
		parcel.Status = *input.Status
	}
	if input.Weight != nil {
		parcel.Weight = *input.Weight
	}
	if input.Length != nil {
		parcel.Length = *input.Length
	}
	if input.Width != nil {
		parcel.Width = *input.Width
	}
	if input.Height != nil {
		parcel.Height = *input.Height
	}
	if input.ServicePrice != nil {
		parcel.ServicePrice = *input.ServicePrice
	}
	if input.Description != nil {
		parcel.Description = *input.Description
	}
	if input.SpecialInstructions != nil {
		parcel.SpecialInstructions = *input.SpecialInstructions
	}
	if input.OriginStationID != nil {
		parcel.OriginStationID = input.OriginStationID
	}
	if input.DestinationStationID != nil {
		parcel.DestinationStationID = input.DestinationStationID
	}

	if err := s.repo.Update(parcel); err != nil {
		return nil, err
	}
	return parcel, nil
}

// UpdateStatus 更新包裹状态
func (s *ParcelService) UpdateStatus(id uint, status string) (*models.Parcel, error) {
	if !constants.IsValidParcelStatus(status) {
		return nil, ErrInvalidStatus
	}

	parcel, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if parcel == nil {
		return nil, ErrNotFound
	}

	parcel.Status = status
	if err := s.repo.Update(parcel); err != nil {
		return nil, err
	}
	return parcel, nil
}

// AssignVehicle 将包裹分配到车辆，车辆必须存在
func (s *ParcelService) AssignVehicle(id, vehicleID uint) (*models.Parcel, error) {
	parcel, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if parcel == nil {
		return nil, ErrNotFound
	}

	vehicle, err := s.vehicleRepo.GetByID(vehicleID)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, ErrVehicleNotFound
	}

	parcel.VehicleID = &vehicleID
	if err := s.repo.Update(parcel); err != nil {
		return nil, err
	}
	return parcel, nil
}

// AssignDeliveryStaff 将包裹分配给派送员，派送员必须存在
func (s *ParcelService) AssignDeliveryStaff(id, staffID uint) (*models.Parcel, error) {
	parcel, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if parcel == nil {
		return nil, ErrNotFound
	}

	staff, err := s.staffRepo.GetByID(staffID)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, ErrDeliveryStaffNotFound
	}

	parcel.DeliveryStaffID = &staffID
	if err := s.repo.Update(parcel); err != nil {
		return nil, err
	}
	return parcel, nil
}

// Track 公开轨迹查询：按运单号返回脱敏后的状态投影。
// 站点名称按需加载，站点缺失时对应字段为 null。
func (s *ParcelService) Track(trackingNumber string) (*TrackingInfo, error) {
	parcel, err := s.repo.GetByTrackingNumber(trackingNumber)
	if err != nil {
		return nil, err
	}
	if parcel == nil {
		return nil, ErrNotFound
	}

	info := TrackingInfo{
		TrackingNumber: parcel.TrackingNumber,
		Status:         parcel.Status,
		CreatedAt:      parcel.CreatedAt,
		UpdatedAt:      parcel.UpdatedAt,
	}

	if parcel.OriginStationID != nil {
		name, err := s.stationName(*parcel.OriginStationID)
		if err != nil {
			return nil, err
		}
		info.OriginStationName = name
	}
	if parcel.DestinationStationID != nil {
		name, err := s.stationName(*parcel.DestinationStationID)
		if err != nil {
			return nil, err
		}
		info.DestinationStationName = name
	}
	return &info, nil
}

// Delete 删除包裹
func (s *ParcelService) Delete(id uint) error {
	parcel, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if parcel == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

func (s *ParcelService) stationName(stationID uint) (*string, error) {
	station, err := s.stationRepo.GetByID(stationID)
	if err != nil {
		return nil, err
	}
	if station == nil {
		return nil, nil
	}
	return &station.Name, nil
}
