package service

import (
	"strings"

	"github.com/parcel-next/internal/models"
	"github.com/parcel-next/internal/repository"
)

// VehicleService 车辆业务服务
type VehicleService struct {
	repo repository.VehicleRepository
}

// NewVehicleService 创建车辆服务
func NewVehicleService(repo repository.VehicleRepository) *VehicleService {
	return &VehicleService{repo: repo}
}

// CreateVehicleInput 创建车辆输入
type CreateVehicleInput struct {
	LicensePlate string
	Type         string
	Capacity     float64
	IsActive     *bool
}

// UpdateVehicleInput 更新车辆输入，nil 字段不变更
type UpdateVehicleInput struct {
	LicensePlate *string
	Type         *string
	Capacity     *float64
	IsActive     *bool
}

// List 车辆列表
func (s *VehicleService) List(filter repository.VehicleListFilter) ([]models.Vehicle, error) {
	return s.repo.List(filter)
}

// GetByID 根据 ID 获取车辆
func (s *VehicleService) GetByID(id uint) (*models.Vehicle, error) {
	vehicle, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, ErrNotFound
	}
	return vehicle, nil
}

// GetByLicensePlate 根据车牌号获取车辆
func (s *VehicleService) GetByLicensePlate(licensePlate string) (*models.Vehicle, error) {
	vehicle, err := s.repo.GetByLicensePlate(licensePlate)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, ErrNotFound
	}
	return vehicle, nil
}

// Create 创建车辆，车牌冲突返回 ErrLicensePlateRegistered
func (s *VehicleService) Create(input CreateVehicleInput) (*models.Vehicle, error) {
	licensePlate := strings.TrimSpace(input.LicensePlate)
	count, err := s.repo.CountByLicensePlate(licensePlate, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrLicensePlateRegistered
	}

	vehicle := models.Vehicle{
		LicensePlate: licensePlate,
		Type:         strings.TrimSpace(input.Type),
		Capacity:     input.Capacity,
		IsActive:     true,
	}
	if input.IsActive != nil {
		vehicle.IsActive = *input.IsActive
	}
	if err := s.repo.Create(&vehicle); err != nil {
		return nil, err
	}
	return &vehicle, nil
}

// Update 部分更新车辆
func (s *VehicleService) Update(id uint, input UpdateVehicleInput) (*models.Vehicle, error) {
	vehicle, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, ErrNotFound
	}

	if input.LicensePlate != nil {
		licensePlate := strings.TrimSpace(*input.LicensePlate)
		count, err := s.repo.CountByLicensePlate(licensePlate, &id)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrLicensePlateRegistered
		}
		vehicle.LicensePlate = licensePlate
	}
	if input.Type != nil {
		vehicle.Type = strings.TrimSpace(*input.Type)
	}
	if input.Capacity != nil {
		vehicle.Capacity = *input.Capacity
	}
	if input.IsActive != nil {
		vehicle.IsActive = *input.IsActive
	}

	if err := s.repo.Update(vehicle); err != nil {
		return nil, err
	}
	return vehicle, nil
}

// Delete 删除车辆；仍被包裹引用时拒绝删除
func (s *VehicleService) Delete(id uint) error {
	vehicle, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if vehicle == nil {
		return ErrNotFound
	}

	count, err := s.repo.CountParcels(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrEntityReferenced
	}
	return s.repo.Delete(id)
}
