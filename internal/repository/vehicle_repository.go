package repository

import (
	"errors"
	"strings"

	"github.com/parcel-next/internal/models"

	"gorm.io/gorm"
)

// VehicleRepository 车辆数据访问接口
type VehicleRepository interface {
	List(filter VehicleListFilter) ([]models.Vehicle, error)
	GetByID(id uint) (*models.Vehicle, error)
	GetByLicensePlate(licensePlate string) (*models.Vehicle, error)
	Create(vehicle *models.Vehicle) error
	Update(vehicle *models.Vehicle) error
	Delete(id uint) error
	CountByLicensePlate(licensePlate string, excludeID *uint) (int64, error)
	CountParcels(vehicleID uint) (int64, error)
}

// GormVehicleRepository GORM 实现
type GormVehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository 创建车辆仓库
func NewVehicleRepository(db *gorm.DB) *GormVehicleRepository {
	return &GormVehicleRepository{db: db}
}

// List 车辆列表
func (r *GormVehicleRepository) List(filter VehicleListFilter) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	query := r.db.Model(&models.Vehicle{})

	if vehicleType := strings.TrimSpace(filter.Type); vehicleType != "" {
		query = query.Where("LOWER(type) LIKE LOWER(?)", likePattern(vehicleType))
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	query = applySkipLimit(query, filter.Skip, filter.Limit)
	if err := query.Order("id ASC").Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

// GetByID 根据 ID 获取车辆
func (r *GormVehicleRepository) GetByID(id uint) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := r.db.First(&vehicle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vehicle, nil
}

// GetByLicensePlate 根据车牌号获取车辆
func (r *GormVehicleRepository) GetByLicensePlate(licensePlate string) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := r.db.Where("license_plate = ?", licensePlate).First(&vehicle).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vehicle, nil
}

// Create 创建车辆
func (r *GormVehicleRepository) Create(vehicle *models.Vehicle) error {
	return r.db.Create(vehicle).Error
}

// Update 更新车辆
func (r *GormVehicleRepository) Update(vehicle *models.Vehicle) error {
	return r.db.Save(vehicle).Error
}

// Delete 删除车辆
func (r *GormVehicleRepository) Delete(id uint) error {
	return r.db.Delete(&models.Vehicle{}, id).Error
}

// CountByLicensePlate 统计车牌号占用数量，excludeID 用于更新时排除自身
func (r *GormVehicleRepository) CountByLicensePlate(licensePlate string, excludeID *uint) (int64, error) {
	var count int64
	query := r.db.Model(&models.Vehicle{}).Where("license_plate = ?", licensePlate)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountParcels 统计分配给该车辆的包裹数
func (r *GormVehicleRepository) CountParcels(vehicleID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Parcel{}).Where("vehicle_id = ?", vehicleID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
