package repository

import (
	"errors"

	"github.com/parcel-next/internal/models"

	"gorm.io/gorm"
)

// DeliveryStaffRepository 派送员数据访问接口
type DeliveryStaffRepository interface {
	List(filter DeliveryStaffListFilter) ([]models.DeliveryStaff, error)
	GetByID(id uint) (*models.DeliveryStaff, error)
	GetByEmployeeID(employeeID string) (*models.DeliveryStaff, error)
	Create(staff *models.DeliveryStaff) error
	Update(staff *models.DeliveryStaff) error
	Delete(id uint) error
	CountByEmail(email string, excludeID *uint) (int64, error)
	CountByEmployeeID(employeeID string, excludeID *uint) (int64, error)
	CountParcels(staffID uint) (int64, error)
}

// GormDeliveryStaffRepository GORM 实现
type GormDeliveryStaffRepository struct {
	db *gorm.DB
}

// NewDeliveryStaffRepository 创建派送员仓库
func NewDeliveryStaffRepository(db *gorm.DB) *GormDeliveryStaffRepository {
	return &GormDeliveryStaffRepository{db: db}
}

// List 派送员列表
func (r *GormDeliveryStaffRepository) List(filter DeliveryStaffListFilter) ([]models.DeliveryStaff, error) {
	var staff []models.DeliveryStaff
	query := r.db.Model(&models.DeliveryStaff{})

	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	query = applySkipLimit(query, filter.Skip, filter.Limit)
	if err := query.Order("id ASC").Find(&staff).Error; err != nil {
		return nil, err
	}
	return staff, nil
}

// GetByID 根据 ID 获取派送员
func (r *GormDeliveryStaffRepository) GetByID(id uint) (*models.DeliveryStaff, error) {
	var staff models.DeliveryStaff
	if err := r.db.First(&staff, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &staff, nil
}

// GetByEmployeeID 根据工号获取派送员
func (r *GormDeliveryStaffRepository) GetByEmployeeID(employeeID string) (*models.DeliveryStaff, error) {
	var staff models.DeliveryStaff
	if err := r.db.Where("employee_id = ?", employeeID).First(&staff).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &staff, nil
}

// Create 创建派送员
func (r *GormDeliveryStaffRepository) Create(staff *models.DeliveryStaff) error {
	return r.db.Create(staff).Error
}

// Update 更新派送员
func (r *GormDeliveryStaffRepository) Update(staff *models.DeliveryStaff) error {
	return r.db.Save(staff).Error
}

// Delete 删除派送员
func (r *GormDeliveryStaffRepository) Delete(id uint) error {
	return r.db.Delete(&models.DeliveryStaff{}, id).Error
}

// CountByEmail 统计邮箱占用数量，excludeID 用于更新时排除自身
func (r *GormDeliveryStaffRepository) CountByEmail(email string, excludeID *uint) (int64, error) {
	var count int64
	query := r.db.Model(&models.DeliveryStaff{}).Where("email = ?", email)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByEmployeeID 统计工号占用数量，excludeID 用于更新时排除自身
func (r *GormDeliveryStaffRepository) CountByEmployeeID(employeeID string, excludeID *uint) (int64, error) {
	var count int64
	query := r.db.Model(&models.DeliveryStaff{}).Where("employee_id = ?", employeeID)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountParcels 统计分配给该派送员的包裹数
func (r *GormDeliveryStaffRepository) CountParcels(staffID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Parcel{}).Where("delivery_staff_id = ?", staffID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
