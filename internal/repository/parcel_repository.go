package repository

import (
	"errors"

	"github.com/parcel-next/internal/models"

	"gorm.io/gorm"
)

// ParcelRepository 包裹数据访问接口
type ParcelRepository interface {
	List(filter ParcelListFilter) ([]models.Parcel, error)
	GetByID(id uint) (*models.Parcel, error)
	GetByTrackingNumber(trackingNumber string) (*models.Parcel, error)
	Create(parcel *models.Parcel) error
	Update(parcel *models.Parcel) error
	Delete(id uint) error
	CountByTrackingNumber(trackingNumber string) (int64, error)
}

// GormParcelRepository GORM 实现
type GormParcelRepository struct {
	db *gorm.DB
}

// NewParcelRepository 创建包裹仓库
func NewParcelRepository(db *gorm.DB) *GormParcelRepository {
	return &GormParcelRepository{db: db}
}

// List 包裹列表
func (r *GormParcelRepository) List(filter ParcelListFilter) ([]models.Parcel, error) {
	var parcels []models.Parcel
	query := r.db.Model(&models.Parcel{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.SenderID > 0 {
		query = query.Where("sender_id = ?", filter.SenderID)
	}
	if filter.ReceiverID > 0 {
		query = query.Where("receiver_id = ?", filter.ReceiverID)
	}

	query = applySkipLimit(query, filter.Skip, filter.Limit)
	if err := query.Order("id ASC").Find(&parcels).Error; err != nil {
		return nil, err
	}
	return parcels, nil
}

// GetByID 根据 ID 获取包裹
func (r *GormParcelRepository) GetByID(id uint) (*models.Parcel, error) {
	var parcel models.Parcel
	if err := r.db.First(&parcel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &parcel, nil
}

// GetByTrackingNumber 根据运单号获取包裹
func (r *GormParcelRepository) GetByTrackingNumber(trackingNumber string) (*models.Parcel, error) {
	var parcel models.Parcel
	if err := r.db.Where("tracking_number = ?", trackingNumber).First(&parcel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &parcel, nil
}

// Create 创建包裹
func (r *GormParcelRepository) Create(parcel *models.Parcel) error {
	return r.db.Create(parcel).Error
}

// Update 更新包裹
func (r *GormParcelRepository) Update(parcel *models.Parcel) error {
	return r.db.Save(parcel).Error
}

// Delete 删除包裹
func (r *GormParcelRepository) Delete(id uint) error {
	return r.db.Delete(&models.Parcel{}, id).Error
}

// CountByTrackingNumber 统计运单号占用数量
func (r *GormParcelRepository) CountByTrackingNumber(trackingNumber string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Parcel{}).Where("tracking_number = ?", trackingNumber).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
