package repository

import (
	"errors"
	"strings"

	"github.com/parcel-next/internal/models"

	"gorm.io/gorm"
)

// ReceiverRepository 收件人数据访问接口
type ReceiverRepository interface {
	List(filter ReceiverListFilter) ([]models.Receiver, error)
	GetByID(id uint) (*models.Receiver, error)
	GetByEmail(email string) (*models.Receiver, error)
	Create(receiver *models.Receiver) error
	Update(receiver *models.Receiver) error
	Delete(id uint) error
	CountByEmail(email string, excludeID *uint) (int64, error)
	CountParcels(receiverID uint) (int64, error)
}

// GormReceiverRepository GORM 实现
type GormReceiverRepository struct {
	db *gorm.DB
}

// NewReceiverRepository 创建收件人仓库
func NewReceiverRepository(db *gorm.DB) *GormReceiverRepository {
	return &GormReceiverRepository{db: db}
}

// List 收件人列表
func (r *GormReceiverRepository) List(filter ReceiverListFilter) ([]models.Receiver, error) {
	var receivers []models.Receiver
	query := r.db.Model(&models.Receiver{})

	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := likePattern(search)
		query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?)", like, like)
	}

	query = applySkipLimit(query, filter.Skip, filter.Limit)
	if err := query.Order("id ASC").Find(&receivers).Error; err != nil {
		return nil, err
	}
	return receivers, nil
}

// GetByID 根据 ID 获取收件人
func (r *GormReceiverRepository) GetByID(id uint) (*models.Receiver, error) {
	var receiver models.Receiver
	if err := r.db.First(&receiver, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &receiver, nil
}

// GetByEmail 根据邮箱获取收件人
func (r *GormReceiverRepository) GetByEmail(email string) (*models.Receiver, error) {
	var receiver models.Receiver
	if err := r.db.Where("email = ?", email).First(&receiver).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &receiver, nil
}

// Create 创建收件人
func (r *GormReceiverRepository) Create(receiver *models.Receiver) error {
	return r.db.Create(receiver).Error
}

// Update 更新收件人
func (r *GormReceiverRepository) Update(receiver *models.Receiver) error {
	return r.db.Save(receiver).Error
}

// Delete 删除收件人
func (r *GormReceiverRepository) Delete(id uint) error {
	return r.db.Delete(&models.Receiver{}, id).Error
}

// CountByEmail 统计邮箱占用数量，excludeID 用于更新时排除自身
func (r *GormReceiverRepository) CountByEmail(email string, excludeID *uint) (int64, error) {
	var count int64
	query := r.db.Model(&models.Receiver{}).Where("email = ?", email)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountParcels 统计收件人名下包裹数
func (r *GormReceiverRepository) CountParcels(receiverID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Parcel{}).Where("receiver_id = ?", receiverID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
