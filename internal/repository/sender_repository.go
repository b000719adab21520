package repository

import (
	"errors"
	"strings"

	"github.com/parcel-next/internal/models"

	"gorm.io/gorm"
)

// SenderRepository 寄件人数据访问接口
type SenderRepository interface {
	List(filter SenderListFilter) ([]models.Sender, error)
	GetByID(id uint) (*models.Sender, error)
	Create(sender *models.Sender) error
	Update(sender *models.Sender) error
	Delete(id uint) error
	CountByEmail(email string, excludeID *uint) (int64, error)
	CountParcels(senderID uint) (int64, error)
}

// GormSenderRepository GORM 实现
type GormSenderRepository struct {
	db *gorm.DB
}

// NewSenderRepository 创建寄件人仓库
func NewSenderRepository(db *gorm.DB) *GormSenderRepository {
	return &GormSenderRepository{db: db}
}

// List 寄件人列表
func (r *GormSenderRepository) List(filter SenderListFilter) ([]models.Sender, error) {
	var senders []models.Sender
	query := r.db.Model(&models.Sender{})

	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		like := likePattern(search)
		query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(email) LIKE LOWER(?)", like, like)
	}

	query = applySkipLimit(query, filter.Skip, filter.Limit)
	if err := query.Order("id ASC").Find(&senders).Error; err != nil {
		return nil, err
	}
	return senders, nil
}

// GetByID 根据 ID 获取寄件人
func (r *GormSenderRepository) GetByID(id uint) (*models.Sender, error) {
	var sender models.Sender
	if err := r.db.First(&sender, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &sender, nil
}

// Create 创建寄件人
func (r *GormSenderRepository) Create(sender *models.Sender) error {
	return r.db.Create(sender).Error
}

// Update 更新寄件人
func (r *GormSenderRepository) Update(sender *models.Sender) error {
	return r.db.Save(sender).Error
}

// Delete 删除寄件人
func (r *GormSenderRepository) Delete(id uint) error {
	return r.db.Delete(&models.Sender{}, id).Error
}

// CountByEmail 统计邮箱占用数量，excludeID 用于更新时排除自身
func (r *GormSenderRepository) CountByEmail(email string, excludeID *uint) (int64, error) {
	var count int64
	query := r.db.Model(&models.Sender{}).Where("email = ?", email)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountParcels 统计寄件人名下包裹数
func (r *GormSenderRepository) CountParcels(senderID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Parcel{}).Where("sender_id = ?", senderID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
