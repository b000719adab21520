package repository

import (
	"errors"

	"github.com/parcel-next/internal/models"

	"gorm.io/gorm"
)

// ItemRepository 货品数据访问接口
type ItemRepository interface {
	List(filter ItemListFilter) ([]models.Item, error)
	GetByID(id uint) (*models.Item, error)
	Create(item *models.Item) error
	Update(item *models.Item) error
	Delete(id uint) error
}

// GormItemRepository GORM 实现
type GormItemRepository struct {
	db *gorm.DB
}

// NewItemRepository 创建货品仓库
func NewItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// List 货品列表
func (r *GormItemRepository) List(filter ItemListFilter) ([]models.Item, error) {
	var items []models.Item
	query := r.db.Model(&models.Item{})

	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}

	query = applySkipLimit(query, filter.Skip, filter.Limit)
	if err := query.Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID 根据 ID 获取货品
func (r *GormItemRepository) GetByID(id uint) (*models.Item, error) {
	var item models.Item
	if err := r.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// Create 创建货品
func (r *GormItemRepository) Create(item *models.Item) error {
	return r.db.Create(item).Error
}

// Update 更新货品
func (r *GormItemRepository) Update(item *models.Item) error {
	return r.db.Save(item).Error
}

// Delete 删除货品
func (r *GormItemRepository) Delete(id uint) error {
	return r.db.Delete(&models.Item{}, id).Error
}
