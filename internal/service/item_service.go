package service

import (
	"github.com/parcel-next/internal/models"
	"github.com/parcel-next/internal/repository"
)

// ItemService 货品业务服务
type ItemService struct {
	repo         repository.ItemRepository
	customerRepo repository.CustomerRepository
}

// NewItemService 创建货品服务
func NewItemService(repo repository.ItemRepository, customerRepo repository.CustomerRepository) *ItemService {
	return &ItemService{repo: repo, customerRepo: customerRepo}
}

// CreateItemInput 创建货品输入
type CreateItemInput struct {
	Weight       float64
	ServicePrice models.Money
	CustomerID   *uint
}

// UpdateItemInput 更新货品输入，nil 字段不变更
type UpdateItemInput struct {
	Weight       *float64
	ServicePrice *models.Money
	CustomerID   *uint
}

// List 货品列表
func (s *ItemService) List(filter repository.ItemListFilter) ([]models.Item, error) {
	return s.repo.List(filter)
}

// GetByID 根据 ID 获取货品
func (s *ItemService) GetByID(id uint) (*models.Item, error) {
	item, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}
	return item, nil
}

// Create 创建货品；指定了客户时校验客户存在
func (s *ItemService) Create(input CreateItemInput) (*models.Item, error) {
	if input.CustomerID != nil {
		if err := s.checkCustomer(*input.CustomerID); err != nil {
			return nil, err
		}
	}

	item := models.Item{
		Weight:       input.Weight,
		ServicePrice: input.ServicePrice,
		CustomerID:   input.CustomerID,
	}
	if err := s.repo.Create(&item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Update 部分更新货品
func (s *ItemService) Update(id uint, input UpdateItemInput) (*models.Item, error) {
	item, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrNotFound
	}

	if input.CustomerID != nil {
		if err := s.checkCustomer(*input.CustomerID); err != nil {
			return nil, err
		}
		item.CustomerID = input.CustomerID
	}
	if input.Weight != nil {
		item.Weight = *input.Weight
	}
	if input.ServicePrice != nil {
		item.ServicePrice = *input.ServicePrice
	}

	if err := s.repo.Update(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Delete 删除货品
func (s *ItemService) Delete(id uint) error {
	item, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if item == nil {
		return ErrNotFound
	}
	return s.repo.Delete(id)
}

func (s *ItemService) checkCustomer(customerID uint) error {
	customer, err := s.customerRepo.GetByID(customerID)
	if err != nil {
		return err
	}
	if customer == nil {
		return ErrCustomerNotFound
	}
	return nil
}
