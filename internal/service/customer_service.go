package service

import (
	"strings"

	"github.com/parcel-next/internal/models"
	"github.com/parcel-next/internal/repository"
)

// CustomerService 客户业务服务
type CustomerService struct {
	repo repository.CustomerRepository
}

// NewCustomerService 创建客户服务
func NewCustomerService(repo repository.CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

// CreateCustomerInput 创建客户输入
type CreateCustomerInput struct {
	Name     string
	Email    string
	Phone    string
	Address  string
	IsActive *bool
}

// UpdateCustomerInput 更新客户输入，nil 字段不变更
type UpdateCustomerInput struct {
	Name     *string
	Email    *string
	Phone    *string
	Address  *string
	IsActive *bool
}

// List 客户列表
func (s *CustomerService) List(filter repository.CustomerListFilter) ([]models.Customer, error) {
	return s.repo.List(filter)
}

// GetByID 根据 ID 获取客户
func (s *CustomerService) GetByID(id uint) (*models.Customer, error) {
	customer, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrNotFound
	}
	return customer, nil
}

// GetByEmail 根据邮箱获取客户
func (s *CustomerService) GetByEmail(email string) (*models.Customer, error) {
	customer, err := s.repo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrNotFound
	}
	return customer, nil
}

// Create 创建客户，邮箱冲突返回 ErrEmailRegistered
func (s *CustomerService) Create(input CreateCustomerInput) (*models.Customer, error) {
	email := strings.TrimSpace(input.Email)
	count, err := s.repo.CountByEmail(email, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailRegistered
	}

	customer := models.Customer{
		Name:     strings.TrimSpace(input.Name),
		Email:    email,
		Phone:    strings.TrimSpace(input.Phone),
		Address:  strings.TrimSpace(input.Address),
		IsActive: true,
	}
	if input.IsActive != nil {
		customer.IsActive = *input.IsActive
	}
	if err := s.repo.Create(&customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// Update 部分更新客户，未提供的字段保持不变
func (s *CustomerService) Update(id uint, input UpdateCustomerInput) (*models.Customer, error) {
	customer, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrNotFound
	}

	if input.Email != nil {
		email := strings.TrimSpace(*input.Email)
		count, err := s.repo.CountByEmail(email, &id)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrEmailRegistered
		}
		customer.Email = email
	}
	if input.Name != nil {
		customer.Name = strings.TrimSpace(*input.Name)
	}
	if input.Phone != nil {
		customer.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.Address != nil {
		customer.Address = strings.TrimSpace(*input.Address)
	}
	if input.IsActive != nil {
		customer.IsActive = *input.IsActive
	}

	if err := s.repo.Update(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// SetActive 启用/停用客户
func (s *CustomerService) SetActive(id uint, active bool) (*models.Customer, error) {
	customer, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, ErrNotFound
	}

	customer.IsActive = active
	if err := s.repo.Update(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// Delete 删除客户；名下仍有货品时拒绝删除
func (s *CustomerService) Delete(id uint) error {
	customer, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if customer == nil {
		return ErrNotFound
	}

	count, err := s.repo.CountItems(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrEntityReferenced
	}
	return s.repo.Delete(id)
}
