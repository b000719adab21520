package service

import (
	"strings"

	"github.com/parcel-next/internal/models"
	"github.com/parcel-next/internal/repository"
)

// DeliveryStaffService 派送员业务服务
type DeliveryStaffService struct {
	repo repository.DeliveryStaffRepository
}

// NewDeliveryStaffService 创建派送员服务
func NewDeliveryStaffService(repo repository.DeliveryStaffRepository) *DeliveryStaffService {
	return &DeliveryStaffService{repo: repo}
}

// CreateDeliveryStaffInput 创建派送员输入
type CreateDeliveryStaffInput struct {
	Name       string
	Email      string
	Phone      string
	EmployeeID string
	IsActive   *bool
}

// UpdateDeliveryStaffInput 更新派送员输入，nil 字段不变更
type UpdateDeliveryStaffInput struct {
	Name       *string
	Email      *string
	Phone      *string
	EmployeeID *string
	IsActive   *bool
}

// List 派送员列表
func (s *DeliveryStaffService) List(filter repository.DeliveryStaffListFilter) ([]models.DeliveryStaff, error) {
	return s.repo.List(filter)
}

// GetByID 根据 ID 获取派送员
func (s *DeliveryStaffService) GetByID(id uint) (*models.DeliveryStaff, error) {
	staff, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, ErrNotFound
	}
	return staff, nil
}

// GetByEmployeeID 根据工号获取派送员
func (s *DeliveryStaffService) GetByEmployeeID(employeeID string) (*models.DeliveryStaff, error) {
	staff, err := s.repo.GetByEmployeeID(employeeID)
	if err != nil {
		return nil, err
	}
	if staff == nil {
		return nil, ErrNotFound
	}
	return staff, nil
}

// Create 创建派送员，邮箱与工号都做占用预检
func (s *DeliveryStaffService) Create(input CreateDeliveryStaffInput) (*models.DeliveryStaff, error) {
	email := strings.TrimSpace(input.Email)
	count, err := s.repo.CountByEmail(email, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailRegistered
	}

	employeeID := strings.TrimSpace(input.EmployeeID)
	count, err = s.repo.CountByEmployeeID(employeeID, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmployeeIDRegistered
	}

	staff := models.DeliveryStaff{
		Name:       strings.TrimSpace(input.Name),
		Email:      email,
		Phone:      strings.TrimSpace(input.Phone),
		EmployeeID: employeeID,
		IsActive:   true,
	}
	if input.IsActive != nil {
		staff.IsActive = *input.IsActive
	}
	if err := s.repo.Create(&staff); err != nil {
		return nil, err
	}
	return &staff, nil
}

// Update 部分更新派送员
func (s *DeliveryStaffService) Update(id uint, input UpdateDeliveryStaffInput) (*models.DeliveryStaff, error) {
	staff, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if staff == nil {
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
		staff.Email = email
	}
	if input.EmployeeID != nil {
		employeeID := strings.TrimSpace(*input.EmployeeID)
		count, err := s.repo.CountByEmployeeID(employeeID, &id)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrEmployeeIDRegistered
		}
		staff.EmployeeID = employeeID
	}
	if input.Name != nil {
		staff.Name = strings.TrimSpace(*input.Name)
	}
	if input.Phone != nil {
		staff.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.IsActive != nil {
		staff.IsActive = *input.IsActive
	}

	if err := s.repo.Update(staff); err != nil {
		return nil, err
	}
	return staff, nil
}

// Delete 删除派送员；仍被包裹引用时拒绝删除
func (s *DeliveryStaffService) Delete(id uint) error {
	staff, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if staff == nil {
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
