package service

import (
	"strings"

	"github.com/parcel-next/internal/models"
	"github.com/parcel-next/internal/repository"
)

// ReceiverService 收件人业务服务
type ReceiverService struct {
	repo repository.ReceiverRepository
}

// NewReceiverService 创建收件人服务
func NewReceiverService(repo repository.ReceiverRepository) *ReceiverService {
	return &ReceiverService{repo: repo}
}

// CreateReceiverInput 创建收件人输入
type CreateReceiverInput struct {
	Name     string
	Email    string
	Phone    string
	Address  string
	IsActive *bool
}

// UpdateReceiverInput 更新收件人输入，nil 字段不变更
type UpdateReceiverInput struct {
	Name     *string
	Email    *string
	Phone    *string
	Address  *string
	IsActive *bool
}

// List 收件人列表
func (s *ReceiverService) List(filter repository.ReceiverListFilter) ([]models.Receiver, error) {
	return s.repo.List(filter)
}

// GetByID 根据 ID 获取收件人
func (s *ReceiverService) GetByID(id uint) (*models.Receiver, error) {
	receiver, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if receiver == nil {
		return nil, ErrNotFound
	}
	return receiver, nil
}

// Create 创建收件人，邮箱冲突返回 ErrEmailRegistered
func (s *ReceiverService) Create(input CreateReceiverInput) (*models.Receiver, error) {
	email := strings.TrimSpace(input.Email)
	count, err := s.repo.CountByEmail(email, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailRegistered
	}

	receiver := models.Receiver{
		Name:     strings.TrimSpace(input.Name),
		Email:    email,
		Phone:    strings.TrimSpace(input.Phone),
		Address:  strings.TrimSpace(input.Address),
		IsActive: true,
	}
	if input.IsActive != nil {
		receiver.IsActive = *input.IsActive
	}
	if err := s.repo.Create(&receiver); err != nil {
		return nil, err
	}
	return &receiver, nil
}

// Update 部分更新收件人
func (s *ReceiverService) Update(id uint, input UpdateReceiverInput) (*models.Receiver, error) {
	receiver, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if receiver == nil {
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
		receiver.Email = email
	}
	if input.Name != nil {
		receiver.Name = strings.TrimSpace(*input.Name)
	}
	if input.Phone != nil {
		receiver.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.Address != nil {
		receiver.Address = strings.TrimSpace(*input.Address)
	}
	if input.IsActive != nil {
		receiver.IsActive = *input.IsActive
	}

	if err := s.repo.Update(receiver); err != nil {
		return nil, err
	}
	return receiver, nil
}

// SetActive 启用/停用收件人
func (s *ReceiverService) SetActive(id uint, active bool) (*models.Receiver, error) {
	receiver, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if receiver == nil {
		return nil, ErrNotFound
	}

	receiver.IsActive = active
	if err := s.repo.Update(receiver); err != nil {
		return nil, err
	}
	return receiver, nil
}

// Delete 删除收件人；仍有关联包裹时拒绝删除
func (s *ReceiverService) Delete(id uint) error {
	receiver, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if receiver == nil {
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
