package service

import (
	"strings"

	"github.com/parcel-next/internal/models"
	"github.com/parcel-next/internal/repository"
)

// SenderService 寄件人业务服务
type SenderService struct {
	repo repository.SenderRepository
}

// NewSenderService 创建寄件人服务
func NewSenderService(repo repository.SenderRepository) *SenderService {
	return &SenderService{repo: repo}
}

// CreateSenderInput 创建寄件人输入
type CreateSenderInput struct {
	Name     string
	Email    string
	Phone    string
	Address  string
	IsActive *bool
}

// UpdateSenderInput 更新寄件人输入，nil 字段不变更
type UpdateSenderInput struct {
	Name     *string
	Email    *string
	Phone    *string
	Address  *string
	IsActive *bool
}

// List 寄件人列表
func (s *SenderService) List(filter repository.SenderListFilter) ([]models.Sender, error) {
	return s.repo.List(filter)
}

// GetByID 根据 ID 获取寄件人
func (s *SenderService) GetByID(id uint) (*models.Sender, error) {
	sender, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sender == nil {
		return nil, ErrNotFound
	}
	return sender, nil
}

// Create 创建寄件人，邮箱冲突返回 ErrEmailRegistered
func (s *SenderService) Create(input CreateSenderInput) (*models.Sender, error) {
	email := strings.TrimSpace(input.Email)
	count, err := s.repo.CountByEmail(email, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailRegistered
	}

	sender := models.Sender{
		Name:     strings.TrimSpace(input.Name),
		Email:    email,
		Phone:    strings.TrimSpace(input.Phone),
		Address:  strings.TrimSpace(input.Address),
		IsActive: true,
	}
	if input.IsActive != nil {
		sender.IsActive = *input.IsActive
	}
	if err := s.repo.Create(&sender); err != nil {
		return nil, err
	}
	return &sender, nil
}

// Update 部分更新寄件人
func (s *SenderService) Update(id uint, input UpdateSenderInput) (*models.Sender, error) {
	sender, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sender == nil {
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
		sender.Email = email
	}
	if input.Name != nil {
		sender.Name = strings.TrimSpace(*input.Name)
	}
	if input.Phone != nil {
		sender.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.Address != nil {
		sender.Address = strings.TrimSpace(*input.Address)
	}
	if input.IsActive != nil {
		sender.IsActive = *input.IsActive
	}

	if err := s.repo.Update(sender); err != nil {
		return nil, err
	}
	return sender, nil
}

// Delete 删除寄件人；仍有关联包裹时拒绝删除
func (s *SenderService) Delete(id uint) error {
	sender, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if sender == nil {
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
