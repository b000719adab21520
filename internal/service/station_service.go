package service

import (
	"strings"

	"github.com/parcel-next/internal/models"
	"github.com/parcel-next/internal/repository"
)

// StationService 站点业务服务
type StationService struct {
	repo repository.StationRepository
}

// NewStationService 创建站点服务
func NewStationService(repo repository.StationRepository) *StationService {
	return &StationService{repo: repo}
}

// CreateStationInput 创建站点输入
type CreateStationInput struct {
	Name       string
	Code       string
	Address    string
	City       string
	State      string
	PostalCode string
	Phone      string
	IsActive   *bool
}

// UpdateStationInput 更新站点输入，nil 字段不变更
type UpdateStationInput struct {
	Name       *string
	Code       *string
	Address    *string
	City       *string
	State      *string
	PostalCode *string
	Phone      *string
	IsActive   *bool
}

// List 站点列表
func (s *StationService) List(filter repository.StationListFilter) ([]models.Station, error) {
	return s.repo.List(filter)
}

// GetByID 根据 ID 获取站点
func (s *StationService) GetByID(id uint) (*models.Station, error) {
	station, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if station == nil {
		return nil, ErrNotFound
	}
	return station, nil
}

// GetByCode 根据站点编码获取站点
func (s *StationService) GetByCode(code string) (*models.Station, error) {
	station, err := s.repo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if station == nil {
		return nil, ErrNotFound
	}
	return station, nil
}

// Create 创建站点，编码冲突返回 ErrStationCodeRegistered
func (s *StationService) Create(input CreateStationInput) (*models.Station, error) {
	code := strings.TrimSpace(input.Code)
	count, err := s.repo.CountByCode(code, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrStationCodeRegistered
	}

	station := models.Station{
		Name:       strings.TrimSpace(input.Name),
		Code:       code,
		Address:    strings.TrimSpace(input.Address),
		City:       strings.TrimSpace(input.City),
		State:      strings.TrimSpace(input.State),
		PostalCode: strings.TrimSpace(input.PostalCode),
		Phone:      strings.TrimSpace(input.Phone),
		IsActive:   true,
	}
	if input.IsActive != nil {
		station.IsActive = *input.IsActive
	}
	if err := s.repo.Create(&station); err != nil {
		return nil, err
	}
	return &station, nil
}

// Update 部分更新站点
func (s *StationService) Update(id uint, input UpdateStationInput) (*models.Station, error) {
	station, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if station == nil {
		return nil, ErrNotFound
	}

	if input.Code != nil {
		code := strings.TrimSpace(*input.Code)
		count, err := s.repo.CountByCode(code, &id)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrStationCodeRegistered
		}
		station.Code = code
	}
	if input.Name != nil {
		station.Name = strings.TrimSpace(*input.Name)
	}
	if input.Address != nil {
		station.Address = strings.TrimSpace(*input.Address)
	}
	if input.City != nil {
		station.City = strings.TrimSpace(*input.City)
	}
	if input.State != nil {
		station.State = strings.TrimSpace(*input.State)
	}
	if input.PostalCode != nil {
		station.PostalCode = strings.TrimSpace(*input.PostalCode)
	}
	if input.Phone != nil {
		station.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.IsActive != nil {
		station.IsActive = *input.IsActive
	}

	if err := s.repo.Update(station); err != nil {
		return nil, err
	}
	return station, nil
}

// Delete 删除站点；仍被包裹引用时拒绝删除
func (s *StationService) Delete(id uint) error {
	station, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if station == nil {
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
