package repository

import (
	"errors"
	"strings"

	"github.com/parcel-next/internal/models"

	"gorm.io/gorm"
)

// StationRepository 站点数据访问接口
type StationRepository interface {
	List(filter StationListFilter) ([]models.Station, error)
	GetByID(id uint) (*models.Station, error)
	GetByCode(code string) (*models.Station, error)
	Create(station *models.Station) error
	Update(station *models.Station) error
	Delete(id uint) error
	CountByCode(code string, excludeID *uint) (int64, error)
	CountParcels(stationID uint) (int64, error)
}

// GormStationRepository GORM 实现
type GormStationRepository struct {
	db *gorm.DB
}

// NewStationRepository 创建站点仓库
func NewStationRepository(db *gorm.DB) *GormStationRepository {
	return &GormStationRepository{db: db}
}

// List 站点列表
func (r *GormStationRepository) List(filter StationListFilter) ([]models.Station, error) {
	var stations []models.Station
	query := r.db.Model(&models.Station{})

	if city := strings.TrimSpace(filter.City); city != "" {
		query = query.Where("LOWER(city) LIKE LOWER(?)", likePattern(city))
	}
	if state := strings.TrimSpace(filter.State); state != "" {
		query = query.Where("LOWER(state) LIKE LOWER(?)", likePattern(state))
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}

	query = applySkipLimit(query, filter.Skip, filter.Limit)
	if err := query.Order("id ASC").Find(&stations).Error; err != nil {
		return nil, err
	}
	return stations, nil
}

// GetByID 根据 ID 获取站点
func (r *GormStationRepository) GetByID(id uint) (*models.Station, error) {
	var station models.Station
	if err := r.db.First(&station, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &station, nil
}

// GetByCode 根据站点编码获取站点
func (r *GormStationRepository) GetByCode(code string) (*models.Station, error) {
	var station models.Station
	if err := r.db.Where("code = ?", code).First(&station).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &station, nil
}

// Create 创建站点
func (r *GormStationRepository) Create(station *models.Station) error {
	return r.db.Create(station).Error
}

// Update 更新站点
func (r *GormStationRepository) Update(station *models.Station) error {
	return r.db.Save(station).Error
}

// Delete 删除站点
func (r *GormStationRepository) Delete(id uint) error {
	return r.db.Delete(&models.Station{}, id).Error
}

// CountByCode 统计站点编码占用数量，excludeID 用于更新时排除自身
func (r *GormStationRepository) CountByCode(code string, excludeID *uint) (int64, error) {
	var count int64
	query := r.db.Model(&models.Station{}).Where("code = ?", code)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountParcels 统计以该站点为始发或目的站点的包裹数
func (r *GormStationRepository) CountParcels(stationID uint) (int64, error) {
	var count int64
	if err := r.db.Model(&models.Parcel{}).
		Where("origin_station_id = ? OR destination_station_id = ?", stationID, stationID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
