package models

import "time"

// Station 站点表
type Station struct {
	ID         uint      `gorm:"primarykey" json:"id"`             // 主键
	Name       string    `gorm:"index;not null" json:"name"`       // 站点名称
	Code       string    `gorm:"uniqueIndex;not null" json:"code"` // 站点编码
	Address    string    `gorm:"not null" json:"address"`          // 地址
	City       string    `gorm:"index;not null" json:"city"`       // 城市
	State      string    `gorm:"index;not null" json:"state"`      // 省/州
	PostalCode string    `gorm:"not null" json:"postal_code"`      // 邮编
	Phone      string    `gorm:"default:''" json:"phone"`          // 电话
	IsActive   bool      `gorm:"default:true" json:"is_active"`    // 是否启用
	CreatedAt  time.Time `gorm:"index" json:"created_at"`          // 创建时间
	UpdatedAt  time.Time `gorm:"index" json:"updated_at"`          // 更新时间
}

// TableName 指定表名
func (Station) TableName() string {
	return "stations"
}
