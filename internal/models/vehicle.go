package models

import "time"

// Vehicle 运输车辆表
type Vehicle struct {
	ID           uint      `gorm:"primarykey" json:"id"`                      // 主键
	LicensePlate string    `gorm:"uniqueIndex;not null" json:"license_plate"` // 车牌号
	Type         string    `gorm:"index;not null" json:"type"`                // 车型（truck/van/motorcycle 等）
	Capacity     float64   `gorm:"not null" json:"capacity"`                  // 载重（kg）
	IsActive     bool      `gorm:"default:true" json:"is_active"`             // 是否启用
	CreatedAt    time.Time `gorm:"index" json:"created_at"`                   // 创建时间
	UpdatedAt    time.Time `gorm:"index" json:"updated_at"`                   // 更新时间
}

// TableName 指定表名
func (Vehicle) TableName() string {
	return "vehicles"
}
