package models

import "time"

// DeliveryStaff 派送员表
type DeliveryStaff struct {
	ID         uint      `gorm:"primarykey" json:"id"`                    // 主键
	Name       string    `gorm:"index;not null" json:"name"`              // 姓名
	Email      string    `gorm:"uniqueIndex;not null" json:"email"`       // 邮箱
	Phone      string    `gorm:"not null" json:"phone"`                   // 电话
	EmployeeID string    `gorm:"uniqueIndex;not null" json:"employee_id"` // 工号
	IsActive   bool      `gorm:"default:true" json:"is_active"`           // 是否启用
	CreatedAt  time.Time `gorm:"index" json:"created_at"`                 // 创建时间
	UpdatedAt  time.Time `gorm:"index" json:"updated_at"`                 // 更新时间
}

// TableName 指定表名
func (DeliveryStaff) TableName() string {
	return "delivery_staff"
}
