package models

import "time"

// Item 货品表
type Item struct {
	ID           uint      `gorm:"primarykey" json:"id"`                                       // 主键
	Weight       float64   `gorm:"not null" json:"weight"`                                     // 重量（kg）
	ServicePrice Money     `gorm:"type:decimal(20,2);not null;default:0" json:"service_price"` // 服务费
	CustomerID   *uint     `gorm:"index" json:"customer_id"`                                   // 所属客户（可空）
	CreatedAt    time.Time `gorm:"index" json:"created_at"`                                    // 创建时间
	UpdatedAt    time.Time `gorm:"index" json:"updated_at"`                                    // 更新时间
}

// TableName 指定表名
func (Item) TableName() string {
	return "items"
}
