package models

import "time"

// Parcel 包裹表
// tracking_number 生成后不可变更；状态取值见 constants.ParcelStatuses
type Parcel struct {
	ID                   uint      `gorm:"primarykey" json:"id"`                                       // 主键
	TrackingNumber       string    `gorm:"uniqueIndex;not null" json:"tracking_number"`                // 运单号
	Weight               float64   `gorm:"not null" json:"weight"`                                     // 重量（kg）
	Length               float64   `gorm:"not null" json:"length"`                                     // 长
	Width                float64   `gorm:"not null" json:"width"`                                      // 宽
	Height               float64   `gorm:"not null" json:"height"`                                     // 高
	ServicePrice         Money     `gorm:"type:decimal(20,2);not null;default:0" json:"service_price"` // 服务费
	Status               string    `gorm:"index;not null;default:'created'" json:"status"`             // 包裹状态
	Description          string    `gorm:"default:''" json:"description"`                              // 描述
	SpecialInstructions  string    `gorm:"default:''" json:"special_instructions"`                     // 特殊说明
	SenderID             uint      `gorm:"index;not null" json:"sender_id"`                            // 寄件人（必填外键）
	ReceiverID           uint      `gorm:"index;not null" json:"receiver_id"`                          // 收件人（必填外键）
	OriginStationID      *uint     `gorm:"index" json:"origin_station_id"`                             // 始发站点（可空）
	DestinationStationID *uint     `gorm:"index" json:"destination_station_id"`                        // 目的站点（可空）
	VehicleID            *uint     `gorm:"index" json:"vehicle_id"`                                    // 运输车辆（可空）
	DeliveryStaffID      *uint     `gorm:"index" json:"delivery_staff_id"`                             // 派送员（可空）
	CreatedAt            time.Time `gorm:"index" json:"created_at"`                                    // 创建时间
	UpdatedAt            time.Time `gorm:"index" json:"updated_at"`                                    // 更新时间
}

// TableName 指定表名
func (Parcel) TableName() string {
	return "parcels"
}
