package constants

// 包裹状态（按实际流转顺序排列；当前不做状态机约束，后续加约束时按此顺序补）
const (
	ParcelStatusCreated        = "created"
	ParcelStatusPickedUp       = "picked_up"
	ParcelStatusInTransit      = "in_transit"
	ParcelStatusAtDestination  = "at_destination"
	ParcelStatusOutForDelivery = "out_for_delivery"
	ParcelStatusDelivered      = "delivered"
	ParcelStatusFailedDelivery = "failed_delivery"
	ParcelStatusReturned       = "returned"
)

// ParcelStatuses 全部合法包裹状态
var ParcelStatuses = []string{
	ParcelStatusCreated,
	ParcelStatusPickedUp,
	ParcelStatusInTransit,
	ParcelStatusAtDestination,
	ParcelStatusOutForDelivery,
	ParcelStatusDelivered,
	ParcelStatusFailedDelivery,
	ParcelStatusReturned,
}

// IsValidParcelStatus 校验包裹状态取值
func IsValidParcelStatus(status string) bool {
	for _, s := range ParcelStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// 列表查询默认分页参数
const (
	DefaultListLimit = 100
	MaxListLimit     = 1000
)

// 运单号规则
const (
	TrackingNumberPrefix      = "PKG"
	TrackingNumberRandomLen   = 6
	TrackingNumberMaxAttempts = 1000
)
