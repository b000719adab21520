package repository

// CustomerListFilter 查询客户列表的过滤条件
type CustomerListFilter struct {
	Skip     int
	Limit    int
	IsActive *bool
	Search   string // 模糊匹配 name / email
}

// SenderListFilter 查询寄件人列表的过滤条件
type SenderListFilter struct {
	Skip     int
	Limit    int
	IsActive *bool
	Search   string
}

// ReceiverListFilter 查询收件人列表的过滤条件
type ReceiverListFilter struct {
	Skip     int
	Limit    int
	IsActive *bool
	Search   string
}

// StationListFilter 查询站点列表的过滤条件
type StationListFilter struct {
	Skip     int
	Limit    int
	City     string // 模糊匹配
	State    string // 模糊匹配
	IsActive *bool
}

// VehicleListFilter 查询车辆列表的过滤条件
type VehicleListFilter struct {
	Skip     int
	Limit    int
	Type     string // 模糊匹配
	IsActive *bool
}

// DeliveryStaffListFilter 查询派送员列表的过滤条件
type DeliveryStaffListFilter struct {
	Skip     int
	Limit    int
	IsActive *bool
}

// ParcelListFilter 查询包裹列表的过滤条件
type ParcelListFilter struct {
	Skip       int
	Limit      int
	Status     string
	SenderID   uint
	ReceiverID uint
}

// ItemListFilter 查询货品列表的过滤条件
type ItemListFilter struct {
	Skip       int
	Limit      int
	CustomerID *uint
}
