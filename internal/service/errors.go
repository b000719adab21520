package service

import "errors"

// 服务层哨兵错误，handler 按 errors.Is 映射为 HTTP 状态码
var (
	ErrNotFound                = errors.New("record not found")
	ErrEmailRegistered         = errors.New("email already registered")
	ErrStationCodeRegistered   = errors.New("station code already registered")
	ErrLicensePlateRegistered  = errors.New("license plate already registered")
	ErrEmployeeIDRegistered    = errors.New("employee id already registered")
	ErrInvalidStatus           = errors.New("invalid parcel status")
	ErrEntityReferenced        = errors.New("record is referenced by parcels or items")
	ErrCustomerNotFound        = errors.New("customer not found")
	ErrVehicleNotFound         = errors.New("vehicle not found")
	ErrDeliveryStaffNotFound   = errors.New("delivery staff not found")
	ErrTrackingNumberExhausted = errors.New("tracking number generation attempts exhausted")
)
