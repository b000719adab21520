package repository

import (
	"github.com/parcel-next/internal/constants"

	"gorm.io/gorm"
)

// applySkipLimit 应用 skip/limit 分页参数，统一处理非法取值
func applySkipLimit(query *gorm.DB, skip, limit int) *gorm.DB {
	if query == nil {
		return query
	}
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = constants.DefaultListLimit
	}
	if limit > constants.MaxListLimit {
		limit = constants.MaxListLimit
	}
	return query.Offset(skip).Limit(limit)
}

// likePattern 构造大小写不敏感的模糊匹配条件值
func likePattern(value string) string {
	return "%" + value + "%"
}
