package repository

import (
	"github.com/google/uuid"
	"github.com/sangkips/shopledger-api/pkg/pagination"
	"gorm.io/gorm"
)

// ShopScope restricts a query to rows owned by shopID.
// uuid.Nil matches nothing, so a missing shop can never widen a query.
func ShopScope(shopID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if shopID == uuid.Nil {
			return db.Where("1 = 0")
		}
		return db.Where("shop_id = ?", shopID)
	}
}

// Paginate applies offset and limit. nil params mean the first default page.
func Paginate(params *pagination.PaginationParams) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if params == nil {
			params = pagination.DefaultPagination()
		}
		params.Validate()
		return db.Offset(params.Offset()).Limit(params.PerPage)
	}
}
