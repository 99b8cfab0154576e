package repository

//go:generate mockgen -destination=mocks/mock_ledger_repository.go -package=mock_repository . LedgerRepository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/shopledger-api/internal/domain/entity"
	"github.com/sangkips/shopledger-api/internal/domain/enum"
	"github.com/sangkips/shopledger-api/pkg/bizdate"
	"github.com/shopspring/decimal"
)

// SalesTotal is the sum of a shop's POS sales for one day
type SalesTotal struct {
	Total decimal.Decimal
	Count int64
}

// ServiceCommissionTotal is the commission earned on one (service type, load provider) pair
type ServiceCommissionTotal struct {
	ServiceType  enum.ServiceType
	LoadProvider *enum.LoadProvider
	Count        int64
	Commission   decimal.Decimal
}

// LedgerRepository is the store the closing engine reads aggregates from and
// writes closings to. Every method is scoped to exactly one shop.
type LedgerRepository interface {
	// SumSalesByShopAndDate totals all sales on date regardless of payment method
	SumSalesByShopAndDate(ctx context.Context, shopID uuid.UUID, date bizdate.Date) (*SalesTotal, error)

	// SumServiceCommissionsByShopAndDate groups COMPLETED service transaction commissions by type and provider
	SumServiceCommissionsByShopAndDate(ctx context.Context, shopID uuid.UUID, date bizdate.Date) ([]ServiceCommissionTotal, error)

	// SumSupplierPaymentsByShopAndDate totals supplier payments made on date
	SumSupplierPaymentsByShopAndDate(ctx context.Context, shopID uuid.UUID, date bizdate.Date) (decimal.Decimal, error)

	// SumRemainingLoanBalanceByShop totals the remaining balance of ACTIVE loans right now
	SumRemainingLoanBalanceByShop(ctx context.Context, shopID uuid.UUID) (decimal.Decimal, error)

	// UpsertDailyClosing inserts or fully replaces the closing for (ShopID, BusinessDate)
	// and returns the stored row
	UpsertDailyClosing(ctx context.Context, closing *entity.DailyClosing) (*entity.DailyClosing, error)

	GetDailyClosing(ctx context.Context, shopID uuid.UUID, date bizdate.Date) (*entity.DailyClosing, error)

	// ListDailyClosings returns the latest closings, newest first
	ListDailyClosings(ctx context.Context, shopID uuid.UUID, limit int) ([]entity.DailyClosing, error)

	// ListDailyClosingsBetween returns closings with from <= date <= to, oldest first
	ListDailyClosingsBetween(ctx context.Context, shopID uuid.UUID, from, to bizdate.Date) ([]entity.DailyClosing, error)
}
