package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/shopledger-api/internal/domain/entity"
	"github.com/sangkips/shopledger-api/internal/domain/enum"
	domainRepo "github.com/sangkips/shopledger-api/internal/domain/repository"
	"github.com/sangkips/shopledger-api/pkg/bizdate"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// closingColumns are replaced wholesale when a closing is resubmitted
var closingColumns = []string{
	"cash_sales",
	"jazz_load_sales",
	"telenor_load_sales",
	"zong_load_sales",
	"ufone_load_sales",
	"easypaisa_sales",
	"jazzcash_sales",
	"receiving",
	"bank_transfer",
	"loan",
	"cash",
	"credit",
	"inventory",
	"total_income",
	"total_expenses",
	"net_amount",
	"notes",
	"auto_filled",
	"submitted_by",
	"updated_at",
}

type sumRow struct {
	Total decimal.Decimal
}

type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a new ledger repository
func NewLedgerRepository(db *gorm.DB) domainRepo.LedgerRepository {
	return &ledgerRepository{db: db}
}

func (r *ledgerRepository) SumSalesByShopAndDate(ctx context.Context, shopID uuid.UUID, date bizdate.Date) (*domainRepo.SalesTotal, error) {
	var result domainRepo.SalesTotal
	err := r.db.WithContext(ctx).
		Model(&entity.Sale{}).
		Select("COALESCE(SUM(total_amount), 0) AS total, COUNT(*) AS count").
		Where("shop_id = ? AND sale_date = ?", shopID, date).
		Scan(&result).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *ledgerRepository) SumServiceCommissionsByShopAndDate(ctx context.Context, shopID uuid.UUID, date bizdate.Date) ([]domainRepo.ServiceCommissionTotal, error) {
	var results []domainRepo.ServiceCommissionTotal
	err := r.db.WithContext(ctx).
		Model(&entity.ServiceTransaction{}).
		Select("service_type, load_provider, COUNT(*) AS count, COALESCE(SUM(commission), 0) AS commission").
		Where("shop_id = ? AND transaction_date = ? AND status = ?", shopID, date, enum.TransactionStatusCompleted).
		Group("service_type, load_provider").
		Order("service_type, load_provider").
		Scan(&results).Error
	return results, err
}

func (r *ledgerRepository) SumSupplierPaymentsByShopAndDate(ctx context.Context, shopID uuid.UUID, date bizdate.Date) (decimal.Decimal, error) {
	var row sumRow
	err := r.db.WithContext(ctx).
		Model(&entity.SupplierPayment{}).
		Select("COALESCE(SUM(amount), 0) AS total").
		Where("shop_id = ? AND payment_date = ?", shopID, date).
		Scan(&row).Error
	return row.Total, err
}

func (r *ledgerRepository) SumRemainingLoanBalanceByShop(ctx context.Context, shopID uuid.UUID) (decimal.Decimal, error) {
	var row sumRow
	err := r.db.WithContext(ctx).
		Model(&entity.Loan{}).
		Select("COALESCE(SUM(remaining_amount), 0) AS total").
		Where("shop_id = ? AND status = ?", shopID, enum.LoanStatusActive).
		Scan(&row).Error
	return row.Total, err
}

func (r *ledgerRepository) UpsertDailyClosing(ctx context.Context, closing *entity.DailyClosing) (*entity.DailyClosing, error) {
	closing.UpdatedAt = time.Now()

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "shop_id"}, {Name: "business_date"}},
			DoUpdates: clause.AssignmentColumns(closingColumns),
		}).
		Create(closing).Error

	// A racing insert can still surface as a duplicate key on some drivers.
	// The row exists now, so one update settles it.
	if isUniqueViolation(err) {
		log.Printf("Closing insert for shop %s on %s lost a race, retrying as update", closing.ShopID, closing.BusinessDate)
		err = r.replaceDailyClosing(ctx, closing)
	}
	if err != nil {
		return nil, err
	}

	stored, err := r.GetDailyClosing(ctx, closing.ShopID, closing.BusinessDate)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, errors.New("daily closing missing after upsert")
	}
	return stored, nil
}

func (r *ledgerRepository) replaceDailyClosing(ctx context.Context, closing *entity.DailyClosing) error {
	values := *closing
	values.ID = uuid.Nil
	return r.db.WithContext(ctx).
		Model(&entity.DailyClosing{}).
		Where("shop_id = ? AND business_date = ?", closing.ShopID, closing.BusinessDate).
		Select(closingColumns).
		Updates(&values).Error
}

func (r *ledgerRepository) GetDailyClosing(ctx context.Context, shopID uuid.UUID, date bizdate.Date) (*entity.DailyClosing, error) {
	var closing entity.DailyClosing
	err := r.db.WithContext(ctx).
		Where("shop_id = ? AND business_date = ?", shopID, date).
		First(&closing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &closing, nil
}

func (r *ledgerRepository) ListDailyClosings(ctx context.Context, shopID uuid.UUID, limit int) ([]entity.DailyClosing, error) {
	var closings []entity.DailyClosing
	err := r.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Order("business_date DESC").
		Limit(limit).
		Find(&closings).Error
	return closings, err
}

func (r *ledgerRepository) ListDailyClosingsBetween(ctx context.Context, shopID uuid.UUID, from, to bizdate.Date) ([]entity.DailyClosing, error) {
	var closings []entity.DailyClosing
	err := r.db.WithContext(ctx).
		Where("shop_id = ? AND business_date BETWEEN ? AND ?", shopID, from, to).
		Order("business_date ASC").
		Find(&closings).Error
	return closings, err
}
