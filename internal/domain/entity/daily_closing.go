package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/shopledger-api/pkg/bizdate"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DailyClosing is the end-of-day reconciliation of one shop for one business date.
// There is at most one row per (shop_id, business_date); resubmission replaces it.
type DailyClosing struct {
	ID           uuid.UUID    `gorm:"type:uuid;primary_key" json:"id"`
	ShopID       uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:idx_daily_closings_shop_date,priority:1" json:"shop_id"`
	BusinessDate bizdate.Date `gorm:"type:date;not null;uniqueIndex:idx_daily_closings_shop_date,priority:2" json:"date"`

	CashSales        decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"cash_sales"`
	JazzLoadSales    decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"jazz_load_sales"`
	TelenorLoadSales decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"telenor_load_sales"`
	ZongLoadSales    decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"zong_load_sales"`
	UfoneLoadSales   decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"ufone_load_sales"`
	EasypaisaSales   decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"easypaisa_sales"`
	JazzcashSales    decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"jazzcash_sales"`
	Receiving        decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"receiving"`
	BankTransfer     decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"bank_transfer"`
	Loan             decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"loan"`
	Cash             decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"cash"`
	Credit           decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"credit"`
	Inventory        decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"inventory"`

	TotalIncome   decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"total_income"`
	TotalExpenses decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"total_expenses"`
	NetAmount     decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"net_amount"`

	Notes       *string   `gorm:"type:text" json:"notes,omitempty"`
	AutoFilled  []string  `gorm:"serializer:json;type:text" json:"auto_filled"`
	SubmittedBy uuid.UUID `gorm:"type:uuid;not null" json:"submitted_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new closing
func (d *DailyClosing) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the DailyClosing model
func (DailyClosing) TableName() string {
	return "daily_closings"
}

// ClosingTotals are the derived figures of a closing
type ClosingTotals struct {
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	NetAmount     decimal.Decimal
}

// ComputeTotals applies the closing formula to the current field values
func (d *DailyClosing) ComputeTotals() ClosingTotals {
	income := decimal.Sum(
		d.CashSales,
		d.JazzLoadSales,
		d.TelenorLoadSales,
		d.ZongLoadSales,
		d.UfoneLoadSales,
		d.BankTransfer,
		d.EasypaisaSales,
		d.JazzcashSales,
		d.Loan,
		d.Cash,
		d.Receiving,
	).Round(2)
	expenses := d.Inventory.Add(d.Credit).Round(2)

	return ClosingTotals{
		TotalIncome:   income,
		TotalExpenses: expenses,
		NetAmount:     income.Sub(expenses),
	}
}

// Recalculate stores the derived totals on the closing
func (d *DailyClosing) Recalculate() {
	t := d.ComputeTotals()
	d.TotalIncome = t.TotalIncome
	d.TotalExpenses = t.TotalExpenses
	d.NetAmount = t.NetAmount
}

// TotalsConsistent reports whether the stored totals match the formula
func (d *DailyClosing) TotalsConsistent() bool {
	t := d.ComputeTotals()
	return d.TotalIncome.Equal(t.TotalIncome) &&
		d.TotalExpenses.Equal(t.TotalExpenses) &&
		d.NetAmount.Equal(t.NetAmount)
}
