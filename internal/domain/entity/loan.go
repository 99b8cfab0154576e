package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/shopledger-api/internal/domain/enum"
	"github.com/sangkips/shopledger-api/pkg/bizdate"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var hundred = decimal.NewFromInt(100)

// Loan represents credit extended to a customer and repaid in monthly installments.
//
// PaidAmount, RemainingAmount, NextDueDate and Status are derived from the
// installments by Recalculate and must not be edited independently.
type Loan struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	ShopID            uuid.UUID       `gorm:"type:uuid;not null;index:idx_loans_shop_status,priority:1" json:"shop_id"`
	CustomerName      string          `gorm:"size:255;not null" json:"customer_name"`
	CustomerPhone     *string         `gorm:"size:50" json:"customer_phone,omitempty"`
	PrincipalAmount   decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"principal_amount"`
	InterestRate      decimal.Decimal `gorm:"type:decimal(10,4);not null;default:0" json:"interest_rate"`
	TotalAmount       decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"total_amount"`
	TotalInstallments int             `gorm:"not null" json:"total_installments"`
	InstallmentAmount decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"installment_amount"`
	PaidAmount        decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"paid_amount"`
	RemainingAmount   decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"remaining_amount"`
	StartDate         bizdate.Date    `gorm:"type:date;not null" json:"start_date"`
	NextDueDate       bizdate.Date    `gorm:"type:date" json:"next_due_date"`
	Status            enum.LoanStatus `gorm:"size:20;not null;default:'ACTIVE';index:idx_loans_shop_status,priority:2" json:"status"`
	Notes             *string         `gorm:"type:text" json:"notes,omitempty"`
	CreatedBy         uuid.UUID       `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`

	Installments []Installment `gorm:"foreignKey:LoanID;constraint:OnDelete:CASCADE" json:"installments,omitempty"`
}

// BeforeCreate generates a UUID before creating a new loan
func (l *Loan) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Loan model
func (Loan) TableName() string {
	return "loans"
}

// BuildSchedule fills TotalAmount, InstallmentAmount and the installment list
// from PrincipalAmount, InterestRate, TotalInstallments and StartDate.
//
// Each installment is the total divided by the count, truncated to paisa; the
// last one absorbs the remainder so the schedule always sums to TotalAmount.
func (l *Loan) BuildSchedule() {
	factor := decimal.NewFromInt(1).Add(l.InterestRate.Div(hundred))
	l.TotalAmount = l.PrincipalAmount.Mul(factor).Round(2)

	count := decimal.NewFromInt(int64(l.TotalInstallments))
	l.InstallmentAmount = l.TotalAmount.Div(count).Truncate(2)

	l.Installments = make([]Installment, 0, l.TotalInstallments)
	allocated := decimal.Zero
	for n := 1; n <= l.TotalInstallments; n++ {
		amount := l.InstallmentAmount
		if n == l.TotalInstallments {
			amount = l.TotalAmount.Sub(allocated)
		}
		allocated = allocated.Add(amount)

		l.Installments = append(l.Installments, Installment{
			LoanID:     l.ID,
			ShopID:     l.ShopID,
			Number:     n,
			DueDate:    l.StartDate.AddMonths(n),
			Amount:     amount,
			PaidAmount: decimal.Zero,
			Status:     enum.InstallmentStatusPending,
		})
	}
	l.Recalculate()
}

// Recalculate derives the paid, remaining, next due date and status fields from the installments
func (l *Loan) Recalculate() {
	paid := decimal.Zero
	var next bizdate.Date
	for _, inst := range l.Installments {
		paid = paid.Add(inst.PaidAmount)
		if inst.Status != enum.InstallmentStatusPaid && (next.IsZero() || inst.DueDate.Before(next)) {
			next = inst.DueDate
		}
	}

	l.PaidAmount = paid
	l.RemainingAmount = l.TotalAmount.Sub(paid)
	l.NextDueDate = next
	if l.RemainingAmount.Sign() <= 0 {
		l.Status = enum.LoanStatusCompleted
	} else {
		l.Status = enum.LoanStatusActive
	}
}

// FindInstallment returns the installment with the given id, or nil
func (l *Loan) FindInstallment(id uuid.UUID) *Installment {
	for i := range l.Installments {
		if l.Installments[i].ID == id {
			return &l.Installments[i]
		}
	}
	return nil
}

// CanDelete reports whether nothing has been repaid yet
func (l *Loan) CanDelete() bool {
	return l.PaidAmount.IsZero()
}

// Installment is one scheduled repayment of a loan
type Installment struct {
	ID         uuid.UUID              `gorm:"type:uuid;primary_key" json:"id"`
	LoanID     uuid.UUID              `gorm:"type:uuid;not null;index" json:"loan_id"`
	ShopID     uuid.UUID              `gorm:"type:uuid;not null;index" json:"shop_id"`
	Number     int                    `gorm:"not null" json:"number"`
	DueDate    bizdate.Date           `gorm:"type:date;not null" json:"due_date"`
	Amount     decimal.Decimal        `gorm:"type:decimal(14,2);not null" json:"amount"`
	PaidAmount decimal.Decimal        `gorm:"type:decimal(14,2);not null;default:0" json:"paid_amount"`
	Status     enum.InstallmentStatus `gorm:"size:20;not null;default:'PENDING'" json:"status"`
	PaidAt     *time.Time             `json:"paid_at,omitempty"`
	CreatedAt  time.Time              `json:"created_at"`
	UpdatedAt  time.Time              `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new installment
func (i *Installment) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Installment model
func (Installment) TableName() string {
	return "installments"
}

// Outstanding is the part of the installment not yet paid
func (i *Installment) Outstanding() decimal.Decimal {
	return i.Amount.Sub(i.PaidAmount)
}

// Apply records a payment against the installment. The caller checks that
// amount is positive and no larger than Outstanding.
func (i *Installment) Apply(amount decimal.Decimal, at time.Time) {
	i.PaidAmount = i.PaidAmount.Add(amount)
	switch {
	case i.PaidAmount.GreaterThanOrEqual(i.Amount):
		i.Status = enum.InstallmentStatusPaid
		i.PaidAt = &at
	case i.PaidAmount.IsPositive():
		i.Status = enum.InstallmentStatusPartial
	default:
		i.Status = enum.InstallmentStatusPending
	}
}
