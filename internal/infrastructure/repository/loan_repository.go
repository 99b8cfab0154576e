package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sangkips/shopledger-api/internal/domain/entity"
	domainRepo "github.com/sangkips/shopledger-api/internal/domain/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type loanRepository struct {
	db *gorm.DB
}

// NewLoanRepository creates a new loan repository
func NewLoanRepository(db *gorm.DB) domainRepo.LoanRepository {
	return &loanRepository{db: db}
}

func orderedInstallments(db *gorm.DB) *gorm.DB {
	return db.Order("number ASC")
}

func (r *loanRepository) Create(ctx context.Context, loan *entity.Loan) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		installments := loan.Installments
		if err := tx.Omit("Installments").Create(loan).Error; err != nil {
			return err
		}
		for i := range installments {
			installments[i].LoanID = loan.ID
			installments[i].ShopID = loan.ShopID
		}
		if len(installments) > 0 {
			if err := tx.Create(&installments).Error; err != nil {
				return err
			}
		}
		loan.Installments = installments
		return nil
	})
}

func (r *loanRepository) GetByID(ctx context.Context, shopID, id uuid.UUID) (*entity.Loan, error) {
	var loan entity.Loan
	err := r.db.WithContext(ctx).
		Preload("Installments", orderedInstallments).
		First(&loan, "id = ? AND shop_id = ?", id, shopID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &loan, nil
}

func (r *loanRepository) List(ctx context.Context, shopID uuid.UUID, params *domainRepo.LoanFilterParams) ([]entity.Loan, int64, error) {
	var loans []entity.Loan
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Loan{}).Scopes(ShopScope(shopID))
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.Search != "" {
		like := "%" + params.Search + "%"
		query = query.Where("LOWER(customer_name) LIKE LOWER(?) OR customer_phone LIKE ?", like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Scopes(Paginate(params.Pagination)).
		Order("created_at DESC").
		Find(&loans).Error

	return loans, total, err
}

// SaveRepayment locks the loan row, writes the guarded installment update and
// then re-derives the loan totals from the stored installments, so payments on
// different installments of one loan never overwrite each other's totals.
// On success loan holds the persisted state.
func (r *loanRepository) SaveRepayment(ctx context.Context, loan *entity.Loan, installment *entity.Installment, previousPaid decimal.Decimal) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var locked entity.Loan
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&locked, "id = ? AND shop_id = ?", loan.ID, loan.ShopID).Error
		if err != nil {
			return err
		}

		result := tx.Model(&entity.Installment{}).
			Where("id = ? AND loan_id = ? AND paid_amount = ?", installment.ID, loan.ID, previousPaid).
			Updates(map[string]interface{}{
				"paid_amount": installment.PaidAmount,
				"status":      installment.Status,
				"paid_at":     installment.PaidAt,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainRepo.ErrStaleInstallment
		}

		var installments []entity.Installment
		if err := tx.Scopes(orderedInstallments).Where("loan_id = ?", loan.ID).Find(&installments).Error; err != nil {
			return err
		}
		locked.Installments = installments
		locked.Recalculate()

		err = tx.Model(&entity.Loan{}).
			Where("id = ?", locked.ID).
			Updates(map[string]interface{}{
				"paid_amount":      locked.PaidAmount,
				"remaining_amount": locked.RemainingAmount,
				"next_due_date":    locked.NextDueDate,
				"status":           locked.Status,
			}).Error
		if err != nil {
			return err
		}

		loan.Installments = locked.Installments
		loan.PaidAmount = locked.PaidAmount
		loan.RemainingAmount = locked.RemainingAmount
		loan.NextDueDate = locked.NextDueDate
		loan.Status = locked.Status
		return nil
	})
}

func (r *loanRepository) Delete(ctx context.Context, shopID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("loan_id = ? AND shop_id = ?", id, shopID).Delete(&entity.Installment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Loan{}, "id = ? AND shop_id = ?", id, shopID).Error
	})
}
