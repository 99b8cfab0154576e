package repository

//go:generate mockgen -destination=mocks/mock_loan_repository.go -package=mock_repository . LoanRepository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sangkips/shopledger-api/internal/domain/entity"
	"github.com/sangkips/shopledger-api/internal/domain/enum"
	"github.com/sangkips/shopledger-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

// ErrStaleInstallment is returned when an installment changed between read and write
var ErrStaleInstallment = errors.New("installment was modified concurrently")

// LoanRepository defines the interface for loan and installment data operations
type LoanRepository interface {
	// Create stores the loan together with its installment schedule
	Create(ctx context.Context, loan *entity.Loan) error
	// GetByID returns the loan with installments ordered by number, or nil
	GetByID(ctx context.Context, shopID, id uuid.UUID) (*entity.Loan, error)
	List(ctx context.Context, shopID uuid.UUID, params *LoanFilterParams) ([]entity.Loan, int64, error)
	// SaveRepayment persists an installment payment and re-derives the loan's totals from
	// the stored installments in one transaction, leaving the persisted state in loan.
	// previousPaid guards against a concurrent payment on the same installment.
	SaveRepayment(ctx context.Context, loan *entity.Loan, installment *entity.Installment, previousPaid decimal.Decimal) error
	Delete(ctx context.Context, shopID, id uuid.UUID) error
}

// LoanFilterParams contains filtering parameters for loan queries
type LoanFilterParams struct {
	Pagination *pagination.PaginationParams
	Status     *enum.LoanStatus
	Search     string
}
