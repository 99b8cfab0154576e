package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/sangkips/shopledger-api/internal/domain/entity"
	"github.com/sangkips/shopledger-api/internal/domain/enum"
	"github.com/sangkips/shopledger-api/internal/domain/repository"
	"github.com/sangkips/shopledger-api/pkg/apperror"
	"github.com/sangkips/shopledger-api/pkg/bizdate"
	"github.com/sangkips/shopledger-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

const maxInstallments = 120

// LoanService handles customer loans and their installment schedules
type LoanService struct {
	loanRepo repository.LoanRepository
	clock    Clock
}

// NewLoanService creates a new loan service
func NewLoanService(loanRepo repository.LoanRepository, clock Clock) *LoanService {
	return &LoanService{
		loanRepo: loanRepo,
		clock:    clock,
	}
}

// CreateLoanInput represents the create loan input
type CreateLoanInput struct {
	CustomerName      string
	CustomerPhone     *string
	PrincipalAmount   decimal.Decimal
	InterestRate      decimal.Decimal
	TotalInstallments int
	StartDate         *bizdate.Date
	Notes             *string
}

// RecordInstallmentPaymentInput represents a repayment against one installment
type RecordInstallmentPaymentInput struct {
	LoanID        uuid.UUID
	InstallmentID uuid.UUID
	Amount        decimal.Decimal
}

// CreateLoan creates a loan and its monthly installment schedule
func (s *LoanService) CreateLoan(ctx context.Context, actor Actor, shopID uuid.UUID, input *CreateLoanInput) (*entity.Loan, error) {
	if err := authorizeShop(actor, shopID); err != nil {
		return nil, err
	}

	var fieldErrors []apperror.FieldError
	if input.CustomerName == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "customer_name", Message: "Customer name is required"})
	}
	if !input.PrincipalAmount.IsPositive() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "principal_amount", Message: "Principal must be greater than zero"})
	}
	if fe := checkMoneyScale("principal_amount", input.PrincipalAmount); fe != nil {
		fieldErrors = append(fieldErrors, *fe)
	}
	if input.InterestRate.IsNegative() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "interest_rate", Message: "Interest rate cannot be negative"})
	}
	if input.TotalInstallments < 1 || input.TotalInstallments > maxInstallments {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "total_installments", Message: "Installments must be between 1 and 120"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	loan := &entity.Loan{
		ID:                uuid.New(),
		ShopID:            shopID,
		CustomerName:      input.CustomerName,
		CustomerPhone:     input.CustomerPhone,
		PrincipalAmount:   input.PrincipalAmount,
		InterestRate:      input.InterestRate,
		TotalInstallments: input.TotalInstallments,
		StartDate:         s.clock.Today(),
		Notes:             input.Notes,
		CreatedBy:         actor.UserID,
	}
	if input.StartDate != nil && !input.StartDate.IsZero() {
		loan.StartDate = *input.StartDate
	}
	loan.BuildSchedule()

	if err := s.loanRepo.Create(ctx, loan); err != nil {
		return nil, err
	}
	return loan, nil
}

// GetLoan retrieves a loan with its installments
func (s *LoanService) GetLoan(ctx context.Context, actor Actor, shopID, id uuid.UUID) (*entity.Loan, error) {
	if err := authorizeShop(actor, shopID); err != nil {
		return nil, err
	}
	return s.find(ctx, shopID, id)
}

func (s *LoanService) find(ctx context.Context, shopID, id uuid.UUID) (*entity.Loan, error) {
	loan, err := s.loanRepo.GetByID(ctx, shopID, id)
	if err != nil {
		return nil, err
	}
	if loan == nil {
		return nil, apperror.NewNotFoundError("Loan")
	}
	return loan, nil
}

// ListLoans lists the shop's loans
func (s *LoanService) ListLoans(ctx context.Context, actor Actor, shopID uuid.UUID, params *repository.LoanFilterParams) ([]entity.Loan, *pagination.Pagination, error) {
	if err := authorizeShop(actor, shopID); err != nil {
		return nil, nil, err
	}
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	if params.Status != nil && !params.Status.IsValid() {
		return nil, nil, apperror.NewFieldError("status", "Unknown loan status")
	}

	loans, total, err := s.loanRepo.List(ctx, shopID, params)
	if err != nil {
		return nil, nil, err
	}
	return loans, pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total), nil
}

// RecordPayment applies a repayment to one installment and re-derives the loan
func (s *LoanService) RecordPayment(ctx context.Context, actor Actor, shopID uuid.UUID, input *RecordInstallmentPaymentInput) (*entity.Loan, error) {
	if err := authorizeShop(actor, shopID); err != nil {
		return nil, err
	}
	if !input.Amount.IsPositive() {
		return nil, apperror.NewFieldError("amount", "Amount must be greater than zero")
	}

	loan, err := s.find(ctx, shopID, input.LoanID)
	if err != nil {
		return nil, err
	}
	if loan.Status == enum.LoanStatusCompleted {
		return nil, apperror.NewBadRequestError("Loan is already fully repaid")
	}

	inst := loan.FindInstallment(input.InstallmentID)
	if inst == nil {
		return nil, apperror.NewNotFoundError("Installment")
	}
	if fe := checkMoneyScale("amount", input.Amount); fe != nil {
		return nil, apperror.NewValidationError([]apperror.FieldError{*fe})
	}
	amount := input.Amount
	if amount.GreaterThan(inst.Outstanding()) {
		return nil, apperror.NewFieldError("amount", "Amount exceeds the installment outstanding of "+inst.Outstanding().StringFixed(2))
	}

	previousPaid := inst.PaidAmount
	inst.Apply(amount, s.clock())
	loan.Recalculate()

	if err := s.loanRepo.SaveRepayment(ctx, loan, inst, previousPaid); err != nil {
		if errors.Is(err, repository.ErrStaleInstallment) {
			return nil, apperror.NewConflictError("Installment was updated by another request, please retry")
		}
		return nil, err
	}
	if loan.Status == enum.LoanStatusCompleted {
		log.Printf("Loan %s of shop %s fully repaid", loan.ID, shopID)
	}
	return loan, nil
}

// DeleteLoan removes a loan that has no repayments
func (s *LoanService) DeleteLoan(ctx context.Context, actor Actor, shopID, id uuid.UUID) error {
	if err := authorizeShop(actor, shopID); err != nil {
		return err
	}

	loan, err := s.find(ctx, shopID, id)
	if err != nil {
		return err
	}
	if !loan.CanDelete() {
		return apperror.NewBadRequestError("Cannot delete a loan with recorded payments")
	}
	return s.loanRepo.Delete(ctx, shopID, id)
}
