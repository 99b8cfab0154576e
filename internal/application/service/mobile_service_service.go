package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/shopledger-api/internal/domain/entity"
	"github.com/sangkips/shopledger-api/internal/domain/enum"
	"github.com/sangkips/shopledger-api/internal/domain/repository"
	"github.com/sangkips/shopledger-api/pkg/apperror"
	"github.com/sangkips/shopledger-api/pkg/bizdate"
	"github.com/sangkips/shopledger-api/pkg/pagination"
	"github.com/shopspring/decimal"
)

// MobileServiceService records mobile-money, load and bill transactions
type MobileServiceService struct {
	txnRepo     repository.ServiceTransactionRepository
	feeRuleRepo repository.FeeRuleRepository
	clock       Clock
}

// NewMobileServiceService creates a new mobile service service
func NewMobileServiceService(
	txnRepo repository.ServiceTransactionRepository,
	feeRuleRepo repository.FeeRuleRepository,
	clock Clock,
) *MobileServiceService {
	return &MobileServiceService{
		txnRepo:     txnRepo,
		feeRuleRepo: feeRuleRepo,
		clock:       clock,
	}
}

// CreateServiceTransactionInput represents a new counter transaction.
// A nil Commission, or a negative one, asks the fee schedule for the commission.
type CreateServiceTransactionInput struct {
	ServiceType     enum.ServiceType
	LoadProvider    *enum.LoadProvider
	Amount          decimal.Decimal
	Discount        decimal.Decimal
	Commission      *decimal.Decimal
	Status          *enum.TransactionStatus
	TransactionDate *bizdate.Date
	CustomerName    *string
	CustomerPhone   *string
	ReferenceID     *string
	Notes           *string
}

// UpdateServiceTransactionInput is a partial update; nil fields are left unchanged
type UpdateServiceTransactionInput struct {
	Amount        *decimal.Decimal
	Discount      *decimal.Decimal
	Commission    *decimal.Decimal
	LoadProvider  *enum.LoadProvider
	Status        *enum.TransactionStatus
	CustomerName  *string
	CustomerPhone *string
	ReferenceID   *string
	Notes         *string
}

// ListServiceTransactionsInput represents list filters
type ListServiceTransactionsInput struct {
	Pagination  *pagination.PaginationParams
	Date        *bizdate.Date
	ServiceType *enum.ServiceType
	Status      *enum.TransactionStatus
}

// PreviewCommission returns the commission the shop's fee rule suggests for an amount.
// Nothing is persisted.
func (s *MobileServiceService) PreviewCommission(ctx context.Context, actor Actor, shopID uuid.UUID, serviceType enum.ServiceType, amount decimal.Decimal) (*CommissionQuote, error) {
	if err := authorizeShop(actor, shopID); err != nil {
		return nil, err
	}
	if !serviceType.IsValid() {
		return nil, apperror.NewFieldError("service_type", "Unknown service type")
	}
	if amount.IsNegative() {
		return nil, apperror.NewFieldError("amount", "Amount cannot be negative")
	}
	if fe := checkMoneyScale("amount", amount); fe != nil {
		return nil, apperror.NewValidationError([]apperror.FieldError{*fe})
	}

	rule, err := s.feeRuleRepo.GetByServiceType(ctx, shopID, serviceType)
	if err != nil {
		return nil, err
	}
	quote := ResolveCommission(serviceType, amount, rule)
	return &quote, nil
}

// Create validates and stores a transaction with its commission
func (s *MobileServiceService) Create(ctx context.Context, actor Actor, shopID uuid.UUID, input *CreateServiceTransactionInput) (*entity.ServiceTransaction, error) {
	if err := authorizeShop(actor, shopID); err != nil {
		return nil, err
	}

	today := s.clock.Today()
	if err := validateCreateTransaction(input, today); err != nil {
		return nil, err
	}

	txn := &entity.ServiceTransaction{
		ShopID:          shopID,
		ServiceType:     input.ServiceType,
		LoadProvider:    input.LoadProvider,
		Amount:          input.Amount,
		Discount:        input.Discount,
		Status:          enum.TransactionStatusCompleted,
		TransactionDate: today,
		CustomerName:    input.CustomerName,
		CustomerPhone:   input.CustomerPhone,
		ReferenceID:     input.ReferenceID,
		Notes:           input.Notes,
		CreatedBy:       actor.UserID,
	}
	if input.Status != nil {
		txn.Status = *input.Status
	}
	if input.TransactionDate != nil {
		txn.TransactionDate = *input.TransactionDate
	}

	if input.Commission != nil && !input.Commission.IsNegative() {
		txn.Commission = *input.Commission
		txn.CommissionRate = decimal.Zero
		txn.CommissionMode = enum.CommissionModeManual
	} else {
		rule, err := s.feeRuleRepo.GetByServiceType(ctx, shopID, input.ServiceType)
		if err != nil {
			return nil, err
		}
		quote := ResolveCommission(input.ServiceType, input.Amount, rule)
		txn.Commission = quote.Commission
		txn.CommissionRate = quote.Rate
		txn.CommissionMode = quote.Mode
	}
	txn.DeriveNetCommission()

	if err := s.txnRepo.Create(ctx, txn); err != nil {
		return nil, err
	}
	return txn, nil
}

func validateCreateTransaction(input *CreateServiceTransactionInput, today bizdate.Date) error {
	var fieldErrors []apperror.FieldError

	if !input.ServiceType.IsValid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "service_type", Message: "Unknown service type"})
	}
	if !input.Amount.IsPositive() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "amount", Message: "Amount must be greater than zero"})
	}
	if input.Discount.IsNegative() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "discount", Message: "Discount cannot be negative"})
	}
	for _, fe := range []*apperror.FieldError{
		checkMoneyScale("amount", input.Amount),
		checkMoneyScale("discount", input.Discount),
		checkOptionalMoneyScale("commission", input.Commission),
	} {
		if fe != nil {
			fieldErrors = append(fieldErrors, *fe)
		}
	}
	if fe := checkLoadProvider(input.ServiceType, input.LoadProvider); fe != nil {
		fieldErrors = append(fieldErrors, *fe)
	}
	if input.Status != nil && !input.Status.IsValid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "status", Message: "Unknown status"})
	}
	if input.TransactionDate != nil && input.TransactionDate.After(today) {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "transaction_date", Message: "Transaction date cannot be in the future"})
	}

	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

// checkLoadProvider enforces that a carrier is given for mobile load and only for mobile load
func checkLoadProvider(serviceType enum.ServiceType, provider *enum.LoadProvider) *apperror.FieldError {
	switch {
	case serviceType.RequiresLoadProvider() && provider == nil:
		return &apperror.FieldError{Field: "load_provider", Message: "Load provider is required for mobile load"}
	case serviceType.RequiresLoadProvider() && !provider.IsValid():
		return &apperror.FieldError{Field: "load_provider", Message: "Unknown load provider"}
	case !serviceType.RequiresLoadProvider() && provider != nil:
		return &apperror.FieldError{Field: "load_provider", Message: "Load provider is only allowed for mobile load"}
	}
	return nil
}

// Get returns one transaction of the shop
func (s *MobileServiceService) Get(ctx context.Context, actor Actor, shopID, id uuid.UUID) (*entity.ServiceTransaction, error) {
	if err := authorizeShop(actor, shopID); err != nil {
		return nil, err
	}
	return s.find(ctx, shopID, id)
}

func (s *MobileServiceService) find(ctx context.Context, shopID, id uuid.UUID) (*entity.ServiceTransaction, error) {
	txn, err := s.txnRepo.GetByID(ctx, shopID, id)
	if err != nil {
		return nil, err
	}
	if txn == nil {
		return nil, apperror.NewNotFoundError("Transaction")
	}
	return txn, nil
}

// List returns the shop's transactions, newest first
func (s *MobileServiceService) List(ctx context.Context, actor Actor, shopID uuid.UUID, input *ListServiceTransactionsInput) ([]entity.ServiceTransaction, *pagination.Pagination, error) {
	if err := authorizeShop(actor, shopID); err != nil {
		return nil, nil, err
	}
	if input.Pagination == nil {
		input.Pagination = pagination.DefaultPagination()
	}

	txns, total, err := s.txnRepo.List(ctx, shopID, &repository.ServiceTransactionFilterParams{
		Pagination:  input.Pagination,
		Date:        input.Date,
		ServiceType: input.ServiceType,
		Status:      input.Status,
	})
	if err != nil {
		return nil, nil, err
	}
	return txns, pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total), nil
}

// Update applies a partial edit. The stored commission is authoritative: the fee
// schedule is not consulted again, only the net commission is re-derived.
func (s *MobileServiceService) Update(ctx context.Context, actor Actor, shopID, id uuid.UUID, input *UpdateServiceTransactionInput) (*entity.ServiceTransaction, error) {
	if err := authorizeShop(actor, shopID); err != nil {
		return nil, err
	}

	txn, err := s.find(ctx, shopID, id)
	if err != nil {
		return nil, err
	}

	var fieldErrors []apperror.FieldError
	if input.Amount != nil && !input.Amount.IsPositive() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "amount", Message: "Amount must be greater than zero"})
	}
	if input.Discount != nil && input.Discount.IsNegative() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "discount", Message: "Discount cannot be negative"})
	}
	if input.Commission != nil && input.Commission.IsNegative() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "commission", Message: "Commission cannot be negative"})
	}
	for _, fe := range []*apperror.FieldError{
		checkOptionalMoneyScale("amount", input.Amount),
		checkOptionalMoneyScale("discount", input.Discount),
		checkOptionalMoneyScale("commission", input.Commission),
	} {
		if fe != nil {
			fieldErrors = append(fieldErrors, *fe)
		}
	}
	if input.LoadProvider != nil {
		if fe := checkLoadProvider(txn.ServiceType, input.LoadProvider); fe != nil {
			fieldErrors = append(fieldErrors, *fe)
		}
	}
	if input.Status != nil && !input.Status.IsValid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "status", Message: "Unknown status"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	if input.Amount != nil {
		txn.Amount = *input.Amount
	}
	if input.Discount != nil {
		txn.Discount = *input.Discount
	}
	if input.Commission != nil {
		txn.Commission = *input.Commission
		txn.CommissionMode = enum.CommissionModeManual
	}
	if input.LoadProvider != nil {
		txn.LoadProvider = input.LoadProvider
	}
	if input.Status != nil {
		txn.Status = *input.Status
	}
	if input.CustomerName != nil {
		txn.CustomerName = input.CustomerName
	}
	if input.CustomerPhone != nil {
		txn.CustomerPhone = input.CustomerPhone
	}
	if input.ReferenceID != nil {
		txn.ReferenceID = input.ReferenceID
	}
	if input.Notes != nil {
		txn.Notes = input.Notes
	}
	txn.DeriveNetCommission()

	if err := s.txnRepo.Update(ctx, txn); err != nil {
		return nil, err
	}
	return txn, nil
}

// Delete removes a transaction permanently
func (s *MobileServiceService) Delete(ctx context.Context, actor Actor, shopID, id uuid.UUID) error {
	if err := authorizeShop(actor, shopID); err != nil {
		return err
	}
	if _, err := s.find(ctx, shopID, id); err != nil {
		return err
	}
	return s.txnRepo.Delete(ctx, shopID, id)
}
