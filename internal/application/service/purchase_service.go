package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sangkips/shopledger-api/internal/domain/entity"
	"github.com/sangkips/shopledger-api/internal/domain/enum"
	"github.com/sangkips/shopledger-api/internal/domain/repository"
	"github.com/sangkips/shopledger-api/pkg/apperror"
	"github.com/sangkips/shopledger-api/pkg/bizdate"
	"github.com/sangkips/shopledger-api/pkg/pagination"
	"github.com/sangkips/shopledger-api/pkg/utils"
	"github.com/shopspring/decimal"
)

// PurchaseService handles suppliers, stock purchases and supplier payments
type PurchaseService struct {
	purchaseRepo repository.PurchaseRepository
	supplierRepo repository.SupplierRepository
	clock        Clock
}

// NewPurchaseService creates a new purchase service
func NewPurchaseService(
	purchaseRepo repository.PurchaseRepository,
	supplierRepo repository.SupplierRepository,
	clock Clock,
) *PurchaseService {
	return &PurchaseService{
		purchaseRepo: purchaseRepo,
		supplierRepo: supplierRepo,
		clock:        clock,
	}
}

// CreateSupplierInput represents the create supplier input
type CreateSupplierInput struct {
	Name    string
	Phone   *string
	Address *string
}

// CreatePurchaseInput represents the create purchase input.
// A positive PaidAmount is recorded as a supplier payment on the purchase date.
type CreatePurchaseInput struct {
	SupplierID    uuid.UUID
	PurchaseNo    string
	PurchaseDate  *bizdate.Date
	TotalAmount   decimal.Decimal
	PaidAmount    decimal.Decimal
	PaymentMethod enum.PaymentMethod
	Notes         *string
}

// RecordSupplierPaymentInput represents a later payment against a purchase
type RecordSupplierPaymentInput struct {
	PurchaseID    uuid.UUID
	Amount        decimal.Decimal
	PaymentDate   *bizdate.Date
	PaymentMethod enum.PaymentMethod
	Notes         *string
}

// CreateSupplier creates a new supplier
func (s *PurchaseService) CreateSupplier(ctx context.Context, actor Actor, shopID uuid.UUID, input *CreateSupplierInput) (*entity.Supplier, error) {
	if err := authorizeShop(actor, shopID); err != nil {
		return nil, err
	}
	if input.Name == "" {
		return nil, apperror.NewFieldError("name", "Supplier name is required")
	}

	supplier := &entity.Supplier{
		ShopID:  shopID,
		Name:    input.Name,
		Phone:   input.Phone,
		Address: input.Address,
	}
	if err := s.supplierRepo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// ListSuppliers lists the shop's suppliers
func (s *PurchaseService) ListSuppliers(ctx context.Context, actor Actor, shopID uuid.UUID, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Supplier], error) {
	if err := authorizeShop(actor, shopID); err != nil {
		return nil, err
	}
	if params == nil {
		params = pagination.DefaultPagination()
	}

	suppliers, total, err := s.supplierRepo.List(ctx, shopID, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(suppliers, pag), nil
}

// CreatePurchase records a purchase and any upfront payment in one transaction
func (s *PurchaseService) CreatePurchase(ctx context.Context, actor Actor, shopID uuid.UUID, input *CreatePurchaseInput) (*entity.Purchase, error) {
	if err := authorizeShop(actor, shopID); err != nil {
		return nil, err
	}

	today := s.clock.Today()
	var fieldErrors []apperror.FieldError
	if !input.TotalAmount.IsPositive() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "total_amount", Message: "Total must be greater than zero"})
	}
	if input.PaidAmount.IsNegative() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "paid_amount", Message: "Paid amount cannot be negative"})
	}
	if input.PaidAmount.GreaterThan(input.TotalAmount) {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "paid_amount", Message: "Paid amount cannot exceed the total"})
	}
	for _, fe := range []*apperror.FieldError{
		checkMoneyScale("total_amount", input.TotalAmount),
		checkMoneyScale("paid_amount", input.PaidAmount),
	} {
		if fe != nil {
			fieldErrors = append(fieldErrors, *fe)
		}
	}
	if input.PurchaseDate != nil && input.PurchaseDate.After(today) {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "purchase_date", Message: "Purchase date cannot be in the future"})
	}
	if input.PaymentMethod == "" {
		input.PaymentMethod = enum.PaymentMethodCash
	}
	if !input.PaymentMethod.IsValid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "payment_method", Message: "Unknown payment method"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	supplier, err := s.supplierRepo.GetByID(ctx, shopID, input.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, apperror.NewNotFoundError("Supplier")
	}

	purchase := &entity.Purchase{
		ID:           uuid.New(),
		ShopID:       shopID,
		SupplierID:   supplier.ID,
		PurchaseNo:   input.PurchaseNo,
		PurchaseDate: today,
		TotalAmount:  input.TotalAmount,
		PaidAmount:   input.PaidAmount,
		Notes:        input.Notes,
		CreatedBy:    actor.UserID,
	}
	if purchase.PurchaseNo == "" {
		purchase.PurchaseNo = utils.GenerateReferenceNo("PUR")
	}
	if input.PurchaseDate != nil && !input.PurchaseDate.IsZero() {
		purchase.PurchaseDate = *input.PurchaseDate
	}
	purchase.DeriveStatus()

	var upfront *entity.SupplierPayment
	if purchase.PaidAmount.IsPositive() {
		upfront = &entity.SupplierPayment{
			ShopID:        shopID,
			SupplierID:    supplier.ID,
			PurchaseID:    &purchase.ID,
			Amount:        purchase.PaidAmount,
			PaymentDate:   purchase.PurchaseDate,
			PaymentMethod: input.PaymentMethod,
			CreatedBy:     actor.UserID,
		}
	}

	if err := s.purchaseRepo.Create(ctx, purchase, upfront); err != nil {
		return nil, err
	}
	purchase.Supplier = supplier
	return purchase, nil
}

// GetPurchase retrieves a purchase with its payments
func (s *PurchaseService) GetPurchase(ctx context.Context, actor Actor, shopID, id uuid.UUID) (*entity.Purchase, error) {
	if err := authorizeShop(actor, shopID); err != nil {
		return nil, err
	}

	purchase, err := s.purchaseRepo.GetByID(ctx, shopID, id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, apperror.NewNotFoundError("Purchase")
	}
	return purchase, nil
}

// ListPurchases lists purchases with filtering
func (s *PurchaseService) ListPurchases(ctx context.Context, actor Actor, shopID uuid.UUID, params *repository.PurchaseFilterParams) (*pagination.PaginatedResult[entity.Purchase], error) {
	if err := authorizeShop(actor, shopID); err != nil {
		return nil, err
	}
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}

	purchases, total, err := s.purchaseRepo.List(ctx, shopID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(purchases, pag), nil
}

// RecordPayment pays part or all of a purchase's outstanding amount
func (s *PurchaseService) RecordPayment(ctx context.Context, actor Actor, shopID uuid.UUID, input *RecordSupplierPaymentInput) (*entity.Purchase, error) {
	if err := authorizeShop(actor, shopID); err != nil {
		return nil, err
	}
	if !input.Amount.IsPositive() {
		return nil, apperror.NewFieldError("amount", "Amount must be greater than zero")
	}
	if fe := checkMoneyScale("amount", input.Amount); fe != nil {
		return nil, apperror.NewValidationError([]apperror.FieldError{*fe})
	}
	if input.PaymentMethod == "" {
		input.PaymentMethod = enum.PaymentMethodCash
	}
	if !input.PaymentMethod.IsValid() {
		return nil, apperror.NewFieldError("payment_method", "Unknown payment method")
	}

	today := s.clock.Today()
	paymentDate := today
	if input.PaymentDate != nil && !input.PaymentDate.IsZero() {
		if input.PaymentDate.After(today) {
			return nil, apperror.NewFieldError("payment_date", "Payment date cannot be in the future")
		}
		paymentDate = *input.PaymentDate
	}

	purchase, err := s.purchaseRepo.GetByID(ctx, shopID, input.PurchaseID)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, apperror.NewNotFoundError("Purchase")
	}
	if purchase.Status == enum.PurchaseStatusPaid {
		return nil, apperror.NewBadRequestError("Purchase is already fully paid")
	}

	payment := &entity.SupplierPayment{
		ShopID:        shopID,
		SupplierID:    purchase.SupplierID,
		PurchaseID:    &purchase.ID,
		Amount:        input.Amount,
		PaymentDate:   paymentDate,
		PaymentMethod: input.PaymentMethod,
		Notes:         input.Notes,
		CreatedBy:     actor.UserID,
	}

	updated, err := s.purchaseRepo.RecordPayment(ctx, payment)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentExceedsOutstanding) {
			return nil, apperror.NewFieldError("amount", "Amount exceeds the outstanding balance of "+purchase.Outstanding().StringFixed(2))
		}
		return nil, err
	}
	return updated, nil
}
