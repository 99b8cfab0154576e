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
	"github.com/sangkips/shopledger-api/pkg/utils"
	"github.com/shopspring/decimal"
)

// SaleService records point-of-sale invoices
type SaleService struct {
	saleRepo repository.SaleRepository
	clock    Clock
}

// NewSaleService creates a new sale service
func NewSaleService(saleRepo repository.SaleRepository, clock Clock) *SaleService {
	return &SaleService{
		saleRepo: saleRepo,
		clock:    clock,
	}
}

// CreateSaleInput represents the create sale input
type CreateSaleInput struct {
	TotalAmount   decimal.Decimal
	PaymentMethod enum.PaymentMethod
	SaleDate      *bizdate.Date
	InvoiceNo     string
	CustomerName  *string
	Notes         *string
}

// CreateSale records a sale. The date defaults to today and cannot be in the future.
func (s *SaleService) CreateSale(ctx context.Context, actor Actor, shopID uuid.UUID, input *CreateSaleInput) (*entity.Sale, error) {
	if err := authorizeShop(actor, shopID); err != nil {
		return nil, err
	}

	today := s.clock.Today()
	var fieldErrors []apperror.FieldError
	if !input.TotalAmount.IsPositive() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "total_amount", Message: "Total must be greater than zero"})
	}
	if fe := checkMoneyScale("total_amount", input.TotalAmount); fe != nil {
		fieldErrors = append(fieldErrors, *fe)
	}
	if input.PaymentMethod == "" {
		input.PaymentMethod = enum.PaymentMethodCash
	}
	if !input.PaymentMethod.IsValid() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "payment_method", Message: "Unknown payment method"})
	}
	if input.SaleDate != nil && input.SaleDate.After(today) {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "sale_date", Message: "Sale date cannot be in the future"})
	}
	if len(fieldErrors) > 0 {
		return nil, apperror.NewValidationError(fieldErrors)
	}

	sale := &entity.Sale{
		ShopID:        shopID,
		InvoiceNo:     input.InvoiceNo,
		SaleDate:      today,
		PaymentMethod: input.PaymentMethod,
		TotalAmount:   input.TotalAmount,
		CustomerName:  input.CustomerName,
		Notes:         input.Notes,
		CreatedBy:     actor.UserID,
	}
	if sale.InvoiceNo == "" {
		sale.InvoiceNo = utils.GenerateReferenceNo("INV")
	}
	if input.SaleDate != nil && !input.SaleDate.IsZero() {
		sale.SaleDate = *input.SaleDate
	}

	if err := s.saleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}
	return sale, nil
}

// ListSales lists the shop's sales, optionally for a single date
func (s *SaleService) ListSales(ctx context.Context, actor Actor, shopID uuid.UUID, params *repository.SaleFilterParams) ([]entity.Sale, *pagination.Pagination, error) {
	if err := authorizeShop(actor, shopID); err != nil {
		return nil, nil, err
	}
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}

	sales, total, err := s.saleRepo.List(ctx, shopID, params)
	if err != nil {
		return nil, nil, err
	}
	return sales, pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total), nil
}

// DeleteSale removes a sale. Only the owner may delete.
func (s *SaleService) DeleteSale(ctx context.Context, actor Actor, shopID, id uuid.UUID) error {
	if err := authorizeShop(actor, shopID); err != nil {
		return err
	}
	if err := requireOwner(actor, "delete sales"); err != nil {
		return err
	}

	sale, err := s.saleRepo.GetByID(ctx, shopID, id)
	if err != nil {
		return err
	}
	if sale == nil {
		return apperror.NewNotFoundError("Sale")
	}
	return s.saleRepo.Delete(ctx, shopID, id)
}
