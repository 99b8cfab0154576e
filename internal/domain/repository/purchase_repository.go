package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sangkips/shopledger-api/internal/domain/entity"
	"github.com/sangkips/shopledger-api/internal/domain/enum"
	"github.com/sangkips/shopledger-api/pkg/bizdate"
	"github.com/sangkips/shopledger-api/pkg/pagination"
)

// ErrPaymentExceedsOutstanding is returned when a supplier payment would overpay a purchase
var ErrPaymentExceedsOutstanding = errors.New("payment exceeds outstanding amount")

// SupplierRepository defines the interface for supplier data operations
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, shopID, id uuid.UUID) (*entity.Supplier, error)
	List(ctx context.Context, shopID uuid.UUID, params *pagination.PaginationParams, search string) ([]entity.Supplier, int64, error)
}

// PurchaseRepository defines the interface for purchase data operations
type PurchaseRepository interface {
	// Create stores the purchase and, when upfront is not nil, the payment made with it
	Create(ctx context.Context, purchase *entity.Purchase, upfront *entity.SupplierPayment) error
	GetByID(ctx context.Context, shopID, id uuid.UUID) (*entity.Purchase, error)
	List(ctx context.Context, shopID uuid.UUID, params *PurchaseFilterParams) ([]entity.Purchase, int64, error)
	// RecordPayment stores the payment and increments the purchase's paid amount atomically.
	// It returns ErrPaymentExceedsOutstanding if the purchase would be overpaid.
	RecordPayment(ctx context.Context, payment *entity.SupplierPayment) (*entity.Purchase, error)
}

// PurchaseFilterParams contains filtering parameters for purchase queries
type PurchaseFilterParams struct {
	Pagination *pagination.PaginationParams
	Status     *enum.PurchaseStatus
	SupplierID *uuid.UUID
	StartDate  *bizdate.Date
	EndDate    *bizdate.Date
}
