package repository

//go:generate mockgen -destination=mocks/mock_service_transaction_repository.go -package=mock_repository . ServiceTransactionRepository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/shopledger-api/internal/domain/entity"
	"github.com/sangkips/shopledger-api/internal/domain/enum"
	"github.com/sangkips/shopledger-api/pkg/bizdate"
	"github.com/sangkips/shopledger-api/pkg/pagination"
)

// ServiceTransactionRepository defines the interface for mobile service transaction data operations
type ServiceTransactionRepository interface {
	Create(ctx context.Context, txn *entity.ServiceTransaction) error
	// GetByID returns nil when the id does not exist or belongs to another shop
	GetByID(ctx context.Context, shopID, id uuid.UUID) (*entity.ServiceTransaction, error)
	Update(ctx context.Context, txn *entity.ServiceTransaction) error
	Delete(ctx context.Context, shopID, id uuid.UUID) error
	List(ctx context.Context, shopID uuid.UUID, params *ServiceTransactionFilterParams) ([]entity.ServiceTransaction, int64, error)
}

// ServiceTransactionFilterParams contains filtering parameters for transaction queries
type ServiceTransactionFilterParams struct {
	Pagination  *pagination.PaginationParams
	Date        *bizdate.Date
	ServiceType *enum.ServiceType
	Status      *enum.TransactionStatus
}
