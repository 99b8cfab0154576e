package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sangkips/shopledger-api/internal/domain/entity"
	domainRepo "github.com/sangkips/shopledger-api/internal/domain/repository"
	"gorm.io/gorm"
)

type serviceTransactionRepository struct {
	db *gorm.DB
}

// NewServiceTransactionRepository creates a new mobile service transaction repository
func NewServiceTransactionRepository(db *gorm.DB) domainRepo.ServiceTransactionRepository {
	return &serviceTransactionRepository{db: db}
}

func (r *serviceTransactionRepository) Create(ctx context.Context, txn *entity.ServiceTransaction) error {
	return r.db.WithContext(ctx).Create(txn).Error
}

func (r *serviceTransactionRepository) GetByID(ctx context.Context, shopID, id uuid.UUID) (*entity.ServiceTransaction, error) {
	var txn entity.ServiceTransaction
	err := r.db.WithContext(ctx).First(&txn, "id = ? AND shop_id = ?", id, shopID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

func (r *serviceTransactionRepository) Update(ctx context.Context, txn *entity.ServiceTransaction) error {
	return r.db.WithContext(ctx).
		Where("shop_id = ?", txn.ShopID).
		Save(txn).Error
}

func (r *serviceTransactionRepository) Delete(ctx context.Context, shopID, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&entity.ServiceTransaction{}, "id = ? AND shop_id = ?", id, shopID).Error
}

func (r *serviceTransactionRepository) List(ctx context.Context, shopID uuid.UUID, params *domainRepo.ServiceTransactionFilterParams) ([]entity.ServiceTransaction, int64, error) {
	var txns []entity.ServiceTransaction
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.ServiceTransaction{}).Scopes(ShopScope(shopID))
	if params.Date != nil {
		query = query.Where("transaction_date = ?", *params.Date)
	}
	if params.ServiceType != nil {
		query = query.Where("service_type = ?", *params.ServiceType)
	}
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Scopes(Paginate(params.Pagination)).
		Order("transaction_date DESC, created_at DESC").
		Find(&txns).Error

	return txns, total, err
}
