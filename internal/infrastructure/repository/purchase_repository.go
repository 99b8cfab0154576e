package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sangkips/shopledger-api/internal/domain/entity"
	domainRepo "github.com/sangkips/shopledger-api/internal/domain/repository"
	"github.com/sangkips/shopledger-api/pkg/pagination"
	"gorm.io/gorm"
)

type supplierRepository struct {
	db *gorm.DB
}

// NewSupplierRepository creates a new supplier repository
func NewSupplierRepository(db *gorm.DB) domainRepo.SupplierRepository {
	return &supplierRepository{db: db}
}

func (r *supplierRepository) Create(ctx context.Context, supplier *entity.Supplier) error {
	return r.db.WithContext(ctx).Create(supplier).Error
}

func (r *supplierRepository) GetByID(ctx context.Context, shopID, id uuid.UUID) (*entity.Supplier, error) {
	var supplier entity.Supplier
	err := r.db.WithContext(ctx).First(&supplier, "id = ? AND shop_id = ?", id, shopID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *supplierRepository) List(ctx context.Context, shopID uuid.UUID, params *pagination.PaginationParams, search string) ([]entity.Supplier, int64, error) {
	var suppliers []entity.Supplier
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Supplier{}).Scopes(ShopScope(shopID))
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("LOWER(name) LIKE LOWER(?) OR phone LIKE ?", like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Scopes(Paginate(params)).
		Order("name ASC").
		Find(&suppliers).Error

	return suppliers, total, err
}

type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository creates a new purchase repository
func NewPurchaseRepository(db *gorm.DB) domainRepo.PurchaseRepository {
	return &purchaseRepository{db: db}
}

func (r *purchaseRepository) Create(ctx context.Context, purchase *entity.Purchase, upfront *entity.SupplierPayment) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Supplier", "Payments").Create(purchase).Error; err != nil {
			return err
		}
		if upfront == nil {
			return nil
		}
		upfront.PurchaseID = &purchase.ID
		return tx.Create(upfront).Error
	})
}

func (r *purchaseRepository) GetByID(ctx context.Context, shopID, id uuid.UUID) (*entity.Purchase, error) {
	var purchase entity.Purchase
	err := r.db.WithContext(ctx).
		Preload("Supplier").
		Preload("Payments", func(db *gorm.DB) *gorm.DB {
			return db.Order("payment_date ASC, created_at ASC")
		}).
		First(&purchase, "id = ? AND shop_id = ?", id, shopID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &purchase, nil
}

func (r *purchaseRepository) List(ctx context.Context, shopID uuid.UUID, params *domainRepo.PurchaseFilterParams) ([]entity.Purchase, int64, error) {
	var purchases []entity.Purchase
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Purchase{}).Scopes(ShopScope(shopID))
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}
	if params.SupplierID != nil {
		query = query.Where("supplier_id = ?", *params.SupplierID)
	}
	if params.StartDate != nil {
		query = query.Where("purchase_date >= ?", *params.StartDate)
	}
	if params.EndDate != nil {
		query = query.Where("purchase_date <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Preload("Supplier").
		Scopes(Paginate(params.Pagination)).
		Order("purchase_date DESC, created_at DESC").
		Find(&purchases).Error

	return purchases, total, err
}

// RecordPayment increments paid_amount only while it stays within total_amount:
// UPDATE purchases SET paid_amount = paid_amount + ? WHERE id = ? AND paid_amount + ? <= total_amount
func (r *purchaseRepository) RecordPayment(ctx context.Context, payment *entity.SupplierPayment) (*entity.Purchase, error) {
	if payment.PurchaseID == nil {
		return nil, errors.New("supplier payment has no purchase")
	}

	var purchase entity.Purchase
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&entity.Purchase{}).
			Where("id = ? AND shop_id = ? AND paid_amount + ? <= total_amount", *payment.PurchaseID, payment.ShopID, payment.Amount).
			Update("paid_amount", gorm.Expr("paid_amount + ?", payment.Amount))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainRepo.ErrPaymentExceedsOutstanding
		}

		if err := tx.First(&purchase, "id = ?", *payment.PurchaseID).Error; err != nil {
			return err
		}
		purchase.DeriveStatus()
		if err := tx.Model(&entity.Purchase{}).
			Where("id = ?", purchase.ID).
			Update("status", purchase.Status).Error; err != nil {
			return err
		}

		return tx.Create(payment).Error
	})
	if err != nil {
		return nil, err
	}
	return &purchase, nil
}
