package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/shopledger-api/internal/domain/enum"
	domainRepo "github.com/sangkips/shopledger-api/internal/domain/repository"
	"github.com/sangkips/shopledger-api/pkg/bizdate"
	"gorm.io/gorm"
)

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) domainRepo.ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) SalesByPaymentMethod(ctx context.Context, shopID uuid.UUID, from, to bizdate.Date) ([]domainRepo.PaymentMethodTotal, error) {
	var results []domainRepo.PaymentMethodTotal

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			payment_method,
			COUNT(*) AS count,
			COALESCE(SUM(total_amount), 0) AS total
		FROM sales
		WHERE shop_id = ? AND sale_date BETWEEN ? AND ?
		GROUP BY payment_method
		ORDER BY total DESC
	`, shopID, from, to).Scan(&results).Error

	if err != nil {
		return nil, err
	}
	return results, nil
}

// ServicesByType counts COMPLETED transactions only, matching what the closing aggregates
func (r *reportRepository) ServicesByType(ctx context.Context, shopID uuid.UUID, from, to bizdate.Date) ([]domainRepo.ServiceTypeTotal, error) {
	var results []domainRepo.ServiceTypeTotal

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			service_type,
			COUNT(*) AS count,
			COALESCE(SUM(amount), 0) AS amount,
			COALESCE(SUM(commission), 0) AS commission,
			COALESCE(SUM(discount), 0) AS discount,
			COALESCE(SUM(net_commission), 0) AS net_commission,
			COALESCE(SUM(CASE WHEN net_commission < 0 THEN 1 ELSE 0 END), 0) AS loss_count
		FROM service_transactions
		WHERE shop_id = ? AND transaction_date BETWEEN ? AND ? AND status = ?
		GROUP BY service_type
		ORDER BY service_type
	`, shopID, from, to, enum.TransactionStatusCompleted).Scan(&results).Error

	if err != nil {
		return nil, err
	}
	return results, nil
}

// PurchasesBySupplier lists suppliers with purchases or payments in the range
func (r *reportRepository) PurchasesBySupplier(ctx context.Context, shopID uuid.UUID, from, to bizdate.Date) ([]domainRepo.SupplierTotal, error) {
	var results []domainRepo.SupplierTotal

	err := r.db.WithContext(ctx).Raw(`
		SELECT
			s.id AS supplier_id,
			s.name AS supplier_name,
			COALESCE(p.purchase_count, 0) AS purchase_count,
			COALESCE(p.purchased, 0) AS purchased,
			COALESCE(sp.paid, 0) AS paid
		FROM suppliers s
		LEFT JOIN (
			SELECT supplier_id, COUNT(*) AS purchase_count, SUM(total_amount) AS purchased
			FROM purchases
			WHERE shop_id = ? AND purchase_date BETWEEN ? AND ?
			GROUP BY supplier_id
		) p ON p.supplier_id = s.id
		LEFT JOIN (
			SELECT supplier_id, SUM(amount) AS paid
			FROM supplier_payments
			WHERE shop_id = ? AND payment_date BETWEEN ? AND ?
			GROUP BY supplier_id
		) sp ON sp.supplier_id = s.id
		WHERE s.shop_id = ? AND s.deleted_at IS NULL
			AND (p.supplier_id IS NOT NULL OR sp.supplier_id IS NOT NULL)
		ORDER BY purchased DESC, s.name ASC
	`, shopID, from, to, shopID, from, to, shopID).Scan(&results).Error

	if err != nil {
		return nil, err
	}
	return results, nil
}
