package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/sangkips/shopledger-api/internal/domain/entity"
	"github.com/sangkips/shopledger-api/internal/domain/enum"
	"github.com/sangkips/shopledger-api/internal/domain/repository"
	"github.com/sangkips/shopledger-api/internal/infrastructure/database"
	infraRepo "github.com/sangkips/shopledger-api/internal/infrastructure/repository"
	"github.com/sangkips/shopledger-api/pkg/apperror"
	"github.com/sangkips/shopledger-api/pkg/bizdate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type purchaseServiceFixture struct {
	svc      *PurchaseService
	ledger   repository.LedgerRepository
	owner    Actor
	supplier *entity.Supplier
	ctx      context.Context
}

func newPurchaseServiceFixture(t *testing.T) *purchaseServiceFixture {
	t.Helper()
	db, err := database.NewSQLiteDB("file:"+uuid.NewString()+"?mode=memory&cache=shared", &gorm.Config{
		Logger:         logger.Discard,
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	shopID := uuid.New()
	owner := Actor{UserID: uuid.New(), Role: enum.RoleShopOwner, ShopID: shopID}
	svc := NewPurchaseService(infraRepo.NewPurchaseRepository(db), infraRepo.NewSupplierRepository(db), fixedClock(2024, 3, 15))

	ctx := context.Background()
	supplier, err := svc.CreateSupplier(ctx, owner, shopID, &CreateSupplierInput{Name: "Hafeez Traders"})
	require.NoError(t, err)

	return &purchaseServiceFixture{
		svc:      svc,
		ledger:   infraRepo.NewLedgerRepository(db),
		owner:    owner,
		supplier: supplier,
		ctx:      ctx,
	}
}

func (f *purchaseServiceFixture) paidOn(t *testing.T, day bizdate.Date) string {
	t.Helper()
	paid, err := f.ledger.SumSupplierPaymentsByShopAndDate(f.ctx, f.owner.ShopID, day)
	require.NoError(t, err)
	return paid.StringFixed(2)
}

func TestCreatePurchaseUpfrontPaymentIsDatedThePurchaseDate(t *testing.T) {
	f := newPurchaseServiceFixture(t)
	purchaseDay := bizdate.New(2024, 3, 10)

	purchase, err := f.svc.CreatePurchase(f.ctx, f.owner, f.owner.ShopID, &CreatePurchaseInput{
		SupplierID:   f.supplier.ID,
		PurchaseDate: &purchaseDay,
		TotalAmount:  dec("90000"),
		PaidAmount:   dec("50000"),
	})
	require.NoError(t, err)
	assert.Equal(t, enum.PurchaseStatusPartial, purchase.Status)

	stored, err := f.svc.GetPurchase(f.ctx, f.owner, f.owner.ShopID, purchase.ID)
	require.NoError(t, err)
	require.Len(t, stored.Payments, 1)
	assert.Equal(t, purchaseDay, stored.Payments[0].PaymentDate)
	assert.Equal(t, enum.PaymentMethodCash, stored.Payments[0].PaymentMethod)

	assert.Equal(t, "50000.00", f.paidOn(t, purchaseDay))
	assert.Equal(t, "0.00", f.paidOn(t, bizdate.New(2024, 3, 15)))
}

func TestPurchaseStatusFollowsPayments(t *testing.T) {
	f := newPurchaseServiceFixture(t)
	purchase, err := f.svc.CreatePurchase(f.ctx, f.owner, f.owner.ShopID, &CreatePurchaseInput{
		SupplierID:  f.supplier.ID,
		TotalAmount: dec("90000"),
	})
	require.NoError(t, err)
	assert.Equal(t, enum.PurchaseStatusUnpaid, purchase.Status)

	monday := bizdate.New(2024, 3, 11)
	updated, err := f.svc.RecordPayment(f.ctx, f.owner, f.owner.ShopID, &RecordSupplierPaymentInput{
		PurchaseID:  purchase.ID,
		Amount:      dec("30000"),
		PaymentDate: &monday,
	})
	require.NoError(t, err)
	assert.Equal(t, enum.PurchaseStatusPartial, updated.Status)

	updated, err = f.svc.RecordPayment(f.ctx, f.owner, f.owner.ShopID, &RecordSupplierPaymentInput{
		PurchaseID: purchase.ID,
		Amount:     dec("60000"),
	})
	require.NoError(t, err)
	assert.Equal(t, enum.PurchaseStatusPaid, updated.Status)

	assert.Equal(t, "30000.00", f.paidOn(t, monday))
	assert.Equal(t, "60000.00", f.paidOn(t, bizdate.New(2024, 3, 15)))

	_, err = f.svc.RecordPayment(f.ctx, f.owner, f.owner.ShopID, &RecordSupplierPaymentInput{
		PurchaseID: purchase.ID,
		Amount:     dec("1"),
	})
	assert.Equal(t, http.StatusBadRequest, statusOf(err))
}

func TestPurchaseRecordPaymentRejectsOverpayment(t *testing.T) {
	f := newPurchaseServiceFixture(t)
	purchase, err := f.svc.CreatePurchase(f.ctx, f.owner, f.owner.ShopID, &CreatePurchaseInput{
		SupplierID:  f.supplier.ID,
		TotalAmount: dec("90000"),
		PaidAmount:  dec("50000"),
	})
	require.NoError(t, err)

	_, err = f.svc.RecordPayment(f.ctx, f.owner, f.owner.ShopID, &RecordSupplierPaymentInput{
		PurchaseID: purchase.ID,
		Amount:     dec("40000.01"),
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, statusOf(err))
	appErr := apperror.GetAppError(err)
	require.NotEmpty(t, appErr.Errors)
	assert.Equal(t, "amount", appErr.Errors[0].Field)
	assert.Contains(t, appErr.Errors[0].Message, "40000.00")

	stored, err := f.svc.GetPurchase(f.ctx, f.owner, f.owner.ShopID, purchase.ID)
	require.NoError(t, err)
	assert.True(t, dec("50000").Equal(stored.PaidAmount))
	assert.Len(t, stored.Payments, 1)
	assert.Equal(t, "50000.00", f.paidOn(t, bizdate.New(2024, 3, 15)))
}

func TestCreatePurchaseValidation(t *testing.T) {
	f := newPurchaseServiceFixture(t)
	tomorrow := bizdate.New(2024, 3, 16)

	_, err := f.svc.CreatePurchase(f.ctx, f.owner, f.owner.ShopID, &CreatePurchaseInput{
		SupplierID:   f.supplier.ID,
		PurchaseDate: &tomorrow,
		TotalAmount:  dec("100"),
		PaidAmount:   dec("150"),
	})
	assert.Equal(t, http.StatusBadRequest, statusOf(err))
	assert.ElementsMatch(t, []string{"paid_amount", "purchase_date"}, errorFields(err))

	_, err = f.svc.CreatePurchase(f.ctx, f.owner, f.owner.ShopID, &CreatePurchaseInput{
		SupplierID:  uuid.New(),
		TotalAmount: dec("100"),
	})
	assert.Equal(t, http.StatusNotFound, statusOf(err))

	_, err = f.svc.CreatePurchase(f.ctx, f.owner, uuid.New(), &CreatePurchaseInput{
		SupplierID:  f.supplier.ID,
		TotalAmount: dec("100"),
	})
	assert.Equal(t, http.StatusForbidden, statusOf(err))
}
