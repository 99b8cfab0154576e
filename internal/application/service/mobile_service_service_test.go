package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sangkips/shopledger-api/internal/domain/entity"
	"github.com/sangkips/shopledger-api/internal/domain/enum"
	mock_repository "github.com/sangkips/shopledger-api/internal/domain/repository/mocks"
	"github.com/sangkips/shopledger-api/pkg/apperror"
	"github.com/sangkips/shopledger-api/pkg/bizdate"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mobileServiceFixture struct {
	svc     *MobileServiceService
	txnRepo *mock_repository.MockServiceTransactionRepository
	feeRepo *mock_repository.MockFeeRuleRepository
	shopID  uuid.UUID
	owner   Actor
	worker  Actor
	today   bizdate.Date
	ctx     context.Context
}

func newMobileServiceFixture(t *testing.T) *mobileServiceFixture {
	ctrl := gomock.NewController(t)
	shopID := uuid.New()
	f := &mobileServiceFixture{
		txnRepo: mock_repository.NewMockServiceTransactionRepository(ctrl),
		feeRepo: mock_repository.NewMockFeeRuleRepository(ctrl),
		shopID:  shopID,
		owner:   Actor{UserID: uuid.New(), Role: enum.RoleShopOwner, ShopID: shopID},
		worker:  Actor{UserID: uuid.New(), Role: enum.RoleShopWorker, ShopID: shopID},
		today:   bizdate.New(2024, 3, 15),
		ctx:     context.Background(),
	}
	f.svc = NewMobileServiceService(f.txnRepo, f.feeRepo, fixedClock(2024, 3, 15))
	return f
}

func statusOf(err error) int {
	return apperror.GetAppError(err).Code
}

func TestCreateTransactionResolvesCommission(t *testing.T) {
	f := newMobileServiceFixture(t)

	f.feeRepo.EXPECT().
		GetByServiceType(gomock.Any(), f.shopID, enum.ServiceTypeEasypaisaCashIn).
		Return(&entity.FeeRule{ShopID: f.shopID, IsPercentage: true, Rate: dec("2")}, nil)
	f.txnRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	txn, err := f.svc.Create(f.ctx, f.worker, f.shopID, &CreateServiceTransactionInput{
		ServiceType: enum.ServiceTypeEasypaisaCashIn,
		Amount:      dec("5000"),
		Discount:    dec("30"),
	})
	require.NoError(t, err)

	assert.True(t, dec("100").Equal(txn.Commission))
	assert.True(t, dec("70").Equal(txn.NetCommission))
	assert.True(t, dec("2").Equal(txn.CommissionRate))
	assert.Equal(t, enum.CommissionModePercentage, txn.CommissionMode)
	assert.Equal(t, enum.TransactionStatusCompleted, txn.Status)
	assert.Equal(t, f.today, txn.TransactionDate)
	assert.Equal(t, f.worker.UserID, txn.CreatedBy)
	assert.Equal(t, f.shopID, txn.ShopID)
}

func TestCreateTransactionKeepsManualCommission(t *testing.T) {
	f := newMobileServiceFixture(t)
	manual := dec("40")
	jazz := enum.LoadProviderJazz

	f.txnRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	txn, err := f.svc.Create(f.ctx, f.owner, f.shopID, &CreateServiceTransactionInput{
		ServiceType:  enum.ServiceTypeMobileLoad,
		LoadProvider: &jazz,
		Amount:       dec("1000"),
		Discount:     dec("50"),
		Commission:   &manual,
	})
	require.NoError(t, err)

	assert.Equal(t, enum.CommissionModeManual, txn.CommissionMode)
	assert.True(t, dec("40").Equal(txn.Commission))
	assert.True(t, dec("-10").Equal(txn.NetCommission))
	assert.True(t, txn.IsLoss())
}

func TestCreateTransactionValidation(t *testing.T) {
	jazz := enum.LoadProviderJazz
	tomorrow := bizdate.New(2024, 3, 16)

	tests := []struct {
		name  string
		input CreateServiceTransactionInput
		field string
	}{
		{
			name:  "zero amount",
			input: CreateServiceTransactionInput{ServiceType: enum.ServiceTypeBankTransfer, Amount: decimal.Zero},
			field: "amount",
		},
		{
			name:  "mobile load without provider",
			input: CreateServiceTransactionInput{ServiceType: enum.ServiceTypeMobileLoad, Amount: dec("100")},
			field: "load_provider",
		},
		{
			name:  "provider on a non-load service",
			input: CreateServiceTransactionInput{ServiceType: enum.ServiceTypeBillPayment, LoadProvider: &jazz, Amount: dec("100")},
			field: "load_provider",
		},
		{
			name:  "unknown service type",
			input: CreateServiceTransactionInput{ServiceType: "WESTERN_UNION", Amount: dec("100")},
			field: "service_type",
		},
		{
			name:  "future date",
			input: CreateServiceTransactionInput{ServiceType: enum.ServiceTypeBankTransfer, Amount: dec("100"), TransactionDate: &tomorrow},
			field: "transaction_date",
		},
		{
			name:  "negative discount",
			input: CreateServiceTransactionInput{ServiceType: enum.ServiceTypeBankTransfer, Amount: dec("100"), Discount: dec("-1")},
			field: "discount",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newMobileServiceFixture(t)

			_, err := f.svc.Create(f.ctx, f.owner, f.shopID, &tt.input)
			require.Error(t, err)

			appErr := apperror.GetAppError(err)
			assert.Equal(t, http.StatusBadRequest, appErr.Code)
			require.NotEmpty(t, appErr.Errors)
			assert.Equal(t, tt.field, appErr.Errors[0].Field)
		})
	}
}

func TestCreateTransactionRejectsForeignShop(t *testing.T) {
	f := newMobileServiceFixture(t)

	_, err := f.svc.Create(f.ctx, f.owner, uuid.New(), &CreateServiceTransactionInput{
		ServiceType: enum.ServiceTypeBankTransfer,
		Amount:      dec("100"),
	})
	assert.Equal(t, http.StatusForbidden, statusOf(err))
}

func TestUpdateTransactionRederivesNetWithoutResolver(t *testing.T) {
	f := newMobileServiceFixture(t)
	id := uuid.New()
	stored := &entity.ServiceTransaction{
		ID:             id,
		ShopID:         f.shopID,
		ServiceType:    enum.ServiceTypeJazzcashCashOut,
		Amount:         dec("3000"),
		Commission:     dec("60"),
		CommissionMode: enum.CommissionModePercentage,
		Discount:       dec("0"),
		NetCommission:  dec("60"),
	}

	f.txnRepo.EXPECT().GetByID(gomock.Any(), f.shopID, id).Return(stored, nil)
	f.txnRepo.EXPECT().Update(gomock.Any(), stored).Return(nil)
	// the fee rule repository must not be consulted on update
	f.feeRepo.EXPECT().GetByServiceType(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	amount := dec("6000")
	discount := dec("15")
	txn, err := f.svc.Update(f.ctx, f.owner, f.shopID, id, &UpdateServiceTransactionInput{
		Amount:   &amount,
		Discount: &discount,
	})
	require.NoError(t, err)

	assert.True(t, dec("60").Equal(txn.Commission))
	assert.True(t, dec("45").Equal(txn.NetCommission))
	assert.Equal(t, enum.CommissionModePercentage, txn.CommissionMode)
}

func TestUpdateTransactionManualCommission(t *testing.T) {
	f := newMobileServiceFixture(t)
	id := uuid.New()
	stored := &entity.ServiceTransaction{
		ID:          id,
		ShopID:      f.shopID,
		ServiceType: enum.ServiceTypeBankTransfer,
		Amount:      dec("10000"),
		Commission:  dec("100"),
		Discount:    dec("20"),
	}

	f.txnRepo.EXPECT().GetByID(gomock.Any(), f.shopID, id).Return(stored, nil)
	f.txnRepo.EXPECT().Update(gomock.Any(), stored).Return(nil)

	commission := dec("150")
	txn, err := f.svc.Update(f.ctx, f.owner, f.shopID, id, &UpdateServiceTransactionInput{Commission: &commission})
	require.NoError(t, err)

	assert.Equal(t, enum.CommissionModeManual, txn.CommissionMode)
	assert.True(t, dec("130").Equal(txn.NetCommission))
}

func errorFields(err error) []string {
	var fields []string
	for _, fe := range apperror.GetAppError(err).Errors {
		fields = append(fields, fe.Field)
	}
	return fields
}

func TestCreateTransactionRejectsFractionsOfPaisa(t *testing.T) {
	f := newMobileServiceFixture(t)
	f.txnRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	commission := dec("10")
	_, err := f.svc.Create(f.ctx, f.worker, f.shopID, &CreateServiceTransactionInput{
		ServiceType: enum.ServiceTypeBankTransfer,
		Amount:      dec("1000.555"),
		Discount:    dec("0.005"),
		Commission:  &commission,
	})

	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, statusOf(err))
	assert.ElementsMatch(t, []string{"amount", "discount"}, errorFields(err))
}

func TestUpdateTransactionRejectsFractionsOfPaisa(t *testing.T) {
	f := newMobileServiceFixture(t)
	id := uuid.New()
	stored := &entity.ServiceTransaction{ID: id, ShopID: f.shopID, ServiceType: enum.ServiceTypeBankTransfer, Commission: dec("10")}

	f.txnRepo.EXPECT().GetByID(gomock.Any(), f.shopID, id).Return(stored, nil)
	f.txnRepo.EXPECT().Update(gomock.Any(), gomock.Any()).Times(0)

	discount := dec("0.005")
	_, err := f.svc.Update(f.ctx, f.owner, f.shopID, id, &UpdateServiceTransactionInput{Discount: &discount})

	assert.Equal(t, http.StatusBadRequest, statusOf(err))
	assert.Equal(t, []string{"discount"}, errorFields(err))
}

func TestUpdateTransactionNotFound(t *testing.T) {
	f := newMobileServiceFixture(t)
	id := uuid.New()

	f.txnRepo.EXPECT().GetByID(gomock.Any(), f.shopID, id).Return(nil, nil)

	_, err := f.svc.Update(f.ctx, f.owner, f.shopID, id, &UpdateServiceTransactionInput{})
	assert.Equal(t, http.StatusNotFound, statusOf(err))
}

func TestPreviewCommission(t *testing.T) {
	f := newMobileServiceFixture(t)

	f.feeRepo.EXPECT().
		GetByServiceType(gomock.Any(), f.shopID, enum.ServiceTypeBankTransfer).
		Return(&entity.FeeRule{Rate: dec("10")}, nil)

	quote, err := f.svc.PreviewCommission(f.ctx, f.worker, f.shopID, enum.ServiceTypeBankTransfer, dec("20000"))
	require.NoError(t, err)
	assert.True(t, dec("200").Equal(quote.Commission))
	assert.Equal(t, enum.CommissionModeFlat, quote.Mode)
}
