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
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertFeeRuleStoresSlabsInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_repository.NewMockFeeRuleRepository(ctrl)
	svc := NewFeeRuleService(repo)
	shopID := uuid.New()
	owner := Actor{UserID: uuid.New(), Role: enum.RoleShopOwner, ShopID: shopID}

	var stored *entity.FeeRule
	repo.EXPECT().Upsert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r *entity.FeeRule) error {
		stored = r
		return nil
	})

	rule, err := svc.Upsert(context.Background(), owner, shopID, &UpsertFeeRuleInput{
		ServiceType: enum.ServiceTypeEasypaisaCashOut,
		UseSlabs:    true,
		Slabs: []FeeSlabInput{
			{MinAmount: dec("0"), MaxAmount: dec("1000"), Fee: dec("20")},
			{MinAmount: dec("1001"), MaxAmount: dec("5000"), Fee: dec("50")},
		},
	})
	require.NoError(t, err)
	require.Same(t, rule, stored)

	assert.Equal(t, shopID, rule.ShopID)
	assert.Equal(t, enum.CommissionModeSlab, rule.Mode())
	require.Len(t, rule.Slabs, 2)
	assert.Equal(t, 0, rule.Slabs[0].Position)
	assert.Equal(t, 1, rule.Slabs[1].Position)
}

func TestUpsertFeeRuleValidation(t *testing.T) {
	tests := []struct {
		name  string
		input UpsertFeeRuleInput
		field string
	}{
		{
			name:  "unknown service type",
			input: UpsertFeeRuleInput{ServiceType: "CRYPTO", Rate: dec("1")},
			field: "service_type",
		},
		{
			name:  "negative rate",
			input: UpsertFeeRuleInput{ServiceType: enum.ServiceTypeBankTransfer, Rate: dec("-1")},
			field: "rate",
		},
		{
			name:  "percentage above 100",
			input: UpsertFeeRuleInput{ServiceType: enum.ServiceTypeBankTransfer, IsPercentage: true, Rate: dec("100.01")},
			field: "rate",
		},
		{
			name:  "slabs enabled without slabs",
			input: UpsertFeeRuleInput{ServiceType: enum.ServiceTypeBankTransfer, UseSlabs: true},
			field: "slabs",
		},
		{
			name: "inverted slab",
			input: UpsertFeeRuleInput{ServiceType: enum.ServiceTypeBankTransfer, UseSlabs: true, Slabs: []FeeSlabInput{
				{MinAmount: dec("500"), MaxAmount: dec("100"), Fee: dec("5")},
			}},
			field: "slabs[0].max_amount",
		},
		{
			name: "touching slabs overlap",
			input: UpsertFeeRuleInput{ServiceType: enum.ServiceTypeBankTransfer, UseSlabs: true, Slabs: []FeeSlabInput{
				{MinAmount: dec("1000"), MaxAmount: dec("5000"), Fee: dec("50")},
				{MinAmount: dec("0"), MaxAmount: dec("1000"), Fee: dec("20")},
			}},
			field: "slabs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_repository.NewMockFeeRuleRepository(ctrl)
			shopID := uuid.New()
			owner := Actor{UserID: uuid.New(), Role: enum.RoleShopOwner, ShopID: shopID}

			_, err := NewFeeRuleService(repo).Upsert(context.Background(), owner, shopID, &tt.input)
			require.Error(t, err)

			appErr := apperror.GetAppError(err)
			assert.Equal(t, http.StatusBadRequest, appErr.Code)
			require.NotEmpty(t, appErr.Errors)
			assert.Equal(t, tt.field, appErr.Errors[0].Field)
		})
	}
}

func TestUpsertFeeRuleForbiddenForWorker(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_repository.NewMockFeeRuleRepository(ctrl)
	shopID := uuid.New()
	worker := Actor{UserID: uuid.New(), Role: enum.RoleShopWorker, ShopID: shopID}

	_, err := NewFeeRuleService(repo).Upsert(context.Background(), worker, shopID, &UpsertFeeRuleInput{
		ServiceType: enum.ServiceTypeBankTransfer,
		Rate:        dec("10"),
	})
	assert.Equal(t, http.StatusForbidden, statusOf(err))
}

func TestListFeeRulesRequiresShop(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_repository.NewMockFeeRuleRepository(ctrl)
	admin := Actor{UserID: uuid.New(), Role: enum.RoleSuperAdmin}

	_, err := NewFeeRuleService(repo).List(context.Background(), admin, uuid.Nil)
	assert.Equal(t, http.StatusBadRequest, statusOf(err))
}
