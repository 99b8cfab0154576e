package service

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/sangkips/shopledger-api/internal/domain/entity"
	"github.com/sangkips/shopledger-api/internal/domain/enum"
	"github.com/sangkips/shopledger-api/internal/domain/repository"
	"github.com/sangkips/shopledger-api/pkg/apperror"
	"github.com/sangkips/shopledger-api/pkg/bizdate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memSales keeps sales in a map keyed by id
type memSales struct {
	sales map[uuid.UUID]*entity.Sale
}

func (m *memSales) Create(_ context.Context, sale *entity.Sale) error {
	if sale.ID == uuid.Nil {
		sale.ID = uuid.New()
	}
	m.sales[sale.ID] = sale
	return nil
}

func (m *memSales) GetByID(_ context.Context, shopID, id uuid.UUID) (*entity.Sale, error) {
	sale, ok := m.sales[id]
	if !ok || sale.ShopID != shopID {
		return nil, nil
	}
	return sale, nil
}

func (m *memSales) Delete(_ context.Context, _, id uuid.UUID) error {
	delete(m.sales, id)
	return nil
}

func (m *memSales) List(_ context.Context, shopID uuid.UUID, params *repository.SaleFilterParams) ([]entity.Sale, int64, error) {
	var out []entity.Sale
	for _, s := range m.sales {
		if s.ShopID != shopID {
			continue
		}
		if params.Date != nil && s.SaleDate != *params.Date {
			continue
		}
		out = append(out, *s)
	}
	return out, int64(len(out)), nil
}

func newSaleFixture() (*SaleService, *memSales, Actor, Actor) {
	repo := &memSales{sales: map[uuid.UUID]*entity.Sale{}}
	shopID := uuid.New()
	owner := Actor{UserID: uuid.New(), Role: enum.RoleShopOwner, ShopID: shopID}
	worker := Actor{UserID: uuid.New(), Role: enum.RoleShopWorker, ShopID: shopID}
	return NewSaleService(repo, fixedClock(2024, 3, 15)), repo, owner, worker
}

func TestCreateSaleDefaults(t *testing.T) {
	svc, _, _, worker := newSaleFixture()

	sale, err := svc.CreateSale(context.Background(), worker, worker.ShopID, &CreateSaleInput{TotalAmount: dec("1500")})
	require.NoError(t, err)

	assert.Equal(t, bizdate.New(2024, 3, 15), sale.SaleDate)
	assert.Equal(t, enum.PaymentMethodCash, sale.PaymentMethod)
	assert.True(t, dec("1500").Equal(sale.TotalAmount))
	assert.True(t, strings.HasPrefix(sale.InvoiceNo, "INV"))
	assert.Equal(t, worker.UserID, sale.CreatedBy)
}

func TestCreateSaleValidation(t *testing.T) {
	svc, repo, _, worker := newSaleFixture()
	tomorrow := bizdate.New(2024, 3, 16)

	_, err := svc.CreateSale(context.Background(), worker, worker.ShopID, &CreateSaleInput{
		TotalAmount:   dec("0"),
		PaymentMethod: "BARTER",
		SaleDate:      &tomorrow,
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, statusOf(err))
	assert.Empty(t, repo.sales)
}

func TestCreateSaleRejectsFractionsOfPaisa(t *testing.T) {
	svc, repo, _, worker := newSaleFixture()

	_, err := svc.CreateSale(context.Background(), worker, worker.ShopID, &CreateSaleInput{TotalAmount: dec("1499.999")})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, statusOf(err))
	assert.Equal(t, "total_amount", apperror.GetAppError(err).Errors[0].Field)
	assert.Empty(t, repo.sales)
}

func TestListSalesByDate(t *testing.T) {
	svc, _, owner, worker := newSaleFixture()
	ctx := context.Background()
	yesterday := bizdate.New(2024, 3, 14)

	_, err := svc.CreateSale(ctx, worker, worker.ShopID, &CreateSaleInput{TotalAmount: dec("100")})
	require.NoError(t, err)
	_, err = svc.CreateSale(ctx, worker, worker.ShopID, &CreateSaleInput{TotalAmount: dec("200"), SaleDate: &yesterday})
	require.NoError(t, err)

	sales, page, err := svc.ListSales(ctx, owner, owner.ShopID, &repository.SaleFilterParams{Date: &yesterday})
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.True(t, dec("200").Equal(sales[0].TotalAmount))
	assert.Equal(t, int64(1), page.Total)
}

func TestDeleteSaleIsOwnerOnly(t *testing.T) {
	svc, repo, owner, worker := newSaleFixture()
	ctx := context.Background()

	sale, err := svc.CreateSale(ctx, worker, worker.ShopID, &CreateSaleInput{TotalAmount: dec("100")})
	require.NoError(t, err)

	err = svc.DeleteSale(ctx, worker, worker.ShopID, sale.ID)
	assert.Equal(t, http.StatusForbidden, statusOf(err))
	assert.Contains(t, repo.sales, sale.ID)

	require.NoError(t, svc.DeleteSale(ctx, owner, owner.ShopID, sale.ID))
	assert.NotContains(t, repo.sales, sale.ID)

	err = svc.DeleteSale(ctx, owner, owner.ShopID, sale.ID)
	assert.Equal(t, http.StatusNotFound, statusOf(err))
}
