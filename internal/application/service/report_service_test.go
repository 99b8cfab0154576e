package service

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sangkips/shopledger-api/internal/domain/entity"
	"github.com/sangkips/shopledger-api/internal/domain/enum"
	"github.com/sangkips/shopledger-api/internal/domain/repository"
	mock_repository "github.com/sangkips/shopledger-api/internal/domain/repository/mocks"
	"github.com/sangkips/shopledger-api/pkg/bizdate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type stubReports struct {
	calls int
}

func (s *stubReports) SalesByPaymentMethod(context.Context, uuid.UUID, bizdate.Date, bizdate.Date) ([]repository.PaymentMethodTotal, error) {
	s.calls++
	return []repository.PaymentMethodTotal{
		{PaymentMethod: enum.PaymentMethodCash, Count: 4, Total: dec("280000")},
		{PaymentMethod: enum.PaymentMethodEasypaisa, Count: 1, Total: dec("1500.5")},
	}, nil
}

func (s *stubReports) ServicesByType(context.Context, uuid.UUID, bizdate.Date, bizdate.Date) ([]repository.ServiceTypeTotal, error) {
	s.calls++
	return []repository.ServiceTypeTotal{
		{ServiceType: enum.ServiceTypeMobileLoad, Count: 2, Amount: dec("2000"), Commission: dec("50"), NetCommission: dec("50")},
	}, nil
}

func (s *stubReports) PurchasesBySupplier(context.Context, uuid.UUID, bizdate.Date, bizdate.Date) ([]repository.SupplierTotal, error) {
	s.calls++
	return []repository.SupplierTotal{
		{SupplierName: "Hafeez Traders", PurchaseCount: 1, Purchased: dec("90000"), Paid: dec("50000")},
	}, nil
}

func newReportFixture(t *testing.T) (*ReportService, *stubReports, *mock_repository.MockLedgerRepository, Actor) {
	ctrl := gomock.NewController(t)
	ledger := mock_repository.NewMockLedgerRepository(ctrl)
	reports := &stubReports{}
	owner := Actor{UserID: uuid.New(), Role: enum.RoleShopOwner, ShopID: uuid.New()}
	return NewReportService(reports, ledger), reports, ledger, owner
}

func TestReportSummaryRejectsBadRanges(t *testing.T) {
	svc, reports, _, owner := newReportFixture(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		from, to bizdate.Date
	}{
		{"missing from", bizdate.Date{}, bizdate.New(2024, 3, 1)},
		{"reversed", bizdate.New(2024, 3, 2), bizdate.New(2024, 3, 1)},
		{"longer than a year", bizdate.New(2023, 1, 1), bizdate.New(2024, 6, 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Summary(ctx, owner, owner.ShopID, tt.from, tt.to)
			assert.Equal(t, http.StatusBadRequest, statusOf(err))
		})
	}
	assert.Zero(t, reports.calls)
}

func TestReportSummaryForeignShop(t *testing.T) {
	svc, reports, _, owner := newReportFixture(t)

	_, err := svc.Summary(context.Background(), owner, uuid.New(), bizdate.New(2024, 3, 1), bizdate.New(2024, 3, 31))
	assert.Equal(t, http.StatusForbidden, statusOf(err))
	assert.Zero(t, reports.calls)
}

func TestReportExportCSV(t *testing.T) {
	svc, _, ledger, owner := newReportFixture(t)
	from, to := bizdate.New(2024, 3, 1), bizdate.New(2024, 3, 31)
	ledger.EXPECT().ListDailyClosingsBetween(gomock.Any(), owner.ShopID, from, to).Return(nil, nil)

	file, err := svc.Export(context.Background(), owner, owner.ShopID, from, to, ReportSuppliers, FormatCSV)
	require.NoError(t, err)

	assert.Equal(t, "suppliers-2024-03-01-2024-03-31.csv", file.Filename)
	lines := strings.Split(strings.TrimSpace(string(file.Data)), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "supplier,purchases,purchased,paid,outstanding", lines[0])
	assert.Equal(t, "Hafeez Traders,1,90000.00,50000.00,40000.00", lines[1])
}

func TestReportExportUnknownReportAndFormat(t *testing.T) {
	svc, _, ledger, owner := newReportFixture(t)
	from, to := bizdate.New(2024, 3, 1), bizdate.New(2024, 3, 31)
	ledger.EXPECT().ListDailyClosingsBetween(gomock.Any(), owner.ShopID, from, to).Return(nil, nil).Times(2)

	_, err := svc.Export(context.Background(), owner, owner.ShopID, from, to, "inventory", FormatCSV)
	assert.Equal(t, http.StatusBadRequest, statusOf(err))

	_, err = svc.Export(context.Background(), owner, owner.ShopID, from, to, ReportClosings, "pdf")
	assert.Equal(t, http.StatusBadRequest, statusOf(err))
}

func TestReportExportXLSXHasSheetPerReport(t *testing.T) {
	svc, _, ledger, owner := newReportFixture(t)
	from, to := bizdate.New(2024, 3, 1), bizdate.New(2024, 3, 31)

	closing := entity.DailyClosing{ShopID: owner.ShopID, BusinessDate: bizdate.New(2024, 3, 15), CashSales: dec("280000")}
	closing.Recalculate()
	ledger.EXPECT().ListDailyClosingsBetween(gomock.Any(), owner.ShopID, from, to).
		Return([]entity.DailyClosing{closing}, nil)

	file, err := svc.Export(context.Background(), owner, owner.ShopID, from, to, "", FormatXLSX)
	require.NoError(t, err)
	assert.Equal(t, "report-2024-03-01-2024-03-31.xlsx", file.Filename)

	book, err := excelize.OpenReader(bytes.NewReader(file.Data))
	require.NoError(t, err)
	defer book.Close()

	assert.Equal(t, []string{"Payment Methods", "Service Types", "Suppliers", "Closings"}, book.GetSheetList())
	rows, err := book.GetRows("Closings")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2024-03-15", rows[1][0])
	assert.Equal(t, "280000.00", rows[1][len(rows[1])-1])
}
