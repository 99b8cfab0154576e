package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sangkips/shopledger-api/internal/application/service"
	"github.com/sangkips/shopledger-api/internal/domain/entity"
	"github.com/sangkips/shopledger-api/internal/domain/enum"
	"github.com/sangkips/shopledger-api/internal/domain/repository"
	mock_repository "github.com/sangkips/shopledger-api/internal/domain/repository/mocks"
	"github.com/sangkips/shopledger-api/internal/presentation/http/middleware"
	"github.com/sangkips/shopledger-api/pkg/bizdate"
	"github.com/sangkips/shopledger-api/pkg/printer"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type closingEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		Closing struct {
			CashSales   decimal.Decimal `json:"cash_sales"`
			Credit      decimal.Decimal `json:"credit"`
			TotalIncome decimal.Decimal `json:"total_income"`
			NetAmount   decimal.Decimal `json:"net_amount"`
			AutoFilled  []string        `json:"auto_filled"`
			Date        string          `json:"date"`
		} `json:"closing"`
	} `json:"data"`
	Errors []struct {
		Field string `json:"field"`
	} `json:"errors"`
}

func closingRouter(t *testing.T, role enum.UserRole, shopID uuid.UUID) (*gin.Engine, *mock_repository.MockLedgerRepository) {
	ctrl := gomock.NewController(t)
	ledger := mock_repository.NewMockLedgerRepository(ctrl)
	clock := func() time.Time { return time.Date(2024, 3, 15, 20, 0, 0, 0, time.UTC) }

	closingService := service.NewClosingService(ledger, service.NewDailyAggregator(ledger), clock)
	printerService := service.NewPrinterService(printer.Discard{}, ledger, nil, 32)
	h := NewDailyClosingHandler(closingService, printerService)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.CtxUserID, uuid.New())
		c.Set(middleware.CtxUserRole, role.String())
		c.Set(middleware.CtxShopID, shopID)
		c.Next()
	})
	r.GET("/daily-closing", h.Get)
	r.POST("/daily-closing", h.Submit)
	return r, ledger
}

func expectQuietDay(ledger *mock_repository.MockLedgerRepository, shopID uuid.UUID, date bizdate.Date) {
	ledger.EXPECT().SumSalesByShopAndDate(gomock.Any(), shopID, date).
		Return(&repository.SalesTotal{Total: decimal.NewFromInt(1200), Count: 3}, nil)
	ledger.EXPECT().SumServiceCommissionsByShopAndDate(gomock.Any(), shopID, date).Return(nil, nil)
	ledger.EXPECT().SumSupplierPaymentsByShopAndDate(gomock.Any(), shopID, date).Return(decimal.Zero, nil)
	ledger.EXPECT().SumRemainingLoanBalanceByShop(gomock.Any(), shopID).Return(decimal.Zero, nil)
}

func postClosing(r *gin.Engine, body string) (*httptest.ResponseRecorder, closingEnvelope) {
	req := httptest.NewRequest(http.MethodPost, "/daily-closing", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env closingEnvelope
	_ = json.Unmarshal(w.Body.Bytes(), &env)
	return w, env
}

func TestSubmitClosingNullFieldsAreAutoFilled(t *testing.T) {
	shopID := uuid.New()
	date := bizdate.New(2024, 3, 14)
	r, ledger := closingRouter(t, enum.RoleShopOwner, shopID)
	expectQuietDay(ledger, shopID, date)
	ledger.EXPECT().UpsertDailyClosing(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *entity.DailyClosing) (*entity.DailyClosing, error) { return c, nil })

	w, env := postClosing(r, `{"date":"2024-03-14","cash_sales":null,"credit":"150.5","notes":"ok"}`)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.True(t, env.Success)
	assert.Equal(t, "2024-03-14", env.Data.Closing.Date)
	assert.True(t, decimal.NewFromInt(1200).Equal(env.Data.Closing.CashSales))
	assert.True(t, decimal.RequireFromString("150.5").Equal(env.Data.Closing.Credit))
	assert.True(t, decimal.RequireFromString("1049.5").Equal(env.Data.Closing.NetAmount))
	assert.Contains(t, env.Data.Closing.AutoFilled, "cash_sales")
}

func TestSubmitClosingExplicitZeroIsKept(t *testing.T) {
	shopID := uuid.New()
	date := bizdate.New(2024, 3, 15)
	r, ledger := closingRouter(t, enum.RoleShopOwner, shopID)
	expectQuietDay(ledger, shopID, date)
	ledger.EXPECT().UpsertDailyClosing(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c *entity.DailyClosing) (*entity.DailyClosing, error) { return c, nil })

	w, env := postClosing(r, `{"date":"2024-03-15","cash_sales":0}`)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.True(t, env.Data.Closing.CashSales.IsZero())
	assert.NotContains(t, env.Data.Closing.AutoFilled, "cash_sales")
}

func TestSubmitClosingWithoutDateIsValidationError(t *testing.T) {
	r, _ := closingRouter(t, enum.RoleShopOwner, uuid.New())

	w, env := postClosing(r, `{"cash":"10"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	require.NotEmpty(t, env.Errors)
	assert.Equal(t, "date", env.Errors[0].Field)
}

func TestSubmitClosingMalformedBody(t *testing.T) {
	r, _ := closingRouter(t, enum.RoleShopOwner, uuid.New())

	w, _ := postClosing(r, `{"date":"15/03/2024"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitClosingWorkerForbidden(t *testing.T) {
	r, _ := closingRouter(t, enum.RoleShopWorker, uuid.New())

	w, _ := postClosing(r, `{"date":"2024-03-15"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetClosingRejectsBadDateQuery(t *testing.T) {
	r, _ := closingRouter(t, enum.RoleShopWorker, uuid.New())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/daily-closing?date=yesterday", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
