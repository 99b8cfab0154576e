package service

import (
	"bytes"
	"context"
	"strconv"

	"github.com/google/uuid"
	"github.com/sangkips/shopledger-api/internal/domain/entity"
	"github.com/sangkips/shopledger-api/internal/domain/repository"
	"github.com/sangkips/shopledger-api/pkg/apperror"
	"github.com/sangkips/shopledger-api/pkg/bizdate"
	"github.com/sangkips/shopledger-api/pkg/export"
)

// Report names accepted by Export
const (
	ReportPaymentMethods = "payment-methods"
	ReportServiceTypes   = "service-types"
	ReportSuppliers      = "suppliers"
	ReportClosings       = "closings"

	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// maxReportRangeDays bounds a single report query
const maxReportRangeDays = 366

// ReportSummary groups a date range for display. It is never used to compute closings.
type ReportSummary struct {
	From            bizdate.Date                    `json:"from"`
	To              bizdate.Date                    `json:"to"`
	ByPaymentMethod []repository.PaymentMethodTotal `json:"by_payment_method"`
	ByServiceType   []repository.ServiceTypeTotal   `json:"by_service_type"`
	BySupplier      []repository.SupplierTotal      `json:"by_supplier"`
}

// ExportFile is a rendered report
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// ReportService serves read-only rollups
type ReportService struct {
	reportRepo repository.ReportRepository
	ledgerRepo repository.LedgerRepository
}

// NewReportService creates a new report service
func NewReportService(reportRepo repository.ReportRepository, ledgerRepo repository.LedgerRepository) *ReportService {
	return &ReportService{
		reportRepo: reportRepo,
		ledgerRepo: ledgerRepo,
	}
}

func validateRange(from, to bizdate.Date) error {
	if from.IsZero() || to.IsZero() {
		return apperror.NewBadRequestError("Both from and to dates are required")
	}
	if from.After(to) {
		return apperror.NewFieldError("from", "Start date must not be after end date")
	}
	if to.After(from.AddDays(maxReportRangeDays)) {
		return apperror.NewFieldError("to", "Date range cannot exceed one year")
	}
	return nil
}

// Summary returns the sales, service and supplier rollups for [from, to]
func (s *ReportService) Summary(ctx context.Context, actor Actor, shopID uuid.UUID, from, to bizdate.Date) (*ReportSummary, error) {
	if err := authorizeShop(actor, shopID); err != nil {
		return nil, err
	}
	if err := validateRange(from, to); err != nil {
		return nil, err
	}

	byPayment, err := s.reportRepo.SalesByPaymentMethod(ctx, shopID, from, to)
	if err != nil {
		return nil, err
	}
	byService, err := s.reportRepo.ServicesByType(ctx, shopID, from, to)
	if err != nil {
		return nil, err
	}
	bySupplier, err := s.reportRepo.PurchasesBySupplier(ctx, shopID, from, to)
	if err != nil {
		return nil, err
	}

	return &ReportSummary{
		From:            from,
		To:              to,
		ByPaymentMethod: byPayment,
		ByServiceType:   byService,
		BySupplier:      bySupplier,
	}, nil
}

// Export renders one report as CSV, or every report as an XLSX workbook
func (s *ReportService) Export(ctx context.Context, actor Actor, shopID uuid.UUID, from, to bizdate.Date, report, format string) (*ExportFile, error) {
	summary, err := s.Summary(ctx, actor, shopID, from, to)
	if err != nil {
		return nil, err
	}
	closings, err := s.ledgerRepo.ListDailyClosingsBetween(ctx, shopID, from, to)
	if err != nil {
		return nil, err
	}

	tables := map[string]export.Table{
		ReportPaymentMethods: paymentMethodTable(summary.ByPaymentMethod),
		ReportServiceTypes:   serviceTypeTable(summary.ByServiceType),
		ReportSuppliers:      supplierTable(summary.BySupplier),
		ReportClosings:       closingTable(closings),
	}
	base := "report-" + from.String() + "-" + to.String()

	var buf bytes.Buffer
	switch format {
	case FormatCSV, "":
		table, ok := tables[report]
		if !ok {
			return nil, apperror.NewFieldError("report", "Unknown report")
		}
		if err := export.WriteCSV(&buf, table); err != nil {
			return nil, err
		}
		return &ExportFile{
			Filename:    report + "-" + from.String() + "-" + to.String() + ".csv",
			ContentType: export.ContentTypeCSV,
			Data:        buf.Bytes(),
		}, nil

	case FormatXLSX:
		err := export.WriteXLSX(&buf,
			tables[ReportPaymentMethods],
			tables[ReportServiceTypes],
			tables[ReportSuppliers],
			tables[ReportClosings],
		)
		if err != nil {
			return nil, err
		}
		return &ExportFile{
			Filename:    base + ".xlsx",
			ContentType: export.ContentTypeXLSX,
			Data:        buf.Bytes(),
		}, nil
	}
	return nil, apperror.NewFieldError("format", "Format must be csv or xlsx")
}

func paymentMethodTable(rows []repository.PaymentMethodTotal) export.Table {
	t := export.Table{Name: "Payment Methods", Header: []string{"payment_method", "count", "total"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{r.PaymentMethod.String(), strconv.FormatInt(r.Count, 10), r.Total.StringFixed(2)})
	}
	return t
}

func serviceTypeTable(rows []repository.ServiceTypeTotal) export.Table {
	t := export.Table{
		Name:   "Service Types",
		Header: []string{"service_type", "count", "amount", "commission", "discount", "net_commission", "loss_count"},
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			r.ServiceType.String(),
			strconv.FormatInt(r.Count, 10),
			r.Amount.StringFixed(2),
			r.Commission.StringFixed(2),
			r.Discount.StringFixed(2),
			r.NetCommission.StringFixed(2),
			strconv.FormatInt(r.LossCount, 10),
		})
	}
	return t
}

func supplierTable(rows []repository.SupplierTotal) export.Table {
	t := export.Table{Name: "Suppliers", Header: []string{"supplier", "purchases", "purchased", "paid", "outstanding"}}
	for _, r := range rows {
		t.Rows = append(t.Rows, []string{
			r.SupplierName,
			strconv.FormatInt(r.PurchaseCount, 10),
			r.Purchased.StringFixed(2),
			r.Paid.StringFixed(2),
			r.Purchased.Sub(r.Paid).StringFixed(2),
		})
	}
	return t
}

func closingTable(rows []entity.DailyClosing) export.Table {
	t := export.Table{
		Name: "Closings",
		Header: []string{
			"date", "cash_sales", "jazz_load", "telenor_load", "zong_load", "ufone_load",
			"easypaisa", "jazzcash", "bank_transfer", "loan", "cash", "receiving",
			"inventory", "credit", "total_income", "total_expenses", "net_amount",
		},
	}
	for _, c := range rows {
		t.Rows = append(t.Rows, []string{
			c.BusinessDate.String(),
			c.CashSales.StringFixed(2),
			c.JazzLoadSales.StringFixed(2),
			c.TelenorLoadSales.StringFixed(2),
			c.ZongLoadSales.StringFixed(2),
			c.UfoneLoadSales.StringFixed(2),
			c.EasypaisaSales.StringFixed(2),
			c.JazzcashSales.StringFixed(2),
			c.BankTransfer.StringFixed(2),
			c.Loan.StringFixed(2),
			c.Cash.StringFixed(2),
			c.Receiving.StringFixed(2),
			c.Inventory.StringFixed(2),
			c.Credit.StringFixed(2),
			c.TotalIncome.StringFixed(2),
			c.TotalExpenses.StringFixed(2),
			c.NetAmount.StringFixed(2),
		})
	}
	return t
}
