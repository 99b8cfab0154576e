package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/sangkips/shopledger-api/internal/domain/enum"
	"github.com/sangkips/shopledger-api/internal/domain/repository"
	"github.com/sangkips/shopledger-api/pkg/apperror"
	"github.com/sangkips/shopledger-api/pkg/bizdate"
	"github.com/shopspring/decimal"
)

// SalesData is the day's POS sales across every payment method
type SalesData struct {
	TotalSales decimal.Decimal `json:"total_sales"`
	Count      int64           `json:"count"`
}

// LoanData is the shop's outstanding loan exposure at query time
type LoanData struct {
	TotalRemainingLoans decimal.Decimal `json:"total_remaining_loans"`
}

// PurchaseData is cash paid to suppliers on the day
type PurchaseData struct {
	TotalPurchaseExpenses decimal.Decimal `json:"total_purchase_expenses"`
}

// ServiceFeeData buckets the day's service commissions into closing fields.
// Bank transfer and bill payment fees are informational only.
type ServiceFeeData struct {
	JazzLoadSales    decimal.Decimal `json:"jazz_load_sales"`
	TelenorLoadSales decimal.Decimal `json:"telenor_load_sales"`
	ZongLoadSales    decimal.Decimal `json:"zong_load_sales"`
	UfoneLoadSales   decimal.Decimal `json:"ufone_load_sales"`
	EasypaisaSales   decimal.Decimal `json:"easypaisa_sales"`
	JazzcashSales    decimal.Decimal `json:"jazzcash_sales"`
	BankTransferFees decimal.Decimal `json:"bank_transfer_fees"`
	BillPaymentFees  decimal.Decimal `json:"bill_payment_fees"`
	TotalCommission  decimal.Decimal `json:"total_commission"`
	TransactionCount int64           `json:"transaction_count"`
}

// DayAggregate is everything the ledger knows about one shop and one day
type DayAggregate struct {
	Date           bizdate.Date   `json:"date"`
	SalesData      SalesData      `json:"sales_data"`
	LoanData       LoanData       `json:"loan_data"`
	PurchaseData   PurchaseData   `json:"purchase_data"`
	ServiceFeeData ServiceFeeData `json:"service_fee_data"`
}

// DailyAggregator reads same-day facts from the ledger
type DailyAggregator struct {
	ledgerRepo repository.LedgerRepository
}

// NewDailyAggregator creates a new daily aggregator
func NewDailyAggregator(ledgerRepo repository.LedgerRepository) *DailyAggregator {
	return &DailyAggregator{ledgerRepo: ledgerRepo}
}

// AggregateDay runs the four independent ledger reads for shopID on date.
// Callers are responsible for authorizing shopID.
func (a *DailyAggregator) AggregateDay(ctx context.Context, shopID uuid.UUID, date bizdate.Date) (*DayAggregate, error) {
	sales, err := a.ledgerRepo.SumSalesByShopAndDate(ctx, shopID, date)
	if err != nil {
		return nil, fmt.Errorf("sum sales: %w", err)
	}
	commissions, err := a.ledgerRepo.SumServiceCommissionsByShopAndDate(ctx, shopID, date)
	if err != nil {
		return nil, fmt.Errorf("sum service commissions: %w", err)
	}
	supplierPaid, err := a.ledgerRepo.SumSupplierPaymentsByShopAndDate(ctx, shopID, date)
	if err != nil {
		return nil, fmt.Errorf("sum supplier payments: %w", err)
	}
	remainingLoans, err := a.ledgerRepo.SumRemainingLoanBalanceByShop(ctx, shopID)
	if err != nil {
		return nil, fmt.Errorf("sum remaining loans: %w", err)
	}

	agg := &DayAggregate{
		Date:         date,
		LoanData:     LoanData{TotalRemainingLoans: remainingLoans.Round(2)},
		PurchaseData: PurchaseData{TotalPurchaseExpenses: supplierPaid.Round(2)},
	}
	if sales != nil {
		agg.SalesData = SalesData{TotalSales: sales.Total.Round(2), Count: sales.Count}
	}
	agg.ServiceFeeData = bucketCommissions(commissions)

	if err := agg.checkNonNegative(); err != nil {
		log.Printf("Error: integrity failure aggregating shop %s on %s: %v", shopID, date, err)
		return nil, err
	}
	return agg, nil
}

func bucketCommissions(rows []repository.ServiceCommissionTotal) ServiceFeeData {
	var fees ServiceFeeData
	for _, row := range rows {
		c := row.Commission
		fees.TotalCommission = fees.TotalCommission.Add(c)
		fees.TransactionCount += row.Count

		switch row.ServiceType {
		case enum.ServiceTypeMobileLoad:
			if row.LoadProvider == nil {
				log.Printf("Warning: mobile load commission %s without a load provider is not bucketed", c)
				continue
			}
			switch *row.LoadProvider {
			case enum.LoadProviderJazz:
				fees.JazzLoadSales = fees.JazzLoadSales.Add(c)
			case enum.LoadProviderTelenor:
				fees.TelenorLoadSales = fees.TelenorLoadSales.Add(c)
			case enum.LoadProviderZong:
				fees.ZongLoadSales = fees.ZongLoadSales.Add(c)
			case enum.LoadProviderUfone:
				fees.UfoneLoadSales = fees.UfoneLoadSales.Add(c)
			}
		case enum.ServiceTypeEasypaisaCashIn, enum.ServiceTypeEasypaisaCashOut:
			fees.EasypaisaSales = fees.EasypaisaSales.Add(c)
		case enum.ServiceTypeJazzcashCashIn, enum.ServiceTypeJazzcashCashOut:
			fees.JazzcashSales = fees.JazzcashSales.Add(c)
		case enum.ServiceTypeBankTransfer:
			fees.BankTransferFees = fees.BankTransferFees.Add(c)
		case enum.ServiceTypeBillPayment:
			fees.BillPaymentFees = fees.BillPaymentFees.Add(c)
		}
	}

	fees.JazzLoadSales = fees.JazzLoadSales.Round(2)
	fees.TelenorLoadSales = fees.TelenorLoadSales.Round(2)
	fees.ZongLoadSales = fees.ZongLoadSales.Round(2)
	fees.UfoneLoadSales = fees.UfoneLoadSales.Round(2)
	fees.EasypaisaSales = fees.EasypaisaSales.Round(2)
	fees.JazzcashSales = fees.JazzcashSales.Round(2)
	fees.BankTransferFees = fees.BankTransferFees.Round(2)
	fees.BillPaymentFees = fees.BillPaymentFees.Round(2)
	fees.TotalCommission = fees.TotalCommission.Round(2)
	return fees
}

// checkNonNegative rejects aggregates no valid ledger can produce. Service
// commission buckets may not be negative either: stored commissions are >= 0.
func (a *DayAggregate) checkNonNegative() error {
	figures := map[string]decimal.Decimal{
		"total_sales":             a.SalesData.TotalSales,
		"total_remaining_loans":   a.LoanData.TotalRemainingLoans,
		"total_purchase_expenses": a.PurchaseData.TotalPurchaseExpenses,
		"jazz_load_sales":         a.ServiceFeeData.JazzLoadSales,
		"telenor_load_sales":      a.ServiceFeeData.TelenorLoadSales,
		"zong_load_sales":         a.ServiceFeeData.ZongLoadSales,
		"ufone_load_sales":        a.ServiceFeeData.UfoneLoadSales,
		"easypaisa_sales":         a.ServiceFeeData.EasypaisaSales,
		"jazzcash_sales":          a.ServiceFeeData.JazzcashSales,
	}
	for name, v := range figures {
		if v.IsNegative() {
			return apperror.NewIntegrityError(fmt.Sprintf("aggregate %s is negative (%s)", name, v))
		}
	}
	return nil
}
