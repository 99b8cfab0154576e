package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/sangkips/shopledger-api/internal/domain/entity"
	"github.com/sangkips/shopledger-api/internal/domain/repository"
	"github.com/sangkips/shopledger-api/pkg/apperror"
	"github.com/sangkips/shopledger-api/pkg/bizdate"
	"github.com/shopspring/decimal"
)

const (
	defaultHistoryLimit = 30
	maxHistoryLimit     = 365
)

// Provenance sources
const (
	SourceAuto   = "auto"
	SourceManual = "manual"
)

// ClosingInput holds the owner's manual closing entries.
// A nil defaultable field takes the day's aggregate; an explicit zero is kept.
// Nil non-defaultable fields are stored as zero.
type ClosingInput struct {
	CashSales        *decimal.Decimal
	JazzLoadSales    *decimal.Decimal
	TelenorLoadSales *decimal.Decimal
	ZongLoadSales    *decimal.Decimal
	UfoneLoadSales   *decimal.Decimal
	EasypaisaSales   *decimal.Decimal
	JazzcashSales    *decimal.Decimal
	Loan             *decimal.Decimal
	Inventory        *decimal.Decimal

	Receiving    *decimal.Decimal
	BankTransfer *decimal.Decimal
	Cash         *decimal.Decimal
	Credit       *decimal.Decimal

	Notes *string
}

// FieldProvenance tells the UI whether a stored closing value was computed or typed
type FieldProvenance struct {
	Field      string          `json:"field"`
	Auto       decimal.Decimal `json:"auto"`
	Value      decimal.Decimal `json:"value"`
	Source     string          `json:"source"`
	Overridden bool            `json:"overridden"`
}

// ClosingResult is a stored closing plus per-field provenance
type ClosingResult struct {
	Closing    *entity.DailyClosing `json:"closing"`
	Aggregate  *DayAggregate        `json:"aggregate"`
	Provenance []FieldProvenance    `json:"provenance"`
}

// ClosingView is the read-only closing screen for a date: the day's
// aggregate sections at the top level, the stored closing (nil when none was
// submitted) and a preview of an all-defaults submission
type ClosingView struct {
	*DayAggregate
	ClosingData *entity.DailyClosing `json:"closing_data"`
	Preview     *entity.DailyClosing `json:"preview"`
}

// ClosingService reconciles the day's aggregates with the owner's entries
type ClosingService struct {
	ledgerRepo repository.LedgerRepository
	aggregator *DailyAggregator
	clock      Clock
}

// NewClosingService creates a new closing service
func NewClosingService(ledgerRepo repository.LedgerRepository, aggregator *DailyAggregator, clock Clock) *ClosingService {
	return &ClosingService{
		ledgerRepo: ledgerRepo,
		aggregator: aggregator,
		clock:      clock,
	}
}

// defaultableField binds a manual entry to the closing column and aggregate it falls back to
type defaultableField struct {
	name   string
	manual *decimal.Decimal
	auto   decimal.Decimal
	target *decimal.Decimal
}

func defaultableFields(c *entity.DailyClosing, in *ClosingInput, agg *DayAggregate) []defaultableField {
	fees := agg.ServiceFeeData
	return []defaultableField{
		{"cash_sales", in.CashSales, agg.SalesData.TotalSales, &c.CashSales},
		{"jazz_load_sales", in.JazzLoadSales, fees.JazzLoadSales, &c.JazzLoadSales},
		{"telenor_load_sales", in.TelenorLoadSales, fees.TelenorLoadSales, &c.TelenorLoadSales},
		{"zong_load_sales", in.ZongLoadSales, fees.ZongLoadSales, &c.ZongLoadSales},
		{"ufone_load_sales", in.UfoneLoadSales, fees.UfoneLoadSales, &c.UfoneLoadSales},
		{"easypaisa_sales", in.EasypaisaSales, fees.EasypaisaSales, &c.EasypaisaSales},
		{"jazzcash_sales", in.JazzcashSales, fees.JazzcashSales, &c.JazzcashSales},
		{"loan", in.Loan, agg.LoanData.TotalRemainingLoans, &c.Loan},
		{"inventory", in.Inventory, agg.PurchaseData.TotalPurchaseExpenses, &c.Inventory},
	}
}

// SubmitClosing computes and stores the closing of shopID for date.
// Resubmitting the same date replaces the previous closing entirely.
func (s *ClosingService) SubmitClosing(ctx context.Context, actor Actor, shopID uuid.UUID, date bizdate.Date, input *ClosingInput) (*ClosingResult, error) {
	if err := authorizeShop(actor, shopID); err != nil {
		return nil, err
	}
	if !actor.Role.CanSubmitClosing() {
		log.Printf("Denied: user %s (%s) attempted to submit closing for shop %s", actor.UserID, actor.Role, shopID)
		return nil, apperror.NewForbiddenError("Only the shop owner can submit the daily closing")
	}
	if input == nil {
		input = &ClosingInput{}
	}
	if err := s.validateClosing(date, input); err != nil {
		return nil, err
	}

	agg, err := s.aggregator.AggregateDay(ctx, shopID, date)
	if err != nil {
		return nil, err
	}

	closing := &entity.DailyClosing{
		ShopID:       shopID,
		BusinessDate: date,
		Receiving:    valueOrZero(input.Receiving),
		BankTransfer: valueOrZero(input.BankTransfer),
		Cash:         valueOrZero(input.Cash),
		Credit:       valueOrZero(input.Credit),
		Notes:        input.Notes,
		AutoFilled:   []string{},
		SubmittedBy:  actor.UserID,
	}

	var provenance []FieldProvenance
	for _, f := range defaultableFields(closing, input, agg) {
		p := FieldProvenance{Field: f.name, Auto: f.auto}
		if f.manual == nil {
			*f.target = f.auto
			p.Source = SourceAuto
			closing.AutoFilled = append(closing.AutoFilled, f.name)
		} else {
			*f.target = f.manual.Round(2)
			p.Source = SourceManual
			p.Overridden = !f.target.Equal(f.auto)
		}
		p.Value = *f.target
		provenance = append(provenance, p)
	}

	closing.Recalculate()
	if !closing.TotalsConsistent() {
		return nil, apperror.NewIntegrityError(fmt.Sprintf("closing totals for shop %s on %s do not match the formula", shopID, date))
	}

	stored, err := s.ledgerRepo.UpsertDailyClosing(ctx, closing)
	if err != nil {
		return nil, err
	}
	log.Printf("Closing submitted: shop %s date %s by %s net %s (auto: %v)", shopID, date, actor.UserID, stored.NetAmount, closing.AutoFilled)

	return &ClosingResult{
		Closing:    stored,
		Aggregate:  agg,
		Provenance: provenance,
	}, nil
}

func (s *ClosingService) validateClosing(date bizdate.Date, input *ClosingInput) error {
	var fieldErrors []apperror.FieldError

	if date.IsZero() {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "date", Message: "Date is required"})
	} else if date.After(s.clock.Today()) {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "date", Message: "Cannot submit a closing for a future date"})
	}

	manual := []struct {
		field string
		value *decimal.Decimal
	}{
		{"cash_sales", input.CashSales},
		{"jazz_load_sales", input.JazzLoadSales},
		{"telenor_load_sales", input.TelenorLoadSales},
		{"zong_load_sales", input.ZongLoadSales},
		{"ufone_load_sales", input.UfoneLoadSales},
		{"easypaisa_sales", input.EasypaisaSales},
		{"jazzcash_sales", input.JazzcashSales},
		{"loan", input.Loan},
		{"inventory", input.Inventory},
		{"receiving", input.Receiving},
		{"bank_transfer", input.BankTransfer},
		{"cash", input.Cash},
		{"credit", input.Credit},
	}
	for _, m := range manual {
		if m.value != nil && m.value.IsNegative() {
			fieldErrors = append(fieldErrors, apperror.FieldError{Field: m.field, Message: "Amount cannot be negative"})
		} else if fe := checkOptionalMoneyScale(m.field, m.value); fe != nil {
			fieldErrors = append(fieldErrors, *fe)
		}
	}

	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

// GetClosing returns the day's aggregates, the stored closing if any, and a
// preview of what submitting with every defaultable field blank would store.
// Nothing is written.
func (s *ClosingService) GetClosing(ctx context.Context, actor Actor, shopID uuid.UUID, date bizdate.Date) (*ClosingView, error) {
	if err := authorizeShop(actor, shopID); err != nil {
		return nil, err
	}
	if date.IsZero() {
		date = s.clock.Today()
	}

	agg, err := s.aggregator.AggregateDay(ctx, shopID, date)
	if err != nil {
		return nil, err
	}

	closing, err := s.ledgerRepo.GetDailyClosing(ctx, shopID, date)
	if err != nil {
		return nil, err
	}

	preview := &entity.DailyClosing{ShopID: shopID, BusinessDate: date}
	for _, f := range defaultableFields(preview, &ClosingInput{}, agg) {
		*f.target = f.auto
		preview.AutoFilled = append(preview.AutoFilled, f.name)
	}
	preview.Recalculate()

	return &ClosingView{
		DayAggregate: agg,
		ClosingData:  closing,
		Preview:      preview,
	}, nil
}

// History returns the shop's latest closings, newest first
func (s *ClosingService) History(ctx context.Context, actor Actor, shopID uuid.UUID, limit int) ([]entity.DailyClosing, error) {
	if err := authorizeShop(actor, shopID); err != nil {
		return nil, err
	}
	switch {
	case limit <= 0:
		limit = defaultHistoryLimit
	case limit > maxHistoryLimit:
		limit = maxHistoryLimit
	}
	return s.ledgerRepo.ListDailyClosings(ctx, shopID, limit)
}

func valueOrZero(v *decimal.Decimal) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return v.Round(2)
}
