package service

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/sangkips/shopledger-api/internal/domain/entity"
	"github.com/sangkips/shopledger-api/internal/domain/repository"
	"github.com/sangkips/shopledger-api/pkg/apperror"
	"github.com/sangkips/shopledger-api/pkg/bizdate"
	"github.com/sangkips/shopledger-api/pkg/printer"
	"github.com/shopspring/decimal"
)

// PrinterService prints daily closing slips on the counter's thermal printer
type PrinterService struct {
	printer    printer.Printer
	ledgerRepo repository.LedgerRepository
	shopRepo   repository.ShopRepository
	charWidth  int
}

// NewPrinterService creates a new printer service
func NewPrinterService(
	p printer.Printer,
	ledgerRepo repository.LedgerRepository,
	shopRepo repository.ShopRepository,
	charWidth int,
) *PrinterService {
	return &PrinterService{
		printer:    p,
		ledgerRepo: ledgerRepo,
		shopRepo:   shopRepo,
		charWidth:  charWidth,
	}
}

// PrinterStatus describes the configured printer
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// PrintResult reports what was sent to the printer
type PrintResult struct {
	Closing *entity.DailyClosing `json:"closing"`
	Printed bool                 `json:"printed"`
}

// GetStatus returns printer connection status
func (s *PrinterService) GetStatus(ctx context.Context) *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printer.Kind() != printer.KindNone,
		Connected:  s.printer.Ready(ctx),
		Type:       s.printer.Kind(),
	}
}

// PrintClosing prints the stored closing of date. Printing a day that has not
// been closed yet is a not-found error.
func (s *PrinterService) PrintClosing(ctx context.Context, actor Actor, shopID uuid.UUID, date bizdate.Date) (*PrintResult, error) {
	if err := authorizeShop(actor, shopID); err != nil {
		return nil, err
	}

	closing, err := s.ledgerRepo.GetDailyClosing(ctx, shopID, date)
	if err != nil {
		return nil, err
	}
	if closing == nil {
		return nil, apperror.NewNotFoundError("Closing")
	}

	shop, err := s.shopRepo.GetByID(ctx, shopID)
	if err != nil {
		return nil, err
	}
	if shop == nil {
		return nil, apperror.NewNotFoundError("Shop")
	}

	result := &PrintResult{Closing: closing}
	if s.printer.Kind() == printer.KindNone {
		return result, nil
	}
	if err := s.printer.Print(ctx, FormatClosingSlip(shop, closing, s.charWidth)); err != nil {
		log.Printf("Printer error (closing %s %s): %v", shopID, date, err)
		return nil, apperror.NewAppError(503, "Printer is not available")
	}
	result.Printed = true
	return result, nil
}

// FormatClosingSlip lays out a closing as ESC/POS bytes
func FormatClosingSlip(shop *entity.Shop, c *entity.DailyClosing, width int) []byte {
	slip := printer.NewSlip(width)
	slip.Title(shop.Name)
	if header := shop.Settings.ReceiptHeader; header != "" {
		slip.Line(header)
	}
	slip.Line("DAILY CLOSING " + c.BusinessDate.String())
	slip.Align(printer.AlignLeft).Rule('=')

	money := func(label string, v decimal.Decimal) {
		slip.Row(label, v.StringFixed(2))
	}
	money("Cash sales", c.CashSales)
	money("Jazz load", c.JazzLoadSales)
	money("Telenor load", c.TelenorLoadSales)
	money("Zong load", c.ZongLoadSales)
	money("Ufone load", c.UfoneLoadSales)
	money("EasyPaisa", c.EasypaisaSales)
	money("JazzCash", c.JazzcashSales)
	money("Bank transfer", c.BankTransfer)
	money("Loan", c.Loan)
	money("Cash", c.Cash)
	money("Receiving", c.Receiving)
	slip.Rule('-')
	money("Inventory", c.Inventory)
	money("Credit", c.Credit)
	slip.Rule('=').Bold(true)
	money("Total income", c.TotalIncome)
	money("Total expenses", c.TotalExpenses)
	money("NET", c.NetAmount)
	slip.Bold(false)

	if c.Notes != nil && *c.Notes != "" {
		slip.Rule('-').Line(*c.Notes)
	}
	if footer := shop.Settings.ReceiptFooter; footer != "" {
		slip.Feed(1).Align(printer.AlignCenter).Line(footer)
	}
	return slip.Cut().Bytes()
}
