package request

import (
	"github.com/sangkips/shopledger-api/pkg/bizdate"
	"github.com/shopspring/decimal"
)

// SubmitClosingRequest carries the owner's manual closing entries.
// A field that is omitted or null takes the day's computed value; 0 is kept as 0.
type SubmitClosingRequest struct {
	Date             *bizdate.Date    `json:"date"`
	CashSales        *decimal.Decimal `json:"cash_sales"`
	JazzLoadSales    *decimal.Decimal `json:"jazz_load_sales"`
	TelenorLoadSales *decimal.Decimal `json:"telenor_load_sales"`
	ZongLoadSales    *decimal.Decimal `json:"zong_load_sales"`
	UfoneLoadSales   *decimal.Decimal `json:"ufone_load_sales"`
	EasypaisaSales   *decimal.Decimal `json:"easypaisa_sales"`
	JazzcashSales    *decimal.Decimal `json:"jazzcash_sales"`
	Receiving        *decimal.Decimal `json:"receiving"`
	BankTransfer     *decimal.Decimal `json:"bank_transfer"`
	Loan             *decimal.Decimal `json:"loan"`
	Cash             *decimal.Decimal `json:"cash"`
	Credit           *decimal.Decimal `json:"credit"`
	Inventory        *decimal.Decimal `json:"inventory"`
	Notes            *string          `json:"notes"`
}
