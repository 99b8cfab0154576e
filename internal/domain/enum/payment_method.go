package enum

// PaymentMethod is how a POS sale or supplier payment was settled
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "CASH"
	PaymentMethodCard         PaymentMethod = "CARD"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
	PaymentMethodEasypaisa    PaymentMethod = "EASYPAISA"
	PaymentMethodJazzcash     PaymentMethod = "JAZZCASH"
	PaymentMethodCredit       PaymentMethod = "CREDIT"
)

func (m PaymentMethod) String() string {
	return string(m)
}

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodBankTransfer,
		PaymentMethodEasypaisa, PaymentMethodJazzcash, PaymentMethodCredit:
		return true
	}
	return false
}
