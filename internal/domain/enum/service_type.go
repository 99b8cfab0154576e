package enum

import (
	"database/sql/driver"
	"fmt"
)

// ServiceType is the kind of mobile-money, load or bill service sold over the counter
type ServiceType string

const (
	ServiceTypeEasypaisaCashIn  ServiceType = "EASYPAISA_CASHIN"
	ServiceTypeEasypaisaCashOut ServiceType = "EASYPAISA_CASHOUT"
	ServiceTypeJazzcashCashIn   ServiceType = "JAZZCASH_CASHIN"
	ServiceTypeJazzcashCashOut  ServiceType = "JAZZCASH_CASHOUT"
	ServiceTypeBankTransfer     ServiceType = "BANK_TRANSFER"
	ServiceTypeMobileLoad       ServiceType = "MOBILE_LOAD"
	ServiceTypeBillPayment      ServiceType = "BILL_PAYMENT"
)

// ServiceTypes lists every service type in display order
var ServiceTypes = []ServiceType{
	ServiceTypeMobileLoad,
	ServiceTypeEasypaisaCashIn,
	ServiceTypeEasypaisaCashOut,
	ServiceTypeJazzcashCashIn,
	ServiceTypeJazzcashCashOut,
	ServiceTypeBankTransfer,
	ServiceTypeBillPayment,
}

func (t ServiceType) String() string {
	return string(t)
}

// IsValid reports whether t is a known service type
func (t ServiceType) IsValid() bool {
	for _, v := range ServiceTypes {
		if v == t {
			return true
		}
	}
	return false
}

// RequiresLoadProvider is true only for mobile load
func (t ServiceType) RequiresLoadProvider() bool {
	return t == ServiceTypeMobileLoad
}

// ParseServiceType validates a raw value
func ParseServiceType(s string) (ServiceType, error) {
	t := ServiceType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("unknown service type %q", s)
	}
	return t, nil
}

func (t ServiceType) Value() (driver.Value, error) {
	return string(t), nil
}

func (t *ServiceType) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*t = ServiceType(v)
	case []byte:
		*t = ServiceType(v)
	case nil:
		*t = ""
	default:
		return fmt.Errorf("cannot scan %T into ServiceType", value)
	}
	return nil
}
