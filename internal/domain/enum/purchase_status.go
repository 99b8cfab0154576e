package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PurchaseStatus represents how much of a purchase has been paid to the supplier
type PurchaseStatus int

const (
	PurchaseStatusUnpaid  PurchaseStatus = 0
	PurchaseStatusPartial PurchaseStatus = 1
	PurchaseStatusPaid    PurchaseStatus = 2
)

func (s PurchaseStatus) String() string {
	switch s {
	case PurchaseStatusPartial:
		return "Partial"
	case PurchaseStatusPaid:
		return "Paid"
	default:
		return "Unpaid"
	}
}

func (s PurchaseStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *PurchaseStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = PurchaseStatus(i)
		return nil
	}
	switch str {
	case "Partial":
		*s = PurchaseStatusPartial
	case "Paid":
		*s = PurchaseStatusPaid
	default:
		*s = PurchaseStatusUnpaid
	}
	return nil
}

func (s PurchaseStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *PurchaseStatus) Scan(value interface{}) error {
	if value == nil {
		*s = PurchaseStatusUnpaid
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = PurchaseStatus(v)
	case int:
		*s = PurchaseStatus(v)
	case int32:
		*s = PurchaseStatus(v)
	}
	return nil
}
