package enum

import (
	"database/sql/driver"
	"fmt"
)

// LoadProvider is the telecom carrier a mobile load is sold for
type LoadProvider string

const (
	LoadProviderJazz    LoadProvider = "JAZZ"
	LoadProviderTelenor LoadProvider = "TELENOR"
	LoadProviderZong    LoadProvider = "ZONG"
	LoadProviderUfone   LoadProvider = "UFONE"
)

var LoadProviders = []LoadProvider{
	LoadProviderJazz,
	LoadProviderTelenor,
	LoadProviderZong,
	LoadProviderUfone,
}

func (p LoadProvider) String() string {
	return string(p)
}

func (p LoadProvider) IsValid() bool {
	for _, v := range LoadProviders {
		if v == p {
			return true
		}
	}
	return false
}

func (p LoadProvider) Value() (driver.Value, error) {
	return string(p), nil
}

func (p *LoadProvider) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		*p = LoadProvider(v)
	case []byte:
		*p = LoadProvider(v)
	case nil:
		*p = ""
	default:
		return fmt.Errorf("cannot scan %T into LoadProvider", value)
	}
	return nil
}
