package models

import (
	"database/sql/driver"
	"encoding/json"
)

// StringList stores an ordered list of strings as jsonb.
type StringList []string

// Value implements the driver.Valuer interface.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface.
func (l *StringList) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, l)
}

// Addon is a product add-on. The dashboard form never collects a price,
// so it is submitted as 0; the field exists for the storefront side.
type Addon struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// AddonList stores an ordered list of add-ons as jsonb.
type AddonList []Addon

// Value implements the driver.Valuer interface.
func (l AddonList) Value() (driver.Value, error) {
	if l == nil {
		l = AddonList{}
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface.
func (l *AddonList) Scan(value interface{}) error {
	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}
	return json.Unmarshal(bytes, l)
}
