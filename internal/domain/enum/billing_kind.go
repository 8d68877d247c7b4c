package enum

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// BillingKind identifies which ledger a billing period belongs to.
type BillingKind int

const (
	KindRent BillingKind = iota + 1
	KindService
	KindUtility
	KindSalary
)

var billingKindNames = map[BillingKind]string{
	KindRent:    "rent",
	KindService: "service",
	KindUtility: "utility",
	KindSalary:  "salary",
}

var billingKindValues = map[string]BillingKind{
	"rent":    KindRent,
	"service": KindService,
	"utility": KindUtility,
	"salary":  KindSalary,
}

// String returns the string representation of the billing kind
func (k BillingKind) String() string {
	if name, ok := billingKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// IsValid checks if the billing kind is valid
func (k BillingKind) IsValid() bool {
	_, ok := billingKindNames[k]
	return ok
}

// ParseBillingKind parses a string into a BillingKind
func ParseBillingKind(s string) (BillingKind, error) {
	if kind, ok := billingKindValues[s]; ok {
		return kind, nil
	}
	return 0, fmt.Errorf("invalid billing kind: %s", s)
}

// MarshalJSON implements json.Marshaler
func (k BillingKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// UnmarshalJSON implements json.Unmarshaler
func (k *BillingKind) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	kind, err := ParseBillingKind(s)
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// Value implements driver.Valuer for database storage
func (k BillingKind) Value() (driver.Value, error) {
	return k.String(), nil
}

// Scan implements sql.Scanner for database retrieval
func (k *BillingKind) Scan(value interface{}) error {
	if value == nil {
		return fmt.Errorf("billing kind cannot be null")
	}

	var s string
	switch v := value.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("cannot scan %T into BillingKind", value)
	}

	kind, err := ParseBillingKind(s)
	if err != nil {
		return err
	}
	*k = kind
	return nil
}
