package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/alisinasultani/citycenter-api/internal/domain/enum"
	"github.com/alisinasultani/citycenter-api/internal/ledger"
)

// LedgerMap stores a period's entries as a JSONB column keyed by payee ID.
type LedgerMap map[string]ledger.Entry

// Value implements driver.Valuer
func (m LedgerMap) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner
func (m *LedgerMap) Scan(value interface{}) error {
	if value == nil {
		*m = LedgerMap{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into LedgerMap", value)
	}

	return json.Unmarshal(data, m)
}

// BillingPeriod represents one billed period for one scope: a floor's rent
// for a month, a floor's service charge, a building's utility bills, or a
// staff salary run. Scope is null for salary periods.
type BillingPeriod struct {
	ID        uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	Kind      enum.BillingKind `gorm:"type:varchar(20);not null;uniqueIndex:idx_period_identity" json:"kind"`
	Scope     *string          `gorm:"type:varchar(100);uniqueIndex:idx_period_identity" json:"scope"`
	Year      int              `gorm:"not null;uniqueIndex:idx_period_identity" json:"year"`
	Month     string           `gorm:"type:varchar(20);not null;uniqueIndex:idx_period_identity" json:"month"`
	Ledger    LedgerMap        `gorm:"type:jsonb;not null;default:'{}'" json:"ledger"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
	DeletedAt gorm.DeletedAt   `gorm:"index" json:"-"`
}

// TableName specifies the table name
func (BillingPeriod) TableName() string {
	return "billing_periods"
}

// BeforeCreate hook to generate UUID
func (p *BillingPeriod) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Meta returns the period identity used by the ledger core.
func (p *BillingPeriod) Meta() ledger.Meta {
	scope := ""
	if p.Scope != nil {
		scope = *p.Scope
	}
	return ledger.Meta{
		Kind:  p.Kind,
		Scope: scope,
		Year:  p.Year,
		Month: p.Month,
	}
}

// Store loads the period's ledger into a fresh store.
func (p *BillingPeriod) Store() *ledger.Store {
	s := ledger.NewStore(p.Meta())
	s.Load(map[string]ledger.Entry(p.Ledger))
	return s
}

// Totals sums the period's ledger.
func (p *BillingPeriod) Totals() ledger.Totals {
	return ledger.Sum(map[string]ledger.Entry(p.Ledger))
}
