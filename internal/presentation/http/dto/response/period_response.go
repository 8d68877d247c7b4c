package response

import (
	"time"

	"github.com/google/uuid"

	"github.com/alisinasultani/citycenter-api/internal/domain/entity"
	"github.com/alisinasultani/citycenter-api/internal/domain/enum"
	"github.com/alisinasultani/citycenter-api/internal/ledger"
)

// PeriodResponse renders a billing period with its ledger entries in the
// kind-specific wire shape (rant/services/salary charge keys, utility meter
// fields) rather than the normalized internal form.
type PeriodResponse struct {
	ID        uuid.UUID                         `json:"id"`
	Kind      enum.BillingKind                  `json:"kind"`
	Scope     *string                           `json:"scope"`
	Year      int                               `json:"year"`
	Month     string                            `json:"month"`
	Ledger    map[string]map[string]interface{} `json:"ledger"`
	CreatedAt time.Time                         `json:"created_at"`
	UpdatedAt time.Time                         `json:"updated_at"`
}

// NewPeriodResponse converts a stored period into its wire representation.
func NewPeriodResponse(p *entity.BillingPeriod) *PeriodResponse {
	wire := make(map[string]map[string]interface{}, len(p.Ledger))
	for payeeID, e := range p.Ledger {
		wire[payeeID] = ledger.EncodeEntry(p.Kind, e)
	}
	return &PeriodResponse{
		ID:        p.ID,
		Kind:      p.Kind,
		Scope:     p.Scope,
		Year:      p.Year,
		Month:     p.Month,
		Ledger:    wire,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// NewPeriodListResponse converts a list of stored periods.
func NewPeriodListResponse(periods []*entity.BillingPeriod) []*PeriodResponse {
	out := make([]*PeriodResponse, 0, len(periods))
	for _, p := range periods {
		out = append(out, NewPeriodResponse(p))
	}
	return out
}
