package request

// CreatePeriodRequest represents the create period request body. Kind comes
// from the route, not the body.
type CreatePeriodRequest struct {
	Scope *string `json:"scope"`
	Year  int     `json:"year" binding:"required"`
	Month string  `json:"month" binding:"required"`
}

// SubmitLedgerRequest represents a saved edit pass over a period's ledger.
// Entries are keyed by payee ID in the kind-specific wire shape.
type SubmitLedgerRequest struct {
	Ledger map[string]map[string]interface{} `json:"ledger" binding:"required"`
}

// EditEntryFieldRequest represents a single field edit on one entry
type EditEntryFieldRequest struct {
	PayeeID string      `json:"payee_id" binding:"required"`
	Field   string      `json:"field" binding:"required"`
	Value   interface{} `json:"value"`
}

// AddPayeeRequest represents adding a directory member to an open ledger
type AddPayeeRequest struct {
	PayeeID string `json:"payee_id" binding:"required"`
}

// RecordFeeRequest represents a monthly athlete fee
type RecordFeeRequest struct {
	Year  int         `json:"year" binding:"required"`
	Month string      `json:"month" binding:"required"`
	Fee   interface{} `json:"fee"`
	Taken interface{} `json:"taken"`
}

// UpdateFeeRequest represents an athlete fee edit
type UpdateFeeRequest struct {
	Fee   interface{} `json:"fee"`
	Taken interface{} `json:"taken"`
}
