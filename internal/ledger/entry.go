package ledger

// Field names a patchable column of a ledger entry.
type Field string

const (
	FieldAmount              Field = "amount"
	FieldWater               Field = "water"
	FieldElectricity         Field = "electricity"
	FieldTaken               Field = "taken"
	FieldUnit                Field = "unit"
	FieldDescription         Field = "description"
	FieldCurrentWater        Field = "current_water"
	FieldPreviousWater       Field = "previous_water"
	FieldCurrentElectricity  Field = "current_electricity"
	FieldPreviousElectricity Field = "previous_electricity"
)

// Entry is one payee's row in a billing period. All four ledgers share this
// shape: rent and salary use only Amount, utility bills split the charge
// across Amount, Water and Electricity. Remainder is derived and gets
// recomputed on every write, never trusted from the wire.
type Entry struct {
	Amount      float64 `json:"amount"`
	Water       float64 `json:"water"`
	Electricity float64 `json:"electricity"`
	Taken       float64 `json:"taken"`
	Remainder   float64 `json:"remainder"`

	Unit        string `json:"unit,omitempty"`
	Description string `json:"description,omitempty"`

	// Meter readings, carried for utility entries only.
	CurrentWater        float64 `json:"current_water,omitempty"`
	PreviousWater       float64 `json:"previous_water,omitempty"`
	CurrentElectricity  float64 `json:"current_electricity,omitempty"`
	PreviousElectricity float64 `json:"previous_electricity,omitempty"`
}

// Charge returns the total billed amount for the entry.
func (e Entry) Charge() float64 {
	return e.Amount + e.Water + e.Electricity
}

// Recalculate refreshes the derived remainder from charge and taken.
func (e *Entry) Recalculate() {
	e.Remainder = e.Charge() - e.Taken
}

// Set assigns a field by name, coercing numeric values through ParseAmount.
func (e *Entry) Set(field Field, value interface{}) {
	switch field {
	case FieldAmount:
		e.Amount = ParseAmount(value)
	case FieldWater:
		e.Water = ParseAmount(value)
	case FieldElectricity:
		e.Electricity = ParseAmount(value)
	case FieldTaken:
		e.Taken = ParseAmount(value)
	case FieldUnit:
		if s, ok := value.(string); ok {
			e.Unit = s
		}
	case FieldDescription:
		if s, ok := value.(string); ok {
			e.Description = s
		}
	case FieldCurrentWater:
		e.CurrentWater = ParseAmount(value)
	case FieldPreviousWater:
		e.PreviousWater = ParseAmount(value)
	case FieldCurrentElectricity:
		e.CurrentElectricity = ParseAmount(value)
	case FieldPreviousElectricity:
		e.PreviousElectricity = ParseAmount(value)
	}
}
