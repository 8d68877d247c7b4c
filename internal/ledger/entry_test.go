package ledger

import "testing"

func TestEntryCharge(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		want  float64
	}{
		{"amount only", Entry{Amount: 5000}, 5000},
		{"utility split", Entry{Amount: 1200, Water: 300, Electricity: 450}, 1950},
		{"zero", Entry{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.Charge(); got != tt.want {
				t.Errorf("Charge() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEntryRecalculate(t *testing.T) {
	e := Entry{Amount: 1200, Water: 300, Electricity: 450, Taken: 1000, Remainder: 9999}
	e.Recalculate()
	if e.Remainder != 950 {
		t.Errorf("Remainder = %v, want 950", e.Remainder)
	}

	// Overpayment leaves a negative remainder rather than clamping.
	e = Entry{Amount: 500, Taken: 700}
	e.Recalculate()
	if e.Remainder != -200 {
		t.Errorf("Remainder = %v, want -200", e.Remainder)
	}
}

func TestEntrySetCoercesNumerics(t *testing.T) {
	var e Entry
	e.Set(FieldAmount, "3000")
	e.Set(FieldTaken, "not a number")
	e.Set(FieldDescription, "پرداخت نقدی")
	e.Recalculate()

	if e.Amount != 3000 {
		t.Errorf("Amount = %v, want 3000", e.Amount)
	}
	if e.Taken != 0 {
		t.Errorf("Taken = %v, want 0", e.Taken)
	}
	if e.Description != "پرداخت نقدی" {
		t.Errorf("Description = %q", e.Description)
	}
	if e.Remainder != 3000 {
		t.Errorf("Remainder = %v, want 3000", e.Remainder)
	}
}
