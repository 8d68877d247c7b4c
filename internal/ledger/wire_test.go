package ledger

import (
	"testing"

	"github.com/alisinasultani/citycenter-api/internal/domain/enum"
)

func TestDecodeEntryPerKind(t *testing.T) {
	tests := []struct {
		name string
		kind enum.BillingKind
		raw  map[string]interface{}
		want Entry
	}{
		{
			name: "rent uses the legacy rant key",
			kind: enum.KindRent,
			raw:  map[string]interface{}{"rant": 5000.0, "taken": 2000.0, "unit": "12"},
			want: Entry{Amount: 5000, Taken: 2000, Remainder: 3000, Unit: "12"},
		},
		{
			name: "service",
			kind: enum.KindService,
			raw:  map[string]interface{}{"service": "750", "taken": 750.0},
			want: Entry{Amount: 750, Taken: 750, Remainder: 0},
		},
		{
			name: "utility splits the charge",
			kind: enum.KindUtility,
			raw: map[string]interface{}{
				"services":            400.0,
				"total_water_price":   120.0,
				"total_electricity":   250.0,
				"taken":               0.0,
				"current_water":       1350.0,
				"previous_water":      1200.0,
				"current_electricity": 880.0,
			},
			want: Entry{
				Amount: 400, Water: 120, Electricity: 250, Remainder: 770,
				CurrentWater: 1350, PreviousWater: 1200, CurrentElectricity: 880,
			},
		},
		{
			name: "salary",
			kind: enum.KindSalary,
			raw:  map[string]interface{}{"salary": 18000.0, "taken": 18000.0, "description": "ماه جاری"},
			want: Entry{Amount: 18000, Taken: 18000, Remainder: 0, Description: "ماه جاری"},
		},
		{
			name: "remainder on the wire is discarded",
			kind: enum.KindRent,
			raw:  map[string]interface{}{"rant": 100.0, "taken": 40.0, "remainder": 999.0},
			want: Entry{Amount: 100, Taken: 40, Remainder: 60},
		},
		{
			name: "meter fields outside utility are ignored",
			kind: enum.KindRent,
			raw:  map[string]interface{}{"rant": 100.0, "total_water_price": 50.0},
			want: Entry{Amount: 100, Remainder: 100},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeEntry(tt.kind, tt.raw)
			if got != tt.want {
				t.Errorf("DecodeEntry = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestEncodeEntryRoundTrip(t *testing.T) {
	e := Entry{Amount: 400, Water: 120, Electricity: 250, Taken: 300, Unit: "A-3"}
	e.Recalculate()

	raw := EncodeEntry(enum.KindUtility, e)
	if raw["services"] != 400.0 {
		t.Errorf("services = %v", raw["services"])
	}
	if raw["total_water_price"] != 120.0 {
		t.Errorf("total_water_price = %v", raw["total_water_price"])
	}

	back := DecodeEntry(enum.KindUtility, raw)
	if back != e {
		t.Errorf("round trip changed the entry: %+v != %+v", back, e)
	}
}

func TestFieldForRejectsUnknownNames(t *testing.T) {
	if _, ok := FieldFor(enum.KindRent, "remainder"); ok {
		t.Error("remainder must not be patchable")
	}
	if _, ok := FieldFor(enum.KindRent, "salary"); ok {
		t.Error("salary key must not resolve for a rent ledger")
	}
}
