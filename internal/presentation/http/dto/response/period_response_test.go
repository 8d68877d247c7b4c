package response

import (
	"testing"

	"github.com/alisinasultani/citycenter-api/internal/domain/entity"
	"github.com/alisinasultani/citycenter-api/internal/domain/enum"
	"github.com/alisinasultani/citycenter-api/internal/ledger"
)

func TestNewPeriodResponseUsesWireShape(t *testing.T) {
	scope := "first-floor"
	rent := &entity.BillingPeriod{
		Kind:  enum.KindRent,
		Scope: &scope,
		Year:  1403,
		Month: "حمل",
		Ledger: entity.LedgerMap{
			"A": {Amount: 1000, Taken: 400, Remainder: 600},
		},
	}

	resp := NewPeriodResponse(rent)

	entry, ok := resp.Ledger["A"]
	if !ok {
		t.Fatal("payee missing from the rendered ledger")
	}
	if entry["rant"] != 1000.0 {
		t.Errorf("rant = %v, want the charge under the rent wire key", entry["rant"])
	}
	if _, ok := entry["amount"]; ok {
		t.Error("normalized field name leaked into the wire shape")
	}
	if entry["remainder"] != 600.0 {
		t.Errorf("remainder = %v, want 600", entry["remainder"])
	}
}

func TestNewPeriodResponseUtilityMeterFields(t *testing.T) {
	scope := "building"
	utility := &entity.BillingPeriod{
		Kind:  enum.KindUtility,
		Scope: &scope,
		Year:  1403,
		Month: "ثور",
		Ledger: entity.LedgerMap{
			"B": {Water: 200, Electricity: 300, CurrentWater: 55, PreviousWater: 40},
		},
	}

	resp := NewPeriodResponse(utility)

	entry := resp.Ledger["B"]
	if entry["total_water_price"] != 200.0 || entry["total_electricity"] != 300.0 {
		t.Errorf("utility charges = %v / %v", entry["total_water_price"], entry["total_electricity"])
	}
	if entry["current_water"] != 55.0 || entry["previous_water"] != 40.0 {
		t.Errorf("meter readings = %v / %v", entry["current_water"], entry["previous_water"])
	}
}

func TestNewPeriodListResponse(t *testing.T) {
	scope := "first-floor"
	periods := []*entity.BillingPeriod{
		{Kind: enum.KindRent, Scope: &scope, Year: 1403, Month: "حمل", Ledger: entity.LedgerMap{"A": ledger.Entry{Amount: 100}}},
		{Kind: enum.KindRent, Scope: &scope, Year: 1403, Month: "ثور", Ledger: entity.LedgerMap{}},
	}

	out := NewPeriodListResponse(periods)

	if len(out) != 2 {
		t.Fatalf("rendered %d periods, want 2", len(out))
	}
	if out[1].Ledger == nil {
		t.Error("empty ledger rendered as nil")
	}
}
