package ledger

import (
	"errors"
	"testing"

	"github.com/alisinasultani/citycenter-api/internal/domain/enum"
	"github.com/alisinasultani/citycenter-api/pkg/apperror"
)

func TestDiffBackfillsChargeAndTaken(t *testing.T) {
	original := Entry{Amount: 100, Taken: 50}
	updated := Entry{Amount: 100, Taken: 70}

	patch, err := Diff("A", original, updated)
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}

	if patch.PayeeID != "A" {
		t.Errorf("PayeeID = %q, want A", patch.PayeeID)
	}
	if got := patch.Fields[FieldTaken]; got != 70.0 {
		t.Errorf("taken = %v, want 70", got)
	}
	if got := patch.Fields[FieldAmount]; got != 100.0 {
		t.Errorf("amount = %v, want 100 backfilled from the original", got)
	}
}

func TestDiffNeverCarriesRemainder(t *testing.T) {
	original := Entry{Amount: 100, Taken: 50, Remainder: 50}
	updated := Entry{Amount: 120, Taken: 50, Remainder: 70}

	patch, err := Diff("A", original, updated)
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}

	raw := encodePatch(enum.KindRent, patch)
	if _, ok := raw["remainder"]; ok {
		t.Error("remainder leaked into the outgoing patch")
	}
	if raw["rant"] != 120.0 {
		t.Errorf("rant = %v, want 120", raw["rant"])
	}
}

func TestDiffUnchangedEntryIsRefused(t *testing.T) {
	e := Entry{Amount: 100, Taken: 50, Description: "x"}

	_, err := Diff("A", e, e)
	if !errors.Is(err, apperror.ErrNothingToUpdate) {
		t.Errorf("err = %v, want ErrNothingToUpdate", err)
	}
}

func TestDiffDescriptionOnlyChange(t *testing.T) {
	original := Entry{Amount: 100, Taken: 50}
	updated := Entry{Amount: 100, Taken: 50, Description: "تصفیه شد"}

	patch, err := Diff("A", original, updated)
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	if got := patch.Fields[FieldDescription]; got != "تصفیه شد" {
		t.Errorf("description = %v", got)
	}
	if _, ok := patch.Fields[FieldAmount]; ok {
		t.Error("no numeric change, balance fields should not be backfilled")
	}
}

func TestDiffUtilityMeterChange(t *testing.T) {
	original := Entry{Amount: 400, Water: 100, Electricity: 200, Taken: 0, CurrentWater: 1200}
	updated := Entry{Amount: 400, Water: 100, Electricity: 200, Taken: 0, CurrentWater: 1350}

	patch, err := Diff("U", original, updated)
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	if got := patch.Fields[FieldCurrentWater]; got != 1350.0 {
		t.Errorf("current water = %v, want 1350", got)
	}
	// The full balance rides along with the meter change.
	if got := patch.Fields[FieldWater]; got != 100.0 {
		t.Errorf("water = %v, want 100", got)
	}
	if got := patch.Fields[FieldElectricity]; got != 200.0 {
		t.Errorf("electricity = %v, want 200", got)
	}
	if got := patch.Fields[FieldTaken]; got != 0.0 {
		t.Errorf("taken = %v, want 0", got)
	}
}
