package ledger

import (
	"errors"
	"testing"

	"github.com/alisinasultani/citycenter-api/internal/domain/enum"
)

func newTestStore() *Store {
	s := NewStore(Meta{Kind: enum.KindRent, Scope: "first-floor", Year: 1403, Month: "حمل"})
	s.Load(map[string]Entry{
		"p1": {Amount: 1000, Taken: 0},
		"p2": {Amount: 2000, Taken: 500},
		"p3": {Amount: 3000, Taken: 3000},
	})
	return s
}

func TestStoreLoadRecomputesRemainders(t *testing.T) {
	s := NewStore(Meta{Kind: enum.KindRent, Year: 1403, Month: "ثور"})
	s.Load(map[string]Entry{
		"p1": {Amount: 500, Taken: 200, Remainder: 999},
	})

	e, ok := s.Entry("p1")
	if !ok {
		t.Fatal("entry p1 missing after load")
	}
	if e.Remainder != 300 {
		t.Errorf("Remainder = %v, want 300", e.Remainder)
	}
}

func TestStorePatchEntry(t *testing.T) {
	s := newTestStore()

	if err := s.PatchEntry("p2", FieldTaken, 1500); err != nil {
		t.Fatalf("PatchEntry: %v", err)
	}

	e, _ := s.Entry("p2")
	if e.Taken != 1500 {
		t.Errorf("Taken = %v, want 1500", e.Taken)
	}
	if e.Remainder != 500 {
		t.Errorf("Remainder = %v, want 500", e.Remainder)
	}
	if e.Amount != 2000 {
		t.Errorf("Amount = %v, untouched field changed", e.Amount)
	}
}

func TestStorePatchEntryUnknownPayee(t *testing.T) {
	s := newTestStore()

	err := s.PatchEntry("ghost", FieldTaken, 100)
	if !errors.Is(err, ErrUnknownPayee) {
		t.Errorf("err = %v, want ErrUnknownPayee", err)
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, patch on unknown payee must not create an entry", s.Len())
	}
}

func TestStorePatchPreservesDescriptiveFields(t *testing.T) {
	s := NewStore(Meta{Kind: enum.KindUtility, Scope: "block-a", Year: 1403, Month: "اسد"})
	s.Load(map[string]Entry{
		"u1": {Amount: 400, Water: 120, Electricity: 250, Taken: 0, Unit: "A-12", Description: "باقی ماه قبل"},
	})

	if err := s.PatchEntry("u1", FieldWater, 180); err != nil {
		t.Fatalf("PatchEntry: %v", err)
	}

	e, _ := s.Entry("u1")
	if e.Unit != "A-12" || e.Description != "باقی ماه قبل" {
		t.Errorf("descriptive fields lost: unit=%q description=%q", e.Unit, e.Description)
	}
	if e.Remainder != 830 {
		t.Errorf("Remainder = %v, want 830", e.Remainder)
	}
}

func TestStoreSnapshotIsACopy(t *testing.T) {
	s := newTestStore()
	snap := s.Snapshot()
	snap["p1"] = Entry{Amount: 1}

	e, _ := s.Entry("p1")
	if e.Amount != 1000 {
		t.Error("mutating a snapshot changed the store")
	}
}

func TestStoreTotals(t *testing.T) {
	s := newTestStore()
	got := s.Totals()

	if got.TotalCharge != 6000 {
		t.Errorf("TotalCharge = %v, want 6000", got.TotalCharge)
	}
	if got.TotalTaken != 3500 {
		t.Errorf("TotalTaken = %v, want 3500", got.TotalTaken)
	}
	if got.TotalRemainder != 2500 {
		t.Errorf("TotalRemainder = %v, want 2500", got.TotalRemainder)
	}
	if got.Count != 3 {
		t.Errorf("Count = %d, want 3", got.Count)
	}
}

func TestTotalsIgnoreStaleRemainders(t *testing.T) {
	entries := map[string]Entry{
		"a": {Amount: 100, Taken: 40, Remainder: 9999},
		"b": {Amount: 200, Taken: 0, Remainder: -50},
	}

	got := Sum(entries)
	if got.TotalRemainder != 260 {
		t.Errorf("TotalRemainder = %v, want 260 (charge minus taken, not sum of stored remainders)", got.TotalRemainder)
	}
}

func TestStoreEditFlow(t *testing.T) {
	s := newTestStore()
	before := s.Totals()

	if err := s.PatchEntry("p1", FieldTaken, 100); err != nil {
		t.Fatalf("PatchEntry: %v", err)
	}

	after := s.Totals()
	if after.TotalTaken != before.TotalTaken+100 {
		t.Errorf("TotalTaken = %v, want %v", after.TotalTaken, before.TotalTaken+100)
	}
	if after.TotalRemainder != before.TotalRemainder-100 {
		t.Errorf("TotalRemainder = %v, want %v", after.TotalRemainder, before.TotalRemainder-100)
	}

	// The other payees must be value-identical.
	p2, _ := s.Entry("p2")
	p3, _ := s.Entry("p3")
	if p2 != (Entry{Amount: 2000, Taken: 500, Remainder: 1500}) {
		t.Errorf("p2 changed: %+v", p2)
	}
	if p3 != (Entry{Amount: 3000, Taken: 3000, Remainder: 0}) {
		t.Errorf("p3 changed: %+v", p3)
	}
}
