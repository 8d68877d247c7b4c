package ledger

import (
	"testing"

	"github.com/alisinasultani/citycenter-api/internal/domain/enum"
)

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func yearOfPeriods() []Meta {
	metas := make([]Meta, 0, len(SolarMonths))
	for _, m := range SolarMonths {
		metas = append(metas, Meta{Kind: enum.KindRent, Scope: "first-floor", Year: 1403, Month: m})
	}
	return metas
}

func TestRangeMatchesMonthSpan(t *testing.T) {
	r := Range{StartMonth: "ثور", EndMonth: "سرطان"}

	got := Apply(yearOfPeriods(), func(m Meta) Meta { return m }, r)
	want := []string{"ثور", "جوزا", "سرطان"}
	if len(got) != len(want) {
		t.Fatalf("matched %d periods, want %d", len(got), len(want))
	}
	for i, m := range got {
		if m.Month != want[i] {
			t.Errorf("got[%d].Month = %q, want %q", i, m.Month, want[i])
		}
	}
}

func TestRangeInvertedSpanIsNoOp(t *testing.T) {
	r := Range{StartMonth: "سرطان", EndMonth: "ثور"}

	got := Apply(yearOfPeriods(), func(m Meta) Meta { return m }, r)
	if len(got) != len(SolarMonths) {
		t.Errorf("inverted span matched %d periods, want the full set of %d", len(got), len(SolarMonths))
	}
}

func TestRangeUnknownMonthIsNoOp(t *testing.T) {
	r := Range{StartMonth: "فروردین", EndMonth: "ثور"}

	got := Apply(yearOfPeriods(), func(m Meta) Meta { return m }, r)
	if len(got) != len(SolarMonths) {
		t.Errorf("unknown month matched %d periods, want the full set", len(got))
	}
}

func TestRangeSingleBoundIsExactMatch(t *testing.T) {
	tests := []struct {
		name string
		r    Range
	}{
		{"start only", Range{StartMonth: "اسد"}},
		{"end only", Range{EndMonth: "اسد"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(yearOfPeriods(), func(m Meta) Meta { return m }, tt.r)
			if len(got) != 1 || got[0].Month != "اسد" {
				t.Errorf("matched %v, want exactly اسد", got)
			}
		})
	}
}

func TestRangeYearAndScopeAreExact(t *testing.T) {
	metas := []Meta{
		{Kind: enum.KindRent, Scope: "first-floor", Year: 1402, Month: "حمل"},
		{Kind: enum.KindRent, Scope: "first-floor", Year: 1403, Month: "حمل"},
		{Kind: enum.KindRent, Scope: "second-floor", Year: 1403, Month: "حمل"},
	}

	r := Range{Year: intPtr(1403), Scope: strPtr("first-floor")}
	got := Apply(metas, func(m Meta) Meta { return m }, r)
	if len(got) != 1 {
		t.Fatalf("matched %d periods, want 1", len(got))
	}
	if got[0].Year != 1403 || got[0].Scope != "first-floor" {
		t.Errorf("matched %+v", got[0])
	}
}

func TestApplyDoesNotMutateSource(t *testing.T) {
	src := yearOfPeriods()
	Apply(src, func(m Meta) Meta { return m }, Range{StartMonth: "حمل", EndMonth: "ثور"})
	if len(src) != len(SolarMonths) {
		t.Error("Apply mutated the source slice")
	}
}
