package ledger

import (
	"testing"

	"github.com/alisinasultani/citycenter-api/internal/domain/enum"
)

func TestProjectRecomputesRemainder(t *testing.T) {
	meta := Meta{Kind: enum.KindRent, Scope: "first-floor", Year: 1403, Month: "حمل"}
	entry := Entry{Amount: 500, Taken: 200, Remainder: 999}
	payee := Payee{ID: "p1", Name: "احمد", FatherName: "محمود", Code: "C-14"}

	r := Project(meta, "p1", entry, payee)
	if r.Remainder != 300 {
		t.Errorf("Remainder = %v, want 300 regardless of the stale stored value", r.Remainder)
	}
	if r.Charge != 500 || r.Taken != 200 {
		t.Errorf("Charge/Taken = %v/%v", r.Charge, r.Taken)
	}
}

func TestProjectBillNumberAndPeriodLabel(t *testing.T) {
	meta := Meta{Kind: enum.KindSalary, Year: 1403, Month: "میزان"}

	r := Project(meta, "s42", Entry{Amount: 15000}, Payee{ID: "s42", Name: "کریم"})
	if r.BillNumber != "salary-1403-میزان-s42" {
		t.Errorf("BillNumber = %q", r.BillNumber)
	}
	if r.PeriodLabel != "میزان 1403" {
		t.Errorf("PeriodLabel = %q", r.PeriodLabel)
	}
}

func TestProjectMissingDirectoryFields(t *testing.T) {
	meta := Meta{Kind: enum.KindService, Scope: "second-floor", Year: 1403, Month: "ثور"}

	r := Project(meta, "p9", Entry{Amount: 800, Taken: 800}, Payee{ID: "p9"})
	if r.PayeeName != UnknownField {
		t.Errorf("PayeeName = %q, want placeholder", r.PayeeName)
	}
	if r.FatherName != UnknownField {
		t.Errorf("FatherName = %q, want placeholder", r.FatherName)
	}
	if r.Code != UnknownField {
		t.Errorf("Code = %q, want placeholder", r.Code)
	}
}

func TestProjectJoinsLastName(t *testing.T) {
	meta := Meta{Kind: enum.KindRent, Scope: "first-floor", Year: 1403, Month: "حمل"}

	r := Project(meta, "p1", Entry{}, Payee{ID: "p1", Name: "علی", LastName: "رضایی"})
	if r.PayeeName != "علی رضایی" {
		t.Errorf("PayeeName = %q", r.PayeeName)
	}
}
