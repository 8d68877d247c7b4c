package ledger

import (
	"fmt"
	"math"
)

// UnknownField is printed in place of any directory detail the receipt
// cannot resolve.
const UnknownField = "نامشخص"

// Payee is the directory record joined onto a ledger entry for printing.
// Any field may be empty when the directory lookup came back incomplete.
type Payee struct {
	ID         string
	Name       string
	LastName   string
	FatherName string
	Code       string
}

// Receipt is the flat, print-ready projection of a single entry.
type Receipt struct {
	BillNumber  string  `json:"bill_number"`
	PeriodLabel string  `json:"period_label"`
	PayeeName   string  `json:"payee_name"`
	FatherName  string  `json:"father_name"`
	Code        string  `json:"code"`
	Unit        string  `json:"unit"`
	Charge      float64 `json:"charge"`
	Taken       float64 `json:"taken"`
	Remainder   float64 `json:"remainder"`
	Description string  `json:"description"`
}

// Project maps one entry plus its owning period into a receipt. The
// remainder is recomputed from charge and taken; the stored value is used
// only when recomputation does not yield a finite number. Missing directory
// fields degrade to a placeholder instead of failing the print.
func Project(meta Meta, payeeID string, entry Entry, payee Payee) Receipt {
	remainder := entry.Charge() - entry.Taken
	if math.IsNaN(remainder) || math.IsInf(remainder, 0) {
		remainder = entry.Remainder
	}

	name := payee.Name
	if payee.LastName != "" {
		name = name + " " + payee.LastName
	}

	return Receipt{
		BillNumber:  fmt.Sprintf("%s-%d-%s-%s", meta.Kind.String(), meta.Year, meta.Month, payeeID),
		PeriodLabel: fmt.Sprintf("%s %d", meta.Month, meta.Year),
		PayeeName:   orUnknown(name),
		FatherName:  orUnknown(payee.FatherName),
		Code:        orUnknown(payee.Code),
		Unit:        entry.Unit,
		Charge:      entry.Charge(),
		Taken:       entry.Taken,
		Remainder:   remainder,
		Description: entry.Description,
	}
}

func orUnknown(s string) string {
	if s == "" {
		return UnknownField
	}
	return s
}
