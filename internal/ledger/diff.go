package ledger

import "github.com/alisinasultani/citycenter-api/pkg/apperror"

// Patch is the minimal set of field changes for one payee's entry.
type Patch struct {
	PayeeID string
	Fields  map[Field]interface{}
}

// numericFields are the balance columns. A change in any of them makes the
// patch carry the full charge and taken pair for that payee.
var numericFields = []Field{
	FieldAmount,
	FieldWater,
	FieldElectricity,
	FieldTaken,
	FieldCurrentWater,
	FieldPreviousWater,
	FieldCurrentElectricity,
	FieldPreviousElectricity,
}

func numericValue(e Entry, f Field) float64 {
	switch f {
	case FieldAmount:
		return e.Amount
	case FieldWater:
		return e.Water
	case FieldElectricity:
		return e.Electricity
	case FieldTaken:
		return e.Taken
	case FieldCurrentWater:
		return e.CurrentWater
	case FieldPreviousWater:
		return e.PreviousWater
	case FieldCurrentElectricity:
		return e.CurrentElectricity
	case FieldPreviousElectricity:
		return e.PreviousElectricity
	}
	return 0
}

// Diff computes the patch that turns original into updated. The charge
// fields and taken are always carried once any numeric field changed, so a
// partial edit cannot zero out the untouched side of the balance. Remainder
// is never part of a patch, readers recompute it. An empty diff returns
// ErrNothingToUpdate and no write should be issued.
func Diff(payeeID string, original, updated Entry) (Patch, error) {
	changed := false
	for _, f := range numericFields {
		if numericValue(original, f) != numericValue(updated, f) {
			changed = true
			break
		}
	}
	if !changed && original.Description == updated.Description && original.Unit == updated.Unit {
		return Patch{}, apperror.ErrNothingToUpdate
	}

	fields := make(map[Field]interface{})
	for _, f := range numericFields {
		if numericValue(original, f) != numericValue(updated, f) {
			fields[f] = numericValue(updated, f)
		}
	}
	if changed {
		// Backfill the balance fields from the original so a partial
		// patch still carries a complete charge and taken.
		if _, ok := fields[FieldAmount]; !ok {
			fields[FieldAmount] = original.Amount
		}
		if _, ok := fields[FieldWater]; !ok && (original.Water != 0 || updated.Water != 0) {
			fields[FieldWater] = original.Water
		}
		if _, ok := fields[FieldElectricity]; !ok && (original.Electricity != 0 || updated.Electricity != 0) {
			fields[FieldElectricity] = original.Electricity
		}
		if _, ok := fields[FieldTaken]; !ok {
			fields[FieldTaken] = original.Taken
		}
	}
	if original.Description != updated.Description {
		fields[FieldDescription] = updated.Description
	}
	if original.Unit != updated.Unit {
		fields[FieldUnit] = updated.Unit
	}

	return Patch{PayeeID: payeeID, Fields: fields}, nil
}
