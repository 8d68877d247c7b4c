package ledger

import "github.com/alisinasultani/citycenter-api/internal/domain/enum"

// The wire format names the charge field differently per ledger kind, a
// legacy of the original records. The mapping is resolved once here at the
// codec boundary; everything past DecodeEntry works on the normalized Entry
// and never branches on kind again.

func chargeKey(kind enum.BillingKind) string {
	switch kind {
	case enum.KindRent:
		return "rant"
	case enum.KindService:
		return "service"
	case enum.KindUtility:
		return "services"
	case enum.KindSalary:
		return "salary"
	}
	return "amount"
}

// FieldFor resolves a wire field name to its normalized entry field. The
// second result is false for names that are not patchable, remainder
// included.
func FieldFor(kind enum.BillingKind, wireName string) (Field, bool) {
	if wireName == chargeKey(kind) {
		return FieldAmount, true
	}
	switch wireName {
	case "taken":
		return FieldTaken, true
	case "unit":
		return FieldUnit, true
	case "description":
		return FieldDescription, true
	}
	if kind == enum.KindUtility {
		switch wireName {
		case "total_water_price":
			return FieldWater, true
		case "total_electricity":
			return FieldElectricity, true
		case "current_water":
			return FieldCurrentWater, true
		case "previous_water":
			return FieldPreviousWater, true
		case "current_electricity":
			return FieldCurrentElectricity, true
		case "previous_electricity":
			return FieldPreviousElectricity, true
		}
	}
	return "", false
}

// DecodeEntry builds a normalized entry from a raw wire map. Unknown keys
// are ignored, numeric values are coerced through ParseAmount, and the
// remainder is recomputed rather than read.
func DecodeEntry(kind enum.BillingKind, raw map[string]interface{}) Entry {
	var e Entry
	for key, value := range raw {
		if field, ok := FieldFor(kind, key); ok {
			e.Set(field, value)
		}
	}
	e.Recalculate()
	return e
}

func wireKey(kind enum.BillingKind, field Field) string {
	switch field {
	case FieldAmount:
		return chargeKey(kind)
	case FieldWater:
		return "total_water_price"
	case FieldElectricity:
		return "total_electricity"
	default:
		return string(field)
	}
}

// EncodeEntry renders an entry back into its kind-specific wire shape.
func EncodeEntry(kind enum.BillingKind, e Entry) map[string]interface{} {
	out := map[string]interface{}{
		chargeKey(kind): e.Amount,
		"taken":         e.Taken,
		"remainder":     e.Remainder,
	}
	if e.Unit != "" {
		out["unit"] = e.Unit
	}
	if e.Description != "" {
		out["description"] = e.Description
	}
	if kind == enum.KindUtility {
		out["total_water_price"] = e.Water
		out["total_electricity"] = e.Electricity
		out["current_water"] = e.CurrentWater
		out["previous_water"] = e.PreviousWater
		out["current_electricity"] = e.CurrentElectricity
		out["previous_electricity"] = e.PreviousElectricity
	}
	return out
}

// encodePatch renders an outgoing patch. Remainder never crosses the wire.
func encodePatch(kind enum.BillingKind, p Patch) map[string]interface{} {
	out := make(map[string]interface{}, len(p.Fields))
	for field, value := range p.Fields {
		out[wireKey(kind, field)] = value
	}
	return out
}
