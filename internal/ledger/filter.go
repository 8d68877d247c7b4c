package ledger

// Range filters billing periods. Zero-valued criteria match everything.
// Month bounds are solar month names: both set means an inclusive span in
// calendar order, one set means that exact month. A span whose start comes
// after its end, or that names an unknown month, places no month constraint
// at all rather than silently matching nothing.
type Range struct {
	Year       *int
	StartMonth string
	EndMonth   string
	Scope      *string
}

// Matches reports whether a period satisfies all set criteria.
func (r Range) Matches(meta Meta) bool {
	if r.Year != nil && meta.Year != *r.Year {
		return false
	}
	if r.Scope != nil && meta.Scope != *r.Scope {
		return false
	}
	return r.matchesMonth(meta.Month)
}

func (r Range) matchesMonth(month string) bool {
	switch {
	case r.StartMonth == "" && r.EndMonth == "":
		return true
	case r.StartMonth != "" && r.EndMonth != "":
		lo := MonthIndex(r.StartMonth)
		hi := MonthIndex(r.EndMonth)
		if lo < 0 || hi < 0 || lo > hi {
			return true
		}
		i := MonthIndex(month)
		return i >= lo && i <= hi
	case r.StartMonth != "":
		return month == r.StartMonth
	default:
		return month == r.EndMonth
	}
}

// Apply keeps the items whose metadata matches the range.
func Apply[T any](items []T, meta func(T) Meta, r Range) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if r.Matches(meta(item)) {
			out = append(out, item)
		}
	}
	return out
}
