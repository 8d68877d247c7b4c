package ledger

// Totals aggregates a period. TotalRemainder is always the difference of
// the other two sums, not a sum of per-entry remainders, so a stale stored
// remainder can never skew the period balance.
type Totals struct {
	TotalCharge    float64 `json:"total_charge"`
	TotalTaken     float64 `json:"total_taken"`
	TotalRemainder float64 `json:"total_remainder"`
	Count          int     `json:"count"`
}

// Sum computes totals over a set of entries.
func Sum(entries map[string]Entry) Totals {
	var t Totals
	for _, e := range entries {
		t.TotalCharge += e.Charge()
		t.TotalTaken += e.Taken
		t.Count++
	}
	t.TotalRemainder = t.TotalCharge - t.TotalTaken
	return t
}
