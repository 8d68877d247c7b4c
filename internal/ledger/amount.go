package ledger

import (
	"math"
	"strconv"
	"strings"
)

// ParseAmount converts a raw value into a money amount. Submissions arrive
// with amounts as JSON numbers, numeric strings, or garbage typed by hand,
// and a bad cell must never poison the period totals, so anything that does
// not parse cleanly counts as zero.
func ParseAmount(v interface{}) float64 {
	switch n := v.(type) {
	case float64:
		return sanitize(n)
	case float32:
		return sanitize(float64(n))
	case int:
		return float64(n)
	case int64:
		return float64(n)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		return sanitize(f)
	case nil:
		return 0
	default:
		return 0
	}
}

func sanitize(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
