package ledger

import (
	"math"
	"testing"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		input interface{}
		want  float64
	}{
		{"float", 1250.5, 1250.5},
		{"int", 300, 300},
		{"numeric string", "4500", 4500},
		{"numeric string with spaces", "  72.25 ", 72.25},
		{"empty string", "", 0},
		{"garbage string", "12abc", 0},
		{"nil", nil, 0},
		{"bool", true, 0},
		{"nan", math.NaN(), 0},
		{"infinity", math.Inf(1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAmount(tt.input)
			if got != tt.want {
				t.Errorf("ParseAmount(%v) = %v, want %v", tt.input, got, tt.want)
			}
			if math.IsNaN(got) {
				t.Errorf("ParseAmount(%v) returned NaN", tt.input)
			}
		})
	}
}
