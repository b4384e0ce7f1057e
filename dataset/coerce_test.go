package dataset

import "testing"

func TestParsePrice(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
		ok   bool
	}{
		{"$120.00", 120, true},
		{"$1,200.50", 1200.50, true},
		{"980", 980, true},
		{" $95 / night", 95, true},
		{"€75", 75, true},
		{"", 0, false},
		{"free", 0, false},
		{"N/A", 0, false},
		{"1.2.3", 0, false},
	}

	for _, tt := range tests {
		got, ok := parsePrice(tt.raw)
		if got != tt.want || ok != tt.ok {
			t.Errorf("parsePrice(%q) = %.2f, %v; want %.2f, %v", tt.raw, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
		ok   bool
	}{
		{"2", 2, true},
		{"4.85", 4.85, true},
		{" 3 ", 3, true},
		{"0", 0, true},
		{"", 0, false},
		{"N/A", 0, false},
		{"two", 0, false},
		{"nan", 0, false},
	}

	for _, tt := range tests {
		got, ok := parseNumber(tt.raw)
		if got != tt.want || ok != tt.ok {
			t.Errorf("parseNumber(%q) = %.2f, %v; want %.2f, %v", tt.raw, got, ok, tt.want, tt.ok)
		}
	}
}
