package utils

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"0", "₹0.00"},
		{"5", "₹5.00"},
		{"999.9", "₹999.90"},
		{"1234.5", "₹1,234.50"},
		{"123456", "₹123,456.00"},
		{"1234567.89", "₹1,234,567.89"},
		{"-1234.5", "-₹1,234.50"},
		{"-0.01", "-₹0.01"},
	}

	for _, tt := range tests {
		amount, err := decimal.NewFromString(tt.amount)
		if err != nil {
			t.Fatalf("bad test amount %q: %v", tt.amount, err)
		}
		if got := FormatCurrency(amount, "₹"); got != tt.want {
			t.Errorf("FormatCurrency(%s) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestFormatCurrencyOtherSymbol(t *testing.T) {
	amount := decimal.NewFromInt(1500)
	if got := FormatCurrency(amount, "$"); got != "$1,500.00" {
		t.Errorf("FormatCurrency = %q, want %q", got, "$1,500.00")
	}
}
