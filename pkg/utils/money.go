package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatCurrency renders an amount as "₹1,234.50"-style text: currency
// symbol, thousands separators, two decimal places. Negative amounts keep
// the sign ahead of the symbol.
func FormatCurrency(amount decimal.Decimal, symbol string) string {
	s := amount.StringFixed(2)

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	b.WriteString(sign)
	b.WriteString(symbol)

	lead := len(intPart) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(intPart[:lead])
	for i := lead; i < len(intPart); i += 3 {
		b.WriteByte(',')
		b.WriteString(intPart[i : i+3])
	}

	b.WriteByte('.')
	b.WriteString(fracPart)

	return b.String()
}
