// Package money formats amounts for display.
package money

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Digits are always grouped Indonesian-style ("1.234.567,89")
// regardless of the configured currency, so the printer locale is
// fixed rather than derived from Settings.Currency.
var printer = message.NewPrinter(language.Indonesian)

// Format renders an amount with its currency symbol, e.g. "Rp1.500".
func Format(symbol string, amount float64) string {
	return symbol + FormatNumber(amount)
}

// FormatNumber renders an amount with digit grouping and no symbol.
// Negative amounts keep their sign.
func FormatNumber(amount float64) string {
	s := printer.Sprint(number.Decimal(amount, number.MaxFractionDigits(2)))
	// Some CLDR locales group with a no-break space; keep output plain.
	return strings.ReplaceAll(s, "\u00a0", "")
}
