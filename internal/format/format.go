// Package format renders numbers the way the board displays expect them:
// en-US grouping, two decimal places for money and ratios.
package format

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Currency renders a dollar amount, e.g. "$1,234.50".
func Currency(v float64) string {
	return printer.Sprintf("$%v", number.Decimal(v, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// Percent renders a 0..1 ratio as a percentage, e.g. "45.00%".
func Percent(v float64) string {
	return printer.Sprintf("%v%%", number.Decimal(v*100, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// Float renders a plain two-decimal number with grouping.
func Float(v float64) string {
	return printer.Sprintf("%v", number.Decimal(v, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// Number renders an integral count with grouping.
func Number(v int) string {
	return printer.Sprintf("%v", number.Decimal(v))
}

// Date renders a timestamp for table display.
func Date(t time.Time) string {
	return t.Format("2006-01-02 15:04:05")
}
