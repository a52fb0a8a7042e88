package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders whole-currency-unit amounts with a symbol prefix and
// locale-aware thousands separators, e.g. 1500 -> "₦1,500".
type Formatter struct {
	symbol  string
	printer *message.Printer
}

// NewFormatter creates a formatter for the given currency symbol and BCP 47
// locale tag. An unparseable locale falls back to English grouping.
func NewFormatter(symbol, locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Formatter{
		symbol:  symbol,
		printer: message.NewPrinter(tag),
	}
}

// Format renders an amount in whole currency units.
func (f *Formatter) Format(amount int64) string {
	return f.symbol + f.printer.Sprintf("%d", amount)
}
