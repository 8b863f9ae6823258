package survey

import (
	"fmt"
	"math"
	"strings"

	"github.com/Rhymond/go-money"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter renders salary figures with locale-aware digit grouping and the
// configured currency symbol.
type Formatter struct {
	printer  *message.Printer
	currency string
	symbol   string
}

// NewFormatter builds a formatter for a BCP 47 locale and an ISO 4217
// currency code.
func NewFormatter(locale, currency string) (*Formatter, error) {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	code := strings.ToUpper(strings.TrimSpace(currency))
	cur := money.GetCurrency(code)
	if cur == nil {
		return nil, fmt.Errorf("unknown currency %q", currency)
	}
	return &Formatter{printer: message.NewPrinter(tag), currency: cur.Code, symbol: cur.Grapheme}, nil
}

// DefaultFormatter formats in US English dollars.
func DefaultFormatter() *Formatter {
	return &Formatter{printer: message.NewPrinter(language.AmericanEnglish), currency: "USD", symbol: "$"}
}

// Currency returns the ISO code in use.
func (f *Formatter) Currency() string { return f.currency }

// Symbol returns the currency grapheme, e.g. "$".
func (f *Formatter) Symbol() string { return f.symbol }

// Number groups thousands per the locale: 55081 -> "55,081" in en-US.
func (f *Formatter) Number(n int) string {
	return f.printer.Sprintf("%d", n)
}

// Money prefixes Number with the currency symbol.
func (f *Formatter) Money(n int) string {
	return f.symbol + f.Number(n)
}

// Compact renders a figure in thousands truncated to one decimal, the way
// chart axes and KPI cards show it: 37581 -> "$37.5k".
func (f *Formatter) Compact(v float64) string {
	s := f.printer.Sprintf("%.1f", math.Trunc(v/100)/10)
	// drop a trailing ".0" (or ",0"), whatever the locale's decimal mark is
	zero := f.printer.Sprintf("%.1f", 0.0)
	s = strings.TrimSuffix(s, zero[1:])
	return f.symbol + s + "k"
}
