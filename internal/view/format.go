package view

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"admin/internal/domain"
)

// Formatter renders numbers, money and dates for one locale.
type Formatter struct {
	printer    *message.Printer
	dateLayout string
}

// NewFormatter builds a formatter for "id" or "en"; anything else formats as Indonesian.
func NewFormatter(locale string) Formatter {
	if strings.EqualFold(locale, "en") {
		return Formatter{printer: message.NewPrinter(language.English), dateLayout: "1/2/2006"}
	}
	return Formatter{printer: message.NewPrinter(language.Indonesian), dateLayout: "2/1/2006"}
}

func (f Formatter) p() *message.Printer {
	if f.printer == nil {
		return message.NewPrinter(language.Indonesian)
	}
	return f.printer
}

// Currency formats an IDR amount without fraction digits, e.g. "Rp 50.000".
func (f Formatter) Currency(amount decimal.Decimal) string {
	n := amount.Round(0).IntPart()
	if n < 0 {
		return "-Rp " + f.p().Sprintf("%d", -n)
	}
	return "Rp " + f.p().Sprintf("%d", n)
}

// Number formats an integer with locale grouping.
func (f Formatter) Number(n int64) string {
	return f.p().Sprintf("%d", n)
}

// Percent formats a ratio already expressed in percent with two decimals.
func (f Formatter) Percent(v float64) string {
	return f.p().Sprintf("%.2f", v) + "%"
}

// Rate formats a commission rate, e.g. "10%".
func (f Formatter) Rate(v float64) string {
	return f.p().Sprintf("%v", v) + "%"
}

// Date formats a date the way the locale writes it.
func (f Formatter) Date(t domain.Timestamp) string {
	if t.IsZero() {
		return "-"
	}
	layout := f.dateLayout
	if layout == "" {
		layout = "2/1/2006"
	}
	return t.Format(layout)
}

// Title capitalises a status or level for display.
// A Caser keeps state, so each call builds its own.
func Title(s string) string {
	c := cases.Title(language.English)
	return c.String(strings.ReplaceAll(s, "_", " "))
}
