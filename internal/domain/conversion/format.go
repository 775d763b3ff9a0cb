package conversion

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/yanqian/convertia/internal/domain/units"
)

// DefaultLocale is used when a caller does not ask for one.
const DefaultLocale = "en-US"

const maxFractionDigits = 3

// Magnitudes at or above this switch to scientific notation.
const scientificThreshold = 1e15

// Formatter renders numbers with locale aware separators followed by a unit
// symbol. Formatting never changes the numeric result.
type Formatter struct {
	tag     language.Tag
	printer *message.Printer
}

// NewFormatter builds a formatter for a BCP 47 tag such as "de-DE".
// Unparsable tags fall back to DefaultLocale.
func NewFormatter(locale string) Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse(DefaultLocale)
	}
	return Formatter{tag: tag, printer: message.NewPrinter(tag)}
}

// Locale reports the tag actually in use.
func (f Formatter) Locale() string {
	return f.tag.String()
}

// Number renders v with at most three fraction digits. Very large
// magnitudes use scientific notation.
func (f Formatter) Number(v float64) string {
	// keep "-0" out of the output when rounding swallows a tiny negative
	if math.Abs(v) < 0.5*math.Pow10(-maxFractionDigits) {
		v = 0
	}
	if math.Abs(v) >= scientificThreshold {
		return f.printer.Sprint(number.Scientific(v, number.MaxFractionDigits(maxFractionDigits)))
	}
	return f.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(maxFractionDigits)))
}

// Format renders v in unit u, e.g. "72°F" or "3.5 km".
func (f Formatter) Format(v float64, u units.Unit) string {
	return u.Label(f.Number(v))
}
