package conversion

import (
	"errors"
	"fmt"
	"math"

	"github.com/yanqian/convertia/internal/domain/units"
	apperrors "github.com/yanqian/convertia/pkg/errors"
)

// ErrInvalidConversion marks a request whose units belong to different
// categories. Callers match it with errors.Is.
var ErrInvalidConversion = errors.New("invalid conversion")

// ErrOutOfRange marks a finite input whose converted value overflows float64.
var ErrOutOfRange = errors.New("result out of range")

// Result is the outcome of a single conversion.
type Result struct {
	Value     float64 `json:"value"`
	Formatted string  `json:"formatted"`
}

// Engine converts values between units of the same category. It holds no
// mutable state and is safe for concurrent use.
type Engine struct {
	formatter Formatter
}

// NewEngine returns an engine that renders results with formatter.
func NewEngine(formatter Formatter) *Engine {
	return &Engine{formatter: formatter}
}

var defaultEngine = NewEngine(NewFormatter(DefaultLocale))

// Convert runs the default en-US engine.
func Convert(value float64, from, to units.Unit) (Result, error) {
	return defaultEngine.Convert(value, from, to)
}

// Convert maps value from one unit to another via the category base unit.
func (e *Engine) Convert(value float64, from, to units.Unit) (Result, error) {
	out, err := ConvertValue(value, from, to)
	if err != nil {
		return Result{}, err
	}
	return Result{Value: out, Formatted: e.formatter.Format(out, to)}, nil
}

// ConvertValue is the numeric half of Convert.
func ConvertValue(value float64, from, to units.Unit) (float64, error) {
	if from.Category != to.Category {
		msg := fmt.Sprintf("cannot convert %s (%s) to %s (%s)", from.ID, from.Category, to.ID, to.Category)
		return 0, apperrors.Wrap(apperrors.CodeInvalidConversion, msg, ErrInvalidConversion)
	}
	if from.ID == to.ID {
		return value, nil
	}
	out := to.FromBase(from.ToBase(value))
	if math.IsNaN(out) || math.IsInf(out, 0) {
		msg := fmt.Sprintf("result is out of range converting %g %s to %s", value, from.ID, to.ID)
		return 0, apperrors.Wrap(apperrors.CodeInvalidInput, msg, ErrOutOfRange)
	}
	return out, nil
}
