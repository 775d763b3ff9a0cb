package form

import (
	"fmt"
	"math"

	"github.com/yanqian/convertia/internal/domain/units"
	apperrors "github.com/yanqian/convertia/pkg/errors"
)

// NewState returns the screen's opening selection: hours to seconds.
func NewState() State {
	return State{Category: units.Time, From: "hours", To: "seconds"}
}

// SelectCategory switches category and reseeds both unit pickers with the
// category's default pair. Reselecting the active category changes nothing.
func (s *State) SelectCategory(name string) error {
	c, err := units.ParseCategory(name)
	if err != nil {
		return apperrors.Wrap(apperrors.CodeInvalidInput, "unknown category", err)
	}
	if c == s.Category {
		return nil
	}
	from, to := units.DefaultPair(c)
	s.Category, s.From, s.To = c, from.ID, to.ID
	return nil
}

// SelectFrom sets the source unit.
func (s *State) SelectFrom(id string) error {
	u, err := s.unitInCategory(id)
	if err != nil {
		return err
	}
	s.From = u.ID
	return nil
}

// SelectTo sets the target unit.
func (s *State) SelectTo(id string) error {
	u, err := s.unitInCategory(id)
	if err != nil {
		return err
	}
	s.To = u.ID
	return nil
}

// SetValue sets the amount to convert.
func (s *State) SetValue(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return apperrors.Wrap(apperrors.CodeInvalidInput, "value must be a finite number", nil)
	}
	s.Value = v
	return nil
}

// Apply runs an update in category, from, to, value order. On error the
// receiver is left unchanged.
func (s *State) Apply(u Update) error {
	next := *s
	if u.Category != nil {
		if err := next.SelectCategory(*u.Category); err != nil {
			return err
		}
	}
	if u.From != nil {
		if err := next.SelectFrom(*u.From); err != nil {
			return err
		}
	}
	if u.To != nil {
		if err := next.SelectTo(*u.To); err != nil {
			return err
		}
	}
	if u.Value != nil {
		if err := next.SetValue(*u.Value); err != nil {
			return err
		}
	}
	*s = next
	return nil
}

// Units resolves the selected pair.
func (s State) Units() (units.Unit, units.Unit, error) {
	from, ok := units.Lookup(s.From)
	if !ok {
		return units.Unit{}, units.Unit{}, apperrors.Wrap(apperrors.CodeInvalidInput, fmt.Sprintf("unknown unit %q", s.From), nil)
	}
	to, ok := units.Lookup(s.To)
	if !ok {
		return units.Unit{}, units.Unit{}, apperrors.Wrap(apperrors.CodeInvalidInput, fmt.Sprintf("unknown unit %q", s.To), nil)
	}
	return from, to, nil
}

func (s State) unitInCategory(id string) (units.Unit, error) {
	u, ok := units.Lookup(id)
	if !ok {
		return units.Unit{}, apperrors.Wrap(apperrors.CodeInvalidInput, fmt.Sprintf("unknown unit %q", id), nil)
	}
	if u.Category != s.Category {
		return units.Unit{}, apperrors.Wrap(apperrors.CodeInvalidInput, fmt.Sprintf("unit %s is not a %s unit", u.ID, s.Category), nil)
	}
	return u, nil
}
