package units

// Unit describes a single convertible unit. Values convert to the category
// base unit with value*Factor + Offset.
type Unit struct {
	ID       string   `json:"id"`
	Category Category `json:"category"`
	Name     string   `json:"name"`
	Symbol   string   `json:"symbol"`
	Factor   float64  `json:"-"`
	Offset   float64  `json:"-"`
	// Spaced is false for symbols glued to the number, like "72°F".
	Spaced bool `json:"-"`
}

// ToBase converts v from u into the category base unit.
func (u Unit) ToBase(v float64) float64 {
	return v*u.Factor + u.Offset
}

// FromBase converts a base-unit value into u.
func (u Unit) FromBase(base float64) float64 {
	// b/f - o/f keeps textbook points exact (100 °C -> 212 °F).
	return base/u.Factor - u.Offset/u.Factor
}

// Label appends the unit symbol to an already formatted number.
func (u Unit) Label(number string) string {
	if u.Spaced {
		return number + " " + u.Symbol
	}
	return number + u.Symbol
}
