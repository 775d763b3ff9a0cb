package units

import (
	"errors"
	"fmt"
	"strings"
)

// Category groups mutually convertible units.
type Category string

const (
	Temperature Category = "temperature"
	Length      Category = "length"
	Time        Category = "time"
	Volume      Category = "volume"
)

// ErrUnknownCategory is returned when parsing a name outside the closed set.
var ErrUnknownCategory = errors.New("unknown category")

var categoryOrder = []Category{Temperature, Length, Time, Volume}

var categoryTitles = map[Category]string{
	Temperature: "Temperature",
	Length:      "Length",
	Time:        "Time",
	Volume:      "Volume",
}

// Categories lists every category in display order.
func Categories() []Category {
	out := make([]Category, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// ParseCategory resolves a case-insensitive category name.
func ParseCategory(name string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(name)))
	if !c.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}
	return c, nil
}

// Valid reports whether c is one of the four known categories.
func (c Category) Valid() bool {
	_, ok := categoryTitles[c]
	return ok
}

// Title is the human readable label.
func (c Category) Title() string {
	return categoryTitles[c]
}

func (c Category) String() string {
	return string(c)
}
