package units

import "strings"

// Base units: Celsius, meter, second, liter.
var catalog = map[Category][]Unit{
	Temperature: {
		{ID: "celsius", Category: Temperature, Name: "Celsius", Symbol: "°C", Factor: 1},
		{ID: "fahrenheit", Category: Temperature, Name: "Fahrenheit", Symbol: "°F", Factor: 5.0 / 9.0, Offset: -160.0 / 9.0},
		{ID: "kelvin", Category: Temperature, Name: "Kelvin", Symbol: "K", Factor: 1, Offset: -273.15, Spaced: true},
	},
	Length: {
		{ID: "meters", Category: Length, Name: "Meters", Symbol: "m", Factor: 1, Spaced: true},
		{ID: "kilometers", Category: Length, Name: "Kilometers", Symbol: "km", Factor: 1000, Spaced: true},
		{ID: "feet", Category: Length, Name: "Feet", Symbol: "ft", Factor: 0.3048, Spaced: true},
		{ID: "yards", Category: Length, Name: "Yards", Symbol: "yd", Factor: 0.9144, Spaced: true},
		{ID: "miles", Category: Length, Name: "Miles", Symbol: "mi", Factor: 1609.344, Spaced: true},
	},
	Time: {
		{ID: "seconds", Category: Time, Name: "Seconds", Symbol: "s", Factor: 1, Spaced: true},
		{ID: "minutes", Category: Time, Name: "Minutes", Symbol: "min", Factor: 60, Spaced: true},
		{ID: "hours", Category: Time, Name: "Hours", Symbol: "hr", Factor: 3600, Spaced: true},
	},
	Volume: {
		{ID: "milliliters", Category: Volume, Name: "Milliliters", Symbol: "mL", Factor: 0.001, Spaced: true},
		{ID: "liters", Category: Volume, Name: "Liters", Symbol: "L", Factor: 1, Spaced: true},
		{ID: "cups", Category: Volume, Name: "Cups", Symbol: "cup", Factor: 0.24, Spaced: true},
		{ID: "pints", Category: Volume, Name: "Pints", Symbol: "pt", Factor: 0.473176, Spaced: true},
		{ID: "gallons", Category: Volume, Name: "Gallons", Symbol: "gal", Factor: 3.78541, Spaced: true},
	},
}

// lookupIndex maps lowercased IDs and symbols to units.
var lookupIndex = buildIndex()

func buildIndex() map[string]Unit {
	idx := make(map[string]Unit)
	for _, list := range catalog {
		for _, u := range list {
			idx[strings.ToLower(u.ID)] = u
			idx[strings.ToLower(u.Symbol)] = u
		}
	}
	return idx
}

// UnitsFor returns the units of c in display order. The slice is a copy.
func UnitsFor(c Category) []Unit {
	list, ok := catalog[c]
	if !ok {
		return nil
	}
	out := make([]Unit, len(list))
	copy(out, list)
	return out
}

// DefaultPair returns the first two units of c, used to reseed the from/to
// selections whenever the category changes.
func DefaultPair(c Category) (Unit, Unit) {
	list := catalog[c]
	if len(list) < 2 {
		return Unit{}, Unit{}
	}
	return list[0], list[1]
}

// Lookup finds a unit by ID or symbol, ignoring case.
func Lookup(key string) (Unit, bool) {
	u, ok := lookupIndex[strings.ToLower(strings.TrimSpace(key))]
	return u, ok
}

// Contains reports whether the unit id belongs to c.
func Contains(c Category, id string) bool {
	u, ok := Lookup(id)
	return ok && u.Category == c
}
