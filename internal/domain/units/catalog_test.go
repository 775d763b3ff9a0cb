package units

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func ids(list []Unit) []string {
	out := make([]string, 0, len(list))
	for _, u := range list {
		out = append(out, u.ID)
	}
	return out
}

func TestUnitsForDisplayOrder(t *testing.T) {
	tests := []struct {
		category Category
		want     []string
	}{
		{Temperature, []string{"celsius", "fahrenheit", "kelvin"}},
		{Length, []string{"meters", "kilometers", "feet", "yards", "miles"}},
		{Time, []string{"seconds", "minutes", "hours"}},
		{Volume, []string{"milliliters", "liters", "cups", "pints", "gallons"}},
	}
	for _, tc := range tests {
		t.Run(tc.category.String(), func(t *testing.T) {
			list := UnitsFor(tc.category)
			require.Equal(t, tc.want, ids(list))
			for _, u := range list {
				require.Equal(t, tc.category, u.Category)
				require.NotZero(t, u.Factor)
			}
		})
	}
}

func TestUnitsForReturnsCopy(t *testing.T) {
	list := UnitsFor(Length)
	list[0].Factor = 42
	require.Equal(t, 1.0, UnitsFor(Length)[0].Factor)
	require.Nil(t, UnitsFor(Category("mass")))
}

func TestDefaultPair(t *testing.T) {
	for _, c := range Categories() {
		from, to := DefaultPair(c)
		list := UnitsFor(c)
		require.Equal(t, list[0], from)
		require.Equal(t, list[1], to)
	}
	from, to := DefaultPair(Category("mass"))
	require.Zero(t, from)
	require.Zero(t, to)
}

func TestCategories(t *testing.T) {
	require.Equal(t, []Category{Temperature, Length, Time, Volume}, Categories())
	require.Equal(t, "Volume", Volume.Title())

	c, err := ParseCategory("  Length ")
	require.NoError(t, err)
	require.Equal(t, Length, c)

	_, err = ParseCategory("mass")
	require.ErrorIs(t, err, ErrUnknownCategory)
}

func TestLookup(t *testing.T) {
	u, ok := Lookup("Miles")
	require.True(t, ok)
	require.Equal(t, "miles", u.ID)

	u, ok = Lookup("km")
	require.True(t, ok)
	require.Equal(t, "kilometers", u.ID)

	u, ok = Lookup("°F")
	require.True(t, ok)
	require.Equal(t, "fahrenheit", u.ID)

	_, ok = Lookup("furlongs")
	require.False(t, ok)

	require.True(t, Contains(Time, "hr"))
	require.False(t, Contains(Time, "meters"))
}

func TestUnitLabel(t *testing.T) {
	f, _ := Lookup("fahrenheit")
	k, _ := Lookup("kelvin")
	km, _ := Lookup("kilometers")
	require.Equal(t, "72°F", f.Label("72"))
	require.Equal(t, "273.15 K", k.Label("273.15"))
	require.Equal(t, "3.5 km", km.Label("3.5"))
}

func TestCatalogSize(t *testing.T) {
	total := 0
	for _, c := range Categories() {
		total += len(UnitsFor(c))
	}
	require.Equal(t, 16, total)
}
