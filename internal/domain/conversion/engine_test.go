package conversion

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/convertia/internal/domain/units"
	apperrors "github.com/yanqian/convertia/pkg/errors"
)

func mustUnit(t *testing.T, id string) units.Unit {
	t.Helper()
	u, ok := units.Lookup(id)
	require.True(t, ok, "unit %s", id)
	return u
}

var sampleValues = []float64{0, 1, -40, 3.5, 37, 100, 1234.5678, -0.001, 1e6}

func TestConvertIdentity(t *testing.T) {
	for _, c := range units.Categories() {
		for _, u := range units.UnitsFor(c) {
			for _, v := range sampleValues {
				res, err := Convert(v, u, u)
				require.NoError(t, err)
				require.Equal(t, v, res.Value, "%s identity for %v", u.ID, v)
			}
		}
	}
}

func TestConvertRoundTrip(t *testing.T) {
	for _, c := range units.Categories() {
		list := units.UnitsFor(c)
		for _, a := range list {
			for _, b := range list {
				for _, v := range sampleValues {
					there, err := ConvertValue(v, a, b)
					require.NoError(t, err)
					back, err := ConvertValue(there, b, a)
					require.NoError(t, err)
					require.InDelta(t, v, back, 1e-9*max(1, abs(v)), "%s -> %s -> %s for %v", a.ID, b.ID, a.ID, v)
				}
			}
		}
	}
}

func TestConvertKnownPoints(t *testing.T) {
	celsius := mustUnit(t, "celsius")
	fahrenheit := mustUnit(t, "fahrenheit")
	kelvin := mustUnit(t, "kelvin")

	res, err := Convert(0, celsius, fahrenheit)
	require.NoError(t, err)
	require.Equal(t, 32.0, res.Value)
	require.Equal(t, "32°F", res.Formatted)

	res, err = Convert(100, celsius, fahrenheit)
	require.NoError(t, err)
	require.Equal(t, 212.0, res.Value)

	res, err = Convert(-40, fahrenheit, celsius)
	require.NoError(t, err)
	require.InDelta(t, -40.0, res.Value, 1e-12)

	res, err = Convert(0, celsius, kelvin)
	require.NoError(t, err)
	require.InDelta(t, 273.15, res.Value, 1e-12)
	require.Equal(t, "273.15 K", res.Formatted)

	res, err = Convert(1, mustUnit(t, "hours"), mustUnit(t, "seconds"))
	require.NoError(t, err)
	require.Equal(t, 3600.0, res.Value)
	require.Equal(t, "3,600 s", res.Formatted)

	res, err = Convert(1, mustUnit(t, "miles"), mustUnit(t, "kilometers"))
	require.NoError(t, err)
	require.InDelta(t, 1.60934, res.Value, 1e-4)
	require.Equal(t, "1.609 km", res.Formatted)

	res, err = Convert(1, mustUnit(t, "gallons"), mustUnit(t, "liters"))
	require.NoError(t, err)
	require.InDelta(t, 3.78541, res.Value, 1e-9)

	res, err = Convert(3500, mustUnit(t, "meters"), mustUnit(t, "kilometers"))
	require.NoError(t, err)
	require.Equal(t, 3.5, res.Value)
	require.Equal(t, "3.5 km", res.Formatted)
}

func TestConvertCrossCategoryFails(t *testing.T) {
	categories := units.Categories()
	for i, a := range categories {
		for j, b := range categories {
			if i == j {
				continue
			}
			from, _ := units.DefaultPair(a)
			_, to := units.DefaultPair(b)
			_, err := Convert(1, from, to)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrInvalidConversion))
			require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidConversion))
		}
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func TestConvertOverflowIsOutOfRange(t *testing.T) {
	miles := mustUnit(t, "miles")
	meters := mustUnit(t, "meters")

	_, err := Convert(1e308, miles, meters)
	require.ErrorIs(t, err, ErrOutOfRange)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))

	_, err = Convert(-1e308, miles, meters)
	require.ErrorIs(t, err, ErrOutOfRange)

	res, err := Convert(1e308, meters, miles)
	require.NoError(t, err)
	require.False(t, math.IsInf(res.Value, 0))
}
