package conversion

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatterLocales(t *testing.T) {
	seconds := mustUnit(t, "seconds")
	km := mustUnit(t, "kilometers")

	en := NewFormatter("en-US")
	require.Equal(t, "en-US", en.Locale())
	require.Equal(t, "3,600 s", en.Format(3600, seconds))
	require.Equal(t, "3.5 km", en.Format(3.5, km))

	de := NewFormatter("de-DE")
	require.Equal(t, "3.600 s", de.Format(3600, seconds))
	require.Equal(t, "3,5 km", de.Format(3.5, km))
}

func TestFormatterFallsBackOnBadLocale(t *testing.T) {
	f := NewFormatter("not a locale!")
	require.Equal(t, DefaultLocale, f.Locale())
}

func TestFormatterDoesNotPrintNegativeZero(t *testing.T) {
	f := NewFormatter(DefaultLocale)
	require.Equal(t, "0", f.Number(-0.0001))
	require.Equal(t, "0.333", f.Number(1.0/3.0))
	require.Equal(t, "72", f.Number(72))
}

func TestFormatterUsesScientificForHugeValues(t *testing.T) {
	f := NewFormatter(DefaultLocale)
	out := f.Number(1e300)
	require.Contains(t, out, "E")
	require.Less(t, len(out), 20)

	require.Equal(t, "999,999,999,999", f.Number(999999999999))
}
