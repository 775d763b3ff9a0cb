package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/convertia/pkg/errors"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestConvertCommand(t *testing.T) {
	out, err := runCmd(t, "convert", "100", "celsius", "fahrenheit")
	require.NoError(t, err)
	require.Equal(t, "100°C = 212°F\n", out)

	out, err = runCmd(t, "convert", "1", "hr", "s")
	require.NoError(t, err)
	require.Equal(t, "1 hr = 3,600 s\n", out)
}

func TestConvertCommandLocale(t *testing.T) {
	out, err := runCmd(t, "convert", "1", "hours", "seconds", "--locale", "de-DE")
	require.NoError(t, err)
	require.Equal(t, "1 hr = 3.600 s\n", out)
}

func TestConvertCommandJSON(t *testing.T) {
	out, err := runCmd(t, "convert", "2", "liters", "milliliters", "--json")
	require.NoError(t, err)

	var got struct {
		Category  string  `json:"category"`
		Value     float64 `json:"value"`
		Formatted string  `json:"formatted"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Equal(t, "volume", got.Category)
	require.InDelta(t, 2000.0, got.Value, 1e-9)
	require.Equal(t, "2,000 mL", got.Formatted)
}

func TestConvertCommandErrors(t *testing.T) {
	_, err := runCmd(t, "convert", "ten", "meters", "feet")
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))

	_, err = runCmd(t, "convert", "1", "meters", "seconds")
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidConversion))

	_, err = runCmd(t, "convert", "1", "meters")
	require.Error(t, err)
}

func TestUnitsCommand(t *testing.T) {
	out, err := runCmd(t, "units", "time")
	require.NoError(t, err)
	require.Contains(t, out, "Time")
	require.Contains(t, out, "seconds")
	require.Contains(t, out, "(default from)")
	require.NotContains(t, out, "Length")

	out, err = runCmd(t, "units")
	require.NoError(t, err)
	for _, title := range []string{"Temperature", "Length", "Time", "Volume"} {
		require.Contains(t, out, title)
	}

	_, err = runCmd(t, "units", "mass")
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}

func TestCategoriesCommand(t *testing.T) {
	out, err := runCmd(t, "categories")
	require.NoError(t, err)
	require.Equal(t, "temperature\tTemperature\nlength\tLength\ntime\tTime\nvolume\tVolume\n", out)
}
