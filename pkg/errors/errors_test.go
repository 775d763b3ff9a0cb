package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(CodeStorage, "save failed", cause)

	require.EqualError(t, err, "save failed: boom")
	require.ErrorIs(t, err, cause)
	require.True(t, IsCode(err, CodeStorage))
	require.False(t, IsCode(err, CodeNotFound))
}

func TestCodeOfWrappedChain(t *testing.T) {
	err := fmt.Errorf("outer: %w", Wrap(CodeNotFound, "form not found", nil))
	require.Equal(t, CodeNotFound, CodeOf(err))
	require.Equal(t, "", CodeOf(errors.New("plain")))
	require.EqualError(t, Wrap(CodeInvalidInput, "bad", nil), "bad")
}
