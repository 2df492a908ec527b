package service

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateEmail(t *testing.T) {
	t.Parallel()

	require.Empty(t, validateEmail("john@x.com"))
	require.Empty(t, validateEmail(" john@x.com "))
	require.NotEmpty(t, validateEmail(""))
	require.NotEmpty(t, validateEmail("john"))
	require.NotEmpty(t, validateEmail("john@"))
	require.NotEmpty(t, validateEmail("John <john@x.com>"))
}

func TestValidationErrorMessage(t *testing.T) {
	t.Parallel()

	var v ValidationError
	require.NoError(t, v.err())

	v.add("platform", "unknown")
	v.add("candidate_name", "blank")
	v.add("platform", "ignored")

	require.Equal(t, "invalid input: candidate_name: blank; platform: unknown", v.Error())
	require.ErrorIs(t, v.err(), ErrInvalidInput)
}
