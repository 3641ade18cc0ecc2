package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	t.Parallel()

	var empty *ValidationError
	require.True(t, empty.Empty())
	require.NoError(t, (&ValidationError{}).OrNil())

	err := NewValidationError("text", MsgRequired)
	err.Add("group", "bad")
	err.Add("text", "again")

	require.Equal(t, "validation failed: group: bad; text: This field is required. again", err.Error())
	require.True(t, errors.Is(err, ErrInvalidRequest))
	require.False(t, errors.Is(err, ErrSelfFollow))

	err.WithCause(ErrSelfFollow)
	require.True(t, errors.Is(err, ErrSelfFollow))
}

func TestValidateStruct_UsesJSONNames(t *testing.T) {
	t.Parallel()

	err := validateStruct(GroupRequest{Title: "t", Description: "d"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, []string{MsgRequired}, verr.Fields["slug"])
}
