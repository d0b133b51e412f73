package errors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dnderr "github.com/inferenco/cedra-randomness-demos/internal/errors"
)

func TestWrap_KeepsCodeAndMeta(t *testing.T) {
	cause := dnderr.NotFoundf("transaction %s not indexed yet", "0x1").WithMeta("status", 404)

	wrapped := dnderr.Wrap(cause, "fetch failed")
	require.NotNil(t, wrapped)
	assert.Equal(t, dnderr.CodeNotFound, wrapped.Code)
	assert.Equal(t, "fetch failed: transaction 0x1 not indexed yet", wrapped.Error())
	assert.Equal(t, 404, dnderr.GetMeta(wrapped)["status"])

	// metadata is copied, not shared
	wrapped.WithMeta("status", 500)
	assert.Equal(t, 404, cause.Meta["status"])
}

func TestWrap_PlainError(t *testing.T) {
	wrapped := dnderr.Wrapf(errors.New("exit status 1"), "run %s", "cedra")
	assert.Equal(t, dnderr.CodeUnknown, wrapped.Code)
	assert.Equal(t, "run cedra: exit status 1", wrapped.Error())
}

func TestWrap_Nil(t *testing.T) {
	assert.Nil(t, dnderr.Wrap(nil, "nothing"))
	assert.Nil(t, dnderr.Wrapf(nil, "nothing %d", 1))
	assert.Nil(t, dnderr.WrapWithCode(nil, dnderr.CodeParse, "nothing"))
}

func TestWrapWithCode_Overrides(t *testing.T) {
	cause := dnderr.NotFoundf("missing")
	wrapped := dnderr.WrapWithCode(cause, dnderr.CodeIndexTimeout, "gave up")

	assert.Equal(t, dnderr.CodeIndexTimeout, dnderr.GetCode(wrapped))
	assert.True(t, dnderr.Is(wrapped, dnderr.CodeIndexTimeout))
	assert.False(t, dnderr.IsNotFound(wrapped))
	assert.ErrorIs(t, wrapped, cause)
}

func TestHelpers(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code dnderr.Code
	}{
		{name: "not found", err: dnderr.NotFoundf("x"), code: dnderr.CodeNotFound},
		{name: "invalid argument", err: dnderr.InvalidArgumentf("x"), code: dnderr.CodeInvalidArgument},
		{name: "validation", err: dnderr.Validationf("x"), code: dnderr.CodeValidation},
		{name: "parse", err: dnderr.Parsef("x"), code: dnderr.CodeParse},
		{name: "new", err: dnderr.New(dnderr.CodeSubmission, "x"), code: dnderr.CodeSubmission},
		{name: "through fmt", err: fmt.Errorf("outer: %w", dnderr.New(dnderr.CodeToolUnavailable, "x")), code: dnderr.CodeToolUnavailable},
		{name: "plain", err: errors.New("x"), code: dnderr.CodeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, dnderr.GetCode(tt.err))
		})
	}

	assert.True(t, dnderr.IsValidation(dnderr.Validationf("bad")))
	assert.Nil(t, dnderr.GetMeta(errors.New("plain")))
}
