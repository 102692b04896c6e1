package omnidocs_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/omnidocs"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := omnidocs.Errorf(omnidocs.ENOTFOUND, "navigation %q not found", "nav")

	assert.Equal(t, omnidocs.ENOTFOUND, omnidocs.ErrorCode(err))
	assert.Equal(t, "navigation \"nav\" not found", omnidocs.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, omnidocs.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, omnidocs.ErrorMessage(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, omnidocs.EINTERNAL, omnidocs.ErrorCode(err))
	assert.Equal(t, "Internal error.", omnidocs.ErrorMessage(err))
	assert.Equal(t, "boom", omnidocs.ErrorMessageOrText(err))
}

func TestErrorCode_Wrapped(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("rendering: %w", omnidocs.Errorf(omnidocs.ETIMEOUT, "page timed out"))

	assert.Equal(t, omnidocs.ETIMEOUT, omnidocs.ErrorCode(err))
	assert.Equal(t, "page timed out", omnidocs.ErrorMessage(err))
}

func TestWrapError(t *testing.T) {
	t.Parallel()

	err := omnidocs.WrapError(omnidocs.ETIMEOUT, context.DeadlineExceeded, "loading %s", "https://example.com")

	assert.Equal(t, omnidocs.ETIMEOUT, omnidocs.ErrorCode(err))
	assert.Equal(t, "loading https://example.com: context deadline exceeded", omnidocs.ErrorMessage(err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
