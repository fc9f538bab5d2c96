package wotd_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/wotd"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := wotd.Errorf(wotd.ENOTFOUND, "link %q not found", "a.scene__title-link")

	assert.Equal(t, wotd.ENOTFOUND, wotd.ErrorCode(err))
	assert.Equal(t, "link \"a.scene__title-link\" not found", wotd.ErrorMessage(err))
}

func TestWrapError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := fmt.Errorf("lookup: %w", wotd.WrapError(wotd.EUPSTREAM, cause, wotd.MsgWordFetchFailed))

	assert.Equal(t, wotd.EUPSTREAM, wotd.ErrorCode(err))
	assert.Equal(t, wotd.MsgWordFetchFailed, wotd.ErrorMessage(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, wotd.ErrorCode(nil))
}

func TestErrorCode_OtherError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, wotd.EINTERNAL, wotd.ErrorCode(errors.New("boom")))
	assert.Equal(t, "Internal error.", wotd.ErrorMessage(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, wotd.ErrorMessage(nil))
}
