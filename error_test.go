package siteindex_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	siteindex "github.com/fredster9/site-interface"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := siteindex.Errorf(siteindex.ENOTFOUND, "document %q not found", "test")

	assert.Equal(t, siteindex.ENOTFOUND, siteindex.ErrorCode(err))
	assert.Equal(t, "document \"test\" not found", siteindex.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, siteindex.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, siteindex.ErrorMessage(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, siteindex.EINTERNAL, siteindex.ErrorCode(err))
	assert.Equal(t, "Internal error", siteindex.ErrorMessage(err))
}
