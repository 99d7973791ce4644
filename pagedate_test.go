package pagedate_test

import (
	"testing"

	"github.com/frederickpi/pagedate"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := pagedate.Errorf(pagedate.ENOTFOUND, "record %q not found", "test")

	assert.Equal(t, pagedate.ENOTFOUND, pagedate.ErrorCode(err))
	assert.Equal(t, "record \"test\" not found", pagedate.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pagedate.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pagedate.ErrorMessage(nil))
}
