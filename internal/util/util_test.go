package util

import (
	"runtime"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestApplyWithBackoffFailure(t *testing.T) {
	origTimeout := timeout
	defer func() {
		timeout = origTimeout
	}()
	timeout = 1 * time.Second

	var callCount = 0
	f := func() error {
		callCount++
		return errors.New("bang")
	}
	err := ApplyWithBackoff(f)

	assert.Error(t, err)
	assert.True(t, callCount > 1)
}

func TestApplyWithBackoffSuccess(t *testing.T) {
	origTimeout := timeout
	defer func() {
		timeout = origTimeout
	}()
	timeout = 10 * time.Second

	var callCount = 0
	f := func() error {
		if callCount == 3 {
			return nil
		}
		callCount++
		return errors.New("bang")
	}
	err := ApplyWithBackoff(f)

	assert.NoError(t, err)
	assert.Equal(t, 3, callCount)
}

func TestNameOfFunction(t *testing.T) {
	name := currentFunctionName()
	assert.Equal(t, "currentFunctionName", name)
}

func currentFunctionName() string {
	callPtr, _, _, _ := runtime.Caller(0)
	return NameOfFunction(callPtr)
}

func TestMultiError(t *testing.T) {
	var multiError MultiError
	assert.True(t, multiError.Empty())

	multiError.Collect(nil)
	assert.True(t, multiError.Empty())

	multiError.Collect(errors.New("bang"))
	multiError.Collect(errors.New("boom"))
	assert.False(t, multiError.Empty())
	assert.Len(t, multiError.Errors, 2)
}
