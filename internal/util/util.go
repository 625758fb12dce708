package util

import (
	"runtime"
	"strings"
	"time"

	"github.com/cenkalti/backoff"
)

var timeout = 60 * time.Second

// ApplyWithBackoff tries to apply the specified function using an exponential backoff algorithm.
// If the function eventually succeeds nil is returned, otherwise the error returned by f.
func ApplyWithBackoff(f func() error) error {
	exponentialBackOff := backoff.NewExponentialBackOff()
	exponentialBackOff.MaxElapsedTime = timeout
	exponentialBackOff.Reset()
	return backoff.Retry(f, exponentialBackOff)
}

// NameOfFunction returns the bare name of the function at the given program counter,
// without its package qualifier.
func NameOfFunction(pc uintptr) string {
	name := runtime.FuncForPC(pc).Name()
	return name[strings.LastIndex(name, ".")+1:]
}

// MultiError collects multiple errors.
type MultiError struct {
	Errors []error
}

// Collect adds the given error to this MultiError, ignoring nil.
func (m *MultiError) Collect(err error) {
	if err != nil {
		m.Errors = append(m.Errors, err)
	}
}

// Empty returns true if no errors have been collected.
func (m *MultiError) Empty() bool {
	return len(m.Errors) == 0
}
