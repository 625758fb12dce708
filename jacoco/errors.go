package jacoco

import "fmt"

// SourceUnavailableError reports that the coverage report itself could
// not be opened or fetched. The parse never started.
type SourceUnavailableError struct {
	Source string
	Err    error
}

func (e *SourceUnavailableError) Error() string {
	return fmt.Sprintf("coverage report %s is unavailable: %v", e.Source, e.Err)
}

func (e *SourceUnavailableError) Unwrap() error {
	return e.Err
}

// SyntaxError reports that the report content could not be parsed as
// well-formed coverage markup.
type SyntaxError struct {
	Source string
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("malformed coverage report %s: %v", e.Source, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// MissingAttributeError reports an element that lacks an attribute the
// parser requires. Coverage numbers are never defaulted, a report that
// omits them is rejected outright.
type MissingAttributeError struct {
	Element   string
	Attribute string
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("element <%s> is missing required attribute %q", e.Element, e.Attribute)
}

// InvalidAttributeError reports an attribute whose value is not a valid
// integer where one is required.
type InvalidAttributeError struct {
	Element   string
	Attribute string
	Value     string
}

func (e *InvalidAttributeError) Error() string {
	return fmt.Sprintf("element <%s>: attribute %q has non-integer value %q", e.Element, e.Attribute, e.Value)
}
