package foaas

import (
	"errors"
	"fmt"
	"strings"
)

var ErrNoMatchingOperation = errors.New("no matching operation found")

// NetworkError is a transport failure or an error status from the API.
type NetworkError struct {
	URL string

	StatusCode int

	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("request %s failed: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// DecodeError is a response body that is not valid JSON or lacks required keys.
type DecodeError struct {
	URL string

	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid response from %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// TemplateError means an operation's fields and URL placeholders disagree.
type TemplateError struct {
	Operation string
	URL       string

	Missing []string
	Unknown []string
}

func (e *TemplateError) Error() string {
	var details []string

	if len(e.Missing) > 0 {
		details = append(details, "unsubstituted "+strings.Join(e.Missing, ", "))
	}

	if len(e.Unknown) > 0 {
		details = append(details, "unmatched fields "+strings.Join(e.Unknown, ", "))
	}

	return fmt.Sprintf("operation %q template %s: %s", e.Operation, e.URL, strings.Join(details, "; "))
}

// ArityError is returned before any request when the value count differs from the field count.
type ArityError struct {
	Operation string

	Want int
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("operation %q expects %d values, got %d", e.Operation, e.Want, e.Got)
}
