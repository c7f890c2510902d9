package operation

import (
	"errors"
	"fmt"
	"strings"
)

// InvalidInputError reports rejected operation input: an unknown code, a
// missing required argument, or a value that failed type coercion. It is the
// error channel for caller mistakes only; business outcomes (a condition
// evaluating false, an ineligible method) never use it.
type InvalidInputError struct {
	Kind     string // which registry rejected the input, e.g. "promotion condition"
	Code     string // the operation code involved
	Argument string // offending argument name, if any
	Reason   string
}

func (e *InvalidInputError) Error() string {
	var b strings.Builder
	b.WriteString("invalid ")
	b.WriteString(e.Kind)
	b.WriteString(" input")
	if e.Code != "" {
		fmt.Fprintf(&b, " %q", e.Code)
	}
	if e.Argument != "" {
		fmt.Fprintf(&b, ", argument %q", e.Argument)
	}
	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}
	return b.String()
}

// IsInvalidInput reports whether err is (or wraps) an InvalidInputError.
func IsInvalidInput(err error) bool {
	var iie *InvalidInputError
	return errors.As(err, &iie)
}

func errUnknownCode(kind, code string) error {
	return &InvalidInputError{Kind: kind, Code: code, Reason: "no such code is registered"}
}

func errMissingArgument(kind, code, arg string) error {
	return &InvalidInputError{Kind: kind, Code: code, Argument: arg, Reason: "required argument is missing"}
}

func errUnknownArgument(kind, code, arg string) error {
	return &InvalidInputError{Kind: kind, Code: code, Argument: arg, Reason: "argument is not part of the definition"}
}

func errBadValue(kind, code, arg, reason string) error {
	return &InvalidInputError{Kind: kind, Code: code, Argument: arg, Reason: reason}
}
