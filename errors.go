package sheets

import (
	"errors"
	"fmt"
)

// ErrConfiguration is the umbrella for all errors caused by a misconfigured
// set of conditions, sheets or field actions.
var ErrConfiguration = errors.New("configuration error")

// configError is a sentinel type which matches ErrConfiguration.
type configError struct {
	msg string
}

func (e *configError) Error() string {
	return e.msg
}

func (e *configError) Is(target error) bool {
	return target == ErrConfiguration
}

// Sentinel errors. Callers wrap them with additional context.
var (
	ErrNotFound           error = &configError{"condition not found"}
	ErrNoConditionMatched error = &configError{"no responsive condition matched"}
	ErrUndefinedSheet     error = &configError{"sheet is undefined"}
	ErrUnknownField       error = &configError{"no action registered for field"}
	ErrMalformedSheet     error = &configError{"malformed sheet"}
)

// ErrSheetRedefined is an advisory warning: a sheet name has been defined
// more than once. It is not a configuration error; the latest definition
// wins for all future applications of the name.
var ErrSheetRedefined = errors.New("sheet redefined")

// MalformedSheetError is returned for sheets which are neither flat
// (depth 2) nor partitioned by condition (depth 3).
type MalformedSheetError struct {
	Depth  int    // measured depth of the sheet
	Reason string // optional detail, e.g. the offending key
}

func (e *MalformedSheetError) Error() string {
	msg := fmt.Sprintf("malformed sheet: depth of 2 or 3 expected, actual depth was %d", e.Depth)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Is lets errors.Is match ErrMalformedSheet and ErrConfiguration.
func (e *MalformedSheetError) Is(target error) bool {
	return target == ErrMalformedSheet || target == ErrConfiguration
}

// Malformed creates a MalformedSheetError for a measured depth.
func Malformed(depth int, format string, args ...interface{}) error {
	return &MalformedSheetError{Depth: depth, Reason: fmt.Sprintf(format, args...)}
}
