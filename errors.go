package mdrender

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Sentinel errors for common failure modes.
var (
	// ErrNotSupported indicates a target lacks a capability the document needs.
	ErrNotSupported = errors.New("render not supported")

	// ErrMalformedInput indicates a node tree violates a structural expectation.
	ErrMalformedInput = errors.New("malformed input")

	// ErrUnknownTarget indicates a target name that no renderer is registered for.
	ErrUnknownTarget = errors.New("unknown target")

	// ErrValidation indicates a configuration value failed validation.
	ErrValidation = errors.New("validation error")
)

// NotSupportedError reports media a target has no presentation for, such as
// a YouTube embed on the legacy HTML target.
type NotSupportedError struct {
	Target TargetID
	Media  MediaKind
}

func (e *NotSupportedError) Error() string {
	return fmt.Sprintf("%s target cannot render %s: %s", e.Target, e.Media, ErrNotSupported)
}

// Unwrap returns ErrNotSupported.
func (e *NotSupportedError) Unwrap() error { return ErrNotSupported }

// NotSupported returns a *NotSupportedError for target and media.
func NotSupported(target TargetID, media MediaKind) error {
	return &NotSupportedError{Target: target, Media: media}
}

// MalformedInputError reports a structural problem in a node tree. Path holds
// the child indexes leading from the root to the offending node.
type MalformedInputError struct {
	Path   []int
	Kind   Kind
	Reason string
}

func (e *MalformedInputError) Error() string {
	var b strings.Builder
	for _, i := range e.Path {
		b.WriteByte('/')
		b.WriteString(strconv.Itoa(i))
	}
	if b.Len() == 0 {
		b.WriteByte('/')
	}
	return fmt.Sprintf("%s at %s (%s): %s", ErrMalformedInput, b.String(), e.Kind, e.Reason)
}

// Unwrap returns ErrMalformedInput.
func (e *MalformedInputError) Unwrap() error { return ErrMalformedInput }
