// Package fault threads fatal geometry errors up through recursive
// planning code without plumbing an error return through every call.
// Decomposition and routing recurse deeply and uniformly; giving every
// level an `(..., error)` return would bury the actual logic in plumbing.
// Instead, recursive code panics with a *Error, and the public entry point
// recovers once and converts it back into a normal Go error.
package fault

import "github.com/pkg/errors"

// Kind classifies a fatal planning error, matching the four kinds spec.md
// §7 describes.
type Kind int

const (
	// InputIO means a collaborator could not open or read an input stream.
	InputIO Kind = iota
	// MalformedInput means a polygon or record failed a basic precondition.
	MalformedInput
	// GeometryError means decomposition or routing hit an internal
	// consistency violation on well-formed input.
	GeometryError
	// UnknownStartState means a tour start-state value outside the four
	// enumerated variants was observed; this indicates a programming error.
	UnknownStartState
)

func (k Kind) String() string {
	switch k {
	case InputIO:
		return "InputIO"
	case MalformedInput:
		return "MalformedInput"
	case GeometryError:
		return "GeometryError"
	case UnknownStartState:
		return "UnknownStartState"
	default:
		return "Unknown"
	}
}

// Error is a fatal planning error, carrying its Kind alongside the
// underlying message so callers can branch on Kind without string
// matching.
type Error struct {
	Kind Kind
	err  error
}

func (e *Error) Error() string {
	return e.err.Error()
}

func (e *Error) Unwrap() error {
	return e.err
}

// Fail panics with an *Error of the given kind. Recursive geometry code
// calls this instead of returning an error.
func Fail(kind Kind, format string, args ...interface{}) {
	panic(&Error{Kind: kind, err: errors.Errorf(format, args...)})
}

// Recover converts a panic value produced by Fail back into a Go error. If
// r is nil, Recover returns nil. If r is a panic that did not originate
// from Fail, Recover re-panics it rather than swallowing a real bug.
func Recover(r interface{}) error {
	if r == nil {
		return nil
	}
	if err, ok := r.(*Error); ok {
		return err
	}
	panic(r)
}
