package registry

import (
	"errors"
	"fmt"
)

// Kind classifies a registry failure.
type Kind int

const (
	// KindUsage is a missing or empty required argument.
	KindUsage Kind = iota + 1
	// KindConfig is an unreadable, malformed or incomplete manifest.
	KindConfig
	// KindNotFound is a module name absent from the manifest.
	KindNotFound
	// KindDuplicate is a module name that is already registered.
	KindDuplicate
	// KindExternalTool is a failed git invocation.
	KindExternalTool
	// KindDescriptor is a cloned repository without a usable package.json.
	KindDescriptor
	// KindEnvironment is a command run outside a project with its own package.json.
	KindEnvironment
	// KindFilesystem is a failed move, remove or write.
	KindFilesystem
)

func (k Kind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindConfig:
		return "config"
	case KindNotFound:
		return "not found"
	case KindDuplicate:
		return "duplicate"
	case KindExternalTool:
		return "external tool"
	case KindDescriptor:
		return "descriptor"
	case KindEnvironment:
		return "environment"
	case KindFilesystem:
		return "filesystem"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is returned by every Registry operation that aborts.
// Msg is the operator-facing message; Hint is optional extra context printed
// ahead of it; Err is the underlying cause, if any.
type Error struct {
	Kind Kind
	Msg  string
	Hint string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func newError(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

func wrapError(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf returns the Kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var re *Error
	if errors.As(err, &re) {
		return re.Kind
	}
	return 0
}

// IsKind reports whether err carries the given Kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
