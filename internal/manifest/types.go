package manifest

import "errors"

// Manifest is the persisted record of the source directory and the modules
// installed into it. Field order here is the key order on disk.
type Manifest struct {
	Source  string        `json:"source"`
	Modules []ModuleEntry `json:"modules"`
}

// ModuleEntry is a single installed module. Name is unique within a manifest.
type ModuleEntry struct {
	Name       string `json:"name"`
	Repository string `json:"repository"`
}

// PackageDescriptor is the subset of package.json that tsmm reads.
type PackageDescriptor struct {
	Name        string `json:"name"`
	Version     string `json:"version,omitempty"`
	Description string `json:"description,omitempty"`
}

var (
	// ErrInvalid marks a manifest that could not be parsed or failed validation.
	ErrInvalid = errors.New("invalid manifest")

	// ErrDuplicate is returned when adding a module whose name is already registered.
	ErrDuplicate = errors.New("module already installed")

	// ErrNotInstalled is returned when removing a module that is not registered.
	ErrNotInstalled = errors.New("module not installed")

	// ErrNoDescriptor is returned when a package descriptor is missing or unreadable.
	ErrNoDescriptor = errors.New("no package.json found")

	// ErrNoName is returned when a package descriptor has no name.
	ErrNoName = errors.New("no name in package.json found")
)

// InvalidError describes why a document was rejected. It unwraps to the
// sentinel given in Kind so callers can use errors.Is.
type InvalidError struct {
	Path   string
	Kind   error
	Issues []ValidationIssue
	Err    error
}

func (e *InvalidError) Error() string {
	msg := e.Kind.Error() + " " + e.Path
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	if len(e.Issues) > 0 {
		msg += ": " + e.Issues[0].String()
		if n := len(e.Issues) - 1; n > 0 {
			msg += printer.Sprintf(" (and %d more)", n)
		}
	}
	return msg
}

func (e *InvalidError) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Kind, e.Err}
	}
	return []error{e.Kind}
}
