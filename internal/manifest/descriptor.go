package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ReadDescriptor reads and validates the package descriptor at path.
// A missing or malformed file returns an error wrapping ErrNoDescriptor.
// The name is not required here; see RequireName.
func ReadDescriptor(path string) (*PackageDescriptor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNoDescriptor, path)
		}
		return nil, &InvalidError{Path: path, Kind: ErrNoDescriptor, Err: err}
	}

	result, err := ValidateDescriptor(data)
	if err != nil {
		return nil, &InvalidError{Path: path, Kind: ErrNoDescriptor, Err: err}
	}
	if !result.Valid {
		return nil, &InvalidError{Path: path, Kind: ErrNoDescriptor, Issues: result.Issues}
	}

	var d PackageDescriptor
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, &InvalidError{Path: path, Kind: ErrNoDescriptor, Err: err}
	}
	return &d, nil
}

// RequireName returns ErrNoName when the descriptor carries no name.
func (d *PackageDescriptor) RequireName() error {
	if strings.TrimSpace(d.Name) == "" {
		return ErrNoName
	}
	return nil
}

// SemVer parses the descriptor version. A leading "v" is tolerated.
func (d *PackageDescriptor) SemVer() (*semver.Version, error) {
	if d.Version == "" {
		return nil, fmt.Errorf("package %q has no version", d.Name)
	}
	return semver.NewVersion(strings.TrimPrefix(d.Version, "v"))
}
