package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tsmm-dev/tsmm/internal/platform"
)

// Prompter asks the operator a single question and returns the answer,
// or def when the answer is empty.
type Prompter interface {
	Ask(question, def string) (string, error)
}

// SourceQuestion is asked when no manifest exists yet.
const SourceQuestion = "please enter the source directory of your TypeScript files: "

// Exists reports whether a manifest file is present at path.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Load reads the manifest at path. When the file does not exist, the operator
// is asked for a source directory (defaulting to defaultSource), the directory
// is created relative to the manifest, and a new empty manifest is saved.
func Load(path string, p Prompter, defaultSource string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		return Parse(data, path)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	src, err := p.Ask(SourceQuestion, defaultSource)
	if err != nil {
		return nil, fmt.Errorf("reading source directory: %w", err)
	}
	src = strings.TrimSpace(src)
	if src == "" {
		src = defaultSource
	}

	dir := ResolveSource(path, src)
	if err := os.MkdirAll(dir, platform.DirPermNormal); err != nil {
		return nil, fmt.Errorf("creating source directory %s: %w", dir, err)
	}

	m := &Manifest{Source: src, Modules: []ModuleEntry{}}
	if err := Save(path, m); err != nil {
		return nil, err
	}
	return m, nil
}

// Parse decodes and validates manifest JSON. path is used in error messages only.
func Parse(data []byte, path string) (*Manifest, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, &InvalidError{Path: path, Kind: ErrInvalid, Err: err}
	}
	if !result.Valid {
		return nil, &InvalidError{Path: path, Kind: ErrInvalid, Issues: result.Issues}
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, &InvalidError{Path: path, Kind: ErrInvalid, Err: err}
	}
	if m.Modules == nil {
		m.Modules = []ModuleEntry{}
	}
	return &m, nil
}

// Save writes the manifest as 2-space indented JSON. The document is written
// to a temporary file in the same directory and renamed over path.
func Save(path string, m *Manifest) error {
	data, err := Marshal(m)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	if err := platform.Chmod(tmpName, platform.FilePermNormal); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing manifest %s: %w", path, err)
	}
	return nil
}

// Marshal encodes the manifest exactly as Save writes it.
func Marshal(m *Manifest) ([]byte, error) {
	out := *m
	if out.Modules == nil {
		out.Modules = []ModuleEntry{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&out); err != nil {
		return nil, fmt.Errorf("marshaling manifest: %w", err)
	}
	return buf.Bytes(), nil
}

// ResolveSource returns the source directory for a manifest at manifestPath.
// Relative sources are taken relative to the manifest's directory.
func ResolveSource(manifestPath, source string) string {
	if filepath.IsAbs(source) {
		return source
	}
	return filepath.Join(filepath.Dir(manifestPath), source)
}

// IndexOf returns the position of the named module, or -1.
func (m *Manifest) IndexOf(name string) int {
	for i := range m.Modules {
		if m.Modules[i].Name == name {
			return i
		}
	}
	return -1
}

// HasModule reports whether a module with the given name is registered.
func (m *Manifest) HasModule(name string) bool {
	return m.IndexOf(name) >= 0
}

// FindModule returns the named module entry, or nil if not found.
func (m *Manifest) FindModule(name string) *ModuleEntry {
	if i := m.IndexOf(name); i >= 0 {
		return &m.Modules[i]
	}
	return nil
}

// AddModule appends an entry. The manifest is unchanged when the name is
// already registered.
func (m *Manifest) AddModule(entry ModuleEntry) error {
	if m.HasModule(entry.Name) {
		return fmt.Errorf("%w: %s", ErrDuplicate, entry.Name)
	}
	m.Modules = append(m.Modules, entry)
	return nil
}

// RemoveModule removes the named entry, preserving the order of the rest.
func (m *Manifest) RemoveModule(name string) error {
	i := m.IndexOf(name)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrNotInstalled, name)
	}
	m.Modules = append(m.Modules[:i:i], m.Modules[i+1:]...)
	return nil
}
