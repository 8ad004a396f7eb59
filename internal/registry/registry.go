package registry

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tsmm-dev/tsmm/internal/branding"
	"github.com/tsmm-dev/tsmm/internal/fetch"
	"github.com/tsmm-dev/tsmm/internal/manifest"
	"github.com/tsmm-dev/tsmm/internal/platform"
)

// TempDirName is the directory under the source directory that receives clones.
const TempDirName = "temp"

// Registry performs module operations against one manifest.
type Registry struct {
	manifestPath  string
	sourceDir     string
	workDir       string
	defaultSource string

	prompter manifest.Prompter
	fetcher  fetch.Fetcher
	reporter Reporter
	logger   *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithFetcher sets the clone implementation. The default is git on PATH.
func WithFetcher(f fetch.Fetcher) Option {
	return func(r *Registry) {
		r.fetcher = f
	}
}

// WithReporter sets where progress and results are written.
func WithReporter(rep Reporter) Option {
	return func(r *Registry) {
		r.reporter = rep
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = l
	}
}

// WithWorkDir sets the project directory holding the host package.json.
// The default is the manifest's directory.
func WithWorkDir(dir string) Option {
	return func(r *Registry) {
		r.workDir = dir
	}
}

// WithDefaultSource sets the source directory offered on first run.
func WithDefaultSource(src string) Option {
	return func(r *Registry) {
		r.defaultSource = src
	}
}

// Open loads the manifest at manifestPath, asking p for a source directory
// when the manifest does not exist yet, and returns a Registry bound to the
// resolved source directory.
func Open(manifestPath string, p manifest.Prompter, opts ...Option) (*Registry, error) {
	r := &Registry{
		manifestPath:  manifestPath,
		defaultSource: branding.DefaultSource(),
		prompter:      p,
		fetcher:       fetch.NewGitFetcher("", nil),
		reporter:      TextReporter{W: os.Stdout},
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.workDir == "" {
		r.workDir = filepath.Dir(manifestPath)
	}

	m, err := r.load()
	if err != nil {
		return nil, err
	}
	r.sourceDir = manifest.ResolveSource(manifestPath, m.Source)
	r.logger.Debug("opened manifest", "path", manifestPath, "source", r.sourceDir, "modules", len(m.Modules))
	return r, nil
}

// SourceDir returns the directory holding installed modules.
func (r *Registry) SourceDir() string { return r.sourceDir }

// ManifestPath returns the manifest file path.
func (r *Registry) ManifestPath() string { return r.manifestPath }

// ModuleDir returns the installation directory for a module name.
func (r *Registry) ModuleDir(name string) string {
	return filepath.Join(r.sourceDir, name)
}

// TempDir returns the clone staging directory.
func (r *Registry) TempDir() string {
	return filepath.Join(r.sourceDir, TempDirName)
}

// load reads the manifest fresh from disk.
func (r *Registry) load() (*manifest.Manifest, error) {
	m, err := manifest.Load(r.manifestPath, r.prompter, r.defaultSource)
	if err != nil {
		if errors.Is(err, manifest.ErrInvalid) {
			return nil, wrapError(KindConfig, "invalid "+filepath.Base(r.manifestPath), err)
		}
		return nil, wrapError(KindConfig, "cannot load "+filepath.Base(r.manifestPath), err)
	}
	return m, nil
}

// save writes the manifest back to disk.
func (r *Registry) save(m *manifest.Manifest) error {
	if err := manifest.Save(r.manifestPath, m); err != nil {
		return wrapError(KindFilesystem, "cannot write "+filepath.Base(r.manifestPath), err)
	}
	return nil
}

// removeTemp deletes the clone staging directory if present.
func (r *Registry) removeTemp() {
	tmp := r.TempDir()
	if !platform.DirExists(tmp) {
		return
	}
	if err := os.RemoveAll(tmp); err != nil {
		r.logger.Warn("could not remove temp clone", "path", tmp, "error", err)
		return
	}
	r.logger.Debug("removed temp clone", "path", tmp)
}

// cleanupOnError removes the staging directory when *err is set. It is
// deferred by operations that do not always clone.
func (r *Registry) cleanupOnError(err *error) {
	if *err != nil {
		r.removeTemp()
	}
}

// UsageError reports a missing argument along with the command usage.
func UsageError(usage string) *Error {
	e := newError(KindUsage, "wrong usage")
	e.Hint = fmt.Sprintf("Usage: %s %s", branding.CLIName(), usage)
	return e
}
