package registry

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tsmm-dev/tsmm/internal/branding"
	"github.com/tsmm-dev/tsmm/internal/fetch"
	"github.com/tsmm-dev/tsmm/internal/manifest"
	"github.com/tsmm-dev/tsmm/internal/platform"
)

// moduleSubtree is the part of a cloned repository that gets installed.
const moduleSubtree = "src"

// Install clones repoURL, registers the module named by its package.json and
// moves the clone's src tree into <source>/<name>.
func (r *Registry) Install(ctx context.Context, repoURL string) error {
	repoURL = strings.TrimSpace(repoURL)
	if repoURL == "" {
		return UsageError("install <repository>")
	}

	r.reporter.Action("installing", "module from "+repoURL)

	m, err := r.load()
	if err != nil {
		return err
	}
	defer r.removeTemp()

	pkg, err := r.fetchModule(ctx, repoURL)
	if err != nil {
		return err
	}
	r.reporter.Value("module name", pkg.Name)
	if pkg.Description != "" {
		r.reporter.Value("description", pkg.Description)
	}

	if err := m.AddModule(manifest.ModuleEntry{Name: pkg.Name, Repository: repoURL}); err != nil {
		if errors.Is(err, manifest.ErrDuplicate) {
			return newError(KindDuplicate, "module already installed")
		}
		return err
	}
	if err := r.save(m); err != nil {
		return err
	}

	if err := r.place(pkg.Name); err != nil {
		r.unregister(m, pkg.Name)
		return err
	}
	r.logger.Info("installed module", "name", pkg.Name, "repository", repoURL, "version", pkg.Version)

	r.reporter.Line("")
	r.reporter.Success("successfully installed module")
	return nil
}

// Update re-clones a registered module from its recorded repository and
// replaces its directory. The manifest is not modified.
func (r *Registry) Update(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return UsageError("update [module]")
	}

	m, err := r.load()
	if err != nil {
		return err
	}

	entry := m.FindModule(name)
	if entry == nil || entry.Repository == "" {
		return newError(KindNotFound, fmt.Sprintf("module %s not found in %s", name, filepath.Base(r.manifestPath)))
	}

	r.reporter.Action("updating", name+" from "+entry.Repository)
	defer r.removeTemp()

	pkg, err := r.fetchModule(ctx, entry.Repository)
	if err != nil {
		return err
	}
	r.reporter.Value("module name", pkg.Name)
	if pkg.Name != name {
		// The registered name stays authoritative for the directory.
		r.logger.Warn("package name differs from registered module", "registered", name, "package", pkg.Name)
	}

	if err := r.place(name); err != nil {
		return err
	}
	r.logger.Info("updated module", "name", name, "repository", entry.Repository, "version", pkg.Version)

	r.reporter.Line("")
	r.reporter.Success(fmt.Sprintf("successfully updated %s module", name))
	return nil
}

// unregister drops name from m and persists it after a failed placement, so
// the manifest only records modules whose files were moved.
func (r *Registry) unregister(m *manifest.Manifest, name string) {
	if err := m.RemoveModule(name); err != nil {
		return
	}
	if err := r.save(m); err != nil {
		r.logger.Error("cannot restore manifest", "name", name, "error", err)
	}
}

// fetchModule clones url into the staging directory and reads its package
// descriptor. Nothing outside the staging directory is touched.
func (r *Registry) fetchModule(ctx context.Context, url string) (*manifest.PackageDescriptor, error) {
	tmp := r.TempDir()

	// A leftover from an interrupted run would make the clone fail.
	r.removeTemp()

	r.logger.Debug("cloning", "url", url, "dest", tmp)
	if err := r.fetcher.Clone(ctx, url, tmp); err != nil {
		if errors.Is(err, fetch.ErrGitNotFound) {
			return nil, wrapError(KindExternalTool, "this command requires git", err)
		}
		return nil, wrapError(KindExternalTool, "git clone failed", err)
	}

	pkg, err := manifest.ReadDescriptor(filepath.Join(tmp, branding.DescriptorFile()))
	if err != nil {
		return nil, wrapError(KindDescriptor, "no package.json found in repository", err)
	}
	if err := pkg.RequireName(); err != nil {
		return nil, newError(KindDescriptor, "no name in package.json found")
	}
	if err := validateModuleName(pkg.Name); err != nil {
		return nil, wrapError(KindDescriptor, fmt.Sprintf("invalid module name %q", pkg.Name), err)
	}
	if pkg.Version != "" {
		if _, err := pkg.SemVer(); err != nil {
			r.logger.Warn("package version is not semver", "name", pkg.Name, "version", pkg.Version, "error", err)
		}
	}

	if !platform.DirExists(filepath.Join(tmp, moduleSubtree)) {
		return nil, newError(KindDescriptor, "no src directory found in repository")
	}
	return pkg, nil
}

// place replaces <source>/<name> with the staged clone's src tree.
func (r *Registry) place(name string) error {
	dest := r.ModuleDir(name)

	if platform.DirExists(dest) {
		if err := os.RemoveAll(dest); err != nil {
			return wrapError(KindFilesystem, "cannot remove "+dest, err)
		}
	}
	if err := os.MkdirAll(dest, platform.DirPermNormal); err != nil {
		return wrapError(KindFilesystem, "cannot create "+dest, err)
	}

	if err := platform.MoveContents(filepath.Join(r.TempDir(), moduleSubtree), dest); err != nil {
		return wrapError(KindFilesystem, "cannot move module files", err)
	}
	return nil
}

// validateModuleName rejects names that cannot be used as a single directory
// under the source directory.
func validateModuleName(name string) error {
	switch {
	case name == "." || name == "..":
		return errors.New("name is a relative path")
	case name == TempDirName:
		return errors.New("name is reserved")
	case strings.ContainsAny(name, `/\`):
		return errors.New("name contains a path separator")
	}
	return nil
}
