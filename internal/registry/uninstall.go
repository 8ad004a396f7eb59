package registry

import (
	"context"
	"os"
	"strings"

	"github.com/tsmm-dev/tsmm/internal/platform"
)

// Uninstall removes a registered module's directory and manifest entry.
// A directory that is already gone is reported but not treated as a failure.
func (r *Registry) Uninstall(_ context.Context, name string) (err error) {
	defer r.cleanupOnError(&err)

	name = strings.TrimSpace(name)
	if name == "" {
		return UsageError("uninstall [module]")
	}

	r.reporter.Action("uninstalling", name+" module")

	m, err := r.load()
	if err != nil {
		return err
	}
	if !m.HasModule(name) {
		return newError(KindNotFound, "module not installed")
	}

	dir := r.ModuleDir(name)
	if platform.DirExists(dir) {
		if err := os.RemoveAll(dir); err != nil {
			return wrapError(KindFilesystem, "cannot remove "+dir, err)
		}
	} else {
		r.reporter.Info("directory already deleted")
	}

	if err := m.RemoveModule(name); err != nil {
		return wrapError(KindNotFound, "module not installed", err)
	}
	if err := r.save(m); err != nil {
		return err
	}
	r.logger.Info("uninstalled module", "name", name)

	r.reporter.Success("successfully uninstalled module")
	return nil
}
