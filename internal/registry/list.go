package registry

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/tsmm-dev/tsmm/internal/branding"
	"github.com/tsmm-dev/tsmm/internal/manifest"
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Tree glyphs used by List.
const (
	branchMiddle = " ┠ "
	branchEnd    = " ┗ "
)

const installedCountKey = "%d modules installed"

var countPrinter = newCountPrinter()

func newCountPrinter() *message.Printer {
	// Set only fails for malformed catalog messages.
	if err := message.Set(language.English, installedCountKey,
		plural.Selectf(1, "%d",
			"=1", "%d module installed",
			"other", "%d modules installed",
		)); err != nil {
		panic(fmt.Sprintf("registering %q: %v", installedCountKey, err))
	}
	return message.NewPrinter(language.English)
}

// List prints the host project's name followed by the installed modules as a
// tree, in manifest order. It must be run in a directory with a package.json.
func (r *Registry) List(_ context.Context) (err error) {
	defer r.cleanupOnError(&err)

	m, err := r.load()
	if err != nil {
		return err
	}

	host, err := manifest.ReadDescriptor(filepath.Join(r.workDir, branding.DescriptorFile()))
	if err != nil {
		e := wrapError(KindEnvironment, "not supported environment", err)
		e.Hint = "Info: " + branding.DescriptorFile() + " not found"
		return e
	}

	if len(m.Modules) == 0 {
		return newError(KindNotFound, "no modules installed")
	}

	title := host.Name
	if title == "" {
		title = r.workDir
		if abs, err := filepath.Abs(r.workDir); err == nil {
			title = abs
		}
	}

	r.reporter.Line("")
	r.reporter.Line(title)
	for _, line := range TreeLines(m.Modules) {
		r.reporter.Line(line)
	}
	r.reporter.Line("")
	r.reporter.Success(countPrinter.Sprintf(installedCountKey, len(m.Modules)))
	return nil
}

// TreeLines renders module names with a middle branch glyph, and an end
// branch glyph for the last one.
func TreeLines(modules []manifest.ModuleEntry) []string {
	lines := make([]string, 0, len(modules))
	for i, mod := range modules {
		prefix := branchMiddle
		if i == len(modules)-1 {
			prefix = branchEnd
		}
		lines = append(lines, prefix+mod.Name)
	}
	return lines
}
