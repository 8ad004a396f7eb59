// Package fetch retrieves module repositories into a local directory.
// The default implementation shells out to git; callers depend on the
// Fetcher interface so tests can supply a repository layout directly.
package fetch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
)

// Fetcher clones a repository into dest. dest must not exist yet.
type Fetcher interface {
	Clone(ctx context.Context, url, dest string) error
}

// ErrGitNotFound is returned when the git binary is not on PATH.
var ErrGitNotFound = errors.New("git is required but not found in PATH")

// CloneError reports a clone that exited unsuccessfully.
type CloneError struct {
	URL      string
	ExitCode int
	Output   string
	Err      error
}

func (e *CloneError) Error() string {
	msg := fmt.Sprintf("git clone %s: %v", e.URL, e.Err)
	if e.Output != "" {
		msg += "\n" + e.Output
	}
	return msg
}

func (e *CloneError) Unwrap() error { return e.Err }

// GitFetcher clones with the git command line client. Authentication is left
// to git (SSH agent, credential helpers).
type GitFetcher struct {
	// Binary is the git executable; "git" when empty.
	Binary string
	// Progress, when set, receives git's output as it runs.
	Progress io.Writer
}

// NewGitFetcher returns a GitFetcher using binary and streaming to progress.
func NewGitFetcher(binary string, progress io.Writer) *GitFetcher {
	return &GitFetcher{Binary: binary, Progress: progress}
}

// Clone runs `git clone <url> <dest>`.
func (g *GitFetcher) Clone(ctx context.Context, url, dest string) error {
	bin, err := g.lookPath()
	if err != nil {
		return err
	}

	var output bytes.Buffer
	var w io.Writer = &output
	if g.Progress != nil {
		w = io.MultiWriter(&output, g.Progress)
	}

	cmd := exec.CommandContext(ctx, bin, "clone", url, dest)
	cmd.Stdout = w
	cmd.Stderr = w
	if err := cmd.Run(); err != nil {
		cerr := &CloneError{URL: url, ExitCode: -1, Err: err}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			cerr.ExitCode = exitErr.ExitCode()
		}
		// Output already reached the terminal when streaming.
		if g.Progress == nil {
			cerr.Output = strings.TrimSpace(output.String())
		}
		return cerr
	}
	return nil
}

// lookPath checks that the configured git binary is available.
func (g *GitFetcher) lookPath() (string, error) {
	name := g.Binary
	if name == "" {
		name = "git"
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return "", ErrGitNotFound
	}
	return path, nil
}
