// Package registry installs, updates, uninstalls and lists modules recorded
// in the tsmm.json manifest. A Registry is opened once per command with the
// manifest path and resolved source directory; each operation reads the
// manifest fresh, performs its filesystem and clone side effects, and writes
// the manifest back when it changes.
package registry
