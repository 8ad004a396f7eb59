// Package cli defines the Cobra command tree for the tsmm CLI. Each file in
// this package registers one top-level command (install, update, uninstall,
// list, version) with the root command. Command implementations delegate to
// the registry package and only handle argument wiring, output styling, and
// error presentation.
package cli
