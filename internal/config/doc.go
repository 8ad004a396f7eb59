// Package config manages user-level settings stored at ~/.tsmm/config.yaml:
// the git binary used for clones, the source directory offered on first run,
// and the diagnostic log level. Settings are read from the file only; the
// environment is not consulted.
package config
