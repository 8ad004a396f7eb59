package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"github.com/tsmm-dev/tsmm/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Setting keys.
const (
	KeyGit           = "git"
	KeyDefaultSource = "default_source"
	KeyLogLevel      = "log_level"
)

// Dir returns the path to the user config directory (~/.tsmm/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.tsmm/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Load initializes Viper to read from the default config file.
func Load() {
	LoadFrom(FilePath())
}

// LoadFrom initializes Viper to read from the given file. A missing or
// unreadable file leaves the defaults in place.
func LoadFrom(path string) {
	viper.SetConfigFile(path)
	viper.SetConfigType(fileType)

	viper.SetDefault(KeyGit, "git")
	viper.SetDefault(KeyDefaultSource, branding.DefaultSource())
	viper.SetDefault(KeyLogLevel, "warn")

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// GitBinary returns the git executable used for cloning.
func GitBinary() string { return Get(KeyGit) }

// DefaultSource returns the source directory offered on first run.
func DefaultSource() string { return Get(KeyDefaultSource) }

// LogLevel returns the diagnostic log level name.
func LogLevel() string { return Get(KeyLogLevel) }
