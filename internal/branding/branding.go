// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed. Hard defaults apply when a key is missing.
package branding

import (
	_ "embed"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName        string `yaml:"cli_name"`
	DisplayName    string `yaml:"display_name"`
	Description    string `yaml:"description"`
	HomeDir        string `yaml:"home_dir"`
	ManifestFile   string `yaml:"manifest_file"`
	DescriptorFile string `yaml:"descriptor_file"`
	DefaultSource  string `yaml:"default_source"`
}

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:        "tsmm",
			DisplayName:    "tsmm",
			Description:    "Manage source modules cloned from git repositories",
			HomeDir:        ".tsmm",
			ManifestFile:   "tsmm.json",
			DescriptorFile: "package.json",
			DefaultSource:  "src",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "tsmm").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".tsmm").
func HomeDir() string { load(); return defaults.HomeDir }

// ManifestFile returns the manifest file name kept in the project root.
func ManifestFile() string { load(); return defaults.ManifestFile }

// DescriptorFile returns the package descriptor file name read from clones
// and from the host project.
func DescriptorFile() string { load(); return defaults.DescriptorFile }

// DefaultSource returns the source directory offered on first run.
func DefaultSource() string { load(); return defaults.DefaultSource }
