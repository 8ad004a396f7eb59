package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestLoadFromMissingFileUsesDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	LoadFrom(filepath.Join(t.TempDir(), "config.yaml"))

	if got := GitBinary(); got != "git" {
		t.Errorf("GitBinary() = %q, want %q", got, "git")
	}
	if got := DefaultSource(); got != "src" {
		t.Errorf("DefaultSource() = %q, want %q", got, "src")
	}
	if got := LogLevel(); got != "warn" {
		t.Errorf("LogLevel() = %q, want %q", got, "warn")
	}
}

func TestLoadFromFileOverridesDefaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "git: /usr/local/bin/git\ndefault_source: lib\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	LoadFrom(path)

	if got := GitBinary(); got != "/usr/local/bin/git" {
		t.Errorf("GitBinary() = %q", got)
	}
	if got := DefaultSource(); got != "lib" {
		t.Errorf("DefaultSource() = %q", got)
	}
	if got := LogLevel(); got != "debug" {
		t.Errorf("LogLevel() = %q", got)
	}
}

func TestFilePathUnderHomeDir(t *testing.T) {
	t.Setenv("HOME", "/tmp/fake-home")
	want := filepath.Join("/tmp/fake-home", ".tsmm", "config.yaml")
	if got := FilePath(); got != want {
		t.Errorf("FilePath() = %q, want %q", got, want)
	}
}
