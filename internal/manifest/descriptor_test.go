package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeDescriptor(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "package.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadDescriptor(t *testing.T) {
	path := writeDescriptor(t, t.TempDir(), `{"name": "foo", "version": "1.2.0", "dependencies": {"x": "^1"}}`)

	d, err := ReadDescriptor(path)
	if err != nil {
		t.Fatalf("ReadDescriptor: %v", err)
	}
	if d.Name != "foo" || d.Version != "1.2.0" {
		t.Errorf("unexpected descriptor: %+v", d)
	}
	if err := d.RequireName(); err != nil {
		t.Errorf("RequireName: %v", err)
	}
}

func TestReadDescriptorErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"malformed", `{"name": `},
		{"name not a string", `{"name": 42}`},
		{"not an object", `"foo"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeDescriptor(t, t.TempDir(), tt.content)
			_, err := ReadDescriptor(path)
			if !errors.Is(err, ErrNoDescriptor) {
				t.Errorf("expected ErrNoDescriptor, got %v", err)
			}
		})
	}
}

func TestReadDescriptorMissing(t *testing.T) {
	_, err := ReadDescriptor(filepath.Join(t.TempDir(), "package.json"))
	if !errors.Is(err, ErrNoDescriptor) {
		t.Errorf("expected ErrNoDescriptor, got %v", err)
	}
}

func TestRequireNameMissing(t *testing.T) {
	path := writeDescriptor(t, t.TempDir(), `{"version": "1.0.0"}`)
	d, err := ReadDescriptor(path)
	if err != nil {
		t.Fatalf("ReadDescriptor: %v", err)
	}
	if err := d.RequireName(); !errors.Is(err, ErrNoName) {
		t.Errorf("expected ErrNoName, got %v", err)
	}
}

func TestSemVerRequiresVersion(t *testing.T) {
	d := &PackageDescriptor{Name: "foo"}
	if _, err := d.SemVer(); err == nil {
		t.Error("expected error for empty version")
	}
	d.Version = "v0.3.1"
	v, err := d.SemVer()
	if err != nil {
		t.Fatalf("SemVer: %v", err)
	}
	if v.String() != "0.3.1" {
		t.Errorf("SemVer() = %s, want 0.3.1", v)
	}
}
