package manifest

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type fakePrompter struct {
	answer   string
	asked    int
	question string
}

func (f *fakePrompter) Ask(question, def string) (string, error) {
	f.asked++
	f.question = question
	if f.answer == "" {
		return def, nil
	}
	return f.answer, nil
}

func TestLoadCreatesManifestOnFirstRun(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "tsmm.json")
	p := &fakePrompter{answer: "lib"}

	m, err := Load(path, p, "src")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.asked != 1 {
		t.Errorf("prompted %d times, want 1", p.asked)
	}
	if m.Source != "lib" {
		t.Errorf("Source = %q, want %q", m.Source, "lib")
	}
	if len(m.Modules) != 0 {
		t.Errorf("Modules = %v, want empty", m.Modules)
	}

	info, err := os.Stat(filepath.Join(tmp, "lib"))
	if err != nil || !info.IsDir() {
		t.Errorf("source directory not created: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("manifest not written: %v", err)
	}
	want := "{\n  \"source\": \"lib\",\n  \"modules\": []\n}\n"
	if string(data) != want {
		t.Errorf("manifest = %q, want %q", data, want)
	}
}

func TestLoadUsesDefaultSource(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "tsmm.json")

	m, err := Load(path, &fakePrompter{}, "src")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Source != "src" {
		t.Errorf("Source = %q, want %q", m.Source, "src")
	}
}

func TestLoadDoesNotPromptWhenPresent(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "tsmm.json")
	content := `{"source": "app", "modules": [{"name": "foo", "repository": "git@example.com:foo.git"}]}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	p := &fakePrompter{}
	m, err := Load(path, p, "src")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p.asked != 0 {
		t.Error("should not prompt when manifest exists")
	}
	if m.Source != "app" || len(m.Modules) != 1 || m.Modules[0].Name != "foo" {
		t.Errorf("unexpected manifest: %+v", m)
	}
}

func TestSaveLoadRoundTripIsByteIdentical(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "tsmm.json")
	m := &Manifest{
		Source: "src",
		Modules: []ModuleEntry{
			{Name: "b", Repository: "https://example.com/b.git?a=1&b=2"},
			{Name: "a", Repository: "git@example.com:a.git"},
		},
	}
	if err := Save(path, m); err != nil {
		t.Fatalf("Save: %v", err)
	}
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path, &fakePrompter{}, "src")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := Save(path, loaded); err != nil {
		t.Fatalf("Save: %v", err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if !bytes.Equal(first, second) {
		t.Errorf("round trip changed bytes:\n%s\n---\n%s", first, second)
	}
	if !bytes.Contains(first, []byte("a=1&b=2")) {
		t.Error("repository URL should not be HTML-escaped")
	}
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "tsmm.json")
	if err := Save(path, &Manifest{Source: "src"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	entries, err := os.ReadDir(tmp)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "tsmm.json" {
		var names []string
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("directory contents = %v, want [tsmm.json]", names)
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed JSON", `{"source": `},
		{"missing source", `{"modules": []}`},
		{"empty source", `{"source": "", "modules": []}`},
		{"modules not an array", `{"source": "src", "modules": {}}`},
		{"entry without repository", `{"source": "src", "modules": [{"name": "foo"}]}`},
		{"not an object", `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), "tsmm.json")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("error %v should wrap ErrInvalid", err)
			}
		})
	}
}

func TestParseNullModules(t *testing.T) {
	m, err := Parse([]byte(`{"source": "src", "modules": null}`), "tsmm.json")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if m.Modules == nil || len(m.Modules) != 0 {
		t.Errorf("Modules = %#v, want empty slice", m.Modules)
	}
}

func TestAddModule(t *testing.T) {
	m := &Manifest{Source: "src"}
	if err := m.AddModule(ModuleEntry{Name: "foo", Repository: "r1"}); err != nil {
		t.Fatalf("AddModule: %v", err)
	}

	err := m.AddModule(ModuleEntry{Name: "foo", Repository: "r2"})
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
	if len(m.Modules) != 1 || m.Modules[0].Repository != "r1" {
		t.Errorf("duplicate add mutated manifest: %+v", m.Modules)
	}
}

func TestRemoveModule(t *testing.T) {
	m := &Manifest{Source: "src", Modules: []ModuleEntry{
		{Name: "a", Repository: "ra"},
		{Name: "b", Repository: "rb"},
		{Name: "c", Repository: "rc"},
	}}

	if err := m.RemoveModule("b"); err != nil {
		t.Fatalf("RemoveModule: %v", err)
	}
	if len(m.Modules) != 2 || m.Modules[0].Name != "a" || m.Modules[1].Name != "c" {
		t.Errorf("Modules = %+v, want [a c]", m.Modules)
	}

	if err := m.RemoveModule("b"); !errors.Is(err, ErrNotInstalled) {
		t.Errorf("expected ErrNotInstalled, got %v", err)
	}
}

func TestLookups(t *testing.T) {
	m := &Manifest{Source: "src", Modules: []ModuleEntry{
		{Name: "a", Repository: "ra"},
		{Name: "b", Repository: "rb"},
	}}

	if got := m.IndexOf("b"); got != 1 {
		t.Errorf("IndexOf(b) = %d, want 1", got)
	}
	if got := m.IndexOf("z"); got != -1 {
		t.Errorf("IndexOf(z) = %d, want -1", got)
	}
	if !m.HasModule("a") || m.HasModule("z") {
		t.Error("HasModule returned wrong result")
	}
	if e := m.FindModule("b"); e == nil || e.Repository != "rb" {
		t.Errorf("FindModule(b) = %+v", e)
	}
	if e := m.FindModule("z"); e != nil {
		t.Errorf("FindModule(z) = %+v, want nil", e)
	}
}

func TestResolveSource(t *testing.T) {
	tests := []struct {
		manifest string
		source   string
		want     string
	}{
		{"tsmm.json", "src", "src"},
		{filepath.Join("proj", "tsmm.json"), "src", filepath.Join("proj", "src")},
		{filepath.Join("proj", "tsmm.json"), filepath.Join(string(filepath.Separator), "abs"), filepath.Join(string(filepath.Separator), "abs")},
	}
	for _, tt := range tests {
		if got := ResolveSource(tt.manifest, tt.source); got != tt.want {
			t.Errorf("ResolveSource(%q, %q) = %q, want %q", tt.manifest, tt.source, got, tt.want)
		}
	}
}
