package loader

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
	"time"
)

// MemFS is an in-memory file system for testing.
type MemFS struct {
	files map[string][]byte
}

func NewMemFS() *MemFS {
	return &MemFS{files: make(map[string][]byte)}
}

func (m *MemFS) AddFile(path string, content string) {
	m.files[path] = []byte(content)
}

func (m *MemFS) ReadFile(path string) ([]byte, error) {
	data, ok := m.files[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return data, nil
}

func (m *MemFS) Stat(path string) (fs.FileInfo, error) {
	if _, ok := m.files[path]; ok {
		return &memFileInfo{name: path}, nil
	}
	return nil, fs.ErrNotExist
}

type memFileInfo struct {
	name string
}

func (f *memFileInfo) Name() string       { return f.name }
func (f *memFileInfo) Size() int64        { return 0 }
func (f *memFileInfo) Mode() fs.FileMode  { return 0644 }
func (f *memFileInfo) ModTime() time.Time { return time.Now() }
func (f *memFileInfo) IsDir() bool        { return false }
func (f *memFileInfo) Sys() any           { return nil }

const presetTOML = `
[logging]
level = "debug"

[fields.date]
kind = "mask"
mask = "##/##/####"
maxLength = 8

[fields.amount]
kind = "numeric"
decimalDigits = 2
showZeroValue = true
`

const presetYAML = `
logging:
  level: debug
fields:
  date:
    kind: mask
    mask: "##/##/####"
    maxLength: 8
  amount:
    kind: numeric
    decimalDigits: 2
    showZeroValue: true
`

func TestTOMLLoader_Load(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/fields.toml", presetTOML)

	config, err := NewTOMLLoaderWithFS(memfs, "/fields.toml").Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if val, ok := GetByPath(config, "fields.date.mask"); !ok || val != "##/##/####" {
		t.Errorf("fields.date.mask = %v", val)
	}
	if val, ok := GetByPath(config, "fields.date.maxLength"); !ok || val != int64(8) {
		t.Errorf("fields.date.maxLength = %v (%T), want 8", val, val)
	}
	if val, ok := GetByPath(config, "fields.amount.showZeroValue"); !ok || val != true {
		t.Errorf("fields.amount.showZeroValue = %v", val)
	}
}

func TestTOMLLoader_LoadNonExistent(t *testing.T) {
	config, err := NewTOMLLoaderWithFS(NewMemFS(), "/nonexistent.toml").Load()
	if err != nil {
		t.Fatalf("expected no error for non-existent file, got: %v", err)
	}
	if config != nil {
		t.Error("expected nil config for non-existent file")
	}
}

func TestTOMLLoader_LoadInvalid(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/invalid.toml", "[fields\nkind = 4\n")

	_, err := NewTOMLLoaderWithFS(memfs, "/invalid.toml").Load()
	if err == nil {
		t.Fatal("expected parse error")
	}

	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if parseErr.Path != "/invalid.toml" {
		t.Errorf("Path = %q, want '/invalid.toml'", parseErr.Path)
	}
	if parseErr.Line == 0 {
		t.Error("expected a line number from the TOML decoder")
	}
}

func TestTOMLLoader_LoadFromReader(t *testing.T) {
	loader := &TOMLLoader{}

	config, err := loader.LoadFromReader(strings.NewReader("kind = \"mask\"\nmaxLength = 12\n"))
	if err != nil {
		t.Fatalf("LoadFromReader failed: %v", err)
	}

	if config["kind"] != "mask" {
		t.Errorf("kind = %v, want 'mask'", config["kind"])
	}
	if config["maxLength"] != int64(12) {
		t.Errorf("maxLength = %v, want 12", config["maxLength"])
	}
}

func TestTOMLLoader_LoadWithIncludes(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/fields.toml", `
"@include" = ["base.toml"]

[fields.date]
mask = "####-##-##"
`)
	memfs.AddFile("/base.toml", `
[fields.date]
kind = "mask"
mask = "##/##/####"

[fields.pin]
kind = "mask"
mask = "####"
`)

	config, err := NewTOMLLoaderWithFS(memfs, "/fields.toml").LoadWithIncludes("/fields.toml", 5)
	if err != nil {
		t.Fatalf("LoadWithIncludes failed: %v", err)
	}

	if val, _ := GetByPath(config, "fields.date.mask"); val != "####-##-##" {
		t.Errorf("fields.date.mask = %v, want main file value", val)
	}
	if val, _ := GetByPath(config, "fields.date.kind"); val != "mask" {
		t.Errorf("fields.date.kind = %v, want included value", val)
	}
	if _, ok := GetByPath(config, "fields.pin.mask"); !ok {
		t.Error("fields.pin should come from the included file")
	}
	if _, ok := config[IncludeKey]; ok {
		t.Error("include directive should be removed")
	}
}

func TestTOMLLoader_LoadWithIncludes_Order(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/presets/main.toml", `"@include" = ["one.toml", "/shared/two.toml"]`)
	memfs.AddFile("/presets/one.toml", "[fields.date]\nlabel = \"One\"\nmask = \"##\"\n")
	memfs.AddFile("/shared/two.toml", "[fields.date]\nlabel = \"Two\"\n")

	config, err := NewTOMLLoaderWithFS(memfs, "").LoadWithIncludes("/presets/main.toml", 5)
	if err != nil {
		t.Fatalf("LoadWithIncludes failed: %v", err)
	}
	if val, _ := GetByPath(config, "fields.date.label"); val != "Two" {
		t.Errorf("fields.date.label = %v, want later include to win", val)
	}
	if val, _ := GetByPath(config, "fields.date.mask"); val != "##" {
		t.Errorf("fields.date.mask = %v, want value from first include", val)
	}
}

func TestTOMLLoader_LoadWithIncludes_BadDirective(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/a.toml", `"@include" = 3`)

	if _, err := NewTOMLLoaderWithFS(memfs, "").LoadWithIncludes("/a.toml", 5); err == nil {
		t.Error("expected error for non-string include")
	}
}

func TestTOMLLoader_LoadWithIncludes_DepthExceeded(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/a.toml", `"@include" = ["b.toml"]`)
	memfs.AddFile("/b.toml", `"@include" = ["c.toml"]`)
	memfs.AddFile("/c.toml", `"@include" = "d.toml"`)
	memfs.AddFile("/d.toml", `value = 1`)

	loader := NewTOMLLoaderWithFS(memfs, "/a.toml")

	_, err := loader.LoadWithIncludes("/a.toml", 2)
	if err == nil || !strings.Contains(err.Error(), "depth exceeded") {
		t.Fatalf("expected depth exceeded error, got: %v", err)
	}

	config, err := loader.LoadWithIncludes("/a.toml", 5)
	if err != nil {
		t.Fatalf("expected success with depth 5, got: %v", err)
	}
	if config["value"] != int64(1) {
		t.Errorf("value = %v, want 1", config["value"])
	}
}

func TestYAMLLoader_Load(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/fields.yaml", presetYAML)

	config, err := NewYAMLLoaderWithFS(memfs, "/fields.yaml").Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if val, ok := GetByPath(config, "fields.date.maxLength"); !ok || val != int64(8) {
		t.Errorf("fields.date.maxLength = %v (%T), want int64 8", val, val)
	}
	if val, ok := GetByPath(config, "logging.level"); !ok || val != "debug" {
		t.Errorf("logging.level = %v", val)
	}
}

func TestYAMLAndTOMLAgree(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/a.toml", presetTOML)
	memfs.AddFile("/a.yaml", presetYAML)

	fromTOML, err := NewTOMLLoaderWithFS(memfs, "/a.toml").Load()
	if err != nil {
		t.Fatal(err)
	}
	fromYAML, err := NewYAMLLoaderWithFS(memfs, "/a.yaml").Load()
	if err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{"fields.date.kind", "fields.date.mask", "fields.date.maxLength", "fields.amount.decimalDigits", "fields.amount.showZeroValue"} {
		a, _ := GetByPath(fromTOML, path)
		b, _ := GetByPath(fromYAML, path)
		if a != b {
			t.Errorf("%s: toml %v (%T) != yaml %v (%T)", path, a, a, b, b)
		}
	}
}

func TestYAMLLoader_LoadInvalid(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/bad.yaml", "fields:\n  date: [unclosed\n")

	_, err := NewYAMLLoaderWithFS(memfs, "/bad.yaml").Load()
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if parseErr.Path != "/bad.yaml" {
		t.Errorf("Path = %q", parseErr.Path)
	}
}

func TestYAMLLoader_Empty(t *testing.T) {
	memfs := NewMemFS()
	memfs.AddFile("/empty.yml", "")

	config, err := NewYAMLLoaderWithFS(memfs, "/empty.yml").Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if config == nil || len(config) != 0 {
		t.Errorf("expected empty map, got %v", config)
	}
}

func TestForPath(t *testing.T) {
	memfs := NewMemFS()

	tests := []struct {
		path string
		want string
	}{
		{"/a.toml", "*loader.TOMLLoader"},
		{"/a.yaml", "*loader.YAMLLoader"},
		{"/a.YML", "*loader.YAMLLoader"},
	}
	for _, tt := range tests {
		l, err := ForPath(memfs, tt.path)
		if err != nil {
			t.Fatalf("ForPath(%q): %v", tt.path, err)
		}
		switch l.(type) {
		case *TOMLLoader:
			if tt.want != "*loader.TOMLLoader" {
				t.Errorf("ForPath(%q) = TOML loader", tt.path)
			}
		case *YAMLLoader:
			if tt.want != "*loader.YAMLLoader" {
				t.Errorf("ForPath(%q) = YAML loader", tt.path)
			}
		}
	}

	if _, err := ForPath(memfs, "/a.json"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("ForPath(.json) error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestDeepMerge(t *testing.T) {
	dst := map[string]any{
		"fields": map[string]any{
			"date": map[string]any{"kind": "mask", "mask": "##/##/####"},
		},
		"logging": map[string]any{"level": "info"},
	}
	src := map[string]any{
		"fields": map[string]any{
			"date": map[string]any{"mask": "####-##-##"},
			"pin":  map[string]any{"kind": "mask"},
		},
		"logging": "off",
	}

	got := DeepMerge(dst, src)

	if v, _ := GetByPath(got, "fields.date.mask"); v != "####-##-##" {
		t.Errorf("fields.date.mask = %v", v)
	}
	if v, _ := GetByPath(got, "fields.date.kind"); v != "mask" {
		t.Errorf("fields.date.kind = %v", v)
	}
	if _, ok := GetByPath(got, "fields.pin.kind"); !ok {
		t.Error("fields.pin missing")
	}
	if got["logging"] != "off" {
		t.Errorf("non-map src should replace map dst, got %v", got["logging"])
	}
}

func TestClone(t *testing.T) {
	src := map[string]any{
		"fields": map[string]any{"date": map[string]any{"mask": "##"}},
		"list":   []any{map[string]any{"a": 1}},
	}

	dst := Clone(src)
	dst["fields"].(map[string]any)["date"].(map[string]any)["mask"] = "changed"
	dst["list"].([]any)[0].(map[string]any)["a"] = 2

	if v, _ := GetByPath(src, "fields.date.mask"); v != "##" {
		t.Errorf("Clone shares nested maps: %v", v)
	}
	if src["list"].([]any)[0].(map[string]any)["a"] != 1 {
		t.Error("Clone shares slices")
	}
	if Clone(nil) != nil {
		t.Error("Clone(nil) should be nil")
	}
}
