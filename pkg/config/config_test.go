package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alphapapa/graph.el/pkg/errors"
	"github.com/alphapapa/graph.el/pkg/layout"
)

func TestDecode(t *testing.T) {
	input := `
[layout]
wrap_threshold = 14
arrows = true

[cache]
disabled = true
`
	cfg, err := Decode(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	want := layout.DefaultOptions()
	want.WrapThreshold = 14
	want.Arrows = true
	if cfg.Layout != want {
		t.Errorf("Layout = %+v, want %+v", cfg.Layout, want)
	}
	if !cfg.Cache.Disabled {
		t.Error("Cache.Disabled = false, want true")
	}
}

func TestDecodeEmptyKeepsDefaults(t *testing.T) {
	cfg, err := Decode(strings.NewReader(""))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Decode(\"\") = %+v, want %+v", cfg, Default())
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"syntax", "[layout\n"},
		{"unknown key", "[layout]\nwrap = 3\n"},
		{"unknown table", "[colors]\nbox = 'red'\n"},
		{"wrong type", "[layout]\nwrap_threshold = 'ten'\n"},
		{"out of range", "[layout]\nline_width = 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("Decode() error = %v, want %s", err, errors.ErrCodeInvalidConfig)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[layout]\nnode_padding = 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Layout.NodePadding != 3 {
		t.Errorf("NodePadding = %d, want 3", cfg.Layout.NodePadding)
	}

	_, err = Load(filepath.Join(dir, "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) error = %v, want %s", err, errors.ErrCodeFileNotFound)
	}
}

func TestLoadDefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") without a file error = %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}

	path, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, AppName, "config.toml"); path != want {
		t.Errorf("DefaultPath() = %q, want %q", path, want)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("[layout]\nrow_padding = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}
	if cfg.Layout.RowPadding != 2 {
		t.Errorf("RowPadding = %d, want 2", cfg.Layout.RowPadding)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Layout.LinePadding = 2
	cfg.Cache.Dir = "/tmp/graphel"

	var buf bytes.Buffer
	if err := Write(cfg, &buf); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	got, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() error = %v\n%s", err, buf.String())
	}
	if got != cfg {
		t.Errorf("round trip = %+v, want %+v", got, cfg)
	}
}
