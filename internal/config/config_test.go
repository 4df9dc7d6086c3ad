package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/expressgen-dev/expressgen/internal/errors"
)

func writeDefaults(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoadMissingFile(t *testing.T) {
	d, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if d != (Defaults{}) {
		t.Errorf("missing file should yield zero defaults, got %+v", d)
	}
}

func TestLoad(t *testing.T) {
	dir := writeDefaults(t, `{"view": "pug", "css": "less", "git": true}`)

	d, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if d.View != "pug" || d.CSS != "less" || !d.Git {
		t.Errorf("Load = %+v", d)
	}
}

func TestLoadBadJSON(t *testing.T) {
	dir := writeDefaults(t, `{"view": `)

	_, err := Load(dir)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var ge *errors.GenError
	if !stderrors.As(err, &ge) || ge.Code != "E060" {
		t.Errorf("expected E060, got %v", err)
	}
}

func TestLoadUnknownEngine(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad view", `{"view": "mustache"}`},
		{"bad css", `{"css": "postcss"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeDefaults(t, tt.content)

			_, err := Load(dir)
			if err == nil {
				t.Fatal("expected error for unknown engine")
			}
			var ge *errors.GenError
			if !stderrors.As(err, &ge) || ge.Code != "E061" {
				t.Errorf("expected E061, got %v", err)
			}
		})
	}
}

func TestValidateEmpty(t *testing.T) {
	if err := (Defaults{}).Validate(); err != nil {
		t.Errorf("zero defaults should validate: %v", err)
	}
}
