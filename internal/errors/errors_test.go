package errors

import (
	stderrors "errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantMsg string
		wantCat Category
	}{
		{
			name:    "validation error",
			code:    "E001",
			wantMsg: "Unknown view engine",
			wantCat: CategoryValidation,
		},
		{
			name:    "cli error",
			code:    "E020",
			wantMsg: "Destination directory is not empty",
			wantCat: CategoryCLI,
		},
		{
			name:    "scaffold error",
			code:    "E080",
			wantMsg: "Failed to write project file",
			wantCat: CategoryScaffold,
		},
		{
			name:    "unknown error code",
			code:    "E999",
			wantMsg: "Unknown error",
			wantCat: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := New(tt.code)
			if err.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", err.Message, tt.wantMsg)
			}
			if err.Category != tt.wantCat {
				t.Errorf("Category = %q, want %q", err.Category, tt.wantCat)
			}
			if err.Code != tt.code {
				t.Errorf("Code = %q, want %q", err.Code, tt.code)
			}
		})
	}
}

func TestNewf(t *testing.T) {
	err := Newf(CategoryTemplate, "asset %q not found", "views/index.pug")
	if err.Message != `asset "views/index.pug" not found` {
		t.Errorf("Message = %q, want %q", err.Message, `asset "views/index.pug" not found`)
	}
	if err.Category != CategoryTemplate {
		t.Errorf("Category = %q, want %q", err.Category, CategoryTemplate)
	}
}

func TestGenError_Error(t *testing.T) {
	err := New("E001")
	got := err.Error()
	want := "E001: Unknown view engine"
	if got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	// Without code
	err2 := &GenError{Message: "test error"}
	if err2.Error() != "test error" {
		t.Errorf("Error() = %q, want %q", err2.Error(), "test error")
	}
}

func TestGenError_Unwrap(t *testing.T) {
	cause := stderrors.New("permission denied")
	err := New("E080").Wrap(cause)

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestFromError(t *testing.T) {
	if FromError(nil, "E080") != nil {
		t.Error("FromError(nil) should be nil")
	}

	ge := New("E001")
	if got := FromError(ge, "E080"); got != ge {
		t.Error("FromError should pass GenErrors through unchanged")
	}

	cause := stderrors.New("disk full")
	wrapped := FromError(cause, "E080")
	if wrapped.Code != "E080" {
		t.Errorf("Code = %q, want E080", wrapped.Code)
	}
	if !stderrors.Is(wrapped, cause) {
		t.Error("wrapped error should retain its cause")
	}
}

func TestFormat(t *testing.T) {
	DisableColors()
	defer EnableColors()

	err := New("E001").
		WithDetail("got 'mustache'").
		WithSuggestion("Supported engines: ejs, hbs, hogan, pug, nunjucks")

	out := err.Format()

	for _, want := range []string{
		"ERROR E001: Unknown view engine",
		"got 'mustache'",
		"Hint: Supported engines",
		"Learn more: https://expressgen.dev/docs/errors/E001",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Format() missing %q in:\n%s", want, out)
		}
	}
}

func TestFormatCompact(t *testing.T) {
	err := New("E020")
	got := err.FormatCompact()
	want := "E020: Destination directory is not empty"
	if got != want {
		t.Errorf("FormatCompact() = %q, want %q", got, want)
	}
}

func TestRegistryConsistency(t *testing.T) {
	for _, code := range GetAllCodes() {
		tmpl, ok := GetTemplate(code)
		if !ok {
			t.Fatalf("GetTemplate(%q) not found", code)
		}
		if tmpl.Message == "" {
			t.Errorf("%s: empty message", code)
		}
		if tmpl.Category == "" {
			t.Errorf("%s: empty category", code)
		}
		if !strings.HasSuffix(tmpl.DocURL, code) {
			t.Errorf("%s: DocURL %q does not end with code", code, tmpl.DocURL)
		}
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("a short line", 70)
	if len(lines) != 1 || lines[0] != "a short line" {
		t.Errorf("wrapText short = %v", lines)
	}

	long := strings.Repeat("word ", 40)
	for _, line := range wrapText(long, 20) {
		if len(line) > 20 {
			t.Errorf("line %q exceeds width", line)
		}
	}
}
