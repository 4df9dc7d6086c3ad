// Package options resolves raw command-line input into the immutable
// configuration the scaffolder consumes.
package options

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/expressgen-dev/expressgen/internal/errors"
)

// ViewEngine identifies a view-template engine.
type ViewEngine string

const (
	ViewEJS      ViewEngine = "ejs"
	ViewHbs      ViewEngine = "hbs"
	ViewHogan    ViewEngine = "hogan"
	ViewPug      ViewEngine = "pug"
	ViewNunjucks ViewEngine = "nunjucks"
)

// DefaultView is the engine chosen when no view flag is given.
const DefaultView = ViewEJS

// CSSEngine identifies a CSS preprocessor. The zero value means plain CSS
// with no preprocessor middleware.
type CSSEngine string

const (
	CSSPlain   CSSEngine = ""
	CSSLess    CSSEngine = "less"
	CSSStylus  CSSEngine = "stylus"
	CSSCompass CSSEngine = "compass"
	CSSSass    CSSEngine = "sass"
)

// FallbackAppName is used when the destination yields no usable name.
const FallbackAppName = "hello-world"

// Config is the canonical generator configuration. It is assembled once
// from parsed flags and never mutated after scaffolding begins.
type Config struct {
	// Dir is the absolute destination directory.
	Dir string

	// AppName is the derived application name, used in the manifest and
	// the rendered entry point.
	AppName string

	// View is the selected view engine.
	View ViewEngine

	// CSS is the selected CSS engine; CSSPlain means none.
	CSS CSSEngine

	// Gitignore copies a .gitignore into the project when set.
	Gitignore bool

	// Force skips the non-empty-destination confirmation.
	Force bool
}

// ViewEngines returns the supported view engine names.
func ViewEngines() []string {
	return []string{"ejs", "hbs", "hogan", "pug", "nunjucks"}
}

// CSSEngines returns the supported CSS engine names.
func CSSEngines() []string {
	return []string{"less", "stylus", "compass", "sass"}
}

// ParseView validates a --view value.
func ParseView(s string) (ViewEngine, error) {
	switch ViewEngine(s) {
	case ViewEJS, ViewHbs, ViewHogan, ViewPug, ViewNunjucks:
		return ViewEngine(s), nil
	}
	return "", errors.New("E001").
		WithDetail("got '" + s + "'").
		WithSuggestion("Supported engines: " + strings.Join(ViewEngines(), ", "))
}

// ParseCSS validates a --css value. An empty string selects plain CSS.
func ParseCSS(s string) (CSSEngine, error) {
	switch CSSEngine(s) {
	case CSSPlain, CSSLess, CSSStylus, CSSCompass, CSSSass:
		return CSSEngine(s), nil
	}
	return "", errors.New("E002").
		WithDetail("got '" + s + "'").
		WithSuggestion("Supported engines: " + strings.Join(CSSEngines(), ", "))
}

// disallowed matches every run of characters outside the set npm accepts
// in package names.
var disallowed = regexp.MustCompile(`[^A-Za-z0-9.()!~*'-]+`)

var (
	leadingTrim  = regexp.MustCompile(`^[-_.]+`)
	trailingTrim = regexp.MustCompile(`-+$`)
)

// AppNameFrom derives an application name from a destination path: the
// final path segment with disallowed character runs collapsed to single
// hyphens, leading '-', '_', '.' and trailing '-' trimmed, lowercased.
// An empty result falls back to FallbackAppName.
func AppNameFrom(dir string) string {
	name := filepath.Base(dir)
	name = disallowed.ReplaceAllString(name, "-")
	name = leadingTrim.ReplaceAllString(name, "")
	name = trailingTrim.ReplaceAllString(name, "")
	name = strings.ToLower(name)
	if name == "" {
		return FallbackAppName
	}
	return name
}

// Resolve builds a Config from validated flag values and a destination
// path. The destination is made absolute here so AppName derivation sees
// the real final path segment (for example when dir is ".").
func Resolve(dir string, view ViewEngine, css CSSEngine, git, force bool) (Config, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return Config{}, errors.FromError(err, "E003")
	}
	return Config{
		Dir:       abs,
		AppName:   AppNameFrom(abs),
		View:      view,
		CSS:       css,
		Gitignore: git,
		Force:     force,
	}, nil
}
