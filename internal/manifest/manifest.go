// Package manifest builds the generated project's package.json.
package manifest

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/expressgen-dev/expressgen/internal/options"
)

// Base runtime dependencies present in every generated project.
var baseDependencies = map[string]string{
	"cookie-parser": "~1.4.4",
	"debug":         "~2.6.9",
	"express":       "~4.16.1",
	"http-errors":   "~1.6.3",
	"morgan":        "~1.9.1",
}

// viewDependencies maps each view engine to its runtime dependency.
var viewDependencies = map[options.ViewEngine]struct{ name, version string }{
	options.ViewEJS:      {"ejs", "~2.6.1"},
	options.ViewHbs:      {"hbs", "~4.0.4"},
	options.ViewHogan:    {"hjs", "~0.0.6"},
	options.ViewPug:      {"pug", "2.0.0-beta11"},
	options.ViewNunjucks: {"nunjucks", "~3.2.3"},
}

// cssDependencies maps each CSS engine to its middleware dependency.
// Plain CSS needs none.
var cssDependencies = map[options.CSSEngine]struct{ name, version string }{
	options.CSSLess:    {"less-middleware", "~2.2.1"},
	options.CSSStylus:  {"stylus", "0.54.5"},
	options.CSSCompass: {"node-compass", "0.2.3"},
	options.CSSSass:    {"node-sass-middleware", "0.11.0"},
}

// devDependencies are fixed and independent of engine choices.
var devDependencies = map[string]string{
	"eslint":  "^6.8.0",
	"nodemon": "^2.0.2",
}

// Manifest is the in-memory package.json before serialization.
type Manifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Private         bool              `json:"private"`
	Scripts         map[string]string `json:"scripts"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// Build assembles the manifest for a configuration: the base runtime set,
// one entry for the selected view engine, and one for the CSS engine when
// chosen.
func Build(cfg options.Config) *Manifest {
	deps := make(map[string]string, len(baseDependencies)+2)
	for name, version := range baseDependencies {
		deps[name] = version
	}

	view := viewDependencies[cfg.View]
	deps[view.name] = view.version

	if css, ok := cssDependencies[cfg.CSS]; ok {
		deps[css.name] = css.version
	}

	dev := make(map[string]string, len(devDependencies))
	for name, version := range devDependencies {
		dev[name] = version
	}

	return &Manifest{
		Name:    cfg.AppName,
		Version: "0.0.0",
		Private: true,
		Scripts: map[string]string{
			"start": "node app.js",
		},
		Dependencies:    deps,
		DevDependencies: dev,
	}
}

// SortedDependencies returns the runtime dependency names in key order.
func (m *Manifest) SortedDependencies() []string {
	names := make([]string, 0, len(m.Dependencies))
	for name := range m.Dependencies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// JSON serializes the manifest. Map keys are emitted sorted, so output is
// deterministic for identical configurations; generated manifests must be
// reproducible across runs.
func (m *Manifest) JSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
