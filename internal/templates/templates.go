package templates

import (
	"embed"
	"regexp"

	"github.com/expressgen-dev/expressgen/internal/errors"
	"github.com/expressgen-dev/expressgen/internal/options"
)

//go:embed assets
var assets embed.FS

// EntryPoint is the application entry-point template. It is the only asset
// rendered through Render; everything else is copied verbatim.
const EntryPoint = "js/app.js"

// File pairs a bundled asset with its destination inside the new project.
type File struct {
	// Asset is the path under assets/.
	Asset string

	// Dest is the path relative to the project root.
	Dest string
}

// Asset returns the contents of a bundled template asset.
func Asset(name string) ([]byte, error) {
	b, err := assets.ReadFile("assets/" + name)
	if err != nil {
		return nil, errors.New("E040").
			WithDetail("missing asset '" + name + "'").
			Wrap(err)
	}
	return b, nil
}

// placeholder is the one recognized template syntax.
var placeholder = regexp.MustCompile(`\{([A-Za-z0-9]+)\}`)

// Render substitutes {identifier} placeholders with values from vars.
// An identifier missing from vars becomes the empty string, never a
// literal pass-through. Substitution is a single pass; replacement text
// is not rescanned for placeholders.
func Render(content []byte, vars map[string]string) []byte {
	return placeholder.ReplaceAllFunc(content, func(m []byte) []byte {
		name := string(m[1 : len(m)-1])
		return []byte(vars[name])
	})
}

// viewExtensions maps a view engine to the file extension express is
// configured with (app.set('view engine', ...)).
var viewExtensions = map[options.ViewEngine]string{
	options.ViewEJS:      "ejs",
	options.ViewHbs:      "hbs",
	options.ViewHogan:    "hjs",
	options.ViewPug:      "pug",
	options.ViewNunjucks: "njk",
}

// ViewExtension returns the view-file extension for an engine.
func ViewExtension(v options.ViewEngine) string {
	return viewExtensions[v]
}

// viewFiles maps a view engine to its view templates. Hogan is a
// single-file engine and ships only an index view; EJS has no layout.
var viewFiles = map[options.ViewEngine][]File{
	options.ViewEJS: {
		{Asset: "views/ejs/index.ejs", Dest: "views/index.ejs"},
		{Asset: "views/ejs/error.ejs", Dest: "views/error.ejs"},
	},
	options.ViewHbs: {
		{Asset: "views/hbs/index.hbs", Dest: "views/index.hbs"},
		{Asset: "views/hbs/layout.hbs", Dest: "views/layout.hbs"},
		{Asset: "views/hbs/error.hbs", Dest: "views/error.hbs"},
	},
	options.ViewHogan: {
		{Asset: "views/hogan/index.hjs", Dest: "views/index.hjs"},
	},
	options.ViewPug: {
		{Asset: "views/pug/index.pug", Dest: "views/index.pug"},
		{Asset: "views/pug/layout.pug", Dest: "views/layout.pug"},
		{Asset: "views/pug/error.pug", Dest: "views/error.pug"},
	},
	options.ViewNunjucks: {
		{Asset: "views/nunjucks/index.njk", Dest: "views/index.njk"},
		{Asset: "views/nunjucks/layout.njk", Dest: "views/layout.njk"},
		{Asset: "views/nunjucks/error.njk", Dest: "views/error.njk"},
	},
}

// ViewFiles returns the view templates copied for an engine.
func ViewFiles(v options.ViewEngine) []File {
	return viewFiles[v]
}

// stylesheets maps a CSS engine to its stylesheet template.
var stylesheets = map[options.CSSEngine]File{
	options.CSSPlain:   {Asset: "css/style.css", Dest: "public/css/style.css"},
	options.CSSLess:    {Asset: "css/style.less", Dest: "public/css/style.less"},
	options.CSSStylus:  {Asset: "css/style.styl", Dest: "public/css/style.styl"},
	options.CSSCompass: {Asset: "css/style.scss", Dest: "public/css/style.scss"},
	options.CSSSass:    {Asset: "css/style.sass", Dest: "public/css/style.sass"},
}

// Stylesheet returns the stylesheet template for a CSS engine.
func Stylesheet(c options.CSSEngine) File {
	return stylesheets[c]
}

// cssSnippets maps a CSS engine to the middleware-registration code
// substituted for the entry point's {css} placeholder.
var cssSnippets = map[options.CSSEngine]string{
	options.CSSLess:    "app.use(require('less-middleware')(path.join(__dirname, 'public')));\n",
	options.CSSStylus:  "app.use(require('stylus').middleware(path.join(__dirname, 'public')));\n",
	options.CSSCompass: "app.use(require('node-compass')({ mode: 'expanded' }));\n",
	options.CSSSass: "app.use(require('node-sass-middleware')({\n" +
		"  src: path.join(__dirname, 'public'),\n" +
		"  dest: path.join(__dirname, 'public'),\n" +
		"  indentedSyntax: true, // true = .sass and false = .scss\n" +
		"  sourceMap: true\n" +
		"}));\n",
}

// CSSSnippet returns the middleware snippet for a CSS engine. Plain CSS
// needs no middleware and yields the empty string.
func CSSSnippet(c options.CSSEngine) string {
	return cssSnippets[c]
}

// RouteFiles returns the route modules copied into every project.
func RouteFiles() []File {
	return []File{
		{Asset: "js/routes/index.js", Dest: "routes/index.js"},
		{Asset: "js/routes/users.js", Dest: "routes/users.js"},
	}
}

// ConfigFiles returns the config modules copied into every project.
func ConfigFiles() []File {
	return []File{
		{Asset: "js/config/index.js", Dest: "config/index.js"},
	}
}

// AuxFiles returns the support files copied into every project. Dotfiles
// are stored undotted so the embed directive picks them up.
func AuxFiles() []File {
	return []File{
		{Asset: "misc/editorconfig", Dest: ".editorconfig"},
		{Asset: "misc/eslintrc.json", Dest: ".eslintrc.json"},
		{Asset: "misc/LICENSE", Dest: "LICENSE"},
		{Asset: "misc/README.md", Dest: "README.md"},
	}
}

// Gitignore is copied only when the git flag is set.
var Gitignore = File{Asset: "misc/gitignore", Dest: ".gitignore"}
