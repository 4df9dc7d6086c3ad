// Package templates bundles the project template assets and the lookup
// tables that select them.
//
// Assets are embedded read-only; they belong to the installed generator,
// not to the user's project. Exactly one placeholder syntax is recognized,
// {identifier}, and only the entry-point template (js/app.js) is rendered
// through it. Unrecognized placeholders substitute to the empty string.
// Every other asset is copied byte-for-byte, so view templates may freely
// contain their own brace syntax ({{title}}, {% block %}, ...).
package templates
