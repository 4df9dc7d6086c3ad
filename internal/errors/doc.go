// Package errors provides structured, actionable error messages for the
// expressgen CLI.
//
// Each error carries a unique code (e.g., "E001") that maps to a short
// message, a detailed explanation, and a documentation URL. Errors can be
// enriched with hints before being printed:
//
//	err := errors.New("E001").
//	    WithDetail("got 'mustache'").
//	    WithSuggestion("Supported engines: ejs, hbs, hogan, pug, nunjucks")
//
//	fmt.Println(err.Format())
//	// Output:
//	// ERROR E001: Unknown view engine
//	//
//	//   got 'mustache'
//	//
//	//   Hint: Supported engines: ejs, hbs, hogan, pug, nunjucks
//	//
//	//   Learn more: https://expressgen.dev/docs/errors/E001
//
// # Error Categories
//
// Errors are organized into categories:
//   - validation: bad flag values or unusable destinations
//   - cli: interactive aborts and precondition failures
//   - template: missing or broken bundled template assets
//   - config: problems in the expressgen.json defaults file
//   - scaffold: filesystem failures while writing the project tree
package errors
