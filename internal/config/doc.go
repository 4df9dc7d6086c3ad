// Package config loads optional generator defaults from an
// expressgen.json file in the working directory.
//
// The file supplies default values for the --view, --css, and --git
// flags; anything passed explicitly on the command line wins. A missing
// file is fine. A file naming an unsupported engine is a fatal, coded
// error raised before any project files are written.
package config
