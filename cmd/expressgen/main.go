package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/expressgen-dev/expressgen/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┌─┐─┐ ┬┌─┐┬─┐┌─┐┌─┐┌─┐┌─┐┌─┐┌┐┌
  ├┤ ┌┴┬┘├─┘├┬┘├┤ └─┐└─┐│ ┬├┤ │││
  └─┘┴ └─┴  ┴└─└─┘└─┘└─┘└─┘└─┘┘└┘
`

// colorOutput controls ANSI colors for the progress helpers.
var colorOutput = term.IsTerminal(int(os.Stdout.Fd()))

func main() {
	rootCmd := newRootCmd()

	if err := rootCmd.Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

// printBanner prints the expressgen ASCII art banner.
func printBanner(out io.Writer) {
	fmt.Fprint(out, banner)
}

// success prints a success message.
func success(out io.Writer, format string, args ...any) {
	if colorOutput {
		fmt.Fprintf(out, "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
		return
	}
	fmt.Fprintf(out, "%s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(out io.Writer, format string, args ...any) {
	fmt.Fprintf(out, "  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(out io.Writer, format string, args ...any) {
	if colorOutput {
		fmt.Fprintf(out, "\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
		return
	}
	fmt.Fprintf(out, "warning: %s\n", fmt.Sprintf(format, args...))
}
