package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/expressgen-dev/expressgen/internal/config"
	"github.com/expressgen-dev/expressgen/internal/errors"
	"github.com/expressgen-dev/expressgen/internal/options"
	"github.com/expressgen-dev/expressgen/internal/scaffold"
)

func newRootCmd() *cobra.Command {
	var (
		viewFlag string
		cssFlag  string
		git      bool
		force    bool
	)
	legacy := make(map[string]*bool)

	cmd := &cobra.Command{
		Use:   "expressgen [options] [dir]",
		Short: "Generate an Express application skeleton",
		Long: `Generate an Express application skeleton in the given directory.

View engines:
  ejs        Embedded JavaScript templates (default)
  hbs        Handlebars
  hogan      Hogan.js (single-file, no layout)
  pug        Pug
  nunjucks   Nunjucks

CSS engines:
  less, stylus, compass, sass (plain CSS when omitted)

Examples:
  expressgen my-app
  expressgen --view=pug --css=less my-app
  expressgen --git --force .`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			return runCreate(cmd, dir, viewFlag, cssFlag, git, force, legacy)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&viewFlag, "view", "", "View engine (ejs, hbs, hogan, pug, nunjucks)")
	flags.StringVar(&cssFlag, "css", "", "CSS engine (less, stylus, compass, sass)")
	flags.BoolVar(&git, "git", false, "Add a .gitignore")
	flags.BoolVarP(&force, "force", "f", false, "Scaffold into a non-empty directory without asking")

	// Legacy per-engine shortcuts kept for old scripts. pflag prints the
	// deprecation notice once per flag when one is actually used.
	for _, engine := range options.ViewEngines() {
		legacy[engine] = flags.Bool(engine, false, "Use "+engine+" as the view engine")
		_ = flags.MarkDeprecated(engine, "use --view="+engine+" instead")
	}

	cmd.AddCommand(versionCmd())

	return cmd
}

func runCreate(cmd *cobra.Command, dir, viewFlag, cssFlag string, git, force bool, legacy map[string]*bool) error {
	defaults, err := config.Load(".")
	if err != nil {
		return err
	}

	view, err := resolveView(cmd, viewFlag, legacy, defaults)
	if err != nil {
		return err
	}
	css, err := resolveCSS(cmd, cssFlag, defaults)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("git") {
		git = defaults.Git
	}

	cfg, err := options.Resolve(dir, view, css, git, force)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printBanner(out)
	info(out, "Creating a new Express application...")
	fmt.Fprintln(out)

	if !cfg.Force {
		empty, err := scaffold.EmptyDir(cfg.Dir)
		if err != nil {
			return err
		}
		if !empty {
			warn(out, "destination is not empty")
			ok, err := confirm(cmd.InOrStdin(), out, "continue? [y/N] ")
			if err != nil {
				return err
			}
			if !ok {
				return errors.New("E021").
					WithDetail("Destination '" + dir + "' is not empty and was left untouched.").
					WithSuggestion("Re-run with --force to scaffold anyway")
			}
		}
	}

	if err := scaffold.New(cfg, out).Run(); err != nil {
		return err
	}

	printNextSteps(out, dir, cfg.AppName)

	return nil
}

// resolveView applies the selection precedence: explicit --view, then a
// legacy shortcut flag, then the defaults file, then the fixed default.
func resolveView(cmd *cobra.Command, viewFlag string, legacy map[string]*bool, defaults config.Defaults) (options.ViewEngine, error) {
	if cmd.Flags().Changed("view") {
		return options.ParseView(viewFlag)
	}
	for _, engine := range options.ViewEngines() {
		if set, ok := legacy[engine]; ok && *set {
			return options.ViewEngine(engine), nil
		}
	}
	if defaults.View != "" {
		return options.ParseView(defaults.View)
	}
	return options.DefaultView, nil
}

func resolveCSS(cmd *cobra.Command, cssFlag string, defaults config.Defaults) (options.CSSEngine, error) {
	if cmd.Flags().Changed("css") {
		return options.ParseCSS(cssFlag)
	}
	if defaults.CSS != "" {
		return options.ParseCSS(defaults.CSS)
	}
	return options.CSSPlain, nil
}

// confirm asks a yes/no question and reads one line of input. Anything
// but y/yes declines.
func confirm(in io.Reader, out io.Writer, prompt string) (bool, error) {
	fmt.Fprint(out, prompt)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}

	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

// printNextSteps emits the post-scaffold summary. It runs exactly once,
// after every scaffolding branch has finished.
func printNextSteps(out io.Writer, dir, appName string) {
	fmt.Fprintln(out)
	success(out, "Created %s/", appName)
	fmt.Fprintln(out)
	info(out, "install dependencies:")
	info(out, "  $ cd %s && npm install", dir)
	fmt.Fprintln(out)
	info(out, "run the app:")
	info(out, "  $ DEBUG=%s:* npm start", appName)
	fmt.Fprintln(out)
}
