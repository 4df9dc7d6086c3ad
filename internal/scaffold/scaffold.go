package scaffold

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/expressgen-dev/expressgen/internal/errors"
	"github.com/expressgen-dev/expressgen/internal/manifest"
	"github.com/expressgen-dev/expressgen/internal/options"
	"github.com/expressgen-dev/expressgen/internal/templates"
)

// Scaffolder writes a project tree for a validated configuration.
// Directories are created if missing; files are overwritten
// unconditionally. The first failure aborts the run and leaves whatever
// was already written (no rollback).
type Scaffolder struct {
	cfg options.Config
	out io.Writer

	mu sync.Mutex // serializes progress output from concurrent branches
}

// New returns a Scaffolder writing progress lines to out.
func New(cfg options.Config, out io.Writer) *Scaffolder {
	return &Scaffolder{cfg: cfg, out: out}
}

// EmptyDir reports whether path is empty or does not exist yet.
func EmptyDir(path string) (bool, error) {
	entries, err := os.ReadDir(path)
	if os.IsNotExist(err) {
		return true, nil
	}
	if err != nil {
		return false, errors.FromError(err, "E003")
	}
	return len(entries) == 0, nil
}

// Run performs the scaffold: the unconditional directory set, then four
// independent branches (stylesheets, routes, views, config) joined by an
// explicit barrier, then the rendered entry point, the manifest, and the
// auxiliary files. Once started, a run cannot be cancelled; the first
// failure aborts it.
func (s *Scaffolder) Run() error {
	for _, dir := range []string{"", "public", "public/js", "public/images"} {
		if err := s.mkdir(dir); err != nil {
			return err
		}
	}

	var g errgroup.Group
	g.Go(s.stylesheetBranch)
	g.Go(s.routesBranch)
	g.Go(s.viewsBranch)
	g.Go(s.configBranch)
	if err := g.Wait(); err != nil {
		return err
	}

	if err := s.writeEntryPoint(); err != nil {
		return err
	}
	if err := s.writeManifest(); err != nil {
		return err
	}
	for _, f := range templates.AuxFiles() {
		if err := s.copyAsset(f); err != nil {
			return err
		}
	}
	if s.cfg.Gitignore {
		if err := s.copyAsset(templates.Gitignore); err != nil {
			return err
		}
	}

	return nil
}

func (s *Scaffolder) stylesheetBranch() error {
	if err := s.mkdir("public/css"); err != nil {
		return err
	}
	return s.copyAsset(templates.Stylesheet(s.cfg.CSS))
}

func (s *Scaffolder) routesBranch() error {
	if err := s.mkdir("routes"); err != nil {
		return err
	}
	for _, f := range templates.RouteFiles() {
		if err := s.copyAsset(f); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scaffolder) viewsBranch() error {
	if err := s.mkdir("views"); err != nil {
		return err
	}
	for _, f := range templates.ViewFiles(s.cfg.View) {
		if err := s.copyAsset(f); err != nil {
			return err
		}
	}
	return nil
}

func (s *Scaffolder) configBranch() error {
	if err := s.mkdir("config"); err != nil {
		return err
	}
	for _, f := range templates.ConfigFiles() {
		if err := s.copyAsset(f); err != nil {
			return err
		}
	}
	return nil
}

// writeEntryPoint renders app.js. This is the only placeholder-bearing
// asset; unrecognized placeholders render as empty strings.
func (s *Scaffolder) writeEntryPoint() error {
	src, err := templates.Asset(templates.EntryPoint)
	if err != nil {
		return err
	}

	rendered := templates.Render(src, map[string]string{
		"name": s.cfg.AppName,
		"view": templates.ViewExtension(s.cfg.View),
		"css":  templates.CSSSnippet(s.cfg.CSS),
	})

	return s.writeFile("app.js", rendered)
}

func (s *Scaffolder) writeManifest() error {
	data, err := manifest.Build(s.cfg).JSON()
	if err != nil {
		return errors.FromError(err, "E080")
	}
	return s.writeFile("package.json", data)
}

func (s *Scaffolder) copyAsset(f templates.File) error {
	data, err := templates.Asset(f.Asset)
	if err != nil {
		return err
	}
	return s.writeFile(f.Dest, data)
}

func (s *Scaffolder) mkdir(rel string) error {
	if err := os.MkdirAll(filepath.Join(s.cfg.Dir, rel), 0755); err != nil {
		return errors.FromError(err, "E080")
	}
	s.logf("create : %s/", s.display(rel))
	return nil
}

func (s *Scaffolder) writeFile(rel string, data []byte) error {
	if err := os.WriteFile(filepath.Join(s.cfg.Dir, rel), data, 0644); err != nil {
		return errors.FromError(err, "E080")
	}
	s.logf("create : %s", s.display(rel))
	return nil
}

func (s *Scaffolder) display(rel string) string {
	return filepath.Join(filepath.Base(s.cfg.Dir), rel)
}

func (s *Scaffolder) logf(format string, args ...any) {
	if s.out == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.out, "   %s\n", fmt.Sprintf(format, args...))
}
