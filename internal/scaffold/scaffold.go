// Package scaffold creates the files for a new puzzle day: the solution
// package with a sample test, the standalone binary, and the blank import
// that registers the day with the xmas CLI.
package scaffold

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"text/template"

	"go.uber.org/zap"

	"aoc2025/internal/logging"
	"aoc2025/internal/puzzle"
)

// ErrDayExists is returned when any of the day's directories already exist.
var ErrDayExists = errors.New("day already exists")

//go:embed templates/*.tmpl
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

var dayDirPattern = regexp.MustCompile(`^day(\d{2})$`)

// Options tune the generated files.
type Options struct {
	Title  string // puzzle title, if known
	Sample string // contents of testdata/test.txt
}

// Result lists what Create wrote.
type Result struct {
	Day          int
	SolutionDir  string
	CommandDir   string
	FilesCreated []string
}

// Scaffolder writes new days into a workspace.
type Scaffolder struct {
	Root   string // workspace root holding go.mod
	Module string // module path used in imports
	Logger *zap.Logger
}

// New returns a scaffolder for the workspace at root.
func New(root, module string, logger *zap.Logger) *Scaffolder {
	return &Scaffolder{
		Root:   root,
		Module: module,
		Logger: logging.For(logger, logging.CategoryScaffold),
	}
}

// Pad formats a day number the way directories are named.
func Pad(day int) string {
	return fmt.Sprintf("%02d", day)
}

// SolutionDir returns internal/solutions/dayNN under root.
func SolutionDir(root string, day int) string {
	return filepath.Join(root, "internal", "solutions", "day"+Pad(day))
}

// CommandDir returns cmd/dayNN under root.
func CommandDir(root string, day int) string {
	return filepath.Join(root, "cmd", "day"+Pad(day))
}

// InputPath is where a day's personal input is stored.
func InputPath(root string, day int) string {
	return filepath.Join(CommandDir(root, day), puzzle.DefaultInput)
}

type dayData struct {
	Day    int
	Pad    string
	Title  string
	Module string
}

// Create generates every file for day. Nothing is left behind on failure.
func (s *Scaffolder) Create(day int, opts Options) (res *Result, err error) {
	if day < puzzle.FirstDay || day > puzzle.LastDay {
		return nil, fmt.Errorf("%w: %d", puzzle.ErrInvalidDay, day)
	}

	res = &Result{
		Day:         day,
		SolutionDir: SolutionDir(s.Root, day),
		CommandDir:  CommandDir(s.Root, day),
	}
	for _, dir := range []string{res.SolutionDir, res.CommandDir} {
		if _, statErr := os.Stat(dir); statErr == nil {
			return nil, fmt.Errorf("%w: %s", ErrDayExists, dir)
		}
	}

	var created []string
	defer func() {
		if err == nil {
			return
		}
		for _, dir := range created {
			if rmErr := os.RemoveAll(dir); rmErr != nil {
				s.logger().Warn("Cleanup failed", zap.String("dir", dir), zap.Error(rmErr))
			}
		}
		s.logger().Warn("Removed incomplete day", zap.Int("day", day), zap.Error(err))
	}()

	for _, d := range []struct{ top, leaf string }{
		{res.SolutionDir, filepath.Join(res.SolutionDir, "testdata")},
		{res.CommandDir, res.CommandDir},
	} {
		if err := os.MkdirAll(d.leaf, 0755); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", d.leaf, err)
		}
		created = append(created, d.top)
	}

	data := dayData{Day: day, Pad: Pad(day), Title: opts.Title, Module: s.Module}
	files := []struct {
		tmpl string
		path string
	}{
		{"day.go.tmpl", filepath.Join(res.SolutionDir, "day"+data.Pad+".go")},
		{"day_test.go.tmpl", filepath.Join(res.SolutionDir, "day"+data.Pad+"_test.go")},
		{"main.go.tmpl", filepath.Join(res.CommandDir, "main.go")},
	}
	for _, f := range files {
		if err := renderGo(f.tmpl, f.path, data); err != nil {
			return nil, err
		}
		res.FilesCreated = append(res.FilesCreated, f.path)
	}

	samplePath := filepath.Join(res.SolutionDir, "testdata", "test.txt")
	if err := os.WriteFile(samplePath, []byte(opts.Sample), 0644); err != nil {
		return nil, fmt.Errorf("failed to write sample: %w", err)
	}
	res.FilesCreated = append(res.FilesCreated, samplePath)

	index, err := s.RegenerateIndex()
	if err != nil {
		return nil, err
	}
	res.FilesCreated = append(res.FilesCreated, index)

	s.logger().Info("Created day",
		zap.Int("day", day),
		zap.String("title", opts.Title),
		zap.Int("files", len(res.FilesCreated)))
	return res, nil
}

// Days lists the day packages present under internal/solutions.
func (s *Scaffolder) Days() ([]int, error) {
	entries, err := os.ReadDir(filepath.Join(s.Root, "internal", "solutions"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list solutions: %w", err)
	}

	var days []int
	for _, e := range entries {
		m := dayDirPattern.FindStringSubmatch(e.Name())
		if !e.IsDir() || m == nil {
			continue
		}
		n, _ := strconv.Atoi(m[1])
		days = append(days, n)
	}
	slices.Sort(days)
	return days, nil
}

// RegenerateIndex rewrites internal/solutions/all.go so it imports every
// day package, and returns its path.
func (s *Scaffolder) RegenerateIndex() (string, error) {
	days, err := s.Days()
	if err != nil {
		return "", err
	}
	pads := make([]string, len(days))
	for i, d := range days {
		pads[i] = Pad(d)
	}

	path := filepath.Join(s.Root, "internal", "solutions", "all.go")
	data := struct {
		Module string
		Days   []string
	}{s.Module, pads}
	if err := renderGo("all.go.tmpl", path, data); err != nil {
		return "", err
	}
	return path, nil
}

// renderGo executes a template, gofmts the output and writes it.
func renderGo(name, path string, data any) error {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("generated %s is not valid Go: %w", strings.TrimSuffix(name, ".tmpl"), err)
	}
	if err := os.WriteFile(path, src, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func (s *Scaffolder) logger() *zap.Logger {
	if s.Logger == nil {
		return zap.NewNop()
	}
	return s.Logger
}
