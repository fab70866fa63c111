package steps

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/zoro11031/fixture-setup/internal/config"
	"github.com/zoro11031/fixture-setup/internal/fixtures"
	"github.com/zoro11031/fixture-setup/internal/system"
	"github.com/zoro11031/fixture-setup/internal/ui"
)

// ReportHeader is the first line of every report
const ReportHeader = "Test files created:"

// FixtureSetup writes the fixture set into a directory and reports on it
type FixtureSetup struct {
	fs       system.FileSystemManager
	settings *config.Settings
	ui       *ui.UI
	fixtures []fixtures.Fixture
}

// NewFixtureSetup creates a new FixtureSetup instance
func NewFixtureSetup(fs system.FileSystemManager, settings *config.Settings, ui *ui.UI, set []fixtures.Fixture) *FixtureSetup {
	return &FixtureSetup{
		fs:       fs,
		settings: settings,
		ui:       ui,
		fixtures: set,
	}
}

// EnsureDirectory creates dir and its parents if they are missing
func (f *FixtureSetup) EnsureDirectory(dir string) error {
	if err := f.fs.EnsureDirectory(dir, f.settings.DirPerm); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}
	return nil
}

// WriteFixture creates or truncates dir/name and writes content to it
func (f *FixtureSetup) WriteFixture(dir, name string, content []byte) error {
	path := filepath.Join(dir, name)
	if err := f.fs.WriteFile(path, content, f.settings.FilePerm); err != nil {
		return fmt.Errorf("failed to write fixture %s: %w", name, err)
	}
	return nil
}

// GenerateAll ensures dir exists and writes every fixture in order.
// It stops at the first failure; fixtures already written stay on disk.
func (f *FixtureSetup) GenerateAll(dir string) error {
	if err := fixtures.Validate(f.fixtures); err != nil {
		return err
	}

	if err := f.EnsureDirectory(dir); err != nil {
		return err
	}

	for _, fx := range f.fixtures {
		if err := f.WriteFixture(dir, fx.Name, fx.Content); err != nil {
			return err
		}
	}

	f.ui.Successf("Wrote %d fixtures to %s", len(f.fixtures), dir)
	return nil
}

// Report lists dir sorted by name and writes one line per entry to w
func (f *FixtureSetup) Report(dir string, w io.Writer) error {
	entries, err := f.fs.ListDirectory(dir)
	if err != nil {
		return fmt.Errorf("failed to list %s: %w", dir, err)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })

	if _, err := fmt.Fprintln(w, ReportHeader); err != nil {
		return err
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "  %s (%d bytes)\n", e.Name, e.Size); err != nil {
			return err
		}
	}
	return nil
}

// Run generates the fixtures into dir and then reports on it
func (f *FixtureSetup) Run(dir string, w io.Writer) error {
	if err := f.GenerateAll(dir); err != nil {
		return err
	}
	return f.Report(dir, w)
}

// FixtureStatus describes one fixture as found on disk
type FixtureStatus struct {
	Name         string
	Present      bool
	ExpectedSize int64
	ActualSize   int64
}

// SizeMatches reports whether the file on disk has the fixture's size
func (s FixtureStatus) SizeMatches() bool {
	return s.Present && s.ActualSize == s.ExpectedSize
}

// Status reports each fixture in write order against what is in dir.
// A missing directory means every fixture is missing; it is not an error.
func (f *FixtureSetup) Status(dir string) ([]FixtureStatus, error) {
	onDisk := make(map[string]system.Entry)
	entries, err := f.fs.ListDirectory(dir)
	switch {
	case err == nil:
		for _, e := range entries {
			onDisk[e.Name] = e
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to list %s: %w", dir, err)
	}

	statuses := make([]FixtureStatus, 0, len(f.fixtures))
	for _, fx := range f.fixtures {
		s := FixtureStatus{Name: fx.Name, ExpectedSize: fx.Size()}
		if e, ok := onDisk[fx.Name]; ok && !e.IsDir {
			s.Present = true
			s.ActualSize = e.Size
		}
		statuses = append(statuses, s)
	}
	return statuses, nil
}
