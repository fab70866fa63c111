// Package cli wires the fixture tool's dependencies together and bridges cobra
// commands to the fixture generator.
package cli

import (
	"fmt"

	"github.com/zoro11031/fixture-setup/internal/config"
	"github.com/zoro11031/fixture-setup/internal/fixtures"
	"github.com/zoro11031/fixture-setup/internal/steps"
	"github.com/zoro11031/fixture-setup/internal/system"
	"github.com/zoro11031/fixture-setup/internal/ui"
)

// SetupContext holds all dependencies needed for fixture operations
type SetupContext struct {
	Settings *config.Settings
	UI       *ui.UI
	FS       system.FileSystemManager
	Fixtures *steps.FixtureSetup
}

// NewSetupContext creates a new SetupContext backed by the real file system
func NewSetupContext() (*SetupContext, error) {
	return NewSetupContextWith(system.NewFileSystem(), ui.New())
}

// NewSetupContextWith creates a SetupContext with the given file system and UI
func NewSetupContextWith(fs system.FileSystemManager, uiInstance *ui.UI) (*SetupContext, error) {
	settings, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	return &SetupContext{
		Settings: settings,
		UI:       uiInstance,
		FS:       fs,
		Fixtures: steps.NewFixtureSetup(fs, settings, uiInstance, fixtures.All()),
	}, nil
}

// DestDir returns the destination directory for this run
func (c *SetupContext) DestDir() string {
	return c.Settings.DestDir
}
