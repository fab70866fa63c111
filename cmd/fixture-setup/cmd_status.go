package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zoro11031/fixture-setup/internal/cli"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which fixtures are present",
	Long:  `Compare the fixture set against test_files/ and show what is present, missing or resized.`,
	Args:  cobra.NoArgs,
	RunE:  showStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func showStatus(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewSetupContext()
	if err != nil {
		return fmt.Errorf("failed to initialize setup context: %w", err)
	}

	statuses, err := ctx.Fixtures.Status(ctx.DestDir())
	if err != nil {
		return err
	}

	ctx.UI.Header("Fixture Status")
	ctx.UI.Infof("Directory: %s", ctx.DestDir())
	ctx.UI.Print("")

	present := 0
	for i, s := range statuses {
		switch {
		case !s.Present:
			ctx.UI.Warningf("[%d] - %s (missing)", i, s.Name)
		case !s.SizeMatches():
			present++
			ctx.UI.Warningf("[%d] ~ %s (%d bytes, expected %d)", i, s.Name, s.ActualSize, s.ExpectedSize)
		default:
			present++
			ctx.UI.Successf("[%d] ✓ %s (%d bytes)", i, s.Name, s.ActualSize)
		}
	}

	ctx.UI.Print("")
	ctx.UI.Separator()
	ctx.UI.Infof("Present: %d/%d fixtures", present, len(statuses))
	ctx.UI.Separator()

	return nil
}
