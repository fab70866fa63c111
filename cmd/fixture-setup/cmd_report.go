package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zoro11031/fixture-setup/internal/cli"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "List the fixture directory without writing anything",
	Long: `Print the sorted listing of test_files/ in the same format the default
command uses, without creating or overwriting any file.`,
	Args: cobra.NoArgs,
	RunE: showReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func showReport(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewSetupContext()
	if err != nil {
		return fmt.Errorf("failed to initialize setup context: %w", err)
	}

	return ctx.Fixtures.Report(ctx.DestDir(), cmd.OutOrStdout())
}
