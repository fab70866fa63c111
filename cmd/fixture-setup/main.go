package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/zoro11031/fixture-setup/internal/cli"
	"github.com/zoro11031/fixture-setup/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "fixture-setup",
	Short: "Seed a directory of sample fixture files",
	Long: `Create test_files/ in the current directory and fill it with a fixed set
of small sample files:

- notes.txt        plain text
- readme.md        markdown
- model.py         Python snippet
- config.json      JSON config
- data.csv         CSV table
- utils.ts         TypeScript snippet
- shell_script.sh  shell script

Existing files with the same names are overwritten; other files are left alone.
The directory listing is printed to stdout once all files are written.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true, // We handle errors manually, but silence usage on error
	SilenceErrors: true, // We format errors ourselves for consistent output
	RunE:          runGenerate,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), version.Info())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewSetupContext()
	if err != nil {
		return fmt.Errorf("failed to initialize setup context: %w", err)
	}

	return ctx.Fixtures.Run(ctx.DestDir(), cmd.OutOrStdout())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
