package cmd

import (
	"github.com/mj1618/groupie/internal/output"
	"github.com/mj1618/groupie/internal/snapshot"
	"github.com/spf13/cobra"
)

var windowsCmd = &cobra.Command{
	Use:   "windows",
	Short: "List the active workspace's windows in group order",
	Long:  "Show the windows of the active workspace as the status line sees them: group order, rank, and focus.",
	Args:  cobra.NoArgs,
	RunE:  runWindows,
}

func init() {
	rootCmd.AddCommand(windowsCmd)
}

func runWindows(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	provider, err := newProvider(cfg)
	if err != nil {
		return err
	}
	windows, err := snapshot.Fetch(cmd.Context(), provider.Querier)
	if err != nil {
		return err
	}
	return output.Print(cmd.OutOrStdout(), windows)
}
