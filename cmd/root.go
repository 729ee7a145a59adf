package cmd

import (
	"context"

	"github.com/mj1618/groupie/internal/output"
	"github.com/mj1618/groupie/internal/version"
	"github.com/spf13/cobra"
	"pkt.systems/pslog"
)

var rootCmd = &cobra.Command{
	Use:   "groupie",
	Short: "Status bar line for Hyprland window groups",
	Long: `Watch Hyprland's event socket and print one JSON line per event describing the
grouped windows of the active workspace, in group order, with the focused one highlighted.

Each line is {"text": "..."} with pango markup, ready for a waybar custom module:

  "custom/groupie": { "exec": "groupie", "return-type": "json" }

Errors never stop the loop: they are printed as "ERROR: ..." lines and the
connection is retried every second.`,
	Args:          cobra.NoArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runWatch,
}

// Execute runs the command tree and returns the process exit code.
func Execute(ctx context.Context) int {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		pslog.Ctx(ctx).Error("groupie command failed", "err", err)
		return 1
	}
	return 0
}

func init() {
	rootCmd.Version = version.String()
	rootCmd.PersistentFlags().String("config", "", "Config file (default $GROUPIE_CONFIG_PATH or ~/.config/groupie/config.json)")
	rootCmd.PersistentFlags().String("format", "yaml", "Output format for inspection commands: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		formatFlag, _ := rootCmd.PersistentFlags().GetString("format")
		format, err := output.ParseFormat(formatFlag)
		if err != nil {
			return err
		}
		output.OutputFormat = format
		output.PrettyOutput, _ = rootCmd.PersistentFlags().GetBool("pretty")
		return nil
	}
}
