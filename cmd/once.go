package cmd

import (
	"github.com/mj1618/groupie/internal/output"
	"github.com/mj1618/groupie/internal/status"
	"github.com/spf13/cobra"
)

var onceCmd = &cobra.Command{
	Use:   "once",
	Short: "Print a single status line and exit",
	Long: `Run one refresh without connecting to the event socket and print its JSON line.

Data errors are printed as "ERROR: ..." lines, exactly as the watch loop would,
and do not change the exit status.`,
	Args: cobra.NoArgs,
	RunE: runOnce,
}

func init() {
	rootCmd.AddCommand(onceCmd)
}

func runOnce(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	provider, err := newProvider(cfg)
	if err != nil {
		return err
	}
	pipeline := status.NewPipeline(provider.Querier, cfg)
	return output.NewEmitter(cmd.OutOrStdout()).Emit(pipeline.Line(cmd.Context()))
}
