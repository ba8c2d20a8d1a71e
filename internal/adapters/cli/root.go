package cli

import (
	"distance-matrix-client/internal/config"
	"distance-matrix-client/internal/platform/logging"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// state shared by the subcommands of one invocation
type globals struct {
	configPath string
	cfg        *config.Config
}

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	g := &globals{}

	rootCmd := &cobra.Command{
		Use:   "dmquery",
		Short: "Query the distance matrix API from the command line",
		Long: `dmquery sends distance matrix queries and prints the decoded answer as JSON.

Credentials come from DMA_API_KEY (or DMA_CLIENT and DMA_SIGNATURE for
business accounts), a .env file, or the auth section of the config file.

Examples:
  dmquery matrix --origin "Berlin" --destination "Hamburg" --destination "Munich"
  dmquery matrix --origin A --destination B --mode transit --transit-mode rail --record
  dmquery nearest --origin "Hub" --destination A --destination B
  dmquery history --limit 20`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig(g.configPath)
			if err != nil {
				return err
			}
			logging.Configure(cfg.Logging.Level, cfg.Logging.Format)
			g.cfg = cfg
			return nil
		},
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().StringVar(&g.configPath, "config", "",
		"Path to config file (default ./config.yaml or ./configs/config.yaml)")

	rootCmd.AddCommand(newMatrixCommand(g))
	rootCmd.AddCommand(newNearestCommand(g))
	rootCmd.AddCommand(newHistoryCommand(g))

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
