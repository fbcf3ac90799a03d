package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/MCBE-Utilities/BeRAPI/internal/factory"
)

var (
	cfg    *Config
	client *factory.Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "berapi",
		Short: "CLI tool for the Minecraft Bedrock Realms API",
		Long: `berapi is a CLI tool for managing Minecraft Bedrock Realms.

It lists realms and their players, opens, closes and renames realms, manages
ban lists and looks up Xbox profiles. Credentials are read from
BERAPI_SESSION_TICKET and BERAPI_ACCOUNT_HASH.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			client = nil
			if err := cfg.Load(); err != nil {
				return err
			}

			logger := cfg.Logger(cmd.ErrOrStderr())
			c, err := NewClient(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			client = c
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if client == nil {
				return nil
			}
			return client.Close()
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.RealmsURL, "realms-url", cfg.RealmsURL, "Realms API base URL (env: BERAPI_REALMS_URL)")
	rootCmd.PersistentFlags().StringVar(&cfg.XboxURL, "xbox-url", cfg.XboxURL, "Xbox profile API base URL (env: BERAPI_XBOX_URL)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newRealmsCmd())
	rootCmd.AddCommand(newPlayersCmd())
	rootCmd.AddCommand(newBansCmd())
	rootCmd.AddCommand(newProfileCmd())

	return rootCmd
}

// Execute runs the root command and returns the process exit code
func Execute(ctx context.Context) int {
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}
