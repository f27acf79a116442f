package commands

import (
	"github.com/spf13/cobra"

	"github.com/fingen-dev/fingen/internal/buildinfo"
	"github.com/fingen-dev/fingen/internal/logging"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var logLevel, logFormat string

	rootCmd := &cobra.Command{
		Use:     "fingen",
		Short:   "Synthetic personal-finance ledger generator",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			log, err := logging.New(cmd.ErrOrStderr(), logLevel, logFormat)
			if err != nil {
				return err
			}
			cmd.SetContext(logging.WithContext(cmd.Context(), log))
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "log format (console, json)")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newGenerateCommand())
	rootCmd.AddCommand(newVerifyCommand())

	return rootCmd
}
