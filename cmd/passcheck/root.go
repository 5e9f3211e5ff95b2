// Package main provides the entry point for the passcheck CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/nao1215/passcheck/internal/config"
	"github.com/nao1215/passcheck/internal/evaluator"
	"github.com/nao1215/passcheck/internal/log"
	"github.com/nao1215/passcheck/internal/refdata"
)

// NewRootCmd creates the root command for passcheck.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passcheck",
		Short: "Password strength analyzer and generator",
		Long: `Passcheck analyzes password strength entirely on the local machine.
It scores candidates from 0 to 100, explains which patterns weaken them,
estimates offline crack time, and generates strong replacements.

Nothing is sent over the network, passwords are never logged, and the
optional history database stores masked summaries only.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewAnalyzeCmd())
	cmd.AddCommand(NewGenerateCmd())
	cmd.AddCommand(NewAuditCmd())
	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewHistoryCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// setupLogger creates a redacting structured logger based on verbosity.
// Every command routes log output through the secure handler so a
// password attribute can never reach stderr in the clear.
func setupLogger(verbose bool) *slog.Logger {
	return log.NewSecureLogger(os.Stderr, verbose)
}

// applyConfigFile loads the optional configuration file onto cfg.
// If the user explicitly specified a config file path, error if not found.
// If no path specified, silently keep the defaults when no file exists.
func applyConfigFile(cfg *config.Config) error {
	explicitConfigPath := cfg.ConfigFilePath != ""
	configPath := config.FindConfigFile(cfg.ConfigFilePath)

	if configPath == "" {
		if explicitConfigPath {
			// User explicitly specified a config file that doesn't exist
			return fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
		}
		return nil
	}

	file, err := config.LoadConfigFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config file %s: %w", configPath, err)
	}
	file.Apply(cfg)
	return nil
}

// newEvaluator builds the evaluation engine from the configuration,
// merging any configured custom wordlists into the built-in lists.
func newEvaluator(cfg *config.Config) (*evaluator.PasswordEvaluator, error) {
	opts := []refdata.Option{}

	if cfg.CommonPasswordFile != "" {
		words, err := config.LoadWordlist(cfg.CommonPasswordFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load common password list: %w", err)
		}
		opts = append(opts, refdata.WithCommonPasswords(words))
	}

	if cfg.DictionaryFile != "" {
		words, err := config.LoadWordlist(cfg.DictionaryFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load dictionary word list: %w", err)
		}
		opts = append(opts, refdata.WithDictionaryWords(words))
	}

	return evaluator.New(refdata.New(opts...)), nil
}
