package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nao1215/passcheck/internal/config"
	"github.com/nao1215/passcheck/internal/evaluator"
	"github.com/nao1215/passcheck/internal/generator"
)

// NewGenerateCmd creates the generate command.
func NewGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate strong random passwords",
		Long: `Generate creates cryptographically random passwords.

Every generated password contains at least one lowercase letter, one
uppercase letter, one digit, and one special character, then shuffles
the characters so the guaranteed ones sit at random positions.

Examples:
  # Generate one 16 character password
  passcheck generate

  # Generate a 24 character password
  passcheck generate --length 24

  # Generate five passwords
  passcheck generate --count 5

  # Show the evaluation of each generated password
  passcheck generate --analyze`,
		Args: cobra.NoArgs,
		RunE: runGenerateCmd,
	}

	cmd.Flags().IntP("length", "l", generator.DefaultLength,
		"Password length (minimum 4)")
	cmd.Flags().IntP("count", "n", 1,
		"Number of passwords to generate")
	cmd.Flags().BoolP("analyze", "a", false,
		"Append score, level, and entropy to each password")
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: passcheck.yaml in current or XDG config directory)")

	return cmd
}

// runGenerateCmd executes the generate command.
func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildGenerateConfig(cmd)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	count, err := cmd.Flags().GetInt("count")
	if err != nil {
		return err
	}
	if count < 1 {
		return errors.New("count must be at least 1")
	}

	analyze, err := cmd.Flags().GetBool("analyze")
	if err != nil {
		return err
	}

	var eval *evaluator.PasswordEvaluator
	if analyze {
		eval, err = newEvaluator(cfg)
		if err != nil {
			return err
		}
	}

	for i := 0; i < count; i++ {
		password, err := generator.Generate(cfg.GeneratorLength)
		if err != nil {
			return fmt.Errorf("failed to generate password: %w", err)
		}

		if analyze {
			result := eval.Evaluate(password)
			fmt.Fprintf(cmd.OutOrStdout(), "%s  (%d/100 %s, %.1f bits)\n",
				password, result.StrengthScore, result.StrengthLevel, result.Entropy)
			continue
		}
		fmt.Fprintln(cmd.OutOrStdout(), password)
	}

	return nil
}

// buildGenerateConfig creates a Config from cobra command flags.
// A config file generator length applies unless --length was given.
func buildGenerateConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}
	if err := applyConfigFile(cfg); err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("length") {
		cfg.GeneratorLength, err = cmd.Flags().GetInt("length")
		if err != nil {
			return nil, err
		}
	}

	return cfg, nil
}
