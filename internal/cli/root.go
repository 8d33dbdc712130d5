package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/roach88/pchords/internal/chord"
	"github.com/roach88/pchords/internal/rng"
)

// RootOptions configures the pchords command.
type RootOptions struct {
	// Seeder supplies the generator seed.
	// If nil, defaults to rng.TimeSeeder.
	Seeder rng.Seeder

	// LogLevel is the minimum level written to stderr.
	// The zero value is slog.LevelInfo.
	LogLevel slog.Level
}

// NewRootCommand creates the pchords command.
//
// Flag parsing is disabled: every argument, whatever it looks like, is a
// positional argument, and any argument at all selects complex mode.
func NewRootCommand(opts *RootOptions) *cobra.Command {
	if opts == nil {
		opts = &RootOptions{}
	}

	cmd := &cobra.Command{
		Use:   "pchords [anything]",
		Short: "Print a random jazz chord",
		Long: `Print one randomly generated jazz chord label.

With no arguments the chord is a plain seventh chord. With any argument the
chord may also carry an extension (9, 11, 13) and up to two alterations.

Example:
  pchords
  pchords x`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChord(opts, len(args) > 0, cmd)
		},
	}

	return cmd
}

func runChord(opts *RootOptions, complex bool, cmd *cobra.Command) error {
	logger := newLogger(cmd.ErrOrStderr(), opts.LogLevel)

	seeder := opts.Seeder
	if seeder == nil {
		seeder = rng.TimeSeeder{}
	}
	seed := seeder.Seed()
	logger.Debug("seeded generator", "seed", seed, "complex", complex)

	line := chord.FormatRandom(rng.New(seed), complex)

	formatter := &OutputFormatter{Writer: cmd.OutOrStdout()}
	if err := formatter.Success(line); err != nil {
		return WrapExitError(ExitFailure, "failed to write chord", err)
	}
	return nil
}
