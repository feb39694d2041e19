package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/AntonioJCosta/pidigits/internal/handlers/ui"
	"github.com/spf13/cobra"
)

// ErrOutputIsInput is returned when the output path names the input file.
var ErrOutputIsInput = errors.New("output would overwrite the input file")

// NewCorruptCommand creates the 'corrupt' subcommand.
func NewCorruptCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "corrupt <input> [output]",
		Short: "Write a copy of a text file with random noise characters inserted.",
		Long: `Copies <input> to [output] (or standard output), inserting before each
character, with the configured probability, one random character from the
configured range. Useful for producing test files for the digit counter.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCorruptCmd(cmd, args, a)
		},
	}

	cmd.Flags().Float64P("probability", "p", 0, "Chance of a noise character before each character (default from config, 0.1).")
	cmd.Flags().Uint64("seed", 0, "Seed for the random generator (default: current time).")

	return cmd
}

func runCorruptCmd(cmd *cobra.Command, args []string, a *app) (err error) {
	if a.deps.Opener == nil || a.deps.NewCorrupter == nil || a.deps.NewRandom == nil {
		return fmt.Errorf("corruption service not initialized")
	}

	cfg := a.settings.Corruption
	if cmd.Flags().Changed("probability") {
		cfg.Probability, _ = cmd.Flags().GetFloat64("probability")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	seed := uint64(time.Now().UnixNano())
	if cmd.Flags().Changed("seed") {
		seed, _ = cmd.Flags().GetUint64("seed")
	}

	in, err := a.deps.Opener.Open(args[0])
	if err != nil {
		return fmt.Errorf("could not open input: %w", err)
	}
	defer in.Close()

	var out io.Writer = cmd.OutOrStdout()
	outputPath := ""
	if len(args) == 2 {
		outputPath = args[1]
		if a.deps.Sink == nil {
			return fmt.Errorf("output sink not initialized")
		}
		// Creating the output truncates it, so it must be checked against the input first.
		if outInfo, statErr := os.Stat(outputPath); statErr == nil {
			if inInfo, inErr := os.Stat(args[0]); inErr == nil && os.SameFile(inInfo, outInfo) {
				return fmt.Errorf("%w: %s", ErrOutputIsInput, outputPath)
			}
			fmt.Fprintln(cmd.ErrOrStderr(), ui.WarningColor("Warning: overwriting existing file "+outputPath))
		}
		file, createErr := a.deps.Sink.Create(outputPath)
		if createErr != nil {
			return fmt.Errorf("could not create output: %w", createErr)
		}
		defer func() {
			if cerr := file.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("could not close output %s: %w", outputPath, cerr)
			}
		}()
		out = file
	}

	corrupter := a.deps.NewCorrupter(a.deps.NewRandom(seed), cfg)
	stats, err := corrupter.Corrupt(in, out)
	if err != nil {
		return fmt.Errorf("could not corrupt %s: %w", args[0], err)
	}

	if outputPath != "" {
		fmt.Fprintln(cmd.OutOrStdout(), ui.SuccessColor(fmt.Sprintf(
			"Wrote %s: %d characters, %d noise characters inserted.",
			outputPath, stats.CharactersRead, stats.NoiseInserted)))
		fmt.Fprintln(cmd.OutOrStdout(), ui.DetailColor(fmt.Sprintf("(Seed: %d)", seed)))
	}
	return nil
}
