package cli

import (
	"fmt"
	"io"

	"github.com/AntonioJCosta/pidigits/internal/core/domain/frequency"
	"github.com/AntonioJCosta/pidigits/internal/handlers/ui"
	"github.com/spf13/cobra"
)

const stdinArg = "-"

// runCountCmd contains the core logic for the root command.
func runCountCmd(cmd *cobra.Command, args []string, a *app) error {
	if a.deps.Counting == nil || a.deps.NewReportWriter == nil {
		return fmt.Errorf("digit counting service not initialized")
	}

	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		format = a.settings.Format
	}
	// Resolve the writer first so a bad format fails before any input is read.
	writer, err := a.deps.NewReportWriter(format)
	if err != nil {
		return err
	}

	report, err := countInput(cmd, args, a)
	if err != nil {
		return fmt.Errorf("could not count digits: %w", err)
	}

	if err := writer.Write(cmd.OutOrStdout(), report); err != nil {
		return fmt.Errorf("could not write report: %w", err)
	}
	return nil
}

// countInput picks the input named by args, the prompt or the settings, and counts it.
func countInput(cmd *cobra.Command, args []string, a *app) (frequency.Report, error) {
	if len(args) == 1 && args[0] == stdinArg {
		var in io.Reader = cmd.InOrStdin()
		if a.deps.DecodeStdin != nil {
			in = a.deps.DecodeStdin(in)
		}
		return a.deps.Counting.CountReader("stdin", in)
	}

	path, err := resolveInputPath(cmd, args, a)
	if err != nil {
		return frequency.Report{}, err
	}
	return a.deps.Counting.CountFile(path)
}

func resolveInputPath(cmd *cobra.Command, args []string, a *app) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	interactive, _ := cmd.Flags().GetBool("interactive")
	if interactive {
		return promptForFileName(cmd.InOrStdin(), cmd.ErrOrStderr())
	}

	if a.deps.NewInputFinder == nil {
		return "", fmt.Errorf("no input file given and no default input finder configured")
	}
	path, err := a.deps.NewInputFinder(a.settings.DefaultInput).Find()
	if err != nil {
		return "", err
	}
	fmt.Fprintln(cmd.ErrOrStderr(), ui.InfoColor("No file given, using default input: "+path))
	return path, nil
}
