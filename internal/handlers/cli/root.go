package cli

import (
	"fmt"
	"io"

	"github.com/AntonioJCosta/pidigits/internal/core/domain/settings"
	"github.com/AntonioJCosta/pidigits/internal/core/ports"
	"github.com/spf13/cobra"
)

/*
Dependencies carries the services and adapter constructors used by the commands.
Constructors are used where the value depends on flags or on the loaded settings.
*/
type Dependencies struct {
	Counting        ports.DigitCountingService
	Opener          ports.SourceOpener
	Sink            ports.OutputSink
	NewSettings     func(configPath string) ports.SettingsProvider
	NewInputFinder  func(name string) ports.InputFileFinder
	NewReportWriter func(format string) (ports.ReportWriter, error)
	NewCorrupter    func(rnd ports.RandomSource, cfg settings.Corruption) ports.CorruptionService
	NewRandom       func(seed uint64) ports.RandomSource
	// DecodeStdin wraps standard input before it is scanned. Nil leaves it untouched.
	DecodeStdin func(r io.Reader) io.Reader
	// SetVerbose switches debug logging on or off.
	SetVerbose func(verbose bool)
}

// app holds the state shared by the commands of one invocation.
type app struct {
	deps       Dependencies
	settings   settings.Settings
	configPath string
	verbose    bool
}

// NewRootCommand creates the root 'pidigits' command, which counts digits, and attaches its subcommands.
func NewRootCommand(version string, deps Dependencies) *cobra.Command {
	a := &app{deps: deps, settings: settings.Default()}

	rootCmd := &cobra.Command{
		Use:   "pidigits [file]",
		Short: "pidigits counts the digits and bad symbols in a text file.",
		Long: `pidigits reads a text file character by character and reports how many
times each digit 0-9 occurs, followed by the number of non-digit ("bad") symbols.
Line terminators count as bad symbols. Use "-" to read standard input.

Without a file argument the configured default input is used, or the file
name is asked for when --interactive is set.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCountCmd(cmd, args, a)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Path to the YAML config file (default $XDG_CONFIG_HOME/pidigits/config.yaml).")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging on stderr.")
	rootCmd.Flags().StringP("format", "f", "", "Report format: plain, table, markdown or yaml (default from config, plain).")
	rootCmd.Flags().BoolP("interactive", "i", false, "Ask for the file name when none is given.")

	rootCmd.AddCommand(NewCorruptCommand(a))

	return rootCmd
}

// setup checks the wiring, applies --verbose and loads the settings.
func (a *app) setup(cmd *cobra.Command) error {
	if a.deps.NewSettings == nil {
		return fmt.Errorf("settings provider not initialized for command %s", cmd.Name())
	}
	if a.deps.SetVerbose != nil {
		a.deps.SetVerbose(a.verbose)
	}

	loaded, err := a.deps.NewSettings(a.configPath).GetSettings()
	if err != nil {
		return fmt.Errorf("could not load settings: %w", err)
	}
	a.settings = loaded
	return nil
}
