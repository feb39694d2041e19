package main

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/AntonioJCosta/pidigits/internal/adapters/configfile"
	"github.com/AntonioJCosta/pidigits/internal/adapters/reportformat"
	"github.com/AntonioJCosta/pidigits/internal/core/domain/settings"
	"github.com/AntonioJCosta/pidigits/internal/core/ports"
	"github.com/AntonioJCosta/pidigits/internal/core/services/corruption"
	"github.com/AntonioJCosta/pidigits/internal/core/services/digitcounting"
	"github.com/AntonioJCosta/pidigits/internal/handlers/cli"
	"github.com/AntonioJCosta/pidigits/internal/handlers/ui"
	"github.com/AntonioJCosta/pidigits/internal/logging"
	"github.com/AntonioJCosta/pidigits/internal/repositories/sink"
	"github.com/AntonioJCosta/pidigits/internal/repositories/source"
	"go.uber.org/zap"
)

// Version is set at build time
var Version = "dev"

func main() {
	logger, level, err := logging.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	opener := source.NewFileOpener()
	countingSvc := digitcounting.NewService(opener, logger.Named("count"))

	deps := cli.Dependencies{
		Counting:        countingSvc,
		Opener:          opener,
		Sink:            sink.NewFileSink(),
		NewSettings:     configfile.NewYAMLProvider,
		NewInputFinder:  source.NewDefaultInputFinder,
		NewReportWriter: reportformat.New,
		NewCorrupter: func(rnd ports.RandomSource, cfg settings.Corruption) ports.CorruptionService {
			return corruption.NewService(rnd, cfg, logger.Named("corrupt"))
		},
		NewRandom: func(seed uint64) ports.RandomSource {
			return rand.New(rand.NewPCG(seed, seed))
		},
		DecodeStdin: source.Decode,
		SetVerbose: func(verbose bool) {
			logging.SetVerbose(level, verbose)
			logger.Debug("verbose logging enabled", zap.String("version", Version))
		},
	}

	rootCmd := cli.NewRootCommand(Version, deps)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorColor("Error: "+err.Error()))
		_ = logger.Sync()
		os.Exit(1)
	}
}
