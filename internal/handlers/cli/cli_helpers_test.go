package cli

import (
	"bytes"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AntonioJCosta/pidigits/internal/adapters/reportformat"
	"github.com/AntonioJCosta/pidigits/internal/core/domain/settings"
	"github.com/AntonioJCosta/pidigits/internal/core/ports"
	"github.com/AntonioJCosta/pidigits/internal/core/services/corruption"
	"github.com/AntonioJCosta/pidigits/internal/core/services/digitcounting"
	"github.com/AntonioJCosta/pidigits/internal/core/testutil"
	"github.com/AntonioJCosta/pidigits/internal/repositories/sink"
	"github.com/AntonioJCosta/pidigits/internal/repositories/source"
	"go.uber.org/zap/zaptest"
)

// newTestDeps wires the real services and adapters, with cfg standing in for the config file.
func newTestDeps(t *testing.T, cfg settings.Settings) Dependencies {
	t.Helper()
	logger := zaptest.NewLogger(t)
	opener := source.NewFileOpener()

	return Dependencies{
		Counting: digitcounting.NewService(opener, logger),
		Opener:   opener,
		Sink:     sink.NewFileSink(),
		NewSettings: func(string) ports.SettingsProvider {
			return &testutil.MockSettingsProvider{
				GetSettingsFunc: func() (settings.Settings, error) { return cfg, nil },
			}
		},
		NewInputFinder: func(name string) ports.InputFileFinder {
			return &testutil.MockInputFileFinder{
				FindFunc: func() (string, error) { return name, nil },
			}
		},
		NewReportWriter: reportformat.New,
		NewCorrupter: func(rnd ports.RandomSource, c settings.Corruption) ports.CorruptionService {
			return corruption.NewService(rnd, c, logger)
		},
		NewRandom: func(seed uint64) ports.RandomSource {
			return rand.New(rand.NewPCG(seed, seed))
		},
		DecodeStdin: source.Decode,
	}
}

// execute runs the root command with args and returns what it wrote.
func execute(t *testing.T, deps Dependencies, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand("test", deps)
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// writeTestFile creates name under dir with content and returns its path.
func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
	return path
}

const piPlainReport = "0 0\n1 2\n2 0\n3 1\n4 1\n5 1\n6 0\n7 0\n8 0\n9 1\nbad symbols 2\n"
