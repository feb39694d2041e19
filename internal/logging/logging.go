/*
Package logging builds the zap logger shared by the CLI and the services.
*/
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

/*
New returns a logger that writes console-encoded entries to stderr. It starts
at warn level so that normal runs print nothing but the report; SetVerbose
lowers the returned level to debug at any time.
*/
func New() (*zap.Logger, zap.AtomicLevel, error) {
	level := zap.NewAtomicLevelAt(zapcore.WarnLevel)

	config := zap.NewProductionConfig()
	config.Level = level
	config.Encoding = "console"
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.DisableStacktrace = true
	config.Sampling = nil

	logger, err := config.Build()
	if err != nil {
		return nil, level, err
	}
	return logger, level, nil
}

// SetVerbose switches level between debug (verbose) and warn.
func SetVerbose(level zap.AtomicLevel, verbose bool) {
	if verbose {
		level.SetLevel(zapcore.DebugLevel)
		return
	}
	level.SetLevel(zapcore.WarnLevel)
}
