package source

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/AntonioJCosta/pidigits/internal/core/domain/input"
	"github.com/AntonioJCosta/pidigits/internal/core/ports"
	"github.com/adrg/xdg"
)

const appName = "pidigits"

/*
DefaultInputFinder locates the configured default input file.
A relative name is looked up in the working directory first and then in the
application data directory ($XDG_DATA_HOME/pidigits).
*/
type DefaultInputFinder struct {
	name     string
	getwd    func() (string, error)
	dataHome string
}

// NewDefaultInputFinder creates a new DefaultInputFinder for the given file name.
func NewDefaultInputFinder(name string) ports.InputFileFinder {
	return &DefaultInputFinder{
		name:     name,
		getwd:    os.Getwd,
		dataHome: filepath.Join(xdg.DataHome, appName),
	}
}

// Find implements the ports.InputFileFinder interface.
func (f *DefaultInputFinder) Find() (string, error) {
	if f.name == "" {
		return "", fmt.Errorf("no default input file configured")
	}
	if filepath.IsAbs(f.name) {
		return f.name, nil
	}

	cwd, err := f.getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}

	// Order matters: a file next to the user wins over the data directory copy.
	potentialPaths := []string{
		filepath.Join(cwd, f.name),
		filepath.Join(f.dataHome, f.name),
	}
	for _, p := range potentialPaths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", &input.NotFoundError{Path: UserFriendlyPath(potentialPaths[0]), Err: os.ErrNotExist}
}

var _ ports.InputFileFinder = (*DefaultInputFinder)(nil)
