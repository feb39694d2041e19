package source

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/AntonioJCosta/pidigits/internal/core/domain/input"
)

func TestDefaultInputFinder_Find(t *testing.T) {
	workDir := t.TempDir()
	dataDir := t.TempDir()

	tests := []struct {
		name              string
		fileName          string
		setup             func(t *testing.T)
		getwd             func() (string, error)
		wantPath          string
		wantErr           bool
		wantNotFound      bool
		wantErrorContains string
	}{
		{
			name:              "empty name",
			fileName:          "",
			getwd:             func() (string, error) { return workDir, nil },
			wantErr:           true,
			wantErrorContains: "no default input file configured",
		},
		{
			name:     "absolute name returned as is",
			fileName: filepath.Join(workDir, "anywhere.txt"),
			getwd:    func() (string, error) { return workDir, nil },
			wantPath: filepath.Join(workDir, "anywhere.txt"),
		},
		{
			name:     "found in working directory",
			fileName: "cwd.txt",
			setup: func(t *testing.T) {
				manageTestFile(t, filepath.Join(workDir, "cwd.txt"), []byte("1"))
				manageTestFile(t, filepath.Join(dataDir, "cwd.txt"), []byte("2"))
			},
			getwd:    func() (string, error) { return workDir, nil },
			wantPath: filepath.Join(workDir, "cwd.txt"),
		},
		{
			name:     "falls back to data directory",
			fileName: "data.txt",
			setup: func(t *testing.T) {
				manageTestFile(t, filepath.Join(dataDir, "data.txt"), []byte("2"))
			},
			getwd:    func() (string, error) { return workDir, nil },
			wantPath: filepath.Join(dataDir, "data.txt"),
		},
		{
			name:         "not found anywhere",
			fileName:     "nowhere.txt",
			getwd:        func() (string, error) { return workDir, nil },
			wantErr:      true,
			wantNotFound: true,
		},
		{
			name:              "working directory unavailable",
			fileName:          "cwd.txt",
			getwd:             func() (string, error) { return "", errors.New("mock: getwd failed") },
			wantErr:           true,
			wantErrorContains: "getting working directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setup != nil {
				tt.setup(t)
			}
			finder := &DefaultInputFinder{name: tt.fileName, getwd: tt.getwd, dataHome: dataDir}

			got, err := finder.Find()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Find() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if tt.wantErrorContains != "" && !strings.Contains(err.Error(), tt.wantErrorContains) {
					t.Errorf("Find() error = %q, want error containing %q", err.Error(), tt.wantErrorContains)
				}
				var notFound *input.NotFoundError
				if tt.wantNotFound && !errors.As(err, &notFound) {
					t.Errorf("Find() error = %T, want *input.NotFoundError", err)
				}
				if tt.wantNotFound && !errors.Is(err, os.ErrNotExist) {
					t.Errorf("Find() error does not wrap os.ErrNotExist")
				}
				return
			}
			if got != tt.wantPath {
				t.Errorf("Find() = %q, want %q", got, tt.wantPath)
			}
		})
	}
}

func TestNewDefaultInputFinder(t *testing.T) {
	finder := NewDefaultInputFinder("digits.txt")
	f, ok := finder.(*DefaultInputFinder)
	if !ok {
		t.Fatalf("NewDefaultInputFinder() did not return a *DefaultInputFinder, got %T", finder)
	}
	if f.name != "digits.txt" {
		t.Errorf("name = %q, want %q", f.name, "digits.txt")
	}
	if !strings.HasSuffix(f.dataHome, appName) {
		t.Errorf("dataHome = %q, want suffix %q", f.dataHome, appName)
	}
}
