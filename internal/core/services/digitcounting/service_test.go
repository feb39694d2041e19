package digitcounting

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/AntonioJCosta/pidigits/internal/core/domain/frequency"
	"github.com/AntonioJCosta/pidigits/internal/core/domain/input"
	"github.com/AntonioJCosta/pidigits/internal/core/testutil"
	"go.uber.org/zap/zaptest"
)

func TestNewService(t *testing.T) {
	t.Run("should return a service if opener is not nil", func(t *testing.T) {
		svc := NewService(&testutil.MockSourceOpener{}, nil)
		if svc == nil {
			t.Fatal("NewService() returned nil, expected a service instance")
		}
	})

	t.Run("should panic if opener is nil", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("NewService did not panic with nil opener")
			}
		}()
		_ = NewService(nil, nil)
	})
}

func TestService_CountFile(t *testing.T) {
	tests := []struct {
		name       string
		openFunc   func(path string) (io.ReadCloser, error)
		wantReport frequency.Report
		wantErr    bool
		wantErrAs  any
	}{
		{
			name: "success",
			openFunc: func(path string) (io.ReadCloser, error) {
				return testutil.NewMockReadCloser("3.14159\n"), nil
			},
			wantReport: frequency.Report{
				Source: "pi.txt",
				Tally: frequency.Tally{
					Digits: frequency.Table{0, 2, 0, 1, 1, 1, 0, 0, 0, 1},
					Other:  2,
				},
			},
		},
		{
			name: "missing file",
			openFunc: func(path string) (io.ReadCloser, error) {
				return nil, &input.NotFoundError{Path: path}
			},
			wantErr:   true,
			wantErrAs: new(*input.NotFoundError),
		},
		{
			name: "read failure",
			openFunc: func(path string) (io.ReadCloser, error) {
				return &testutil.MockReadCloser{Reader: errReader{}}, nil
			},
			wantErr:   true,
			wantErrAs: new(*input.IOError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(&testutil.MockSourceOpener{OpenFunc: tt.openFunc}, zaptest.NewLogger(t))
			report, err := svc.CountFile("pi.txt")

			if (err != nil) != tt.wantErr {
				t.Fatalf("CountFile() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.As(err, tt.wantErrAs) {
					t.Errorf("CountFile() error = %T, want %T", err, tt.wantErrAs)
				}
				return
			}
			if report != tt.wantReport {
				t.Errorf("CountFile() = %+v, want %+v", report, tt.wantReport)
			}
		})
	}
}

func TestService_CountReader(t *testing.T) {
	svc := NewService(&testutil.MockSourceOpener{}, nil)

	first, err := svc.CountReader("stdin", strings.NewReader("1234567890"))
	if err != nil {
		t.Fatalf("CountReader() unexpected error = %v", err)
	}
	second, err := svc.CountReader("stdin", strings.NewReader("99"))
	if err != nil {
		t.Fatalf("CountReader() unexpected error = %v", err)
	}

	want := frequency.Table{1, 1, 1, 1, 1, 1, 1, 1, 1, 1}
	if first.Tally.Digits != want {
		t.Errorf("first CountReader() digits = %v, want %v", first.Tally.Digits, want)
	}
	// Each call runs on its own counter, so nothing carries over.
	if second.Tally.Digits[9] != 2 || second.Total() != 2 {
		t.Errorf("second CountReader() = %+v, want only two nines", second.Tally)
	}
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("mock: read failed") }
