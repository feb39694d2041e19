package source

import (
	"os"
	"os/user"
	"path/filepath"
	"testing"
)

// manageTestFile creates a file at the given path for the test and ensures it's cleaned up.
// If content is empty, an empty file is created.
func manageTestFile(t *testing.T, path string, content []byte) {
	t.Helper()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", dir, err)
	}

	if err := os.WriteFile(path, content, 0600); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
	t.Cleanup(func() {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			t.Logf("Warning: failed to remove test file %s: %v", path, err)
		}
	})
}

func TestUserFriendlyPath(t *testing.T) {
	currentUser, err := user.Current()
	if err != nil || currentUser.HomeDir == "" {
		t.Skip("Skipping: cannot determine home directory")
	}
	homeDir := currentUser.HomeDir

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "home directory itself", path: homeDir, want: "~"},
		{name: "file under home", path: filepath.Join(homeDir, "pi", "digits.txt"), want: filepath.Join("~", "pi", "digits.txt")},
		{name: "path outside home", path: "/definitely/not/home/digits.txt", want: "/definitely/not/home/digits.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserFriendlyPath(tt.path); got != tt.want {
				t.Errorf("UserFriendlyPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}
