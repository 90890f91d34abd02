package application

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestGetApplicationDirectory(t *testing.T) {
	dir, err := GetApplicationDirectory()
	if err != nil {
		t.Fatalf("GetApplicationDirectory() error = %v", err)
	}

	if !strings.HasSuffix(dir, string(filepath.Separator)+AppName) {
		t.Errorf("GetApplicationDirectory() = %q, want path ending in %q", dir, AppName)
	}

	// Repeat call must resolve the same directory (lazy singleton).
	again, err := GetApplicationDirectory()
	if err != nil {
		t.Fatalf("GetApplicationDirectory() second call error = %v", err)
	}

	if again != dir {
		t.Errorf("GetApplicationDirectory() second call = %q, want %q", again, dir)
	}
}
