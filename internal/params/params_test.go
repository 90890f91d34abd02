package params

import (
	"os"
	"testing"

	"github.com/inovacc/notr/internal/application"
)

func TestAppdataDir(t *testing.T) {
	appDir, err := application.GetApplicationDirectory()
	if err != nil {
		t.Fatalf("application.GetApplicationDirectory() error = %v", err)
	}

	if AppdataDir != appDir {
		t.Errorf("AppdataDir = %q, want application directory %q", AppdataDir, appDir)
	}

	info, err := os.Stat(AppdataDir)
	if err != nil {
		t.Fatalf("os.Stat(AppdataDir) error = %v", err)
	}

	if !info.IsDir() {
		t.Errorf("AppdataDir %q is not a directory", AppdataDir)
	}
}
