package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestCleanupLogs_KeepsNewest(t *testing.T) {
	dir := t.TempDir()
	ConfigureDebug(dir)
	t.Cleanup(func() { ConfigureDebug("") })

	names := []string{
		"debug-20260101-000000.log",
		"debug-20260102-000000.log",
		"debug-20260103-000000.log",
		"debug-20260104-000000.log",
		"settings.json",
	}
	for _, n := range names {
		if err := os.WriteFile(filepath.Join(dir, n), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	// one slot stays free for this session's log
	CleanupLogs(2)

	for _, n := range names[:3] {
		if _, err := os.Stat(filepath.Join(dir, n)); !os.IsNotExist(err) {
			t.Errorf("expected %s to be removed", n)
		}
	}
	for _, n := range names[3:] {
		if _, err := os.Stat(filepath.Join(dir, n)); err != nil {
			t.Errorf("expected %s to be kept: %v", n, err)
		}
	}
}

func TestCleanupLogs_Unconfigured(t *testing.T) {
	ConfigureDebug("")
	CleanupLogs(0) // must not panic or touch the working directory
}
