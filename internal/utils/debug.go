package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

var (
	debugFile *os.File
	debugPath string
	debugOnce sync.Once
	logsDir   string
	mu        sync.RWMutex
)

// ConfigureDebug sets the directory for debug logs
func ConfigureDebug(dir string) {
	mu.Lock()
	defer mu.Unlock()
	logsDir = dir
}

// Debug writes a message to the session's debug log in the configured directory
func Debug(format string, args ...any) {
	timestamp := time.Now().Format("2006-01-02 15:04:05")

	mu.RLock()
	dir := logsDir
	mu.RUnlock()

	// Logging is off until a directory is configured
	if dir == "" {
		return
	}

	debugOnce.Do(func() {
		_ = os.MkdirAll(dir, 0o755)
		path := filepath.Join(dir, fmt.Sprintf("debug-%s.log", time.Now().Format("20060102-150405")))
		f, err := os.Create(path)
		if err != nil {
			return
		}
		mu.Lock()
		debugFile, debugPath = f, path
		mu.Unlock()
	})

	mu.RLock()
	f := debugFile
	mu.RUnlock()
	if f != nil {
		fmt.Fprintf(f, "[%s] %s\n", timestamp, fmt.Sprintf(format, args...))
	}
}

// CleanupLogs trims the configured directory to keep debug logs. The current
// session's log counts toward keep whether or not it has been written yet.
func CleanupLogs(keep int) {
	mu.RLock()
	dir, current := logsDir, debugPath
	mu.RUnlock()

	if dir == "" || keep < 0 {
		return
	}
	keep-- // room for this session
	if keep < 0 {
		keep = 0
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	var logs []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasPrefix(name, "debug-") || !strings.HasSuffix(name, ".log") {
			continue
		}
		if filepath.Join(dir, name) == current {
			continue
		}
		logs = append(logs, name)
	}
	if len(logs) <= keep {
		return
	}

	// Names embed a sortable timestamp, newest last
	sort.Strings(logs)
	for _, name := range logs[:len(logs)-keep] {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			Debug("Failed to remove old log %s: %v", name, err)
		}
	}
}
