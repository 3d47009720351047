package cmd

import (
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"

	"github.com/treeflip/treeflip/internal/config"
)

var (
	instanceLock   *flock.Flock
	instanceLockMu sync.Mutex
)

// AcquireLock tries to take the single-instance lock. It returns false if
// another process holds it.
func AcquireLock() (bool, error) {
	instanceLockMu.Lock()
	defer instanceLockMu.Unlock()

	if instanceLock == nil {
		instanceLock = flock.New(filepath.Join(config.GetStateDir(), "treeflip.lock"))
	}
	return instanceLock.TryLock()
}

// ReleaseLock releases the single-instance lock if held.
func ReleaseLock() error {
	instanceLockMu.Lock()
	defer instanceLockMu.Unlock()

	if instanceLock == nil {
		return nil
	}
	err := instanceLock.Unlock()
	instanceLock = nil
	return err
}
