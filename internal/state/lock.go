package state

import (
	"errors"
	"fmt"

	"github.com/gofrs/flock"
)

// ErrLocked means another launcher run currently holds the run lock.
var ErrLocked = errors.New("another setup run is in progress")

// Lock is an exclusive, non-blocking run lock stored next to the state file.
type Lock struct {
	flock *flock.Flock
	path  string
}

// AcquireLock takes the run lock for statePath, failing with ErrLocked if held.
func AcquireLock(statePath string) (*Lock, error) {
	path := statePath + ".lock"
	fl := flock.New(path)

	acquired, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("failed to try lock on %s: %w", path, err)
	}
	if !acquired {
		return nil, fmt.Errorf("%w (lock: %s)", ErrLocked, path)
	}
	return &Lock{flock: fl, path: path}, nil
}

// Release frees the lock.
func (l *Lock) Release() error {
	if err := l.flock.Unlock(); err != nil {
		return fmt.Errorf("failed to release lock on %s: %w", l.path, err)
	}
	return nil
}
