// Package fixup brings external tool settings to a known value, writing only
// the keys that differ.
package fixup

import (
	"fmt"
	"os/exec"

	"setup-launcher/internal/logger"
)

// DefaultPagerValue and DefaultPagerKeys describe the git pager settings the
// dotfiles expect.
const DefaultPagerValue = "delta"

var DefaultPagerKeys = []string{"core.pager", "pager.log", "pager.diff", "pager.show"}

// Store is a key/value configuration store owned by some external tool.
type Store interface {
	// Get returns the current value; ok is false when the key is unset.
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Probe reports whether the tool behind a Store is available.
type Probe func() bool

// LookPathProbe returns a Probe checking that name is on PATH.
func LookPathProbe(name string) Probe {
	return func() bool {
		_, err := exec.LookPath(name)
		return err == nil
	}
}

// Ensurer is an idempotent check-and-repair over a Store.
type Ensurer struct {
	Store Store
	Probe Probe
	// Notify, when set, is called once per Ensure that changed at least one key.
	Notify func(changed []string)
}

// Ensure sets every key in keys to expected unless it already holds that value.
// A failing probe makes Ensure a silent no-op.
func (e *Ensurer) Ensure(expected string, keys []string) error {
	if e.Probe != nil && !e.Probe() {
		logger.Debug("[DEBUG] Fixup tool not found, skipping\n")
		return nil
	}

	var changed []string
	for _, key := range keys {
		current, ok, err := e.Store.Get(key)
		if err != nil {
			return fmt.Errorf("read %s: %w", key, err)
		}
		if ok && current == expected {
			logger.Debug("[DEBUG] %s already set to %q\n", key, expected)
			continue
		}
		if err := e.Store.Set(key, expected); err != nil {
			return fmt.Errorf("set %s: %w", key, err)
		}
		logger.Debug("[DEBUG] %s: %q -> %q\n", key, current, expected)
		changed = append(changed, key)
	}

	if len(changed) > 0 && e.Notify != nil {
		e.Notify(changed)
	}
	return nil
}
