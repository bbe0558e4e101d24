package fixup

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// GitConfig reads and writes the user's global git configuration via the git CLI.
type GitConfig struct {
	Binary string
}

// NewGitPagers returns an Ensurer for git's global config, skipped when binary is not on PATH.
func NewGitPagers(binary string, notify func(changed []string)) *Ensurer {
	if binary == "" {
		binary = "git"
	}
	return &Ensurer{
		Store:  GitConfig{Binary: binary},
		Probe:  LookPathProbe(binary),
		Notify: notify,
	}
}

// Get runs `git config --global --get key`. Any non-zero exit counts as unset.
func (g GitConfig) Get(key string) (string, bool, error) {
	out, err := exec.Command(g.Binary, "config", "--global", "--get", key).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("run %s config: %w", g.Binary, err)
	}
	return strings.TrimSpace(string(out)), true, nil
}

// Set runs `git config --global key value`.
func (g GitConfig) Set(key, value string) error {
	out, err := exec.Command(g.Binary, "config", "--global", key, value).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s config --global %s: %w: %s", g.Binary, key, err, strings.TrimSpace(string(out)))
	}
	return nil
}
