package runner

import (
	"bytes"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"setup-launcher/internal/plan"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestCommandExecutorSuccess(t *testing.T) {
	requireShell(t)
	dir := t.TempDir()
	var stdout bytes.Buffer
	e := &CommandExecutor{Stdout: &stdout, Stderr: &stdout}

	result := e.Execute(plan.Step{
		Label:   plan.LabelAnsible,
		Command: []string{"sh", "-c", "pwd"},
		Dir:     dir,
	})

	require.True(t, result.Success())
	assert.GreaterOrEqual(t, result.Elapsed.Seconds(), 0.0)

	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(strings.TrimSpace(stdout.String()))
	require.NoError(t, err)
	assert.Equal(t, want, got, "step must run from its working directory")
}

func TestCommandExecutorExitCode(t *testing.T) {
	requireShell(t)
	e := &CommandExecutor{}

	step := plan.Step{Label: plan.LabelAnsible, Command: []string{"sh", "-c", "exit 3"}}
	result := e.Execute(step)

	require.False(t, result.Success())
	assert.Equal(t, 3, result.Err.ExitCode)
	assert.Equal(t, "sh -c exit 3", result.Err.Command)
	assert.Contains(t, result.Err.Error(), "exit code 3")
}

func TestCommandExecutorMissingBinary(t *testing.T) {
	e := &CommandExecutor{}

	result := e.Execute(plan.Step{Command: []string{"definitely-not-a-real-binary-xyz"}})

	require.False(t, result.Success())
	assert.Equal(t, -1, result.Err.ExitCode)
	assert.Error(t, result.Err.Unwrap())
}

func TestCommandExecutorEmptyCommand(t *testing.T) {
	result := (&CommandExecutor{}).Execute(plan.Step{})

	require.False(t, result.Success())
	assert.Equal(t, -1, result.Err.ExitCode)
}
