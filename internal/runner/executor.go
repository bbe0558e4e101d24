package runner

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"setup-launcher/internal/logger"
	"setup-launcher/internal/plan"
)

// StepError is the failure outcome of a step: the command exited non-zero or
// could not be started at all (ExitCode -1).
type StepError struct {
	Command  string
	ExitCode int
	Cause    error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step failed: %s (exit code %d)", e.Command, e.ExitCode)
}

func (e *StepError) Unwrap() error {
	return e.Cause
}

// StepResult records one executed step. Err is nil on success.
type StepResult struct {
	Step    plan.Step
	Elapsed time.Duration
	Err     *StepError
}

// Success reports whether the step exited zero.
func (r StepResult) Success() bool {
	return r.Err == nil
}

// Executor runs a single step to completion.
type Executor interface {
	Execute(step plan.Step) StepResult
}

// CommandExecutor spawns steps as child processes wired to the given streams,
// so the provisioning tool's output reaches the operator unbuffered.
type CommandExecutor struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewCommandExecutor returns an executor that inherits the process's standard streams.
func NewCommandExecutor() *CommandExecutor {
	return &CommandExecutor{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Execute blocks until the step's process exits. There is no timeout.
func (e *CommandExecutor) Execute(step plan.Step) StepResult {
	result := StepResult{Step: step}
	if len(step.Command) == 0 {
		result.Err = &StepError{ExitCode: -1, Cause: errors.New("empty command")}
		return result
	}

	cmd := exec.Command(step.Command[0], step.Command[1:]...)
	cmd.Dir = step.Dir
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	logger.Debug("[DEBUG] Executing %q in %s\n", step.Command, step.Dir)

	started := time.Now()
	err := cmd.Run()
	result.Elapsed = time.Since(started)

	if err != nil {
		code := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		}
		result.Err = &StepError{Command: step.Display(), ExitCode: code, Cause: err}
	}
	return result
}
