// Package runner executes a plan step by step, stopping at the first failure.
//
// Steps run strictly one after another: provisioning targets may depend on
// each other, so the next step starts only after the previous process exits.
// Failed runs are not rolled back and nothing is retried.
package runner

import (
	"fmt"
	"time"

	"setup-launcher/internal/logger"
	"setup-launcher/internal/plan"
)

// State is the controller's position in a run.
type State int

const (
	Idle State = iota
	Running
	Completed
	Aborted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Completed:
		return "completed"
	case Aborted:
		return "aborted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Outcome aggregates one run. Results holds one entry per executed step, in
// order, and is never appended to after a failure.
type Outcome struct {
	State   State
	Results []StepResult
	Elapsed time.Duration

	// FailedStep is the 1-based plan position of the failing step, 0 if none.
	FailedStep int
	// Err is a *StepError for a failed command, or the fixup error.
	Err error
}

// ExitCode maps the outcome to the process exit status.
func (o Outcome) ExitCode() int {
	if o.State == Aborted {
		return 1
	}
	return 0
}

// Reporter receives progress notices as the run advances. index is 0-based.
type Reporter interface {
	StepStarted(index int, step plan.Step)
	StepFinished(index int, result StepResult)
	StepFailed(index int, result StepResult)
}

// Fixup repairs external configuration after the dotfiles step.
type Fixup interface {
	Ensure(expected string, keys []string) error
}

// Controller drives a plan through an Executor.
type Controller struct {
	executor   Executor
	reporter   Reporter
	fixup      Fixup
	fixupValue string
	fixupKeys  []string
}

// Option configures a Controller.
type Option func(*Controller)

// WithFixup runs f.Ensure(value, keys) after a successful dotfiles step.
func WithFixup(f Fixup, value string, keys []string) Option {
	return func(c *Controller) {
		c.fixup = f
		c.fixupValue = value
		c.fixupKeys = append([]string(nil), keys...)
	}
}

// NewController returns a controller; a nil reporter discards notices.
func NewController(executor Executor, reporter Reporter, opts ...Option) *Controller {
	if reporter == nil {
		reporter = nopReporter{}
	}
	c := &Controller{executor: executor, reporter: reporter}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Run executes p in order and returns Completed, or Aborted at the first failure.
func (c *Controller) Run(p plan.Plan) Outcome {
	out := Outcome{State: Running}
	started := time.Now()

	for i, step := range p.Steps {
		logger.Debug("[DEBUG] Step %d/%d: %s\n", i+1, len(p.Steps), step.Display())
		c.reporter.StepStarted(i, step)

		result := c.executor.Execute(step)
		out.Results = append(out.Results, result)

		if !result.Success() {
			c.reporter.StepFailed(i, result)
			out.State = Aborted
			out.FailedStep = i + 1
			out.Err = result.Err
			out.Elapsed = time.Since(started)
			return out
		}
		c.reporter.StepFinished(i, result)

		if step.IsDotfiles() && c.fixup != nil {
			if err := c.fixup.Ensure(c.fixupValue, c.fixupKeys); err != nil {
				logger.Error("[ERROR] Post-dotfiles fixup failed: %v\n", err)
				out.State = Aborted
				out.FailedStep = i + 1
				out.Err = fmt.Errorf("fix configuration after %s: %w", step.Display(), err)
				out.Elapsed = time.Since(started)
				return out
			}
		}
	}

	out.State = Completed
	out.Elapsed = time.Since(started)
	return out
}

type nopReporter struct{}

func (nopReporter) StepStarted(int, plan.Step)    {}
func (nopReporter) StepFinished(int, StepResult) {}
func (nopReporter) StepFailed(int, StepResult)   {}
