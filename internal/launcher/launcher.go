// Package launcher ties profile selection, plan preview, confirmation and
// execution together for one invocation.
package launcher

import (
	"time"

	"setup-launcher/internal/logger"
	"setup-launcher/internal/plan"
	"setup-launcher/internal/profile"
	"setup-launcher/internal/runner"
	"setup-launcher/internal/state"
	"setup-launcher/internal/ui"
)

// Prompter asks the operator for the choices not given on the command line.
type Prompter interface {
	SelectProfile(profiles []profile.Profile, defaultKey string) (string, error)
	Confirm(question string, defaultYes bool) (bool, error)
}

// Options are the caller's selections. A nil Dotfiles means "ask".
type Options struct {
	Profile  string
	Dotfiles *bool
	Yes      bool
	DryRun   bool
}

// Launcher runs one invocation. Fixup may be nil. An empty StatePath disables
// both the last-run record and the run lock.
type Launcher struct {
	Catalog  *profile.Catalog
	Builder  plan.Builder
	Console  *ui.Console
	Prompter Prompter
	Executor runner.Executor

	Fixup      runner.Fixup
	FixupValue string
	FixupKeys  []string

	StatePath string
	Now       func() time.Time
}

// Launch returns the process exit status: 0 on success, decline or dry run,
// and 1 when a step fails. Errors mean the run never started.
func (l *Launcher) Launch(opts Options) (int, error) {
	// An explicit key is validated before anything is printed.
	if opts.Profile != "" {
		if _, err := l.Catalog.Lookup(opts.Profile); err != nil {
			return 1, err
		}
	}

	st := &state.State{}
	if l.StatePath != "" {
		st = state.LoadState(l.StatePath)
	}

	l.Console.Banner()

	key := opts.Profile
	if key == "" {
		all := l.Catalog.All()
		if err := l.Console.ProfileGuide(all); err != nil {
			return 1, err
		}
		var err error
		key, err = l.Prompter.SelectProfile(all, l.defaultKey(st))
		if err != nil {
			return 1, err
		}
	}
	selected, err := l.Catalog.Lookup(key)
	if err != nil {
		return 1, err
	}

	var dotfiles bool
	if opts.Dotfiles != nil {
		dotfiles = *opts.Dotfiles
	} else {
		dotfiles, err = l.Prompter.Confirm("Apply dotfiles after Ansible? (recommended)", true)
		if err != nil {
			return 1, err
		}
	}

	pl := l.Builder.Build(selected, dotfiles)
	if err := l.Console.Plan(selected, pl, l.Builder.EstimateMinutes(selected, dotfiles)); err != nil {
		return 1, err
	}

	if !opts.Yes {
		proceed, err := l.Prompter.Confirm("Proceed?", true)
		if err != nil {
			return 1, err
		}
		if !proceed {
			l.Console.Aborted()
			return 0, nil
		}
	}
	if opts.DryRun {
		l.Console.DryRunComplete()
		return 0, nil
	}

	return l.execute(selected, dotfiles, pl, st)
}

func (l *Launcher) execute(selected profile.Profile, dotfiles bool, pl plan.Plan, st *state.State) (int, error) {
	if l.StatePath != "" {
		lock, err := state.AcquireLock(l.StatePath)
		if err != nil {
			return 1, err
		}
		defer func() {
			if err := lock.Release(); err != nil {
				logger.Warn("[WARN] %v\n", err)
			}
		}()
	}

	var opts []runner.Option
	if l.Fixup != nil {
		opts = append(opts, runner.WithFixup(l.Fixup, l.FixupValue, l.FixupKeys))
	}
	outcome := runner.NewController(l.Executor, l.Console, opts...).Run(pl)

	l.record(st, selected, dotfiles, outcome)

	if outcome.State == runner.Aborted {
		l.Console.Failure(outcome)
		return outcome.ExitCode(), nil
	}
	l.Console.Success(outcome.Elapsed)
	return outcome.ExitCode(), nil
}

// defaultKey preselects the last used profile, falling back to the first one.
func (l *Launcher) defaultKey(st *state.State) string {
	if st.LastProfile != "" {
		if _, err := l.Catalog.Lookup(st.LastProfile); err == nil {
			return st.LastProfile
		}
	}
	if keys := l.Catalog.Keys(); len(keys) > 0 {
		return keys[0]
	}
	return ""
}

func (l *Launcher) record(st *state.State, selected profile.Profile, dotfiles bool, outcome runner.Outcome) {
	if l.StatePath == "" {
		return
	}
	now := time.Now
	if l.Now != nil {
		now = l.Now
	}
	st.Record(state.RunRecord{
		Profile:        selected.Key,
		Dotfiles:       dotfiles,
		Status:         outcome.State.String(),
		FailedStep:     outcome.FailedStep,
		ElapsedSeconds: outcome.Elapsed.Seconds(),
		FinishedAt:     now().UTC(),
	})
	if err := state.SaveState(l.StatePath, st); err != nil {
		logger.Error("[ERROR] Failed to record run: %v\n", err)
	}
}
