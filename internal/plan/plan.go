// Package plan turns a profile selection into the ordered list of commands to run.
package plan

import (
	"strings"

	"setup-launcher/internal/profile"
)

// Step labels shown in the plan table.
const (
	LabelAnsible  = "Ansible"
	LabelDotfiles = "Dotfiles"
)

// Defaults matching the repository Makefile.
const (
	DefaultRunner             = "make"
	DefaultDotfilesTarget     = "dotfiles"
	DefaultDotfilesETAMinutes = 2
)

// Step is one external command, run from Dir.
type Step struct {
	Label   string
	Command []string
	Dir     string
}

// Display returns the command as shown to the operator, e.g. "make ansible-base".
func (s Step) Display() string {
	return strings.Join(s.Command, " ")
}

// IsDotfiles reports whether the step applies the dotfiles.
func (s Step) IsDotfiles() bool {
	return s.Label == LabelDotfiles
}

// Plan is the fully resolved step list for one invocation.
type Plan struct {
	Steps []Step
}

// Builder maps profiles to plans. The zero value is not usable; see NewBuilder.
type Builder struct {
	Runner             string
	Root               string
	DotfilesTarget     string
	DotfilesETAMinutes int
}

// NewBuilder returns a Builder running `make <target>` from root.
func NewBuilder(root string) Builder {
	return Builder{
		Runner:             DefaultRunner,
		Root:               root,
		DotfilesTarget:     DefaultDotfilesTarget,
		DotfilesETAMinutes: DefaultDotfilesETAMinutes,
	}
}

// Build emits one Ansible step per profile target, in order, followed by the
// dotfiles step when includeDotfiles is set. It performs no I/O.
func (b Builder) Build(p profile.Profile, includeDotfiles bool) Plan {
	steps := make([]Step, 0, len(p.Targets)+1)
	for _, target := range p.Targets {
		steps = append(steps, b.step(LabelAnsible, target))
	}
	if includeDotfiles {
		steps = append(steps, b.step(LabelDotfiles, b.DotfilesTarget))
	}
	return Plan{Steps: steps}
}

// EstimateMinutes is the display-only duration estimate for a selection.
func (b Builder) EstimateMinutes(p profile.Profile, includeDotfiles bool) int {
	if includeDotfiles {
		return p.ETAMinutes + b.DotfilesETAMinutes
	}
	return p.ETAMinutes
}

func (b Builder) step(label, target string) Step {
	return Step{
		Label:   label,
		Command: []string{b.Runner, target},
		Dir:     b.Root,
	}
}
