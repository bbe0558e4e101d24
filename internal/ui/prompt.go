package ui

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"

	"setup-launcher/internal/profile"
)

// ErrNotInteractive is returned when a prompt is needed but stdin is not a terminal.
var ErrNotInteractive = errors.New("interactive prompt requires a terminal; pass --profile, --dotfiles/--no-dotfiles and --yes")

// TerminalPrompter asks questions with pterm's interactive widgets.
type TerminalPrompter struct {
	in *os.File
}

// NewTerminalPrompter returns a prompter reading from stdin.
func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{in: os.Stdin}
}

func (p *TerminalPrompter) interactive() bool {
	fd := p.in.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ChoiceLabel is the selection entry for p, e.g. "full      Base + UX + workloads (recommended)".
func ChoiceLabel(p profile.Profile) string {
	label := fmt.Sprintf("%-9s %s", p.Key, p.Blurb)
	if p.Recommended {
		label += " (recommended)"
	}
	return label
}

// SelectProfile lets the operator pick a profile, preselecting defaultKey.
func (p *TerminalPrompter) SelectProfile(profiles []profile.Profile, defaultKey string) (string, error) {
	if !p.interactive() {
		return "", ErrNotInteractive
	}

	labels := make([]string, len(profiles))
	keys := make(map[string]string, len(profiles))
	var defaultLabel string
	for i, prof := range profiles {
		labels[i] = ChoiceLabel(prof)
		keys[labels[i]] = prof.Key
		if prof.Key == defaultKey {
			defaultLabel = labels[i]
		}
	}

	sel := pterm.DefaultInteractiveSelect.WithOptions(labels).WithMaxHeight(len(labels))
	if defaultLabel != "" {
		sel = sel.WithDefaultOption(defaultLabel)
	}
	choice, err := sel.Show("Choose a setup profile")
	if err != nil {
		return "", fmt.Errorf("profile selection: %w", err)
	}
	return keys[choice], nil
}

// Confirm asks a yes/no question.
func (p *TerminalPrompter) Confirm(question string, defaultYes bool) (bool, error) {
	if !p.interactive() {
		return false, ErrNotInteractive
	}
	ok, err := pterm.DefaultInteractiveConfirm.WithDefaultValue(defaultYes).Show(question)
	if err != nil {
		return false, fmt.Errorf("confirmation: %w", err)
	}
	return ok, nil
}
