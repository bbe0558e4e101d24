// Package ui renders the launcher's operator-facing output and prompts.
package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/pterm/pterm"

	"setup-launcher/internal/plan"
	"setup-launcher/internal/profile"
	"setup-launcher/internal/runner"
)

const ruleWidth = 60

// Console writes notices, tables and panels to a single writer.
// It implements runner.Reporter.
type Console struct {
	out io.Writer

	banner  lipgloss.Style
	failure lipgloss.Style
	success lipgloss.Style

	heading *color.Color
	muted   *color.Color
	running *color.Color
	done    *color.Color
	failed  *color.Color
	notice  *color.Color
}

var _ runner.Reporter = (*Console)(nil)

// NewConsole returns a Console writing to out. Styling degrades to plain text
// when out is not a terminal.
func NewConsole(out io.Writer) *Console {
	r := lipgloss.NewRenderer(out)
	box := r.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)

	return &Console{
		out:     out,
		banner:  box.BorderForeground(lipgloss.Color("6")),
		failure: box.BorderForeground(lipgloss.Color("1")).Foreground(lipgloss.Color("1")).Bold(true),
		success: box.BorderForeground(lipgloss.Color("2")).Foreground(lipgloss.Color("2")).Bold(true),
		heading: color.New(color.FgCyan, color.Bold),
		muted:   color.New(color.Faint),
		running: color.New(color.FgYellow, color.Bold),
		done:    color.New(color.FgGreen, color.Bold),
		failed:  color.New(color.FgRed, color.Bold),
		notice:  color.New(color.FgYellow),
	}
}

// Banner prints the wizard header.
func (c *Console) Banner() {
	fmt.Fprintln(c.out, c.banner.Render(
		c.heading.Sprint("Laptop Setup Wizard")+"\n"+c.muted.Sprint("Guided bootstrap for this machine"),
	))
}

// ProfileGuide prints the table of available profiles in catalog order.
func (c *Console) ProfileGuide(profiles []profile.Profile) error {
	data := pterm.TableData{{"Profile", "What it does", "Targets", "ETA"}}
	for _, p := range profiles {
		name := p.Title
		if p.Recommended {
			name += " (recommended)"
		}
		data = append(data, []string{
			name,
			p.Description,
			strings.Join(p.Targets, ", "),
			fmt.Sprintf("~%dm", p.ETAMinutes),
		})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("render profile table: %w", err)
	}
	c.heading.Fprintln(c.out, "Available profiles")
	fmt.Fprintln(c.out, table)
	return nil
}

// Plan prints the execution preview. Dry runs and real runs share it, so it
// depends only on its arguments.
func (c *Console) Plan(p profile.Profile, pl plan.Plan, etaMinutes int) error {
	data := pterm.TableData{{"#", "Step", "Command"}}
	for i, step := range pl.Steps {
		data = append(data, []string{strconv.Itoa(i + 1), step.Label, step.Display()})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("render plan table: %w", err)
	}
	c.heading.Fprintln(c.out, "Execution plan")
	fmt.Fprintln(c.out, table)
	fmt.Fprintf(c.out, "%s %s %s\n", c.muted.Sprint("Selected profile:"), p.Title, c.muted.Sprint("- "+p.Description))
	fmt.Fprintf(c.out, "%s ~%dm\n", c.muted.Sprint("Estimated total time:"), etaMinutes)
	c.rule("Execution")
	return nil
}

func (c *Console) rule(title string) {
	label := " " + title + " "
	left := (ruleWidth - len(label)) / 2
	right := ruleWidth - len(label) - left
	fmt.Fprintln(c.out, strings.Repeat("─", left)+c.heading.Sprint(label)+strings.Repeat("─", right))
}

// StepStarted prints the running notice for a step.
func (c *Console) StepStarted(_ int, step plan.Step) {
	fmt.Fprintf(c.out, "%s %s\n", c.running.Sprint("→ Running:"), step.Display())
}

// StepFinished prints the done notice with the step's duration.
func (c *Console) StepFinished(_ int, result runner.StepResult) {
	fmt.Fprintf(c.out, "%s %s %s\n", c.done.Sprint("✓ Done:"), result.Step.Display(), c.muted.Sprint("("+seconds(result.Elapsed)+")"))
}

// StepFailed prints the failed notice with the step's duration.
func (c *Console) StepFailed(_ int, result runner.StepResult) {
	fmt.Fprintf(c.out, "%s %s %s\n", c.failed.Sprint("✗ Failed:"), result.Step.Display(), c.muted.Sprint("("+seconds(result.Elapsed)+")"))
}

// PagerFixed reports that the git pager settings were rewritten.
func (c *Console) PagerFixed() {
	c.done.Fprintln(c.out, "✓ Fixed Git pager config")
}

// Aborted reports that the operator declined the confirmation.
func (c *Console) Aborted() {
	c.notice.Fprintln(c.out, "Aborted.")
}

// DryRunComplete reports that the plan was shown and nothing ran.
func (c *Console) DryRunComplete() {
	c.notice.Fprintln(c.out, "Dry run complete.")
}

// Failure prints the failure panel for an aborted run.
func (c *Console) Failure(out runner.Outcome) {
	var body string
	if stepErr, ok := out.Err.(*runner.StepError); ok {
		body = fmt.Sprintf("Step failed: %s\nExit code: %d", stepErr.Command, stepErr.ExitCode)
	} else {
		body = fmt.Sprintf("Step %d failed: %v", out.FailedStep, out.Err)
	}
	fmt.Fprintln(c.out, c.failure.Render("Setup failed\n\n"+body))
}

// Success prints the completion panel with the total run time.
func (c *Console) Success(elapsed time.Duration) {
	fmt.Fprintln(c.out, c.success.Render("All set. Enjoy your fresh setup!\nTotal time: "+seconds(elapsed)))
}

func seconds(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}
