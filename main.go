package main

import (
	"os"

	"setup-launcher/cmd"
)

// main runs the launcher and exits with its status: 0 on success, a declined
// confirmation or a dry run, 1 when selection fails or a provisioning step fails.
//
// The launcher is a thin front end over the repository's Makefile:
//   - a profile names an ordered list of make targets (Ansible playbooks)
//   - the optional dotfiles step runs last and is followed by a git pager fixup
//   - each target runs from the repository root with the terminal attached,
//     so Ansible's own output streams straight to the operator
func main() {
	os.Exit(cmd.Execute())
}
