package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"setup-launcher/internal/profile"
	"setup-launcher/internal/ui"
)

// profilesCmd prints the profile guide without running anything.
var profilesCmd = &cobra.Command{
	Use:     "profiles",
	Aliases: []string{"ls"},
	Short:   "List available setup profiles",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return ui.NewConsole(os.Stdout).ProfileGuide(profile.Default().All())
	},
}

func init() {
	rootCmd.AddCommand(profilesCmd)
}
