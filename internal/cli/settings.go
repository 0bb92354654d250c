package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/bgtint/internal/settings"
)

var settingsTool string

// settingsCmd represents the settings command.
var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Open the system appearance settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return settings.Open(newLogger(cmd), settingsTool)
	},
}

func init() {
	settingsCmd.Flags().StringVar(&settingsTool, "tool", settings.DefaultTool, "settings application to launch")
}
