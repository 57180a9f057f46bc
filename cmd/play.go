package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Jump straight into a module",
	RunE: func(cmd *cobra.Command, args []string) error {
		module, _ := cmd.Flags().GetInt("module")
		if module < 1 {
			return fmt.Errorf("--module must be 1 or greater, got %d", module)
		}
		return runApp(cmd, module)
	},
}

func init() {
	playCmd.Flags().Int("module", 1, "Module number to start (1-based, see `consultquest modules`)")
}
