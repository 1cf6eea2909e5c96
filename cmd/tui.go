package cmd

import (
	"github.com/spf13/cobra"

	"github.com/akbaralfaidah/sentimen-splitbill/internal/ui"
)

// tuiCmd launches the Bubble Tea TUI.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive viewer",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func runTUI() error {
	return ui.Run(ui.Options{
		Config: cfg,
		Logger: logger,
		Load:   loadStore,
	})
}
