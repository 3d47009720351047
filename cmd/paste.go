package cmd

import (
	"github.com/spf13/cobra"
)

var pasteCmd = &cobra.Command{
	Use:   "paste",
	Short: "Process the URL currently on the clipboard",
	Long:  `Read the clipboard, transform the URL found there and copy the result back.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := initializeGlobalState()

		ctrl := newController(cmd, settings)
		ctrl.PasteAndProcess(cmd.Context())
		return report(cmd, ctrl)
	},
}

func init() {
	rootCmd.AddCommand(pasteCmd)
}
