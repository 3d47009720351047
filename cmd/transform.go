package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/treeflip/treeflip/internal/transform"
)

var transformCmd = &cobra.Command{
	Use:   "transform <url>",
	Short: "Print the transformed URL without touching the clipboard",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := initializeGlobalState()

		if !urlValidator(settings).Valid(args[0]) {
			return fmt.Errorf("not a valid URL: %q", args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), transform.URL(args[0]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(transformCmd)
}
