package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/treeflip/treeflip/internal/config"
)

var (
	categoryStyle = lipgloss.NewStyle().Bold(true)
	descStyle     = lipgloss.NewStyle().Faint(true)
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the current settings",
	Long:  `List every setting with its current value and where the settings file lives.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := initializeGlobalState()

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Settings file: %s\n", config.GetSettingsPath())

		meta := config.GetSettingsMetadata()
		for _, category := range config.CategoryOrder() {
			fmt.Fprintf(out, "\n%s\n", categoryStyle.Render(category))
			for _, m := range meta[category] {
				fmt.Fprintf(out, "  %-22s %s\n", m.Label, settings.FormatValue(m.Key))
				fmt.Fprintf(out, "  %s\n", descStyle.Render(fmt.Sprintf("%s (%s)", m.Description, m.Key)))
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
}
