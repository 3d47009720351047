package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/treeflip/treeflip/internal/clipboard"
	"github.com/treeflip/treeflip/internal/config"
	"github.com/treeflip/treeflip/internal/notify"
	"github.com/treeflip/treeflip/internal/opener"
	"github.com/treeflip/treeflip/internal/tui"
	"github.com/treeflip/treeflip/internal/utils"
	"github.com/treeflip/treeflip/internal/workflow"
)

// Version information - set via ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// Host capabilities, replaceable in tests
var (
	newClipboard = func() workflow.ClipboardPort { return clipboard.NewSystem() }
	newOpener    = func() workflow.ExternalOpener { return opener.NewBrowser() }
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "treeflip [url]",
	Short: "Turn /archive/ download URLs into /tree/ URLs and copy them",
	Long: `treeflip rewrites source-host archive URLs into their browsable tree form:
the first /archive/ segment becomes /tree/ and a trailing .tar.gz is dropped.
The result is copied to the clipboard and opened in the browser.

Without arguments an interactive terminal UI starts.`,
	Version:       Version,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := initializeGlobalState()

		if len(args) == 1 {
			ctrl := newController(cmd, settings)
			ctrl.ProcessText(cmd.Context(), args[0])
			return report(cmd, ctrl)
		}

		return startTUI(cmd, settings)
	},
}

// startTUI runs the interactive UI while holding the single-instance lock
func startTUI(cmd *cobra.Command, settings *config.Settings) error {
	isMaster, err := AcquireLock()
	if err != nil {
		return fmt.Errorf("acquiring lock: %w", err)
	}
	if !isMaster {
		return errors.New("treeflip is already running; use 'treeflip <url>' or 'treeflip paste' from scripts")
	}
	defer func() {
		if err := ReleaseLock(); err != nil {
			utils.Debug("Error releasing lock: %v", err)
		}
	}()

	tui.ApplyTheme(settings.General.Theme)

	n := tui.NewNotifier()
	ctrl := workflow.New(newClipboard(), pickOpener(cmd, settings), n, workflow.WithValidator(urlValidator(settings)))

	p := tea.NewProgram(tui.InitialRootModel(Version, ctrl, n), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// newController builds a headless controller that prints notifications to stderr
func newController(cmd *cobra.Command, settings *config.Settings) *workflow.Controller {
	var n notify.Notifier = notify.NewWriter(cmd.ErrOrStderr())
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		n = notify.Discard
	}
	return workflow.New(newClipboard(), pickOpener(cmd, settings), n, workflow.WithValidator(urlValidator(settings)))
}

// pickOpener returns the browser opener, or opener.Noop when --no-open or the
// auto_open setting turns opening off
func pickOpener(cmd *cobra.Command, settings *config.Settings) workflow.ExternalOpener {
	if noOpen, _ := cmd.Flags().GetBool("no-open"); noOpen || !settings.General.AutoOpen {
		return opener.Noop{}
	}
	return newOpener()
}

func urlValidator(settings *config.Settings) *clipboard.Validator {
	return clipboard.NewValidator(clipboard.WithSchemes(settings.General.AllowedSchemes...))
}

// report prints the result of a headless run and turns a failed workflow into an error
func report(cmd *cobra.Command, ctrl *workflow.Controller) error {
	// Paste failures leave the state untouched but still record an error
	if err := ctrl.Err(); err != nil || ctrl.State() == workflow.Error {
		return errReported{err}
	}
	if result := ctrl.Result(); result != "" {
		fmt.Fprintln(cmd.OutOrStdout(), result)
	}
	return nil
}

// errReported marks a failure the user already saw as a notification
type errReported struct{ err error }

func (e errReported) Error() string {
	if e.err == nil {
		return "workflow failed"
	}
	return e.err.Error()
}

func (e errReported) Unwrap() error { return e.err }

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		var reported errReported
		if !errors.As(err, &reported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().Bool("no-open", false, "Do not open the processed URL in the browser")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Print only the processed URL")
	rootCmd.SetVersionTemplate("treeflip version {{.Version}}\n")
}

// initializeGlobalState sets up directories and logging and returns the user settings
func initializeGlobalState() *config.Settings {
	if err := config.EnsureDirs(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create config directories: %v\n", err)
	}

	utils.ConfigureDebug(config.GetLogsDir())

	settings, err := config.LoadSettings()
	if err != nil {
		utils.Debug("Falling back to default settings: %v", err)
		settings = config.DefaultSettings()
	}
	utils.CleanupLogs(settings.General.LogRetentionCount)
	utils.Debug("treeflip %s (built %s) starting", Version, BuildTime)

	return settings
}
