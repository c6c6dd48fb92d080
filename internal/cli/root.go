package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rileyhilliard/ttop/internal/config"
	"github.com/rileyhilliard/ttop/internal/dashboard"
	"github.com/rileyhilliard/ttop/internal/errors"
	"github.com/rileyhilliard/ttop/internal/probe"
	"github.com/rileyhilliard/ttop/internal/ui"
)

// Root command flags
var (
	configFlag  string
	plainFlag   bool
	noColorFlag bool
)

// rootCmd is the top-level ttop command: running it starts the dashboard.
var rootCmd = &cobra.Command{
	Use:   "ttop",
	Short: "Terminal system monitor",
	Long: `ttop is a top-style terminal system monitor.

It samples CPU usage, memory, task count, load averages, and uptime
once per second and renders them as a live dashboard.

Keyboard shortcuts:
  q / Ctrl+C  Quit
  g           Toggle the history graphs

Examples:
  ttop
  ttop --plain
  ttop --config ~/.config/ttop/config.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return rootCommand()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "path to config file")
	rootCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "disable colored output")
	rootCmd.Flags().BoolVar(&plainFlag, "plain", false, "plain output without the TUI")
}

// Execute runs the root command, printing any error and exiting non-zero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// rootCommand loads the display config and runs the dashboard, picking
// the plain renderer when the TUI cannot work (or was asked for).
func rootCommand() error {
	cfg, err := config.LoadOrDefault(configFlag)
	if err != nil {
		return err
	}

	applyColorPreferences(cfg)

	sampler := probe.New()

	if plainFlag || cfg.Plain || !stdoutIsTerminal() {
		return dashboard.RunPlain(sampler, termenv.NewOutput(os.Stdout))
	}

	var opts []tea.ProgramOption
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	p := tea.NewProgram(dashboard.NewModel(sampler), opts...)
	final, err := p.Run()
	if err != nil {
		return errors.WrapWithCode(err, errors.ErrRender,
			"Dashboard terminated unexpectedly",
			"Run with --plain if your terminal cannot drive the TUI")
	}

	if m, ok := final.(dashboard.Model); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}

// applyColorPreferences disables colors for the mono theme, the
// --no-color flag, and the NO_COLOR convention.
func applyColorPreferences(cfg *config.Config) {
	if noColorFlag || cfg.Theme == config.ThemeMono || os.Getenv("NO_COLOR") != "" {
		ui.DisableColors()
	}
}

func stdoutIsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
