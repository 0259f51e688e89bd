// clicker is an incremental clicker game played in the terminal.
//
// Usage:
//
//	clicker                  - Play a game
//	clicker keys             - Show key bindings
//	clicker serve            - Start SSH server for remote play
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for a reproducible upgrade sequence
//	--config <path>      - Use a custom clicker config YAML
//	--log-file <path>    - Write logs to a file (default: discarded)
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-clicker/internal/config"
	"github.com/vovakirdan/tui-clicker/internal/core"
	"github.com/vovakirdan/tui-clicker/internal/platform/tui"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "clicker",
	Short: "TUI Clicker - An incremental clicker game in your terminal",
	Long: `TUI Clicker is an incremental game: click to earn points, spend them
on upgrades that raise the points earned per click or per tick.

Controls (default bindings):
  f then d    - Click (press and release)
  Up/Down     - Choose an upgrade
  Enter       - Buy the chosen upgrade
  Esc         - Deselect
  Q/Ctrl+C    - Quit

Examples:
  clicker
  clicker --seed 42
  clicker --config ./my-clicker.yaml
  clicker keys
  clicker serve --ssh :2222`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom clicker config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(serveCmd)
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("clicker needs an interactive terminal")
	}

	clicker, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	// Local play owns the screen, so logs only go to a file
	var out io.Writer = io.Discard
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if openErr != nil {
			return fmt.Errorf("open log file: %w", openErr)
		}
		defer f.Close()
		out = f
	}
	logger, err := newLogger(out, "clicker")
	if err != nil {
		return err
	}

	// Get terminal size
	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM)
	defer stop()

	logger.Info("game started", "seed", cfg.Seed, "width", cfg.ScreenW, "height", cfg.ScreenH)
	if err := tui.Run(ctx, clicker, cfg, logger); err != nil && ctx.Err() == nil {
		logger.Error("game failed", "error", err)
		return err
	}
	logger.Info("game finished")
	return nil
}

// newLogger creates a logger at the level named by --log-level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}
