// Package main provides the CLI entrypoint for tuiclock.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/tuiclock/internal/clock"
	"github.com/verte-zerg/tuiclock/internal/clockui"
	"github.com/verte-zerg/tuiclock/internal/config"
	"github.com/verte-zerg/tuiclock/internal/logging"
	"github.com/verte-zerg/tuiclock/internal/model"
	"github.com/verte-zerg/tuiclock/internal/store"
	"github.com/verte-zerg/tuiclock/internal/theme"
)

const maxFrameMs = 1000

var (
	clockTheme     string
	clockSeconds   bool
	clockSmooth    bool
	clockDate      bool
	clockDial      bool
	clockDivisions bool
	clockFrameMs   int
	clockAt        string
	clockLogFile   string

	debugLog bool
	dbPath   string

	cliLogger = logging.New(os.Stderr, false)
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tuiclock",
		Short:         "Analog clock for the terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debugLog {
				cliLogger.SetLevel(log.DebugLevel)
			}
		},
		RunE: runClockCmd,
	}

	defaults := model.DefaultConfig()
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&clockTheme, "theme", defaults.Theme, "color theme ("+strings.Join(theme.Names(), ", ")+")")
	flags.BoolVar(&clockSeconds, "seconds", defaults.ShowSeconds, "show the second hand")
	flags.BoolVar(&clockSmooth, "smooth", defaults.Smooth, "sweep the second hand between ticks")
	flags.BoolVar(&clockDate, "date", defaults.ShowDate, "show the date on the face")
	flags.BoolVar(&clockDial, "dial", defaults.Dial, "draw the outer dial ring")
	flags.BoolVar(&clockDivisions, "divisions", defaults.Divisions, "draw minute divisions")
	flags.StringVar(&clockAt, "at", "", "freeze the clock at HH:MM[:SS] (simulator mode)")
	flags.BoolVar(&debugLog, "debug", false, "enable debug logging")
	flags.StringVar(&dbPath, "db", "", "alarm database path (default: XDG data dir)")
	rootCmd.Flags().IntVar(&clockFrameMs, "frame-ms", defaults.FrameMs, "redraw interval in milliseconds")
	rootCmd.Flags().StringVar(&clockLogFile, "log-file", "", "log file (default: XDG state dir)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newSnapshotCmd())
	rootCmd.AddCommand(newAlarmCmd())

	return rootCmd
}

func runClockCmd(cmd *cobra.Command, _ []string) error {
	cfg, th, err := resolveClockConfig(cmd)
	if err != nil {
		return err
	}

	logPath := clockLogFile
	if logPath == "" {
		logPath = config.DefaultLogPath()
	}
	logger, logCloser, err := logging.OpenFile(logPath, debugLog)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := logCloser.Close(); cerr != nil {
			logErrf("failed to close log: %v", cerr)
		}
	}()

	var src clock.Source = clock.NewSystem()
	if cfg.At != nil {
		src = clock.Fixed{At: *cfg.At}
	}

	var alarms clockui.AlarmStore
	st, err := store.Open(resolveDBPath())
	if err != nil {
		logger.Warn("running without alarms", "err", err)
	} else {
		alarms = st
		defer func() {
			if cerr := st.Close(); cerr != nil {
				logErrf("failed to close db: %v", cerr)
			}
		}()
	}

	logger.Info("starting clock", "theme", th.Name, "frame_ms", cfg.FrameMs, "simulated", cfg.At != nil)
	m := clockui.NewModel(clockOptions(cfg, th), src, alarms, logger)
	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// resolveClockConfig merges defaults, the config file and flags, in that order.
func resolveClockConfig(cmd *cobra.Command) (model.Config, theme.Theme, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, theme.Theme{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "theme", &clockTheme, fileCfg.Clock.Theme)
	applyBoolConfig(cmd, "seconds", &clockSeconds, fileCfg.Clock.Seconds)
	applyBoolConfig(cmd, "smooth", &clockSmooth, fileCfg.Clock.Smooth)
	applyBoolConfig(cmd, "date", &clockDate, fileCfg.Clock.Date)
	applyBoolConfig(cmd, "dial", &clockDial, fileCfg.Clock.Dial)
	applyBoolConfig(cmd, "divisions", &clockDivisions, fileCfg.Clock.Divisions)
	applyIntConfig(cmd, "frame-ms", &clockFrameMs, fileCfg.Clock.FrameMs)

	cfg := model.Config{
		Theme:       clockTheme,
		ShowSeconds: clockSeconds,
		Smooth:      clockSmooth,
		ShowDate:    clockDate,
		Dial:        clockDial,
		Divisions:   clockDivisions,
		FrameMs:     clockFrameMs,
	}
	if clockAt != "" {
		at, err := clock.ParseTimeOfDay(clockAt, time.Now())
		if err != nil {
			return model.Config{}, theme.Theme{}, fmt.Errorf("invalid --at value: %w", err)
		}
		cfg.At = &at
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, theme.Theme{}, err
	}

	th, err := theme.Lookup(cfg.Theme)
	if err != nil {
		return model.Config{}, theme.Theme{}, fmt.Errorf("invalid --theme value: %w", err)
	}
	th = th.WithOverrides(theme.Overrides{
		Ticks:   fileCfg.Colors.Ticks,
		Pressed: fileCfg.Colors.Pressed,
		Hour:    fileCfg.Colors.Hour,
		Minute:  fileCfg.Colors.Minute,
		Second:  fileCfg.Colors.Second,
		Dial:    fileCfg.Colors.Dial,
		Date:    fileCfg.Colors.Date,
	})
	cliLogger.Debug("resolved config", "theme", th.Name, "seconds", cfg.ShowSeconds, "smooth", cfg.Smooth)
	return cfg, th, nil
}

func clockOptions(cfg model.Config, th theme.Theme) clockui.Options {
	return clockui.Options{
		Theme:       th,
		ShowSeconds: cfg.ShowSeconds,
		Smooth:      cfg.Smooth,
		ShowDate:    cfg.ShowDate,
		Dial:        cfg.Dial,
		Divisions:   cfg.Divisions,
		FrameEvery:  time.Duration(cfg.FrameMs) * time.Millisecond,
	}
}

func resolveDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	return config.DefaultDBPath()
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
		cliLogger.Info("created config", "path", path)
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Lookup(name) == nil || cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	defaults := model.DefaultConfig()
	return fmt.Sprintf(`# tuiclock configuration
# Uncomment a value to enable it. CLI flags override config values.

[clock]
# theme = %q          # One of: %s
# seconds = %t         # Show the second hand
# smooth = %t          # Sweep the second hand between ticks
# date = %t            # Show the date on the face
# dial = %t           # Draw the outer dial ring
# divisions = %t      # Draw minute divisions
# frame-ms = %d         # Redraw interval in milliseconds

[colors]
# Override individual theme colors with hex values.
# ticks = "#9E9E9E"
# pressed = "#2196F3"
# hour = "#9E9E9E"
# minute = "#9E9E9E"
# second = "#F44336"
# dial = "#4A4A4A"
# date = "#B0B0B0"
`,
		defaults.Theme,
		strings.Join(theme.Names(), ", "),
		defaults.ShowSeconds,
		defaults.Smooth,
		defaults.ShowDate,
		defaults.Dial,
		defaults.Divisions,
		defaults.FrameMs,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.FrameMs <= 0 {
		return fmt.Errorf("--frame-ms must be > 0")
	}
	if cfg.FrameMs > maxFrameMs {
		return fmt.Errorf("--frame-ms must be <= %d", maxFrameMs)
	}
	return nil
}

func logErrf(format string, args ...any) {
	cliLogger.Error(fmt.Sprintf(format, args...))
}

func logErrln(args ...any) {
	cliLogger.Error(strings.TrimSuffix(fmt.Sprintln(args...), "\n"))
}
