package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/tuiclock/internal/canvas"
	"github.com/verte-zerg/tuiclock/internal/clock"
	"github.com/verte-zerg/tuiclock/internal/clockui"
)

var (
	snapshotWidth  int
	snapshotHeight int
	snapshotColor  bool
)

func newSnapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Print a single frame of the clock",
		Args:  cobra.NoArgs,
		RunE:  runSnapshotCmd,
	}
	cmd.Flags().IntVar(&snapshotWidth, "width", 0, "width in cells (default: terminal width)")
	cmd.Flags().IntVar(&snapshotHeight, "height", 0, "height in cells (default: terminal height - 1)")
	cmd.Flags().BoolVar(&snapshotColor, "color", false, "force colored output")
	return cmd
}

func runSnapshotCmd(cmd *cobra.Command, _ []string) error {
	if snapshotWidth < 0 || snapshotHeight < 0 {
		return fmt.Errorf("--width and --height must be >= 0")
	}
	cfg, th, err := resolveClockConfig(cmd)
	if err != nil {
		return err
	}
	width, height := snapshotWidth, snapshotHeight
	if width == 0 || height == 0 {
		termW, termH := canvas.TerminalSize()
		if width == 0 {
			width = termW
		}
		if height == 0 {
			height = termH - 1
		}
	}
	if width < 2 || height < 1 {
		return fmt.Errorf("snapshot area %dx%d is too small", width, height)
	}

	at := time.Now()
	if cfg.At != nil {
		at = *cfg.At
	}
	frame := clockui.NewFrame(clockOptions(cfg, th))
	frame.Resize(width, height)
	frame.Synchronise(clock.Sample(clock.Fixed{At: at}))

	var paint canvas.PaintFunc
	out := cmd.OutOrStdout()
	if canvas.ShouldUseColor(out, snapshotColor) {
		renderer := lipgloss.NewRenderer(out)
		if snapshotColor {
			renderer.SetColorProfile(termenv.TrueColor)
		}
		paint = clockui.NewPainter(renderer)
	}
	cliLogger.Debug("snapshot", "width", width, "height", height, "at", at.Format(time.TimeOnly))
	return writeLines(out, frame.Render(paint))
}

