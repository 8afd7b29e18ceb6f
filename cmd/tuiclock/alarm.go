package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/tuiclock/internal/alarm"
	"github.com/verte-zerg/tuiclock/internal/model"
	"github.com/verte-zerg/tuiclock/internal/store"
)

var historyLast int

func newAlarmCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "alarm",
		Short: "Manage alarms",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "add HH:MM [label]",
		Short: "Add a daily alarm",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runAlarmAddCmd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List alarms",
		Args:  cobra.NoArgs,
		RunE:  runAlarmListCmd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:     "rm ID",
		Aliases: []string{"remove"},
		Short:   "Remove an alarm",
		Args:    cobra.ExactArgs(1),
		RunE:    runAlarmRemoveCmd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "enable ID",
		Short: "Enable an alarm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlarmToggle(cmd, args[0], true)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "disable ID",
		Short: "Disable an alarm",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAlarmToggle(cmd, args[0], false)
		},
	})
	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "Show fired alarms",
		Args:  cobra.NoArgs,
		RunE:  runAlarmHistoryCmd,
	}
	historyCmd.Flags().IntVar(&historyLast, "last", 20, "show the last N entries (0 for all)")
	cmd.AddCommand(historyCmd)
	return cmd
}

func withStore(fn func(st *store.Store) error) error {
	st, err := store.Open(resolveDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v", cerr)
		}
	}()
	return fn(st)
}

func runAlarmAddCmd(cmd *cobra.Command, args []string) error {
	hour, minute, err := alarm.Parse(args[0])
	if err != nil {
		return err
	}
	a := model.Alarm{
		Hour:      hour,
		Minute:    minute,
		Label:     strings.TrimSpace(strings.Join(args[1:], " ")),
		Enabled:   true,
		CreatedAt: time.Now(),
	}
	return withStore(func(st *store.Store) error {
		id, err := st.InsertAlarm(context.Background(), a)
		if err != nil {
			return fmt.Errorf("failed to add alarm: %w", err)
		}
		cliLogger.Debug("alarm added", "id", id)
		return writeLine(cmd.OutOrStdout(), fmt.Sprintf("added alarm %d at %s", id, a.TimeString()))
	})
}

func runAlarmListCmd(cmd *cobra.Command, _ []string) error {
	return withStore(func(st *store.Store) error {
		alarms, err := st.ListAlarms(context.Background())
		if err != nil {
			return fmt.Errorf("failed to list alarms: %w", err)
		}
		if len(alarms) == 0 {
			logErrln("No alarms. Add one with: tuiclock alarm add HH:MM [label]")
			return nil
		}
		return writeLines(cmd.OutOrStdout(), alarm.FormatAlarms(alarms, time.Now()))
	})
}

func runAlarmRemoveCmd(cmd *cobra.Command, args []string) error {
	id, err := parseAlarmID(args[0])
	if err != nil {
		return err
	}
	return withStore(func(st *store.Store) error {
		if err := st.DeleteAlarm(context.Background(), id); err != nil {
			return fmt.Errorf("failed to remove alarm: %w", err)
		}
		return writeLine(cmd.OutOrStdout(), fmt.Sprintf("removed alarm %d", id))
	})
}

func runAlarmToggle(cmd *cobra.Command, rawID string, enabled bool) error {
	id, err := parseAlarmID(rawID)
	if err != nil {
		return err
	}
	verb := "disabled"
	if enabled {
		verb = "enabled"
	}
	return withStore(func(st *store.Store) error {
		if err := st.SetAlarmEnabled(context.Background(), id, enabled); err != nil {
			return fmt.Errorf("failed to update alarm: %w", err)
		}
		return writeLine(cmd.OutOrStdout(), fmt.Sprintf("%s alarm %d", verb, id))
	})
}

func runAlarmHistoryCmd(cmd *cobra.Command, _ []string) error {
	if historyLast < 0 {
		return fmt.Errorf("--last must be >= 0")
	}
	return withStore(func(st *store.Store) error {
		events, err := st.ListFired(context.Background(), historyLast)
		if err != nil {
			return fmt.Errorf("failed to load alarm history: %w", err)
		}
		if len(events) == 0 {
			logErrln("No alarms have fired yet.")
			return nil
		}
		return writeLines(cmd.OutOrStdout(), alarm.FormatHistory(events))
	})
}

func parseAlarmID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid alarm id %q", raw)
	}
	return id, nil
}

func writeLine(w io.Writer, line string) error {
	if _, err := fmt.Fprintln(w, line); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func writeLines(w io.Writer, lines []string) error {
	for _, line := range lines {
		if err := writeLine(w, line); err != nil {
			return err
		}
	}
	return nil
}
