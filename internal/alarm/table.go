package alarm

import (
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/tuiclock/internal/model"
)

// FormatAlarms renders alarms as aligned text lines for the CLI.
func FormatAlarms(alarms []model.Alarm, now time.Time) []string {
	headers := []string{"ID", "TIME", "ON", "NEXT", "LABEL"}
	rows := make([][]string, 0, len(alarms))
	for _, a := range alarms {
		on := "no"
		next := "-"
		if a.Enabled {
			on = "yes"
			next = FormatUntil(NextAt(a, now).Sub(now))
		}
		rows = append(rows, []string{strconv.FormatInt(a.ID, 10), a.TimeString(), on, next, a.Label})
	}
	return formatTable(headers, rows, map[int]bool{0: true})
}

// FormatHistory renders fired alarms as aligned text lines for the CLI.
func FormatHistory(events []model.AlarmEvent) []string {
	headers := []string{"FIRED", "ALARM", "LABEL"}
	rows := make([][]string, 0, len(events))
	for _, ev := range events {
		rows = append(rows, []string{ev.FiredAt.Format("2006-01-02 15:04"), strconv.FormatInt(ev.AlarmID, 10), ev.Label})
	}
	return formatTable(headers, rows, map[int]bool{1: true})
}

func formatTable(headers []string, rows [][]string, rightAlignCols map[int]bool) []string {
	colCount := len(headers)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	if colCount == 0 {
		return nil
	}

	widths := make([]int, colCount)
	for i, header := range headers {
		widths[i] = runewidth.StringWidth(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, formatRow(headers, widths, rightAlignCols))
	for _, row := range rows {
		lines = append(lines, formatRow(row, widths, rightAlignCols))
	}
	return lines
}

func formatRow(row []string, widths []int, rightAlignCols map[int]bool) string {
	var b strings.Builder
	for i := 0; i < len(widths); i++ {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(padCell(cell, widths[i], rightAlignCols[i]))
	}
	return strings.TrimRight(b.String(), " ")
}

func padCell(value string, width int, rightAlign bool) string {
	padding := width - runewidth.StringWidth(value)
	if padding <= 0 {
		return value
	}
	if rightAlign {
		return strings.Repeat(" ", padding) + value
	}
	return value + strings.Repeat(" ", padding)
}
