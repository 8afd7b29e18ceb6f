package clockui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tuiclock/internal/alarm"
	"github.com/verte-zerg/tuiclock/internal/model"
)

func alarmColumns() []table.Column {
	return []table.Column{
		{Title: "ID", Width: 4},
		{Title: "Time", Width: 6},
		{Title: "On", Width: 4},
		{Title: "Next", Width: 10},
		{Title: "Label", Width: 24},
	}
}

func (m *Model) initAlarmTable() {
	t := table.New(
		table.WithColumns(alarmColumns()),
		table.WithHeight(1),
	)
	t.SetStyles(alarmTableStyles())
	m.alarmTable = t
}

func (m *Model) initAlarmInput() {
	input := textinput.New()
	input.Prompt = "Alarm: "
	input.Placeholder = "07:30 wake up"
	input.CharLimit = 64
	input.Cursor.SetMode(cursor.CursorBlink)
	m.alarmInput = input
}

func alarmTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func (m *Model) refreshAlarmTable() {
	now := m.src.Now()
	rows := make([]table.Row, 0, len(m.alarms))
	for _, a := range m.alarms {
		on := "no"
		next := "-"
		if a.Enabled {
			on = "yes"
			next = alarm.FormatUntil(alarm.NextAt(a, now).Sub(now))
		}
		rows = append(rows, table.Row{strconv.FormatInt(a.ID, 10), a.TimeString(), on, next, a.Label})
	}
	m.alarmTable.SetRows(rows)
	// SetRows on an empty table leaves the cursor at -1.
	if c := m.alarmTable.Cursor(); len(rows) > 0 && (c < 0 || c >= len(rows)) {
		m.alarmTable.SetCursor(minInt(maxInt(c, 0), len(rows)-1))
	}
}

func (m *Model) selectedAlarm() (model.Alarm, bool) {
	idx := m.alarmTable.Cursor()
	if idx < 0 || idx >= len(m.alarms) {
		return model.Alarm{}, false
	}
	return m.alarms[idx], true
}

func (m *Model) renderAlarmList() string {
	title := titleStyle.Render("Alarms")
	if len(m.alarms) == 0 {
		return title + "\n\n" + mutedStyle.Render("No alarms yet. Press n to add one.")
	}
	return title + "\n" + m.alarmTable.View()
}

func (m *Model) renderAlarmModal() string {
	body := []string{
		titleStyle.Render("New Alarm"),
		m.alarmInput.View(),
		mutedStyle.Render("HH:MM followed by an optional label"),
		mutedStyle.Render("Enter to save / Esc to cancel"),
	}
	if m.inputError != "" {
		body = append(body, errorStyle.Render(m.inputError))
	}
	box := modalStyle.Width(modalWidth(m.width)).Render(strings.Join(body, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
