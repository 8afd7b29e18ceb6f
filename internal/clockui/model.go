package clockui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/verte-zerg/tuiclock/internal/alarm"
	"github.com/verte-zerg/tuiclock/internal/canvas"
	"github.com/verte-zerg/tuiclock/internal/clock"
	"github.com/verte-zerg/tuiclock/internal/logging"
	"github.com/verte-zerg/tuiclock/internal/model"
	"github.com/verte-zerg/tuiclock/internal/theme"
)

const (
	viewClock = iota
	viewAlarms
	viewAddAlarm
)

// DefaultFrameEvery is the redraw interval when none is configured.
const DefaultFrameEvery = 100 * time.Millisecond

// AlarmStore is the persistence the clock needs for alarms.
type AlarmStore interface {
	InsertAlarm(ctx context.Context, a model.Alarm) (int64, error)
	ListAlarms(ctx context.Context) ([]model.Alarm, error)
	SetAlarmEnabled(ctx context.Context, id int64, enabled bool) error
	DeleteAlarm(ctx context.Context, id int64) error
	RecordFired(ctx context.Context, ev model.AlarmEvent) (int64, error)
}

type frameMsg time.Time

var (
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	modalStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A")).
			Padding(1, 2)
)

// Model implements the Bubble Tea clock UI.
type Model struct {
	frame  *Frame
	src    clock.Source
	store  AlarmStore
	logger *log.Logger
	paint  canvas.PaintFunc

	width  int
	height int
	view   int

	alarms  []model.Alarm
	watcher *alarm.Watcher
	ringing []model.Alarm
	errMsg  string

	alarmTable table.Model
	alarmInput textinput.Model
	inputError string
}

// NewModel constructs a clock UI model. st may be nil, which disables alarms.
func NewModel(opts Options, src clock.Source, st AlarmStore, logger *log.Logger) *Model {
	if opts.FrameEvery <= 0 {
		opts.FrameEvery = DefaultFrameEvery
	}
	if logger == nil {
		logger = logging.Discard()
	}
	m := &Model{
		frame:   NewFrame(opts),
		src:     src,
		store:   st,
		logger:  logger,
		paint:   NewPainter(nil),
		watcher: alarm.NewWatcher(),
	}
	m.initAlarmTable()
	m.initAlarmInput()
	m.loadAlarms()
	m.frame.Synchronise(clock.Sample(src))
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.tick()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case frameMsg:
		m.onFrame()
		return m, m.tick()
	case tea.MouseMsg:
		m.onMouse(msg)
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.view {
		case viewAddAlarm:
			return m.updateAlarmInput(msg)
		case viewAlarms:
			return m.updateAlarmList(msg)
		default:
			return m.updateClock(msg)
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	switch m.view {
	case viewAddAlarm:
		return fitLines(m.renderAlarmModal(), m.width, m.height)
	case viewAlarms:
		body := fitLines(m.renderAlarmList(), m.width, m.bodyHeight())
		return body + "\n" + fitLines(m.renderFooter(), m.width, 1)
	}
	if len(m.ringing) > 0 {
		return fitLines(m.renderBanner(), m.width, m.height)
	}
	lines := m.frame.Render(m.paint)
	body := lipgloss.Place(m.width, m.bodyHeight(), lipgloss.Center, lipgloss.Center, strings.Join(lines, "\n"))
	return body + "\n" + fitLines(m.renderFooter(), m.width, 1)
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.frame.Options().FrameEvery, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *Model) onFrame() {
	sample := clock.Sample(m.src)
	m.frame.Synchronise(sample)
	due := m.watcher.Check(m.alarms, m.src.Now())
	for _, a := range due {
		m.fire(a)
	}
}

func (m *Model) fire(a model.Alarm) {
	m.ringing = append(m.ringing, a)
	m.logger.Info("alarm fired", "id", a.ID, "time", a.TimeString(), "label", a.Label)
	if m.store == nil {
		return
	}
	ev := model.AlarmEvent{AlarmID: a.ID, Label: a.Label, FiredAt: m.src.Now()}
	if _, err := m.store.RecordFired(context.Background(), ev); err != nil {
		m.setError("failed to record alarm", err)
	}
}

func (m *Model) onMouse(msg tea.MouseMsg) {
	if m.view != viewClock || msg.Button != tea.MouseButtonLeft {
		return
	}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Y < m.bodyHeight() {
			m.frame.SetPressed(true)
		}
	case tea.MouseActionRelease:
		m.frame.SetPressed(false)
	}
}

func (m *Model) updateClock(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if len(m.ringing) > 0 {
		if msg.Type == tea.KeyEnter || msg.Type == tea.KeyEsc || msg.String() == " " {
			m.ringing = m.ringing[1:]
		}
		return m, nil
	}
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "t":
		th := theme.Next(m.frame.Options().Theme.Name)
		m.frame.SetTheme(th)
		m.logger.Debug("theme changed", "theme", th.Name)
	case "s":
		m.frame.ToggleSeconds()
	case "r":
		m.frame.Refresh()
		m.loadAlarms()
	case "a":
		if m.store == nil {
			m.errMsg = "alarms are unavailable without a database"
			return m, nil
		}
		m.view = viewAlarms
		m.alarmTable.Focus()
		m.refreshAlarmTable()
	}
	return m, nil
}

func (m *Model) updateAlarmList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc", "a":
		m.view = viewClock
		m.alarmTable.Blur()
		return m, nil
	case "n":
		return m.startAlarmInput()
	case "x", "delete":
		if a, ok := m.selectedAlarm(); ok {
			if err := m.store.DeleteAlarm(context.Background(), a.ID); err != nil {
				m.setError("failed to delete alarm", err)
			}
			m.loadAlarms()
		}
		return m, nil
	case " ", "e":
		if a, ok := m.selectedAlarm(); ok {
			if err := m.store.SetAlarmEnabled(context.Background(), a.ID, !a.Enabled); err != nil {
				m.setError("failed to update alarm", err)
			}
			m.loadAlarms()
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.alarmTable, cmd = m.alarmTable.Update(msg)
	return m, cmd
}

func (m *Model) startAlarmInput() (tea.Model, tea.Cmd) {
	m.view = viewAddAlarm
	m.inputError = ""
	m.alarmInput.SetValue("")
	return m, m.alarmInput.Focus()
}

func (m *Model) updateAlarmInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.view = viewAlarms
		m.inputError = ""
		m.alarmInput.Blur()
		return m, nil
	case tea.KeyEnter:
		a, err := parseAlarmInput(m.alarmInput.Value())
		if err != nil {
			m.inputError = err.Error()
			return m, nil
		}
		a.CreatedAt = m.src.Now()
		if _, err := m.store.InsertAlarm(context.Background(), a); err != nil {
			m.inputError = err.Error()
			return m, nil
		}
		m.logger.Info("alarm added", "time", a.TimeString(), "label", a.Label)
		m.view = viewAlarms
		m.inputError = ""
		m.alarmInput.Blur()
		m.loadAlarms()
		return m, nil
	}
	var cmd tea.Cmd
	m.alarmInput, cmd = m.alarmInput.Update(msg)
	return m, cmd
}

// parseAlarmInput reads "HH:MM [label]".
func parseAlarmInput(value string) (model.Alarm, error) {
	fields := strings.SplitN(strings.TrimSpace(value), " ", 2)
	hour, minute, err := alarm.Parse(fields[0])
	if err != nil {
		return model.Alarm{}, err
	}
	a := model.Alarm{Hour: hour, Minute: minute, Enabled: true}
	if len(fields) == 2 {
		a.Label = strings.TrimSpace(fields[1])
	}
	return a, nil
}

func (m *Model) loadAlarms() {
	if m.store == nil {
		return
	}
	alarms, err := m.store.ListAlarms(context.Background())
	if err != nil {
		m.setError("failed to load alarms", err)
		return
	}
	m.alarms = alarms
	m.refreshAlarmTable()
}

func (m *Model) setError(what string, err error) {
	m.errMsg = fmt.Sprintf("%s: %v", what, err)
	m.logger.Error(what, "err", err)
}

func (m *Model) bodyHeight() int {
	return maxInt(1, m.height-1)
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	m.frame.Resize(m.width, m.bodyHeight())
	m.alarmTable.SetWidth(m.width)
	m.alarmTable.SetHeight(maxInt(1, m.bodyHeight()-2))
	promptWidth := lipgloss.Width(m.alarmInput.Prompt)
	m.alarmInput.Width = maxInt(10, modalInnerWidth(m.width)-promptWidth)
}

func (m *Model) renderFooter() string {
	segments := []string{m.frame.Options().Theme.Name}
	segments = append(segments, m.nextAlarmSegment())
	switch m.view {
	case viewAlarms:
		segments = append(segments, "n new · space toggle · x delete · esc back")
	default:
		segments = append(segments, "t theme · s seconds · a alarms · q quit")
	}
	footerStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.frame.Options().Theme.Footer))
	footer := footerStyle.Render(strings.Join(segments, "  "))
	if m.errMsg != "" {
		footer = errorStyle.Render(m.errMsg) + "  " + footer
	}
	return footer
}

func (m *Model) nextAlarmSegment() string {
	if m.store == nil {
		return "alarms off"
	}
	now := m.src.Now()
	a, at, ok := alarm.Next(m.alarms, now)
	if !ok {
		return "no alarms"
	}
	next := "next " + a.TimeString()
	if a.Label != "" {
		next += " " + a.Label
	}
	return next + " " + alarm.FormatUntil(at.Sub(now))
}

func (m *Model) renderBanner() string {
	a := m.ringing[0]
	title := titleStyle.Render("Alarm " + a.TimeString())
	body := []string{title}
	if a.Label != "" {
		body = append(body, a.Label)
	}
	if more := len(m.ringing) - 1; more > 0 {
		body = append(body, mutedStyle.Render(fmt.Sprintf("%d more", more)))
	}
	body = append(body, mutedStyle.Render("Enter to dismiss"))
	box := modalStyle.Width(modalWidth(m.width)).Render(strings.Join(body, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
