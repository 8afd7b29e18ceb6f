// Package clockui provides the Bubble Tea clock interface.
package clockui

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tuiclock/internal/canvas"
	"github.com/verte-zerg/tuiclock/internal/face"
	"github.com/verte-zerg/tuiclock/internal/theme"
)

// Options controls what the face shows.
type Options struct {
	Theme       theme.Theme
	ShowSeconds bool
	Smooth      bool
	ShowDate    bool
	Dial        bool
	Divisions   bool
	FrameEvery  time.Duration
}

// Frame owns one face and the braille canvas it is drawn on.
type Frame struct {
	opts    Options
	face    *face.State
	canvas  *canvas.Canvas
	pressed bool
}

// NewFrame returns a frame with no size. Call Resize before Render.
func NewFrame(opts Options) *Frame {
	f := &Frame{opts: opts}
	spec, hands := f.styled(0, 0)
	f.face = face.New(spec, hands)
	f.face.SetSmooth(opts.Smooth)
	f.face.SetShowSeconds(opts.ShowSeconds)
	return f
}

// Face exposes the underlying face state.
func (f *Frame) Face() *face.State {
	return f.face
}

// Options returns the current display options.
func (f *Frame) Options() Options {
	return f.opts
}

// Resize lays the face out over a cols x rows cell area.
func (f *Frame) Resize(cols, rows int) {
	if cols <= 0 || rows <= 0 {
		f.canvas = nil
		return
	}
	if f.canvas != nil && f.canvas.Cols() == cols && f.canvas.Rows() == rows {
		return
	}
	f.canvas = canvas.New(cols, rows)
	f.restyle()
	f.face.SetBounds(f.canvas.Bounds())
}

// SetTheme switches the color scheme.
func (f *Frame) SetTheme(th theme.Theme) {
	f.opts.Theme = th
	f.restyle()
}

// SetPressed switches between the normal and pressed styles.
func (f *Frame) SetPressed(pressed bool) {
	if f.pressed == pressed {
		return
	}
	f.pressed = pressed
	f.restyle()
}

// Pressed reports whether the pressed style is active.
func (f *Frame) Pressed() bool {
	return f.pressed
}

// ToggleSeconds shows or hides the second hand.
func (f *Frame) ToggleSeconds() {
	f.opts.ShowSeconds = !f.opts.ShowSeconds
	f.face.SetShowSeconds(f.opts.ShowSeconds)
}

// Refresh forces cached geometry to be rebuilt on the next render.
func (f *Frame) Refresh() {
	f.face.Invalidate()
}

// Synchronise feeds a time sample to the face.
func (f *Frame) Synchronise(sample face.TimeSample) face.Angles {
	return f.face.Synchronise(sample)
}

// Render draws the face and returns one string per cell row. paint may be nil.
func (f *Frame) Render(paint canvas.PaintFunc) []string {
	if f.canvas == nil {
		return nil
	}
	f.canvas.Clear()
	f.face.DrawMain(f.canvas)
	f.face.DrawHands(f.canvas)
	if f.opts.ShowDate {
		if label := face.DateLabel(f.face.Sample()); label != "" && f.canvas.Rows() >= 4 {
			f.canvas.CenterText(dateRow(f.canvas.Rows()), label, f.opts.Theme.Date)
		}
	}
	return f.canvas.Lines(paint)
}

func (f *Frame) restyle() {
	w, h := 0, 0
	if f.canvas != nil {
		w, h = f.canvas.DotWidth(), f.canvas.DotHeight()
	}
	spec, hands := f.styled(w, h)
	if f.face == nil {
		return
	}
	f.face.SetSpec(spec)
	f.face.SetHands(hands)
}

func (f *Frame) styled(width, height int) (face.Spec, face.Hands) {
	spec := face.DefaultSpec(width, height)
	if f.opts.Divisions {
		spec = spec.WithDivisions()
	}
	if f.opts.Dial {
		spec = spec.WithDial()
	}
	return f.opts.Theme.Apply(spec, face.DefaultHands(width, height), f.pressed)
}

// dateRow places the date halfway between the pivot and the 6 o'clock tick.
func dateRow(rows int) int {
	return rows/2 + rows/4
}

// NewPainter returns a PaintFunc that caches one lipgloss style per color.
// A nil renderer uses the lipgloss default.
func NewPainter(r *lipgloss.Renderer) canvas.PaintFunc {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	styles := map[string]lipgloss.Style{}
	return func(color, text string) string {
		style, ok := styles[color]
		if !ok {
			style = r.NewStyle().Foreground(lipgloss.Color(color))
			styles[color] = style
		}
		return style.Render(text)
	}
}
