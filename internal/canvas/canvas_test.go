package canvas

import (
	"bytes"
	"strings"
	"testing"

	"github.com/verte-zerg/tuiclock/internal/geom"
)

func TestSetFlipsRows(t *testing.T) {
	c := New(1, 1)
	c.Set(0, 3, "")
	if got := c.String(); got != string(rune(0x2801)) {
		t.Fatalf("expected top-left dot for y=3, got %q", got)
	}
	c.Clear()
	c.Set(1, 0, "")
	if got := c.String(); got != string(rune(0x2880)) {
		t.Fatalf("expected bottom-right dot for y=0, got %q", got)
	}
	if !c.IsSet(1, 0) || c.IsSet(0, 0) {
		t.Fatalf("unexpected IsSet results")
	}
}

func TestSetIgnoresOutOfRange(t *testing.T) {
	c := New(2, 2)
	c.Set(-1, 0, "")
	c.Set(0, -1, "")
	c.Set(4, 0, "")
	c.Set(0, 8, "")
	if strings.TrimSpace(c.String()) != "" {
		t.Fatalf("expected empty canvas, got %q", c.String())
	}
}

func TestDrawLineHorizontal(t *testing.T) {
	c := New(4, 1)
	c.DrawLine(geom.Segment{From: geom.Point{X: 0, Y: 0}, To: geom.Point{X: 7, Y: 0}}, geom.Pen{Width: 1})
	for x := 0; x < 8; x++ {
		if !c.IsSet(x, 0) {
			t.Fatalf("expected dot at x=%d", x)
		}
		if c.IsSet(x, 1) {
			t.Fatalf("unexpected dot above the line at x=%d", x)
		}
	}
	if got := c.String(); got != strings.Repeat(string(rune(0x28C0)), 4) {
		t.Fatalf("unexpected render %q", got)
	}
}

func TestDrawLineDiagonalEndpoints(t *testing.T) {
	c := New(5, 3)
	c.DrawLine(geom.Segment{From: geom.Point{X: 1, Y: 1}, To: geom.Point{X: 8, Y: 10}}, geom.Pen{})
	if !c.IsSet(1, 1) || !c.IsSet(8, 10) {
		t.Fatalf("expected both endpoints to be set")
	}
}

func TestDrawLineWidePen(t *testing.T) {
	c := New(5, 3)
	c.DrawLine(geom.Segment{From: geom.Point{X: 5, Y: 5}, To: geom.Point{X: 5, Y: 5}}, geom.Pen{Width: 4, Rounded: true})
	if !c.IsSet(5, 7) || !c.IsSet(3, 5) || !c.IsSet(6, 6) {
		t.Fatalf("expected a disc around the point")
	}
	if c.IsSet(7, 7) {
		t.Fatalf("expected rounded stamp to skip the corner")
	}

	sq := New(5, 3)
	sq.DrawLine(geom.Segment{From: geom.Point{X: 5, Y: 5}, To: geom.Point{X: 5, Y: 5}}, geom.Pen{Width: 4})
	if !sq.IsSet(7, 7) {
		t.Fatalf("expected square stamp to fill the corner")
	}
}

func TestLinesGroupsColorRuns(t *testing.T) {
	c := New(3, 1)
	c.Set(0, 0, "red")
	c.Set(2, 0, "red")
	c.Set(4, 0, "blue")
	var calls []string
	lines := c.Lines(func(color, text string) string {
		calls = append(calls, color+":"+text)
		return "<" + text + ">"
	})
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if len(calls) != 2 || !strings.HasPrefix(calls[0], "red:") || !strings.HasPrefix(calls[1], "blue:") {
		t.Fatalf("unexpected paint calls %v", calls)
	}
	if !strings.HasPrefix(lines[0], "<") || !strings.HasSuffix(lines[0], ">") {
		t.Fatalf("unexpected line %q", lines[0])
	}
}

func TestTextOverlay(t *testing.T) {
	c := New(10, 2)
	c.DrawLine(geom.Segment{From: geom.Point{X: 0, Y: 0}, To: geom.Point{X: 19, Y: 0}}, geom.Pen{})
	c.CenterText(1, "Thu", "")
	lines := c.Lines(nil)
	if lines[0] != "          " {
		t.Fatalf("expected blank top row, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "Thu") {
		t.Fatalf("expected centered text, got %q", lines[1])
	}
	if idx := strings.Index(lines[1], "Thu"); idx <= 0 {
		t.Fatalf("expected text after leading dots, got index %d", idx)
	}

	wide := New(4, 1)
	wide.Text(0, 0, "時計", "")
	if got := wide.String(); got != "時計" {
		t.Fatalf("expected wide runes to take two cells, got %q", got)
	}
	wide.Text(3, 0, "時", "")
	if got := wide.String(); got != "時計" {
		t.Fatalf("expected clipped wide rune to be skipped, got %q", got)
	}
}

func TestBounds(t *testing.T) {
	c := New(40, 12)
	b := c.Bounds()
	if b.Width() != 80 || b.Height() != 48 {
		t.Fatalf("unexpected bounds %+v", b)
	}
}

func TestShouldUseColorNonTerminal(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	var buf bytes.Buffer
	if ShouldUseColor(&buf, false) {
		t.Fatalf("expected no color for a buffer")
	}
	if !ShouldUseColor(&buf, true) {
		t.Fatalf("expected forced color")
	}
	t.Setenv("NO_COLOR", "1")
	if ShouldUseColor(&buf, true) {
		t.Fatalf("expected NO_COLOR to win")
	}
}
