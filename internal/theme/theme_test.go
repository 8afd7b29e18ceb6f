package theme

import (
	"strings"
	"testing"

	"github.com/verte-zerg/tuiclock/internal/face"
)

func TestLookup(t *testing.T) {
	th, err := Lookup("")
	if err != nil || th.Name != DefaultName {
		t.Fatalf("expected default theme, got %q (%v)", th.Name, err)
	}
	th, err = Lookup(" Amber ")
	if err != nil || th.Name != "amber" {
		t.Fatalf("expected amber theme, got %q (%v)", th.Name, err)
	}
	_, err = Lookup("neon")
	if err == nil || !strings.Contains(err.Error(), "available: grey") {
		t.Fatalf("expected unknown theme error listing names, got %v", err)
	}
}

func TestNextCycles(t *testing.T) {
	names := Names()
	cur := names[0]
	for i := 0; i < len(names); i++ {
		cur = Next(cur).Name
	}
	if cur != names[0] {
		t.Fatalf("expected to cycle back to %q, got %q", names[0], cur)
	}
	if Next("unknown").Name != names[0] {
		t.Fatalf("expected unknown theme to restart the cycle")
	}
}

func TestWithOverrides(t *testing.T) {
	base, _ := Lookup("grey")
	red := "#FF0000"
	empty := ""
	th := base.WithOverrides(Overrides{Hour: &red, Minute: &empty})
	if th.Hour != red {
		t.Fatalf("expected hour override, got %q", th.Hour)
	}
	if th.Minute != base.Minute {
		t.Fatalf("expected empty override to keep theme color, got %q", th.Minute)
	}
}

func TestApplyPressed(t *testing.T) {
	th, _ := Lookup("grey")
	spec, hands := th.Apply(face.DefaultSpec(80, 80), face.DefaultHands(80, 80), false)
	if spec.Cardinal.Color != th.Ticks || hands.Hour.Color != th.Hour || hands.Second.Color != th.Second {
		t.Fatalf("unexpected colors %+v %+v", spec.Cardinal, hands)
	}
	spec, hands = th.Apply(spec, hands, true)
	if spec.SubCardinal.Color != th.Pressed || hands.Minute.Color != th.Pressed {
		t.Fatalf("expected pressed colors, got %q %q", spec.SubCardinal.Color, hands.Minute.Color)
	}
	if hands.Second.Color != th.Second {
		t.Fatalf("expected second hand to keep its color while pressed")
	}
}

func TestThemesDefineFooter(t *testing.T) {
	for _, name := range Names() {
		th, _ := Lookup(name)
		if th.Footer == "" {
			t.Fatalf("theme %q has no footer color", name)
		}
	}
}
