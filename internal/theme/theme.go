// Package theme provides named color schemes for the clock face.
package theme

import (
	"fmt"
	"strings"

	"github.com/verte-zerg/tuiclock/internal/face"
)

// Theme assigns colors to the parts of the face.
type Theme struct {
	Name    string
	Ticks   string
	Pressed string
	Hour    string
	Minute  string
	Second  string
	Dial    string
	Date    string
	Footer  string
}

// Overrides replaces individual theme colors. Nil fields keep the theme value.
type Overrides struct {
	Ticks   *string
	Pressed *string
	Hour    *string
	Minute  *string
	Second  *string
	Dial    *string
	Date    *string
}

// DefaultName is the theme used when none is configured.
const DefaultName = "grey"

var themes = []Theme{
	{
		Name:    "grey",
		Ticks:   "#9E9E9E",
		Pressed: "#2196F3",
		Hour:    "#9E9E9E",
		Minute:  "#9E9E9E",
		Second:  "#F44336",
		Dial:    "#4A4A4A",
		Date:    "#B0B0B0",
		Footer:  "#6E6E6E",
	},
	{
		Name:    "amber",
		Ticks:   "#C89A3A",
		Pressed: "#F0F0F0",
		Hour:    "#F0F0F0",
		Minute:  "#F0F0F0",
		Second:  "#FF4D4F",
		Dial:    "#4A4A4A",
		Date:    "#C89A3A",
		Footer:  "#6E6E6E",
	},
	{
		Name:    "mono",
		Ticks:   "#F0F0F0",
		Pressed: "#8C8C8C",
		Hour:    "#F0F0F0",
		Minute:  "#F0F0F0",
		Second:  "#B8B8B8",
		Dial:    "#6E6E6E",
		Date:    "#B8B8B8",
		Footer:  "#6E6E6E",
	},
	{
		Name:    "ocean",
		Ticks:   "#4FC3F7",
		Pressed: "#FFB74D",
		Hour:    "#E1F5FE",
		Minute:  "#B3E5FC",
		Second:  "#FF7043",
		Dial:    "#01579B",
		Date:    "#81D4FA",
		Footer:  "#607D8B",
	},
}

// Names lists the built-in theme names in cycle order.
func Names() []string {
	out := make([]string, len(themes))
	for i, t := range themes {
		out[i] = t.Name
	}
	return out
}

// Lookup returns the theme with the given name, case-insensitively.
func Lookup(name string) (Theme, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = DefaultName
	}
	for _, t := range themes {
		if t.Name == name {
			return t, nil
		}
	}
	return Theme{}, fmt.Errorf("unknown theme %q (available: %s)", name, strings.Join(Names(), ", "))
}

// Next returns the theme after name in cycle order.
func Next(name string) Theme {
	for i, t := range themes {
		if t.Name == name {
			return themes[(i+1)%len(themes)]
		}
	}
	return themes[0]
}

// WithOverrides returns t with the non-nil colors of o applied.
func (t Theme) WithOverrides(o Overrides) Theme {
	apply := func(dst *string, src *string) {
		if src != nil && *src != "" {
			*dst = *src
		}
	}
	apply(&t.Ticks, o.Ticks)
	apply(&t.Pressed, o.Pressed)
	apply(&t.Hour, o.Hour)
	apply(&t.Minute, o.Minute)
	apply(&t.Second, o.Second)
	apply(&t.Dial, o.Dial)
	apply(&t.Date, o.Date)
	return t
}

// Apply colors a face spec and its hands. A pressed face is drawn in the
// pressed color, except for the second hand.
func (t Theme) Apply(spec face.Spec, hands face.Hands, pressed bool) (face.Spec, face.Hands) {
	ticks, hour, minute := t.Ticks, t.Hour, t.Minute
	if pressed {
		ticks, hour, minute = t.Pressed, t.Pressed, t.Pressed
	}
	spec.Cardinal.Color = ticks
	spec.SubCardinal.Color = ticks
	spec.Division.Color = ticks
	spec.Dial.Color = t.Dial
	hands.Hour.Color = hour
	hands.Minute.Color = minute
	hands.Second.Color = t.Second
	return spec, hands
}
