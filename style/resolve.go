package style

import (
	"time"

	"github.com/lixenwraith/cascade/core"
)

// DefaultTextSize applies when no rule or inline override sets typography
const DefaultTextSize = 14.0

// Shadow is the resolved drop-shadow block
type Shadow struct {
	Color   core.RGBA
	OffsetX float64
	OffsetY float64
	Blur    float64
}

// Computed is the fully merged style for one entity. Layout and text
// fields are concrete with zero-value defaults; colors stay optional
// because "no background" is a meaningful resolved state.
type Computed struct {
	Padding      float64
	Gap          float64
	CornerRadius float64
	BorderWidth  float64
	TextSize     float64

	Bg     *core.RGBA
	Text   *core.RGBA
	Border *core.RGBA

	Shadow     *Shadow
	Transition time.Duration
}

// WithCurrentColors returns a copy with the discrete color channels
// replaced by the animator's in-flight values where present. Layout and
// text fields are never touched; interpolation affects rendering only.
func (c Computed) WithCurrentColors(bg, text, border *core.RGBA) Computed {
	if bg != nil {
		c.Bg = bg
	}
	if text != nil {
		c.Text = text
	}
	if border != nil {
		c.Border = border
	}
	return c
}

// Resolve computes the merged style for one entity. chain carries the
// entity's facts first and its ancestors' facts root-ward; inline is the
// entity's own override setter (zero value when absent).
//
// Precedence, low to high: kind rules in declaration order, class rules
// in the entity's class-list order, combined rules in declaration order,
// the inline setter, then pseudo color overrides (hovered first, pressed
// second, so pressed wins when both flags are up). The output depends
// only on the inputs.
func Resolve(sheet *Sheet, chain []Facts, inline Setter) Computed {
	merged := Setter{}

	sheet.mu.RLock()
	for _, i := range sheet.kindRules {
		if sheet.rules[i].Selector.Matches(chain) {
			merged = merged.Merge(sheet.rules[i].Set)
		}
	}
	if len(chain) > 0 {
		for _, name := range chain[0].Classes {
			for _, i := range sheet.classRules[name] {
				merged = merged.Merge(sheet.rules[i].Set)
			}
		}
	}
	for _, i := range sheet.comboRules {
		if sheet.rules[i].Selector.Matches(chain) {
			merged = merged.Merge(sheet.rules[i].Set)
		}
	}
	sheet.mu.RUnlock()

	merged = merged.Merge(inline)

	var hovered, pressed bool
	if len(chain) > 0 {
		hovered = chain[0].Hovered
		pressed = chain[0].Pressed
	}
	return finalize(merged, hovered, pressed)
}

// finalize applies pseudo color overrides and collapses the optional
// setter into concrete resolved values
func finalize(s Setter, hovered, pressed bool) Computed {
	bg, text, border := s.Colors.Bg, s.Colors.Text, s.Colors.Border
	if hovered {
		if s.Colors.HoverBg != nil {
			bg = s.Colors.HoverBg
		}
		if s.Colors.HoverText != nil {
			text = s.Colors.HoverText
		}
		if s.Colors.HoverBorder != nil {
			border = s.Colors.HoverBorder
		}
	}
	if pressed {
		if s.Colors.PressedBg != nil {
			bg = s.Colors.PressedBg
		}
		if s.Colors.PressedText != nil {
			text = s.Colors.PressedText
		}
		if s.Colors.PressedBorder != nil {
			border = s.Colors.PressedBorder
		}
	}

	out := Computed{
		TextSize: DefaultTextSize,
		Bg:       bg,
		Text:     text,
		Border:   border,
	}
	if s.Layout.Padding != nil {
		out.Padding = *s.Layout.Padding
	}
	if s.Layout.Gap != nil {
		out.Gap = *s.Layout.Gap
	}
	if s.Layout.CornerRadius != nil {
		out.CornerRadius = *s.Layout.CornerRadius
	}
	if s.Layout.BorderWidth != nil {
		out.BorderWidth = *s.Layout.BorderWidth
	}
	if s.Text.Size != nil {
		out.TextSize = *s.Text.Size
	}
	if s.Shadow.Color != nil {
		sh := Shadow{Color: *s.Shadow.Color}
		if s.Shadow.OffsetX != nil {
			sh.OffsetX = *s.Shadow.OffsetX
		}
		if s.Shadow.OffsetY != nil {
			sh.OffsetY = *s.Shadow.OffsetY
		}
		if s.Shadow.Blur != nil {
			sh.Blur = *s.Shadow.Blur
		}
		out.Shadow = &sh
	}
	if s.Transition != nil {
		out.Transition = *s.Transition
	}
	return out
}
