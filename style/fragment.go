// Package style implements the declarative styling data model: optional
// per-field fragments, a closed selector grammar, the rule sheet with its
// class and descendant indices, and the pure cascade resolver.
//
// The package holds no entity state. Entity-side inputs (class lists,
// inline setters, pseudo flags) live in component stores; systems feed
// them through Resolve each tick.
package style

import (
	"time"

	"github.com/lixenwraith/cascade/core"
)

// LayoutStyle carries spacing and border geometry.
// Nil fields are unset and never participate in merging.
type LayoutStyle struct {
	Padding      *float64
	Gap          *float64
	CornerRadius *float64
	BorderWidth  *float64
}

// Merge overlays the set fields of src onto a copy of l
func (l LayoutStyle) Merge(src LayoutStyle) LayoutStyle {
	if src.Padding != nil {
		l.Padding = src.Padding
	}
	if src.Gap != nil {
		l.Gap = src.Gap
	}
	if src.CornerRadius != nil {
		l.CornerRadius = src.CornerRadius
	}
	if src.BorderWidth != nil {
		l.BorderWidth = src.BorderWidth
	}
	return l
}

// ColorStyle carries the discrete color channels plus their pseudo-state
// variants. Hover/pressed fields override the base channels only while
// the matching interaction flag is up.
type ColorStyle struct {
	Bg     *core.RGBA
	Text   *core.RGBA
	Border *core.RGBA

	HoverBg     *core.RGBA
	HoverText   *core.RGBA
	HoverBorder *core.RGBA

	PressedBg     *core.RGBA
	PressedText   *core.RGBA
	PressedBorder *core.RGBA
}

// Merge overlays the set fields of src onto a copy of c
func (c ColorStyle) Merge(src ColorStyle) ColorStyle {
	if src.Bg != nil {
		c.Bg = src.Bg
	}
	if src.Text != nil {
		c.Text = src.Text
	}
	if src.Border != nil {
		c.Border = src.Border
	}
	if src.HoverBg != nil {
		c.HoverBg = src.HoverBg
	}
	if src.HoverText != nil {
		c.HoverText = src.HoverText
	}
	if src.HoverBorder != nil {
		c.HoverBorder = src.HoverBorder
	}
	if src.PressedBg != nil {
		c.PressedBg = src.PressedBg
	}
	if src.PressedText != nil {
		c.PressedText = src.PressedText
	}
	if src.PressedBorder != nil {
		c.PressedBorder = src.PressedBorder
	}
	return c
}

// TextStyle carries typography fields
type TextStyle struct {
	Size *float64
}

// Merge overlays the set fields of src onto a copy of t
func (t TextStyle) Merge(src TextStyle) TextStyle {
	if src.Size != nil {
		t.Size = src.Size
	}
	return t
}

// ShadowStyle carries an optional drop shadow. The whole block is unset
// when Color is nil; offset and blur refine a set shadow.
type ShadowStyle struct {
	Color   *core.RGBA
	OffsetX *float64
	OffsetY *float64
	Blur    *float64
}

// Merge overlays the set fields of src onto a copy of s
func (s ShadowStyle) Merge(src ShadowStyle) ShadowStyle {
	if src.Color != nil {
		s.Color = src.Color
	}
	if src.OffsetX != nil {
		s.OffsetX = src.OffsetX
	}
	if src.OffsetY != nil {
		s.OffsetY = src.OffsetY
	}
	if src.Blur != nil {
		s.Blur = src.Blur
	}
	return s
}

// Setter is one rule's payload: every field optional, merged field-by-field.
// An unset field in a higher-precedence setter never erases a value a
// lower-precedence setter established.
type Setter struct {
	Layout     LayoutStyle
	Colors     ColorStyle
	Text       TextStyle
	Shadow     ShadowStyle
	Transition *time.Duration
}

// Merge overlays the set fields of src onto a copy of s
func (s Setter) Merge(src Setter) Setter {
	s.Layout = s.Layout.Merge(src.Layout)
	s.Colors = s.Colors.Merge(src.Colors)
	s.Text = s.Text.Merge(src.Text)
	s.Shadow = s.Shadow.Merge(src.Shadow)
	if src.Transition != nil {
		s.Transition = src.Transition
	}
	return s
}

// Equal compares two setters field-by-field, treating pointers by value.
// The invalidation pass uses it to skip dirty marks for no-op mutations.
func (s Setter) Equal(other Setter) bool {
	return s.Layout.equal(other.Layout) &&
		s.Colors.equal(other.Colors) &&
		s.Text.equal(other.Text) &&
		s.Shadow.equal(other.Shadow) &&
		eqDuration(s.Transition, other.Transition)
}

func (l LayoutStyle) equal(o LayoutStyle) bool {
	return eqFloat(l.Padding, o.Padding) &&
		eqFloat(l.Gap, o.Gap) &&
		eqFloat(l.CornerRadius, o.CornerRadius) &&
		eqFloat(l.BorderWidth, o.BorderWidth)
}

func (c ColorStyle) equal(o ColorStyle) bool {
	return core.ColorPtrEqual(c.Bg, o.Bg) &&
		core.ColorPtrEqual(c.Text, o.Text) &&
		core.ColorPtrEqual(c.Border, o.Border) &&
		core.ColorPtrEqual(c.HoverBg, o.HoverBg) &&
		core.ColorPtrEqual(c.HoverText, o.HoverText) &&
		core.ColorPtrEqual(c.HoverBorder, o.HoverBorder) &&
		core.ColorPtrEqual(c.PressedBg, o.PressedBg) &&
		core.ColorPtrEqual(c.PressedText, o.PressedText) &&
		core.ColorPtrEqual(c.PressedBorder, o.PressedBorder)
}

func (t TextStyle) equal(o TextStyle) bool {
	return eqFloat(t.Size, o.Size)
}

func (s ShadowStyle) equal(o ShadowStyle) bool {
	return core.ColorPtrEqual(s.Color, o.Color) &&
		eqFloat(s.OffsetX, o.OffsetX) &&
		eqFloat(s.OffsetY, o.OffsetY) &&
		eqFloat(s.Blur, o.Blur)
}

func eqFloat(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func eqDuration(a, b *time.Duration) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// Float boxes a literal for optional style fields
func Float(v float64) *float64 { return &v }

// Color boxes a literal for optional color fields
func Color(c core.RGBA) *core.RGBA { return &c }

// Duration boxes a transition duration
func Duration(d time.Duration) *time.Duration { return &d }
