package component

import (
	"time"

	"github.com/lixenwraith/cascade/core"
)

// TargetColorsComponent is the cascade's desired bg/text/border for an entity
// Refreshed on every recompute; nil channels are unset
// Channel pointers are replaced whole, never written through
type TargetColorsComponent struct {
	Bg     *core.RGBA
	Text   *core.RGBA
	Border *core.RGBA
}

// CurrentColorsComponent is what renderers draw right now
// Present only on entities with a nonzero transition duration; equals
// TargetColors whenever no animation is in flight
type CurrentColorsComponent struct {
	Bg     *core.RGBA
	Text   *core.RGBA
	Border *core.RGBA
}

// ColorAnimationComponent holds an in-flight color transition
// Presence means animating; the transition system removes it on completion
type ColorAnimationComponent struct {
	StartBg     *core.RGBA
	StartText   *core.RGBA
	StartBorder *core.RGBA

	TargetBg     *core.RGBA
	TargetText   *core.RGBA
	TargetBorder *core.RGBA

	Elapsed  time.Duration
	Duration time.Duration
}
