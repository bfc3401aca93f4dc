package system

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/lixenwraith/cascade/component"
	"github.com/lixenwraith/cascade/core"
	"github.com/lixenwraith/cascade/engine"
	"github.com/lixenwraith/cascade/parameter"
)

// TransitionSystem converges displayed colors toward the cascade's
// targets over each entity's configured duration. Animation state is a
// component: present while converging, removed at completion. All three
// channel groups share one time base and easing curve
type TransitionSystem struct {
	log  zerolog.Logger
	ease core.EaseFunc
}

// NewTransitionSystem creates the color animator with the default
// quadratic ease-in-out curve
func NewTransitionSystem(log zerolog.Logger) *TransitionSystem {
	return &TransitionSystem{log: log, ease: core.EaseQuadInOut}
}

func (s *TransitionSystem) Priority() int {
	return parameter.PriorityTransition
}

func (s *TransitionSystem) Update(w *engine.World, dt time.Duration) {
	for _, e := range w.Currents.GetAllEntities() {
		cur, _ := w.Currents.GetComponent(e)
		tgt, ok := w.Targets.GetComponent(e)
		if !ok {
			continue
		}
		comp, ok := w.Computed.GetComponent(e)
		if !ok {
			continue
		}
		duration := comp.Style.Transition

		anim, animating := w.Animations.GetComponent(e)
		if animating {
			if !animTargetsMatch(anim, tgt) {
				// Retarget: restart from the currently displayed values,
				// discarding the in-flight interpolation
				s.begin(w, e, cur, tgt, duration)
				continue
			}
			// A duration change mid-flight is deliberately ignored; only
			// a target change restarts the animation
			anim.Elapsed += dt
			if anim.Elapsed >= anim.Duration {
				w.Currents.SetComponent(e, snapToTargets(tgt))
				w.Animations.RemoveEntity(e)
				continue
			}
			t := s.ease(float64(anim.Elapsed) / float64(anim.Duration))
			w.Currents.SetComponent(e, sampleAnimation(anim, t))
			w.Animations.SetComponent(e, anim)
			continue
		}

		// Idle: equal target is a strict no-op
		if currentsMatchTargets(cur, tgt) {
			continue
		}
		s.begin(w, e, cur, tgt, duration)
	}
}

// begin starts or restarts convergence toward tgt. Zero duration, and
// target sets that differ only in channels that cannot interpolate
// (unset on either side), snap immediately without an animation
func (s *TransitionSystem) begin(w *engine.World, e core.Entity, cur component.CurrentColorsComponent, tgt component.TargetColorsComponent, duration time.Duration) {
	if duration <= 0 || !hasLerpableDelta(cur, tgt) {
		w.Currents.SetComponent(e, snapToTargets(tgt))
		w.Animations.RemoveEntity(e)
		return
	}
	anim, seeded := startAnimation(cur, tgt, duration)
	w.Currents.SetComponent(e, seeded)
	w.Animations.SetComponent(e, anim)
}

// animTargetsMatch compares the animation's recorded goal with the
// cascade's current targets
func animTargetsMatch(anim component.ColorAnimationComponent, tgt component.TargetColorsComponent) bool {
	return core.ColorPtrEqual(anim.TargetBg, tgt.Bg) &&
		core.ColorPtrEqual(anim.TargetText, tgt.Text) &&
		core.ColorPtrEqual(anim.TargetBorder, tgt.Border)
}

// currentsMatchTargets reports exact per-channel convergence
func currentsMatchTargets(cur component.CurrentColorsComponent, tgt component.TargetColorsComponent) bool {
	return core.ColorPtrEqual(cur.Bg, tgt.Bg) &&
		core.ColorPtrEqual(cur.Text, tgt.Text) &&
		core.ColorPtrEqual(cur.Border, tgt.Border)
}

// hasLerpableDelta reports whether any channel is set on both sides with
// different values; only those channels can actually interpolate
func hasLerpableDelta(cur component.CurrentColorsComponent, tgt component.TargetColorsComponent) bool {
	return lerpableChannel(cur.Bg, tgt.Bg) ||
		lerpableChannel(cur.Text, tgt.Text) ||
		lerpableChannel(cur.Border, tgt.Border)
}

func lerpableChannel(cur, tgt *core.RGBA) bool {
	return cur != nil && tgt != nil && *cur != *tgt
}

// snapToTargets aliases the target pointers; channel values are replaced
// whole, never written through, so sharing is safe
func snapToTargets(tgt component.TargetColorsComponent) component.CurrentColorsComponent {
	return component.CurrentColorsComponent{
		Bg:     tgt.Bg,
		Text:   tgt.Text,
		Border: tgt.Border,
	}
}

// startAnimation records start and target values per channel, snapping
// channels that appear (unset -> set) so they hold the target from the
// first sample. Returns the animation and the seeded displayed colors
func startAnimation(cur component.CurrentColorsComponent, tgt component.TargetColorsComponent, duration time.Duration) (component.ColorAnimationComponent, component.CurrentColorsComponent) {
	anim := component.ColorAnimationComponent{Duration: duration}
	anim.StartBg, cur.Bg = startChannel(cur.Bg, tgt.Bg)
	anim.StartText, cur.Text = startChannel(cur.Text, tgt.Text)
	anim.StartBorder, cur.Border = startChannel(cur.Border, tgt.Border)
	anim.TargetBg = tgt.Bg
	anim.TargetText = tgt.Text
	anim.TargetBorder = tgt.Border
	return anim, cur
}

func startChannel(cur, tgt *core.RGBA) (start, seeded *core.RGBA) {
	if cur == nil && tgt != nil {
		return tgt, tgt
	}
	return cur, cur
}

// sampleAnimation interpolates each channel at eased progress t.
// A channel with an unset target holds its start value until completion
// clears it
func sampleAnimation(anim component.ColorAnimationComponent, t float64) component.CurrentColorsComponent {
	return component.CurrentColorsComponent{
		Bg:     sampleChannel(anim.StartBg, anim.TargetBg, t),
		Text:   sampleChannel(anim.StartText, anim.TargetText, t),
		Border: sampleChannel(anim.StartBorder, anim.TargetBorder, t),
	}
}

func sampleChannel(start, tgt *core.RGBA, t float64) *core.RGBA {
	if tgt == nil {
		return start
	}
	if start == nil {
		return tgt
	}
	v := start.Lerp(*tgt, t)
	return &v
}
