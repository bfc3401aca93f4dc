package component

// PseudoStateComponent tracks the interaction flags that feed pseudo selectors
// Written only by the interaction system from pointer events
type PseudoStateComponent struct {
	Hovered bool
	Pressed bool
}
