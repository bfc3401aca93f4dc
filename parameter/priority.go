package parameter

// System Execution Priorities (lower runs first)
//
// The styling pipeline depends on this exact order within a tick: each
// stage consumes the previous stage's output for the same tick, so a
// reordering silently reintroduces stale-by-one-tick reads.
const (
	PriorityInteraction  = 10 // Pointer events become pseudo flags before dirty-marking settles
	PriorityInvalidation = 20 // Sheet swaps and revision checks before resolution
	PriorityCascade      = 30 // Resolves dirty entities, refreshes color targets
	PriorityTransition   = 40 // Advances interpolation toward the fresh targets
	PriorityOverlay      = 50 // Stack resync and click arbitration against last placements
	PriorityPlacement    = 60 // Position computation runs last, after lifecycle settles
)
