package status

import "sync/atomic"

// Registry is the central metrics facade
// Systems cache pointers during init; update loops write directly to atomics
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count()
}

// Well-known metric keys. Systems publish under these so hosts and tests
// need no system references to observe the pipeline.
const (
	KeyStyleResolves   = "style.resolve.count"   // Ints: cascade recomputations
	KeyStyleDirtyMarks = "style.dirty.count"     // Ints: dirty flags raised
	KeySheetReloads    = "style.sheet.reloads"   // Ints: applied rule-set swaps
	KeyOverlayOpens    = "overlay.open.count"    // Ints: successful opens
	KeyOverlayCloses   = "overlay.close.count"   // Ints: closes, any reason
	KeyOverlayActive   = "overlay.active"        // Ints: current stack depth
	KeyModalActive     = "overlay.modal.active"  // Bools: a modal is on the stack
	KeyTickCount       = "engine.tick.count"     // Ints: completed ticks
	KeyTickDelta       = "engine.tick.delta_sec" // Floats: last tick delta in seconds
)
