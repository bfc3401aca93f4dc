package component

import "github.com/lixenwraith/cascade/style"

// InlineStyleComponent carries per-entity overrides applied after all sheet rules
type InlineStyleComponent struct {
	Set style.Setter
}

// StyleDirtyComponent marks an entity for cascade recomputation
// Presence is the flag; it carries no data
type StyleDirtyComponent struct{}

// ComputedStyleComponent caches the last cascade output for an entity
// Valid until the entity is marked dirty again
type ComputedStyleComponent struct {
	Style style.Computed
}
