package component

import "github.com/lixenwraith/cascade/core"

// ParentComponent links an entity to its widget-tree parent
// Chains terminate at entities without a parent; descendant selectors
// walk this link root-ward
type ParentComponent struct {
	Parent core.Entity
}
