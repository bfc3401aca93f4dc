package parameter

import "time"

// Stylesheet Loading
const (
	// SheetReloadDebounce is how long file changes must settle before a
	// hot reload fires; editors save in bursts
	SheetReloadDebounce = 200 * time.Millisecond
)
