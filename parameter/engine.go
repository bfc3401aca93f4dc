package parameter

// ECS & Resources Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer.
	// UI input rates are low; 256 absorbs the worst burst a single
	// frame of pointer traffic produces.
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255

	// MaxTreeDepth caps ancestor-chain walks; a chain longer than this
	// indicates a parent cycle, and the walk stops there
	MaxTreeDepth = 64
)
