package core

// Entity is a unique identifier for a styled or overlay-bearing UI object
type Entity uint64

// InvalidEntity marks the absence of an entity reference (e.g. an unanchored overlay)
const InvalidEntity Entity = 0
