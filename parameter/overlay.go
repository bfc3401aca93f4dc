package parameter

// Overlay Placement
const (
	// OverlayAnchorGap is the distance in viewport units kept between an
	// anchored overlay and its anchor rectangle
	OverlayAnchorGap = 4.0

	// DefaultOverlayWidth/Height size surfaces whose host supplied no
	// measured content size
	DefaultOverlayWidth  = 240.0
	DefaultOverlayHeight = 120.0

	// OverlayBackdropAlpha dims content behind the top-most modal (160/255)
	OverlayBackdropAlpha = 160.0 / 255.0
)
