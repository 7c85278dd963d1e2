package model

import "time"

// Shared defaults used by the CLI and the TUI.
const (
	DefaultSkin              = "dark"
	DefaultRevealThreshold   = 0.1
	DefaultRevealRootMargin  = "0px"
	DefaultAnimationInterval = 60 * time.Millisecond
	DefaultMuted             = true
	DefaultLogLevel          = "info"

	MaxRating = 5
)
