package config

// DisplayConfig holds the sandbox window and camera settings.
type DisplayConfig struct {
	Width, Height   int
	FollowSmoothing float64
	DebugStart      bool
}

var Display = DisplayConfig{
	Width:           1280,
	Height:          720,
	FollowSmoothing: 0.1,
	DebugStart:      true,
}
