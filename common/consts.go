package common

const (
	// TileSize is the width and height of one level grid cell in pixels.
	TileSize = 16

	BaseWidth  = 1080
	BaseHeight = 720

	// StepDT is the fixed physics timestep. The simulation clock advances by
	// this amount every tick, so every timer in the game counts simulated
	// seconds rather than wall-clock seconds.
	StepDT = 1.0 / 60.0
)
