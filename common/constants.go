package common

const (
	// BaseWidth and BaseHeight are the logical resolution every scene is
	// laid out for.
	BaseWidth  = 1280
	BaseHeight = 720

	// TPS is the fixed simulation rate ebiten drives Update at.
	TPS = 60
)
