package config

// Screen layout configuration
const (
	// Tile size in pixels
	TileSize = 16

	// Logical resolution in pixels
	ScreenWidth  = 240
	ScreenHeight = 160

	// Map area in tiles
	GridCols = ScreenWidth / TileSize
	GridRows = ScreenHeight / TileSize

	DefaultTitle = "Furry Emblem Engine"
	DefaultScale = 4
	DefaultTPS   = 60
)
