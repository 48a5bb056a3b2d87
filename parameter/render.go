package parameter

// Culling Boxes
// Approximate per-kind bounding extents in world units. Intentionally fixed
// rather than derived from sprite dimensions: the culler runs over every
// replicated entity every frame and must stay allocation-free

const (
	CullBoxPlayerW = 48.0
	CullBoxPlayerH = 64.0

	CullBoxTreeW = 96.0
	CullBoxTreeH = 128.0

	CullBoxStoneW = 64.0
	CullBoxStoneH = 64.0

	CullBoxCampfireW = 64.0
	CullBoxCampfireH = 64.0

	CullBoxHarvestW = 32.0
	CullBoxHarvestH = 32.0

	CullBoxDroppedW = 32.0
	CullBoxDroppedH = 32.0

	CullBoxStorageW = 64.0
	CullBoxStorageH = 64.0

	CullBoxBagW = 64.0
	CullBoxBagH = 32.0
)

// Day/Night

const (
	// NightMaxDarkness is the peak alpha of the full-screen darkness mask at midnight
	NightMaxDarkness = 0.75
)

// Minimap

const (
	// MinimapSize is the square edge of the minimap overlay in screen pixels
	MinimapSize = 160

	// MinimapMargin is the gap between the minimap and the canvas corner
	MinimapMargin = 12

	// MinimapWorldSpan is the world distance covered by the minimap edge
	MinimapWorldSpan = 4000.0
)
