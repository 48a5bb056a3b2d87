package parameter

// World Geometry

const (
	// TileSize is the width and height of one ground tile in world units
	TileSize = 48.0

	// ViewBufferTiles is the culling margin beyond the physical canvas, in tiles.
	// Keeps entities from popping in at screen edges
	ViewBufferTiles = 2

	// InteractionRange is the maximum world distance for interact prompts and placement
	InteractionRange = 96.0

	// InteractionRangeSq avoids a sqrt in per-frame distance checks
	InteractionRangeSq = InteractionRange * InteractionRange

	// HoldInteractSeconds is how long the interact key must be held for
	// container and sleeping bag interactions
	HoldInteractSeconds = 1.0
)

// Campfire

const (
	// CampfireHotZoneRadius is the distance from a campfire center within which
	// a standing player triggers the smoke-burst effect
	CampfireHotZoneRadius = 40.0

	// CampfireLightRadius is the base radius of the additive point light
	CampfireLightRadius = 140.0

	// CampfireLightFlicker is the per-frame random radius jitter in world units
	CampfireLightFlicker = 8.0
)
