package entity

// Kind is the closed set of renderable entity kinds. Records arrive from
// replication without an explicit type; the kind is attached at ingestion
// from the source table, with structural predicates as the fallback for
// boundary data that arrives untagged
type Kind uint8

const (
	KindUnknown Kind = iota
	KindPlayer
	KindTree
	KindStone
	KindCampfire
	KindMushroom
	KindCorn
	KindDroppedItem
	KindStorageBox
	KindSleepingBag
)

// String returns the kind name for diagnostics
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindTree:
		return "tree"
	case KindStone:
		return "stone"
	case KindCampfire:
		return "campfire"
	case KindMushroom:
		return "mushroom"
	case KindCorn:
		return "corn"
	case KindDroppedItem:
		return "dropped_item"
	case KindStorageBox:
		return "storage_box"
	case KindSleepingBag:
		return "sleeping_bag"
	default:
		return "unknown"
	}
}

// Record is a replicated entity with a variable attribute set. Fields are
// pointers so that absence is distinguishable from zero; the classifier
// works entirely off presence and absence. The renderer never mutates a
// Record, it only derives views
type Record struct {
	ID  string `json:"id"`
	Tag Kind   `json:"-"`

	// Position, two replication conventions: world objects carry posX/posY,
	// players carry positionX/positionY
	PosX      *float64 `json:"posX,omitempty"`
	PosY      *float64 `json:"posY,omitempty"`
	PositionX *float64 `json:"positionX,omitempty"`
	PositionY *float64 `json:"positionY,omitempty"`

	// Player
	Identity      *string  `json:"identity,omitempty"`
	Username      *string  `json:"username,omitempty"`
	Direction     *string  `json:"direction,omitempty"`
	IsDead        *bool    `json:"isDead,omitempty"`
	IsSprinting   *bool    `json:"isSprinting,omitempty"`
	LastHitTime   *int64   `json:"lastHitTime,omitempty"`   // unix ms
	JumpStartTime *int64   `json:"jumpStartTime,omitempty"` // unix ms, 0 = not jumping
	Health        *float64 `json:"health,omitempty"`

	// Tree
	TreeType *string `json:"treeType,omitempty"`

	// Campfire
	IsBurning *bool `json:"isBurning,omitempty"`

	// Placeables (campfire, storage box, sleeping bag)
	PlacedBy *string `json:"placedBy,omitempty"`

	// Dropped item
	ItemDefID *uint64 `json:"itemDefId,omitempty"`
	Quantity  *uint32 `json:"quantity,omitempty"`

	// Storage box
	NumSlots *int `json:"numSlots,omitempty"`

	// Mushroom / corn respawn suppression. Present means a respawn is
	// pending and the entity must not render; the server is authoritative
	// about clearing it, even when the timestamp is already past
	RespawnAt *int64 `json:"respawnAt,omitempty"`
}

// X returns the world X coordinate, preferring the player convention.
// ok is false when the record carries no position at all
func (r *Record) X() (float64, bool) {
	if r.PositionX != nil {
		return *r.PositionX, true
	}
	if r.PosX != nil {
		return *r.PosX, true
	}
	return 0, false
}

// Y returns the world Y coordinate, preferring the player convention
func (r *Record) Y() (float64, bool) {
	if r.PositionY != nil {
		return *r.PositionY, true
	}
	if r.PosY != nil {
		return *r.PosY, true
	}
	return 0, false
}

// HasPosition reports whether the record carries either position convention
func (r *Record) HasPosition() bool {
	_, okX := r.X()
	_, okY := r.Y()
	return okX && okY
}

// SortY is the kind-polymorphic depth key used by the Y-sorted layer.
// Records without a position sort first and are culled elsewhere
func (r *Record) SortY() float64 {
	y, _ := r.Y()
	return y
}
