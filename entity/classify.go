package entity

// Structural classification. Each predicate inspects a minimal set of
// required-present and required-absent fields so that at most one predicate
// matches a well-formed record. The one sanctioned exception is the
// mushroom/corn pair, which is structurally identical and resolved by the
// Tag attached at ingestion; Classify checks the tag before any predicate

// IsPlayer reports whether the record is a player
func IsPlayer(r *Record) bool {
	return r.PositionX != nil && r.PositionY != nil && r.Identity != nil
}

// IsTree reports whether the record is a tree
func IsTree(r *Record) bool {
	return r.PosX != nil && r.PosY != nil && r.TreeType != nil
}

// IsStone reports whether the record is a stone. Health alone is not enough:
// trees also carry health, so tree and campfire markers must be absent
func IsStone(r *Record) bool {
	return r.PosX != nil && r.PosY != nil && r.Health != nil &&
		r.TreeType == nil && r.IsBurning == nil && r.Identity == nil &&
		r.NumSlots == nil && r.PlacedBy == nil
}

// IsCampfire reports whether the record is a campfire
func IsCampfire(r *Record) bool {
	return r.PosX != nil && r.PosY != nil && r.IsBurning != nil
}

// IsDroppedItem reports whether the record is a dropped item stack
func IsDroppedItem(r *Record) bool {
	return r.PosX != nil && r.PosY != nil && r.ItemDefID != nil && r.Quantity != nil
}

// IsStorageBox reports whether the record is a wooden storage box
func IsStorageBox(r *Record) bool {
	return r.PosX != nil && r.PosY != nil && r.NumSlots != nil
}

// IsSleepingBag reports whether the record is a sleeping bag. PlacedBy is
// shared with campfires and boxes, so their markers must be absent
func IsSleepingBag(r *Record) bool {
	return r.PosX != nil && r.PosY != nil && r.PlacedBy != nil &&
		r.IsBurning == nil && r.NumSlots == nil
}

// harvestable is the shared mushroom/corn shape: a position and nothing
// that marks any other kind. The two are indistinguishable without the tag
func harvestable(r *Record) bool {
	return r.PosX != nil && r.PosY != nil &&
		r.Identity == nil && r.Health == nil && r.TreeType == nil &&
		r.IsBurning == nil && r.ItemDefID == nil && r.NumSlots == nil &&
		r.PlacedBy == nil
}

// IsMushroom reports whether the record is a mushroom. Without a tag this
// also matches corn; Classify resolves the pair
func IsMushroom(r *Record) bool {
	if r.Tag != KindUnknown {
		return r.Tag == KindMushroom
	}
	return harvestable(r)
}

// IsCorn reports whether the record is corn. Without a tag this also
// matches mushrooms; Classify resolves the pair
func IsCorn(r *Record) bool {
	if r.Tag != KindUnknown {
		return r.Tag == KindCorn
	}
	return harvestable(r)
}

// Classify returns the single kind for a record. The ingestion tag
// short-circuits the predicate chain entirely; untagged records fall back
// to predicates in fixed priority order. Returns KindUnknown when nothing
// matches, in which case the record is skipped from rendering
func Classify(r *Record) Kind {
	if r.Tag != KindUnknown {
		return r.Tag
	}

	switch {
	case IsDroppedItem(r):
		return KindDroppedItem
	case IsCorn(r):
		return KindCorn
	case IsMushroom(r):
		return KindMushroom
	case IsCampfire(r):
		return KindCampfire
	case IsPlayer(r):
		return KindPlayer
	case IsTree(r):
		return KindTree
	case IsStorageBox(r):
		return KindStorageBox
	case IsSleepingBag(r):
		return KindSleepingBag
	case IsStone(r):
		return KindStone
	}
	return KindUnknown
}
