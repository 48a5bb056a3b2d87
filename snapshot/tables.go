package snapshot

// Auxiliary replicated tables. These are well-typed on the wire, unlike the
// structural entity tables, and are consumed directly by the compositor and
// the intent layer

// WorldState carries the day/night phase
type WorldState struct {
	// CycleProgress is [0,1) across a full day: day spans [0, 0.5),
	// night [0.5, 1), midnight at 0.75
	CycleProgress float64 `json:"cycleProgress"`
	IsFullMoon    bool    `json:"isFullMoon"`
}

// ItemDefinition describes an item archetype
type ItemDefinition struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"` // "Consumable", "Tool", "Placeable", ...
	AssetName string `json:"assetName"`
}

// InventoryItem is one stack in a player inventory or hotbar
type InventoryItem struct {
	InstanceID     uint64 `json:"instanceId"`
	PlayerIdentity string `json:"playerIdentity"`
	ItemDefID      uint64 `json:"itemDefId"`
	Quantity       uint32 `json:"quantity"`
	HotbarSlot     *int   `json:"hotbarSlot,omitempty"`
}

// ActiveEquipment is the item a player currently holds
type ActiveEquipment struct {
	PlayerIdentity string  `json:"playerIdentity"`
	EquippedDefID  *uint64 `json:"equippedItemDefId,omitempty"`
	EquippedName   string  `json:"equippedItemName"`
	SwingStartTime int64   `json:"swingStartTime"` // unix ms, 0 = not swinging
}

// PlayerPin is a player-placed minimap marker
type PlayerPin struct {
	Identity string  `json:"identity"`
	PinX     float64 `json:"pinX"`
	PinY     float64 `json:"pinY"`
}

// ActiveConnection marks an identity as currently online
type ActiveConnection struct {
	Identity string `json:"identity"`
}

// RangedWeaponStats describes a ranged weapon archetype, keyed by item name
type RangedWeaponStats struct {
	ItemName        string  `json:"itemName"`
	WeaponRange     float64 `json:"weaponRange"`
	ProjectileSpeed float64 `json:"projectileSpeed"`
	Accuracy        float64 `json:"accuracy"`
	ReloadTimeSecs  float64 `json:"reloadTimeSecs"`
}
