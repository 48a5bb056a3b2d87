package snapshot

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/lixenwraith/homestead/entity"
)

// Table names as they appear on the wire
const (
	TablePlayers           = "players"
	TableTrees             = "trees"
	TableStones            = "stones"
	TableCampfires         = "campfires"
	TableMushrooms         = "mushrooms"
	TableCorn              = "corn"
	TableDroppedItems      = "dropped_items"
	TableStorageBoxes      = "wooden_storage_boxes"
	TableSleepingBags      = "sleeping_bags"
	TablePlayerPins        = "player_pins"
	TableInventoryItems    = "inventory_items"
	TableItemDefinitions   = "item_definitions"
	TableWorldState        = "world_state"
	TableActiveEquipments  = "active_equipments"
	TableActiveConnections = "active_connections"
	TableRangedWeaponStats = "ranged_weapon_stats"
)

// tableTags maps entity tables to the kind attached at ingestion. This is
// the upstream discriminator the classifier's tag short-circuit relies on;
// without it mushrooms and corn are structurally identical
var tableTags = map[string]entity.Kind{
	TablePlayers:      entity.KindPlayer,
	TableTrees:        entity.KindTree,
	TableStones:       entity.KindStone,
	TableCampfires:    entity.KindCampfire,
	TableMushrooms:    entity.KindMushroom,
	TableCorn:         entity.KindCorn,
	TableDroppedItems: entity.KindDroppedItem,
	TableStorageBoxes: entity.KindStorageBox,
	TableSleepingBags: entity.KindSleepingBag,
}

// Tables is one immutable view of the replicated state. Maps are swapped
// wholesale on every table update and never mutated afterward, so a view
// handed to the render loop stays coherent for the whole frame
type Tables struct {
	Players      map[string]*entity.Record
	Trees        map[string]*entity.Record
	Stones       map[string]*entity.Record
	Campfires    map[string]*entity.Record
	Mushrooms    map[string]*entity.Record
	Corn         map[string]*entity.Record
	DroppedItems map[string]*entity.Record
	StorageBoxes map[string]*entity.Record
	SleepingBags map[string]*entity.Record

	PlayerPins        map[string]PlayerPin
	InventoryItems    map[uint64]InventoryItem
	ItemDefinitions   map[uint64]ItemDefinition
	ActiveEquipments  map[string]ActiveEquipment
	ActiveConnections map[string]ActiveConnection
	RangedWeapons     map[string]RangedWeaponStats
	World             WorldState
}

// Store holds the latest replicated snapshot. A single writer (the network
// client) applies table updates; readers take a shallow view per frame
type Store struct {
	mu     sync.RWMutex
	tables Tables
}

// NewStore returns a store with empty tables
func NewStore() *Store {
	return &Store{
		tables: Tables{
			Players:           map[string]*entity.Record{},
			Trees:             map[string]*entity.Record{},
			Stones:            map[string]*entity.Record{},
			Campfires:         map[string]*entity.Record{},
			Mushrooms:         map[string]*entity.Record{},
			Corn:              map[string]*entity.Record{},
			DroppedItems:      map[string]*entity.Record{},
			StorageBoxes:      map[string]*entity.Record{},
			SleepingBags:      map[string]*entity.Record{},
			PlayerPins:        map[string]PlayerPin{},
			InventoryItems:    map[uint64]InventoryItem{},
			ItemDefinitions:   map[uint64]ItemDefinition{},
			ActiveEquipments:  map[string]ActiveEquipment{},
			ActiveConnections: map[string]ActiveConnection{},
			RangedWeapons:     map[string]RangedWeaponStats{},
		},
	}
}

// View returns the current tables by value. The maps inside are shared but
// immutable, so the view is safe to read for the duration of a frame
func (s *Store) View() Tables {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tables
}

// Apply replaces one table from its wire payload. Entity tables get the
// ingestion tag attached to every row; unknown table names are an error so
// the transport can log them
func (s *Store) Apply(table string, rows json.RawMessage) error {
	if tag, ok := tableTags[table]; ok {
		return s.applyEntities(table, tag, rows)
	}

	switch table {
	case TablePlayerPins:
		return applyKeyed(s, rows, func(t *Tables, m map[string]PlayerPin) { t.PlayerPins = m },
			func(v PlayerPin) string { return v.Identity })
	case TableInventoryItems:
		return applyKeyed(s, rows, func(t *Tables, m map[uint64]InventoryItem) { t.InventoryItems = m },
			func(v InventoryItem) uint64 { return v.InstanceID })
	case TableItemDefinitions:
		return applyKeyed(s, rows, func(t *Tables, m map[uint64]ItemDefinition) { t.ItemDefinitions = m },
			func(v ItemDefinition) uint64 { return v.ID })
	case TableActiveEquipments:
		return applyKeyed(s, rows, func(t *Tables, m map[string]ActiveEquipment) { t.ActiveEquipments = m },
			func(v ActiveEquipment) string { return v.PlayerIdentity })
	case TableActiveConnections:
		return applyKeyed(s, rows, func(t *Tables, m map[string]ActiveConnection) { t.ActiveConnections = m },
			func(v ActiveConnection) string { return v.Identity })
	case TableRangedWeaponStats:
		return applyKeyed(s, rows, func(t *Tables, m map[string]RangedWeaponStats) { t.RangedWeapons = m },
			func(v RangedWeaponStats) string { return v.ItemName })
	case TableWorldState:
		var states []WorldState
		if err := json.Unmarshal(rows, &states); err != nil {
			return fmt.Errorf("decode %s: %w", table, err)
		}
		s.mu.Lock()
		if len(states) > 0 {
			s.tables.World = states[0]
		}
		s.mu.Unlock()
		return nil
	}
	return fmt.Errorf("unknown table %q", table)
}

func (s *Store) applyEntities(table string, tag entity.Kind, rows json.RawMessage) error {
	var recs []*entity.Record
	if err := json.Unmarshal(rows, &recs); err != nil {
		return fmt.Errorf("decode %s: %w", table, err)
	}

	m := make(map[string]*entity.Record, len(recs))
	for _, r := range recs {
		r.Tag = tag
		m[r.ID] = r
	}

	s.mu.Lock()
	switch tag {
	case entity.KindPlayer:
		s.tables.Players = m
	case entity.KindTree:
		s.tables.Trees = m
	case entity.KindStone:
		s.tables.Stones = m
	case entity.KindCampfire:
		s.tables.Campfires = m
	case entity.KindMushroom:
		s.tables.Mushrooms = m
	case entity.KindCorn:
		s.tables.Corn = m
	case entity.KindDroppedItem:
		s.tables.DroppedItems = m
	case entity.KindStorageBox:
		s.tables.StorageBoxes = m
	case entity.KindSleepingBag:
		s.tables.SleepingBags = m
	}
	s.mu.Unlock()
	return nil
}

// applyKeyed decodes a homogeneous table and swaps it into the store
func applyKeyed[K comparable, V any](s *Store, rows json.RawMessage, set func(*Tables, map[K]V), key func(V) K) error {
	var vals []V
	if err := json.Unmarshal(rows, &vals); err != nil {
		return fmt.Errorf("decode table: %w", err)
	}
	m := make(map[K]V, len(vals))
	for _, v := range vals {
		m[key(v)] = v
	}
	s.mu.Lock()
	set(&s.tables, m)
	s.mu.Unlock()
	return nil
}
