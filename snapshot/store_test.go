package snapshot

import (
	"encoding/json"
	"testing"

	"github.com/lixenwraith/homestead/entity"
)

func TestApplyTagsRows(t *testing.T) {
	s := NewStore()
	rows := json.RawMessage(`[
		{"id":"m1","posX":10,"posY":20},
		{"id":"m2","posX":30,"posY":40}
	]`)
	if err := s.Apply(TableMushrooms, rows); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	v := s.View()
	if len(v.Mushrooms) != 2 {
		t.Fatalf("mushrooms = %d, want 2", len(v.Mushrooms))
	}
	for id, r := range v.Mushrooms {
		if r.Tag != entity.KindMushroom {
			t.Errorf("row %s tagged %v, want mushroom", id, r.Tag)
		}
	}
}

// TestApplySwapsWholesale verifies an update replaces the table map; rows
// absent from the new payload are gone, and an old view keeps the old map
func TestApplySwapsWholesale(t *testing.T) {
	s := NewStore()
	if err := s.Apply(TableTrees, json.RawMessage(`[{"id":"t1"},{"id":"t2"}]`)); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	before := s.View()

	if err := s.Apply(TableTrees, json.RawMessage(`[{"id":"t2"}]`)); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	after := s.View()

	if len(before.Trees) != 2 {
		t.Fatalf("old view mutated: %d trees", len(before.Trees))
	}
	if len(after.Trees) != 1 {
		t.Fatalf("new view has %d trees, want 1", len(after.Trees))
	}
	if _, ok := after.Trees["t1"]; ok {
		t.Fatal("departed row survived the swap")
	}
}

func TestApplyWorldState(t *testing.T) {
	s := NewStore()
	rows := json.RawMessage(`[{"cycleProgress":0.75,"isFullMoon":true}]`)
	if err := s.Apply(TableWorldState, rows); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	w := s.View().World
	if w.CycleProgress != 0.75 || !w.IsFullMoon {
		t.Fatalf("world = %+v", w)
	}
}

func TestApplyKeyedTables(t *testing.T) {
	s := NewStore()

	defs := json.RawMessage(`[
		{"id":7,"name":"Mushroom","category":"Consumable","assetName":"mushroom.png"}
	]`)
	if err := s.Apply(TableItemDefinitions, defs); err != nil {
		t.Fatalf("Apply item_definitions: %v", err)
	}
	weapons := json.RawMessage(`[{"itemName":"Hunting Bow","weaponRange":320}]`)
	if err := s.Apply(TableRangedWeaponStats, weapons); err != nil {
		t.Fatalf("Apply ranged_weapon_stats: %v", err)
	}

	v := s.View()
	if d, ok := v.ItemDefinitions[7]; !ok || d.Name != "Mushroom" {
		t.Fatalf("item definition = %+v, ok=%v", d, ok)
	}
	if w, ok := v.RangedWeapons["Hunting Bow"]; !ok || w.WeaponRange != 320 {
		t.Fatalf("ranged weapon = %+v, ok=%v", w, ok)
	}
}

func TestApplyUnknownTable(t *testing.T) {
	s := NewStore()
	if err := s.Apply("no_such_table", json.RawMessage(`[]`)); err == nil {
		t.Fatal("unknown table accepted")
	}
}

func TestApplyMalformedPayload(t *testing.T) {
	s := NewStore()
	if err := s.Apply(TablePlayers, json.RawMessage(`{"not":"an array"}`)); err == nil {
		t.Fatal("malformed payload accepted")
	}
	// The table is untouched after the failed apply
	if n := len(s.View().Players); n != 0 {
		t.Fatalf("players = %d after failed apply", n)
	}
}
