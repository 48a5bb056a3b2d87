package network

import "encoding/json"

// Reducer names accepted by the backend
const (
	ReducerUpdateInput      = "update_player_input"
	ReducerJump             = "jump"
	ReducerSetSprinting     = "set_sprinting"
	ReducerConsumeItem      = "consume_item"
	ReducerEquipItem        = "equip_item"
	ReducerUnequipItem      = "unequip_item"
	ReducerStartPlacement   = "start_placement"
	ReducerCancelPlacement  = "cancel_placement"
	ReducerPlaceItem        = "place_item"
	ReducerQuickMoveToBox   = "quick_move_to_box"
	ReducerQuickMoveFromBox = "quick_move_from_box"
	ReducerSetSpawn         = "set_spawn"
	ReducerRespawn          = "respawn"
)

func isPlacementReducer(name string) bool {
	return name == ReducerStartPlacement || name == ReducerPlaceItem
}

// CallReducer queues a fire-and-forget remote call. The renderer consumes
// no return value; a full queue drops the call with a log line rather than
// blocking the frame
func (c *Client) CallReducer(name string, args any) {
	raw, err := json.Marshal(args)
	if err != nil {
		c.log.WithField("reducer", name).WithError(err).Warn("encode args failed")
		return
	}
	select {
	case c.sendCh <- Envelope{Type: MsgReducerCall, Reducer: name, Args: raw}:
	default:
		c.log.WithField("reducer", name).Warn("send queue full, call dropped")
	}
}

// Movement intents

// UpdateInput reports the current movement vector and facing
func (c *Client) UpdateInput(dx, dy float64, direction string) {
	c.CallReducer(ReducerUpdateInput, map[string]any{
		"dx": dx, "dy": dy, "direction": direction,
	})
}

// Jump requests a jump
func (c *Client) Jump() {
	c.CallReducer(ReducerJump, map[string]any{})
}

// SetSprinting toggles sprint
func (c *Client) SetSprinting(on bool) {
	c.CallReducer(ReducerSetSprinting, map[string]any{"sprinting": on})
}

// Item intents

// ConsumeItem eats or drinks an inventory stack
func (c *Client) ConsumeItem(instanceID uint64) {
	c.CallReducer(ReducerConsumeItem, map[string]any{"itemInstanceId": instanceID})
}

// EquipItem holds an item from the hotbar
func (c *Client) EquipItem(instanceID uint64) {
	c.CallReducer(ReducerEquipItem, map[string]any{"itemInstanceId": instanceID})
}

// UnequipItem empties the hands
func (c *Client) UnequipItem() {
	c.CallReducer(ReducerUnequipItem, map[string]any{})
}

// Placement intents

// StartPlacement begins placing an item archetype
func (c *Client) StartPlacement(itemDefID uint64) {
	c.CallReducer(ReducerStartPlacement, map[string]any{"itemDefId": itemDefID})
}

// CancelPlacement abandons the in-progress placement
func (c *Client) CancelPlacement() {
	c.CallReducer(ReducerCancelPlacement, map[string]any{})
}

// PlaceItem commits the placement at a world position
func (c *Client) PlaceItem(itemDefID uint64, x, y float64) {
	c.CallReducer(ReducerPlaceItem, map[string]any{
		"itemDefId": itemDefID, "x": x, "y": y,
	})
}

// Container intents

// QuickMoveToBox moves a stack from inventory into an open box
func (c *Client) QuickMoveToBox(boxID string, instanceID uint64) {
	c.CallReducer(ReducerQuickMoveToBox, map[string]any{
		"boxId": boxID, "itemInstanceId": instanceID,
	})
}

// QuickMoveFromBox moves a stack from an open box into inventory
func (c *Client) QuickMoveFromBox(boxID string, instanceID uint64) {
	c.CallReducer(ReducerQuickMoveFromBox, map[string]any{
		"boxId": boxID, "itemInstanceId": instanceID,
	})
}

// SetSpawn binds the player's respawn point to a sleeping bag
func (c *Client) SetSpawn(bagID string) {
	c.CallReducer(ReducerSetSpawn, map[string]any{"bagId": bagID})
}

// Respawn requests a respawn after death
func (c *Client) Respawn() {
	c.CallReducer(ReducerRespawn, map[string]any{})
}
