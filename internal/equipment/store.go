// Package equipment holds the player's worn items, one per slot
package equipment

import (
	"sort"

	"github.com/osrsdps/dps-console/internal/entities"
)

// Status reports what an Equip or Unequip call did
type Status string

// Statuses
const (
	StatusApplied     Status = "applied"
	StatusUnknownItem Status = "unknown_item"
	StatusNoop        Status = "noop"
)

// ItemLookup resolves item ids against the item table
type ItemLookup interface {
	Item(id string) (entities.Item, bool)
}

// EquipResult describes the outcome of Equip
type EquipResult struct {
	Status Status
	// Slot is the slot the item went into after normalization
	Slot          string
	Item          entities.Item
	ClearedShield bool
}

// UnequipResult describes the outcome of Unequip
type UnequipResult struct {
	Status  Status
	Removed *entities.EquippedItem
}

// Store is the equipment half of a build. It is not safe for concurrent
// use; the session serializes access.
type Store struct {
	items ItemLookup
	slots map[string]entities.EquippedItem
}

// NewStore creates an empty Store
func NewStore(items ItemLookup) *Store {
	return &Store{
		items: items,
		slots: make(map[string]entities.EquippedItem),
	}
}

// SetItems swaps the item table used for lookups
func (s *Store) SetItems(items ItemLookup) {
	s.items = items
}

// Equip puts item id into slot. The item's declared slot wins over the
// requested one and two-handed weapons go into the weapon slot, clearing
// any shield. Unknown ids change nothing.
func (s *Store) Equip(slot, id string) EquipResult {
	if s.items == nil {
		return EquipResult{Status: StatusUnknownItem, Slot: slot}
	}
	item, ok := s.items.Item(id)
	if !ok {
		return EquipResult{Status: StatusUnknownItem, Slot: slot}
	}

	target := slot
	if item.Slot != "" {
		target = item.Slot
	}

	result := EquipResult{Status: StatusApplied, Item: item}
	if target == entities.SlotTwoHanded {
		target = entities.SlotWeapon
		if _, ok := s.slots[entities.SlotShield]; ok {
			delete(s.slots, entities.SlotShield)
			result.ClearedShield = true
		}
	}

	s.slots[target] = entities.EquippedItem{ID: item.ID, Name: item.Name, Item: item}
	result.Slot = target
	return result
}

// Unequip empties slot
func (s *Store) Unequip(slot string) UnequipResult {
	current, ok := s.slots[slot]
	if !ok {
		return UnequipResult{Status: StatusNoop}
	}
	delete(s.slots, slot)
	return UnequipResult{Status: StatusApplied, Removed: &current}
}

// Get returns the item in slot
func (s *Store) Get(slot string) (entities.EquippedItem, bool) {
	item, ok := s.slots[slot]
	return item, ok
}

// Snapshot returns a copy of every occupied slot
func (s *Store) Snapshot() map[string]entities.EquippedItem {
	out := make(map[string]entities.EquippedItem, len(s.slots))
	for slot, item := range s.slots {
		out[slot] = item
	}
	return out
}

// Slots returns the occupied slot names in order
func (s *Store) Slots() []string {
	slots := make([]string, 0, len(s.slots))
	for slot := range s.slots {
		slots = append(slots, slot)
	}
	sort.Strings(slots)
	return slots
}

// Clear empties every slot
func (s *Store) Clear() {
	s.slots = make(map[string]entities.EquippedItem)
}
