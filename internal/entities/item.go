package entities

import "encoding/json"

// Equipment slots
const (
	SlotHead      = "head"
	SlotCape      = "cape"
	SlotNeck      = "neck"
	SlotAmmo      = "ammo"
	SlotWeapon    = "weapon"
	SlotBody      = "body"
	SlotShield    = "shield"
	SlotLegs      = "legs"
	SlotHands     = "hands"
	SlotFeet      = "feet"
	SlotRing      = "ring"
	SlotTwoHanded = "2h"
)

// EquipmentSlots lists the slots a build can fill
var EquipmentSlots = []string{
	SlotHead,
	SlotCape,
	SlotNeck,
	SlotAmmo,
	SlotWeapon,
	SlotBody,
	SlotShield,
	SlotLegs,
	SlotHands,
	SlotFeet,
	SlotRing,
}

// EquipmentBonusNames lists the bonuses the engine reports per player
var EquipmentBonusNames = []string{
	"attack_stab",
	"attack_slash",
	"attack_crush",
	"attack_magic",
	"attack_ranged",
	"defence_stab",
	"defence_slash",
	"defence_crush",
	"defence_magic",
	"defence_ranged",
	"melee_strength",
	"ranged_strength",
	"magic_damage",
	"prayer",
}

// Item is a typed view of one item table entry. Record keeps the raw entry
// for the engine.
type Item struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Slot   string          `json:"slot,omitempty"`
	Record json.RawMessage `json:"-"`
}

// Equipable reports whether the item declares an equipment slot
func (i Item) Equipable() bool {
	return i.Slot != ""
}

// FitsSlot reports whether the item can go in slot, treating two-handed
// weapons as weapons
func (i Item) FitsSlot(slot string) bool {
	if i.Slot == slot {
		return true
	}
	return slot == SlotWeapon && i.Slot == SlotTwoHanded
}

// TargetSource says which table a monster record came from
type TargetSource string

// Target sources
const (
	SourceMonster TargetSource = "monster"
	SourceBoss    TargetSource = "boss"
)

// Valid reports whether s names a known table
func (s TargetSource) Valid() bool {
	return s == SourceMonster || s == SourceBoss
}

// Monster is a typed view of a monster or boss table entry
type Monster struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Source       TargetSource    `json:"source"`
	Hitpoints    int             `json:"hitpoints"`
	CombatLevel  int             `json:"combatLevel"`
	DefenceLevel int             `json:"defenceLevel"`
	Record       json.RawMessage `json:"-"`
}

// Target is the creature the build is analyzed against. Name plus Source
// identify it since the two tables can share names.
type Target struct {
	Name    string       `json:"name"`
	Source  TargetSource `json:"source"`
	Monster Monster      `json:"monster"`
}

// Same reports whether two targets refer to the same table entry
func (t *Target) Same(other *Target) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.Name == other.Name && t.Source == other.Source
}
