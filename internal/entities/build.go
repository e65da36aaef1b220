package entities

// Combat skills tracked on a build
const (
	SkillAttack    = "Attack"
	SkillStrength  = "Strength"
	SkillDefence   = "Defence"
	SkillRanged    = "Ranged"
	SkillMagic     = "Magic"
	SkillHitpoints = "Hitpoints"
	SkillPrayer    = "Prayer"
)

// DefaultLevel is the starting level for every combat skill
const DefaultLevel = 99

// CombatSkills lists the skills a build carries, in display order
var CombatSkills = []string{
	SkillAttack,
	SkillStrength,
	SkillDefence,
	SkillRanged,
	SkillMagic,
	SkillHitpoints,
	SkillPrayer,
}

// IsCombatSkill reports whether name is one of CombatSkills
func IsCombatSkill(name string) bool {
	for _, s := range CombatSkills {
		if s == name {
			return true
		}
	}
	return false
}

// Buff names a toggleable combat boost
type Buff string

// Supported buffs
const (
	BuffPiety       Buff = "piety"
	BuffRigour      Buff = "rigour"
	BuffSuperCombat Buff = "superCombat"
)

// Buffs holds the active toggles
type Buffs struct {
	Piety       bool `json:"piety" yaml:"piety"`
	Rigour      bool `json:"rigour" yaml:"rigour"`
	SuperCombat bool `json:"superCombat" yaml:"superCombat"`
}

// Get returns the state of a single buff
func (b Buffs) Get(buff Buff) (bool, bool) {
	switch buff {
	case BuffPiety:
		return b.Piety, true
	case BuffRigour:
		return b.Rigour, true
	case BuffSuperCombat:
		return b.SuperCombat, true
	default:
		return false, false
	}
}

// With returns a copy with one buff changed. Unknown buffs are ignored.
func (b Buffs) With(buff Buff, enabled bool) Buffs {
	switch buff {
	case BuffPiety:
		b.Piety = enabled
	case BuffRigour:
		b.Rigour = enabled
	case BuffSuperCombat:
		b.SuperCombat = enabled
	}
	return b
}

// EquippedItem is one occupied equipment slot
type EquippedItem struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Item Item   `json:"-"`
}

// Build is a point in time view of the player's stats, buffs and gear.
// Levels are passed through to the engine without clamping.
type Build struct {
	Username  string                  `json:"username,omitempty"`
	Stats     map[string]int          `json:"stats"`
	Buffs     Buffs                   `json:"buffs"`
	Equipment map[string]EquippedItem `json:"equipment"`
}

// DefaultStats returns every combat skill at DefaultLevel
func DefaultStats() map[string]int {
	stats := make(map[string]int, len(CombatSkills))
	for _, s := range CombatSkills {
		stats[s] = DefaultLevel
	}
	return stats
}

// Clone returns a deep copy
func (b *Build) Clone() *Build {
	if b == nil {
		return nil
	}

	out := &Build{
		Username:  b.Username,
		Buffs:     b.Buffs,
		Stats:     make(map[string]int, len(b.Stats)),
		Equipment: make(map[string]EquippedItem, len(b.Equipment)),
	}
	for k, v := range b.Stats {
		out.Stats[k] = v
	}
	for k, v := range b.Equipment {
		out.Equipment[k] = v
	}
	return out
}
