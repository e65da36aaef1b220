package tables

import (
	"strings"

	"github.com/osrsdps/dps-console/internal/entities"
	"github.com/osrsdps/dps-console/internal/errors"
)

// Search limits
const (
	MinQueryLength      = 2
	ItemSearchLimit     = 20
	SlotItemSearchLimit = 50
	MonsterSearchLimit  = 20
)

// Catalog holds the decoded tables. A zero table is empty rather than
// missing, so every lookup is safe before loading finishes. Each kind is
// written by exactly one Load call at a time.
type Catalog struct {
	items     map[string]entities.Item
	itemOrder []string
	monsters  []entities.Monster
	bosses    []entities.Monster
	prices    map[string]int64

	itemsRaw    []byte
	monstersRaw []byte
	bossesRaw   []byte
	pricesRaw   []byte
}

// NewCatalog returns a catalog with every table empty
func NewCatalog() *Catalog {
	c := &Catalog{}
	for _, k := range Kinds {
		// empty payloads always decode
		_ = c.Load(k, k.empty())
	}
	return c
}

// Load decodes data as the given table and replaces it. On error the
// previous table is kept.
func (c *Catalog) Load(kind Kind, data []byte) error {
	switch kind {
	case KindItems:
		items, order, err := decodeItems(data)
		if err != nil {
			return err
		}
		c.items, c.itemOrder, c.itemsRaw = items, order, data
	case KindMonsters:
		monsters, err := decodeMonsters(data)
		if err != nil {
			return err
		}
		c.monsters, c.monstersRaw = monsters, data
	case KindBosses:
		bosses, err := decodeBosses(data)
		if err != nil {
			return err
		}
		c.bosses, c.bossesRaw = bosses, data
	case KindPrices:
		prices, err := decodePrices(data)
		if err != nil {
			return err
		}
		c.prices, c.pricesRaw = prices, data
	default:
		return errors.InvalidArgumentf("unknown table kind %q", kind)
	}
	return nil
}

// RawTable returns the payload a table was decoded from
func (c *Catalog) RawTable(kind Kind) []byte {
	switch kind {
	case KindItems:
		return c.itemsRaw
	case KindMonsters:
		return c.monstersRaw
	case KindBosses:
		return c.bossesRaw
	case KindPrices:
		return c.pricesRaw
	default:
		return nil
	}
}

// SourceTable returns the raw table a target source refers to
func (c *Catalog) SourceTable(source entities.TargetSource) []byte {
	if source == entities.SourceBoss {
		return c.bossesRaw
	}
	return c.monstersRaw
}

// Counts reports the number of decoded records per table
func (c *Catalog) Counts() map[Kind]int {
	return map[Kind]int{
		KindItems:    len(c.items),
		KindMonsters: len(c.monsters),
		KindBosses:   len(c.bosses),
		KindPrices:   len(c.prices),
	}
}

// Item looks up an item by id
func (c *Catalog) Item(id string) (entities.Item, bool) {
	item, ok := c.items[id]
	return item, ok
}

// Price looks up an item price by id
func (c *Catalog) Price(id string) (int64, bool) {
	p, ok := c.prices[id]
	return p, ok
}

// SearchItems returns equipable items whose name contains query. With a
// slot, only items that fit it are returned and the limit is raised.
// Queries shorter than MinQueryLength return nothing.
func (c *Catalog) SearchItems(query, slot string) []entities.Item {
	q := strings.ToLower(strings.TrimSpace(query))
	if len(q) < MinQueryLength {
		return nil
	}

	limit := ItemSearchLimit
	if slot != "" {
		limit = SlotItemSearchLimit
	}

	var out []entities.Item
	for _, id := range c.itemOrder {
		item := c.items[id]
		if !item.Equipable() {
			continue
		}
		if slot != "" && !item.FitsSlot(slot) {
			continue
		}
		if !strings.Contains(strings.ToLower(item.Name), q) {
			continue
		}
		out = append(out, item)
		if len(out) == limit {
			break
		}
	}
	return out
}

// SearchMonsters returns monsters then bosses whose name contains query.
// Records without hitpoints cannot be fought and are skipped.
func (c *Catalog) SearchMonsters(query string) []entities.Monster {
	q := strings.ToLower(strings.TrimSpace(query))
	if len(q) < MinQueryLength {
		return nil
	}

	var out []entities.Monster
	for _, table := range [][]entities.Monster{c.monsters, c.bosses} {
		for _, m := range table {
			if m.Hitpoints <= 0 || !strings.Contains(strings.ToLower(m.Name), q) {
				continue
			}
			out = append(out, m)
			if len(out) == MonsterSearchLimit {
				return out
			}
		}
	}
	return out
}

// FindTarget resolves a target by name within one source table. Bosses
// match an exact name or a name prefix (phase variants share a prefix) and
// must have hitpoints; monsters match the exact name.
func (c *Catalog) FindTarget(name string, source entities.TargetSource) (*entities.Target, bool) {
	if name == "" {
		return nil, false
	}

	switch source {
	case entities.SourceBoss:
		for _, m := range c.bosses {
			if m.Hitpoints > 0 && (m.Name == name || strings.HasPrefix(m.Name, name)) {
				return &entities.Target{Name: m.Name, Source: source, Monster: m}, true
			}
		}
	case entities.SourceMonster:
		for _, m := range c.monsters {
			if m.Name == name {
				return &entities.Target{Name: m.Name, Source: source, Monster: m}, true
			}
		}
	}
	return nil, false
}
