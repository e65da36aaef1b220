package tables

import (
	"encoding/json"
	"sort"
	"strconv"

	"github.com/osrsdps/dps-console/internal/entities"
	"github.com/osrsdps/dps-console/internal/errors"
	"github.com/osrsdps/dps-console/internal/pkg/jsonnum"
)

type itemWire struct {
	Name      string `json:"name"`
	Equipment *struct {
		Slot string `json:"slot"`
	} `json:"equipment"`
}

type monsterWire struct {
	Name         string      `json:"name"`
	Hitpoints    jsonnum.Int `json:"hitpoints"`
	CombatLevel  jsonnum.Int `json:"combat_level"`
	DefenceLevel jsonnum.Int `json:"defence_level"`
}

type priceWire struct {
	Data map[string]json.RawMessage `json:"data"`
}

type priceRange struct {
	High jsonnum.Int `json:"high"`
	Low  jsonnum.Int `json:"low"`
}

// decodeItems parses {id: {name, equipment: {slot}}}. Entries that are not
// objects or have no name are skipped.
func decodeItems(data []byte) (map[string]entities.Item, []string, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "item table is not an object")
	}

	items := make(map[string]entities.Item, len(raw))
	for id, entry := range raw {
		var w itemWire
		if err := json.Unmarshal(entry, &w); err != nil || w.Name == "" {
			continue
		}
		item := entities.Item{ID: id, Name: w.Name, Record: entry}
		if w.Equipment != nil {
			item.Slot = w.Equipment.Slot
		}
		items[id] = item
	}

	return items, sortedIDs(items), nil
}

func decodeMonster(id string, source entities.TargetSource, entry json.RawMessage) (entities.Monster, bool) {
	var w monsterWire
	if err := json.Unmarshal(entry, &w); err != nil || w.Name == "" {
		return entities.Monster{}, false
	}
	return entities.Monster{
		ID:           id,
		Name:         w.Name,
		Source:       source,
		Hitpoints:    int(w.Hitpoints),
		CombatLevel:  int(w.CombatLevel),
		DefenceLevel: int(w.DefenceLevel),
		Record:       entry,
	}, true
}

// decodeMonsters parses the {id: record} monster table in id order
func decodeMonsters(data []byte) ([]entities.Monster, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "monster table is not an object")
	}

	monsters := make([]entities.Monster, 0, len(raw))
	for _, id := range sortedIDs(raw) {
		if m, ok := decodeMonster(id, entities.SourceMonster, raw[id]); ok {
			monsters = append(monsters, m)
		}
	}
	return monsters, nil
}

// decodeBosses parses the boss array; the array index is the id
func decodeBosses(data []byte) ([]entities.Monster, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "boss table is not an array")
	}

	bosses := make([]entities.Monster, 0, len(raw))
	for i, entry := range raw {
		if m, ok := decodeMonster(strconv.Itoa(i), entities.SourceBoss, entry); ok {
			bosses = append(bosses, m)
		}
	}
	return bosses, nil
}

// decodePrices parses {data: {id: price}} where price is a number, a
// numeric string or a {high, low} pair. High wins when both are present.
func decodePrices(data []byte) (map[string]int64, error) {
	var w priceWire
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "price table is not an object")
	}

	prices := make(map[string]int64, len(w.Data))
	for id, entry := range w.Data {
		var price int64
		if len(entry) > 0 && entry[0] == '{' {
			var r priceRange
			if err := json.Unmarshal(entry, &r); err != nil {
				continue
			}
			price = int64(r.High)
			if price <= 0 {
				price = int64(r.Low)
			}
		} else {
			var n jsonnum.Int
			if err := json.Unmarshal(entry, &n); err != nil {
				continue
			}
			price = int64(n)
		}
		if price > 0 {
			prices[id] = price
		}
	}
	return prices, nil
}

// sortedIDs orders keys numerically when they are integers, the way the
// tables are published, and lexically otherwise
func sortedIDs[V any](m map[string]V) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, errA := strconv.Atoi(ids[i])
		b, errB := strconv.Atoi(ids[j])
		switch {
		case errA == nil && errB == nil:
			return a < b
		case errA == nil:
			return true
		case errB == nil:
			return false
		default:
			return ids[i] < ids[j]
		}
	})
	return ids
}
