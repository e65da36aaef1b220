// Package tables turns the four opaque lookup tables (items, monsters,
// bosses, prices) into typed, searchable records while keeping the raw
// payloads for the engine.
package tables

// Kind names a lookup table
type Kind string

// Table kinds
const (
	KindItems    Kind = "items"
	KindMonsters Kind = "monsters"
	KindBosses   Kind = "bosses"
	KindPrices   Kind = "prices"
)

// Kinds lists every table in load order
var Kinds = []Kind{KindItems, KindMonsters, KindBosses, KindPrices}

// empty returns the payload used when a table cannot be loaded
func (k Kind) empty() []byte {
	switch k {
	case KindBosses:
		return []byte("[]")
	case KindPrices:
		return []byte(`{"data":{}}`)
	default:
		return []byte("{}")
	}
}
