package engine

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/osrsdps/dps-console/internal/entities"
	"github.com/osrsdps/dps-console/internal/errors"
	"github.com/osrsdps/dps-console/internal/pkg/jsonnum"
)

type resultsWire struct {
	DPS          jsonnum.Float `json:"dps"`
	MaxHit       jsonnum.Int   `json:"maxHit"`
	HitChance    jsonnum.Float `json:"hitChance"`
	Style        string        `json:"style"`
	Stance       string        `json:"stance"`
	AttackSpeed  jsonnum.Int   `json:"attackSpeed"`
	AvgTTK       jsonnum.Float `json:"avgTTK"`
	KillsPerHour jsonnum.Float `json:"killsPerHour"`
	ActiveSet    string        `json:"activeSet"`

	IsFang     bool `json:"isFang"`
	IsDHL      bool `json:"isDHL"`
	IsDHCB     bool `json:"isDHCB"`
	IsArclight bool `json:"isArclight"`
	IsKeris    bool `json:"isKeris"`
	IsScythe   bool `json:"isScythe"`
	IsTbow     bool `json:"isTbow"`
	HasSalve   bool `json:"hasSalve"`
	OnTask     bool `json:"onTask"`
}

func (w *resultsWire) effects() []string {
	flags := []struct {
		on   bool
		name string
	}{
		{w.IsFang, "fang"},
		{w.IsDHL, "dhl"},
		{w.IsDHCB, "dhcb"},
		{w.IsArclight, "arclight"},
		{w.IsKeris, "keris"},
		{w.IsScythe, "scythe"},
		{w.IsTbow, "tbow"},
		{w.HasSalve, "salve"},
		{w.OnTask, "on_task"},
	}

	var out []string
	for _, f := range flags {
		if f.on {
			out = append(out, f.name)
		}
	}
	return out
}

// DecodeResults reads a battle results object. Missing or null fields are
// zero and numbers may be numeric strings.
func DecodeResults(payload json.RawMessage) (*entities.CombatResult, error) {
	if isNull(payload) {
		return nil, errors.InvalidArgument("empty results payload")
	}

	var w resultsWire
	if err := json.Unmarshal(payload, &w); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed results payload")
	}

	return &entities.CombatResult{
		DPS:          float64(w.DPS),
		MaxHit:       int(w.MaxHit),
		HitChance:    float64(w.HitChance),
		Style:        w.Style,
		Stance:       w.Stance,
		AttackSpeed:  int(w.AttackSpeed),
		AvgTTK:       float64(w.AvgTTK),
		KillsPerHour: float64(w.KillsPerHour),
		Effects:      w.effects(),
		ActiveSet:    w.ActiveSet,
	}, nil
}

// DecodeSamples reads a kill time array and returns it ascending
func DecodeSamples(payload json.RawMessage) ([]float64, error) {
	if isNull(payload) {
		return nil, nil
	}

	var raw []jsonnum.Float
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed ttk payload")
	}

	samples := make([]float64, len(raw))
	for i, v := range raw {
		samples[i] = float64(v)
	}
	if !sort.Float64sAreSorted(samples) {
		sort.Float64s(samples)
	}
	return samples, nil
}

type suggestionWire struct {
	ItemNames       []string      `json:"itemNames"`
	ItemName        string        `json:"itemName"`
	ItemIDs         []jsonnum.Int `json:"itemIds"`
	ItemID          *jsonnum.Int  `json:"itemId"`
	Slots           []string      `json:"slots"`
	Slot            string        `json:"slot"`
	Price           jsonnum.Int   `json:"price"`
	OldDPS          jsonnum.Float `json:"oldDps"`
	NewDPS          jsonnum.Float `json:"newDps"`
	DPSIncrease     jsonnum.Float `json:"dpsIncrease"`
	DPSPerMillionGP jsonnum.Float `json:"dpsPerMillionGP"`
	IsDuo           bool          `json:"isDuo"`
}

// DecodeSuggestions reads the advisor's suggestion array. The single
// itemName/itemId/slot fields of older engines are lifted into the lists.
func DecodeSuggestions(payload json.RawMessage) ([]entities.UpgradeSuggestion, error) {
	if isNull(payload) {
		return nil, nil
	}

	var raw []suggestionWire
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "malformed suggestions payload")
	}

	out := make([]entities.UpgradeSuggestion, 0, len(raw))
	for _, w := range raw {
		s := entities.UpgradeSuggestion{
			ItemNames:       w.ItemNames,
			Slots:           w.Slots,
			Price:           int64(w.Price),
			OldDPS:          float64(w.OldDPS),
			NewDPS:          float64(w.NewDPS),
			DPSIncrease:     float64(w.DPSIncrease),
			DPSPerMillionGP: float64(w.DPSPerMillionGP),
			IsDuo:           w.IsDuo,
		}
		if len(s.ItemNames) == 0 && w.ItemName != "" {
			s.ItemNames = []string{w.ItemName}
		}
		if len(s.Slots) == 0 && w.Slot != "" {
			s.Slots = []string{w.Slot}
		}
		for _, id := range w.ItemIDs {
			s.ItemIDs = append(s.ItemIDs, int(id))
		}
		if len(s.ItemIDs) == 0 && w.ItemID != nil {
			s.ItemIDs = []int{int(*w.ItemID)}
		}
		out = append(out, s)
	}
	return out, nil
}

func isNull(payload json.RawMessage) bool {
	p := bytes.TrimSpace(payload)
	return len(p) == 0 || bytes.Equal(p, []byte("null"))
}
