package entities

// UpgradeSuggestion is one advisor proposal. A duo bundles two items whose
// combined effect was evaluated together.
type UpgradeSuggestion struct {
	ItemNames       []string `json:"itemNames"`
	ItemIDs         []int    `json:"itemIds"`
	Slots           []string `json:"slots"`
	Price           int64    `json:"price"`
	OldDPS          float64  `json:"oldDps"`
	NewDPS          float64  `json:"newDps"`
	DPSIncrease     float64  `json:"dpsIncrease"`
	DPSPerMillionGP float64  `json:"dpsPerMillionGP"`
	IsDuo           bool     `json:"isDuo"`
}

// Duo reports whether the suggestion covers more than one item
func (u UpgradeSuggestion) Duo() bool {
	return u.IsDuo || len(u.ItemNames) > 1
}
