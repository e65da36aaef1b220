// Package upgrades filters and ranks the advisor's upgrade suggestions
package upgrades

import (
	"fmt"
	"sort"

	"github.com/osrsdps/dps-console/internal/entities"
	"github.com/osrsdps/dps-console/internal/errors"
)

// Ranking selects the sort key of the derived view
type Ranking string

// Ranking modes
const (
	RankEfficiency  Ranking = "efficiency"
	RankRawIncrease Ranking = "rawIncrease"
)

// Rankings lists the accepted modes
var Rankings = []string{string(RankEfficiency), string(RankRawIncrease)}

// ParseRanking validates a mode name
func ParseRanking(mode string) (Ranking, error) {
	switch Ranking(mode) {
	case RankEfficiency, RankRawIncrease:
		return Ranking(mode), nil
	default:
		return "", errors.InvalidArgumentf("unknown ranking mode %q", mode).
			WithMeta("allowed", Rankings)
	}
}

// Recommender keeps the last raw advisor list and the view settings. Changing
// a setting re-derives from the retained list without asking the engine
// again. It is not safe for concurrent use.
type Recommender struct {
	raw        []entities.UpgradeSuggestion
	ranking    Ranking
	excludeDuo bool
}

// NewRecommender starts with efficiency ranking and duos included
func NewRecommender() *Recommender {
	return &Recommender{ranking: RankEfficiency}
}

// SetRaw replaces the retained list
func (r *Recommender) SetRaw(raw []entities.UpgradeSuggestion) {
	r.raw = append([]entities.UpgradeSuggestion(nil), raw...)
}

// Raw returns a copy of the retained list
func (r *Recommender) Raw() []entities.UpgradeSuggestion {
	return append([]entities.UpgradeSuggestion(nil), r.raw...)
}

// SetActiveRanking changes the sort key. Unknown modes leave it unchanged.
func (r *Recommender) SetActiveRanking(mode string) error {
	ranking, err := ParseRanking(mode)
	if err != nil {
		return err
	}
	r.ranking = ranking
	return nil
}

// Ranking returns the active mode
func (r *Recommender) Ranking() Ranking {
	return r.ranking
}

// SetExcludeDuo toggles the duo filter
func (r *Recommender) SetExcludeDuo(exclude bool) {
	r.excludeDuo = exclude
}

// ExcludeDuo reports the duo filter state
func (r *Recommender) ExcludeDuo() bool {
	return r.excludeDuo
}

// DerivedView applies the current settings to the retained list
func (r *Recommender) DerivedView() []entities.UpgradeSuggestion {
	return Derive(r.raw, r.excludeDuo, r.ranking)
}

// Derive filters duos when asked and sorts descending by the ranking key.
// Ties keep their advisor order. raw is not modified.
func Derive(raw []entities.UpgradeSuggestion, excludeDuo bool, ranking Ranking) []entities.UpgradeSuggestion {
	out := make([]entities.UpgradeSuggestion, 0, len(raw))
	for _, s := range raw {
		if excludeDuo && s.Duo() {
			continue
		}
		out = append(out, s)
	}

	key := func(s entities.UpgradeSuggestion) float64 { return s.DPSPerMillionGP }
	if ranking == RankRawIncrease {
		key = func(s entities.UpgradeSuggestion) float64 { return s.DPSIncrease }
	}

	sort.SliceStable(out, func(i, j int) bool {
		return key(out[i]) > key(out[j])
	})
	return out
}

// FormatPrice renders a coin amount the way the in-game exchange does:
// 1.2M, 350K, 900
func FormatPrice(price int64) string {
	switch {
	case price >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(price)/1_000_000)
	case price >= 1_000:
		return fmt.Sprintf("%.0fK", float64(price)/1_000)
	default:
		return fmt.Sprintf("%d", price)
	}
}
