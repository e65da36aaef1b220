// Package ttk turns kill time samples into a cumulative distribution
package ttk

import (
	"sort"

	"github.com/osrsdps/dps-console/internal/entities"
)

// Transform builds a step CDF from kill time samples. The curve starts at
// (0, 0) and has one point per distinct sample, placed at its last
// occurrence, so the final point is always 100 percent. Samples are
// expected ascending; unsorted input is sorted on a copy first.
func Transform(samples []float64) []entities.CDFPoint {
	points := []entities.CDFPoint{{Time: 0, Percent: 0}}
	if len(samples) == 0 {
		return points
	}

	sorted := samples
	if !sort.Float64sAreSorted(samples) {
		sorted = append([]float64(nil), samples...)
		sort.Float64s(sorted)
	}

	total := float64(len(sorted))
	for i, v := range sorted {
		if i+1 < len(sorted) && sorted[i+1] == v {
			continue
		}
		points = append(points, entities.CDFPoint{
			Time:    v,
			Percent: 100 * float64(i+1) / total,
		})
	}
	return points
}

// Percentile returns the first time at which the curve reaches pct
func Percentile(points []entities.CDFPoint, pct float64) (float64, bool) {
	for _, p := range points {
		if p.Percent >= pct && p.Percent > 0 {
			return p.Time, true
		}
	}
	return 0, false
}
