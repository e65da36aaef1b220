// Package chart renders kill time distributions and upgrade rankings as a
// standalone HTML page
package chart

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/osrsdps/dps-console/internal/entities"
	"github.com/osrsdps/dps-console/internal/errors"
	"github.com/osrsdps/dps-console/internal/upgrades"
)

// DefaultUpgradeLimit caps the bars in the upgrade chart
const DefaultUpgradeLimit = 15

// Report is everything one page shows. Nil or empty parts are skipped.
type Report struct {
	Target   string
	Result   *entities.CombatResult
	CDF      []entities.CDFPoint
	Upgrades []entities.UpgradeSuggestion
	// UpgradeLimit defaults to DefaultUpgradeLimit
	UpgradeLimit int
}

// Render writes the report page to w
func Render(w io.Writer, r *Report) error {
	if r == nil {
		return errors.InvalidArgument("report cannot be nil")
	}

	page := components.NewPage()
	page.PageTitle = "DPS report"
	if r.Target != "" {
		page.PageTitle = "DPS report: " + r.Target
	}

	added := 0
	if len(r.CDF) > 0 {
		page.AddCharts(CDF(r.CDF, r.Target, r.Result))
		added++
	}
	if len(r.Upgrades) > 0 {
		limit := r.UpgradeLimit
		if limit <= 0 {
			limit = DefaultUpgradeLimit
		}
		page.AddCharts(Upgrades(r.Upgrades, limit))
		added++
	}
	if added == 0 {
		return errors.FailedPrecondition("nothing to render")
	}

	if err := page.Render(w); err != nil {
		return errors.Wrap(err, "failed to render report")
	}
	return nil
}

// CDF builds the cumulative kill chance line. The subtitle carries the
// headline numbers when a result is given.
func CDF(points []entities.CDFPoint, target string, result *entities.CombatResult) *charts.Line {
	title := "Kill time distribution"
	if target != "" {
		title += ": " + target
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: summary(result)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Time (s)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Kill chance (%)", Min: 0, Max: 100}),
	)

	labels := make([]string, len(points))
	data := make([]opts.LineData, len(points))
	for i, p := range points {
		labels[i] = strconv.FormatFloat(p.Time, 'f', 1, 64)
		data[i] = opts.LineData{Value: round(p.Percent, 1)}
	}

	line.SetXAxis(labels).AddSeries("Cumulative probability of kill", data)
	return line
}

// Upgrades builds a bar chart of the first limit suggestions, in the order
// given
func Upgrades(list []entities.UpgradeSuggestion, limit int) *charts.Bar {
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Upgrades"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "DPS"}),
	)

	labels := make([]string, len(list))
	increase := make([]opts.BarData, len(list))
	efficiency := make([]opts.BarData, len(list))
	for i, u := range list {
		labels[i] = fmt.Sprintf("%s (%s)", strings.Join(u.ItemNames, " + "), upgrades.FormatPrice(u.Price))
		increase[i] = opts.BarData{Value: round(u.DPSIncrease, 3)}
		efficiency[i] = opts.BarData{Value: round(u.DPSPerMillionGP, 3)}
	}

	bar.SetXAxis(labels).
		AddSeries("DPS increase", increase).
		AddSeries("DPS per 1M gp", efficiency)
	return bar
}

func summary(r *entities.CombatResult) string {
	if r == nil {
		return ""
	}
	return fmt.Sprintf("%.2f dps, max hit %d, %.1f%% accuracy, %.1fs avg, %.1f kills/h",
		r.DPS, r.MaxHit, r.HitChance*100, r.AvgTTK, r.KillsPerHour)
}

func round(v float64, places int) float64 {
	f, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	return f
}
