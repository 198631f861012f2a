package metrics

import (
	"time"

	"github.com/lucafgreco/hexlife/internal/core/domain"
)

// RadarChart feeds the six-axis area chart: one value per life area.
type RadarChart struct {
	Labels []string  `json:"labels"`
	Colors []string  `json:"colors"`
	Values []float64 `json:"values"`
}

// RadarData computes the per-area completion rates over the window in
// catalog order.
func RadarData(habits []*domain.Habit, window []domain.DateHeader) RadarChart {
	areas := domain.LifeAreas()
	chart := RadarChart{
		Labels: make([]string, 0, len(areas)),
		Colors: make([]string, 0, len(areas)),
		Values: make([]float64, 0, len(areas)),
	}
	for _, a := range areas {
		chart.Labels = append(chart.Labels, a.Name)
		chart.Colors = append(chart.Colors, a.Color)
		chart.Values = append(chart.Values, AreaCompletionRate(habits, a.ID, window))
	}
	return chart
}

// SeasonRadarData is the radar variant scoped to the current season arc.
func SeasonRadarData(habits []*domain.Habit, now time.Time) RadarChart {
	report := SeasonProgress(habits, now)
	chart := RadarChart{
		Labels: make([]string, 0, len(report.Areas)),
		Colors: make([]string, 0, len(report.Areas)),
		Values: make([]float64, 0, len(report.Areas)),
	}
	for _, stat := range report.Areas {
		chart.Labels = append(chart.Labels, stat.Name)
		chart.Colors = append(chart.Colors, stat.Color)
		chart.Values = append(chart.Values, stat.Rate)
	}
	return chart
}

// BarSeries is one habit's 0/1 daily series across the window.
type BarSeries struct {
	Label string `json:"label"`
	Color string `json:"color"`
	Data  []int  `json:"data"`
}

// BarChart feeds the stacked daily-completion chart.
type BarChart struct {
	Labels []string    `json:"labels"`
	Series []BarSeries `json:"series"`
}

// BarData builds the stacked series for the given habits (pre-filtered by
// area if the caller wants a scoped view).
func BarData(habits []*domain.Habit, window []domain.DateHeader) BarChart {
	chart := BarChart{
		Labels: make([]string, 0, len(window)),
		Series: make([]BarSeries, 0, len(habits)),
	}
	for _, day := range window {
		chart.Labels = append(chart.Labels, day.Formatted)
	}

	for _, h := range habits {
		series := BarSeries{Label: h.Name, Color: h.Color, Data: make([]int, 0, len(window))}
		for _, day := range window {
			if h.CompletedOn(domain.DateKey(day.Date)) {
				series.Data = append(series.Data, 1)
			} else {
				series.Data = append(series.Data, 0)
			}
		}
		chart.Series = append(chart.Series, series)
	}
	return chart
}
