package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lucafgreco/hexlife/internal/core/domain"
	"github.com/lucafgreco/hexlife/internal/core/metrics"
	"github.com/lucafgreco/hexlife/internal/core/tracker"
)

// MetricsHandler serves the derived analytics: per-area rates, weekly goal
// progress, season-arc progress and the chart feeds.
type MetricsHandler struct {
	t *tracker.Tracker
}

func NewMetricsHandler(t *tracker.Tracker) *MetricsHandler {
	return &MetricsHandler{t: t}
}

func (h *MetricsHandler) RegisterRoutes(router *gin.RouterGroup) {
	m := router.Group("/metrics")
	{
		m.GET("/areas", h.AreaOverview)
		m.GET("/weekly", h.Weekly)
		m.GET("/season", h.Season)
		m.GET("/charts/bars", h.BarChart)
		m.GET("/charts/radar", h.RadarChart)
	}
}

type areaOverview struct {
	domain.LifeArea
	CompletionRate float64               `json:"completion_rate"`
	Week           domain.WeeklyProgress `json:"week"`
}

// AreaOverview mirrors the six area cards: overall completion percentage plus
// the current week's goal progress.
func (h *MetricsHandler) AreaOverview(c *gin.Context) {
	habits := h.t.Habits()
	window := h.t.DateRange()
	grid := h.t.WeeklyGoals()
	week := h.t.CurrentWeek()

	out := make([]areaOverview, 0, len(domain.LifeAreas()))
	for _, area := range domain.LifeAreas() {
		out = append(out, areaOverview{
			LifeArea:       area,
			CompletionRate: metrics.AreaCompletionRate(habits, area.ID, window),
			Week:           metrics.WeeklyProgress(grid, area.ID, week, h.t.Year()),
		})
	}
	c.JSON(http.StatusOK, gin.H{"current_week": week, "areas": out})
}

func (h *MetricsHandler) Weekly(c *gin.Context) {
	week, ok := intQuery(c, "week")
	if !ok {
		week = h.t.CurrentWeek()
	}
	if week < 1 || week > domain.WeeksPerYear {
		c.JSON(http.StatusBadRequest, gin.H{"error": "week must be between 1 and 52"})
		return
	}

	grid := h.t.WeeklyGoals()
	out := make(map[string]domain.WeeklyProgress, len(domain.LifeAreas()))
	for _, area := range domain.LifeAreas() {
		out[area.ID] = metrics.WeeklyProgress(grid, area.ID, week, h.t.Year())
	}
	c.JSON(http.StatusOK, gin.H{"week": week, "areas": out})
}

func (h *MetricsHandler) Season(c *gin.Context) {
	c.JSON(http.StatusOK, metrics.SeasonProgress(h.t.Habits(), time.Now().UTC()))
}

func (h *MetricsHandler) BarChart(c *gin.Context) {
	habits := h.t.HabitsByArea(c.Query("area"))
	c.JSON(http.StatusOK, metrics.BarData(habits, h.t.DateRange()))
}

func (h *MetricsHandler) RadarChart(c *gin.Context) {
	if c.Query("scope") == "season" {
		c.JSON(http.StatusOK, metrics.SeasonRadarData(h.t.Habits(), time.Now().UTC()))
		return
	}
	c.JSON(http.StatusOK, metrics.RadarData(h.t.Habits(), h.t.DateRange()))
}

func intQuery(c *gin.Context, name string) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
