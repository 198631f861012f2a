package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lucafgreco/hexlife/internal/core/domain"
	"github.com/lucafgreco/hexlife/internal/core/metrics"
	"github.com/lucafgreco/hexlife/internal/core/tracker"
)

// TrackerHandler exposes the tracker's read accessors and mutation intents
// over JSON. It carries the presentation policies the core deliberately does
// not enforce, like restricting toggles to days inside the display window.
type TrackerHandler struct {
	t *tracker.Tracker
}

func NewTrackerHandler(t *tracker.Tracker) *TrackerHandler {
	return &TrackerHandler{t: t}
}

type createHabitRequest struct {
	Name string `json:"name" binding:"required"`
	Area string `json:"area" binding:"required"`
}

type updateHabitRequest struct {
	Name string `json:"name"`
	Area string `json:"area"`
}

type toggleRequest struct {
	DateKey string `json:"date_key"`
}

func (h *TrackerHandler) RegisterRoutes(router *gin.RouterGroup) {
	habits := router.Group("/habits")
	{
		habits.GET("", h.List)
		habits.POST("", h.Create)
		habits.PUT("/:id", h.Update)
		habits.DELETE("/:id", h.Delete)
		habits.POST("/:id/toggle", h.Toggle)
	}

	router.GET("/areas", h.Areas)
	router.GET("/dates", h.Dates)
	router.GET("/goals", h.Goals)
	router.GET("/will", h.Will)
	router.GET("/state", h.State)
}

func (h *TrackerHandler) List(c *gin.Context) {
	area := c.Query("area")
	c.JSON(http.StatusOK, h.t.HabitsByArea(area))
}

func (h *TrackerHandler) Create(c *gin.Context) {
	var req createHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	habit, err := h.t.AddHabit(c.Request.Context(), req.Name, req.Area)
	if err != nil {
		if errors.Is(err, domain.ErrHabitNameEmpty) || errors.Is(err, domain.ErrHabitNameTooLong) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "habit could not be persisted"})
		return
	}

	c.JSON(http.StatusCreated, habit)
}

func (h *TrackerHandler) Update(c *gin.Context) {
	var req updateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.t.StartEdit(c.Param("id")); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": domain.ErrHabitNotFound.Error()})
		return
	}
	h.t.SetEditDraft(req.Name, req.Area)

	if err := h.t.SaveEdit(c.Request.Context()); err != nil {
		if errors.Is(err, domain.ErrHabitNameTooLong) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "habit update could not be persisted"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"habits": h.t.Habits()})
}

func (h *TrackerHandler) Delete(c *gin.Context) {
	err := h.t.DeleteHabit(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrHabitNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		// Local state was reloaded from the store already.
		c.JSON(http.StatusBadGateway, gin.H{"error": "habit delete could not be persisted"})
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TrackerHandler) Toggle(c *gin.Context) {
	// date_key is optional, an empty body means "today"
	var req toggleRequest
	_ = c.ShouldBindJSON(&req)

	date := time.Now().UTC()
	if req.DateKey != "" {
		parsed, err := time.Parse(domain.DateKeyLayout, req.DateKey)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date_key, expected YYYY-MM-DD"})
			return
		}
		date = parsed
	}

	if !h.insideWindow(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date outside the tracked window"})
		return
	}

	if err := h.t.ToggleCompletion(c.Request.Context(), c.Param("id"), date); err != nil {
		if errors.Is(err, domain.ErrHabitNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "toggle could not be persisted", "total_will": h.t.TotalWill()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"total_will": h.t.TotalWill()})
}

func (h *TrackerHandler) insideWindow(date time.Time) bool {
	key := domain.DateKey(date)
	for _, d := range h.t.DateRange() {
		if domain.DateKey(d.Date) == key {
			return true
		}
	}
	return false
}

func (h *TrackerHandler) Areas(c *gin.Context) {
	c.JSON(http.StatusOK, domain.LifeAreas())
}

func (h *TrackerHandler) Dates(c *gin.Context) {
	c.JSON(http.StatusOK, h.t.DateRange())
}

func (h *TrackerHandler) Goals(c *gin.Context) {
	week, hasWeek := intQuery(c, "week")
	area := c.Query("area")

	grid := h.t.WeeklyGoals()
	if !hasWeek && area == "" {
		c.JSON(http.StatusOK, grid)
		return
	}

	if !hasWeek {
		week = h.t.CurrentWeek()
	}

	if area != "" {
		progress := metrics.WeeklyProgress(grid, area, week, h.t.Year())
		c.JSON(http.StatusOK, progress)
		return
	}

	var filtered []domain.WeeklyGoal
	for _, g := range grid {
		if g.WeekNumber == week {
			filtered = append(filtered, g)
		}
	}
	c.JSON(http.StatusOK, filtered)
}

func (h *TrackerHandler) Will(c *gin.Context) {
	c.JSON(http.StatusOK, metrics.Level(h.t.TotalWill()))
}

func (h *TrackerHandler) State(c *gin.Context) {
	editing := h.t.Editing()
	c.JSON(http.StatusOK, gin.H{
		"ready":        h.t.Ready(),
		"year":         h.t.Year(),
		"current_week": h.t.CurrentWeek(),
		"total_will":   h.t.TotalWill(),
		"habit_count":  len(h.t.Habits()),
		"editing":      editing,
	})
}
