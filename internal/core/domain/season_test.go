package domain_test

import (
	"testing"
	"time"

	"github.com/lucafgreco/hexlife/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestCurrentSeason(t *testing.T) {
	tests := []struct {
		month time.Month
		want  string
	}{
		{time.January, "Winter Vanguard"},
		{time.March, "Winter Vanguard"},
		{time.April, "Spring Growth"},
		{time.June, "Spring Growth"},
		{time.July, "Summer Peak"},
		{time.September, "Summer Peak"},
		{time.October, "Autumn Harvest"},
		{time.December, "Autumn Harvest"},
	}

	for _, tc := range tests {
		now := time.Date(2026, tc.month, 15, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, tc.want, domain.CurrentSeason(now).Name, "month %s", tc.month)
	}
}

func TestSeasonArc_Days(t *testing.T) {
	t.Run("winter spans 90 days in a non-leap year", func(t *testing.T) {
		winter := domain.CurrentSeason(time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, 90, winter.TotalDays())
	})

	t.Run("elapsed days never drop below 1", func(t *testing.T) {
		start := time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC)
		spring := domain.CurrentSeason(start)
		assert.Equal(t, 1, spring.DaysElapsed(start))
	})

	t.Run("elapsed days grow with the clock", func(t *testing.T) {
		spring := domain.CurrentSeason(time.Date(2026, time.April, 1, 0, 0, 0, 0, time.UTC))
		later := time.Date(2026, time.April, 11, 6, 0, 0, 0, time.UTC)
		assert.Equal(t, 11, spring.DaysElapsed(later))
	})

	t.Run("each arc carries its own color", func(t *testing.T) {
		assert.Equal(t, "#60A5FA", domain.CurrentSeason(time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC)).Color)
		assert.Equal(t, "#FB923C", domain.CurrentSeason(time.Date(2026, time.November, 2, 0, 0, 0, 0, time.UTC)).Color)
	})
}
