package domain

import "time"

// DateKeyLayout is the canonical calendar-day key format.
const DateKeyLayout = "2006-01-02"

// WindowRadius is the number of days shown on each side of today.
const WindowRadius = 15

// DateHeader describes one day of the tracker's fixed display window.
type DateHeader struct {
	Date       time.Time `json:"date"`
	Formatted  string    `json:"formatted"`
	DayOfWeek  string    `json:"day_of_week"`
	WeekNumber int       `json:"week_number"`
	Year       int       `json:"year"`
}

// DateKey formats a time as a calendar-day key.
func DateKey(t time.Time) string {
	return t.Format(DateKeyLayout)
}

// WeekNumber computes the 1-based week of the year, counting weeks as
// Sunday-aligned 7-day buckets from January 1st.
func WeekNumber(t time.Time) int {
	firstDay := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	pastDays := int(day.Sub(firstDay).Hours() / 24)
	return (pastDays+int(firstDay.Weekday()))/7 + 1
}

// BuildDateWindow generates the header for every day in the inclusive
// [today-WindowRadius, today+WindowRadius] range. The window is built once at
// startup and does not shift while the session stays open.
func BuildDateWindow(today time.Time) []DateHeader {
	headers := make([]DateHeader, 0, 2*WindowRadius+1)
	for offset := -WindowRadius; offset <= WindowRadius; offset++ {
		d := today.AddDate(0, 0, offset)
		headers = append(headers, DateHeader{
			Date:       d,
			Formatted:  d.Format("Jan 2"),
			DayOfWeek:  d.Format("Mon"),
			WeekNumber: WeekNumber(d),
			Year:       d.Year(),
		})
	}
	return headers
}
