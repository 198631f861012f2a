package domain

// DefaultWeeklyTarget is the fixed per-area completion target for each week.
const DefaultWeeklyTarget = 4

// WeeksPerYear is the size of the goal grid along the week axis.
const WeeksPerYear = 52

// WeeklyGoal tracks per-area progress for a single week of the tracked year.
// Current and Completed are always derivable from the habit collection and
// are filled by pure recomputation, never patched incrementally.
type WeeklyGoal struct {
	Area               string `json:"area"`
	WeekNumber         int    `json:"week_number"`
	Year               int    `json:"year"`
	TargetCompletions  int    `json:"target_completions"`
	CurrentCompletions int    `json:"current_completions"`
	Completed          bool   `json:"completed"`
}

// WeeklyProgress is the per-area, per-week view handed to callers. Missing
// goal rows default rather than fail.
type WeeklyProgress struct {
	Current   int  `json:"current"`
	Target    int  `json:"target"`
	Completed bool `json:"completed"`
}
