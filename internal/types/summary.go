package types

// ExerciseStat is a per-exercise tally across the full completed history.
// Volume is rounded to a whole number and BestWeight to one decimal for
// display.
type ExerciseStat struct {
	Name       string  `json:"name"`
	Sessions   int     `json:"sessions"`
	Sets       int     `json:"sets"`
	Reps       int     `json:"reps"`
	Volume     float64 `json:"volume"`
	BestWeight float64 `json:"bestWeight"`
}

// PBEvent is one strict increase of an exercise's best-ever weight, reported
// only when the session lands within the trailing 30 days.
type PBEvent struct {
	Exercise string  `json:"exercise"`
	Date     string  `json:"date"`
	Weight   float64 `json:"weight"`
	Delta    float64 `json:"delta"`
}

// MetricsSummary is the derived statistical picture of the training history.
// It is recomputed per request and never persisted.
type MetricsSummary struct {
	TotalSessions   int            `json:"totalSessions"`
	Sessions7       int            `json:"sessions7"`
	Sessions30      int            `json:"sessions30"`
	Volume7         float64        `json:"volume7"`
	Minutes7        int            `json:"minutes7"`
	AvgMinutes7     int            `json:"avgMinutes7"`
	LastWorkoutDate string         `json:"lastWorkoutDate,omitempty"`
	DaysSinceLast   *int           `json:"daysSinceLast"`
	TopExercises    []ExerciseStat `json:"topExercises"`
	RecentPBs       []PBEvent      `json:"recentPBs"`
	LatestPB        *PBEvent       `json:"latestPB,omitempty"`
	WeeklyGoal      int            `json:"weeklyGoal"`
	WeeklyLeft      int            `json:"weeklyLeft"`
	// FocusMuscleGroup is the least-frequently trained muscle group, set only
	// when at least two distinct groups have been trained.
	FocusMuscleGroup string `json:"focusMuscleGroup,omitempty"`
}
