package types

// SetEntry is one performed set inside an exercise. Reps stays free text
// ("8", "8-10") and is parsed at the aggregation boundary. Done is UI state
// and never affects aggregation.
type SetEntry struct {
	Reps   string   `json:"reps"`
	Weight *float64 `json:"weight,omitempty"`
	Done   *bool    `json:"done,omitempty"`
}

// ExerciseEntry is one exercise within a workout. When PerformedSets is
// non-empty it supersedes Sets/Reps/Weight for every calculation.
type ExerciseEntry struct {
	Name          string     `json:"name"`
	MuscleGroup   string     `json:"muscleGroup,omitempty"`
	Sets          int        `json:"sets"`
	Reps          string     `json:"reps"`
	Weight        *float64   `json:"weight,omitempty"`
	PerformedSets []SetEntry `json:"performedSets,omitempty"`
}

// WorkoutRecord is one planned or completed training session as stored on the
// device. Fields arrive loosely typed from the client, so timestamps are kept
// as strings and validated where they are consumed. Only completed records
// contribute to coaching metrics.
type WorkoutRecord struct {
	ID              string          `json:"id"`
	Date            string          `json:"date"` // YYYY-MM-DD
	CompletedAt     string          `json:"completedAt,omitempty"`
	UpdatedAt       string          `json:"updatedAt,omitempty"`
	CreatedAt       string          `json:"createdAt,omitempty"`
	IsCompleted     bool            `json:"isCompleted"`
	DurationMinutes int             `json:"durationMinutes,omitempty"`
	Exercises       []ExerciseEntry `json:"exercises"`
}
