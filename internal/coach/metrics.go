package coach

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/lyftlogg/coach-backend/internal/types"
)

const dayLayout = "2006-01-02"

var repToken = regexp.MustCompile(`\d+`)

// ParseReps reduces a free-text rep descriptor ("8", "8-10", "8–10") to a
// representative integer: the rounded average of the numeric tokens found.
// Text with no numeric tokens counts as 0.
func ParseReps(s string) int {
	tokens := repToken.FindAllString(s, -1)
	if len(tokens) == 0 {
		return 0
	}
	sum := 0
	for _, t := range tokens {
		n, err := strconv.Atoi(t)
		if err != nil {
			continue
		}
		sum += n
	}
	return int(math.Round(float64(sum) / float64(len(tokens))))
}

// parseDay parses a strict calendar date. The string must round-trip exactly
// through parse and format, otherwise it is treated as unparseable.
func parseDay(s string) (time.Time, bool) {
	t, err := time.Parse(dayLayout, s)
	if err != nil || t.Format(dayLayout) != s {
		return time.Time{}, false
	}
	return t, true
}

func safeWeight(w *float64) float64 {
	if w == nil {
		return 0
	}
	v := *w
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// entryTally is what one exercise entry contributes to its running tally.
type entryTally struct {
	sets   int
	reps   int
	volume float64
	best   float64
}

// tallyEntry computes the contribution of a single exercise entry. Per-set
// detail supersedes the whole-exercise fields when present.
func tallyEntry(e types.ExerciseEntry) entryTally {
	var t entryTally
	if len(e.PerformedSets) > 0 {
		for _, s := range e.PerformedSets {
			reps := ParseReps(s.Reps)
			w := safeWeight(s.Weight)
			t.sets++
			t.reps += reps
			t.volume += float64(reps) * w
			if w > t.best {
				t.best = w
			}
		}
		return t
	}
	sets := e.Sets
	if sets < 0 {
		sets = 0
	}
	reps := ParseReps(e.Reps)
	w := safeWeight(e.Weight)
	t.sets = sets
	t.reps = sets * reps
	t.volume = float64(sets) * float64(reps) * w
	t.best = w
	return t
}

type exerciseAgg struct {
	name     string
	sessions int
	sets     int
	reps     int
	volume   float64
	best     float64
}

// Aggregate reduces the workout history to a MetricsSummary. Pure and
// deterministic: the only notion of "now" is todayISO.
func Aggregate(records []types.WorkoutRecord, weeklyGoal int, todayISO string) types.MetricsSummary {
	today, todayOK := parseDay(todayISO)

	completed := make([]types.WorkoutRecord, 0, len(records))
	for _, r := range records {
		if r.IsCompleted {
			completed = append(completed, r)
		}
	}

	summary := types.MetricsSummary{
		TotalSessions: len(completed),
		TopExercises:  []types.ExerciseStat{},
		RecentPBs:     []types.PBEvent{},
		WeeklyGoal:    weeklyGoal,
	}
	if len(completed) == 0 {
		if weeklyGoal > 0 {
			summary.WeeklyLeft = weeklyGoal
		}
		return summary
	}

	// Ascending date walk; ties keep input order. ISO date strings compare
	// lexicographically, so records with unparseable dates slot in by raw
	// string and still feed the per-exercise tallies.
	ordered := make([]types.WorkoutRecord, len(completed))
	copy(ordered, completed)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date < ordered[j].Date
	})

	var cutoff7, cutoff30 time.Time
	if todayOK {
		cutoff7 = today.AddDate(0, 0, -6)
		cutoff30 = today.AddDate(0, 0, -29)
	}
	inWindow := func(day time.Time, cutoff time.Time) bool {
		if !todayOK {
			return false
		}
		return !day.Before(cutoff) && !day.After(today)
	}

	exercises := map[string]*exerciseAgg{}
	var exerciseOrder []string
	bestSoFar := map[string]float64{}
	groupSessions := map[string]int{}

	for _, rec := range ordered {
		day, dayOK := parseDay(rec.Date)
		windowed7 := dayOK && inWindow(day, cutoff7)
		windowed30 := dayOK && inWindow(day, cutoff30)

		if windowed7 {
			summary.Sessions7++
			summary.Minutes7 += rec.DurationMinutes
		}
		if windowed30 {
			summary.Sessions30++
		}

		seenThisSession := map[string]bool{}
		groupsThisSession := map[string]bool{}

		for _, e := range normalizedExercises(rec) {
			t := tallyEntry(e)

			agg, ok := exercises[e.Name]
			if !ok {
				agg = &exerciseAgg{name: e.Name}
				exercises[e.Name] = agg
				exerciseOrder = append(exerciseOrder, e.Name)
			}
			if !seenThisSession[e.Name] {
				agg.sessions++
				seenThisSession[e.Name] = true
			}
			agg.sets += t.sets
			agg.reps += t.reps
			agg.volume += t.volume
			if t.best > agg.best {
				agg.best = t.best
			}

			if windowed7 {
				summary.Volume7 += t.volume
			}

			// PB scan runs over the full history; only events inside the
			// 30-day window are reported.
			if t.best > bestSoFar[e.Name] {
				prev := bestSoFar[e.Name]
				bestSoFar[e.Name] = t.best
				if windowed30 {
					summary.RecentPBs = append(summary.RecentPBs, types.PBEvent{
						Exercise: e.Name,
						Date:     rec.Date,
						Weight:   t.best,
						Delta:    t.best - prev,
					})
				}
			}

			group := muscleGroupOf(e)
			groupsThisSession[group] = true
		}

		for g := range groupsThisSession {
			groupSessions[g]++
		}
	}

	if len(summary.RecentPBs) > 0 {
		pb := summary.RecentPBs[len(summary.RecentPBs)-1]
		summary.LatestPB = &pb
	}

	if summary.Sessions7 > 0 {
		summary.AvgMinutes7 = int(math.Round(float64(summary.Minutes7) / float64(summary.Sessions7)))
	}
	summary.Volume7 = math.Round(summary.Volume7)

	// Top exercises: sessions desc, volume desc, then name for determinism.
	stats := make([]types.ExerciseStat, 0, len(exerciseOrder))
	for _, name := range exerciseOrder {
		a := exercises[name]
		stats = append(stats, types.ExerciseStat{
			Name:       a.name,
			Sessions:   a.sessions,
			Sets:       a.sets,
			Reps:       a.reps,
			Volume:     math.Round(a.volume),
			BestWeight: math.Round(a.best*10) / 10,
		})
	}
	sort.SliceStable(stats, func(i, j int) bool {
		if stats[i].Sessions != stats[j].Sessions {
			return stats[i].Sessions > stats[j].Sessions
		}
		if stats[i].Volume != stats[j].Volume {
			return stats[i].Volume > stats[j].Volume
		}
		return stats[i].Name < stats[j].Name
	})
	if len(stats) > 3 {
		stats = stats[:3]
	}
	summary.TopExercises = stats

	// Least-trained muscle group, only meaningful with two or more groups.
	if len(groupSessions) >= 2 {
		var minGroup string
		minCount := math.MaxInt
		groups := make([]string, 0, len(groupSessions))
		for g := range groupSessions {
			groups = append(groups, g)
		}
		sort.Strings(groups)
		for _, g := range groups {
			if groupSessions[g] < minCount {
				minCount = groupSessions[g]
				minGroup = g
			}
		}
		summary.FocusMuscleGroup = minGroup
	}

	if weeklyGoal > 0 {
		left := weeklyGoal - summary.Sessions7
		if left < 0 {
			left = 0
		}
		summary.WeeklyLeft = left
	}

	// Most recent completed session: precise timestamps take precedence over
	// the nominal date when present.
	last := mostRecent(completed)
	summary.LastWorkoutDate = last.Date
	if lastDay, ok := parseDay(last.Date); ok && todayOK {
		days := int(today.Sub(lastDay).Hours() / 24)
		summary.DaysSinceLast = &days
	}

	return summary
}

// normalizedExercises keeps each entry's trimmed name as the aggregation key
// and drops nameless entries.
func normalizedExercises(rec types.WorkoutRecord) []types.ExerciseEntry {
	out := make([]types.ExerciseEntry, 0, len(rec.Exercises))
	for _, e := range rec.Exercises {
		e.Name = strings.TrimSpace(e.Name)
		if e.Name == "" {
			continue
		}
		out = append(out, e)
	}
	return out
}

// DefaultMuscleGroup is the bucket for entries without a category.
const DefaultMuscleGroup = "Other"

func muscleGroupOf(e types.ExerciseEntry) string {
	g := strings.TrimSpace(e.MuscleGroup)
	if g == "" {
		return DefaultMuscleGroup
	}
	return g
}

// recencyKey orders records by the most precise timestamp available:
// completedAt, then updatedAt, then createdAt, then the nominal date.
func recencyKey(r types.WorkoutRecord) string {
	for _, ts := range []string{r.CompletedAt, r.UpdatedAt, r.CreatedAt} {
		if ts != "" {
			return ts
		}
	}
	return r.Date
}

func mostRecent(completed []types.WorkoutRecord) types.WorkoutRecord {
	best := completed[0]
	bestKey := recencyKey(best)
	for _, r := range completed[1:] {
		if k := recencyKey(r); k > bestKey {
			best = r
			bestKey = k
		}
	}
	return best
}
