package coach

import (
	"fmt"
	"strings"

	"github.com/lyftlogg/coach-backend/internal/types"
)

// avgMinutesThreshold decides between "add a set" and "maintain" advice for
// volume questions.
const avgMinutesThreshold = 35

// EmptyMessageReply is the localized prompt returned when the user sends a
// blank message. It lives here so the relay client and the UI share it.
func EmptyMessageReply(lang Lang) string {
	return locales[lang].EmptyMessage
}

// Synthesize produces the deterministic local reply for a classified intent.
// Every string is composed from fixed localized fragments plus numbers and
// names taken from the summary; nothing about the user is invented.
func Synthesize(lang Lang, intent Intent, summary types.MetricsSummary, message string) string {
	p := locales[lang]

	if summary.TotalSessions == 0 {
		return p.NoData
	}

	switch intent {
	case IntentNext:
		return nextReply(p, summary)
	case IntentPB:
		return pbReply(p, summary)
	case IntentVolume:
		return volumeReply(p, summary)
	case IntentBalance:
		return balanceReply(p, summary)
	default:
		return summaryReply(p, summary, message)
	}
}

// numberedSteps renders "header\n1. ...\n2. ...\n3. ...".
func numberedSteps(header string, steps []string) string {
	var b strings.Builder
	b.WriteString(header)
	for i, s := range steps {
		b.WriteString(fmt.Sprintf("\n%d. %s", i+1, s))
	}
	return b.String()
}

func nextReply(p phrases, s types.MetricsSummary) string {
	var status string
	if s.WeeklyGoal > 0 {
		status = fmt.Sprintf(p.NextStatusGoal, s.Sessions7, s.WeeklyLeft)
	} else {
		status = fmt.Sprintf(p.NextStatusNoGoal, s.Sessions7)
	}

	steps := make([]string, 0, 3)
	if len(s.TopExercises) > 0 {
		top := s.TopExercises[0]
		steps = append(steps, fmt.Sprintf(p.NextStepTop, top.Name, top.BestWeight))
	} else {
		steps = append(steps, p.NextStepGeneric1)
	}
	if len(s.TopExercises) > 1 {
		steps = append(steps, fmt.Sprintf(p.NextStepSecond, s.TopExercises[1].Name))
	} else {
		steps = append(steps, p.NextStepGeneric2)
	}
	steps = append(steps, p.NextStepRest)

	return status + "\n" + numberedSteps(p.NextHeader, steps)
}

func pbReply(p phrases, s types.MetricsSummary) string {
	var status string
	if s.LatestPB != nil {
		pb := s.LatestPB
		status = fmt.Sprintf(p.PBStatus, pb.Exercise, pb.Weight, pb.Date, pb.Delta)
	} else {
		status = p.PBStatusNone
	}

	steps := make([]string, 0, 3)
	if s.LatestPB != nil {
		steps = append(steps, fmt.Sprintf(p.PBStepRepeat, s.LatestPB.Exercise))
		steps = append(steps, p.PBStepSmall)
		steps = append(steps, p.PBStepLog)
	} else {
		if len(s.TopExercises) > 0 {
			steps = append(steps, fmt.Sprintf(p.PBStepRepeat, s.TopExercises[0].Name))
		} else {
			steps = append(steps, p.PBStepBase)
		}
		steps = append(steps, p.PBStepBase)
		steps = append(steps, p.PBStepLog)
	}

	return status + "\n" + numberedSteps(p.PBHeader, steps)
}

func volumeReply(p phrases, s types.MetricsSummary) string {
	status := fmt.Sprintf(p.VolumeStatus, s.Volume7, s.Minutes7, s.AvgMinutes7)

	var steps []string
	if s.AvgMinutes7 < avgMinutesThreshold {
		steps = []string{p.VolumeStepAddSet, p.VolumeStepShort1, p.VolumeStepShort2}
	} else {
		steps = []string{p.VolumeStepKeep, p.VolumeStepLong1, p.VolumeStepLong2}
	}

	return status + "\n" + numberedSteps(p.VolumeHeader, steps)
}

func balanceReply(p phrases, s types.MetricsSummary) string {
	topName := ""
	if len(s.TopExercises) > 0 {
		topName = s.TopExercises[0].Name
	}

	var status string
	if s.FocusMuscleGroup != "" {
		status = fmt.Sprintf(p.BalanceStatusFocus, topName, s.FocusMuscleGroup)
	} else {
		status = fmt.Sprintf(p.BalanceStatusEven, topName)
	}

	steps := make([]string, 0, 3)
	if s.FocusMuscleGroup != "" {
		steps = append(steps, fmt.Sprintf(p.BalanceStepFocus, s.FocusMuscleGroup))
	}
	if topName != "" {
		steps = append(steps, fmt.Sprintf(p.BalanceStepProtect, topName))
	}
	for _, generic := range []string{p.BalanceStepSpread, p.BalanceStepAlternate, p.BalanceStepTrack} {
		if len(steps) == 3 {
			break
		}
		steps = append(steps, generic)
	}

	return status + "\n" + numberedSteps(p.BalanceHeader, steps)
}

func summaryReply(p phrases, s types.MetricsSummary, message string) string {
	lowered := strings.ToLower(message)

	if (strings.Contains(lowered, "varför") || strings.Contains(lowered, "why")) && len(s.TopExercises) > 0 {
		top := s.TopExercises[0]
		return fmt.Sprintf(p.WhyParagraph, top.Name, top.Sessions)
	}

	if strings.Contains(lowered, "kort") || strings.Contains(lowered, "short") {
		if len(s.TopExercises) > 0 {
			return fmt.Sprintf(p.ShortStatus, s.Sessions7, s.TopExercises[0].Name)
		}
		return fmt.Sprintf(p.ShortNoFocus, s.Sessions7)
	}

	var overview string
	if len(s.TopExercises) > 0 {
		overview = fmt.Sprintf(p.Overview, s.TotalSessions, s.Sessions7, s.LastWorkoutDate, s.TopExercises[0].Name)
	} else {
		overview = fmt.Sprintf(p.OverviewNoTop, s.TotalSessions, s.Sessions7, s.LastWorkoutDate)
	}
	return overview + "\n" + p.TryAsking + "\n" + p.ExamplePrompt1 + "\n" + p.ExamplePrompt2
}
