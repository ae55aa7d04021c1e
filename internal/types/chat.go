package types

import "strings"

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ConversationTurn is one message in the sliding chat window passed to the
// classifier and embedded in the relay payload.
type ConversationTurn struct {
	Role string `json:"role"` // RoleUser | RoleAssistant
	Text string `json:"text"`
}

// ChatMessage is the persisted form of a turn, cached on the device.
type ChatMessage struct {
	ID        string `json:"id"`
	Role      string `json:"role"`
	Text      string `json:"text"`
	CreatedAt string `json:"createdAt,omitempty"`
	Source    string `json:"source,omitempty"` // "remote" | "fallback"
}

// Profile field caps, in runes. Free text the user typed; capped so the
// relay payload stays bounded.
const (
	MaxProfileGoal        = 220
	MaxProfileFocus       = 240
	MaxProfileLimitations = 260
	MaxProfileSchedule    = 220
	MaxProfilePreferences = 260
)

// CoachProfile is the locally cached free-text coaching profile.
type CoachProfile struct {
	Goal           string `json:"goal,omitempty"`
	FocusExercises string `json:"focusExercises,omitempty"`
	Limitations    string `json:"limitations,omitempty"`
	Schedule       string `json:"schedule,omitempty"`
	Preferences    string `json:"preferences,omitempty"`
}

// Sanitized returns a copy with each field trimmed, inner whitespace
// collapsed, and capped to its limit.
func (p CoachProfile) Sanitized() CoachProfile {
	return CoachProfile{
		Goal:           capRunes(collapseSpace(p.Goal), MaxProfileGoal),
		FocusExercises: capRunes(collapseSpace(p.FocusExercises), MaxProfileFocus),
		Limitations:    capRunes(collapseSpace(p.Limitations), MaxProfileLimitations),
		Schedule:       capRunes(collapseSpace(p.Schedule), MaxProfileSchedule),
		Preferences:    capRunes(collapseSpace(p.Preferences), MaxProfilePreferences),
	}
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func capRunes(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
