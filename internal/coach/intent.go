package coach

import (
	"strings"

	"github.com/lyftlogg/coach-backend/internal/types"
)

// Intent is the closed set of coaching question categories.
type Intent string

const (
	IntentNext    Intent = "next"
	IntentPB      Intent = "pb"
	IntentSummary Intent = "summary"
	IntentVolume  Intent = "volume"
	IntentBalance Intent = "balance"
	IntentUnknown Intent = "unknown"
)

// Keyword sets are checked in a fixed priority order; Swedish and English
// trigger words live in the same set so classification is language-agnostic.
var intentKeywords = []struct {
	intent   Intent
	keywords []string
}{
	{IntentNext, []string{
		"nästa", "nasta", "next", "vad ska jag", "what should i",
		"kommande", "upcoming", "imorgon", "tomorrow",
	}},
	{IntentPB, []string{
		"pb", "personbästa", "personligt rekord", "personal best",
		"rekord", "record", "maxvikt", "max weight", "1rm",
	}},
	{IntentVolume, []string{
		"volym", "volume", "tonnage", "hur mycket har jag lyft",
		"how much have i lifted", "minuter", "minutes", "duration", "träningstid",
	}},
	{IntentBalance, []string{
		"balans", "balance", "obalans", "imbalance", "muskelgrupp",
		"muscle group", "försummat", "neglected", "variation", "ensidig",
	}},
	{IntentSummary, []string{
		"sammanfatta", "summary", "översikt", "overview", "hur går det",
		"how am i doing", "framsteg", "progress", "statistik", "stats",
	}},
}

// followUpWords signal that a short message continues the previous topic.
var followUpWords = []string{
	"och", "and", "mer", "more", "varför", "why", "också", "also",
	"sen", "then", "förklara", "explain", "hur då", "how so",
}

func matchKeywords(lowered string) Intent {
	for _, set := range intentKeywords {
		for _, kw := range set.keywords {
			if strings.Contains(lowered, kw) {
				return set.intent
			}
		}
	}
	return IntentUnknown
}

// ClassifyIntent maps a free-text message to an Intent. When the message
// matches nothing but looks like a follow-up ("varför?", "more?"), the
// conversation history is walked backwards and prior user turns are
// re-classified, so short follow-ups inherit the preceding topic without any
// state tracking.
func ClassifyIntent(message string, history []types.ConversationTurn) Intent {
	lowered := strings.ToLower(strings.TrimSpace(message))
	if lowered == "" {
		return IntentUnknown
	}

	if intent := matchKeywords(lowered); intent != IntentUnknown {
		return intent
	}

	if !looksLikeFollowUp(lowered) {
		return IntentUnknown
	}
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role != types.RoleUser {
			continue
		}
		if intent := matchKeywords(strings.ToLower(history[i].Text)); intent != IntentUnknown {
			return intent
		}
	}
	return IntentUnknown
}

func looksLikeFollowUp(lowered string) bool {
	for _, w := range followUpWords {
		if strings.Contains(lowered, w) {
			return true
		}
	}
	return false
}
