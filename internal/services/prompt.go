package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/lyftlogg/coach-backend/internal/types"
)

// The system instruction block is deterministic: same payload, same prompt.
// The fidelity rules mirror what the local synthesizer enforces in code, so
// the remote and fallback paths obey the same contract.

const fidelityRules = `Rules you must always follow:
- Do not invent user preferences, favorite days, restrictions, or any detail not present in the provided data.
- Answer the literal question first, before any extra advice.
- Stay on the topic of the user's question.
- Vary your phrasing; do not repeat earlier answers from the conversation.
- If the question is very short or ambiguous, ask exactly one clarifying question instead of guessing.`

const maxHistoryTurns = 12

// BuildSystemPrompt constructs the system instruction block from the payload.
// A caller-provided systemPrompt overrides the generated one.
func BuildSystemPrompt(req *types.RelayRequest) string {
	if s := strings.TrimSpace(req.SystemPrompt); s != "" {
		return s
	}

	var b strings.Builder
	if req.Lang == "en" {
		b.WriteString("You are a personal strength-training coach inside a workout tracking app. Answer in English.\n")
	} else {
		b.WriteString("You are a personal strength-training coach inside a workout tracking app. Answer in Swedish.\n")
	}
	b.WriteString(fidelityRules)
	b.WriteString("\n")

	style := req.ResponseStyle
	if style.Tone != "" {
		fmt.Fprintf(&b, "Tone: %s.\n", style.Tone)
	}
	if style.Structure != "" {
		fmt.Fprintf(&b, "Structure: %s.\n", style.Structure)
	}
	if style.MaxLength > 0 {
		fmt.Fprintf(&b, "Keep the reply under %d characters.\n", style.MaxLength)
	}
	if style.StrictMode == "strict" {
		b.WriteString("Strict mode: answer precisely what was asked, nothing else.\n")
	}
	if style.ForceDirect {
		b.WriteString("Be direct: skip preamble and answer immediately.\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// BuildUserContent renders the user content block: metrics summary, profile,
// recent history, the question itself, and the revision fields when present.
func BuildUserContent(req *types.RelayRequest) string {
	var b strings.Builder

	if raw, err := json.Marshal(req.ContextSummary); err == nil {
		b.WriteString("Training summary (derived from the user's logged workouts):\n")
		b.Write(raw)
		b.WriteString("\n\n")
	}

	profile := req.CoachProfile.Sanitized()
	profileLines := make([]string, 0, 5)
	appendField := func(label, val string) {
		if val != "" {
			profileLines = append(profileLines, fmt.Sprintf("- %s: %s", label, val))
		}
	}
	appendField("Goal", profile.Goal)
	appendField("Focus exercises", profile.FocusExercises)
	appendField("Limitations", profile.Limitations)
	appendField("Schedule", profile.Schedule)
	appendField("Preferences", profile.Preferences)
	if len(profileLines) > 0 {
		b.WriteString("Coach profile (user-written, the only personal preferences you may use):\n")
		b.WriteString(strings.Join(profileLines, "\n"))
		b.WriteString("\n\n")
	}

	history := req.History
	if len(history) > maxHistoryTurns {
		history = history[len(history)-maxHistoryTurns:]
	}
	if len(history) > 0 {
		b.WriteString("Recent conversation:\n")
		for _, turn := range history {
			fmt.Fprintf(&b, "%s: %s\n", turn.Role, turn.Text)
		}
		b.WriteString("\n")
	}

	if prev := strings.TrimSpace(req.PreviousAnswer); prev != "" {
		b.WriteString("Your previous answer missed the question. Previous answer:\n")
		b.WriteString(prev)
		b.WriteString("\n")
		if reason := strings.TrimSpace(req.ResponseStyle.ReviseReason); reason != "" {
			fmt.Fprintf(&b, "What was missing: %s\n", reason)
		}
		b.WriteString("Write a substantially different answer that addresses the question directly.\n\n")
	}

	fmt.Fprintf(&b, "User question: %s", req.Message)
	return b.String()
}
