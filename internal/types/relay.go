package types

// CoachContext is the raw client context sent alongside the message.
type CoachContext struct {
	Workouts   []WorkoutRecord `json:"workouts"`
	WeeklyGoal int             `json:"weeklyGoal"`
	TodayISO   string          `json:"todayISO"`
}

// ResponseStyle directs the tone and shape of the generated reply. The
// strict/revise fields are set only by the regenerate flow.
type ResponseStyle struct {
	Tone         string `json:"tone"`
	Structure    string `json:"structure"`
	MaxLength    int    `json:"maxLength"`
	StrictMode   string `json:"strictMode,omitempty"` // "strict" when set
	ForceDirect  bool   `json:"forceDirect,omitempty"`
	ReviseReason string `json:"reviseReason,omitempty"`
}

// RelayRequest is the JSON body POSTed to the relay service.
type RelayRequest struct {
	Message        string             `json:"message"`
	Lang           string             `json:"lang"` // "sv" | "en"
	Context        CoachContext       `json:"context"`
	ContextSummary MetricsSummary     `json:"contextSummary"`
	CoachProfile   CoachProfile       `json:"coachProfile"`
	History        []ConversationTurn `json:"history"` // at most 12 entries
	ResponseStyle  ResponseStyle      `json:"responseStyle"`
	PreviousAnswer string             `json:"previousAnswer,omitempty"`
	SystemPrompt   string             `json:"systemPrompt,omitempty"`
}

// RelayResponse is the success body returned by the relay.
type RelayResponse struct {
	Reply string `json:"reply"`
}

// RelayError is the structured error body for 400/401/429/500 responses.
type RelayError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
