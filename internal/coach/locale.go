package coach

// Lang selects the reply locale. It is always passed explicitly; nothing in
// the coach reads ambient locale state.
type Lang string

const (
	LangSV Lang = "sv"
	LangEN Lang = "en"
)

// ParseLang defaults anything unknown to Swedish, the app's primary locale.
func ParseLang(s string) Lang {
	if s == string(LangEN) {
		return LangEN
	}
	return LangSV
}

// phrases holds every fixed template fragment for one locale. Replies are
// composed only from these fragments and numbers/names taken from the
// metrics summary.
type phrases struct {
	NoData        string
	EmptyMessage  string
	NextHeader    string
	NextStatusGoal   string // sessions7, weeklyLeft
	NextStatusNoGoal string // sessions7
	NextStepTop      string // exercise, bestWeight
	NextStepSecond   string // exercise
	NextStepGeneric1 string
	NextStepGeneric2 string
	NextStepRest     string

	PBHeader     string
	PBStatus     string // exercise, weight, date, delta
	PBStatusNone string
	PBStepRepeat string // exercise
	PBStepSmall  string
	PBStepLog    string
	PBStepBase   string

	VolumeStatus      string // volume7, minutes7, avgMinutes7
	VolumeHeader      string
	VolumeStepAddSet  string
	VolumeStepShort1  string
	VolumeStepShort2  string
	VolumeStepKeep    string
	VolumeStepLong1   string
	VolumeStepLong2   string

	BalanceHeader      string
	BalanceStatusFocus string // topExercise, focusGroup
	BalanceStatusEven  string // topExercise
	BalanceStepFocus   string // focusGroup
	BalanceStepProtect string // topExercise
	BalanceStepSpread    string
	BalanceStepAlternate string
	BalanceStepTrack     string

	WhyParagraph  string // exercise, sessions
	ShortStatus   string // sessions7, topExercise
	ShortNoFocus  string // sessions7
	Overview      string // totalSessions, sessions7, lastDate, topExercise
	OverviewNoTop string // totalSessions, sessions7, lastDate
	TryAsking     string
	ExamplePrompt1 string
	ExamplePrompt2 string
}

var locales = map[Lang]phrases{
	LangSV: {
		NoData:       "Jag har ingen träningsdata än. Logga ett pass så kan jag börja coacha dig!",
		EmptyMessage: "Skriv en fråga så hjälper jag dig – till exempel \"vad ska jag köra nästa pass?\"",

		NextHeader:       "Förslag inför nästa pass:",
		NextStatusGoal:   "Du har kört %d pass senaste 7 dagarna – %d kvar till veckomålet.",
		NextStatusNoGoal: "Du har kört %d pass senaste 7 dagarna.",
		NextStepTop:      "Kör %s igen och sikta på att matcha %.1f kg.",
		NextStepSecond:   "Lägg in %s som andra övning medan du är pigg.",
		NextStepGeneric1: "Välj en basövning du gillar och kör tre arbetsset.",
		NextStepGeneric2: "Lägg till en kompletterande övning för en annan muskelgrupp.",
		NextStepRest:     "Avsluta med något lätt och håll vilan kort mellan seten.",

		PBHeader:     "Så bygger du vidare på det:",
		PBStatus:     "Nytt personbästa i %s: %.1f kg den %s (+%.1f kg).",
		PBStatusNone: "Inget nytt personbästa senaste 30 dagarna.",
		PBStepRepeat: "Kör %s på samma upplägg som när rekordet sattes.",
		PBStepSmall:  "Höj i små steg – 2,5 kg räcker för att fortsätta sätta rekord.",
		PBStepLog:    "Logga vikterna noggrant så att nästa rekord syns direkt.",
		PBStepBase:   "Bygg en stabil grund med fler set strax under din maxvikt.",

		VolumeHeader:     "Förslag på justering:",
		VolumeStatus:     "Senaste 7 dagarna: %.0f kg total volym på %d minuter (%d min/pass i snitt).",
		VolumeStepAddSet: "Lägg till ett set per övning – passen är korta nog att rymma det.",
		VolumeStepShort1: "Fokusera på basövningar först när tiden är knapp.",
		VolumeStepShort2: "Håll vilan stram så hinner du mer på samma tid.",
		VolumeStepKeep:   "Behåll nuvarande passlängd – den är i ett bra spann.",
		VolumeStepLong1:  "Prioritera kvalitet över fler set i slutet av passet.",
		VolumeStepLong2:  "Se över vilotiderna om passen drar iväg.",

		BalanceHeader:      "Så jämnar du ut det:",
		BalanceStatusFocus: "Mest tränade övning: %s. Minst tränade muskelgrupp: %s.",
		BalanceStatusEven:  "Mest tränade övning: %s. Fördelningen mellan muskelgrupper ser jämn ut.",
		BalanceStepFocus:   "Lägg in en övning för %s tidigt i nästa pass.",
		BalanceStepProtect: "Behåll %s i programmet – den bär din progression.",
		BalanceStepSpread:    "Sprid muskelgrupperna över veckan i stället för att stapla dem.",
		BalanceStepAlternate: "Alternera pressande och dragande övningar mellan passen.",
		BalanceStepTrack:     "Ange muskelgrupp på dina övningar så blir fördelningen synlig.",

		WhyParagraph: "Det beror på din träningshistorik: %s är din mest tränade övning med %d pass, så mina förslag utgår från den. Vill du att jag väger in något annat, berätta vad du vill fokusera på.",
		ShortStatus:  "%d pass senaste veckan. Fokus: %s.",
		ShortNoFocus: "%d pass senaste veckan.",
		Overview:      "Du har loggat %d pass totalt, varav %d senaste veckan. Senaste passet var %s och din mest tränade övning är %s.",
		OverviewNoTop: "Du har loggat %d pass totalt, varav %d senaste veckan. Senaste passet var %s.",
		TryAsking:      "Testa att fråga:",
		ExamplePrompt1: "\"vad ska jag köra nästa pass?\"",
		ExamplePrompt2: "\"har jag satt något nytt PB?\"",
	},
	LangEN: {
		NoData:       "I don't have any training data yet. Log a workout and I can start coaching you!",
		EmptyMessage: "Write a question and I'll help – for example \"what should I do next workout?\"",

		NextHeader:       "Suggestions for your next workout:",
		NextStatusGoal:   "You've done %d workouts in the last 7 days – %d to go for your weekly goal.",
		NextStatusNoGoal: "You've done %d workouts in the last 7 days.",
		NextStepTop:      "Run %s again and aim to match %.1f kg.",
		NextStepSecond:   "Slot in %s as your second exercise while you're fresh.",
		NextStepGeneric1: "Pick a compound lift you enjoy and do three working sets.",
		NextStepGeneric2: "Add one complementary exercise for a different muscle group.",
		NextStepRest:     "Finish with something light and keep rests short between sets.",

		PBHeader:     "How to build on it:",
		PBStatus:     "New personal best in %s: %.1f kg on %s (+%.1f kg).",
		PBStatusNone: "No new personal best in the last 30 days.",
		PBStepRepeat: "Repeat %s with the same setup you hit the record on.",
		PBStepSmall:  "Raise in small steps – 2.5 kg is enough to keep setting records.",
		PBStepLog:    "Log your weights carefully so the next record shows up right away.",
		PBStepBase:   "Build a stable base with more sets just below your max.",

		VolumeHeader:     "Suggested adjustments:",
		VolumeStatus:     "Last 7 days: %.0f kg total volume in %d minutes (%d min/session on average).",
		VolumeStepAddSet: "Add one set per exercise – your sessions are short enough to fit it.",
		VolumeStepShort1: "Put compound lifts first when time is tight.",
		VolumeStepShort2: "Keep rests tight to fit more into the same time.",
		VolumeStepKeep:   "Keep your current session length – it's in a good range.",
		VolumeStepLong1:  "Prioritize quality over extra sets late in the session.",
		VolumeStepLong2:  "Review your rest times if sessions keep stretching.",

		BalanceHeader:      "How to even it out:",
		BalanceStatusFocus: "Most trained exercise: %s. Least trained muscle group: %s.",
		BalanceStatusEven:  "Most trained exercise: %s. Your muscle group split looks even.",
		BalanceStepFocus:   "Add an exercise for %s early in your next session.",
		BalanceStepProtect: "Keep %s in the program – it carries your progression.",
		BalanceStepSpread:    "Spread muscle groups across the week instead of stacking them.",
		BalanceStepAlternate: "Alternate pushing and pulling exercises between sessions.",
		BalanceStepTrack:     "Tag your exercises with a muscle group so the split becomes visible.",

		WhyParagraph: "It comes from your training history: %s is your most trained exercise with %d sessions, so my suggestions start from it. If you want me to weigh in something else, tell me what to focus on.",
		ShortStatus:  "%d workouts this past week. Focus: %s.",
		ShortNoFocus: "%d workouts this past week.",
		Overview:      "You've logged %d workouts in total, %d of them this past week. Your last session was %s and your most trained exercise is %s.",
		OverviewNoTop: "You've logged %d workouts in total, %d of them this past week. Your last session was %s.",
		TryAsking:      "Try asking:",
		ExamplePrompt1: "\"what should I do next workout?\"",
		ExamplePrompt2: "\"did I set a new PB?\"",
	},
}
