package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/lyftlogg/coach-backend/internal/clients/relay"
	"github.com/lyftlogg/coach-backend/internal/coach"
	"github.com/lyftlogg/coach-backend/internal/notify"
	"github.com/lyftlogg/coach-backend/internal/pkg/logger"
	"github.com/lyftlogg/coach-backend/internal/store"
	"github.com/lyftlogg/coach-backend/internal/types"
)

// coachcli runs the coach pipeline directly: it works with zero configuration
// (no relay endpoint means fallback-only) and is how the pipeline is exercised
// without the mobile app.
func main() {
	_ = godotenv.Load()

	var (
		message  = flag.String("msg", "", "question for the coach")
		lang     = flag.String("lang", "sv", "reply language: sv or en")
		workouts = flag.String("workouts", "", "path to a JSON file with workout records")
		goal     = flag.Int("goal", 0, "weekly session goal")
		today    = flag.String("today", time.Now().Format("2006-01-02"), "date used for windowing (YYYY-MM-DD)")
		cacheDB  = flag.String("cache", "coach-cache.db", "path to the local cache database")
	)
	flag.Parse()

	log, err := logger.New(os.Getenv("LOG_MODE"))
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	var records []types.WorkoutRecord
	if *workouts != "" {
		raw, err := os.ReadFile(*workouts)
		if err != nil {
			log.Fatal("Could not read workouts file", "path", *workouts, "error", err.Error())
		}
		if err := json.Unmarshal(raw, &records); err != nil {
			log.Fatal("Could not parse workouts file", "path", *workouts, "error", err.Error())
		}
	}

	cache, err := store.Open(log, *cacheDB)
	if err != nil {
		log.Warn("Local cache unavailable, continuing without it", "error", err.Error())
		cache = nil
	}

	var history []types.ChatMessage
	var profile types.CoachProfile
	if cache != nil {
		history = cache.LoadHistory()
		profile = cache.LoadProfile()
	}

	hub := notify.NewHub(log)
	events, unsubscribe := hub.Subscribe()
	defer unsubscribe()

	wctx := types.CoachContext{Workouts: records, WeeklyGoal: *goal, TodayISO: *today}
	summary := coach.Aggregate(records, *goal, *today)
	if summary.LatestPB != nil {
		hub.Publish(notify.Event{Kind: notify.EventPB, Data: *summary.LatestPB})
	}

	client := relay.NewFromEnv(log)
	reply := client.GetReply(context.Background(), coach.ParseLang(*lang), *message, wctx, turnsOf(history), profile, nil)

	drainToasts(events)
	fmt.Printf("[%s] %s\n", reply.Source, reply.Text)

	if cache != nil && *message != "" {
		now := time.Now().Format(time.RFC3339)
		history = append(history,
			types.ChatMessage{ID: uuid.NewString(), Role: types.RoleUser, Text: *message, CreatedAt: now},
			types.ChatMessage{ID: uuid.NewString(), Role: types.RoleAssistant, Text: reply.Text, CreatedAt: now, Source: reply.Source},
		)
		cache.SaveHistory(history)
	}
}

func turnsOf(msgs []types.ChatMessage) []types.ConversationTurn {
	turns := make([]types.ConversationTurn, 0, len(msgs))
	for _, m := range msgs {
		turns = append(turns, types.ConversationTurn{Role: m.Role, Text: m.Text})
	}
	return turns
}

func drainToasts(events <-chan notify.Event) {
	for {
		select {
		case ev := <-events:
			if pb, ok := ev.Data.(types.PBEvent); ok && ev.Kind == notify.EventPB {
				fmt.Printf("★ %s: %.1f kg (+%.1f)\n", pb.Exercise, pb.Weight, pb.Delta)
			}
		default:
			return
		}
	}
}
