package store

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lyftlogg/coach-backend/internal/pkg/logger"
	"github.com/lyftlogg/coach-backend/internal/types"
)

func openTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := Open(logger.NewNop(), filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	return c
}

func TestCacheHistoryRoundTrip(t *testing.T) {
	c := openTestCache(t)

	if got := c.LoadHistory(); got != nil {
		t.Fatalf("empty cache: want nil history, got %+v", got)
	}

	msgs := []types.ChatMessage{
		{ID: "1", Role: types.RoleUser, Text: "nästa pass?"},
		{ID: "2", Role: types.RoleAssistant, Text: "Kör bänkpress.", Source: "remote"},
	}
	c.SaveHistory(msgs)

	got := c.LoadHistory()
	if len(got) != 2 || got[1].Text != "Kör bänkpress." || got[1].Source != "remote" {
		t.Fatalf("history round trip: %+v", got)
	}
}

func TestCacheHistoryCapped(t *testing.T) {
	c := openTestCache(t)

	msgs := make([]types.ChatMessage, 0, MaxCachedMessages+10)
	for i := 0; i < MaxCachedMessages+10; i++ {
		msgs = append(msgs, types.ChatMessage{ID: fmt.Sprintf("m%d", i), Role: types.RoleUser, Text: "x"})
	}
	c.SaveHistory(msgs)

	got := c.LoadHistory()
	if len(got) != MaxCachedMessages {
		t.Fatalf("history cap: want=%d got=%d", MaxCachedMessages, len(got))
	}
	if got[len(got)-1].ID != fmt.Sprintf("m%d", MaxCachedMessages+9) {
		t.Fatalf("cap must keep the newest messages, tail=%q", got[len(got)-1].ID)
	}
}

func TestCacheProfileRoundTrip(t *testing.T) {
	c := openTestCache(t)

	if got := c.LoadProfile(); got != (types.CoachProfile{}) {
		t.Fatalf("empty cache: want zero profile, got %+v", got)
	}

	c.SaveProfile(types.CoachProfile{Goal: "  bygga   styrka  "})

	got := c.LoadProfile()
	if got.Goal != "bygga styrka" {
		t.Fatalf("profile must be sanitized on save: %+v", got)
	}
}

func TestCacheOverwrite(t *testing.T) {
	c := openTestCache(t)

	c.SaveProfile(types.CoachProfile{Goal: "first"})
	c.SaveProfile(types.CoachProfile{Goal: "second"})

	if got := c.LoadProfile(); got.Goal != "second" {
		t.Fatalf("overwrite: want=%q got=%q", "second", got.Goal)
	}
}

func TestCacheSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cache.db")

	c, err := Open(logger.NewNop(), path)
	if err != nil {
		t.Fatalf("open cache: %v", err)
	}
	c.SaveProfile(types.CoachProfile{Goal: strings.Repeat("s", 10)})

	c2, err := Open(logger.NewNop(), path)
	if err != nil {
		t.Fatalf("reopen cache: %v", err)
	}
	if got := c2.LoadProfile(); got.Goal != strings.Repeat("s", 10) {
		t.Fatalf("profile lost across reopen: %+v", got)
	}
}
