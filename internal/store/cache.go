package store

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/lyftlogg/coach-backend/internal/pkg/logger"
	"github.com/lyftlogg/coach-backend/internal/types"
)

// Fixed cache keys. One row per key, value is a JSON blob.
const (
	keyChatHistory  = "coach:chat_history"
	keyCoachProfile = "coach:profile"
)

// MaxCachedMessages bounds the persisted conversation history.
const MaxCachedMessages = 40

type cacheEntry struct {
	Key       string         `gorm:"primaryKey;size:64"`
	Value     datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time
}

func (cacheEntry) TableName() string { return "cache_entries" }

// Cache is the device-local best-effort store for chat history and the coach
// profile. Reads and writes never fail the caller: errors are logged and the
// zero value is returned, since losing the cache only degrades
// personalization.
type Cache struct {
	log *logger.Logger
	db  *gorm.DB
}

func Open(log *logger.Logger, path string) (*Cache, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}
	if err := db.AutoMigrate(&cacheEntry{}); err != nil {
		return nil, fmt.Errorf("migrate cache db: %w", err)
	}
	return &Cache{log: log.With("component", "Cache"), db: db}, nil
}

func (c *Cache) get(key string, out any) bool {
	var entry cacheEntry
	if err := c.db.First(&entry, "key = ?", key).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			c.log.Warn("Cache read failed", "key", key, "error", err.Error())
		}
		return false
	}
	if err := json.Unmarshal(entry.Value, out); err != nil {
		c.log.Warn("Cache entry malformed, ignoring", "key", key, "error", err.Error())
		return false
	}
	return true
}

func (c *Cache) put(key string, val any) {
	raw, err := json.Marshal(val)
	if err != nil {
		c.log.Warn("Cache marshal failed", "key", key, "error", err.Error())
		return
	}
	entry := cacheEntry{Key: key, Value: datatypes.JSON(raw), UpdatedAt: time.Now()}
	if err := c.db.Save(&entry).Error; err != nil {
		c.log.Warn("Cache write failed", "key", key, "error", err.Error())
	}
}

// LoadHistory returns the cached conversation, or nil when absent/corrupt.
func (c *Cache) LoadHistory() []types.ChatMessage {
	var msgs []types.ChatMessage
	if !c.get(keyChatHistory, &msgs) {
		return nil
	}
	return msgs
}

// SaveHistory persists the conversation, keeping only the newest
// MaxCachedMessages entries.
func (c *Cache) SaveHistory(msgs []types.ChatMessage) {
	if len(msgs) > MaxCachedMessages {
		msgs = msgs[len(msgs)-MaxCachedMessages:]
	}
	c.put(keyChatHistory, msgs)
}

// LoadProfile returns the cached coach profile, zero-valued when absent.
func (c *Cache) LoadProfile() types.CoachProfile {
	var p types.CoachProfile
	c.get(keyCoachProfile, &p)
	return p
}

// SaveProfile persists a sanitized copy of the profile.
func (c *Cache) SaveProfile(p types.CoachProfile) {
	c.put(keyCoachProfile, p.Sanitized())
}
