package attendance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"Backend-TripleA/src/database"
	"Backend-TripleA/src/models"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The cache holds the member's most recent visits so the UI never waits on a
// round-trip for them. Never authoritative: the ledger is.
const recentLimit = 10

const cacheKeyPrefix = "recentAttendance:"

// CacheStore persists the serialized recent-visit list across restarts.
type CacheStore interface {
	// Load returns the stored blob, or nil when nothing is stored.
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Reset(ctx context.Context, key string) error
}

// cachedTimestamp is the persisted wire form of an instant. The seconds /
// nanoseconds pair is the one codec used for both encode and decode, so a
// legacy or corrupt layout is detected instead of silently half-read.
type cachedTimestamp struct {
	Seconds     int64 `json:"seconds"`
	Nanoseconds int32 `json:"nanoseconds"`
}

func encodeTimestamp(t time.Time) cachedTimestamp {
	return cachedTimestamp{Seconds: t.Unix(), Nanoseconds: int32(t.Nanosecond())}
}

func (ts cachedTimestamp) decode() (time.Time, error) {
	if ts.Seconds <= 0 {
		return time.Time{}, errors.New("missing or invalid seconds")
	}
	return time.Unix(ts.Seconds, int64(ts.Nanoseconds)).In(time.Local), nil
}

type cachedRecord struct {
	ID        string          `json:"id"`
	UserID    string          `json:"userId"`
	Date      cachedTimestamp `json:"date"`
	Time      string          `json:"time"`
	Status    string          `json:"status"`
	CreatedAt cachedTimestamp `json:"createdAt"`
}

func encodeRecord(rec models.AttendanceRecord) cachedRecord {
	return cachedRecord{
		ID:        rec.ID.Hex(),
		UserID:    rec.UserID,
		Date:      encodeTimestamp(rec.Date),
		Time:      rec.Time,
		Status:    rec.Status,
		CreatedAt: encodeTimestamp(rec.CreatedAt),
	}
}

func decodeRecord(c cachedRecord) (models.AttendanceRecord, error) {
	id, err := primitive.ObjectIDFromHex(c.ID)
	if err != nil {
		return models.AttendanceRecord{}, fmt.Errorf("invalid record id: %w", err)
	}
	date, err := c.Date.decode()
	if err != nil {
		return models.AttendanceRecord{}, fmt.Errorf("invalid date: %w", err)
	}
	createdAt, err := c.CreatedAt.decode()
	if err != nil {
		return models.AttendanceRecord{}, fmt.Errorf("invalid createdAt: %w", err)
	}
	return models.AttendanceRecord{
		ID:        id,
		UserID:    c.UserID,
		Date:      date,
		Time:      c.Time,
		Status:    c.Status,
		CreatedAt: createdAt,
	}, nil
}

// RecentCache keeps the last 10 visits per member, newest first, deduplicated
// by record id. Entries are mirrored to the store so they survive restarts;
// any entry failing to decode resets the whole stored list rather than
// leaving it inconsistent.
type RecentCache struct {
	mu      sync.Mutex
	store   CacheStore
	loaded  map[string]bool
	entries map[string][]models.AttendanceRecord
}

func NewRecentCache(store CacheStore) *RecentCache {
	return &RecentCache{
		store:   store,
		loaded:  make(map[string]bool),
		entries: make(map[string][]models.AttendanceRecord),
	}
}

// Push inserts a record at the front, evicting the oldest past the cap.
// A record whose id is already cached is ignored.
func (c *RecentCache) Push(ctx context.Context, rec models.AttendanceRecord) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ensureLoaded(ctx, rec.UserID)

	recent := c.entries[rec.UserID]
	for _, r := range recent {
		if r.ID == rec.ID {
			return
		}
	}

	recent = append([]models.AttendanceRecord{rec}, recent...)
	if len(recent) > recentLimit {
		recent = recent[:recentLimit]
	}
	c.entries[rec.UserID] = recent
	c.persist(ctx, rec.UserID, recent)
}

// Recent returns a copy of the cached visits, newest first.
func (c *RecentCache) Recent(ctx context.Context, userID string) []models.AttendanceRecord {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.ensureLoaded(ctx, userID)

	recent := c.entries[userID]
	out := make([]models.AttendanceRecord, len(recent))
	copy(out, recent)
	return out
}

// ensureLoaded hydrates one user's list from the store. Caller holds the lock.
func (c *RecentCache) ensureLoaded(ctx context.Context, userID string) {
	if c.loaded[userID] {
		return
	}
	c.loaded[userID] = true

	key := cacheKeyPrefix + userID
	data, err := c.store.Load(ctx, key)
	if err != nil {
		log.Println("⚠️ Failed to load recent attendance cache:", err)
		return
	}
	if data == nil {
		return
	}

	var cached []cachedRecord
	if err := json.Unmarshal(data, &cached); err != nil {
		log.Println("⚠️ Corrupt recent attendance cache, resetting:", err)
		c.reset(ctx, key)
		return
	}

	records := make([]models.AttendanceRecord, 0, len(cached))
	for _, cr := range cached {
		rec, err := decodeRecord(cr)
		if err != nil {
			log.Println("⚠️ Corrupt recent attendance entry, resetting cache:", err)
			c.reset(ctx, key)
			return
		}
		records = append(records, rec)
	}
	if len(records) > recentLimit {
		records = records[:recentLimit]
	}
	c.entries[userID] = records
}

func (c *RecentCache) reset(ctx context.Context, key string) {
	if err := c.store.Reset(ctx, key); err != nil {
		log.Println("⚠️ Failed to reset recent attendance cache:", err)
	}
}

// persist mirrors the in-memory list to the store. Best-effort: a failed save
// costs a cold cache after restart, nothing more. Caller holds the lock.
func (c *RecentCache) persist(ctx context.Context, userID string, recent []models.AttendanceRecord) {
	cached := make([]cachedRecord, len(recent))
	for i, rec := range recent {
		cached[i] = encodeRecord(rec)
	}
	data, err := json.Marshal(cached)
	if err != nil {
		log.Println("⚠️ Failed to encode recent attendance cache:", err)
		return
	}
	if err := c.store.Save(ctx, cacheKeyPrefix+userID, data); err != nil {
		log.Println("⚠️ Failed to save recent attendance cache:", err)
	}
}

// RedisCacheStore persists the cache in the shared Redis client. When Redis
// is not configured every operation is a no-op and the cache is memory-only,
// matching how the refresh-token helpers degrade in dev mode.
type RedisCacheStore struct{}

func (RedisCacheStore) Load(ctx context.Context, key string) ([]byte, error) {
	client := database.RedisClient
	if client == nil {
		return nil, nil
	}
	data, err := client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (RedisCacheStore) Save(ctx context.Context, key string, data []byte) error {
	client := database.RedisClient
	if client == nil {
		return nil
	}
	return client.Set(ctx, key, data, 0).Err()
}

func (RedisCacheStore) Reset(ctx context.Context, key string) error {
	client := database.RedisClient
	if client == nil {
		return nil
	}
	return client.Del(ctx, key).Err()
}
