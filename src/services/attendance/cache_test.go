package attendance

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"Backend-TripleA/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memStore keeps blobs in a map and counts resets, standing in for Redis.
type memStore struct {
	blobs  map[string][]byte
	resets int
}

func newMemStore() *memStore {
	return &memStore{blobs: map[string][]byte{}}
}

func (m *memStore) Load(_ context.Context, key string) ([]byte, error) {
	return m.blobs[key], nil
}

func (m *memStore) Save(_ context.Context, key string, data []byte) error {
	m.blobs[key] = data
	return nil
}

func (m *memStore) Reset(_ context.Context, key string) error {
	delete(m.blobs, key)
	m.resets++
	return nil
}

func record(userID string, d time.Time) models.AttendanceRecord {
	return models.AttendanceRecord{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Date:      d,
		Time:      d.Format("15:04:05"),
		Status:    models.AttendancePresent,
		CreatedAt: d,
	}
}

func TestRecentCacheBoundAndOrder(t *testing.T) {
	cache := NewRecentCache(newMemStore())
	ctx := context.Background()

	var pushed []models.AttendanceRecord
	for i := 0; i < 15; i++ {
		rec := record("u1", day("2024-02-01").AddDate(0, 0, i).Add(8*time.Hour))
		pushed = append(pushed, rec)
		cache.Push(ctx, rec)
	}

	recent := cache.Recent(ctx, "u1")
	require.Len(t, recent, recentLimit)

	// Newest first, no duplicate ids.
	seen := map[primitive.ObjectID]bool{}
	for i, rec := range recent {
		assert.Equal(t, pushed[14-i].ID, rec.ID)
		assert.False(t, seen[rec.ID])
		seen[rec.ID] = true
	}
}

func TestRecentCacheDeduplicatesByID(t *testing.T) {
	cache := NewRecentCache(newMemStore())
	ctx := context.Background()

	rec := record("u1", day("2024-02-01").Add(8*time.Hour))
	cache.Push(ctx, rec)
	cache.Push(ctx, rec)

	assert.Len(t, cache.Recent(ctx, "u1"), 1)
}

func TestRecentCacheIsPerUser(t *testing.T) {
	cache := NewRecentCache(newMemStore())
	ctx := context.Background()

	cache.Push(ctx, record("u1", day("2024-02-01").Add(8*time.Hour)))
	cache.Push(ctx, record("u2", day("2024-02-01").Add(9*time.Hour)))

	assert.Len(t, cache.Recent(ctx, "u1"), 1)
	assert.Len(t, cache.Recent(ctx, "u2"), 1)
	assert.Empty(t, cache.Recent(ctx, "u3"))
}

func TestRecentCacheSurvivesRestart(t *testing.T) {
	store := newMemStore()
	ctx := context.Background()

	first := NewRecentCache(store)
	rec := record("u1", day("2024-02-01").Add(8*time.Hour))
	first.Push(ctx, rec)

	// A fresh cache over the same store sees the persisted list.
	second := NewRecentCache(store)
	recent := second.Recent(ctx, "u1")
	require.Len(t, recent, 1)
	assert.Equal(t, rec.ID, recent[0].ID)
	assert.Equal(t, rec.Time, recent[0].Time)
	assert.True(t, rec.Date.Equal(recent[0].Date))
}

func TestRecentCacheResetsOnGarbageBlob(t *testing.T) {
	store := newMemStore()
	store.blobs[cacheKeyPrefix+"u1"] = []byte("not json at all")

	cache := NewRecentCache(store)
	recent := cache.Recent(context.Background(), "u1")

	assert.Empty(t, recent)
	assert.Equal(t, 1, store.resets)
	assert.NotContains(t, store.blobs, cacheKeyPrefix+"u1")
}

func TestRecentCacheResetsOnMissingSeconds(t *testing.T) {
	// Valid JSON, but the timestamp lacks the seconds field. One bad entry
	// wipes the whole stored list.
	blob := fmt.Sprintf(
		`[{"id":%q,"userId":"u1","date":{"nanoseconds":5},"time":"08:00:00","status":"present","createdAt":{"seconds":1706774400,"nanoseconds":0}}]`,
		primitive.NewObjectID().Hex(),
	)
	store := newMemStore()
	store.blobs[cacheKeyPrefix+"u1"] = []byte(blob)

	cache := NewRecentCache(store)
	assert.Empty(t, cache.Recent(context.Background(), "u1"))
	assert.Equal(t, 1, store.resets)
}

func TestRecentCacheResetsOnBadObjectID(t *testing.T) {
	blob := `[{"id":"zzz","userId":"u1","date":{"seconds":1706774400,"nanoseconds":0},"time":"08:00:00","status":"present","createdAt":{"seconds":1706774400,"nanoseconds":0}}]`
	store := newMemStore()
	store.blobs[cacheKeyPrefix+"u1"] = []byte(blob)

	cache := NewRecentCache(store)
	assert.Empty(t, cache.Recent(context.Background(), "u1"))
	assert.Equal(t, 1, store.resets)
}

func TestRecentCacheReturnsCopy(t *testing.T) {
	cache := NewRecentCache(newMemStore())
	ctx := context.Background()

	cache.Push(ctx, record("u1", day("2024-02-01").Add(8*time.Hour)))

	got := cache.Recent(ctx, "u1")
	got[0].UserID = "mutated"

	assert.Equal(t, "u1", cache.Recent(ctx, "u1")[0].UserID)
}

func TestTimestampCodecRoundTrip(t *testing.T) {
	in := time.Date(2024, 2, 1, 8, 30, 15, 123000000, time.Local)

	out, err := encodeTimestamp(in).decode()
	require.NoError(t, err)
	assert.True(t, in.Equal(out))
}

func TestRecordCodecRoundTrip(t *testing.T) {
	in := record("u1", day("2024-02-01").Add(8*time.Hour))

	data, err := json.Marshal(encodeRecord(in))
	require.NoError(t, err)

	var wire cachedRecord
	require.NoError(t, json.Unmarshal(data, &wire))

	out, err := decodeRecord(wire)
	require.NoError(t, err)
	assert.Equal(t, in.ID, out.ID)
	assert.Equal(t, in.UserID, out.UserID)
	assert.Equal(t, in.Status, out.Status)
	assert.True(t, in.Date.Equal(out.Date))
	assert.True(t, in.CreatedAt.Equal(out.CreatedAt))
}
