package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JustJay7/court-case-sync/internal/snapshot"
)

func entry(caseID, hash string) *Entry {
	return &Entry{
		Capture: snapshot.Capture{CaseID: caseID, CapturedAt: time.Now()},
		Hash:    hash,
	}
}

func TestGetSet(t *testing.T) {
	c := NewCache(10, time.Minute)

	_, ok := c.Get("case-1")
	assert.False(t, ok)

	c.Set("case-1", entry("case-1", "h1"))
	got, ok := c.Get("case-1")
	require.True(t, ok)
	assert.Equal(t, "h1", got.Hash)

	stats := c.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, 1, stats.Size)
}

func TestEvictsOldestWhenFull(t *testing.T) {
	c := NewCache(2, time.Minute)

	c.Set("case-1", entry("case-1", "h1"))
	time.Sleep(2 * time.Millisecond)
	c.Set("case-2", entry("case-2", "h2"))
	time.Sleep(2 * time.Millisecond)
	c.Set("case-3", entry("case-3", "h3"))

	_, ok := c.Get("case-1")
	assert.False(t, ok)
	_, ok = c.Get("case-3")
	assert.True(t, ok)
	assert.Equal(t, int64(1), c.Stats().Evictions)
	assert.Equal(t, 2, c.Stats().Size)
}

func TestOverwriteDoesNotEvict(t *testing.T) {
	c := NewCache(2, time.Minute)

	c.Set("case-1", entry("case-1", "h1"))
	c.Set("case-2", entry("case-2", "h2"))
	c.Set("case-2", entry("case-2", "h2b"))

	_, ok := c.Get("case-1")
	assert.True(t, ok)
	got, ok := c.Get("case-2")
	require.True(t, ok)
	assert.Equal(t, "h2b", got.Hash)
}

func TestDeleteAndClear(t *testing.T) {
	c := NewCache(10, time.Minute)
	c.Set("case-1", entry("case-1", "h1"))
	c.Set("case-2", entry("case-2", "h2"))

	c.Delete("case-1")
	_, ok := c.Get("case-1")
	assert.False(t, ok)

	c.Clear()
	assert.Equal(t, 0, c.Stats().Size)
	assert.Equal(t, int64(0), c.Stats().Misses)
}

func TestExpiry(t *testing.T) {
	c := NewCache(10, 10*time.Millisecond)
	c.Set("case-1", entry("case-1", "h1"))
	time.Sleep(20 * time.Millisecond)
	_, ok := c.Get("case-1")
	assert.False(t, ok)
}
