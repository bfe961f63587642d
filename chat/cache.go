package chat

import (
	"container/list"
	"context"
	"strings"
	"sync"
	"time"

	"resource-navigator-backend/models"
)

// AnswerCache memoizes composed answers per (question, language) pair.
// Implementations must be safe for concurrent use.
type AnswerCache interface {
	Get(ctx context.Context, key string) (*models.Answer, bool)
	Set(ctx context.Context, key string, answer *models.Answer)
}

// CacheKey builds the cache key for a question and language tag.
func CacheKey(question, language string) string {
	return strings.ToLower(question) + "_" + language
}

type memoryEntry struct {
	key       string
	answer    *models.Answer
	expiresAt time.Time
}

// MemoryCache is a bounded in-process LRU answer cache with per-entry TTL.
// Both bounds are deliberate: the original design grew without limit and
// served stale answers forever after store edits.
type MemoryCache struct {
	mu         sync.Mutex
	maxEntries int
	ttl        time.Duration
	order      *list.List
	entries    map[string]*list.Element
	now        func() time.Time
}

// NewMemoryCache builds a memory cache holding at most maxEntries answers,
// each valid for ttl.
func NewMemoryCache(maxEntries int, ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		maxEntries: maxEntries,
		ttl:        ttl,
		order:      list.New(),
		entries:    make(map[string]*list.Element),
		now:        time.Now,
	}
}

// Get returns the cached answer for key, dropping expired entries.
func (c *MemoryCache) Get(_ context.Context, key string) (*models.Answer, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.entries[key]
	if !ok {
		return nil, false
	}

	entry := el.Value.(*memoryEntry)
	if c.now().After(entry.expiresAt) {
		c.order.Remove(el)
		delete(c.entries, key)
		return nil, false
	}

	c.order.MoveToFront(el)
	return entry.answer, true
}

// Set inserts or refreshes an answer, evicting the least recently used
// entry when the cache is full.
func (c *MemoryCache) Set(_ context.Context, key string, answer *models.Answer) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.now().Add(c.ttl)
	if el, ok := c.entries[key]; ok {
		entry := el.Value.(*memoryEntry)
		entry.answer = answer
		entry.expiresAt = expiresAt
		c.order.MoveToFront(el)
		return
	}

	c.entries[key] = c.order.PushFront(&memoryEntry{key: key, answer: answer, expiresAt: expiresAt})

	for c.order.Len() > c.maxEntries {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.entries, oldest.Value.(*memoryEntry).key)
	}
}

// Len returns the number of cached entries, expired or not.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
